package version

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseSemVer_Basic(t *testing.T) {
	v, err := ParseSemVer("1.2.3")
	require.NoError(t, err)
	require.Equal(t, SemanticVersion{Major: 1, Minor: 2, Patch: 3}, v)
}

func TestParseSemVer_LowercasePrefix(t *testing.T) {
	v, err := ParseSemVer("v1.2.3")
	require.NoError(t, err)
	require.Equal(t, SemanticVersion{Major: 1, Minor: 2, Patch: 3}, v)
}

func TestParseSemVer_UppercasePrefix(t *testing.T) {
	v, err := ParseSemVer("V10.20.30")
	require.NoError(t, err)
	require.Equal(t, SemanticVersion{Major: 10, Minor: 20, Patch: 30}, v)
}

func TestParseSemVer_Zero(t *testing.T) {
	v, err := ParseSemVer("0.0.0")
	require.NoError(t, err)
	require.Equal(t, SemanticVersion{}, v)
}

func TestParseSemVer_Rejected(t *testing.T) {
	for _, s := range []string{
		"", "foo", "1", "1.2", "1.2.3.4", "1.2.3-beta", "1.2.3+5",
		"-1.2.3", "1..3", "v", "vv1.2.3", "1.2.x",
	} {
		_, err := ParseSemVer(s)
		require.Error(t, err, "input %q", s)
	}
}

func TestTryParseSemVer(t *testing.T) {
	v, ok := TryParseSemVer("v2.0.1")
	require.True(t, ok)
	require.Equal(t, SemanticVersion{Major: 2, Patch: 1}, v)

	_, ok = TryParseSemVer("not-a-version")
	require.False(t, ok)
}

func TestSemVerCompareTo(t *testing.T) {
	require.Positive(t, SemanticVersion{Major: 2}.CompareTo(SemanticVersion{Major: 1, Minor: 9, Patch: 9}))
	require.Negative(t, SemanticVersion{Major: 1, Minor: 2, Patch: 3}.CompareTo(SemanticVersion{Major: 1, Minor: 3}))
	require.Positive(t, SemanticVersion{Major: 1, Minor: 2, Patch: 4}.CompareTo(SemanticVersion{Major: 1, Minor: 2, Patch: 3}))
	require.Zero(t, SemanticVersion{Major: 1, Minor: 2, Patch: 3}.CompareTo(SemanticVersion{Major: 1, Minor: 2, Patch: 3}))
}

func TestSemVerIncrement_Major(t *testing.T) {
	v := SemanticVersion{Major: 1, Minor: 2, Patch: 3}.Increment(FieldMajor)
	require.Equal(t, SemanticVersion{Major: 2}, v)
}

func TestSemVerIncrement_Minor(t *testing.T) {
	v := SemanticVersion{Major: 1, Minor: 2, Patch: 3}.Increment(FieldMinor)
	require.Equal(t, SemanticVersion{Major: 1, Minor: 3}, v)
}

func TestSemVerIncrement_Patch(t *testing.T) {
	v := SemanticVersion{Major: 1, Minor: 2, Patch: 3}.Increment(FieldPatch)
	require.Equal(t, SemanticVersion{Major: 1, Minor: 2, Patch: 4}, v)
}

func TestSemVerString(t *testing.T) {
	require.Equal(t, "1.2.3", SemanticVersion{Major: 1, Minor: 2, Patch: 3}.String())
	require.Equal(t, "0.0.0", SemanticVersion{}.String())
}

func TestParseCalVer_Basic(t *testing.T) {
	v, err := ParseCalVer("24.10.3")
	require.NoError(t, err)
	require.Equal(t, CalendarVersion{Year: 24, Month: 10, Build: 3}, v)
}

func TestParseCalVer_Rejected(t *testing.T) {
	for _, s := range []string{
		"", "foo", "24.10", "24.10.1.2",
		"24.0.1",  // month below range
		"24.13.1", // month above range
		"24.10.0", // build must be >= 1
		"v24.10.1",
		"24.10.1-rc1",
	} {
		_, err := ParseCalVer(s)
		require.Error(t, err, "input %q", s)
	}
}

func TestTryParseCalVer(t *testing.T) {
	v, ok := TryParseCalVer("25.1.12")
	require.True(t, ok)
	require.Equal(t, CalendarVersion{Year: 25, Month: 1, Build: 12}, v)

	_, ok = TryParseCalVer("v1.2.3")
	require.False(t, ok)
}

func TestCalVerCompareTo_LaterPeriodWins(t *testing.T) {
	// A later calendar period outranks a higher build from an earlier one.
	earlier := CalendarVersion{Year: 24, Month: 12, Build: 99}
	later := CalendarVersion{Year: 25, Month: 1, Build: 1}
	require.Positive(t, later.CompareTo(earlier))

	sameYear := CalendarVersion{Year: 24, Month: 11, Build: 1}
	require.Positive(t, earlier.CompareTo(sameYear))
}

func TestCalVerCompareTo_Build(t *testing.T) {
	a := CalendarVersion{Year: 24, Month: 10, Build: 4}
	b := CalendarVersion{Year: 24, Month: 10, Build: 3}
	require.Positive(t, a.CompareTo(b))
	require.Zero(t, a.CompareTo(a))
}

func TestCalVerNext_SameMonth(t *testing.T) {
	now := time.Date(2024, time.October, 15, 0, 0, 0, 0, time.UTC)
	base := CalendarVersion{Year: 24, Month: 10, Build: 3}

	// The reset policy is irrelevant within the same month.
	require.Equal(t, CalendarVersion{Year: 24, Month: 10, Build: 4}, base.Next(now, ResetPolicyMonthly))
	require.Equal(t, CalendarVersion{Year: 24, Month: 10, Build: 4}, base.Next(now, ResetPolicyContinuous))
}

func TestCalVerNext_CrossMonthMonthly(t *testing.T) {
	now := time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)
	base := CalendarVersion{Year: 24, Month: 9, Build: 5}

	require.Equal(t, CalendarVersion{Year: 24, Month: 10, Build: 1}, base.Next(now, ResetPolicyMonthly))
}

func TestCalVerNext_CrossMonthContinuous(t *testing.T) {
	now := time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)
	base := CalendarVersion{Year: 24, Month: 9, Build: 5}

	require.Equal(t, CalendarVersion{Year: 24, Month: 10, Build: 6}, base.Next(now, ResetPolicyContinuous))
}

func TestCalVerNext_CrossYear(t *testing.T) {
	now := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	base := CalendarVersion{Year: 24, Month: 12, Build: 7}

	require.Equal(t, CalendarVersion{Year: 25, Month: 1, Build: 1}, base.Next(now, ResetPolicyMonthly))
	require.Equal(t, CalendarVersion{Year: 25, Month: 1, Build: 8}, base.Next(now, ResetPolicyContinuous))
}

func TestStart(t *testing.T) {
	now := time.Date(2026, time.March, 31, 23, 0, 0, 0, time.UTC)
	require.Equal(t, CalendarVersion{Year: 26, Month: 3, Build: 1}, Start(now))
}

func TestCalVerString_NoPadding(t *testing.T) {
	require.Equal(t, "24.9.5", CalendarVersion{Year: 24, Month: 9, Build: 5}.String())
	require.Equal(t, "26.12.110", CalendarVersion{Year: 26, Month: 12, Build: 110}.String())
}

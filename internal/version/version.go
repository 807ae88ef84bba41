// Package version provides the immutable version value types for the two
// supported schemes, along with their parse, ordering, and rendering rules.
package version

import (
	"errors"
	"regexp"
	"strconv"
	"time"
)

var (
	semverRegex = regexp.MustCompile(`^[vV]?(\d+)\.(\d+)\.(\d+)$`)
	calverRegex = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)
)

// SemanticVersion represents a MAJOR.MINOR.PATCH version.
// This type is immutable — all methods return new values.
type SemanticVersion struct {
	Major int64
	Minor int64
	Patch int64
}

// TryParseSemVer attempts to parse a SemVer string.
// Returns the parsed version and true if successful.
func TryParseSemVer(s string) (SemanticVersion, bool) {
	v, err := ParseSemVer(s)
	if err != nil {
		return SemanticVersion{}, false
	}
	return v, true
}

// ParseSemVer parses a SemVer string. An optional leading "v" or "V" is
// accepted; pre-release and build-metadata suffixes are not.
func ParseSemVer(s string) (SemanticVersion, error) {
	matches := semverRegex.FindStringSubmatch(s)
	if matches == nil {
		return SemanticVersion{}, errors.New("invalid semver format: " + s)
	}

	var v SemanticVersion

	major, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return SemanticVersion{}, errors.New("invalid major version: " + matches[1])
	}
	v.Major = major

	minor, err := strconv.ParseInt(matches[2], 10, 64)
	if err != nil {
		return SemanticVersion{}, errors.New("invalid minor version: " + matches[2])
	}
	v.Minor = minor

	patch, err := strconv.ParseInt(matches[3], 10, 64)
	if err != nil {
		return SemanticVersion{}, errors.New("invalid patch version: " + matches[3])
	}
	v.Patch = patch

	return v, nil
}

// CompareTo compares two SemanticVersions field by field.
// Returns a negative value, zero, or a positive value.
func (v SemanticVersion) CompareTo(other SemanticVersion) int {
	if v.Major != other.Major {
		if v.Major > other.Major {
			return 1
		}
		return -1
	}

	if v.Minor != other.Minor {
		if v.Minor > other.Minor {
			return 1
		}
		return -1
	}

	if v.Patch != other.Patch {
		if v.Patch > other.Patch {
			return 1
		}
		return -1
	}

	return 0
}

// Increment bumps the specified version field.
// Higher fields are preserved, lower fields are zeroed.
func (v SemanticVersion) Increment(field Field) SemanticVersion {
	switch field {
	case FieldMajor:
		return SemanticVersion{Major: v.Major + 1}
	case FieldMinor:
		return SemanticVersion{Major: v.Major, Minor: v.Minor + 1}
	default:
		return SemanticVersion{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	}
}

// String returns the canonical "MAJOR.MINOR.PATCH" rendering without a
// scheme prefix.
func (v SemanticVersion) String() string {
	return strconv.FormatInt(v.Major, 10) + "." +
		strconv.FormatInt(v.Minor, 10) + "." +
		strconv.FormatInt(v.Patch, 10)
}

// CalendarVersion represents a YY.MM.BUILD version. The year is a two-digit
// calendar year taken as given; no century inference is applied.
// This type is immutable — all methods return new values.
type CalendarVersion struct {
	Year  int64
	Month int64
	Build int64
}

// TryParseCalVer attempts to parse a CalVer string.
// Returns the parsed version and true if successful.
func TryParseCalVer(s string) (CalendarVersion, bool) {
	v, err := ParseCalVer(s)
	if err != nil {
		return CalendarVersion{}, false
	}
	return v, true
}

// ParseCalVer parses a CalVer string: exactly three dot-separated
// non-negative integers, with month in [1,12] and build >= 1.
// No prefix is accepted.
func ParseCalVer(s string) (CalendarVersion, error) {
	matches := calverRegex.FindStringSubmatch(s)
	if matches == nil {
		return CalendarVersion{}, errors.New("invalid calver format: " + s)
	}

	var v CalendarVersion

	year, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return CalendarVersion{}, errors.New("invalid year: " + matches[1])
	}
	v.Year = year

	month, err := strconv.ParseInt(matches[2], 10, 64)
	if err != nil || month < 1 || month > 12 {
		return CalendarVersion{}, errors.New("invalid month: " + matches[2])
	}
	v.Month = month

	build, err := strconv.ParseInt(matches[3], 10, 64)
	if err != nil || build < 1 {
		return CalendarVersion{}, errors.New("invalid build: " + matches[3])
	}
	v.Build = build

	return v, nil
}

// CompareTo compares two CalendarVersions field by field, so a later
// calendar period always outranks a higher build number from an earlier one.
// Returns a negative value, zero, or a positive value.
func (v CalendarVersion) CompareTo(other CalendarVersion) int {
	if v.Year != other.Year {
		if v.Year > other.Year {
			return 1
		}
		return -1
	}

	if v.Month != other.Month {
		if v.Month > other.Month {
			return 1
		}
		return -1
	}

	if v.Build != other.Build {
		if v.Build > other.Build {
			return 1
		}
		return -1
	}

	return 0
}

// Next returns the version that follows v for the given date. The year and
// month of the result always come from now; the reset policy only governs
// the build counter across a month boundary.
func (v CalendarVersion) Next(now time.Time, policy ResetPolicy) CalendarVersion {
	year, month := currentPeriod(now)

	if v.Year == year && v.Month == month {
		return CalendarVersion{Year: year, Month: month, Build: v.Build + 1}
	}

	if policy == ResetPolicyContinuous {
		return CalendarVersion{Year: year, Month: month, Build: v.Build + 1}
	}

	return CalendarVersion{Year: year, Month: month, Build: 1}
}

// Start returns the first version of the calendar period containing now.
func Start(now time.Time) CalendarVersion {
	year, month := currentPeriod(now)
	return CalendarVersion{Year: year, Month: month, Build: 1}
}

// String returns the canonical "YY.MM.BUILD" rendering, each field without
// leading zeros.
func (v CalendarVersion) String() string {
	return strconv.FormatInt(v.Year, 10) + "." +
		strconv.FormatInt(v.Month, 10) + "." +
		strconv.FormatInt(v.Build, 10)
}

// currentPeriod derives the two-digit year and the month from a date.
func currentPeriod(now time.Time) (int64, int64) {
	return int64(now.Year() % 100), int64(now.Month())
}

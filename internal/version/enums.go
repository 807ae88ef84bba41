package version

import "errors"

// Scheme identifies a versioning scheme.
type Scheme int

const (
	SchemeSemVer Scheme = iota
	SchemeCalVer
)

func (s Scheme) String() string {
	switch s {
	case SchemeSemVer:
		return "semver"
	case SchemeCalVer:
		return "calver"
	default:
		return "unknown"
	}
}

// Field represents which field of a semantic version to increment.
type Field int

const (
	FieldPatch Field = iota
	FieldMinor
	FieldMajor
)

func (f Field) String() string {
	switch f {
	case FieldPatch:
		return "patch"
	case FieldMinor:
		return "minor"
	case FieldMajor:
		return "major"
	default:
		return "unknown"
	}
}

// ParseField parses a field name as accepted by the semver-increment option.
func ParseField(s string) (Field, error) {
	switch s {
	case "major":
		return FieldMajor, nil
	case "minor":
		return FieldMinor, nil
	case "patch":
		return FieldPatch, nil
	default:
		return FieldPatch, errors.New("invalid semver-increment: " + s)
	}
}

// ResetPolicy governs the CalVer build counter across a month boundary.
type ResetPolicy int

const (
	// ResetPolicyMonthly restarts the build counter at 1 in a new month.
	ResetPolicyMonthly ResetPolicy = iota
	// ResetPolicyContinuous keeps the build counter climbing across months.
	ResetPolicyContinuous
)

func (p ResetPolicy) String() string {
	switch p {
	case ResetPolicyMonthly:
		return "monthly"
	case ResetPolicyContinuous:
		return "continuous"
	default:
		return "unknown"
	}
}

// ParseResetPolicy parses a policy name as accepted by the
// calver-reset-policy option.
func ParseResetPolicy(s string) (ResetPolicy, error) {
	switch s {
	case "monthly":
		return ResetPolicyMonthly, nil
	case "continuous":
		return ResetPolicyContinuous, nil
	default:
		return ResetPolicyMonthly, errors.New("invalid calver-reset-policy: " + s)
	}
}

// Package version models release versions under the SemVer and CalVer
// schemes and resolves the next version from a set of classified commits.
// All operations are pure; the scheme is threaded through as an explicit
// parameter rather than held as process state.
package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Scheme selects the versioning convention for a run. The previous and next
// version of a run always belong to the same scheme.
type Scheme string

const (
	SchemeSemVer Scheme = "semver"
	SchemeCalVer Scheme = "calver"
)

// ParseScheme validates a scheme name from config or flags.
func ParseScheme(s string) (Scheme, error) {
	switch Scheme(strings.ToLower(strings.TrimSpace(s))) {
	case SchemeSemVer:
		return SchemeSemVer, nil
	case SchemeCalVer:
		return SchemeCalVer, nil
	}
	return "", fmt.Errorf("unknown version scheme %q (expected %q or %q)", s, SchemeSemVer, SchemeCalVer)
}

// Version is a release version under one of the two schemes.
type Version interface {
	Scheme() Scheme
	String() string
}

// Zero returns the scheme's starting point, used as the previous version
// when no prior release tag exists.
func Zero(scheme Scheme) Version {
	if scheme == SchemeCalVer {
		return CalVer{}
	}
	return SemVer{}
}

// SemVer is a (major, minor, patch) triple ordered lexicographically.
type SemVer struct {
	Major int
	Minor int
	Patch int
}

func (SemVer) Scheme() Scheme { return SchemeSemVer }

func (v SemVer) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0, or 1 ordering by (major, minor, patch).
func (v SemVer) Compare(o SemVer) int {
	if c := compareInt(v.Major, o.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, o.Minor); c != 0 {
		return c
	}
	return compareInt(v.Patch, o.Patch)
}

func (v SemVer) BumpMajor() SemVer { return SemVer{Major: v.Major + 1} }
func (v SemVer) BumpMinor() SemVer { return SemVer{Major: v.Major, Minor: v.Minor + 1} }
func (v SemVer) BumpPatch() SemVer {
	return SemVer{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
}

// CalVer is a (year, month, sequence) triple. The sequence counts releases
// within a calendar month and resets when the period changes.
type CalVer struct {
	Year     int
	Month    int
	Sequence int
}

func (CalVer) Scheme() Scheme { return SchemeCalVer }

func (v CalVer) String() string {
	return fmt.Sprintf("%04d.%02d.%d", v.Year, v.Month, v.Sequence)
}

// Compare returns -1, 0, or 1 ordering by (year, month, sequence).
func (v CalVer) Compare(o CalVer) int {
	if c := compareInt(v.Year, o.Year); c != 0 {
		return c
	}
	if c := compareInt(v.Month, o.Month); c != 0 {
		return c
	}
	return compareInt(v.Sequence, o.Sequence)
}

// Next returns the successor under the given reference period. A period
// change resets the sequence to zero; otherwise the sequence advances.
func (v CalVer) Next(ref Period) CalVer {
	if v.Year != ref.Year || v.Month != ref.Month {
		return CalVer{Year: ref.Year, Month: ref.Month}
	}
	return CalVer{Year: v.Year, Month: v.Month, Sequence: v.Sequence + 1}
}

// Period is a CalVer calendar period, typically derived from the current
// date at release time.
type Period struct {
	Year  int
	Month int
}

// CurrentPeriod returns the period for the given instant.
func CurrentPeriod(now time.Time) Period {
	return Period{Year: now.Year(), Month: int(now.Month())}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

var (
	// semverTagRE accepts v1, v1.2, and v1.2.3 shapes (prefix already
	// stripped); missing components default to zero.
	semverTagRE = regexp.MustCompile(`^(\d+)(?:\.(\d+)(?:\.(\d+))?)?$`)

	// calverTagRE accepts YYYY.MM.SEQ with an optionally unpadded month.
	calverTagRE = regexp.MustCompile(`^(\d{4})\.(\d{1,2})\.(\d+)$`)
)

// ParseTag parses a tag name under the given scheme. The tag may carry a
// scope path ("service/v1.2.3") and the configured prefix ("v" by default);
// both are stripped before matching. Returns an error for tags that do not
// match the scheme grammar so callers can skip them during tag discovery.
func ParseTag(tag, prefix string, scheme Scheme) (Version, error) {
	name := tag
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimPrefix(name, prefix)

	switch scheme {
	case SchemeSemVer:
		m := semverTagRE.FindStringSubmatch(name)
		if m == nil {
			return nil, fmt.Errorf("tag %q does not match the semver grammar", tag)
		}
		return SemVer{Major: atoi(m[1]), Minor: atoi(m[2]), Patch: atoi(m[3])}, nil
	case SchemeCalVer:
		m := calverTagRE.FindStringSubmatch(name)
		if m == nil {
			return nil, fmt.Errorf("tag %q does not match the calver grammar", tag)
		}
		return CalVer{Year: atoi(m[1]), Month: atoi(m[2]), Sequence: atoi(m[3])}, nil
	}
	return nil, fmt.Errorf("unknown version scheme %q", scheme)
}

// FormatTag renders a version as a tag name with the configured prefix.
func FormatTag(v Version, prefix string) string {
	return prefix + v.String()
}

// Compare orders two versions of the same scheme. Mixing schemes is a
// programming error and panics rather than guessing.
func Compare(a, b Version) int {
	switch av := a.(type) {
	case SemVer:
		return av.Compare(b.(SemVer))
	case CalVer:
		return av.Compare(b.(CalVer))
	}
	panic(fmt.Sprintf("version: unsupported type %T", a))
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}

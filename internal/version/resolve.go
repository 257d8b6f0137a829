package version

import (
	"errors"
	"fmt"

	"github.com/raveheart1/nextver/internal/commit"
)

// ErrSchemeMismatch is returned when the previous version's scheme differs
// from the scheme requested for the run. The resolver never coerces between
// schemes; this is a configuration error and fatal to the run.
var ErrSchemeMismatch = errors.New("version scheme mismatch")

// Impact is the release significance of a commit set, ordered so that a
// numeric comparison picks the strongest bump.
type Impact int

const (
	ImpactNone Impact = iota
	ImpactPatch
	ImpactMinor
	ImpactMajor
)

func (i Impact) String() string {
	switch i {
	case ImpactMajor:
		return "major"
	case ImpactMinor:
		return "minor"
	case ImpactPatch:
		return "patch"
	}
	return "none"
}

// ImpactOf classifies a single commit: breaking → major, feat → minor,
// fix/perf → patch, anything else carries no release intent.
func ImpactOf(c commit.Commit) Impact {
	switch {
	case c.IsBreaking:
		return ImpactMajor
	case c.Type == commit.TypeFeat:
		return ImpactMinor
	case c.Type == commit.TypeFix || c.Type == commit.TypePerf:
		return ImpactPatch
	}
	return ImpactNone
}

// HighestImpact evaluates the bump policy once over the full commit set.
func HighestImpact(commits []commit.Commit) Impact {
	highest := ImpactNone
	for _, c := range commits {
		if i := ImpactOf(c); i > highest {
			highest = i
		}
	}
	return highest
}

// Resolve computes the next version from the previous release and the
// classified commits since it. An empty commit set, or one with no
// release-worthy commits, echoes the previous version back unchanged.
//
// For CalVer the bump strength collapses to a single calendar advance:
// any releasable impact (breaking included) yields sequence+1 within an
// unchanged period, or a reset to (ref.Year, ref.Month, 0) when the period
// changed. The no-bump case short-circuits before the period comparison so
// a quiet month never advances the sequence.
func Resolve(prev Version, commits []commit.Commit, scheme Scheme, ref Period) (Version, error) {
	if prev == nil {
		prev = Zero(scheme)
	}
	if prev.Scheme() != scheme {
		return nil, fmt.Errorf("%w: previous version %s is %s, run requested %s",
			ErrSchemeMismatch, prev, prev.Scheme(), scheme)
	}

	impact := HighestImpact(commits)
	if impact == ImpactNone {
		return prev, nil
	}

	switch scheme {
	case SchemeCalVer:
		return prev.(CalVer).Next(ref), nil
	default:
		sv := prev.(SemVer)
		switch impact {
		case ImpactMajor:
			return sv.BumpMajor(), nil
		case ImpactMinor:
			return sv.BumpMinor(), nil
		default:
			return sv.BumpPatch(), nil
		}
	}
}

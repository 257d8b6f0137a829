// Package commit classifies raw git commit messages under the Conventional
// Commits convention. Parsing is total: a message that does not match the
// conventional grammar degrades to TypeOther instead of failing, so callers
// never have to handle a parse error for ordinary history.
package commit

import "time"

// Type is the closed vocabulary of conventional commit types. Anything
// outside this set is classified as TypeOther.
type Type string

const (
	TypeFeat     Type = "feat"
	TypeFix      Type = "fix"
	TypePerf     Type = "perf"
	TypeRefactor Type = "refactor"
	TypeDocs     Type = "docs"
	TypeStyle    Type = "style"
	TypeTest     Type = "test"
	TypeBuild    Type = "build"
	TypeCI       Type = "ci"
	TypeChore    Type = "chore"
	TypeRevert   Type = "revert"
	TypeOther    Type = "other"
)

// Types returns the full vocabulary in its declared order. Changelog section
// ordering for the non-synthetic sections follows this slice.
func Types() []Type {
	return []Type{
		TypeFeat, TypeFix, TypePerf, TypeRefactor, TypeDocs, TypeStyle,
		TypeTest, TypeBuild, TypeCI, TypeChore, TypeRevert, TypeOther,
	}
}

// ParseType resolves a header token to a vocabulary type. The match is
// case-insensitive. Returns false when the token is not in the vocabulary.
func ParseType(token string) (Type, bool) {
	t := Type(lower(token))
	switch t {
	case TypeFeat, TypeFix, TypePerf, TypeRefactor, TypeDocs, TypeStyle,
		TypeTest, TypeBuild, TypeCI, TypeChore, TypeRevert, TypeOther:
		return t, true
	}
	return TypeOther, false
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Raw is a commit as supplied by the repository collaborator. The core never
// interprets authorship metadata; it is carried for rendering only.
type Raw struct {
	Hash    string
	Message string
	Author  string
	When    time.Time
}

// Commit is the structured classification derived from exactly one Raw
// commit. Values are never mutated after Parse returns them.
type Commit struct {
	Type        Type
	Scope       string
	Description string
	Body        string

	// IsBreaking is set by a '!' header marker, a BREAKING CHANGE footer,
	// or a BREAKING CHANGE: paragraph in the body.
	IsBreaking bool
	// BreakingDescription holds the footer value explaining the break,
	// when one was given.
	BreakingDescription string

	// SourceID is the short hash of the originating raw commit, used for
	// changelog linking.
	SourceID string

	// Conventional reports whether the message matched the conventional
	// grammar (in the subject or, for squashed merges, in the body).
	Conventional bool
	// ParsedFromBody reports that the classification came from a body
	// line rather than the subject.
	ParsedFromBody bool
}

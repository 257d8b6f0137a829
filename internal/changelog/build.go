package changelog

import (
	"github.com/raveheart1/nextver/internal/commit"
)

// BreakingTitle heads the synthetic section collecting every breaking
// commit regardless of its type.
const BreakingTitle = "Breaking Changes"

// sectionTitles maps each vocabulary type to its rendered heading.
var sectionTitles = map[commit.Type]string{
	commit.TypeFeat:     "Features",
	commit.TypeFix:      "Fixes",
	commit.TypePerf:     "Performance",
	commit.TypeRefactor: "Refactoring",
	commit.TypeDocs:     "Documentation",
	commit.TypeStyle:    "Style",
	commit.TypeTest:     "Tests",
	commit.TypeBuild:    "Build",
	commit.TypeCI:       "CI",
	commit.TypeChore:    "Chores",
	commit.TypeRevert:   "Reverts",
	commit.TypeOther:    "Other",
}

// Section is a titled, ordered group of commits. Breaking marks the
// synthetic Breaking Changes section, which has no vocabulary type.
type Section struct {
	Title    string
	Type     commit.Type
	Breaking bool
	Entries  []commit.Commit
}

// Build partitions commits into sections. A breaking commit lands only in
// the Breaking Changes section and is excluded from its ordinary type
// section. Relative order within each section follows the input slice, and
// empty sections are dropped.
func Build(commits []commit.Commit) []Section {
	var breaking []commit.Commit
	byType := make(map[commit.Type][]commit.Commit)

	for _, c := range commits {
		if c.IsBreaking {
			breaking = append(breaking, c)
			continue
		}
		byType[c.Type] = append(byType[c.Type], c)
	}

	sections := make([]Section, 0, len(byType)+1)
	if len(breaking) > 0 {
		sections = append(sections, Section{
			Title:    BreakingTitle,
			Breaking: true,
			Entries:  breaking,
		})
	}

	for _, t := range commit.Types() {
		entries := byType[t]
		if len(entries) == 0 {
			continue
		}
		sections = append(sections, Section{
			Title:   sectionTitles[t],
			Type:    t,
			Entries: entries,
		})
	}

	return sections
}

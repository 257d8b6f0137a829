package changelog

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/raveheart1/nextver/internal/commit"
)

// Document is a changelog ready for rendering: the resolved next version,
// the release date, and the ordered sections built from the commit set.
type Document struct {
	Version  string
	Date     string
	Sections []Section
}

// RenderOptions controls entry formatting.
type RenderOptions struct {
	// IncludeHash appends the short commit hash to each entry.
	IncludeHash bool
}

// RenderMarkdown writes the document as markdown: the version as a top
// heading, each section as a subheading, each commit as a bullet line.
// Given the same input it produces identical output.
func RenderMarkdown(doc *Document, w io.Writer, opts RenderOptions) error {
	if doc.Version != "" {
		header := fmt.Sprintf("## %s", doc.Version)
		if doc.Date != "" {
			header += fmt.Sprintf(" (%s)", doc.Date)
		}
		if _, err := fmt.Fprintf(w, "%s\n", header); err != nil {
			return err
		}
	}

	for _, s := range doc.Sections {
		if _, err := fmt.Fprintf(w, "\n### %s\n\n", s.Title); err != nil {
			return err
		}
		for _, c := range s.Entries {
			if _, err := fmt.Fprintf(w, "- %s\n", FormatEntry(c, opts)); err != nil {
				return err
			}
			if s.Breaking && c.BreakingDescription != "" {
				if _, err := fmt.Fprintf(w, "  %s\n", c.BreakingDescription); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// RenderMarkdownString is a convenience wrapper around RenderMarkdown.
func RenderMarkdownString(doc *Document, opts RenderOptions) (string, error) {
	var b strings.Builder
	if err := RenderMarkdown(doc, &b, opts); err != nil {
		return "", err
	}
	return b.String(), nil
}

// FormatEntry renders a single commit line: scope in bold brackets when
// present, then the description, then the short hash when requested.
func FormatEntry(c commit.Commit, opts RenderOptions) string {
	var b strings.Builder
	if c.Scope != "" {
		fmt.Fprintf(&b, "**%s:** ", c.Scope)
	}
	b.WriteString(c.Description)
	if opts.IncludeHash && c.SourceID != "" {
		fmt.Fprintf(&b, " (%s)", c.SourceID)
	}
	return b.String()
}

// yamlDocument mirrors Document with plain string entries for stable YAML
// output, in section order.
type yamlDocument struct {
	Version  string        `yaml:"version,omitempty"`
	Date     string        `yaml:"date,omitempty"`
	Sections []yamlSection `yaml:"sections"`
}

type yamlSection struct {
	Title    string       `yaml:"title"`
	Breaking bool         `yaml:"breaking,omitempty"`
	Entries  []yamlChange `yaml:"entries"`
}

type yamlChange struct {
	Description string `yaml:"description"`
	Scope       string `yaml:"scope,omitempty"`
	Commit      string `yaml:"commit,omitempty"`
	Breaking    string `yaml:"breaking_description,omitempty"`
}

// RenderYAML writes the document as YAML, preserving section and entry
// order. Useful for feeding the changelog into other tooling.
func RenderYAML(doc *Document, w io.Writer) error {
	out := yamlDocument{
		Version:  doc.Version,
		Date:     doc.Date,
		Sections: make([]yamlSection, 0, len(doc.Sections)),
	}
	for _, s := range doc.Sections {
		ys := yamlSection{Title: s.Title, Breaking: s.Breaking}
		for _, c := range s.Entries {
			yc := yamlChange{
				Description: c.Description,
				Scope:       c.Scope,
				Commit:      c.SourceID,
			}
			if s.Breaking {
				yc.Breaking = c.BreakingDescription
			}
			ys.Entries = append(ys.Entries, yc)
		}
		out.Sections = append(out.Sections, ys)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(out)
}

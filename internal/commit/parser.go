package commit

import (
	"regexp"
	"strings"
)

// bodyBreakingMarker flags a breaking change declared in free-form body text
// rather than a formal footer.
const bodyBreakingMarker = "BREAKING CHANGE:"

var (
	// headerRE matches the conventional grammar: type(scope)!: description.
	// Scope and the breaking marker are optional.
	headerRE = regexp.MustCompile(`^([A-Za-z]+)(?:\(([^)]*)\))?(!)?:[ \t]?(.*)$`)

	// footerRE matches git trailer lines in both "Token: value" and
	// "Token #value" shapes. BREAKING CHANGE is the one token allowed to
	// contain a space.
	footerRE = regexp.MustCompile(`^(BREAKING CHANGE|[A-Za-z][A-Za-z0-9-]*)(?:: | #)(.*)$`)

	// bulletRE strips list markers from squashed-merge body lines before
	// attempting a conventional parse.
	bulletRE = regexp.MustCompile(`^[*\-•][ \t]*`)

	// paragraphRE splits on blank lines, tolerating trailing whitespace.
	paragraphRE = regexp.MustCompile(`\n[ \t]*\n`)
)

type footer struct {
	token string
	value string
}

func (f footer) breaking() bool {
	return f.token == "BREAKING CHANGE" || f.token == "BREAKING-CHANGE"
}

// Parse classifies a raw commit. It never fails: a message that matches
// neither the subject grammar nor (for squashed merges) any body line is
// returned as TypeOther with the subject carried verbatim as the description.
func Parse(raw Raw) Commit {
	subject, body, footers := splitMessage(raw.Message)

	c := Commit{
		Type:        TypeOther,
		Description: subject,
		Body:        body,
		SourceID:    shortHash(raw.Hash),
	}

	if typ, scope, breaking, desc, ok := parseHeader(subject); ok {
		c.Type = typ
		c.Scope = scope
		c.IsBreaking = breaking
		c.Description = desc
		c.Conventional = true
	} else if typ, scope, breaking, desc, ok := rescueFromBody(body); ok {
		c.Type = typ
		c.Scope = scope
		c.IsBreaking = breaking
		c.Description = desc
		c.Conventional = true
		c.ParsedFromBody = true
	}

	// A breaking marker in the body counts even when the subject carries
	// no '!', with the text after the marker as a provisional explanation.
	if idx := strings.Index(body, bodyBreakingMarker); idx >= 0 {
		c.IsBreaking = true
		if c.BreakingDescription == "" {
			line := body[idx+len(bodyBreakingMarker):]
			if nl := strings.IndexByte(line, '\n'); nl >= 0 {
				line = line[:nl]
			}
			c.BreakingDescription = strings.TrimSpace(line)
		}
	}

	// Footers are authoritative: the first breaking footer wins and its
	// value overrides any body-derived explanation.
	for _, f := range footers {
		if !f.breaking() {
			continue
		}
		c.IsBreaking = true
		if v := strings.TrimSpace(f.value); v != "" {
			c.BreakingDescription = v
		}
		break
	}

	return c
}

// parseHeader matches a single line against the conventional grammar.
// An unknown type token or an empty description is treated as a failed
// match so the caller degrades to TypeOther.
func parseHeader(line string) (typ Type, scope string, breaking bool, desc string, ok bool) {
	m := headerRE.FindStringSubmatch(line)
	if m == nil {
		return TypeOther, "", false, "", false
	}

	typ, known := ParseType(m[1])
	if !known {
		return TypeOther, "", false, "", false
	}

	desc = strings.TrimSpace(m[4])
	if desc == "" {
		return TypeOther, "", false, "", false
	}

	return typ, m[2], m[3] == "!", desc, true
}

// rescueFromBody scans body lines for a conventional header, handling the
// bullet-list subjects produced by squashed merge commits. When several
// lines parse, the one with the highest version impact wins; ties keep the
// earliest line.
func rescueFromBody(body string) (typ Type, scope string, breaking bool, desc string, ok bool) {
	if body == "" {
		return TypeOther, "", false, "", false
	}

	best := -1
	for _, line := range strings.Split(body, "\n") {
		line = bulletRE.ReplaceAllString(strings.TrimSpace(line), "")
		if line == "" {
			continue
		}
		t, s, b, d, parsed := parseHeader(line)
		if !parsed {
			continue
		}
		if r := rank(t, b); r > best {
			best = r
			typ, scope, breaking, desc, ok = t, s, b, d, true
		}
	}
	return typ, scope, breaking, desc, ok
}

// rank orders candidate classifications by release impact:
// breaking > feat > fix/perf > everything else.
func rank(t Type, breaking bool) int {
	switch {
	case breaking:
		return 3
	case t == TypeFeat:
		return 2
	case t == TypeFix || t == TypePerf:
		return 1
	default:
		return 0
	}
}

// splitMessage separates a full commit message into subject, body, and
// trailing footer block. The footer block is the last paragraph when every
// line in it matches the trailer shape; otherwise everything after the
// subject is body.
func splitMessage(message string) (subject, body string, footers []footer) {
	message = strings.ReplaceAll(message, "\r\n", "\n")
	message = strings.TrimSpace(message)

	subject, rest, _ := strings.Cut(message, "\n")
	subject = strings.TrimSpace(subject)
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return subject, "", nil
	}

	paragraphs := splitParagraphs(rest)
	last := paragraphs[len(paragraphs)-1]
	if fs, ok := parseFooterBlock(last); ok {
		footers = fs
		paragraphs = paragraphs[:len(paragraphs)-1]
	}

	body = strings.TrimSpace(strings.Join(paragraphs, "\n\n"))
	return subject, body, footers
}

func splitParagraphs(text string) []string {
	var out []string
	for _, p := range paragraphRE.Split(text, -1) {
		p = strings.TrimRight(p, " \t\n")
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = []string{""}
	}
	return out
}

func parseFooterBlock(paragraph string) ([]footer, bool) {
	lines := strings.Split(paragraph, "\n")
	footers := make([]footer, 0, len(lines))
	for _, line := range lines {
		m := footerRE.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			return nil, false
		}
		footers = append(footers, footer{token: m[1], value: m[2]})
	}
	return footers, len(footers) > 0
}

// Ignored reports whether the message matches any configured ignore
// pattern. Patterns are plain substrings; empty patterns never match.
func Ignored(message string, patterns []string) bool {
	for _, p := range patterns {
		if p != "" && strings.Contains(message, p) {
			return true
		}
	}
	return false
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

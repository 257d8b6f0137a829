// Package changelog groups classified commits into ordered sections and
// renders them as a release document.
//
// This package implements:
//   - Partitioning commits into per-type sections, preserving commit order
//   - A synthetic Breaking Changes section that always renders first
//   - Markdown and YAML rendering of the section model
//
// Building and rendering are pure transformations over the supplied commit
// slice; the git history order the caller provides is authoritative.
package changelog

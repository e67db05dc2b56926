// Package changelog builds a changelog from a directory of change entry files.
//
// This package implements:
//   - The in-memory changelog model (releases, change sets, sections,
//     component sections, entries)
//   - Loading that model from a .changelog directory tree
//   - Deterministic sorting of releases, sections and entries
//   - Markdown rendering of the full, released-only or unreleased-only views
//   - Entry path traversal in render order, used for duplicate detection
//
// Each contributor adds one file per change under
// .changelog/unreleased/<section>/, optionally nested one level deeper under a
// component directory. Releases are directories named after their version
// (e.g. v0.2.1). The directory tree is the single source of truth; CHANGELOG.md
// is generated from it and never edited by hand.
package changelog

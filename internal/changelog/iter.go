package changelog

// EntryIterator walks every entry in a changelog, yielding entry paths in
// exactly the order the entries appear in the rendered document: the
// unreleased change set first, then each release in sorted order; within a
// change set, each section in sorted order; within a section, general entries
// before component sections. Empty sections and component sections are
// skipped transparently and never yield a path.
//
// The iterator is lazy and holds only cursor positions plus a reference to
// the immutable tree; a fresh call to Entries re-walks from the start.
type EntryIterator struct {
	changelog      *Changelog
	unreleasedIter *changeSetIter
	releaseIdx     int
	releaseIter    *changeSetIter
}

// Entries returns an iterator over every entry path in render order.
func (c *Changelog) Entries() *EntryIterator {
	it := &EntryIterator{changelog: c, releaseIdx: -1}
	if c.Unreleased != nil {
		it.unreleasedIter = newChangeSetIter(c.Unreleased)
	}
	return it
}

// Next yields the next entry path, or ok=false when the walk is complete.
func (it *EntryIterator) Next() (EntryPath, bool) {
	if it.unreleasedIter != nil {
		if p, ok := it.unreleasedIter.next(); ok {
			return EntryPath{
				Changelog: it.changelog,
				Release:   EntryReleasePath{ChangeSet: p},
			}, true
		}
		it.unreleasedIter = nil
	}
	for {
		if it.releaseIter != nil {
			if p, ok := it.releaseIter.next(); ok {
				return EntryPath{
					Changelog: it.changelog,
					Release: EntryReleasePath{
						Release:   it.changelog.Releases[it.releaseIdx],
						ChangeSet: p,
					},
				}, true
			}
			it.releaseIter = nil
		}
		it.releaseIdx++
		if it.releaseIdx >= len(it.changelog.Releases) {
			return EntryPath{}, false
		}
		it.releaseIter = newChangeSetIter(it.changelog.Releases[it.releaseIdx].Changes)
	}
}

// changeSetIter is the middle cursor: which section of a change set.
type changeSetIter struct {
	changeSet   *ChangeSet
	sectionIdx  int
	sectionIter *sectionIter
}

// newChangeSetIter positions the cursor on the first non-empty section,
// returning nil when the change set has none.
func newChangeSetIter(cs *ChangeSet) *changeSetIter {
	for i, s := range cs.Sections {
		if si := newSectionIter(s); si != nil {
			return &changeSetIter{changeSet: cs, sectionIdx: i, sectionIter: si}
		}
	}
	return nil
}

func (it *changeSetIter) next() (EntryChangeSetPath, bool) {
	for {
		if p, ok := it.sectionIter.next(); ok {
			return EntryChangeSetPath{ChangeSet: it.changeSet, Section: p}, true
		}
		it.sectionIdx++
		for it.sectionIdx < len(it.changeSet.Sections) {
			if si := newSectionIter(it.changeSet.Sections[it.sectionIdx]); si != nil {
				it.sectionIter = si
				break
			}
			it.sectionIdx++
		}
		if it.sectionIdx >= len(it.changeSet.Sections) {
			return EntryChangeSetPath{}, false
		}
	}
}

// sectionIter is the inner cursor: general entries first, then each component
// section in order.
type sectionIter struct {
	section      *ChangeSetSection
	entryIdx     int
	inComponents bool
	compIter     *componentSectionsIter
}

// newSectionIter returns nil for a section that would yield nothing.
func newSectionIter(s *ChangeSetSection) *sectionIter {
	if len(s.Entries) > 0 {
		return &sectionIter{section: s}
	}
	ci := newComponentSectionsIter(s.ComponentSections)
	if ci == nil {
		return nil
	}
	return &sectionIter{section: s, inComponents: true, compIter: ci}
}

func (it *sectionIter) next() (ChangeSetSectionPath, bool) {
	if !it.inComponents {
		if it.entryIdx < len(it.section.Entries) {
			e := it.section.Entries[it.entryIdx]
			it.entryIdx++
			return ChangeSetSectionPath{
				Section:   it.section,
				Component: ChangeSetComponentPath{Entry: e},
			}, true
		}
		it.inComponents = true
		it.compIter = newComponentSectionsIter(it.section.ComponentSections)
	}
	if it.compIter == nil {
		return ChangeSetSectionPath{}, false
	}
	p, ok := it.compIter.next()
	if !ok {
		return ChangeSetSectionPath{}, false
	}
	return ChangeSetSectionPath{Section: it.section, Component: p}, true
}

// componentSectionsIter walks the entries of a run of component sections,
// skipping empty ones.
type componentSectionsIter struct {
	sections   []*ComponentSection
	sectionIdx int
	entryIdx   int
}

func newComponentSectionsIter(sections []*ComponentSection) *componentSectionsIter {
	for i, cs := range sections {
		if !cs.IsEmpty() {
			return &componentSectionsIter{sections: sections, sectionIdx: i}
		}
	}
	return nil
}

func (it *componentSectionsIter) next() (ChangeSetComponentPath, bool) {
	for it.sectionIdx < len(it.sections) {
		cs := it.sections[it.sectionIdx]
		if it.entryIdx < len(cs.Entries) {
			e := cs.Entries[it.entryIdx]
			it.entryIdx++
			return ChangeSetComponentPath{Component: cs, Entry: e}, true
		}
		it.sectionIdx++
		it.entryIdx = 0
	}
	return ChangeSetComponentPath{}, false
}

// DuplicatePair is one pair of distinct entry paths whose entry content is
// identical.
type DuplicatePair struct {
	A, B EntryPath
}

// FindDuplicates compares the content of every entry against every other
// entry, across releases, and reports each unordered pair with identical
// details exactly once. An entry appearing three or more times reports every
// pair combinatorially.
func (c *Changelog) FindDuplicates() []DuplicatePair {
	var dups []DuplicatePair
	seen := make(map[DuplicatePair]struct{})

	outer := c.Entries()
	for a, ok := outer.Next(); ok; a, ok = outer.Next() {
		inner := c.Entries()
		for b, ok := inner.Next(); ok; b, ok = inner.Next() {
			if a == b || a.Entry().Details != b.Entry().Details {
				continue
			}
			if _, found := seen[DuplicatePair{A: a, B: b}]; found {
				continue
			}
			dups = append(dups, DuplicatePair{A: a, B: b})
			seen[DuplicatePair{A: a, B: b}] = struct{}{}
			seen[DuplicatePair{A: b, B: a}] = struct{}{}
		}
	}
	return dups
}

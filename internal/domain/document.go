package domain

// Document is the single persisted aggregate of notebooks, notes, and tags.
// It is owned by the DocumentStore; every operation loads it wholesale,
// mutates the loaded copy, and saves it back.
type Document struct {
	Notebooks []*Notebook `json:"notebooks"`
	Notes     []*Note     `json:"notes"`
	Tags      []*Tag      `json:"tags"`
}

// NewDocument returns an empty document with non-nil collections.
func NewDocument() *Document {
	return &Document{
		Notebooks: []*Notebook{},
		Notes:     []*Note{},
		Tags:      []*Tag{},
	}
}

// Normalize replaces nil collections with empty ones so the document always
// marshals with all three top-level keys present.
func (d *Document) Normalize() {
	if d.Notebooks == nil {
		d.Notebooks = []*Notebook{}
	}
	if d.Notes == nil {
		d.Notes = []*Note{}
	}
	if d.Tags == nil {
		d.Tags = []*Tag{}
	}
}

// FindNotebook returns the first notebook with the given id, or nil.
// Lookup is a first-match linear scan; id uniqueness is caller-enforced.
func (d *Document) FindNotebook(id string) *Notebook {
	for _, nb := range d.Notebooks {
		if nb.ID == id {
			return nb
		}
	}
	return nil
}

// FindNote returns the first note with the given id, or nil.
func (d *Document) FindNote(id string) *Note {
	for _, n := range d.Notes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// FindTag returns the first tag with the given id, or nil.
func (d *Document) FindTag(id string) *Tag {
	for _, t := range d.Tags {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// InsertNotebook appends a notebook to the document.
func (d *Document) InsertNotebook(nb *Notebook) {
	d.Notebooks = append(d.Notebooks, nb)
}

// InsertNote appends a note to the document.
func (d *Document) InsertNote(n *Note) {
	d.Notes = append(d.Notes, n)
}

// InsertTag appends a tag to the document.
func (d *Document) InsertTag(t *Tag) {
	d.Tags = append(d.Tags, t)
}

// RemoveNotebook removes the notebook with the given id and reports whether
// anything was removed.
func (d *Document) RemoveNotebook(id string) bool {
	for i, nb := range d.Notebooks {
		if nb.ID == id {
			d.Notebooks = append(d.Notebooks[:i], d.Notebooks[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveNote removes the note with the given id and reports whether anything
// was removed.
func (d *Document) RemoveNote(id string) bool {
	for i, n := range d.Notes {
		if n.ID == id {
			d.Notes = append(d.Notes[:i], d.Notes[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the document. Stores hand out clones so a
// caller mutating a loaded document cannot alias state held by the store.
func (d *Document) Clone() *Document {
	out := &Document{
		Notebooks: make([]*Notebook, len(d.Notebooks)),
		Notes:     make([]*Note, len(d.Notes)),
		Tags:      make([]*Tag, len(d.Tags)),
	}
	for i, nb := range d.Notebooks {
		c := *nb
		c.Notes = make([]string, len(nb.Notes))
		copy(c.Notes, nb.Notes)
		out.Notebooks[i] = &c
	}
	for i, n := range d.Notes {
		c := *n
		c.Tags = make([]string, len(n.Tags))
		copy(c.Tags, n.Tags)
		out.Notes[i] = &c
	}
	for i, t := range d.Tags {
		c := *t
		out.Tags[i] = &c
	}
	return out
}

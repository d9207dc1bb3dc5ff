package staging

// Set is the staged image collection behind one open form: references the
// backend already stores (retained across an edit) followed by files picked
// locally and not yet uploaded. Operations are copy-on-write so a Set can be
// held inside an immutable form state; the *File entries themselves are
// never mutated after Select.
type Set struct {
	Retained []string
	Pending  []*File
}

// Seed builds the edit-mode starting set from the entity's stored references.
func Seed(existing []string) Set {
	retained := make([]string, len(existing))
	copy(retained, existing)
	return Set{Retained: retained}
}

func (s Set) WithPending(files ...*File) Set {
	pending := make([]*File, 0, len(s.Pending)+len(files))
	pending = append(pending, s.Pending...)
	pending = append(pending, files...)
	return Set{Retained: s.Retained, Pending: pending}
}

// WithRetainedRemoved drops the retained reference at i. Out-of-range
// indexes leave the set unchanged.
func (s Set) WithRetainedRemoved(i int) Set {
	if i < 0 || i >= len(s.Retained) {
		return s
	}
	retained := make([]string, 0, len(s.Retained)-1)
	retained = append(retained, s.Retained[:i]...)
	retained = append(retained, s.Retained[i+1:]...)
	return Set{Retained: retained, Pending: s.Pending}
}

// WithPendingRemoved drops the pending file at i. Out-of-range indexes leave
// the set unchanged.
func (s Set) WithPendingRemoved(i int) Set {
	if i < 0 || i >= len(s.Pending) {
		return s
	}
	pending := make([]*File, 0, len(s.Pending)-1)
	pending = append(pending, s.Pending[:i]...)
	pending = append(pending, s.Pending[i+1:]...)
	return Set{Retained: s.Retained, Pending: pending}
}

func (s Set) TotalCount() int {
	return len(s.Retained) + len(s.Pending)
}

// ImageRef is one display slot: either a stored reference (URL set) or a
// pending local file (File set), never both.
type ImageRef struct {
	URL  string
	File *File
}

// Refs returns the display sequence, retained first then pending. Position 0
// is the listing's primary image no matter which sub-list it came from.
func (s Set) Refs() []ImageRef {
	refs := make([]ImageRef, 0, s.TotalCount())
	for _, url := range s.Retained {
		refs = append(refs, ImageRef{URL: url})
	}
	for _, f := range s.Pending {
		refs = append(refs, ImageRef{File: f})
	}
	return refs
}

// Primary returns the image used as the listing thumbnail, ok=false when the
// set is empty.
func (s Set) Primary() (ImageRef, bool) {
	if len(s.Retained) > 0 {
		return ImageRef{URL: s.Retained[0]}, true
	}
	if len(s.Pending) > 0 {
		return ImageRef{File: s.Pending[0]}, true
	}
	return ImageRef{}, false
}

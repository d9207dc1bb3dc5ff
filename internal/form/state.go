package form

import (
	"turfdesk/internal/staging"
	"turfdesk/internal/turf"
)

// State is the whole form at one point in time: field values plus the
// staged image set. It is a value; every user action maps to one reducer
// that returns a new State and leaves the old one untouched, which keeps
// the staging and validation logic testable without any HTTP machinery.
type State struct {
	Fields FormFields
	Images staging.Set
}

// NewState is the blank create-mode form.
func NewState() State {
	return State{Fields: FormFields{Type: turf.SportFootball}}
}

// SeedState pre-fills an edit-mode form from the fetched entity: its field
// values and its stored image references, in the backend's order.
func SeedState(t *turf.Turf) State {
	return State{
		Fields: FieldsOf(t),
		Images: staging.Seed(t.ImageURLs),
	}
}

func (s State) WithFields(f FormFields) State {
	s.Fields = f
	return s
}

func (s State) WithImagesAdded(files ...*staging.File) State {
	s.Images = s.Images.WithPending(files...)
	return s
}

func (s State) WithPendingRemoved(i int) State {
	s.Images = s.Images.WithPendingRemoved(i)
	return s
}

func (s State) WithRetainedRemoved(i int) State {
	s.Images = s.Images.WithRetainedRemoved(i)
	return s
}

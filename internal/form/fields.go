package form

import "turfdesk/internal/turf"

// FormFields holds the raw values the owner typed. Everything stays a string
// until submission; the backend owns canonical types. Field order mirrors
// the order the listing rules run in, because the validator reports the
// first failing field.
type FormFields struct {
	Name               string `validate:"notblank"`
	Phone              string `validate:"min=10"`
	Location           string `validate:"notblank"`
	PricePerSlot       string `validate:"price"`
	OperatingStartTime string
	OperatingEndTime   string
	Type               turf.SportType
	Description        string
}

// FieldsOf pre-fills the form from an existing listing (edit mode).
func FieldsOf(t *turf.Turf) FormFields {
	return FormFields{
		Name:               t.Name,
		Phone:              t.Phone,
		Location:           t.Location,
		PricePerSlot:       t.PricePerSlot,
		OperatingStartTime: t.OperatingStartTime,
		OperatingEndTime:   t.OperatingEndTime,
		Type:               t.Type,
		Description:        t.Description,
	}
}

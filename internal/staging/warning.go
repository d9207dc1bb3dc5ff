package staging

import (
	"fmt"
	"strings"
)

type WarningReason string

const (
	ReasonNotImage   WarningReason = "not_image"
	ReasonOversize   WarningReason = "oversize"
	ReasonUnreadable WarningReason = "unreadable"
)

// Warning is a selection-time rejection. It never aborts the form; the owner
// sees the message and the offending files simply stay out of the staged set.
type Warning struct {
	Reason WarningReason
	Files  []string
}

func (w Warning) Message() string {
	switch w.Reason {
	case ReasonNotImage:
		return fmt.Sprintf("%s is not an image and was skipped", strings.Join(w.Files, ", "))
	case ReasonOversize:
		return fmt.Sprintf("selection discarded, these files exceed the 10 MiB limit: %s", strings.Join(w.Files, ", "))
	case ReasonUnreadable:
		return fmt.Sprintf("%s could not be read and was skipped", strings.Join(w.Files, ", "))
	default:
		return fmt.Sprintf("%s was rejected", strings.Join(w.Files, ", "))
	}
}

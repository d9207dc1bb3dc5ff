package staging

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// MaxFileBytes is the per-image size limit enforced at selection time.
const MaxFileBytes = 10 << 20 // 10 MiB

// Candidate is one file the owner picked, before any admission checks.
// ContentType is the declared media type as sent by the browser, not a
// sniffed one.
type Candidate struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// File is an accepted image held in memory until the batch upload.
type File struct {
	ID          string
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// Select admits candidates into the pending list. The media-type filter runs
// first and rejects offenders one by one; the batch keeps going. The size
// check then runs over the type-accepted set and is all-or-nothing: a single
// oversized file sinks the whole batch, and the warning names every oversized
// file. The two checks intentionally reject at different granularities.
// Accepted files come back in selection order.
func Select(candidates []Candidate) ([]*File, []Warning) {
	var warnings []Warning

	typed := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if !IsImageType(c.ContentType) {
			warnings = append(warnings, Warning{Reason: ReasonNotImage, Files: []string{c.Name}})
			continue
		}
		typed = append(typed, c)
	}

	var oversized []string
	for _, c := range typed {
		if c.Size > MaxFileBytes {
			oversized = append(oversized, c.Name)
		}
	}
	if len(oversized) > 0 {
		warnings = append(warnings, Warning{Reason: ReasonOversize, Files: oversized})
		return nil, warnings
	}

	files := make([]*File, 0, len(typed))
	for _, c := range typed {
		data, err := readCandidate(c)
		if err != nil {
			warnings = append(warnings, Warning{Reason: ReasonUnreadable, Files: []string{c.Name}})
			continue
		}
		files = append(files, &File{
			ID:          uuid.NewString(),
			Name:        c.Name,
			ContentType: c.ContentType,
			Size:        int64(len(data)),
			Data:        data,
		})
	}
	return files, warnings
}

// IsImageType reports whether a declared media type belongs to the image
// family. Parameters after the subtype ("image/png; name=x") are fine.
func IsImageType(contentType string) bool {
	return strings.HasPrefix(strings.TrimSpace(contentType), "image/")
}

func readCandidate(c Candidate) ([]byte, error) {
	rc, err := c.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", c.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.Name, err)
	}
	return data, nil
}

package staging

import (
	"encoding/base64"
	"sync"
)

// Preview is a display-only rendering of a pending file. It is never
// uploaded; the raw bytes are.
type Preview struct {
	FileID  string
	DataURL string
}

// PreviewBoard collects previews as their generation finishes. Generation
// runs in one goroutine per file and each result is appended when ready, so
// board order is completion order, not selection order. The pending list in
// the Set stays the source of truth for logical ordering.
type PreviewBoard struct {
	mu      sync.Mutex
	wg      sync.WaitGroup
	entries []Preview
}

func NewPreviewBoard() *PreviewBoard {
	return &PreviewBoard{}
}

// Generate renders f's preview in the background. Failures leave the file
// staged without a preview; staging never waits on this.
func (b *PreviewBoard) Generate(f *File) {
	if f == nil || len(f.Data) == 0 {
		return
	}
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		url := dataURL(f)
		b.mu.Lock()
		b.entries = append(b.entries, Preview{FileID: f.ID, DataURL: url})
		b.mu.Unlock()
	}()
}

// Lookup returns the preview for a staged file once its generation finished.
func (b *PreviewBoard) Lookup(fileID string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, p := range b.entries {
		if p.FileID == fileID {
			return p.DataURL, true
		}
	}
	return "", false
}

// Drop discards the preview of a file removed from the pending list.
func (b *PreviewBoard) Drop(fileID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, p := range b.entries {
		if p.FileID == fileID {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return
		}
	}
}

// Snapshot returns the previews generated so far, in completion order.
func (b *PreviewBoard) Snapshot() []Preview {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Preview, len(b.entries))
	copy(out, b.entries)
	return out
}

// Wait blocks until every generation started so far has finished.
func (b *PreviewBoard) Wait() {
	b.wg.Wait()
}

func dataURL(f *File) string {
	mediaType := f.ContentType
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(f.Data)
}

package turfapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"turfdesk/internal/staging"
)

// UploadFieldName is the multipart field the backend reads files from.
const UploadFieldName = "files"

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, `\"`)

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// UploadBatch sends every staged file in one multipart request and returns
// the hosted URLs in the same order the backend reports them. Any failure
// aborts the whole batch; no partial result is returned.
func (c *Client) UploadBatch(ctx context.Context, files []*staging.File) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, f := range files {
		ct := f.ContentType
		if ct == "" {
			ct = mimetype.Detect(f.Data).String()
		}
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename="%s"`,
			UploadFieldName, escapeQuotes(f.Name)))
		header.Set("Content-Type", ct)
		part, err := mw.CreatePart(header)
		if err != nil {
			return nil, fmt.Errorf("build multipart body: %w", err)
		}
		if _, err := io.Copy(part, bytes.NewReader(f.Data)); err != nil {
			return nil, fmt.Errorf("write %s into multipart body: %w", f.Name, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/files/upload", &body)
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload batch: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, backendError(resp.StatusCode, raw)
	}

	var uploaded []struct {
		FileURL string `json:"fileUrl"`
	}
	if err := json.Unmarshal(raw, &uploaded); err != nil {
		return nil, fmt.Errorf("decode upload response: %w body=%s", err, raw)
	}
	if len(uploaded) != len(files) {
		return nil, fmt.Errorf("sent %d files, backend reported %d", len(files), len(uploaded))
	}

	urls := make([]string, len(uploaded))
	for i, u := range uploaded {
		urls[i] = u.FileURL
	}
	return urls, nil
}

// Package images holds the direct-to-Cloudinary uploader, used when the
// console is configured to bypass the backend's file endpoint.
package images

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/speps/go-hashids/v2"

	"turfdesk/internal/staging"
)

type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
	ids    *hashids.HashID
}

func NewCloudinaryUploader(cloudinaryURL, folder string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config: %w", err)
	}

	ids, err := hashids.NewWithData(&hashids.HashIDData{
		Salt:      folder,
		MinLength: 8,
		Alphabet:  hashids.DefaultAlphabet,
	})
	if err != nil {
		return nil, fmt.Errorf("hashids config: %w", err)
	}

	return &CloudinaryUploader{cld: cld, folder: folder, ids: ids}, nil
}

// UploadBatch pushes every staged file to Cloudinary and returns the secure
// URLs in staging order. The first failure aborts the batch.
func (u *CloudinaryUploader) UploadBatch(ctx context.Context, files []*staging.File) ([]string, error) {
	urls := make([]string, 0, len(files))
	now := time.Now().UnixNano()

	for i, f := range files {
		publicID, err := u.publicID(now, int64(i))
		if err != nil {
			return nil, err
		}

		resp, err := u.cld.Upload.Upload(ctx, bytes.NewReader(f.Data), uploader.UploadParams{
			Folder:    u.folder,
			PublicID:  publicID,
			Overwrite: api.Bool(false),
		})
		if err != nil {
			return nil, fmt.Errorf("cloudinary upload %s: %w", f.Name, err)
		}

		urls = append(urls, resp.SecureURL)
	}

	return urls, nil
}

// publicID derives a short collision-free slug so uploads never clobber
// each other even when two batches start in the same instant.
func (u *CloudinaryUploader) publicID(batch, index int64) (string, error) {
	slug, err := u.ids.EncodeInt64([]int64{batch, index})
	if err != nil {
		return "", fmt.Errorf("derive public id: %w", err)
	}
	return "turf_" + slug, nil
}

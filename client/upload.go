package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"

	"farmguru/models"
)

// UploadImage sends a crop image for classification as a multipart form
// with field name "file". The returned ImageID can ground later Query and
// ChemReco calls. The part's content type is derived from the filename
// extension because the backend rejects non-image uploads.
func (c *Client) UploadImage(ctx context.Context, filename string, image io.Reader) (*models.UploadResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(filename)))
	header.Set("Content-Type", imageContentType(filename))

	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", msgUploadFailed, err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("%s: %w", msgUploadFailed, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("%s: %w", msgUploadFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload-image", &buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", msgUploadFailed, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out models.UploadResponse
	if err := c.do(req, msgUploadFailed, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func imageContentType(filename string) string {
	if ct := mime.TypeByExtension(filepath.Ext(filename)); ct != "" {
		return ct
	}
	return "image/jpeg"
}

package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Uploader pushes the artifact file to the configured artifact store.
type Uploader struct {
	Endpoint   string
	httpClient *http.Client
}

// NewUploader creates an uploader for the given endpoint. An empty endpoint
// makes every upload fail softly, which the caller reports as a warning.
func NewUploader(endpoint string) Uploader {
	return Uploader{
		Endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Upload POSTs the file as a multipart form under the given artifact name.
func (u Uploader) Upload(ctx context.Context, name, path string) error {
	if u.Endpoint == "" {
		return errors.New("no artifact upload endpoint configured")
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open artifact file: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("name", name); err != nil {
		return fmt.Errorf("write artifact name field: %w", err)
	}
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("create artifact form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("read artifact file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalize artifact form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.Endpoint, &body)
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload artifact: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("artifact store responded with status %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}
	return nil
}

package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// Uploader posts files to the external image host and hands back the hosted
// URL. One shot: no retry, no validation, no progress reporting.
type Uploader struct {
	Endpoint string
	Preset   string

	http *http.Client
}

func NewUploader(endpoint, preset string) *Uploader {
	return &Uploader{
		Endpoint: endpoint,
		Preset:   preset,
		http: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
}

// Upload performs a single multipart POST and returns the secure URL of the
// hosted image.
func (v *Uploader) Upload(ctx context.Context, filename string, src io.Reader) (string, error) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, src); err != nil {
		return "", err
	}
	if err := writer.WriteField("upload_preset", v.Preset); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.Endpoint, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := v.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("image host returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(raw, &result); err != nil {
		return "", err
	}
	if len(result.SecureURL) == 0 {
		return "", fmt.Errorf("image host response is missing secure_url")
	}

	return result.SecureURL, nil
}

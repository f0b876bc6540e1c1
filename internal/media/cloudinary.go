package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// CloudinaryUploader uploads images directly to Cloudinary's unsigned
// upload endpoint. The preset must be configured as unsigned on the
// Cloudinary side; anyone holding the preset name can upload, which is an
// accepted trust boundary of this setup.
type CloudinaryUploader struct {
	cloudName string
	preset    string
	folder    string
	endpoint  string
	client    *http.Client
	logger    zerolog.Logger
}

// uploadResponse is the slice of Cloudinary's response we consume.
type uploadResponse struct {
	SecureURL string `json:"secure_url"`
}

// NewCloudinaryUploader creates an uploader for the given cloud name,
// unsigned preset and destination folder.
func NewCloudinaryUploader(cloudName, preset, folder string, logger zerolog.Logger) *CloudinaryUploader {
	return &CloudinaryUploader{
		cloudName: cloudName,
		preset:    preset,
		folder:    folder,
		endpoint:  fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cloudName),
		client:    &http.Client{Timeout: 60 * time.Second},
		logger:    logger.With().Str("component", "cloudinary-uploader").Logger(),
	}
}

// Upload sends the image as a multipart form and returns the optimised
// delivery URL. Non-200 responses become *HTTPError with the status and
// body; network failures become *TransportError.
func (u *CloudinaryUploader) Upload(ctx context.Context, name string, r io.Reader, size int64, onProgress ProgressFunc) (string, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	part, err := form.CreateFormFile("file", name)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if err := form.WriteField("upload_preset", u.preset); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := form.WriteField("folder", u.folder); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}

	// Progress covers the encoded request body; when the caller could not
	// tell us the file size, no progress is reported at all.
	var reqBody io.Reader = &body
	if size > 0 {
		reqBody = newProgressReader(&body, int64(body.Len()), onProgress)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.ContentLength = int64(body.Len())

	u.logger.Debug().
		Str("file", name).
		Int64("size", size).
		Str("folder", u.folder).
		Msg("starting image upload")

	resp, err := u.client.Do(req)
	if err != nil {
		u.logger.Error().Err(err).Str("file", name).Msg("image upload transport failure")
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		u.logger.Error().
			Int("status", resp.StatusCode).
			Str("file", name).
			Msg("media host rejected upload")
		return "", &HTTPError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var result uploadResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}

	optimised := OptimizeURL(result.SecureURL)
	u.logger.Info().Str("file", name).Str("url", optimised).Msg("image uploaded")
	return optimised, nil
}

// OptimizeURL inserts Cloudinary delivery transformations (auto format,
// auto quality, width 800) into a secure URL. This is a pure string
// substitution on the fixed /upload/ path segment, not a new upload.
func OptimizeURL(secureURL string) string {
	return strings.Replace(secureURL, "/upload/", "/upload/f_auto,q_auto,w_800/", 1)
}

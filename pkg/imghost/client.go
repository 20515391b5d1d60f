package imghost

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Client uploads images to an imgbb-compatible hosting endpoint. Admin forms
// store only the returned URL; binary data never reaches the document store.
type Client struct {
	Endpoint   string
	APIKey     string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// UploadResponse represents the response from the upload endpoint
type UploadResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// UploadError indicates the host rejected the upload
type UploadError struct {
	StatusCode int
	Message    string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("image upload failed: %d %s", e.StatusCode, e.Message)
}

// NewClient creates a new image host client instance
func NewClient(endpoint, apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		Endpoint:   endpoint,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: timeout},
		Logger:     logger,
	}
}

// Upload posts the file as a multipart form and returns the hosted URL
func (c *Client) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	c.Logger.Info("Uploading image",
		zap.String("filename", filename),
		zap.String("endpoint", c.Endpoint))

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("image", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s?key=%s", c.Endpoint, c.APIKey), pr)
	if err != nil {
		c.Logger.Error("Failed to create upload request", zap.Error(err))
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Error("Upload request failed", zap.Error(err))
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Logger.Error("Failed to read upload response", zap.Error(err))
		return "", err
	}

	var uploadResp UploadResponse
	if err := json.Unmarshal(body, &uploadResp); err != nil {
		c.Logger.Error("Failed to parse upload response",
			zap.Int("status_code", resp.StatusCode),
			zap.String("response", string(body)))
		return "", &UploadError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	if !uploadResp.Success {
		c.Logger.Error("Image host rejected upload",
			zap.Int("status_code", resp.StatusCode),
			zap.String("message", uploadResp.Error.Message))
		return "", &UploadError{StatusCode: resp.StatusCode, Message: uploadResp.Error.Message}
	}

	c.Logger.Info("Image uploaded successfully", zap.String("url", uploadResp.Data.URL))
	return uploadResp.Data.URL, nil
}

package upload

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	apperrors "fincarts/internal/errors"
)

// DefaultBaseURL is the hosted asset API. Tests point this at a fake.
const DefaultBaseURL = "https://api.cloudinary.com/v1_1"

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Media is a picked device asset ready for upload.
type Media struct {
	Base64 string
	Type   MediaType
}

// Uploader sends base64-encoded media to the asset host and returns the
// hosted URL. A failed upload aborts whatever flow needed the URL.
type Uploader struct {
	baseURL      string
	cloudName    string
	uploadPreset string
	folder       string
	httpClient   *http.Client
	logger       *zap.Logger
}

func NewUploader(baseURL, cloudName, uploadPreset string, httpClient *http.Client, logger *zap.Logger) *Uploader {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Uploader{
		baseURL:      strings.TrimRight(baseURL, "/"),
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
		folder:       "fincarts-user-profile",
		httpClient:   httpClient,
		logger:       logger,
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (u *Uploader) Upload(ctx context.Context, base64Payload string, mediaType MediaType) (string, error) {
	if u.cloudName == "" || u.uploadPreset == "" {
		return "", apperrors.NewUploadError("asset host is not configured", nil)
	}
	if base64Payload == "" {
		return "", apperrors.NewUploadError("empty media payload", nil)
	}

	endpoint := fmt.Sprintf("%s/%s/%s/upload", u.baseURL, u.cloudName, mediaType)

	form := url.Values{}
	form.Set("file", base64Payload)
	form.Set("upload_preset", u.uploadPreset)
	form.Set("folder", fmt.Sprintf("%s/%ss", u.folder, mediaType))
	if mediaType == MediaVideo {
		form.Set("resource_type", "video")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", apperrors.NewUploadError("building upload request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", apperrors.NewUploadError("uploading media", err)
	}
	defer resp.Body.Close()

	var body uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", apperrors.NewUploadError("decoding upload response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := fmt.Sprintf("asset host returned status %d", resp.StatusCode)
		if body.Error != nil && body.Error.Message != "" {
			message = body.Error.Message
		}
		return "", apperrors.NewUploadError(message, nil)
	}
	if body.Error != nil && body.Error.Message != "" {
		return "", apperrors.NewUploadError(body.Error.Message, nil)
	}
	if body.SecureURL == "" {
		return "", apperrors.NewUploadError("asset host returned no url", nil)
	}

	u.logger.Debug("media uploaded", zap.String("type", string(mediaType)))

	return body.SecureURL, nil
}

// media.go
//
// Image storage on Cloudinary. The service streams the uploaded bytes to
// the media host and hands back the secure delivery URL; there is no retry
// and no local copy.

package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/salonsuite/salon-api/internal/config"
)

// ErrMediaNotConfigured is returned when uploads are attempted without
// Cloudinary credentials in the environment.
var ErrMediaNotConfigured = errors.New("media host not configured")

// MediaStore wraps the Cloudinary client.
type MediaStore struct {
	cld *cloudinary.Cloudinary
}

// NewMediaStore builds the media client from config. Missing credentials
// are not fatal at startup; uploads will fail until they are provided,
// matching the rest of the service which only needs the database to run.
func NewMediaStore(cfg *config.Config) (*MediaStore, error) {
	if !cfg.MediaConfigured() {
		return &MediaStore{}, nil
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}
	cld.Config.URL.Secure = true

	return &MediaStore{cld: cld}, nil
}

// Configured reports whether the store can reach a media host.
func (m *MediaStore) Configured() bool {
	return m != nil && m.cld != nil
}

// Upload streams the file to the media host and returns its delivery URL.
// Any transport or storage failure surfaces with the underlying detail.
func (m *MediaStore) Upload(ctx context.Context, r io.Reader) (string, error) {
	if !m.Configured() {
		return "", ErrMediaNotConfigured
	}

	resp, err := m.cld.Upload.Upload(ctx, r, uploader.UploadParams{})
	if err != nil {
		return "", err
	}
	if resp.Error.Message != "" {
		// Cloudinary reports some failures in the response body
		return "", errors.New(resp.Error.Message)
	}
	return resp.SecureURL, nil
}

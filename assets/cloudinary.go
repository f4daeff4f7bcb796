// Package assets uploads material images to the Cloudinary asset host.
package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/buildersupply/config"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ErrNotConfigured is returned when an upload is attempted without
// Cloudinary credentials in the configuration.
var ErrNotConfigured = errors.New("asset host not configured")

// Uploader sends an in-memory image buffer to the asset host and
// returns the hosted URL plus an opaque asset id.
type Uploader interface {
	UploadImage(ctx context.Context, buf []byte) (url, assetID string, err error)
}

type cloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// New builds an Uploader from the Cloudinary configuration, or nil
// when no credentials are configured.
func New(cfg *config.CloudinaryConfig) (Uploader, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, nil
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to configure asset host: %w", err)
	}
	return &cloudinaryUploader{cld: cld}, nil
}

// UploadImage uploads the buffer into the materials folder, keeping
// the original filename and overwriting on re-upload.
func (u *cloudinaryUploader) UploadImage(ctx context.Context, buf []byte) (string, string, error) {
	result, err := u.cld.Upload.Upload(ctx, bytes.NewReader(buf), uploader.UploadParams{
		Folder:         "materials",
		UseFilename:    api.Bool(true),
		UniqueFilename: api.Bool(false),
		Overwrite:      api.Bool(true),
	})
	if err != nil {
		log.Printf("Error uploading image to asset host: %v", err)
		return "", "", fmt.Errorf("image upload failed: %w", err)
	}
	return result.SecureURL, result.PublicID, nil
}

// Default is the process-wide uploader, set during startup.
var Default Uploader

// Initialize configures the process-wide uploader.
func Initialize(cfg *config.CloudinaryConfig) error {
	up, err := New(cfg)
	if err != nil {
		return err
	}
	Default = up
	return nil
}

// Upload sends the buffer through the process-wide uploader.
func Upload(ctx context.Context, buf []byte) (string, string, error) {
	if Default == nil {
		return "", "", ErrNotConfigured
	}
	return Default.UploadImage(ctx, buf)
}

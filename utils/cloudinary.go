package utils

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/rtharindu/echannaling-admin/config"
)

// CloudinaryUploader stores profile images and returns their secure URL.
type CloudinaryUploader struct {
	cld          *cloudinary.Cloudinary
	uploadPreset string
}

func NewCloudinaryUploader(cfg *config.Config) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryName, cfg.CloudinaryKey, cfg.CloudinarySecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld, uploadPreset: cfg.CloudinaryPreset}, nil
}

// Upload accepts anything the Cloudinary SDK can read: a path, URL or io.Reader.
func (u *CloudinaryUploader) Upload(ctx context.Context, file interface{}, publicID, folder string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         folder,
		UploadPreset:   u.uploadPreset,
		Transformation: "c_thumb,w_200,h_200",
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", publicID, err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("upload %s: %s", publicID, resp.Error.Message)
	}
	return resp.SecureURL, nil
}

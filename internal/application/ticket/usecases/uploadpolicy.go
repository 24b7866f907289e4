package usecases

import (
	"fixmylab/internal/shared/errors"
)

// MaxUploadSize is the per-file limit for attachments.
const MaxUploadSize = 10 * 1024 * 1024

// allowedUploadTypes is the accept policy for attachments. It matches the
// public form's client-side policy and is re-enforced here so a crafted
// request cannot bypass it.
var allowedUploadTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"video/mp4":       true,
	"video/quicktime": true,
	"video/webm":      true,
}

// ValidateUpload rejects disallowed MIME types and oversized files before
// any storage call is made.
func ValidateUpload(contentType string, size int64) error {
	if !allowedUploadTypes[contentType] {
		return errors.NewValidationError(
			"unsupported file type",
			"only JPG, PNG, GIF, WebP images and MP4, MOV, WebM videos are accepted",
		)
	}
	if size > MaxUploadSize {
		return errors.NewValidationError(
			"file too large",
			"files must be smaller than 10MB",
		)
	}
	return nil
}

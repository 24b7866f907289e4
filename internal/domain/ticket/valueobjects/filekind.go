package valueobjects

import (
	"fmt"
	"path"
	"strings"
)

// FileKind classifies an attachment as image or video. The kind is derived
// from the filename extension, not from content sniffing: a known image
// extension maps to image, anything else accepted by the upload policy is
// treated as video.
type FileKind string

const (
	FileKindImage FileKind = "image"
	FileKindVideo FileKind = "video"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func (k FileKind) String() string {
	return string(k)
}

func (k FileKind) IsValid() bool {
	return k == FileKindImage || k == FileKindVideo
}

// NewFileKind creates a FileKind from a string with validation.
func NewFileKind(s string) (FileKind, error) {
	k := FileKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid file kind: %s", s)
	}
	return k, nil
}

// FileKindFromFilename derives the kind from the filename extension.
func FileKindFromFilename(filename string) FileKind {
	ext := strings.ToLower(path.Ext(filename))
	if imageExtensions[ext] {
		return FileKindImage
	}
	return FileKindVideo
}

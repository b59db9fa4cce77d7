package common

import (
	"path/filepath"
	"strings"
)

// MediaFileType represents the stored media kind.
type MediaFileType string

const (
	MediaFileTypeImage MediaFileType = "image"
	MediaFileTypeVideo MediaFileType = "video"
)

func (mft MediaFileType) String() string {
	return string(mft)
}

func (mft MediaFileType) IsValid() bool {
	return mft == MediaFileTypeImage || mft == MediaFileTypeVideo
}

// MaxMediaSize is the byte cap on a single uploaded media file.
const MaxMediaSize = 10 * 1024 * 1024 // 10 MB

var imageExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
}

var videoExtensions = map[string]bool{
	"mp4":  true,
	"mov":  true,
	"webm": true,
}

// DetectMediaType classifies a filename by extension. The bool is false when
// the extension is outside the allow-list.
func DetectMediaType(filename string) (MediaFileType, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if imageExtensions[ext] {
		return MediaFileTypeImage, true
	}
	if videoExtensions[ext] {
		return MediaFileTypeVideo, true
	}
	return "", false
}

// ContentTypeFor returns the MIME type to serve a stored file with.
func ContentTypeFor(filename string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "mp4":
		return "video/mp4"
	case "mov":
		return "video/quicktime"
	case "webm":
		return "video/webm"
	default:
		return "application/octet-stream"
	}
}

package constants

import "strings"

// AttachmentTypes holds the attachment kinds the Scale task API accepts.
var AttachmentTypes = []string{"image", "video", "audio", "text", "website", "pdf"}

// DefaultAttachmentType is used when a task does not name one.
const DefaultAttachmentType = "image"

// NormalizeAttachmentType lowercases and trims an attachment type value.
func NormalizeAttachmentType(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

// IsValidAttachmentType reports whether t names a supported attachment kind.
func IsValidAttachmentType(t string) bool {
	n := NormalizeAttachmentType(t)
	for _, at := range AttachmentTypes {
		if n == at {
			return true
		}
	}
	return false
}

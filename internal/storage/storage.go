package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
)

// BlobStore stores uploaded image bytes under a caller-chosen key. Reusing a
// key overwrites, so keys must be collision-resistant (see ObjectKey).
// Delete removes a stored object; a missing key is not an error.
type BlobStore interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Delete(ctx context.Context, key string) error
}

// ObjectKey builds the storage key for an upload:
// {memberId}_{timestampMicroseconds}_{sanitizedOriginalFilename}.
// Member id plus a microsecond timestamp keeps concurrent uploads from
// colliding even for identical filenames.
func ObjectKey(memberID int64, filename string) string {
	return fmt.Sprintf("%d_%d_%s", memberID, time.Now().UnixMicro(), SanitizeFilename(filename))
}

// SanitizeFilename strips any path component and reduces the name to
// [A-Za-z0-9._-], so the key is safe to embed in a URL.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	out := strings.Trim(b.String(), "._")
	if out == "" {
		return "upload"
	}
	return out
}

// DeliveryLink composes the public CDN URL for a stored object. Pure string
// assembly, no network call.
func DeliveryLink(distributionDomain, key string) string {
	return fmt.Sprintf("https://%s/%s", distributionDomain, key)
}

package store

import (
	"context"
	"strings"
	"time"
)

type UploadParams struct {
	Owner  string
	Data   []byte
	Public bool
}

type UploadResult struct {
	Bucket string
	Key    string
	URL    string
}

// Uploader places one generated image into the bucket matching its visibility
// and returns where it landed. Bucket policy, not this interface, decides who
// can actually read the object.
type Uploader interface {
	Upload(context.Context, UploadParams) (UploadResult, error)
}

// keyTimeFormat is RFC 3339 with millisecond precision; ObjectKey replaces the
// characters S3 consoles and CDNs tend to mangle.
const keyTimeFormat = "2006-01-02T15:04:05.000Z"

// ObjectKey derives the storage key for an upload. Uniqueness rests on the
// millisecond timestamp per owner; there is no collision check.
func ObjectKey(owner string, now time.Time) string {
	ts := now.UTC().Format(keyTimeFormat)
	ts = strings.NewReplacer(":", "-", ".", "-").Replace(ts)
	return owner + "/" + ts + "-generated.jpg"
}

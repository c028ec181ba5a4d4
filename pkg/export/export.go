package export

import (
	"bytes"
	"context"
	"strings"
)

// DefaultFileName is used when no output path is given.
const DefaultFileName = "generated_strings.txt"

// Exporter writes a rendered batch somewhere.
type Exporter interface {
	Export(ctx context.Context, lines []string) (Result, error)
}

// Result describes a completed export.
type Result struct {
	// Location is an absolute path or an s3:// URL.
	Location string
	Size     int64
}

// Render joins lines with a trailing newline after each one.
func Render(lines []string) []byte {
	var buf bytes.Buffer
	for _, l := range lines {
		buf.WriteString(l)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// IsS3URL reports whether target uses the s3:// scheme.
func IsS3URL(target string) bool {
	return strings.HasPrefix(target, s3Scheme)
}

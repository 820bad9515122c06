// Package mimetype detects a file's MIME type, preferring content
// sniffing and falling back to an extension map, then "unknown".
//
// This adapts the teacher's (whatsoevan-backupbozo) ExtractorRegistry
// pattern from metadata/extractor.go — an ordered list of strategies
// tried until one succeeds, always-last fallback guaranteed to answer —
// repurposed from date extraction to MIME detection.
package mimetype

import (
	"mime"
	"path/filepath"
	"strings"

	gomimetype "github.com/gabriel-vasile/mimetype"
)

// Detect returns the MIME type for path, content-sniffing first and
// falling back to an extension-based guess, then "unknown" per spec §3.
func Detect(path string) string {
	if mt, err := gomimetype.DetectFile(path); err == nil && mt != nil {
		t := mt.String()
		if t != "" {
			return stripParams(t)
		}
	}
	if ext := filepath.Ext(path); ext != "" {
		if t := mime.TypeByExtension(ext); t != "" {
			return stripParams(t)
		}
	}
	return "unknown"
}

func stripParams(t string) string {
	if i := strings.IndexByte(t, ';'); i >= 0 {
		return strings.TrimSpace(t[:i])
	}
	return t
}

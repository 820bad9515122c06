package record

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
)

// HashChunkSize is the read chunk size for content hashing (spec §4.6).
const HashChunkSize = 8 * 1024

// ComputeContentHash streams path in HashChunkSize chunks through MD5 and
// returns the lowercase hex digest. Read errors (permission, I/O) yield
// an empty string rather than an error — the caller logs at debug and
// lets the record flow with ContentHash = "" per spec §4.6/§7.
//
// MD5 was chosen, not SHA-256, to match the literal algorithm used by
// original_source/metadata.py:_compute_md5 — see DESIGN.md.
//
// Grounded on the teacher's files.go:copyFileWithHash streaming pattern,
// adapted to hash-only (no destination writer, since fshunter never
// copies file bodies).
func ComputeContentHash(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	h := md5.New()
	buf := make([]byte, HashChunkSize)
	// Wrapping f hides *os.File's WriteTo, which would bypass buf.
	if _, err := io.CopyBuffer(h, struct{ io.Reader }{f}, buf); err != nil {
		return ""
	}
	return hex.EncodeToString(h.Sum(nil))
}

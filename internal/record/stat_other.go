//go:build !windows && !linux

package record

import "os"

// StatEnrich is the generic-Unix fallback: it has no portable way to read
// ctime without an OS-specific syscall struct field, so ctime falls back
// to mtime.
func (r *FileRecord) StatEnrich(info os.FileInfo) {
	r.SizeBytes = info.Size()
	r.MTime = info.ModTime()
	r.CTime = info.ModTime()
	r.Permissions = info.Mode().String()
}

// ResolveOwner has no portable way to resolve a uid on this platform,
// matching the spec's documented fallback behavior for platforms that
// cannot resolve an owner.
func (r *FileRecord) ResolveOwner(info os.FileInfo) {
	r.Owner = "N/A"
}

//go:build windows

package record

import "os"

// StatEnrich fills in the Tier1-cheap fields on Windows.
func (r *FileRecord) StatEnrich(info os.FileInfo) {
	r.SizeBytes = info.Size()
	r.MTime = info.ModTime()
	r.CTime = info.ModTime()
	r.Permissions = info.Mode().String()
}

// ResolveOwner on Windows has no POSIX owner concept readily available
// without additional syscalls; owner resolution yields "N/A" per spec §3.
func (r *FileRecord) ResolveOwner(info os.FileInfo) {
	r.Owner = "N/A"
}

//go:build linux

package record

import (
	"os"
	"os/user"
	"strconv"
	"syscall"
	"time"
)

// StatEnrich fills in the Tier1-cheap fields (SizeBytes, CTime, MTime,
// Permissions) from a stat of FullPath. This is the cost-ordered
// counterpart of ResolveOwner: it must stay cheap enough to run on every
// Tier0 survivor, ahead of Tier1.Keep (spec §4.3).
//
// ctime extraction is grounded on weka-locar's GetFileTimes, which pulls
// the platform-specific syscall.Stat_t out of os.FileInfo.Sys().
func (r *FileRecord) StatEnrich(info os.FileInfo) {
	r.SizeBytes = info.Size()
	r.MTime = info.ModTime()
	r.Permissions = info.Mode().String()
	r.CTime = info.ModTime()

	if sys, ok := info.Sys().(*syscall.Stat_t); ok {
		r.CTime = time.Unix(sys.Ctim.Sec, sys.Ctim.Nsec)
	}
}

// ResolveOwner performs the user.LookupId call, which is a Tier2
// enrichment per spec §4.3 — it must only run for Tier0/Tier1 survivors,
// alongside MIME detection. Lookup failures are not fatal: the field is
// left as "N/A", mirroring Python's
// original_source/metadata.py:_get_owner catching NotImplementedError/OSError.
func (r *FileRecord) ResolveOwner(info os.FileInfo) {
	r.Owner = "N/A"
	sys, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return
	}
	if u, err := user.LookupId(strconv.FormatUint(uint64(sys.Uid), 10)); err == nil {
		r.Owner = u.Username
	}
}

// SPDX-License-Identifier: MPL-2.0

//go:build linux

package switcher

import "golang.org/x/sys/unix"

// Filesystem magic numbers for network and virtualized filesystems,
// from statfs(2). FUSE is included because sshfs and friends mount
// through it; a local FUSE mount being skipped is the acceptable cost
// of never probing executables across a network boundary.
const (
	nfsSuperMagic    = 0x6969
	smbSuperMagic    = 0x517b
	smb2SuperMagic   = 0xfe534d42
	cifsSuperMagic   = 0xff534d42
	ncpSuperMagic    = 0x564c
	v9fsSuperMagic   = 0x01021997
	afsSuperMagic    = 0x5346414f
	fuseSuperMagic   = 0x65735546
	cephSuperMagic   = 0x00c36400
	ocfs2SuperMagic  = 0x7461636f
	gfs2SuperMagic   = 0x01161970
	lustreSuperMagic = 0x0bd00bd0
)

// isRemoteDir reports whether dir lives on a remote or virtualized
// filesystem. Errors from statfs are treated as not-remote so that an
// unreadable local directory still fails in the locator with a precise
// diagnostic instead of being silently skipped here.
func isRemoteDir(dir string) bool {
	var st unix.Statfs_t
	if err := unix.Statfs(dir, &st); err != nil {
		return false
	}

	switch uint32(st.Type) {
	case nfsSuperMagic, smbSuperMagic, smb2SuperMagic, cifsSuperMagic,
		ncpSuperMagic, v9fsSuperMagic, afsSuperMagic, fuseSuperMagic,
		cephSuperMagic, ocfs2SuperMagic, gfs2SuperMagic, lustreSuperMagic:
		return true
	}
	return false
}

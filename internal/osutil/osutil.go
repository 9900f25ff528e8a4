// Package osutil holds operating system constants shared by the planner's
// packages.
package osutil

const (
	Windows = "windows"
)

const (
	DirPermission  = 0o755
	FilePermission = 0o644
	DBPermission   = 0o600
)

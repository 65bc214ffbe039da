// Package osutil holds platform constants
package osutil

const Windows = "windows"

const ExitError = 1

const (
	DirPermission  = 0o755
	FilePermission = 0o644
)

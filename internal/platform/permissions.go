package platform

import (
	"os"
	"runtime"
)

// ExecutableMode is applied to bundled executables on Unix systems.
const ExecutableMode os.FileMode = 0755

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// IsExecutable reports whether any execute bit is set on the file.
// On Windows it reports true whenever the file exists, since execute
// permission is not expressed in the mode bits there.
func IsExecutable(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if runtime.GOOS == "windows" {
		return true, nil
	}
	return info.Mode()&0111 != 0, nil
}

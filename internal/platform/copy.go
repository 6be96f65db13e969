package platform

import (
	"fmt"
	"io"
	"os"
	"runtime"
)

// CopyFile copies src to dst, replacing dst, and carries over the source's
// permission bits.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return err
	}
	return Chmod(dst, info.Mode().Perm())
}

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// ReadLinkTarget returns the target of a symlink or junction.
func ReadLinkTarget(path string) (string, error) {
	return os.Readlink(path)
}

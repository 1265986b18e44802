package manifest

import (
	"fmt"
	"os"
)

// MarkExecutable adds execute permission for every class (user, group,
// other) that already has read permission on path.
func MarkExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat manifest: %w", err)
	}
	mode := info.Mode().Perm()
	if err := os.Chmod(path, mode|(mode&0o444)>>2); err != nil {
		return fmt.Errorf("marking manifest executable: %w", err)
	}
	return nil
}

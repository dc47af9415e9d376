//go:build !unix

package lockfile

import (
	"fmt"
	"os"
)

// Lock creates path exclusively and removes it on unlock. This is a
// weaker guarantee than flock: a crashed run leaves a stale lock file
// behind.
func Lock(path string) (unlock func(), err error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o666)
	if err != nil {
		return nil, fmt.Errorf("lock %s: another run holds the lock: %w", path, err)
	}
	f.Close()
	return func() {
		os.Remove(path)
	}, nil
}

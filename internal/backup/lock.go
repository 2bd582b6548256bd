package backup

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/layertools/djinit/internal/project"
)

// lockFileName lives inside each role's backup directory while a
// backup-mutate-write or restore sequence is in flight.
const lockFileName = ".djinit.lock"

// Lock takes an advisory lock for the given role's backup directory and
// returns the release function. The tool assumes a single operator running
// one command at a time; the lock exists so that two accidental concurrent
// invocations fail loudly instead of interleaving writes.
func (m *Manager) Lock(role project.Role) (func(), error) {
	dir, err := m.cfg.BackupDir(role)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, lockFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("another djinit invocation appears to be running (lock file %s exists); remove it if that is not the case", path)
		}
		return nil, fmt.Errorf("failed to create lock file %s: %w", path, err)
	}
	fmt.Fprintf(f, "%d\n", os.Getpid())
	f.Close()

	return func() { os.Remove(path) }, nil
}

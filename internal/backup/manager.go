// Package backup snapshots the project configuration files before they are
// mutated and restores them on request.
//
// Each configuration role has its own backup directory; a backup is a plain
// copy of the live file named with a fixed-width, lexicographically sortable
// timestamp. There is no index: the directory listing is the catalog, and
// "latest" is simply the last name in sorted order.
package backup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/layertools/djinit/internal/project"
)

// ErrNoBackup is returned by Latest and Restore when the backup directory
// for the requested role holds no snapshots.
var ErrNoBackup = errors.New("no backup found")

// backupSuffix marks snapshot files; anything else in the directory is
// ignored when listing.
const backupSuffix = ".bak"

// timestampFormat is fixed-width so that filename order equals creation
// order. Nanoseconds are appended separately, zero-padded to nine digits,
// to disambiguate snapshots taken within the same second.
const timestampFormat = "20060102_150405"

// Snapshot is one backup record: a full copy of a configuration file at a
// point in time.
type Snapshot struct {
	Role      project.Role
	Path      string
	CreatedAt time.Time
}

// Manager creates, lists, and restores configuration-file backups for one
// project.
type Manager struct {
	cfg *project.Config

	// now is swappable for tests that need deterministic timestamps.
	now func() time.Time
}

// New creates a backup Manager for the given project.
func New(cfg *project.Config) *Manager {
	return &Manager{cfg: cfg, now: time.Now}
}

// Create copies the live configuration file for role into the role's backup
// directory and returns the new snapshot. The live file is not modified.
func (m *Manager) Create(role project.Role) (*Snapshot, error) {
	live, err := m.cfg.FileForRole(role)
	if err != nil {
		return nil, err
	}
	dir, err := m.cfg.BackupDir(role)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory %s: %w", dir, err)
	}

	content, err := os.ReadFile(live)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", live, err)
	}

	created := m.now()
	name := fmt.Sprintf("%s.%s.%09d%s",
		filepath.Base(live), created.Format(timestampFormat), created.Nanosecond(), backupSuffix)
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, content, 0644); err != nil {
		return nil, fmt.Errorf("failed to write backup %s: %w", path, err)
	}

	return &Snapshot{Role: role, Path: path, CreatedAt: created}, nil
}

// List returns all snapshots for role, oldest first. A missing backup
// directory is treated as an empty catalog.
func (m *Manager) List(role project.Role) ([]*Snapshot, error) {
	live, err := m.cfg.FileForRole(role)
	if err != nil {
		return nil, err
	}
	dir, err := m.cfg.BackupDir(role)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list backup directory %s: %w", dir, err)
	}

	prefix := filepath.Base(live) + "."
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, backupSuffix) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	snaps := make([]*Snapshot, 0, len(names))
	for _, name := range names {
		snaps = append(snaps, &Snapshot{
			Role:      role,
			Path:      filepath.Join(dir, name),
			CreatedAt: parseTimestamp(name, prefix),
		})
	}
	return snaps, nil
}

// Latest returns the most recent snapshot for role, or ErrNoBackup when the
// catalog is empty.
func (m *Manager) Latest(role project.Role) (*Snapshot, error) {
	snaps, err := m.List(role)
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, fmt.Errorf("role %s: %w", role, ErrNoBackup)
	}
	return snaps[len(snaps)-1], nil
}

// Restore overwrites the live configuration file for role with the most
// recent snapshot and returns the snapshot that was applied. When no backup
// exists the live file is left untouched and ErrNoBackup is returned.
func (m *Manager) Restore(role project.Role) (*Snapshot, error) {
	snap, err := m.Latest(role)
	if err != nil {
		return nil, err
	}

	unlock, err := m.Lock(role)
	if err != nil {
		return nil, err
	}
	defer unlock()

	live, err := m.cfg.FileForRole(role)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(snap.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup %s: %w", snap.Path, err)
	}
	if err := os.WriteFile(live, content, 0644); err != nil {
		return nil, fmt.Errorf("failed to restore %s from %s: %w", live, snap.Path, err)
	}

	return snap, nil
}

// parseTimestamp recovers the creation time embedded in a backup filename.
// Returns the zero time for names it cannot parse; listing still works, the
// snapshot just has no display timestamp.
func parseTimestamp(name, prefix string) time.Time {
	ts := strings.TrimSuffix(strings.TrimPrefix(name, prefix), backupSuffix)
	// ts is "20060102_150405.nnnnnnnnn"; the nanosecond part is only there
	// to break ties, second precision is enough for display.
	if idx := strings.IndexByte(ts, '.'); idx != -1 {
		ts = ts[:idx]
	}
	t, err := time.ParseInLocation(timestampFormat, ts, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

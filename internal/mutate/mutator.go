package mutate

import (
	"fmt"
	"os"

	"github.com/layertools/djinit/internal/backup"
	"github.com/layertools/djinit/internal/project"
)

// Result describes one attempted configuration-file mutation.
type Result struct {
	Role    project.Role
	Path    string           // live file that was (or would have been) edited
	Backup  *backup.Snapshot // pre-image snapshot, taken before any write
	Changed bool             // false when the entry was already present
	Entry   string           // the line that was inserted, for reporting
}

// Mutator applies application registrations to the project configuration
// files. Every mutation is preceded by a backup of the target file; backup
// and write are sequenced, not transactional. If the write itself fails the
// fresh backup is copied straight back, so a failed write cannot leave a
// half-edited file behind.
type Mutator struct {
	cfg     *project.Config
	backups *backup.Manager
}

// New creates a Mutator for the given project.
func New(cfg *project.Config, backups *backup.Manager) *Mutator {
	return &Mutator{cfg: cfg, backups: backups}
}

// RegisterApp inserts appName into the configuration file for role.
// role must be RoleSettings (application registry) or RoleURLs (routing).
func (m *Mutator) RegisterApp(role project.Role, appName string) (*Result, error) {
	live, err := m.cfg.FileForRole(role)
	if err != nil {
		return nil, err
	}

	unlock, err := m.backups.Lock(role)
	if err != nil {
		return nil, err
	}
	defer unlock()

	// Snapshot first. A crash after this point leaves at worst an unused
	// backup on disk, never a lost pre-image.
	snap, err := m.backups.Create(role)
	if err != nil {
		return nil, fmt.Errorf("backup before updating %s failed: %w", live, err)
	}

	content, err := os.ReadFile(live)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", live, err)
	}

	var (
		newContent string
		changed    bool
		entry      string
		insertErr  error
	)
	switch role {
	case project.RoleSettings:
		newContent, changed, insertErr = InsertAppEntry(string(content), appName)
		entry = AppEntry(appName)
	case project.RoleURLs:
		newContent, changed, insertErr = InsertRouteEntry(string(content), appName)
		entry = RouteEntry(appName)
	default:
		return nil, fmt.Errorf("unknown configuration role %q", role)
	}
	if insertErr != nil {
		return nil, &ParseError{Role: role, Path: live, Reason: insertErr.Error()}
	}

	result := &Result{Role: role, Path: live, Backup: snap, Changed: changed, Entry: entry}
	if !changed {
		return result, nil
	}

	if err := os.WriteFile(live, []byte(newContent), 0644); err != nil {
		// Roll the pre-image back over whatever the failed write left.
		if preimage, readErr := os.ReadFile(snap.Path); readErr == nil {
			if restoreErr := os.WriteFile(live, preimage, 0644); restoreErr == nil {
				return nil, fmt.Errorf("failed to write %s (restored from backup %s): %w", live, snap.Path, err)
			}
		}
		return nil, fmt.Errorf("failed to write %s (manual restore from %s may be required): %w", live, snap.Path, err)
	}

	return result, nil
}

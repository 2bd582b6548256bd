package store

import "time"

// Operation names recorded in the audit log.
const (
	OpInit        = "init"         // full project scaffold
	OpAddApp      = "add-app"      // application skeleton rendered
	OpAutoUpdate  = "auto-update"  // configuration file mutated
	OpBackup      = "backup"       // snapshot created
	OpRestore     = "restore"      // snapshot copied over live file
	OpWatchBackup = "watch-backup" // snapshot created by the watch command
)

// Event is one audit-log row.
type Event struct {
	ID        int64
	CreatedAt time.Time
	Operation string
	App       string // application name, when the operation concerns one
	Role      string // configuration role, when the operation concerns one
	Detail    string // inserted entry, backup path, or similar context
}

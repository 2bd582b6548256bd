// Package output provides terminal output utilities for djinit: column
// tables for backup and history listings, and the ✓/✗/! status lines the
// scaffolder prints while it works. ANSI colors are emitted only when stdout
// is a TTY and NO_COLOR is unset.
package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/layertools/djinit/internal/backup"
	"github.com/layertools/djinit/internal/store"
)

const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// RenderBackupTable renders the snapshots of one role, newest first.
func RenderBackupTable(snaps []*backup.Snapshot) string {
	if len(snaps) == 0 {
		return "No backups found.\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-10s %-21s %s\n", "Role", "Created", "File"))
	sb.WriteString(strings.Repeat("─", 72))
	sb.WriteString("\n")

	for i := len(snaps) - 1; i >= 0; i-- {
		snap := snaps[i]
		sb.WriteString(fmt.Sprintf("%-10s %-21s %s\n",
			snap.Role,
			formatTime(snap.CreatedAt),
			snap.Path))
	}
	return sb.String()
}

// RenderHistoryTable renders audit-log events, newest first (the order
// store.ListEvents returns them in).
func RenderHistoryTable(events []*store.Event) string {
	if len(events) == 0 {
		return "No recorded history.\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-5s %-21s %-13s %-12s %-10s %s\n",
		"ID", "When", "Operation", "App", "Role", "Detail"))
	sb.WriteString(strings.Repeat("─", 96))
	sb.WriteString("\n")

	for _, e := range events {
		sb.WriteString(fmt.Sprintf("%-5d %-21s %-13s %-12s %-10s %s\n",
			e.ID,
			formatTime(e.CreatedAt),
			truncate(e.Operation, 13),
			truncate(orDash(e.App), 12),
			truncate(orDash(e.Role), 10),
			truncate(e.Detail, 44)))
	}
	return sb.String()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Format("2006-01-02 15:04:05")
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// truncate shortens s to max characters, appending "…" when truncated.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}

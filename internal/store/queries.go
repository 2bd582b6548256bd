package store

import (
	"fmt"
	"time"
)

// InsertEvent appends an event to the audit log and returns its ID.
func (s *Store) InsertEvent(e *Event) (int64, error) {
	created := e.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO events (created_at, operation, app, role, detail) VALUES (?, ?, ?, ?, ?)`,
		created, e.Operation, e.App, e.Role, e.Detail,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get event ID: %w", err)
	}
	return id, nil
}

// ListEvents returns up to limit events, newest first. limit <= 0 means all.
func (s *Store) ListEvents(limit int) ([]*Event, error) {
	query := `SELECT id, created_at, operation, app, role, detail FROM events ORDER BY created_at DESC, id DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		e := &Event{}
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.Operation, &e.App, &e.Role, &e.Detail); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}
	return events, nil
}

// CountEvents returns the number of events for the given operation, or all
// events when operation is empty.
func (s *Store) CountEvents(operation string) (int, error) {
	var (
		count int
		err   error
	)
	if operation == "" {
		err = s.db.QueryRow(`SELECT COUNT(*) FROM events`).Scan(&count)
	} else {
		err = s.db.QueryRow(`SELECT COUNT(*) FROM events WHERE operation = ?`, operation).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}

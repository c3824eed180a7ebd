// Package sqlite persists completed readings in a local SQLite journal.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/henryperkins/Tarot-Master/internal/domain"
	"github.com/henryperkins/Tarot-Master/internal/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS readings (
	id         TEXT PRIMARY KEY,
	spread_id  TEXT NOT NULL,
	question   TEXT NOT NULL DEFAULT '',
	cards      TEXT NOT NULL,
	narrative  TEXT NOT NULL DEFAULT '',
	notes      TEXT NOT NULL DEFAULT '',
	favorite   INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_readings_created_at ON readings (created_at DESC);
`

// Store implements ports.JournalStore on SQLite.
type Store struct {
	db *sql.DB
}

// Open connects to the journal database and runs migrations. Use
// ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate journal db: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) SaveReading(ctx context.Context, rec ports.ReadingRecord) error {
	cards, err := json.Marshal(rec.Cards)
	if err != nil {
		return fmt.Errorf("encode cards: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO readings (id, spread_id, question, cards, narrative, notes, favorite, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.SpreadID, rec.Question, string(cards),
		rec.Narrative, rec.Notes, rec.Favorite, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reading: %w", err)
	}
	return nil
}

func (s *Store) GetReading(ctx context.Context, id string) (ports.ReadingRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, spread_id, question, cards, narrative, notes, favorite, created_at, updated_at
		FROM readings WHERE id = ?`, id)
	return scanReading(row)
}

func (s *Store) ListReadings(ctx context.Context, f ports.ListFilter) ([]ports.ReadingRecord, error) {
	q := `
		SELECT id, spread_id, question, cards, narrative, notes, favorite, created_at, updated_at
		FROM readings`
	if f.FavoritesOnly {
		q += ` WHERE favorite = 1`
	}
	q += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}
	defer rows.Close()

	var out []ports.ReadingRecord
	for rows.Next() {
		rec, err := scanReading(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *Store) AttachNarrative(ctx context.Context, id, narrative string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE readings SET narrative = ?, updated_at = ?
		WHERE id = ? AND narrative = ''`,
		narrative, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("attach narrative: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("attach narrative: %w", err)
	}
	if n == 0 {
		// Either the reading is gone or it already has a narrative.
		if _, err := s.GetReading(ctx, id); err != nil {
			return err
		}
		return domain.ErrNarrativeExists
	}
	return nil
}

func (s *Store) UpdateEntry(ctx context.Context, id string, upd ports.EntryUpdate) (ports.ReadingRecord, error) {
	rec, err := s.GetReading(ctx, id)
	if err != nil {
		return ports.ReadingRecord{}, err
	}
	if upd.Notes != nil {
		rec.Notes = *upd.Notes
	}
	if upd.Favorite != nil {
		rec.Favorite = *upd.Favorite
	}
	rec.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE readings SET notes = ?, favorite = ?, updated_at = ? WHERE id = ?`,
		rec.Notes, rec.Favorite, rec.UpdatedAt, id)
	if err != nil {
		return ports.ReadingRecord{}, fmt.Errorf("update reading: %w", err)
	}
	return rec, nil
}

func (s *Store) DeleteReading(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM readings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete reading: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete reading: %w", err)
	}
	if n == 0 {
		return domain.ErrReadingNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReading(row scanner) (ports.ReadingRecord, error) {
	var rec ports.ReadingRecord
	var cards string
	err := row.Scan(&rec.ID, &rec.SpreadID, &rec.Question, &cards,
		&rec.Narrative, &rec.Notes, &rec.Favorite, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.ReadingRecord{}, domain.ErrReadingNotFound
	}
	if err != nil {
		return ports.ReadingRecord{}, fmt.Errorf("scan reading: %w", err)
	}
	if err := json.Unmarshal([]byte(cards), &rec.Cards); err != nil {
		return ports.ReadingRecord{}, fmt.Errorf("decode cards: %w", err)
	}
	return rec, nil
}

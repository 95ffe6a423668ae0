package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// SQLiteEventRepository implements EventRepository for SQLite.
type SQLiteEventRepository struct {
	db *sql.DB
}

func NewSQLiteEventRepository(db *sql.DB) *SQLiteEventRepository {
	return &SQLiteEventRepository{db: db}
}

func (r *SQLiteEventRepository) Append(ctx context.Context, event EventRecord) error {
	payloadBytes, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	query := `
		INSERT INTO events (id, session_id, timestamp, event_type, payload)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		event.ID, event.SessionID, event.Timestamp, event.EventType, string(payloadBytes),
	)
	if err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepository) getMany(ctx context.Context, query string, args ...interface{}) ([]EventRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []EventRecord
	for rows.Next() {
		var e EventRecord
		var payloadStr string
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Timestamp, &e.EventType, &payloadStr); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(payloadStr), &e.Payload); err != nil {
			return nil, err
		}
		records = append(records, e)
	}
	return records, rows.Err()
}

func (r *SQLiteEventRepository) GetBySessionID(ctx context.Context, sessionID string) ([]EventRecord, error) {
	query := `SELECT id, session_id, timestamp, event_type, payload FROM events WHERE session_id = ? ORDER BY timestamp ASC`
	return r.getMany(ctx, query, sessionID)
}

func (r *SQLiteEventRepository) GetByEventType(ctx context.Context, eventType string) ([]EventRecord, error) {
	query := `SELECT id, session_id, timestamp, event_type, payload FROM events WHERE event_type = ? ORDER BY timestamp ASC`
	return r.getMany(ctx, query, eventType)
}

func (r *SQLiteEventRepository) GetAll(ctx context.Context) ([]EventRecord, error) {
	query := `SELECT id, session_id, timestamp, event_type, payload FROM events ORDER BY timestamp ASC`
	return r.getMany(ctx, query)
}

// ---------------------------------------------------------
// SQLiteCandidateRepository
// ---------------------------------------------------------

// SQLiteCandidateRepository implements CandidateRepository for SQLite.
type SQLiteCandidateRepository struct {
	db *sql.DB
}

func NewSQLiteCandidateRepository(db *sql.DB) *SQLiteCandidateRepository {
	return &SQLiteCandidateRepository{db: db}
}

func (r *SQLiteCandidateRepository) ReplaceAll(ctx context.Context, candidates []CandidateRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM candidates`); err != nil {
		return fmt.Errorf("failed to clear candidates: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO candidates (token_id, type, gender, traits_json) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range candidates {
		traitsBytes, err := json.Marshal(c.Traits)
		if err != nil {
			return fmt.Errorf("failed to marshal traits for token %d: %w", c.TokenID, err)
		}
		if _, err := stmt.ExecContext(ctx, c.TokenID, c.Type, c.Gender, string(traitsBytes)); err != nil {
			return fmt.Errorf("failed to insert candidate %d: %w", c.TokenID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit population: %w", err)
	}
	return nil
}

func (r *SQLiteCandidateRepository) GetAll(ctx context.Context) ([]CandidateRecord, error) {
	query := `SELECT token_id, type, gender, traits_json FROM candidates ORDER BY token_id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []CandidateRecord
	for rows.Next() {
		c, err := scanCandidate(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, c)
	}
	return records, rows.Err()
}

func (r *SQLiteCandidateRepository) GetByTokenID(ctx context.Context, tokenID int) (*CandidateRecord, error) {
	query := `SELECT token_id, type, gender, traits_json FROM candidates WHERE token_id = ?`
	row := r.db.QueryRowContext(ctx, query, tokenID)
	c, err := scanCandidate(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *SQLiteCandidateRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&n)
	return n, err
}

func scanCandidate(scan func(...interface{}) error) (CandidateRecord, error) {
	var c CandidateRecord
	var traitsStr string
	if err := scan(&c.TokenID, &c.Type, &c.Gender, &traitsStr); err != nil {
		return c, err
	}
	if err := json.Unmarshal([]byte(traitsStr), &c.Traits); err != nil {
		return c, fmt.Errorf("failed to unmarshal traits for token %d: %w", c.TokenID, err)
	}
	return c, nil
}

// ---------------------------------------------------------
// SQLiteRulesRepository
// ---------------------------------------------------------

// SQLiteRulesRepository implements RulesRepository for SQLite.
type SQLiteRulesRepository struct {
	db *sql.DB
}

func NewSQLiteRulesRepository(db *sql.DB) *SQLiteRulesRepository {
	return &SQLiteRulesRepository{db: db}
}

func (r *SQLiteRulesRepository) Save(ctx context.Context, source, document string) (int, error) {
	query := `INSERT INTO rules_documents (source, document, loaded_at) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, source, document, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to save rules document: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read rules document id: %w", err)
	}
	return int(id), nil
}

func (r *SQLiteRulesRepository) LoadLatest(ctx context.Context) (*RulesRecord, error) {
	query := `SELECT id, source, document, loaded_at FROM rules_documents ORDER BY id DESC LIMIT 1`
	var rec RulesRecord
	err := r.db.QueryRowContext(ctx, query).Scan(&rec.ID, &rec.Source, &rec.Document, &rec.LoadedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load rules document: %w", err)
	}
	return &rec, nil
}

// ---------------------------------------------------------
// SQLiteMatchRepository
// ---------------------------------------------------------

// SQLiteMatchRepository implements MatchRepository for SQLite.
type SQLiteMatchRepository struct {
	db *sql.DB
}

func NewSQLiteMatchRepository(db *sql.DB) *SQLiteMatchRepository {
	return &SQLiteMatchRepository{db: db}
}

func (r *SQLiteMatchRepository) Save(ctx context.Context, record MatchRecord) error {
	query := `INSERT INTO matches (session_id, answers, results, top_score, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		record.SessionID, record.Answers, record.Results, record.TopScore, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}
	return nil
}

func (r *SQLiteMatchRepository) getMany(ctx context.Context, query string, args ...interface{}) ([]MatchRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var m MatchRecord
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Answers, &m.Results, &m.TopScore, &m.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, m)
	}
	return records, rows.Err()
}

func (r *SQLiteMatchRepository) GetBySessionID(ctx context.Context, sessionID string) ([]MatchRecord, error) {
	query := `SELECT id, session_id, answers, results, top_score, created_at FROM matches WHERE session_id = ? ORDER BY created_at ASC`
	return r.getMany(ctx, query, sessionID)
}

func (r *SQLiteMatchRepository) GetRecent(ctx context.Context, limit int) ([]MatchRecord, error) {
	query := `SELECT id, session_id, answers, results, top_score, created_at FROM matches ORDER BY id DESC LIMIT ?`
	return r.getMany(ctx, query, limit)
}

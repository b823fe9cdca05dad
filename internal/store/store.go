// Package store persists the generated ledger in SQLite so every command
// (and the TUI) works against the same immutable transaction set until the
// user regenerates it.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fluxo/internal/model"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // register sqlite driver
)

// Store is a SQLite-backed ledger snapshot.
type Store struct {
	db *sql.DB
}

// Meta describes the window and seed a stored ledger was generated with.
// AnchorDate is the "today" the window and statuses are relative to.
type Meta struct {
	AnchorDate  time.Time
	PastDays    int
	FutureDays  int
	Seed        int64
	GeneratedAt time.Time
}

// DefaultPath returns the XDG-compliant ledger database path.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "fluxo", "ledger.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "fluxo", "ledger.db")
}

// Open opens or creates the ledger database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveLedger replaces the stored ledger wholesale with the given snapshot.
func (s *Store) SaveLedger(meta Meta, txs []model.Transaction) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM transactions"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM ledger_meta"); err != nil {
		return err
	}

	_, err = tx.Exec(`INSERT INTO ledger_meta
		(id, anchor_date, past_days, future_days, seed, generated_at)
		VALUES (1, ?, ?, ?, ?, ?)`,
		meta.AnchorDate.Format("2006-01-02"), meta.PastDays, meta.FutureDays,
		meta.Seed, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO transactions
		(id, description, tx_date, amount, tx_type, cost_center_id, project_id, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, t := range txs {
		_, err = stmt.Exec(
			t.ID, t.Description, t.Date.Format("2006-01-02"), t.Amount.String(),
			string(t.Type), t.CostCenterID, t.ProjectID, string(t.Status),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadLedger returns the stored ledger, or ok=false when none was saved yet.
func (s *Store) LoadLedger() (Meta, []model.Transaction, bool, error) {
	var meta Meta
	var anchor, generated string
	err := s.db.QueryRow(`SELECT anchor_date, past_days, future_days, seed, generated_at
		FROM ledger_meta WHERE id = 1`).
		Scan(&anchor, &meta.PastDays, &meta.FutureDays, &meta.Seed, &generated)
	if err == sql.ErrNoRows {
		return Meta{}, nil, false, nil
	}
	if err != nil {
		return Meta{}, nil, false, err
	}

	if meta.AnchorDate, err = time.Parse("2006-01-02", anchor); err != nil {
		return Meta{}, nil, false, fmt.Errorf("parsing anchor date: %w", err)
	}
	if meta.GeneratedAt, err = time.Parse(time.RFC3339, generated); err != nil {
		return Meta{}, nil, false, fmt.Errorf("parsing generated_at: %w", err)
	}

	rows, err := s.db.Query(`SELECT id, description, tx_date, amount, tx_type,
		cost_center_id, project_id, status FROM transactions ORDER BY tx_date, id`)
	if err != nil {
		return Meta{}, nil, false, err
	}
	defer func() { _ = rows.Close() }()

	var txs []model.Transaction
	for rows.Next() {
		var t model.Transaction
		var date, amount, typ, status string
		var projectID sql.NullString
		if err := rows.Scan(&t.ID, &t.Description, &date, &amount, &typ,
			&t.CostCenterID, &projectID, &status); err != nil {
			return Meta{}, nil, false, err
		}
		if t.Date, err = time.Parse("2006-01-02", date); err != nil {
			return Meta{}, nil, false, fmt.Errorf("parsing date of %s: %w", t.ID, err)
		}
		if t.Amount, err = decimal.NewFromString(amount); err != nil {
			return Meta{}, nil, false, fmt.Errorf("parsing amount of %s: %w", t.ID, err)
		}
		t.Type = model.TxType(typ)
		t.Status = model.TxStatus(status)
		t.ProjectID = projectID.String
		txs = append(txs, t)
	}

	return meta, txs, true, rows.Err()
}

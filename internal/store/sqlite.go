package store

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	sqlite "github.com/mattn/go-sqlite3"
)

type DBTX interface {
	Exec(query string, args ...any) (sql.Result, error)
	Prepare(query string) (*sql.Stmt, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// SQLiteStore keeps the snapshot in an accounts table, one row per account.
type SQLiteStore struct {
	db DBTX
}

func NewSQLiteStore(dbPath string, migrationsFS fs.FS) (*SQLiteStore, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("can not create database directory %s: %w", dbDir, err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("can not open database : %w", err)
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("can not connect with database : %w", err)
	}
	if err := runMigrations(db, migrationsFS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database : %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) ExecTx(fn func(*SQLiteStore) error) error {
	db, ok := s.db.(*sql.DB)
	if !ok {
		return fmt.Errorf("store is already in a transaction")
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}

	txStore := &SQLiteStore{db: tx}

	err = fn(txStore)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %v, rb err: %v", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	if db, ok := s.db.(*sql.DB); ok {
		return db.Close()
	}
	return nil
}

func (s *SQLiteStore) Load() (Snapshot, error) {
	rows, err := s.db.Query(`
        SELECT id, name, type, balance
        FROM accounts
        ORDER BY position
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	snap := Snapshot{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Record.Name, &e.Record.Type, &e.Record.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		snap = append(snap, e)
	}

	return snap, rows.Err()
}

// Save replaces every row inside a single transaction.
func (s *SQLiteStore) Save(snap Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	return s.ExecTx(func(tx *SQLiteStore) error {
		if _, err := tx.db.Exec(`DELETE FROM accounts`); err != nil {
			return fmt.Errorf("failed to clear accounts: %w", err)
		}

		stmt, err := tx.db.Prepare(`
            INSERT INTO accounts (id, name, type, balance, position)
            VALUES (?, ?, ?, ?, ?)
        `)
		if err != nil {
			return fmt.Errorf("failed to prepare SQL : %w", err)
		}
		defer func() {
			_ = stmt.Close()
		}()

		for i, e := range snap {
			_, err := stmt.Exec(e.ID, e.Record.Name, e.Record.Type, e.Record.Balance, i)
			if err != nil {
				var sqliteErr sqlite.Error
				if errors.As(err, &sqliteErr) && errors.Is(sqliteErr.Code, sqlite.ErrConstraint) {
					return fmt.Errorf("failed to save account '%s': %w", e.ID, ErrDuplicateID)
				}
				return fmt.Errorf("failed to executing SQL insertion : %w", err)
			}
		}

		return nil
	})
}

func runMigrations(db *sql.DB, migrationsFS fs.FS) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to set up migrate driver : %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs source driver : %w", err)
	}

	m, err := migrate.NewWithInstance(
		"iofs",
		sourceDriver,
		"sqlite3",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to set up migrate instance : %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migration(up) : %w", err)
	}

	return nil
}

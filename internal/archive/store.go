// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive persists conversion runs in a SQLite catalog with a
// full-text index over document titles and source text, so past
// conversions can be listed and searched from the CLI.
//
// The schema uses an FTS5 virtual table; go-sqlite3 builds that gate
// FTS5 behind a build tag need -tags sqlite_fts5 (the mage targets
// pass it).
// See docs/ARCHITECTURE § Archive.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/prosetex/pkg/types"
)

const dbFile = "prosetex.db"

// Store manages the archive SQLite database.
type Store struct {
	db         *sql.DB
	archiveDir string
	maxResults int
}

// NewStore opens or creates the archive database at
// archiveDir/prosetex.db, creating the schema as needed.
func NewStore(cfg types.ArchiveConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.ArchiveDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	dbPath := filepath.Join(cfg.ArchiveDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, archiveDir: cfg.ArchiveDir, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			source_path TEXT,
			tex_path TEXT NOT NULL,
			pdf_path TEXT,
			compile_status TEXT NOT NULL,
			created_at TEXT NOT NULL,
			body TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_created ON documents(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='documents_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE documents_fts USING fts5(title, body, content=documents, content_rowid=rowid)`,
			`CREATE TRIGGER documents_ai AFTER INSERT ON documents BEGIN
				INSERT INTO documents_fts(rowid, title, body) VALUES (new.rowid, new.title, new.body);
			END`,
			`CREATE TRIGGER documents_ad AFTER DELETE ON documents BEGIN
				INSERT INTO documents_fts(documents_fts, rowid, title, body) VALUES('delete', old.rowid, old.title, old.body);
			END`,
			`CREATE TRIGGER documents_au AFTER UPDATE ON documents BEGIN
				INSERT INTO documents_fts(documents_fts, rowid, title, body) VALUES('delete', old.rowid, old.title, old.body);
				INSERT INTO documents_fts(rowid, title, body) VALUES (new.rowid, new.title, new.body);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Record upserts one conversion run. Re-recording an existing document
// ID replaces the previous row, and the update trigger keeps the FTS
// index in sync.
func (s *Store) Record(ctx context.Context, doc types.Document, sourceText string) error {
	createdAt := doc.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	status := doc.CompileStatus
	if status == "" {
		status = types.CompileNone
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (id, title, source_path, tex_path, pdf_path, compile_status, created_at, body)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title=excluded.title, source_path=excluded.source_path,
			tex_path=excluded.tex_path, pdf_path=excluded.pdf_path,
			compile_status=excluded.compile_status, created_at=excluded.created_at,
			body=excluded.body`,
		doc.ID, doc.Title, doc.SourcePath, doc.TexPath, doc.PDFPath,
		string(status), createdAt.Format(time.RFC3339), sourceText,
	)
	if err != nil {
		return fmt.Errorf("recording document %s: %w", doc.ID, err)
	}
	return nil
}

// List returns recorded documents, newest first. A non-positive limit
// uses the store default.
func (s *Store) List(ctx context.Context, limit int) ([]types.Document, error) {
	if limit <= 0 {
		limit = s.maxResults
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, source_path, tex_path, pdf_path, compile_status, created_at
		 FROM documents ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()
	return scanDocuments(rows)
}

// Search runs an FTS5 match over titles and source text, best match
// first. A non-positive limit uses the store default.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]types.Document, error) {
	if limit <= 0 {
		limit = s.maxResults
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT d.id, d.title, d.source_path, d.tex_path, d.pdf_path, d.compile_status, d.created_at
		 FROM documents_fts
		 JOIN documents d ON d.rowid = documents_fts.rowid
		 WHERE documents_fts MATCH ?
		 ORDER BY documents_fts.rank LIMIT ?`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("searching documents: %w", err)
	}
	defer rows.Close()
	return scanDocuments(rows)
}

func scanDocuments(rows *sql.Rows) ([]types.Document, error) {
	var docs []types.Document
	for rows.Next() {
		var (
			d          types.Document
			status     string
			createdRaw string
		)
		if err := rows.Scan(&d.ID, &d.Title, &d.SourcePath, &d.TexPath, &d.PDFPath, &status, &createdRaw); err != nil {
			return nil, fmt.Errorf("scanning document row: %w", err)
		}
		d.CompileStatus = types.CompileStatus(status)
		if ts, err := time.Parse(time.RFC3339, createdRaw); err == nil {
			d.CreatedAt = ts
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

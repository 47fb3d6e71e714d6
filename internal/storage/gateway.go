// Package storage owns the embedded SQLite store: the open/close lifecycle
// of the database handle, the schema access layer over its tables, and the
// serialization discipline guarding the shared connection.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Registers the sqlite driver
)

// Gateway owns the database handle and its Closed/Open lifecycle. Open and
// Close are idempotent: callers open defensively before every operation and
// repeat calls within one task hit the no-op path.
type Gateway struct {
	dataDir      string
	databaseFile string
	templatePath string
	conn         *sql.DB
}

// NewGateway configures a gateway for the store file databaseFile inside
// dataDir, seeded from the bundled template at templatePath on first open.
func NewGateway(dataDir, databaseFile, templatePath string) *Gateway {
	return &Gateway{
		dataDir:      dataDir,
		databaseFile: databaseFile,
		templatePath: templatePath,
	}
}

// StorePath returns the writable location of the store file.
func (g *Gateway) StorePath() string {
	return filepath.Join(g.dataDir, g.databaseFile)
}

// IsOpen reports whether the handle is currently open.
func (g *Gateway) IsOpen() bool {
	return g.conn != nil
}

// Open transitions the gateway to Open. When the store file does not exist
// yet, the bundled template is copied into place first; a missing template
// or a failed copy aborts the open.
func (g *Gateway) Open() error {
	if g.conn != nil {
		slog.Warn("database is already open", "path", g.StorePath())
		return nil
	}

	if g.dataDir == "" {
		return &ValidationError{Field: "data_dir", Reason: "no writable store location configured"}
	}
	if err := os.MkdirAll(g.dataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	path := g.StorePath()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := copyTemplate(g.templatePath, path); err != nil {
			return fmt.Errorf("failed to seed store from template: %w", err)
		}
		slog.Info("store seeded from template", "template", g.templatePath, "path", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	g.conn = db
	slog.Info("database opened", "path", path)
	return nil
}

// Close transitions the gateway to Closed, releasing the handle.
func (g *Gateway) Close() error {
	if g.conn == nil {
		slog.Warn("database is already closed")
		return nil
	}
	err := g.conn.Close()
	g.conn = nil
	if err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	slog.Info("database closed")
	return nil
}

func copyTemplate(templatePath, dst string) error {
	if templatePath == "" {
		return errors.New("no template configured")
	}
	src, err := os.Open(templatePath)
	if err != nil {
		return fmt.Errorf("template not found: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create store file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return fmt.Errorf("copy template: %w", err)
	}
	return nil
}

package database

import (
	"fmt"
	"log/slog" // use slog for structured logging

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store owns the lifetime of one connection to the embedded SQLite store.
// Ownership is explicit: whoever constructs a Store opens it (directly or
// lazily through DB) and is responsible for closing it on every exit path.
// A Store is not safe for concurrent use against the same file without
// external serialization; the pipeline is a single logical writer.
type Store struct {
	path   string
	logger *slog.Logger
	db     *gorm.DB
}

func NewStore(path string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{path: path, logger: log}
}

// Open establishes the connection and enables foreign key enforcement.
// Calling Open while already connected is a no-op.
func (s *Store) Open() error {
	if s.db != nil {
		return nil
	}

	// SQLite ships with foreign keys off; the cascade and reference
	// constraints only hold if every connection turns them on.
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", s.path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", s.path, err)
	}

	// Verify the connection
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying connection: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		// close the handle if ping fails to avoid a resource leak
		sqlDB.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	s.db = db
	s.logger.Info("connected to database", "path", s.path)
	return nil
}

// DB returns the live handle, opening one first if none exists. Operations
// that need a connection go through here instead of failing when Open was
// never called.
func (s *Store) DB() (*gorm.DB, error) {
	if s.db == nil {
		s.logger.Info("no connection to the database, connecting", "path", s.path)
		if err := s.Open(); err != nil {
			return nil, err
		}
	}
	return s.db, nil
}

// Close releases the connection and resets the Store to disconnected so a
// later Open is possible. Closing an already closed Store is a no-op.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		s.db = nil
		return fmt.Errorf("failed to access underlying connection: %w", err)
	}

	err = sqlDB.Close()
	s.db = nil
	if err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	s.logger.Info("database connection closed", "path", s.path)
	return nil
}

// Path returns the store file path the Store was created with.
func (s *Store) Path() string {
	return s.path
}

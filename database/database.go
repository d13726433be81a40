package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // Import the SQLite3 driver
)

// InitDB initializes the database connection. It takes the database path as
// input. Any failure here is fatal for the caller: the bot must not run
// without a working token store.
func InitDB(dbPath string) (*sql.DB, error) {
	// Ensure the directory for the database file exists.
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open the SQLite database. It will be created if it doesn't exist.
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Ping the database to verify the connection.
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := createTokensTable(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tokens table: %w", err)
	}

	log.Println("Successfully connected to the database at", dbPath)
	return db, nil
}

// createTokensTable creates the 'tokens' table if it doesn't exist.
func createTokensTable(db *sql.DB) error {
	query := `
    CREATE TABLE IF NOT EXISTS tokens (
        guild_id INTEGER PRIMARY KEY NOT NULL,
        trello_token TEXT,
        token_owner INTEGER,
        notified INTEGER NOT NULL DEFAULT 0
    );`
	_, err := db.Exec(query)
	return err
}

package database

import (
	"database/sql"
	_ "embed"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

//go:embed schema.sql
var schemaSQL string

// OpenDB initializes and returns the application's connection pool. The DSN
// is read from the environment.
func OpenDB() (*sql.DB, error) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		// Local development fallback.
		dsn = "root:root@tcp(127.0.0.1:3306)/takab_inventario?parseTime=true"
	}

	return OpenDBWithDSN(dsn)
}

// OpenDBWithDSN creates and configures a connection pool from any DSN string.
func OpenDBWithDSN(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Printf("Error connecting to database: %v", err)
		return nil, err
	}

	log.Println("Database connection pool established successfully")
	return db, nil
}

// Migrate executes the embedded schema. Every statement uses
// CREATE TABLE IF NOT EXISTS, so running it on every startup is safe.
func Migrate(db *sql.DB) error {
	for _, stmt := range strings.Split(schemaSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	log.Println("Database schema is up to date")
	return nil
}

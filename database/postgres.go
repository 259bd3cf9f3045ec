package database

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2/log"
	_ "github.com/lib/pq"
)

var PostgresDB *sql.DB

func ConnectPostgres(dsn string) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to open postgres connection: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to reach postgres: %v", err)
	}

	PostgresDB = db
	log.Info("connected to postgres")
}

package storage

import (
	"database/sql"

	_ "github.com/lib/pq"
)

var DB *sql.DB

func InitPostgres(dsn string) error {
	var err error
	DB, err = sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	return DB.Ping()
}

// Migrate 建表（幂等，启动时执行一次即可）
func Migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id         BIGSERIAL PRIMARY KEY,
			username   TEXT UNIQUE NOT NULL,
			password   TEXT NOT NULL,
			avatar_url TEXT NOT NULL DEFAULT '',
			gender     TEXT NOT NULL DEFAULT '',
			age        INT  NOT NULL DEFAULT 0,
			region     TEXT NOT NULL DEFAULT '',
			signature  TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS rooms (
			id           BIGSERIAL PRIMARY KEY,
			name         TEXT NOT NULL,
			description  TEXT NOT NULL DEFAULT '',
			max_capacity INT  NOT NULL DEFAULT 8,
			created_by   BIGINT NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS room_members (
			room_id BIGINT NOT NULL REFERENCES rooms(id),
			user_id BIGINT NOT NULL REFERENCES users(id),
			PRIMARY KEY (room_id, user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS follows (
			id          BIGSERIAL PRIMARY KEY,
			follower_id BIGINT NOT NULL,
			followee_id BIGINT NOT NULL,
			UNIQUE (follower_id, followee_id)
		)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

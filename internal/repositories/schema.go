package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/flashcards-api/internal/logger"
)

// schema creates the tables and indexes when they are missing. Statements are
// idempotent and match tables created by earlier deployments.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR NOT NULL UNIQUE,
		email VARCHAR NOT NULL UNIQUE,
		color SMALLINT DEFAULT 1,
		language SMALLINT DEFAULT 1,
		hashed_password VARCHAR NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS decks (
		id SERIAL PRIMARY KEY,
		name VARCHAR NOT NULL,
		user_id INTEGER REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS ix_decks_name ON decks (name)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_decks_user_id_name ON decks (user_id, name)`,
	`CREATE TABLE IF NOT EXISTS cards (
		id SERIAL PRIMARY KEY,
		entry TEXT NOT NULL,
		value TEXT NOT NULL,
		deck_id INTEGER NOT NULL REFERENCES decks(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS ix_cards_deck_id ON cards (deck_id)`,
	`CREATE TABLE IF NOT EXISTS user_progress (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		card_id INTEGER NOT NULL REFERENCES cards(id) ON DELETE CASCADE,
		deck_id INTEGER NOT NULL REFERENCES decks(id) ON DELETE CASCADE,
		learned BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	// Older deployments may hold several rows per (user, card); keep one,
	// preferring a learned row, so the unique index can be built.
	`DELETE FROM user_progress p
	USING (
		SELECT id, ROW_NUMBER() OVER (PARTITION BY user_id, card_id ORDER BY learned DESC, id) AS rn
		FROM user_progress
	) d
	WHERE p.id = d.id AND d.rn > 1`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_user_progress_user_id_card_id ON user_progress (user_id, card_id)`,
	`CREATE INDEX IF NOT EXISTS ix_user_progress_user_id_deck_id ON user_progress (user_id, deck_id)`,
}

// Migrate applies the schema.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		_, err := db.ExecContext(ctx, stmt)
		logQuery(stmt, nil, nil, err)
		if err != nil {
			return err
		}
	}
	logger.Log.Infow("database schema is up to date", "statements", len(schema))
	return nil
}

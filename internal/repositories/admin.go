package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/flashcards-api/internal/models"
)

// adminPageSize caps every admin listing.
const adminPageSize = 200

// AdminTables lists the tables the admin panel may delete from.
var AdminTables = []string{"users", "decks", "cards", "user_progress"}

// AdminRepository backs the admin panel views.
type AdminRepository struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// ListUsers returns users whose username or email contains search.
func (r *AdminRepository) ListUsers(ctx context.Context, search string) ([]models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE username ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
		ORDER BY id
		LIMIT $2
	`
	users := []models.UserDB{}
	err := r.db.SelectContext(ctx, &users, query, search, adminPageSize)

	logQuery(query, []any{search}, len(users), err)

	return users, err
}

// ListDecks returns decks whose name contains search.
func (r *AdminRepository) ListDecks(ctx context.Context, search string) ([]models.DeckDB, error) {
	const query = `
		SELECT id, name, user_id
		FROM decks
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY id
		LIMIT $2
	`
	decks := []models.DeckDB{}
	err := r.db.SelectContext(ctx, &decks, query, search, adminPageSize)

	logQuery(query, []any{search}, len(decks), err)

	return decks, err
}

// ListCards returns cards whose entry or value contains search.
func (r *AdminRepository) ListCards(ctx context.Context, search string) ([]models.CardDB, error) {
	const query = `
		SELECT id, entry, value, deck_id
		FROM cards
		WHERE entry ILIKE '%' || $1 || '%' OR value ILIKE '%' || $1 || '%'
		ORDER BY id
		LIMIT $2
	`
	cards := []models.CardDB{}
	err := r.db.SelectContext(ctx, &cards, query, search, adminPageSize)

	logQuery(query, []any{search}, len(cards), err)

	return cards, err
}

// ListProgress returns progress rows, optionally narrowed to one user.
func (r *AdminRepository) ListProgress(ctx context.Context, userID *int64) ([]models.UserProgressDB, error) {
	const query = `
		SELECT id, user_id, card_id, deck_id, learned
		FROM user_progress
		WHERE ($1::INTEGER IS NULL OR user_id = $1)
		ORDER BY id
		LIMIT $2
	`
	progress := []models.UserProgressDB{}
	err := r.db.SelectContext(ctx, &progress, query, userID, adminPageSize)

	logQuery(query, []any{userID}, len(progress), err)

	return progress, err
}

// Delete removes one row from an admin table. Foreign keys cascade.
func (r *AdminRepository) Delete(ctx context.Context, table string, id int64) (bool, error) {
	if !isAdminTable(table) {
		return false, fmt.Errorf("table %q is not managed by the admin panel", table)
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table)

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{id}, rowsAffected, err)

	return rowsAffected > 0, err
}

func isAdminTable(table string) bool {
	for _, t := range AdminTables {
		if t == table {
			return true
		}
	}
	return false
}

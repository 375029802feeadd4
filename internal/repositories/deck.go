package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/flashcards-api/internal/models"
)

// DeckReadRepository answers deck visibility queries.
//
// A deck is owned by the user whose id is stored in it. Ownerless decks are
// shared: every user and guest may study them. A nil userID means a guest.
type DeckReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewDeckReadRepository(db *sqlx.DB, txGetter TxGetter) *DeckReadRepository {
	return &DeckReadRepository{db: db, txGetter: txGetter}
}

// GetOwned returns the deck if userID owns it, nil otherwise.
func (r *DeckReadRepository) GetOwned(ctx context.Context, deckID, userID int64) (*models.DeckDB, error) {
	const query = `SELECT id, name, user_id FROM decks WHERE id = $1 AND user_id = $2`
	return r.get(ctx, query, deckID, userID)
}

// GetAccessible returns the deck if it is owned by userID or ownerless, nil
// otherwise. Guests only reach ownerless decks.
func (r *DeckReadRepository) GetAccessible(ctx context.Context, deckID int64, userID *int64) (*models.DeckDB, error) {
	const query = `
		SELECT id, name, user_id
		FROM decks
		WHERE id = $1
		  AND (user_id IS NULL OR user_id = $2::INTEGER)
	`
	return r.get(ctx, query, deckID, userID)
}

func (r *DeckReadRepository) get(ctx context.Context, query string, args ...any) (*models.DeckDB, error) {
	var deck models.DeckDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &deck, query, args...)

	logQuery(query, args, deck, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &deck, nil
}

// List returns decks ordered by id. A guest gets the shared decks; a user gets
// owned decks, plus the shared ones when withShared is set.
func (r *DeckReadRepository) List(ctx context.Context, userID *int64, withShared bool) ([]models.DeckDB, error) {
	var (
		query string
		args  []any
	)
	switch {
	case userID == nil:
		query = `SELECT id, name, user_id FROM decks WHERE user_id IS NULL ORDER BY id`
	case withShared:
		query = `SELECT id, name, user_id FROM decks WHERE user_id = $1 OR user_id IS NULL ORDER BY id`
		args = []any{*userID}
	default:
		query = `SELECT id, name, user_id FROM decks WHERE user_id = $1 ORDER BY id`
		args = []any{*userID}
	}

	decks := []models.DeckDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &decks, query, args...)

	logQuery(query, args, len(decks), err)

	return decks, err
}

// ExistsByName reports whether userID owns a deck called name other than excludeID.
// Pass excludeID = 0 to check every deck.
func (r *DeckReadRepository) ExistsByName(ctx context.Context, userID int64, name string, excludeID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM decks
			WHERE user_id = $1 AND name = $2 AND id <> $3
		)
	`
	args := []any{userID, name, excludeID}

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, args...)

	logQuery(query, args, exists, err)

	return exists, err
}

type DeckWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewDeckWriteRepository(db *sqlx.DB, txGetter TxGetter) *DeckWriteRepository {
	return &DeckWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a deck owned by userID and returns it.
func (r *DeckWriteRepository) Create(ctx context.Context, userID int64, name string) (*models.DeckDB, error) {
	const query = `INSERT INTO decks (name, user_id) VALUES ($1, $2) RETURNING id, name, user_id`
	args := []any{name, userID}

	var deck models.DeckDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &deck, query, args...)

	logQuery(query, args, deck.DeckID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &deck, nil
}

// Rename changes the name of a deck.
func (r *DeckWriteRepository) Rename(ctx context.Context, deckID int64, name string) error {
	const query = `UPDATE decks SET name = $2 WHERE id = $1`
	return r.exec(ctx, query, deckID, name)
}

// Delete removes a deck; its cards and progress go with it.
func (r *DeckWriteRepository) Delete(ctx context.Context, deckID int64) error {
	const query = `DELETE FROM decks WHERE id = $1`
	return r.exec(ctx, query, deckID)
}

func (r *DeckWriteRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return mapError(err)
}

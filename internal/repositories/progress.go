package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type ProgressReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewProgressReadRepository(db *sqlx.DB, txGetter TxGetter) *ProgressReadRepository {
	return &ProgressReadRepository{db: db, txGetter: txGetter}
}

// CountLearned returns how many cards of the deck the user has learned.
func (r *ProgressReadRepository) CountLearned(ctx context.Context, userID, deckID int64) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM user_progress
		WHERE user_id = $1 AND deck_id = $2 AND learned
	`
	args := []any{userID, deckID}

	var learned int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &learned, query, args...)

	logQuery(query, args, learned, err)

	return learned, err
}

type ProgressWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewProgressWriteRepository(db *sqlx.DB, txGetter TxGetter) *ProgressWriteRepository {
	return &ProgressWriteRepository{db: db, txGetter: txGetter}
}

// Ensure creates an unlearned progress row for (user, card) unless one exists
// and returns the stored learned flag.
func (r *ProgressWriteRepository) Ensure(ctx context.Context, userID, cardID, deckID int64) (bool, error) {
	const query = `
		INSERT INTO user_progress (user_id, card_id, deck_id, learned)
		VALUES ($1, $2, $3, FALSE)
		ON CONFLICT (user_id, card_id)
		DO UPDATE SET learned = user_progress.learned
		RETURNING learned
	`
	args := []any{userID, cardID, deckID}

	var learned bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &learned, query, args...)

	logQuery(query, args, learned, err)

	return learned, err
}

// Toggle flips the learned flag of (user, card). found is false when the user
// has no progress row for the card.
func (r *ProgressWriteRepository) Toggle(ctx context.Context, userID, cardID int64) (learned, found bool, err error) {
	const query = `
		UPDATE user_progress
		SET learned = NOT learned
		WHERE user_id = $1 AND card_id = $2
		RETURNING learned
	`
	args := []any{userID, cardID}

	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &learned, query, args...)

	logQuery(query, args, learned, err)

	if errors.Is(err, sql.ErrNoRows) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return learned, true, nil
}

// ResetDeck deletes the user's progress rows for a deck.
func (r *ProgressWriteRepository) ResetDeck(ctx context.Context, userID, deckID int64) (int64, error) {
	const query = `DELETE FROM user_progress WHERE user_id = $1 AND deck_id = $2`
	args := []any{userID, deckID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return rowsAffected, err
}

package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/flashcards-api/internal/models"
)

type CardReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCardReadRepository(db *sqlx.DB, txGetter TxGetter) *CardReadRepository {
	return &CardReadRepository{db: db, txGetter: txGetter}
}

// ListByDeck returns the cards of a deck ordered by id.
func (r *CardReadRepository) ListByDeck(ctx context.Context, deckID int64) ([]models.CardDB, error) {
	const query = `SELECT id, entry, value, deck_id FROM cards WHERE deck_id = $1 ORDER BY id`

	cards := []models.CardDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &cards, query, deckID)

	logQuery(query, []any{deckID}, len(cards), err)

	return cards, err
}

// GetInDeck returns the card if it belongs to the deck, nil otherwise.
func (r *CardReadRepository) GetInDeck(ctx context.Context, cardID, deckID int64) (*models.CardDB, error) {
	const query = `SELECT id, entry, value, deck_id FROM cards WHERE id = $1 AND deck_id = $2`
	args := []any{cardID, deckID}

	var card models.CardDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &card, query, args...)

	logQuery(query, args, card.CardID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// CountByDeck returns the number of cards in a deck.
func (r *CardReadRepository) CountByDeck(ctx context.Context, deckID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM cards WHERE deck_id = $1`

	var total int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &total, query, deckID)

	logQuery(query, []any{deckID}, total, err)

	return total, err
}

// StudyCandidates returns the ids, ascending, of the deck's cards that are not
// excluded and match mode for the given learner. A guest (nil userID) has no
// progress, so no card counts as learned.
func (r *CardReadRepository) StudyCandidates(
	ctx context.Context,
	deckID int64,
	userID *int64,
	mode models.StudyMode,
	exclude []int64,
) ([]int64, error) {
	query := `SELECT c.id FROM cards c WHERE c.deck_id = ?`
	args := []any{deckID}

	if len(exclude) > 0 {
		query += ` AND c.id NOT IN (?)`
		args = append(args, exclude)
	}

	const learned = `EXISTS (
		SELECT 1 FROM user_progress p
		WHERE p.card_id = c.id AND p.user_id = ? AND p.learned
	)`

	switch {
	case mode == models.StudyModeLearned && userID == nil:
		query += ` AND FALSE`
	case mode == models.StudyModeLearned:
		query += ` AND ` + learned
		args = append(args, *userID)
	case mode == models.StudyModeUnlearned && userID != nil:
		query += ` AND NOT ` + learned
		args = append(args, *userID)
	}
	query += ` ORDER BY c.id`

	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, err
	}

	e := executor(ctx, r.db, r.txGetter)
	query = e.Rebind(query)

	ids := []int64{}
	err = sqlx.SelectContext(ctx, e, &ids, query, args...)

	logQuery(query, args, len(ids), err)

	return ids, err
}

type CardWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCardWriteRepository(db *sqlx.DB, txGetter TxGetter) *CardWriteRepository {
	return &CardWriteRepository{db: db, txGetter: txGetter}
}

// Insert adds cards to a deck in one statement.
func (r *CardWriteRepository) Insert(ctx context.Context, deckID int64, cards []models.CardInput) error {
	if len(cards) == 0 {
		return nil
	}

	const query = `INSERT INTO cards (entry, value, deck_id) VALUES (:entry, :value, :deck_id)`

	rows := make([]models.CardDB, 0, len(cards))
	for _, c := range cards {
		rows = append(rows, models.CardDB{Entry: c.Entry, Value: c.Value, DeckID: deckID})
	}

	res, err := sqlx.NamedExecContext(ctx, executor(ctx, r.db, r.txGetter), query, rows)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{deckID, len(rows)}, rowsAffected, err)

	return err
}

// UpdateValue replaces the value of a card.
func (r *CardWriteRepository) UpdateValue(ctx context.Context, cardID int64, value string) error {
	const query = `UPDATE cards SET value = $2 WHERE id = $1`
	return r.exec(ctx, query, cardID, value)
}

// DeleteByIDs removes the given cards; their progress goes with them.
func (r *CardWriteRepository) DeleteByIDs(ctx context.Context, cardIDs []int64) error {
	if len(cardIDs) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`DELETE FROM cards WHERE id IN (?)`, cardIDs)
	if err != nil {
		return err
	}
	return r.exec(ctx, r.db.Rebind(query), args...)
}

// DeleteByDeck removes every card of a deck.
func (r *CardWriteRepository) DeleteByDeck(ctx context.Context, deckID int64) error {
	const query = `DELETE FROM cards WHERE deck_id = $1`
	return r.exec(ctx, query, deckID)
}

func (r *CardWriteRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return err
}

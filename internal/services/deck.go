package services

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/sbilibin2017/flashcards-api/internal/logger"
	"github.com/sbilibin2017/flashcards-api/internal/models"
	"github.com/sbilibin2017/flashcards-api/internal/repositories"
	"github.com/sbilibin2017/flashcards-api/internal/spreadsheet"
)

// DeckReader defines deck lookups. A nil userID stands for a guest.
type DeckReader interface {
	GetOwned(ctx context.Context, deckID, userID int64) (*models.DeckDB, error)
	GetAccessible(ctx context.Context, deckID int64, userID *int64) (*models.DeckDB, error)
	List(ctx context.Context, userID *int64, withShared bool) ([]models.DeckDB, error)
	ExistsByName(ctx context.Context, userID int64, name string, excludeID int64) (bool, error)
}

// DeckWriter defines deck mutations.
type DeckWriter interface {
	Create(ctx context.Context, userID int64, name string) (*models.DeckDB, error)
	Rename(ctx context.Context, deckID int64, name string) error
	Delete(ctx context.Context, deckID int64) error
}

// CardReader defines card lookups.
type CardReader interface {
	ListByDeck(ctx context.Context, deckID int64) ([]models.CardDB, error)
	GetInDeck(ctx context.Context, cardID, deckID int64) (*models.CardDB, error)
	CountByDeck(ctx context.Context, deckID int64) (int, error)
	StudyCandidates(ctx context.Context, deckID int64, userID *int64, mode models.StudyMode, exclude []int64) ([]int64, error)
}

// CardWriter defines card mutations.
type CardWriter interface {
	Insert(ctx context.Context, deckID int64, cards []models.CardInput) error
	UpdateValue(ctx context.Context, cardID int64, value string) error
	DeleteByIDs(ctx context.Context, cardIDs []int64) error
	DeleteByDeck(ctx context.Context, deckID int64) error
}

// DeckService manages decks, their cards and spreadsheet transfer.
type DeckService struct {
	decks      DeckReader
	deckWriter DeckWriter
	cards      CardReader
	cardWriter CardWriter
}

// NewDeckService creates a new DeckService instance.
func NewDeckService(decks DeckReader, deckWriter DeckWriter, cards CardReader, cardWriter CardWriter) *DeckService {
	return &DeckService{
		decks:      decks,
		deckWriter: deckWriter,
		cards:      cards,
		cardWriter: cardWriter,
	}
}

// ListDecks returns the decks visible to the caller. Guests see shared decks;
// users see their own, plus shared ones when showAll is set.
func (s *DeckService) ListDecks(ctx context.Context, userID *int64, showAll bool) ([]models.DeckResponse, error) {
	decks, err := s.decks.List(ctx, userID, showAll)
	if err != nil {
		logger.Log.Errorw("failed to list decks", "user_id", userID, "error", err)
		return nil, err
	}

	out := make([]models.DeckResponse, 0, len(decks))
	for _, d := range decks {
		out = append(out, models.DeckResponse{DeckID: d.DeckID, Name: d.Name})
	}
	return out, nil
}

// CreateDeck creates a deck owned by the user.
func (s *DeckService) CreateDeck(ctx context.Context, userID int64, name string) (models.DeckResponse, error) {
	exists, err := s.decks.ExistsByName(ctx, userID, name, 0)
	if err != nil {
		logger.Log.Errorw("failed to check deck name", "user_id", userID, "error", err)
		return models.DeckResponse{}, err
	}
	if exists {
		return models.DeckResponse{}, ErrDeckNameExists
	}

	deck, err := s.deckWriter.Create(ctx, userID, name)
	if errors.Is(err, repositories.ErrUniqueViolation) {
		return models.DeckResponse{}, ErrDeckNameExists
	}
	if err != nil {
		logger.Log.Errorw("failed to create deck", "user_id", userID, "error", err)
		return models.DeckResponse{}, err
	}
	return models.DeckResponse{DeckID: deck.DeckID, Name: deck.Name}, nil
}

// UpdateDeck renames an owned deck. A name clash with another owned deck is
// reported before ownership is checked.
func (s *DeckService) UpdateDeck(ctx context.Context, userID, deckID int64, name string) (models.DeckResponse, error) {
	exists, err := s.decks.ExistsByName(ctx, userID, name, deckID)
	if err != nil {
		logger.Log.Errorw("failed to check deck name", "user_id", userID, "error", err)
		return models.DeckResponse{}, err
	}
	if exists {
		return models.DeckResponse{}, ErrDeckNameExists
	}

	if _, err := s.ownedDeck(ctx, userID, deckID); err != nil {
		return models.DeckResponse{}, err
	}

	err = s.deckWriter.Rename(ctx, deckID, name)
	if errors.Is(err, repositories.ErrUniqueViolation) {
		return models.DeckResponse{}, ErrDeckNameExists
	}
	if err != nil {
		logger.Log.Errorw("failed to rename deck", "deck_id", deckID, "error", err)
		return models.DeckResponse{}, err
	}
	return models.DeckResponse{DeckID: deckID, Name: name}, nil
}

// DeleteDeck removes an owned deck together with its cards and progress.
func (s *DeckService) DeleteDeck(ctx context.Context, userID, deckID int64) error {
	if _, err := s.ownedDeck(ctx, userID, deckID); err != nil {
		return err
	}
	if err := s.deckWriter.Delete(ctx, deckID); err != nil {
		logger.Log.Errorw("failed to delete deck", "deck_id", deckID, "error", err)
		return err
	}
	return nil
}

// GetCards returns the cards of an owned deck.
func (s *DeckService) GetCards(ctx context.Context, userID, deckID int64) ([]models.CardInput, error) {
	if _, err := s.ownedDeck(ctx, userID, deckID); err != nil {
		return nil, err
	}
	return s.listCards(ctx, deckID)
}

// ReplaceCards makes the deck hold exactly the given cards, matching by
// entry: unknown entries are inserted, known ones get the new value in place
// and missing ones are deleted. A repeated entry keeps its last value.
func (s *DeckService) ReplaceCards(ctx context.Context, userID, deckID int64, cards []models.CardInput) ([]models.CardInput, error) {
	if _, err := s.ownedDeck(ctx, userID, deckID); err != nil {
		return nil, err
	}

	existing, err := s.cards.ListByDeck(ctx, deckID)
	if err != nil {
		logger.Log.Errorw("failed to list cards", "deck_id", deckID, "error", err)
		return nil, err
	}

	wanted := make(map[string]string, len(cards))
	var order []string
	for _, c := range cards {
		if _, ok := wanted[c.Entry]; !ok {
			order = append(order, c.Entry)
		}
		wanted[c.Entry] = c.Value
	}

	known := make(map[string]bool, len(existing))
	var stale []int64
	for _, c := range existing {
		value, ok := wanted[c.Entry]
		if !ok || known[c.Entry] {
			stale = append(stale, c.CardID)
			continue
		}
		known[c.Entry] = true
		if value != c.Value {
			if err := s.cardWriter.UpdateValue(ctx, c.CardID, value); err != nil {
				logger.Log.Errorw("failed to update card", "card_id", c.CardID, "error", err)
				return nil, err
			}
		}
	}

	if err := s.cardWriter.DeleteByIDs(ctx, stale); err != nil {
		logger.Log.Errorw("failed to delete cards", "deck_id", deckID, "error", err)
		return nil, err
	}

	var added []models.CardInput
	for _, entry := range order {
		if !known[entry] {
			added = append(added, models.CardInput{Entry: entry, Value: wanted[entry]})
		}
	}
	if err := s.cardWriter.Insert(ctx, deckID, added); err != nil {
		logger.Log.Errorw("failed to insert cards", "deck_id", deckID, "error", err)
		return nil, err
	}

	return s.listCards(ctx, deckID)
}

// ExportDeck renders the cards of an owned deck as an xlsx workbook.
func (s *DeckService) ExportDeck(ctx context.Context, userID, deckID int64) ([]byte, string, error) {
	deck, err := s.ownedDeck(ctx, userID, deckID)
	if err != nil {
		return nil, "", err
	}

	cards, err := s.listCards(ctx, deckID)
	if err != nil {
		return nil, "", err
	}

	data, filename, err := spreadsheet.Export(deck.Name, cards)
	if err != nil {
		logger.Log.Errorw("failed to export deck", "deck_id", deckID, "error", err)
		return nil, "", err
	}
	return data, filename, nil
}

// ImportDeck replaces all cards of an owned deck with those read from an
// uploaded workbook. Cards stay untouched when the workbook is rejected.
func (s *DeckService) ImportDeck(ctx context.Context, userID, deckID int64, filename string, r io.Reader) error {
	if _, err := s.ownedDeck(ctx, userID, deckID); err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
	default:
		return ErrOnlyExcel
	}

	cards, err := spreadsheet.Parse(r)
	if errors.Is(err, spreadsheet.ErrMissingColumns) {
		return ErrExcelColumns
	}
	if err != nil {
		logger.Log.Infow("failed to parse workbook", "deck_id", deckID, "filename", filename, "error", err)
		return ErrExcelError
	}

	if err := s.cardWriter.DeleteByDeck(ctx, deckID); err != nil {
		logger.Log.Errorw("failed to clear deck", "deck_id", deckID, "error", err)
		return err
	}
	if err := s.cardWriter.Insert(ctx, deckID, cards); err != nil {
		logger.Log.Errorw("failed to insert cards", "deck_id", deckID, "error", err)
		return err
	}

	logger.Log.Infow("deck imported", "deck_id", deckID, "cards", len(cards))
	return nil
}

func (s *DeckService) ownedDeck(ctx context.Context, userID, deckID int64) (*models.DeckDB, error) {
	deck, err := s.decks.GetOwned(ctx, deckID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get deck", "deck_id", deckID, "user_id", userID, "error", err)
		return nil, err
	}
	if deck == nil {
		return nil, ErrDeckNotFound
	}
	return deck, nil
}

func (s *DeckService) listCards(ctx context.Context, deckID int64) ([]models.CardInput, error) {
	cards, err := s.cards.ListByDeck(ctx, deckID)
	if err != nil {
		logger.Log.Errorw("failed to list cards", "deck_id", deckID, "error", err)
		return nil, err
	}

	out := make([]models.CardInput, 0, len(cards))
	for _, c := range cards {
		out = append(out, models.CardInput{Entry: c.Entry, Value: c.Value})
	}
	return out, nil
}

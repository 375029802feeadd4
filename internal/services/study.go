package services

import (
	"context"
	"encoding/json"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/flashcards-api/internal/logger"
	"github.com/sbilibin2017/flashcards-api/internal/models"
	"github.com/segmentio/kafka-go"
)

// ProgressReader defines progress lookups.
type ProgressReader interface {
	CountLearned(ctx context.Context, userID, deckID int64) (int, error)
}

// ProgressWriter defines progress mutations.
type ProgressWriter interface {
	Ensure(ctx context.Context, userID, cardID, deckID int64) (bool, error)
	Toggle(ctx context.Context, userID, cardID int64) (learned, found bool, err error)
	ResetDeck(ctx context.Context, userID, deckID int64) (int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// StudyService runs study sessions and keeps per-user progress.
type StudyService struct {
	decks          DeckReader
	cards          CardReader
	progress       ProgressReader
	progressWriter ProgressWriter
	kafkaWriter    KafkaWriter
	intn           func(n int) int
}

// StudyOption configures a StudyService.
type StudyOption func(*StudyService)

// WithRandom replaces the source used to pick a card for signed-in users.
func WithRandom(intn func(n int) int) StudyOption {
	return func(s *StudyService) {
		s.intn = intn
	}
}

// NewStudyService creates a new StudyService instance. kafkaWriter may be nil.
func NewStudyService(
	decks DeckReader,
	cards CardReader,
	progress ProgressReader,
	progressWriter ProgressWriter,
	kafkaWriter KafkaWriter,
	opts ...StudyOption,
) *StudyService {
	s := &StudyService{
		decks:          decks,
		cards:          cards,
		progress:       progress,
		progressWriter: progressWriter,
		kafkaWriter:    kafkaWriter,
		intn:           rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NextCard picks the next card of a session. The deck must be owned by the
// user or shared; a nil userID is a guest. Guests always get the lowest
// remaining id and leave no progress behind, so learned mode always yields
// a null card for them.
func (s *StudyService) NextCard(ctx context.Context, userID *int64, deckID int64, mode models.StudyMode, exclude []int64) (models.NextCard, error) {
	deck, err := s.decks.GetAccessible(ctx, deckID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get deck", "deck_id", deckID, "error", err)
		return models.NextCard{}, err
	}
	if deck == nil {
		return models.NextCard{}, ErrDeckNotFound
	}

	candidates, err := s.cards.StudyCandidates(ctx, deckID, userID, mode, exclude)
	if err != nil {
		logger.Log.Errorw("failed to select cards", "deck_id", deckID, "mode", mode, "error", err)
		return models.NextCard{}, err
	}

	var result models.NextCard
	if len(candidates) > 0 {
		cardID := candidates[0]
		if userID != nil {
			cardID = candidates[s.intn(len(candidates))]
		}

		card, err := s.cards.GetInDeck(ctx, cardID, deckID)
		if err != nil {
			logger.Log.Errorw("failed to get card", "card_id", cardID, "error", err)
			return models.NextCard{}, err
		}
		if card == nil {
			return models.NextCard{}, ErrCardNotFound
		}

		learned := false
		if userID != nil {
			if learned, err = s.progressWriter.Ensure(ctx, *userID, cardID, deckID); err != nil {
				logger.Log.Errorw("failed to save progress", "card_id", cardID, "error", err)
				return models.NextCard{}, err
			}
		}

		remain := len(candidates) - 1
		result.Card = &models.StudyCard{
			CardID:  card.CardID,
			Entry:   card.Entry,
			Value:   card.Value,
			Learned: learned,
		}
		result.Stats.Remain = &remain
	}

	if result.Stats.Stats, err = s.stats(ctx, userID, deckID); err != nil {
		return models.NextCard{}, err
	}

	if userID != nil && result.Card != nil {
		s.publishEvent(ctx, models.ProgressEvent{
			UserID:    *userID,
			DeckID:    deckID,
			CardID:    result.Card.CardID,
			Operation: models.ProgressOpServed,
			Learned:   result.Card.Learned,
		})
	}
	return result, nil
}

// ToggleLearned flips the learned flag of a card the user has already been served.
func (s *StudyService) ToggleLearned(ctx context.Context, userID, deckID, cardID int64) (models.ToggleResult, error) {
	deck, err := s.decks.GetAccessible(ctx, deckID, &userID)
	if err != nil {
		logger.Log.Errorw("failed to get deck", "deck_id", deckID, "error", err)
		return models.ToggleResult{}, err
	}
	if deck == nil {
		return models.ToggleResult{}, ErrDeckNotFound
	}

	card, err := s.cards.GetInDeck(ctx, cardID, deckID)
	if err != nil {
		logger.Log.Errorw("failed to get card", "card_id", cardID, "error", err)
		return models.ToggleResult{}, err
	}
	if card == nil {
		return models.ToggleResult{}, ErrCardNotFound
	}

	learned, found, err := s.progressWriter.Toggle(ctx, userID, cardID)
	if err != nil {
		logger.Log.Errorw("failed to toggle progress", "card_id", cardID, "error", err)
		return models.ToggleResult{}, err
	}
	if !found {
		return models.ToggleResult{}, ErrProgressNotFound
	}

	stats, err := s.stats(ctx, &userID, deckID)
	if err != nil {
		return models.ToggleResult{}, err
	}

	s.publishEvent(ctx, models.ProgressEvent{
		UserID:    userID,
		DeckID:    deckID,
		CardID:    cardID,
		Operation: models.ProgressOpToggled,
		Learned:   learned,
	})
	return models.ToggleResult{Learned: learned, Stats: stats}, nil
}

// ResetProgress forgets the user's progress in an owned deck.
func (s *StudyService) ResetProgress(ctx context.Context, userID, deckID int64) error {
	deck, err := s.decks.GetOwned(ctx, deckID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get deck", "deck_id", deckID, "error", err)
		return err
	}
	if deck == nil {
		return ErrDeckNotFound
	}

	removed, err := s.progressWriter.ResetDeck(ctx, userID, deckID)
	if err != nil {
		logger.Log.Errorw("failed to reset progress", "deck_id", deckID, "error", err)
		return err
	}
	logger.Log.Infow("progress reset", "deck_id", deckID, "user_id", userID, "rows", removed)

	s.publishEvent(ctx, models.ProgressEvent{
		UserID:    userID,
		DeckID:    deckID,
		Operation: models.ProgressOpReset,
	})
	return nil
}

func (s *StudyService) stats(ctx context.Context, userID *int64, deckID int64) (models.Stats, error) {
	total, err := s.cards.CountByDeck(ctx, deckID)
	if err != nil {
		logger.Log.Errorw("failed to count cards", "deck_id", deckID, "error", err)
		return models.Stats{}, err
	}

	stats := models.Stats{Total: total}
	if userID == nil {
		return stats, nil
	}

	if stats.Learned, err = s.progress.CountLearned(ctx, *userID, deckID); err != nil {
		logger.Log.Errorw("failed to count learned cards", "deck_id", deckID, "error", err)
		return models.Stats{}, err
	}
	return stats, nil
}

// publishEvent publishes a progress event to Kafka. Failures are only logged.
func (s *StudyService) publishEvent(ctx context.Context, event models.ProgressEvent) {
	if s.kafkaWriter == nil {
		return
	}

	event.EventID = uuid.NewString()
	event.Timestamp = time.Now().Unix()

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal progress event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.UserID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish progress event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Debugw("Progress event published to Kafka", "event_id", event.EventID, "operation", event.Operation)
	}
}

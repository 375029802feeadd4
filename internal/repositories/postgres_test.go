package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/flashcards-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, Migrate(ctx, db))
	// Applying the schema twice must be harmless.
	require.NoError(t, Migrate(ctx, db))

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

func TestRepositories_Postgres(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()

	userRead := NewUserReadRepository(db, nil)
	userWrite := NewUserWriteRepository(db, nil)
	deckRead := NewDeckReadRepository(db, nil)
	deckWrite := NewDeckWriteRepository(db, nil)
	cardRead := NewCardReadRepository(db, nil)
	cardWrite := NewCardWriteRepository(db, nil)
	progressRead := NewProgressReadRepository(db, nil)
	progressWrite := NewProgressWriteRepository(db, nil)

	aliceID, err := userWrite.Save(ctx, models.UserDB{
		Username:       "alice",
		Email:          "alice@example.com",
		Color:          models.ColorGreen,
		Language:       models.LanguageDE,
		HashedPassword: "hash",
	})
	require.NoError(t, err)

	bobID, err := userWrite.Save(ctx, models.UserDB{Username: "bob", Email: "bob@example.com", HashedPassword: "hash"})
	require.NoError(t, err)

	t.Run("Users", func(t *testing.T) {
		_, err := userWrite.Save(ctx, models.UserDB{Username: "alice", Email: "other@example.com", HashedPassword: "x"})
		assert.ErrorIs(t, err, ErrUniqueViolation)

		username := "alice"
		user, err := userRead.GetByUsernameOrEmail(ctx, &username, nil)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, aliceID, user.UserID)
		assert.Equal(t, models.ColorGreen, user.Color)
		assert.Equal(t, models.LanguageDE, user.Language)

		email := "bob@example.com"
		user, err = userRead.GetByUsernameOrEmail(ctx, nil, &email)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, bobID, user.UserID)

		missing := "nobody"
		user, err = userRead.GetByUsernameOrEmail(ctx, &missing, nil)
		assert.NoError(t, err)
		assert.Nil(t, user)

		require.NoError(t, userWrite.UpdatePreferences(ctx, bobID, models.ColorPink, models.LanguageJA))
		user, err = userRead.GetByID(ctx, bobID)
		require.NoError(t, err)
		assert.Equal(t, models.ColorPink, user.Color)
		assert.Equal(t, models.LanguageJA, user.Language)
	})

	t.Run("NullPreferencesReadAsDefaults", func(t *testing.T) {
		var id int64
		require.NoError(t, db.GetContext(ctx, &id,
			`INSERT INTO users (username, email, color, language, hashed_password) VALUES ('carol', 'carol@example.com', NULL, NULL, 'h') RETURNING id`))

		user, err := userRead.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, models.ColorYellow, user.Color)
		assert.Equal(t, models.LanguageEN, user.Language)
	})

	var shared models.DeckDB
	require.NoError(t, db.GetContext(ctx, &shared,
		`INSERT INTO decks (name, user_id) VALUES ('Shared', NULL) RETURNING id, name, user_id`))

	deck, err := deckWrite.Create(ctx, aliceID, "Spanish")
	require.NoError(t, err)

	t.Run("DeckVisibility", func(t *testing.T) {
		_, err := deckWrite.Create(ctx, aliceID, "Spanish")
		assert.ErrorIs(t, err, ErrUniqueViolation)

		// Deck names are unique per owner only.
		bobDeck, err := deckWrite.Create(ctx, bobID, "Spanish")
		require.NoError(t, err)
		assert.NotEqual(t, deck.DeckID, bobDeck.DeckID)

		exists, err := deckRead.ExistsByName(ctx, bobID, "Spanish", 0)
		require.NoError(t, err)
		assert.True(t, exists)

		got, err := deckRead.GetOwned(ctx, deck.DeckID, aliceID)
		require.NoError(t, err)
		assert.NotNil(t, got)

		got, err = deckRead.GetOwned(ctx, deck.DeckID, bobID)
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = deckRead.GetAccessible(ctx, shared.DeckID, nil)
		require.NoError(t, err)
		assert.NotNil(t, got)

		got, err = deckRead.GetAccessible(ctx, deck.DeckID, nil)
		require.NoError(t, err)
		assert.Nil(t, got)

		decks, err := deckRead.List(ctx, &aliceID, true)
		require.NoError(t, err)
		assert.Len(t, decks, 2)

		decks, err = deckRead.List(ctx, &aliceID, false)
		require.NoError(t, err)
		assert.Len(t, decks, 1)

		decks, err = deckRead.List(ctx, nil, false)
		require.NoError(t, err)
		require.Len(t, decks, 1)
		assert.Equal(t, "Shared", decks[0].Name)

		exists, err = deckRead.ExistsByName(ctx, aliceID, "Spanish", 0)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = deckRead.ExistsByName(ctx, aliceID, "Spanish", deck.DeckID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("MigrateCollapsesDuplicateProgress", func(t *testing.T) {
		dupes, err := deckWrite.Create(ctx, aliceID, "Dupes")
		require.NoError(t, err)
		defer deckWrite.Delete(ctx, dupes.DeckID)

		require.NoError(t, cardWrite.Insert(ctx, dupes.DeckID, []models.CardInput{{Entry: "a", Value: "b"}}))
		cards, err := cardRead.ListByDeck(ctx, dupes.DeckID)
		require.NoError(t, err)
		require.Len(t, cards, 1)
		cardID := cards[0].CardID

		_, err = db.ExecContext(ctx, `DROP INDEX ux_user_progress_user_id_card_id`)
		require.NoError(t, err)
		_, err = db.ExecContext(ctx,
			`INSERT INTO user_progress (user_id, card_id, deck_id, learned) VALUES ($1, $2, $3, FALSE), ($1, $2, $3, TRUE), ($1, $2, $3, FALSE)`,
			aliceID, cardID, dupes.DeckID)
		require.NoError(t, err)

		require.NoError(t, Migrate(ctx, db))

		var rows int
		require.NoError(t, db.GetContext(ctx, &rows,
			`SELECT COUNT(*) FROM user_progress WHERE user_id = $1 AND card_id = $2`, aliceID, cardID))
		assert.Equal(t, 1, rows)

		count, err := progressRead.CountLearned(ctx, aliceID, dupes.DeckID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		// The unique index is back in place.
		_, err = db.ExecContext(ctx,
			`INSERT INTO user_progress (user_id, card_id, deck_id) VALUES ($1, $2, $3)`,
			aliceID, cardID, dupes.DeckID)
		assert.Error(t, err)
	})

	t.Run("CardsAndProgress", func(t *testing.T) {
		require.NoError(t, cardWrite.Insert(ctx, deck.DeckID, []models.CardInput{
			{Entry: "uno", Value: "one"},
			{Entry: "dos", Value: "two"},
			{Entry: "tres", Value: "three"},
		}))

		cards, err := cardRead.ListByDeck(ctx, deck.DeckID)
		require.NoError(t, err)
		require.Len(t, cards, 3)

		total, err := cardRead.CountByDeck(ctx, deck.DeckID)
		require.NoError(t, err)
		assert.Equal(t, 3, total)

		learned, err := progressWrite.Ensure(ctx, aliceID, cards[0].CardID, deck.DeckID)
		require.NoError(t, err)
		assert.False(t, learned)

		learned, found, err := progressWrite.Toggle(ctx, aliceID, cards[0].CardID)
		require.NoError(t, err)
		assert.True(t, found)
		assert.True(t, learned)

		// Toggling twice restores the original flag.
		learned, _, err = progressWrite.Toggle(ctx, aliceID, cards[0].CardID)
		require.NoError(t, err)
		assert.False(t, learned)
		learned, _, err = progressWrite.Toggle(ctx, aliceID, cards[0].CardID)
		require.NoError(t, err)
		assert.True(t, learned)

		// Ensure keeps an existing row untouched.
		learned, err = progressWrite.Ensure(ctx, aliceID, cards[0].CardID, deck.DeckID)
		require.NoError(t, err)
		assert.True(t, learned)

		_, found, err = progressWrite.Toggle(ctx, aliceID, cards[1].CardID)
		require.NoError(t, err)
		assert.False(t, found)

		count, err := progressRead.CountLearned(ctx, aliceID, deck.DeckID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		ids, err := cardRead.StudyCandidates(ctx, deck.DeckID, &aliceID, models.StudyModeUnlearned, []int64{cards[2].CardID})
		require.NoError(t, err)
		assert.Equal(t, []int64{cards[1].CardID}, ids)

		ids, err = cardRead.StudyCandidates(ctx, deck.DeckID, &aliceID, models.StudyModeLearned, nil)
		require.NoError(t, err)
		assert.Equal(t, []int64{cards[0].CardID}, ids)

		ids, err = cardRead.StudyCandidates(ctx, deck.DeckID, nil, models.StudyModeLearned, nil)
		require.NoError(t, err)
		assert.Empty(t, ids)

		ids, err = cardRead.StudyCandidates(ctx, deck.DeckID, &aliceID, models.StudyModeAll, nil)
		require.NoError(t, err)
		assert.Len(t, ids, 3)

		require.NoError(t, cardWrite.UpdateValue(ctx, cards[1].CardID, "TWO"))
		card, err := cardRead.GetInDeck(ctx, cards[1].CardID, deck.DeckID)
		require.NoError(t, err)
		assert.Equal(t, "TWO", card.Value)

		card, err = cardRead.GetInDeck(ctx, cards[1].CardID, shared.DeckID)
		require.NoError(t, err)
		assert.Nil(t, card)

		// Deleting a card removes its progress.
		require.NoError(t, cardWrite.DeleteByIDs(ctx, []int64{cards[0].CardID}))
		count, err = progressRead.CountLearned(ctx, aliceID, deck.DeckID)
		require.NoError(t, err)
		assert.Equal(t, 0, count)

		_, err = progressWrite.Ensure(ctx, aliceID, cards[1].CardID, deck.DeckID)
		require.NoError(t, err)
		_, err = progressWrite.Ensure(ctx, aliceID, cards[2].CardID, deck.DeckID)
		require.NoError(t, err)
		learned, _, err = progressWrite.Toggle(ctx, aliceID, cards[1].CardID)
		require.NoError(t, err)
		require.True(t, learned)

		removed, err := progressWrite.ResetDeck(ctx, aliceID, deck.DeckID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), removed)

		// After a reset the deck reads as never studied.
		count, err = progressRead.CountLearned(ctx, aliceID, deck.DeckID)
		require.NoError(t, err)
		assert.Equal(t, 0, count)

		ids, err = cardRead.StudyCandidates(ctx, deck.DeckID, &aliceID, models.StudyModeLearned, nil)
		require.NoError(t, err)
		assert.Empty(t, ids)

		ids, err = cardRead.StudyCandidates(ctx, deck.DeckID, &aliceID, models.StudyModeUnlearned, nil)
		require.NoError(t, err)
		assert.Equal(t, []int64{cards[1].CardID, cards[2].CardID}, ids)

		_, found, err = progressWrite.Toggle(ctx, aliceID, cards[1].CardID)
		require.NoError(t, err)
		assert.False(t, found)

		require.NoError(t, cardWrite.DeleteByDeck(ctx, deck.DeckID))
		total, err = cardRead.CountByDeck(ctx, deck.DeckID)
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("RenameAndDeleteDeck", func(t *testing.T) {
		require.NoError(t, deckWrite.Rename(ctx, deck.DeckID, "Espanol"))
		got, err := deckRead.GetOwned(ctx, deck.DeckID, aliceID)
		require.NoError(t, err)
		assert.Equal(t, "Espanol", got.Name)

		require.NoError(t, deckWrite.Delete(ctx, deck.DeckID))
		got, err = deckRead.GetOwned(ctx, deck.DeckID, aliceID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Admin", func(t *testing.T) {
		admin := NewAdminRepository(db)

		users, err := admin.ListUsers(ctx, "ALI")
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "alice", users[0].Username)

		decks, err := admin.ListDecks(ctx, "")
		require.NoError(t, err)
		assert.Len(t, decks, 2)

		deleted, err := admin.Delete(ctx, "users", bobID)
		require.NoError(t, err)
		assert.True(t, deleted)

		// Removing a user removes their decks.
		decks, err = admin.ListDecks(ctx, "")
		require.NoError(t, err)
		require.Len(t, decks, 1)
		assert.Equal(t, "Shared", decks[0].Name)

		deleted, err = admin.Delete(ctx, "users", bobID)
		require.NoError(t, err)
		assert.False(t, deleted)

		progress, err := admin.ListProgress(ctx, &aliceID)
		require.NoError(t, err)
		assert.Empty(t, progress)
	})
}

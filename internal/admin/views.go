package admin

import (
	"context"
	"errors"
	"strconv"
)

var errBadFilter = errors.New("user_id must be an integer")

type row struct {
	ID    int64
	Cells []string
}

type listPage struct {
	Title       string
	Base        string
	View        string
	Views       []string
	SearchParam string
	SearchHint  string
	Search      string
	Columns     []string
	Rows        []row
}

type view struct {
	name        string
	title       string
	table       string
	searchParam string
	searchHint  string
	columns     []string
	rows        func(ctx context.Context, store Store, search string) ([]row, error)
}

var views = []view{
	{
		name:        "users",
		title:       "Users",
		table:       "users",
		searchParam: "q",
		searchHint:  "username or email",
		columns:     []string{"id", "username", "email", "color", "language"},
		rows: func(ctx context.Context, store Store, search string) ([]row, error) {
			users, err := store.ListUsers(ctx, search)
			if err != nil {
				return nil, err
			}
			rows := make([]row, 0, len(users))
			for _, u := range users {
				rows = append(rows, row{ID: u.UserID, Cells: []string{
					itoa(u.UserID), u.Username, u.Email, u.Color.String(), u.Language.String(),
				}})
			}
			return rows, nil
		},
	},
	{
		name:        "decks",
		title:       "Decks",
		table:       "decks",
		searchParam: "q",
		searchHint:  "name",
		columns:     []string{"id", "name", "user_id"},
		rows: func(ctx context.Context, store Store, search string) ([]row, error) {
			decks, err := store.ListDecks(ctx, search)
			if err != nil {
				return nil, err
			}
			rows := make([]row, 0, len(decks))
			for _, d := range decks {
				owner := ""
				if d.UserID != nil {
					owner = itoa(*d.UserID)
				}
				rows = append(rows, row{ID: d.DeckID, Cells: []string{itoa(d.DeckID), d.Name, owner}})
			}
			return rows, nil
		},
	},
	{
		name:        "cards",
		title:       "Cards",
		table:       "cards",
		searchParam: "q",
		searchHint:  "entry or value",
		columns:     []string{"id", "entry", "value", "deck_id"},
		rows: func(ctx context.Context, store Store, search string) ([]row, error) {
			cards, err := store.ListCards(ctx, search)
			if err != nil {
				return nil, err
			}
			rows := make([]row, 0, len(cards))
			for _, c := range cards {
				rows = append(rows, row{ID: c.CardID, Cells: []string{itoa(c.CardID), c.Entry, c.Value, itoa(c.DeckID)}})
			}
			return rows, nil
		},
	},
	{
		name:        "progress",
		title:       "User progress",
		table:       "user_progress",
		searchParam: "user_id",
		searchHint:  "user id",
		columns:     []string{"id", "user_id", "card_id", "deck_id", "learned"},
		rows: func(ctx context.Context, store Store, search string) ([]row, error) {
			var userID *int64
			if search != "" {
				id, err := strconv.ParseInt(search, 10, 32)
				if err != nil {
					return nil, errBadFilter
				}
				userID = &id
			}
			progress, err := store.ListProgress(ctx, userID)
			if err != nil {
				return nil, err
			}
			rows := make([]row, 0, len(progress))
			for _, p := range progress {
				rows = append(rows, row{ID: p.ProgressID, Cells: []string{
					itoa(p.ProgressID), itoa(p.UserID), itoa(p.CardID), itoa(p.DeckID), strconv.FormatBool(p.Learned),
				}})
			}
			return rows, nil
		},
	},
}

func viewByName(name string) (view, bool) {
	for _, v := range views {
		if v.name == name {
			return v, true
		}
	}
	return view{}, false
}

func viewNames() []string {
	names := make([]string, len(views))
	for i, v := range views {
		names[i] = v.name
	}
	return names
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henryperkins/Tarot-Master/internal/domain"
	"github.com/henryperkins/Tarot-Master/internal/ports"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRecord(created time.Time) ports.ReadingRecord {
	return ports.ReadingRecord{
		ID:       uuid.NewString(),
		SpreadID: "three-card",
		Question: "What should I focus on?",
		Cards: []ports.CardRecord{
			{CardID: "major-0", CardName: "The Fool", PositionID: 1, PositionName: "Past", Reversed: false, Meaning: "New beginnings."},
			{CardID: "cups-3", CardName: "Three of Cups", PositionID: 2, PositionName: "Present", Reversed: true, Meaning: "Overindulgence."},
			{CardID: "swords-14", CardName: "King of Swords", PositionID: 3, PositionName: "Future", Reversed: false, Meaning: "Clear judgment."},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestSaveAndGet(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	rec := sampleRecord(time.Now().UTC())
	require.NoError(t, store.SaveReading(ctx, rec))

	got, err := store.GetReading(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.SpreadID, got.SpreadID)
	assert.Equal(t, rec.Question, got.Question)
	require.Len(t, got.Cards, 3)
	assert.Equal(t, "The Fool", got.Cards[0].CardName)
	assert.True(t, got.Cards[1].Reversed)
	assert.Equal(t, "Future", got.Cards[2].PositionName)
}

func TestGetMissing(t *testing.T) {
	store := openStore(t)
	_, err := store.GetReading(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrReadingNotFound)
}

func TestListNewestFirstAndFavorites(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	base := time.Now().UTC()
	older := sampleRecord(base.Add(-time.Hour))
	newer := sampleRecord(base)
	require.NoError(t, store.SaveReading(ctx, older))
	require.NoError(t, store.SaveReading(ctx, newer))

	all, err := store.ListReadings(ctx, ports.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, newer.ID, all[0].ID)
	assert.Equal(t, older.ID, all[1].ID)

	fav := true
	_, err = store.UpdateEntry(ctx, older.ID, ports.EntryUpdate{Favorite: &fav})
	require.NoError(t, err)

	favs, err := store.ListReadings(ctx, ports.ListFilter{FavoritesOnly: true})
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, older.ID, favs[0].ID)
}

func TestAttachNarrativeOnce(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	rec := sampleRecord(time.Now().UTC())
	require.NoError(t, store.SaveReading(ctx, rec))

	require.NoError(t, store.AttachNarrative(ctx, rec.ID, "A story of change."))

	got, err := store.GetReading(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "A story of change.", got.Narrative)

	err = store.AttachNarrative(ctx, rec.ID, "Another story.")
	assert.ErrorIs(t, err, domain.ErrNarrativeExists)

	err = store.AttachNarrative(ctx, "no-such-id", "text")
	assert.ErrorIs(t, err, domain.ErrReadingNotFound)
}

func TestUpdateEntry(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	rec := sampleRecord(time.Now().UTC())
	require.NoError(t, store.SaveReading(ctx, rec))

	notes := "Resonated with the week I had."
	got, err := store.UpdateEntry(ctx, rec.ID, ports.EntryUpdate{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, notes, got.Notes)
	assert.False(t, got.Favorite, "favorite untouched when nil")

	fav := true
	got, err = store.UpdateEntry(ctx, rec.ID, ports.EntryUpdate{Favorite: &fav})
	require.NoError(t, err)
	assert.True(t, got.Favorite)
	assert.Equal(t, notes, got.Notes, "notes untouched when nil")

	_, err = store.UpdateEntry(ctx, "no-such-id", ports.EntryUpdate{Notes: &notes})
	assert.ErrorIs(t, err, domain.ErrReadingNotFound)
}

func TestDelete(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	rec := sampleRecord(time.Now().UTC())
	require.NoError(t, store.SaveReading(ctx, rec))

	require.NoError(t, store.DeleteReading(ctx, rec.ID))
	_, err := store.GetReading(ctx, rec.ID)
	assert.ErrorIs(t, err, domain.ErrReadingNotFound)

	err = store.DeleteReading(ctx, rec.ID)
	assert.ErrorIs(t, err, domain.ErrReadingNotFound)
}

package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movik.bot/telegram-bot/internal/common"
	"movik.bot/telegram-bot/internal/storage"
)

func newTestService(t *testing.T, movies ...string) (*Service, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	svc := NewService(NewRepository(storage.NewPersister(store)))
	svc.Load(context.Background(), map[Category][]string{Movies: movies})
	return svc, store
}

func persisted(t *testing.T, store *storage.MemoryStore, cat Category) []string {
	t.Helper()
	p := storage.NewPersister(store)
	return storage.Load(context.Background(), p, string(cat), []string{"<missing>"})
}

func TestLoad_SeedsDefaults(t *testing.T) {
	svc, store := newTestService(t, "A", "B")

	assert.Equal(t, []string{"A", "B"}, svc.List(Movies))
	assert.Empty(t, svc.List(Series))
	assert.Equal(t, []string{"A", "B"}, persisted(t, store, Movies))
	assert.Empty(t, persisted(t, store, Series))
}

func TestAppend(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t, "A")

	title, err := svc.Append(ctx, Movies, "  B  ")
	require.NoError(t, err)
	assert.Equal(t, "B", title)

	// дубликаты разрешены
	_, err = svc.Append(ctx, Movies, "B")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "B"}, svc.List(Movies))
	assert.Equal(t, []string{"A", "B", "B"}, persisted(t, store, Movies))

	_, err = svc.Append(ctx, Movies, "   ")
	assert.ErrorIs(t, err, common.ErrEmptyInput)

	_, err = svc.Append(ctx, Category("books"), "X")
	assert.ErrorIs(t, err, common.ErrUnknownCatalog)
}

func TestDeleteAt_ReturnsObservedTitleAndShifts(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t, "A", "B", "C", "D")

	before := svc.List(Movies)
	removed, err := svc.DeleteAt(ctx, Movies, 1)
	require.NoError(t, err)
	assert.Equal(t, before[1], removed)

	after := svc.List(Movies)
	assert.Equal(t, []string{"A", "C", "D"}, after)
	for i := 1; i < len(after); i++ {
		assert.Equal(t, before[i+1], after[i], "индексы после удалённого сдвигаются на один")
	}
	assert.Equal(t, after, persisted(t, store, Movies))
}

func TestDeleteAt_OutOfRange(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, "A")

	for _, idx := range []int{-1, 1, 100} {
		_, err := svc.DeleteAt(ctx, Movies, idx)
		assert.ErrorIs(t, err, common.ErrItemNotFound)
	}
	assert.Equal(t, []string{"A"}, svc.List(Movies))
}

func TestMove_FirstToLast(t *testing.T) {
	svc, store := newTestService(t, "A", "B", "C")

	require.NoError(t, svc.Move(context.Background(), Movies, 0, 2))
	assert.Equal(t, []string{"B", "C", "A"}, svc.List(Movies))
	assert.Equal(t, []string{"B", "C", "A"}, persisted(t, store, Movies))
}

func TestMove_RoundTrip(t *testing.T) {
	ctx := context.Background()
	original := []string{"A", "B", "C", "D", "E"}

	for i := range original {
		for j := range original {
			svc, _ := newTestService(t, original...)
			require.NoError(t, svc.Move(ctx, Movies, i, j))
			require.NoError(t, svc.Move(ctx, Movies, j, i))
			assert.Equal(t, original, svc.List(Movies), "move(%d,%d) и обратно", i, j)
		}
	}
}

func TestMove_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, "A", "B")

	assert.ErrorIs(t, svc.Move(ctx, Movies, 5, 0), common.ErrItemNotFound)
	assert.ErrorIs(t, svc.Move(ctx, Movies, 0, 2), common.ErrPositionOutOfRange)
	assert.ErrorIs(t, svc.Move(ctx, Movies, 0, -1), common.ErrPositionOutOfRange)
	assert.Equal(t, []string{"A", "B"}, svc.List(Movies))
}

func TestMoveItem(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, "A", "B", "C")

	n, err := svc.MoveItem(ctx, Movies, 0, "A", 4)
	assert.ErrorIs(t, err, common.ErrPositionOutOfRange)
	assert.Equal(t, 3, n)

	_, err = svc.MoveItem(ctx, Movies, 0, "B", 2)
	assert.ErrorIs(t, err, common.ErrStaleItem, "на индексе 0 уже другое название")

	_, err = svc.MoveItem(ctx, Movies, 0, "A", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, svc.List(Movies))

	_, err = svc.DeleteAt(ctx, Movies, 2)
	require.NoError(t, err)
	_, err = svc.MoveItem(ctx, Movies, 2, "A", 1)
	assert.ErrorIs(t, err, common.ErrStaleItem, "элемент удалён")
}

func TestList_ReturnsCopy(t *testing.T) {
	svc, _ := newTestService(t, "A")
	items := svc.List(Movies)
	items[0] = "mutated"
	assert.Equal(t, []string{"A"}, svc.List(Movies))
}

func TestParseToken(t *testing.T) {
	cat, err := ParseToken("movie")
	require.NoError(t, err)
	assert.Equal(t, Movies, cat)

	cat, err = ParseToken("series")
	require.NoError(t, err)
	assert.Equal(t, Series, cat)

	_, err = ParseToken("books")
	assert.ErrorIs(t, err, common.ErrUnknownCatalog)

	assert.Equal(t, "movie", Movies.Token())
	assert.Equal(t, "series", Series.Token())
}

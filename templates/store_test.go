package templates_test

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/Ibrahimrosli95/invoicing-system-sub003/templates"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := templates.NewMemoryStore()

	saved, err := store.Save(ctx, templates.KindNotes, templates.Template{Name: "Default", Body: "Thank you."})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	got, err := store.Get(ctx, templates.KindNotes, saved.ID)
	require.NoError(t, err)
	require.Equal(t, "Thank you.", got.Body)

	_, err = store.Get(ctx, templates.KindNotes, "missing")
	require.ErrorIs(t, err, templates.ErrNotFound)

	_, err = store.Get(ctx, templates.KindTerms, saved.ID)
	require.ErrorIs(t, err, templates.ErrNotFound)

	_, err = store.Save(ctx, templates.Kind("other"), templates.Template{Body: "x"})
	require.ErrorIs(t, err, templates.ErrInvalidKind)

	_, err = store.Save(ctx, templates.KindTerms, templates.Template{Name: "Empty"})
	require.ErrorIs(t, err, templates.ErrEmptyBody)
}

func TestMemoryStoreListSorted(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := templates.NewMemoryStore()
	for _, name := range []string{"Zebra", "Alpha", "Mid"} {
		_, err := store.Save(ctx, templates.KindTerms, templates.Template{Name: name, Body: "net 30"})
		require.NoError(t, err)
	}
	list, err := store.List(ctx, templates.KindTerms)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "Alpha", list[0].Name)
	require.Equal(t, "Zebra", list[2].Name)
}

func TestRedisStore(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	store := &templates.RedisStore{R: client, Prefix: "testhost"}

	saved, err := store.Save(ctx, templates.KindNotes, templates.Template{Name: "Default", Body: "Thank you."})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	got, err := store.Get(ctx, templates.KindNotes, saved.ID)
	require.NoError(t, err)
	require.Equal(t, saved, got)

	_, err = store.Get(ctx, templates.KindNotes, "missing")
	require.ErrorIs(t, err, templates.ErrNotFound)

	// Overwrite keeps the same id.
	saved.Body = "Much obliged."
	again, err := store.Save(ctx, templates.KindNotes, saved)
	require.NoError(t, err)
	require.Equal(t, saved.ID, again.ID)

	list, err := store.List(ctx, templates.KindNotes)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Much obliged.", list[0].Body)

	_, err = store.List(ctx, templates.Kind("bogus"))
	require.ErrorIs(t, err, templates.ErrInvalidKind)
}

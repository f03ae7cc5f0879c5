package fixtures_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/Gunvolt24/myform/internal/cache/memory"
	"github.com/Gunvolt24/myform/internal/domain"
	"github.com/Gunvolt24/myform/internal/fixtures"
	"github.com/stretchr/testify/require"
)

func TestDefaultFixtures_AreValidStatuses(t *testing.T) {
	store := fixtures.NewStore(fixtures.Default(), memory.NewLRUCacheTTL(8, 0))

	names, err := store.Names()
	require.NoError(t, err)
	require.Equal(t, []string{"error.json", "progress.json", "success.json"}, names)

	want := map[string]domain.StatusKind{
		"error.json":    domain.StatusError,
		"progress.json": domain.StatusProgress,
		"success.json":  domain.StatusSuccess,
	}
	for _, name := range names {
		body, err := store.Get(context.Background(), name)
		require.NoError(t, err)
		st, err := domain.ParseStatus(body)
		require.NoError(t, err)
		require.Equal(t, want[name], st.Kind, name)
	}
}

func TestStore_Get_NotFound(t *testing.T) {
	store := fixtures.NewStore(fixtures.Default(), memory.NewLRUCacheTTL(8, 0))

	for _, name := range []string{"missing.json", "../go.mod", "json/success.json", "success.txt", ""} {
		_, err := store.Get(context.Background(), name)
		if !errors.Is(err, fixtures.ErrFixtureNotFound) {
			t.Fatalf("name=%q: want ErrFixtureNotFound, got %v", name, err)
		}
	}
}

func TestStore_Get_InvalidFixture(t *testing.T) {
	fsys := fstest.MapFS{"broken.json": {Data: []byte(`{"status":"done"}`)}}
	store := fixtures.NewStore(fsys, memory.NewLRUCacheTTL(8, 0))

	_, err := store.Get(context.Background(), "broken.json")
	require.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestStore_Get_UsesCache(t *testing.T) {
	fsys := fstest.MapFS{"success.json": {Data: []byte(`{"status":"success"}`)}}
	cache := memory.NewLRUCacheTTL(8, 0)
	store := fixtures.NewStore(fsys, cache)

	_, err := store.Get(context.Background(), "success.json")
	require.NoError(t, err)

	// после удаления файла тело всё ещё отдаётся из кэша
	delete(fsys, "success.json")
	body, err := store.Get(context.Background(), "success.json")
	require.NoError(t, err)
	require.JSONEq(t, `{"status":"success"}`, string(body))
	require.Equal(t, 1, cache.Len())
}

func TestStore_Get_CanceledContext(t *testing.T) {
	store := fixtures.NewStore(fixtures.Default(), memory.NewLRUCacheTTL(8, 0))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Get(ctx, "success.json")
	require.ErrorIs(t, err, context.Canceled)
}

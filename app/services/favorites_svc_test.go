package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFavoriteRepo struct {
	byUser map[string][]string
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{byUser: make(map[string][]string)}
}

func (f *fakeFavoriteRepo) ListProductIDs(ctx context.Context, userID string) ([]string, error) {
	return f.byUser[userID], nil
}

func (f *fakeFavoriteRepo) Add(ctx context.Context, userID, productID string) error {
	if !ContainsProduct(f.byUser[userID], productID) {
		f.byUser[userID] = append(f.byUser[userID], productID)
	}
	return nil
}

func (f *fakeFavoriteRepo) Remove(ctx context.Context, userID, productID string) error {
	next, _ := ToggleLocal(f.byUser[userID], productID)
	f.byUser[userID] = next
	return nil
}

func (f *fakeFavoriteRepo) Exists(ctx context.Context, userID, productID string) (bool, error) {
	return ContainsProduct(f.byUser[userID], productID), nil
}

func TestToggleRemoteFavorites(t *testing.T) {
	repo := newFakeFavoriteRepo()
	svc := NewFavoritesService(repo)
	ctx := context.Background()

	on, err := svc.Toggle(ctx, "user-1", "p1")
	require.NoError(t, err)
	assert.True(t, on)

	fav, err := svc.IsFavorite(ctx, "user-1", "p1")
	require.NoError(t, err)
	assert.True(t, fav)

	off, err := svc.Toggle(ctx, "user-1", "p1")
	require.NoError(t, err)
	assert.False(t, off)

	ids, err := svc.ListProductIDs(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestToggleLocalFavorites(t *testing.T) {
	favorites, on := ToggleLocal(nil, "p1")
	assert.True(t, on)
	favorites, _ = ToggleLocal(favorites, "p2")
	assert.Equal(t, []string{"p1", "p2"}, favorites)

	favorites, on = ToggleLocal(favorites, "p1")
	assert.False(t, on)
	assert.Equal(t, []string{"p2"}, favorites)
	assert.False(t, ContainsProduct(favorites, "p1"))
}

func TestToggleLocalDoesNotMutateInput(t *testing.T) {
	original := []string{"p1", "p2", "p3"}

	removed, on := ToggleLocal(original, "p2")
	assert.False(t, on)
	assert.Equal(t, []string{"p1", "p3"}, removed)
	assert.Equal(t, []string{"p1", "p2", "p3"}, original)

	added, on := ToggleLocal(original, "p4")
	assert.True(t, on)
	assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, added)
	assert.Equal(t, []string{"p1", "p2", "p3"}, original)
}

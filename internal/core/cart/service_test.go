package cart_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yadawity/yadawity/internal/core/artwork"
	"github.com/yadawity/yadawity/internal/core/cart"
	"github.com/yadawity/yadawity/internal/platform/apperr"
	"github.com/yadawity/yadawity/internal/platform/dberr"
)

type fakeCatalog struct {
	pieces map[int64]*artwork.Artwork
	broken map[int64]error
}

func (f *fakeCatalog) GetArtwork(_ context.Context, id int64) (*artwork.Artwork, error) {
	if err, ok := f.broken[id]; ok {
		return nil, err
	}
	piece, ok := f.pieces[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return piece, nil
}

type fakeCartRepo struct {
	items map[int64]map[int64]int
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: map[int64]map[int64]int{}}
}

func (r *fakeCartRepo) SetItem(_ context.Context, userID, artworkID int64, quantity int) error {
	if r.items[userID] == nil {
		r.items[userID] = map[int64]int{}
	}
	r.items[userID][artworkID] = quantity
	return nil
}

func (r *fakeCartRepo) RemoveItem(_ context.Context, userID, artworkID int64) error {
	delete(r.items[userID], artworkID)
	return nil
}

func (r *fakeCartRepo) Items(_ context.Context, userID int64) (map[int64]int, error) {
	out := map[int64]int{}
	for id, quantity := range r.items[userID] {
		out[id] = quantity
	}
	return out, nil
}

func (r *fakeCartRepo) Clear(_ context.Context, userID int64) error {
	delete(r.items, userID)
	return nil
}

func newService(repo *fakeCartRepo, catalog *fakeCatalog) *cart.Service {
	return cart.NewService(repo, catalog, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAddItem(t *testing.T) {
	catalog := &fakeCatalog{pieces: map[int64]*artwork.Artwork{
		1: {ID: 1, PriceCents: 100_00, Quantity: 5, Status: artwork.StatusApproved},
		2: {ID: 2, PriceCents: 200_00, Quantity: 5, Status: artwork.StatusPending},
		3: {ID: 3, PriceCents: 300_00, Quantity: 5, Status: artwork.StatusApproved, IsAuction: true},
		4: {ID: 4, PriceCents: 400_00, Quantity: 1, Status: artwork.StatusApproved},
	}}

	tests := []struct {
		name      string
		artworkID int64
		quantity  int
		wantErr   bool
	}{
		{"approved_in_stock", 1, 2, false},
		{"zero_quantity", 1, 0, true},
		{"not_approved", 2, 1, true},
		{"auction_piece", 3, 1, true},
		{"exceeds_stock", 4, 2, true},
		{"unknown_artwork", 99, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeCartRepo()
			service := newService(repo, catalog)

			err := service.AddItem(context.Background(), 42, tt.artworkID, tt.quantity)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, repo.items[42])
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.quantity, repo.items[42][tt.artworkID])
		})
	}
}

func TestAddItem_UnavailableIsUnprocessable(t *testing.T) {
	catalog := &fakeCatalog{pieces: map[int64]*artwork.Artwork{
		2: {ID: 2, Quantity: 5, Status: artwork.StatusPending},
	}}
	service := newService(newFakeCartRepo(), catalog)

	err := service.AddItem(context.Background(), 42, 2, 1)
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)
}

func TestGetCart_HydratesAndDropsUnavailable(t *testing.T) {
	catalog := &fakeCatalog{pieces: map[int64]*artwork.Artwork{
		1: {ID: 1, PriceCents: 100_00, Quantity: 5, Status: artwork.StatusApproved},
		2: {ID: 2, PriceCents: 200_00, Quantity: 5, Status: artwork.StatusApproved},
	}}
	repo := newFakeCartRepo()
	service := newService(repo, catalog)
	ctx := context.Background()

	require.NoError(t, service.AddItem(ctx, 42, 1, 2))
	require.NoError(t, service.AddItem(ctx, 42, 2, 1))

	// Piece 2 loses its approval after being carted
	catalog.pieces[2].Status = artwork.StatusRejected

	hydrated, err := service.GetCart(ctx, 42)
	require.NoError(t, err)

	// 1. Only the still-available piece survives hydration
	require.Len(t, hydrated.Items, 1)
	assert.Equal(t, int64(1), hydrated.Items[0].Artwork.ID)

	// 2. Subtotal and total reflect live prices
	assert.Equal(t, int64(200_00), hydrated.Items[0].SubtotalCents)
	assert.Equal(t, int64(200_00), hydrated.TotalCents)
}

func TestGetCart_SurfacesStorageFailures(t *testing.T) {
	catalog := &fakeCatalog{pieces: map[int64]*artwork.Artwork{
		1: {ID: 1, PriceCents: 100_00, Quantity: 5, Status: artwork.StatusApproved},
		2: {ID: 2, PriceCents: 200_00, Quantity: 5, Status: artwork.StatusApproved},
	}}
	repo := newFakeCartRepo()
	service := newService(repo, catalog)
	ctx := context.Background()

	require.NoError(t, service.AddItem(ctx, 42, 1, 1))
	require.NoError(t, service.AddItem(ctx, 42, 2, 1))

	// 1. A deleted piece is dropped, not an error
	delete(catalog.pieces, 2)
	hydrated, err := service.GetCart(ctx, 42)
	require.NoError(t, err)
	assert.Len(t, hydrated.Items, 1)

	// 2. A failing catalog lookup aborts hydration instead of dropping lines
	catalog.broken = map[int64]error{1: apperr.Internal(errors.New("connection reset"))}
	_, err = service.GetCart(ctx, 42)
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
}

func TestRemoveAndClear(t *testing.T) {
	catalog := &fakeCatalog{pieces: map[int64]*artwork.Artwork{
		1: {ID: 1, PriceCents: 100_00, Quantity: 5, Status: artwork.StatusApproved},
	}}
	repo := newFakeCartRepo()
	service := newService(repo, catalog)
	ctx := context.Background()

	require.NoError(t, service.AddItem(ctx, 42, 1, 1))
	require.NoError(t, service.RemoveItem(ctx, 42, 1))
	assert.Empty(t, repo.items[42])

	require.NoError(t, service.AddItem(ctx, 42, 1, 1))
	require.NoError(t, service.Clear(ctx, 42))
	assert.Empty(t, repo.items[42])
}

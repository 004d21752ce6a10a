package artwork_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yadawity/yadawity/internal/core/artwork"
	"github.com/yadawity/yadawity/internal/platform/apperr"
	"github.com/yadawity/yadawity/internal/platform/dberr"
)

// fakeRepo records the filter each list call received and serves artworks by ID.
type fakeRepo struct {
	byID       map[int64]*artwork.Artwork
	bySlug     map[string]*artwork.Artwork
	lastFilter artwork.Filter
	statusSet  map[int64]artwork.Status
	nextID     int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byID:      map[int64]*artwork.Artwork{},
		bySlug:    map[string]*artwork.Artwork{},
		statusSet: map[int64]artwork.Status{},
		nextID:    1,
	}
}

func (r *fakeRepo) add(a *artwork.Artwork) *artwork.Artwork {
	a.ID = r.nextID
	r.nextID++
	r.byID[a.ID] = a
	r.bySlug[a.Slug] = a
	return a
}

func (r *fakeRepo) ListArtworks(_ context.Context, f artwork.Filter, _, _ int) ([]*artwork.Artwork, int, error) {
	r.lastFilter = f
	return nil, 0, nil
}

func (r *fakeRepo) GetArtwork(_ context.Context, id int64) (*artwork.Artwork, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return a, nil
}

func (r *fakeRepo) GetArtworkBySlug(_ context.Context, slug string) (*artwork.Artwork, error) {
	a, ok := r.bySlug[slug]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return a, nil
}

func (r *fakeRepo) CreateArtwork(_ context.Context, a *artwork.Artwork) error {
	r.add(a)
	return nil
}

func (r *fakeRepo) UpdateArtwork(_ context.Context, a *artwork.Artwork) error {
	r.byID[a.ID] = a
	return nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id int64, status artwork.Status) error {
	r.statusSet[id] = status
	r.byID[id].Status = status
	return nil
}

func (r *fakeRepo) DeleteArtwork(_ context.Context, _, id int64) error {
	delete(r.byID, id)
	return nil
}

func newService(repo *fakeRepo) *artwork.Service {
	return artwork.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestListGallery_PinsApproved(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)

	// A crafted filter asking for Pending must still come out Approved
	_, _, err := service.ListGallery(context.Background(), artwork.Filter{Status: artwork.StatusPending}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, artwork.StatusApproved, repo.lastFilter.Status)
}

func TestListByArtist_PinsArtist(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)

	_, _, err := service.ListByArtist(context.Background(), 42, artwork.Filter{ArtistID: 7}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(42), repo.lastFilter.ArtistID)
}

func TestCreateArtwork(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)

	created, err := service.CreateArtwork(context.Background(), 42, artwork.CreateInput{
		Title:      "Sunset Over Cairo",
		Category:   "painting",
		PriceCents: 150_00,
		Quantity:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, artwork.StatusPending, created.Status)
	assert.Equal(t, "sunset-over-cairo", created.Slug)
	assert.Equal(t, int64(42), created.ArtistID)
}

func TestCreateArtwork_Validation(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)

	tests := []struct {
		name  string
		input artwork.CreateInput
	}{
		{"missing_title", artwork.CreateInput{Category: "painting", PriceCents: 100, Quantity: 1}},
		{"missing_category", artwork.CreateInput{Title: "Piece", PriceCents: 100, Quantity: 1}},
		{"zero_price", artwork.CreateInput{Title: "Piece", Category: "painting", Quantity: 1}},
		{"zero_quantity", artwork.CreateInput{Title: "Piece", Category: "painting", PriceCents: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateArtwork(context.Background(), 42, tt.input)
			require.Error(t, err)
			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)
		})
	}
}

func TestUpdateArtwork_OwnershipAndRequeue(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)
	piece := repo.add(&artwork.Artwork{ArtistID: 42, Title: "Old", Slug: "old", Category: "painting", PriceCents: 100, Quantity: 1, Status: artwork.StatusApproved})

	// 1. A stranger cannot edit the listing
	_, err := service.UpdateArtwork(context.Background(), 7, piece.ID, artwork.CreateInput{
		Title: "Hijacked", Category: "painting", PriceCents: 100, Quantity: 1,
	})
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPStatus)

	// 2. An owner edit lands and resets moderation to Pending
	updated, err := service.UpdateArtwork(context.Background(), 42, piece.ID, artwork.CreateInput{
		Title: "New Title", Category: "painting", PriceCents: 200, Quantity: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, artwork.StatusPending, updated.Status)
	assert.Equal(t, "new-title", updated.Slug)
}

func TestGetPublished(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)
	repo.add(&artwork.Artwork{ArtistID: 42, Title: "Visible", Slug: "visible", Status: artwork.StatusApproved})
	repo.add(&artwork.Artwork{ArtistID: 42, Title: "Hidden", Slug: "hidden", Status: artwork.StatusPending})

	// 1. Approved pieces resolve
	found, err := service.GetPublished(context.Background(), "visible")
	require.NoError(t, err)
	assert.Equal(t, "Visible", found.Title)

	// 2. Pending pieces look like a 404, not a 403
	_, err = service.GetPublished(context.Background(), "hidden")
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeRepo()
	service := newService(repo)
	piece := repo.add(&artwork.Artwork{ArtistID: 42, Title: "Piece", Slug: "piece", Status: artwork.StatusPending})

	// 1. Only a moderation decision is accepted
	err := service.UpdateStatus(context.Background(), piece.ID, artwork.StatusPending)
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)

	err = service.UpdateStatus(context.Background(), piece.ID, artwork.Status("Bogus"))
	assert.Error(t, err)

	// 2. Approval is applied
	require.NoError(t, service.UpdateStatus(context.Background(), piece.ID, artwork.StatusApproved))
	assert.Equal(t, artwork.StatusApproved, repo.statusSet[piece.ID])

	// 3. Repeating the same decision is a no-op success (no second write)
	delete(repo.statusSet, piece.ID)
	require.NoError(t, service.UpdateStatus(context.Background(), piece.ID, artwork.StatusApproved))
	_, wrote := repo.statusSet[piece.ID]
	assert.False(t, wrote)

	// 4. Unknown artwork surfaces the storage error
	err = service.UpdateStatus(context.Background(), 999, artwork.StatusApproved)
	assert.Error(t, err)
}

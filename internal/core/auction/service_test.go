package auction_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yadawity/yadawity/internal/core/artwork"
	"github.com/yadawity/yadawity/internal/core/auction"
	"github.com/yadawity/yadawity/internal/platform/apperr"
	"github.com/yadawity/yadawity/internal/platform/dberr"
)

type fakeCatalog struct {
	pieces map[int64]*artwork.Artwork
}

func (f *fakeCatalog) GetArtwork(_ context.Context, id int64) (*artwork.Artwork, error) {
	piece, ok := f.pieces[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return piece, nil
}

type fakeAuctionRepo struct {
	auctions map[int64]*auction.Auction
	bids     []*auction.Bid
	closed   int64
	nextID   int64
}

func newFakeAuctionRepo() *fakeAuctionRepo {
	return &fakeAuctionRepo{auctions: map[int64]*auction.Auction{}, nextID: 1}
}

func (r *fakeAuctionRepo) add(a *auction.Auction) *auction.Auction {
	a.ID = r.nextID
	r.nextID++
	r.auctions[a.ID] = a
	return a
}

func (r *fakeAuctionRepo) ListAuctions(_ context.Context, _ auction.Filter, _, _ int) ([]*auction.Auction, int, error) {
	return nil, 0, nil
}

func (r *fakeAuctionRepo) GetAuction(_ context.Context, id int64) (*auction.Auction, error) {
	a, ok := r.auctions[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return a, nil
}

func (r *fakeAuctionRepo) CreateAuction(_ context.Context, a *auction.Auction) error {
	r.add(a)
	return nil
}

func (r *fakeAuctionRepo) PlaceBid(_ context.Context, bid *auction.Bid) error {
	a := r.auctions[bid.AuctionID]
	// Mirrors the store's atomic guard: only strictly higher bids land
	if bid.AmountCents <= a.CurrentBidCents {
		return apperr.Conflict("A higher bid was already placed")
	}
	a.CurrentBidCents = bid.AmountCents
	a.BidCount++
	r.bids = append(r.bids, bid)
	return nil
}

func (r *fakeAuctionRepo) ListBids(_ context.Context, _ int64, _, _ int) ([]*auction.Bid, int, error) {
	return nil, 0, nil
}

func (r *fakeAuctionRepo) CloseExpired(_ context.Context) (int64, error) {
	return r.closed, nil
}

func newService(repo *fakeAuctionRepo, catalog *fakeCatalog) *auction.Service {
	return auction.NewService(repo, catalog, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func requireStatus(t *testing.T, err error, wantStatus int) {
	t.Helper()
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, wantStatus, appErr.HTTPStatus)
}

func TestCreateAuction(t *testing.T) {
	catalog := &fakeCatalog{pieces: map[int64]*artwork.Artwork{
		1: {ID: 1, ArtistID: 42, Status: artwork.StatusApproved, IsAuction: true},
		2: {ID: 2, ArtistID: 42, Status: artwork.StatusApproved, IsAuction: false},
		3: {ID: 3, ArtistID: 42, Status: artwork.StatusPending, IsAuction: true},
	}}
	repo := newFakeAuctionRepo()
	service := newService(repo, catalog)
	ctx := context.Background()
	now := time.Now()

	// 1. A future window yields a Scheduled auction
	scheduled, err := service.CreateAuction(ctx, 42, auction.CreateInput{
		ArtworkID: 1, StartingPriceCents: 500_00,
		StartsAt: now.Add(time.Hour), EndsAt: now.Add(48 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, auction.StatusScheduled, scheduled.Status)
	assert.Equal(t, int64(500_00), scheduled.CurrentBidCents)

	// 2. A window that already started opens Live
	live, err := service.CreateAuction(ctx, 42, auction.CreateInput{
		ArtworkID: 1, StartingPriceCents: 500_00,
		StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, auction.StatusLive, live.Status)

	// 3. Only the owner may open an auction
	_, err = service.CreateAuction(ctx, 7, auction.CreateInput{
		ArtworkID: 1, StartingPriceCents: 500_00,
		StartsAt: now, EndsAt: now.Add(time.Hour),
	})
	requireStatus(t, err, http.StatusForbidden)

	// 4. The piece must be auction-enabled and approved
	_, err = service.CreateAuction(ctx, 42, auction.CreateInput{
		ArtworkID: 2, StartingPriceCents: 500_00,
		StartsAt: now, EndsAt: now.Add(time.Hour),
	})
	requireStatus(t, err, http.StatusUnprocessableEntity)

	_, err = service.CreateAuction(ctx, 42, auction.CreateInput{
		ArtworkID: 3, StartingPriceCents: 500_00,
		StartsAt: now, EndsAt: now.Add(time.Hour),
	})
	requireStatus(t, err, http.StatusUnprocessableEntity)

	// 5. The window itself must be ordered
	_, err = service.CreateAuction(ctx, 42, auction.CreateInput{
		ArtworkID: 1, StartingPriceCents: 500_00,
		StartsAt: now.Add(time.Hour), EndsAt: now,
	})
	requireStatus(t, err, http.StatusUnprocessableEntity)
}

func TestPlaceBid(t *testing.T) {
	catalog := &fakeCatalog{pieces: map[int64]*artwork.Artwork{
		1: {ID: 1, ArtistID: 42, Status: artwork.StatusApproved, IsAuction: true},
	}}
	repo := newFakeAuctionRepo()
	service := newService(repo, catalog)
	ctx := context.Background()
	now := time.Now()

	live := repo.add(&auction.Auction{
		ArtworkID: 1, StartingPriceCents: 500_00, CurrentBidCents: 500_00,
		StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour), Status: auction.StatusLive,
	})

	// 1. A higher bid lands and raises the current price
	bid, err := service.PlaceBid(ctx, 7, live.ID, 600_00)
	require.NoError(t, err)
	assert.Equal(t, int64(600_00), live.CurrentBidCents)
	assert.Equal(t, int64(7), bid.BidderID)

	// 2. A bid at or below the current price is rejected
	_, err = service.PlaceBid(ctx, 8, live.ID, 600_00)
	requireStatus(t, err, http.StatusUnprocessableEntity)

	// 3. The artist cannot bid on their own piece
	_, err = service.PlaceBid(ctx, 42, live.ID, 700_00)
	requireStatus(t, err, http.StatusForbidden)

	// 4. Negative amounts never reach the store
	_, err = service.PlaceBid(ctx, 7, live.ID, -5)
	requireStatus(t, err, http.StatusUnprocessableEntity)
}

func TestPlaceBid_WindowChecks(t *testing.T) {
	catalog := &fakeCatalog{pieces: map[int64]*artwork.Artwork{
		1: {ID: 1, ArtistID: 42, Status: artwork.StatusApproved, IsAuction: true},
	}}
	repo := newFakeAuctionRepo()
	service := newService(repo, catalog)
	ctx := context.Background()
	now := time.Now()

	tests := []struct {
		name    string
		auction *auction.Auction
	}{
		{
			name: "not_started",
			auction: &auction.Auction{ArtworkID: 1, CurrentBidCents: 100,
				StartsAt: now.Add(time.Hour), EndsAt: now.Add(2 * time.Hour), Status: auction.StatusScheduled},
		},
		{
			name: "past_deadline",
			auction: &auction.Auction{ArtworkID: 1, CurrentBidCents: 100,
				StartsAt: now.Add(-2 * time.Hour), EndsAt: now.Add(-time.Hour), Status: auction.StatusLive},
		},
		{
			name: "ended",
			auction: &auction.Auction{ArtworkID: 1, CurrentBidCents: 100,
				StartsAt: now.Add(-2 * time.Hour), EndsAt: now.Add(time.Hour), Status: auction.StatusEnded},
		},
		{
			name: "cancelled",
			auction: &auction.Auction{ArtworkID: 1, CurrentBidCents: 100,
				StartsAt: now.Add(-2 * time.Hour), EndsAt: now.Add(time.Hour), Status: auction.StatusCancelled},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			closed := repo.add(tt.auction)
			_, err := service.PlaceBid(ctx, 7, closed.ID, 200)
			requireStatus(t, err, http.StatusUnprocessableEntity)
		})
	}
}

func TestPlaceBid_StoreHasFinalWord(t *testing.T) {
	catalog := &fakeCatalog{pieces: map[int64]*artwork.Artwork{
		1: {ID: 1, ArtistID: 42, Status: artwork.StatusApproved, IsAuction: true},
	}}
	repo := newFakeAuctionRepo()
	now := time.Now()

	live := repo.add(&auction.Auction{
		ArtworkID: 1, CurrentBidCents: 500_00,
		StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour), Status: auction.StatusLive,
	})

	// Simulate a rival bid landing between the pre-check and the write
	repoRace := &racingRepo{fakeAuctionRepo: repo, raiseTo: 700_00}
	racedService := auction.NewService(repoRace, catalog, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := racedService.PlaceBid(context.Background(), 7, live.ID, 600_00)
	requireStatus(t, err, http.StatusConflict)
}

// racingRepo bumps the current bid right before the write, as a concurrent
// bidder would.
type racingRepo struct {
	*fakeAuctionRepo
	raiseTo int64
}

func (r *racingRepo) PlaceBid(ctx context.Context, bid *auction.Bid) error {
	r.auctions[bid.AuctionID].CurrentBidCents = r.raiseTo
	return r.fakeAuctionRepo.PlaceBid(ctx, bid)
}

package auction

import (
	"context"
	"log/slog"
	"time"

	"github.com/yadawity/yadawity/internal/core/artwork"
	"github.com/yadawity/yadawity/internal/platform/apperr"
	"github.com/yadawity/yadawity/internal/platform/validate"
)

// ArtworkCatalog is the slice of the gallery the auction flow needs.
type ArtworkCatalog interface {
	GetArtwork(context context.Context, id int64) (*artwork.Artwork, error)
}

type Service struct {
	repo     Repository
	artworks ArtworkCatalog
	logger   *slog.Logger
}

func NewService(repo Repository, artworks ArtworkCatalog, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		artworks: artworks,
		logger:   logger,
	}
}

func (service *Service) ListAuctions(context context.Context, filter Filter, limit, offset int) ([]*Auction, int, error) {
	return service.repo.ListAuctions(context, filter, limit, offset)
}

func (service *Service) GetAuction(context context.Context, id int64) (*Auction, error) {
	return service.repo.GetAuction(context, id)
}

func (service *Service) ListBids(context context.Context, auctionID int64, limit, offset int) ([]*Bid, int, error) {
	if _, err := service.repo.GetAuction(context, auctionID); err != nil {
		return nil, 0, err
	}
	return service.repo.ListBids(context, auctionID, limit, offset)
}

// CreateInput carries the artist-supplied auction parameters.
type CreateInput struct {
	ArtworkID          int64     `json:"artwork_id"`
	StartingPriceCents int64     `json:"starting_price_cents"`
	StartsAt           time.Time `json:"starts_at"`
	EndsAt             time.Time `json:"ends_at"`
}

// CreateAuction opens a timed sale on one of the artist's approved,
// auction-enabled pieces.
func (service *Service) CreateAuction(context context.Context, artistID int64, input CreateInput) (*Auction, error) {
	validator := &validate.Validator{}
	validator.Positive(FieldStartingPriceCents, input.StartingPriceCents)
	validator.Custom(FieldEndsAt, !input.EndsAt.After(input.StartsAt), "must be after starts_at")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	piece, err := service.artworks.GetArtwork(context, input.ArtworkID)
	if err != nil {
		return nil, err
	}
	if piece.ArtistID != artistID {
		return nil, apperr.Forbidden("You do not own this artwork")
	}
	if !piece.IsAuction {
		return nil, apperr.Unprocessable("Artwork is not auction-enabled")
	}
	if piece.Status != artwork.StatusApproved {
		return nil, apperr.Unprocessable("Artwork must be approved before auction")
	}

	status := StatusScheduled
	if !input.StartsAt.After(time.Now()) {
		status = StatusLive
	}

	auction := &Auction{
		ArtworkID:          input.ArtworkID,
		StartingPriceCents: input.StartingPriceCents,
		CurrentBidCents:    input.StartingPriceCents,
		StartsAt:           input.StartsAt,
		EndsAt:             input.EndsAt,
		Status:             status,
	}

	if err := service.repo.CreateAuction(context, auction); err != nil {
		return nil, err
	}

	service.logger.Info("auction_created",
		slog.Int64("auction_id", auction.ID),
		slog.Int64("artwork_id", auction.ArtworkID),
	)
	return auction, nil
}

/*
PlaceBid records a new bid on a live auction.

The amount must strictly exceed the current bid. The final word belongs to the
store's atomic update: two bidders racing on the same amount cannot both win,
whatever this pre-check observed.
*/
func (service *Service) PlaceBid(context context.Context, bidderID, auctionID, amountCents int64) (*Bid, error) {
	validator := &validate.Validator{}
	validator.Positive(FieldAmountCents, amountCents)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	auction, err := service.repo.GetAuction(context, auctionID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if auction.Status == StatusCancelled || auction.Status == StatusEnded || now.Before(auction.StartsAt) || !now.Before(auction.EndsAt) {
		return nil, apperr.Unprocessable("Auction is not open for bidding")
	}

	piece, err := service.artworks.GetArtwork(context, auction.ArtworkID)
	if err != nil {
		return nil, err
	}
	if piece.ArtistID == bidderID {
		return nil, apperr.Forbidden("Artists cannot bid on their own artwork")
	}

	if amountCents <= auction.CurrentBidCents {
		return nil, apperr.Unprocessable("Bid must exceed the current bid")
	}

	bid := &Bid{
		AuctionID:   auctionID,
		BidderID:    bidderID,
		AmountCents: amountCents,
	}

	if err := service.repo.PlaceBid(context, bid); err != nil {
		return nil, err
	}

	service.logger.Info("bid_placed",
		slog.Int64("auction_id", auctionID),
		slog.Int64("bidder_id", bidderID),
		slog.Int64("amount_cents", amountCents),
	)
	return bid, nil
}

// CloseExpired flips every past-deadline auction to Ended. Runs from the
// background sweeper.
func (service *Service) CloseExpired(context context.Context) error {
	closed, err := service.repo.CloseExpired(context)
	if err != nil {
		return err
	}

	if closed > 0 {
		service.logger.Info("auctions_closed", slog.Int64("count", closed))
	}
	return nil
}

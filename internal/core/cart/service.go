package cart

import (
	"context"
	"log/slog"
	"net/http"
	"sort"

	"github.com/yadawity/yadawity/internal/core/artwork"
	"github.com/yadawity/yadawity/internal/platform/apperr"
	"github.com/yadawity/yadawity/internal/platform/validate"
)

// ArtworkCatalog is the slice of the gallery the cart flow needs.
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

// AddItem puts an artwork in the cart or replaces its quantity. Only
// approved, fixed-price, in-stock pieces are accepted.
func (service *Service) AddItem(context context.Context, userID, artworkID int64, quantity int) error {
	validator := &validate.Validator{}
	validator.Positive(FieldArtworkID, artworkID)
	validator.Range(FieldQuantity, quantity, 1, 100)

	if err := validator.Err(); err != nil {
		return err
	}

	piece, err := service.artworks.GetArtwork(context, artworkID)
	if err != nil {
		return err
	}
	if piece.Status != artwork.StatusApproved {
		return apperr.Unprocessable("Artwork is not available for purchase")
	}
	if piece.IsAuction {
		return apperr.Unprocessable("Auction pieces cannot be added to the cart")
	}
	if piece.Quantity < quantity {
		return apperr.Unprocessable("Requested quantity exceeds stock")
	}

	if err := service.repo.SetItem(context, userID, artworkID, quantity); err != nil {
		return err
	}

	service.logger.Info("cart_item_set",
		slog.Int64("user_id", userID),
		slog.Int64("artwork_id", artworkID),
		slog.Int("quantity", quantity),
	)
	return nil
}

func (service *Service) RemoveItem(context context.Context, userID, artworkID int64) error {
	return service.repo.RemoveItem(context, userID, artworkID)
}

func (service *Service) Clear(context context.Context, userID int64) error {
	return service.repo.Clear(context, userID)
}

// GetCart hydrates the stored artwork IDs into full lines. Pieces that were
// deleted or un-approved since they were added are dropped silently.
func (service *Service) GetCart(context context.Context, userID int64) (*Cart, error) {
	items, err := service.repo.Items(context, userID)
	if err != nil {
		return nil, err
	}

	artworkIDs := make([]int64, 0, len(items))
	for id := range items {
		artworkIDs = append(artworkIDs, id)
	}
	sort.Slice(artworkIDs, func(i, j int) bool { return artworkIDs[i] < artworkIDs[j] })

	cart := &Cart{Items: []Line{}}
	for _, artworkID := range artworkIDs {
		piece, err := service.artworks.GetArtwork(context, artworkID)
		if err != nil {
			// A vanished piece falls out of the cart; any other lookup
			// failure must not shrink the order silently.
			if appErr := apperr.As(err); appErr != nil && appErr.HTTPStatus == http.StatusNotFound {
				continue
			}
			return nil, err
		}
		if piece.Status != artwork.StatusApproved {
			continue
		}

		quantity := items[artworkID]
		subtotal := piece.PriceCents * int64(quantity)
		cart.Items = append(cart.Items, Line{
			Artwork:       piece,
			Quantity:      quantity,
			SubtotalCents: subtotal,
		})
		cart.TotalCents += subtotal
	}

	return cart, nil
}

package artwork

import (
	"context"
	"log/slog"

	"github.com/yadawity/yadawity/internal/platform/apperr"
	"github.com/yadawity/yadawity/internal/platform/validate"
	"github.com/yadawity/yadawity/pkg/slug"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListGallery is the public browse path. It pins the filter to Approved so a
// crafted query string can never surface pending or rejected pieces.
func (service *Service) ListGallery(context context.Context, filter Filter, limit, offset int) ([]*Artwork, int, error) {
	filter.Status = StatusApproved
	return service.repo.ListArtworks(context, filter, limit, offset)
}

// ListByArtist returns an artist's own pieces in every moderation state.
func (service *Service) ListByArtist(context context.Context, artistID int64, filter Filter, limit, offset int) ([]*Artwork, int, error) {
	filter.ArtistID = artistID
	return service.repo.ListArtworks(context, filter, limit, offset)
}

// ListForModeration is the admin view; no status pinning.
func (service *Service) ListForModeration(context context.Context, filter Filter, limit, offset int) ([]*Artwork, int, error) {
	return service.repo.ListArtworks(context, filter, limit, offset)
}

func (service *Service) GetArtwork(context context.Context, id int64) (*Artwork, error) {
	return service.repo.GetArtwork(context, id)
}

// GetPublished resolves a gallery detail page by slug. Unapproved pieces are
// reported as missing, not forbidden.
func (service *Service) GetPublished(context context.Context, artworkSlug string) (*Artwork, error) {
	artwork, err := service.repo.GetArtworkBySlug(context, artworkSlug)
	if err != nil {
		return nil, err
	}
	if artwork.Status != StatusApproved {
		return nil, apperr.NotFound("Artwork not found")
	}
	return artwork, nil
}

// CreateInput carries the artist-supplied listing fields.
type CreateInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Category    string  `json:"category"`
	PriceCents  int64   `json:"price_cents"`
	Quantity    int     `json:"quantity"`
	IsAuction   bool    `json:"is_auction"`
}

func (service *Service) CreateArtwork(context context.Context, artistID int64, input CreateInput) (*Artwork, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 200)
	validator.Required(FieldCategory, input.Category).MaxLen(FieldCategory, input.Category, 80)
	validator.Positive(FieldPriceCents, input.PriceCents)
	validator.Range(FieldQuantity, input.Quantity, 1, 10000)

	if input.Description != nil {
		validator.MaxLen(FieldDescription, *input.Description, 5000)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	artwork := &Artwork{
		ArtistID:    artistID,
		Title:       input.Title,
		Slug:        slug.From(input.Title),
		Description: input.Description,
		Category:    input.Category,
		PriceCents:  input.PriceCents,
		Quantity:    input.Quantity,
		Status:      StatusPending,
		IsAuction:   input.IsAuction,
	}

	if err := service.repo.CreateArtwork(context, artwork); err != nil {
		return nil, err
	}

	service.logger.Info("artwork_created",
		slog.Int64("artwork_id", artwork.ID),
		slog.Int64("artist_id", artistID),
		slog.String("slug", artwork.Slug),
	)
	return artwork, nil
}

// UpdateArtwork lets the owning artist edit a listing. Any content change
// resets moderation to Pending so edits re-enter the review queue.
func (service *Service) UpdateArtwork(context context.Context, artistID, artworkID int64, input CreateInput) (*Artwork, error) {
	current, err := service.repo.GetArtwork(context, artworkID)
	if err != nil {
		return nil, err
	}
	if current.ArtistID != artistID {
		return nil, apperr.Forbidden("You do not own this artwork")
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).MaxLen(FieldTitle, input.Title, 200)
	validator.Required(FieldCategory, input.Category).MaxLen(FieldCategory, input.Category, 80)
	validator.Positive(FieldPriceCents, input.PriceCents)
	validator.Range(FieldQuantity, input.Quantity, 0, 10000)

	if input.Description != nil {
		validator.MaxLen(FieldDescription, *input.Description, 5000)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	current.Title = input.Title
	current.Slug = slug.From(input.Title)
	current.Description = input.Description
	current.Category = input.Category
	current.PriceCents = input.PriceCents
	current.Quantity = input.Quantity
	current.IsAuction = input.IsAuction
	current.Status = StatusPending

	if err := service.repo.UpdateArtwork(context, current); err != nil {
		return nil, err
	}

	service.logger.Info("artwork_updated", slog.Int64("artwork_id", current.ID))
	return current, nil
}

// UpdateStatus applies a moderation decision. Only Approved and Rejected are
// accepted; repeating a decision is a no-op success.
func (service *Service) UpdateStatus(context context.Context, artworkID int64, status Status) error {
	if status != StatusApproved && status != StatusRejected {
		return validate.RequiredError(FieldStatus, "must be Approved or Rejected")
	}

	current, err := service.repo.GetArtwork(context, artworkID)
	if err != nil {
		return err
	}

	if current.Status == status {
		return nil
	}

	if err := service.repo.UpdateStatus(context, artworkID, status); err != nil {
		return err
	}

	service.logger.Info("artwork_status_updated",
		slog.Int64("artwork_id", artworkID),
		slog.String("status", string(status)),
	)
	return nil
}

func (service *Service) DeleteArtwork(context context.Context, artistID, artworkID int64) error {
	if err := service.repo.DeleteArtwork(context, artistID, artworkID); err != nil {
		return err
	}

	service.logger.Warn("artwork_deleted", slog.Int64("artwork_id", artworkID), slog.Int64("artist_id", artistID))
	return nil
}

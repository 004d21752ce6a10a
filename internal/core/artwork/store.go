package artwork

import "context"

type Repository interface {
	ListArtworks(context context.Context, f Filter, limit, offset int) ([]*Artwork, int, error)
	GetArtwork(context context.Context, id int64) (*Artwork, error)
	GetArtworkBySlug(context context.Context, slug string) (*Artwork, error)
	CreateArtwork(context context.Context, a *Artwork) error
	UpdateArtwork(context context.Context, a *Artwork) error
	UpdateStatus(context context.Context, id int64, status Status) error
	DeleteArtwork(context context.Context, artistID, id int64) error
}

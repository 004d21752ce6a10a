package artwork

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yadawity/yadawity/internal/platform/middleware"
	requestutil "github.com/yadawity/yadawity/internal/platform/request"
	"github.com/yadawity/yadawity/internal/platform/respond"
	"github.com/yadawity/yadawity/pkg/convert"
	"github.com/yadawity/yadawity/pkg/pagination"
	"github.com/yadawity/yadawity/pkg/pointer"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes serves the public gallery plus the verified-artist listing surface.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public gallery (Approved pieces only)
	router.Get("/", handler.listGallery)
	router.Get("/{slug}", handler.getPublished)

	// Verified artists manage their own listings
	router.Group(func(artistRoute chi.Router) {
		artistRoute.Use(middleware.RequireVerifiedArtist)

		artistRoute.Get("/mine", handler.listMine)
		artistRoute.Post("/", handler.createArtwork)
		artistRoute.Put("/{id}", handler.updateArtwork)
		artistRoute.Delete("/{id}", handler.deleteArtwork)
	})

	return router
}

func filterFromRequest(request *http.Request) Filter {
	queryValues := request.URL.Query()

	filter := Filter{
		Query:         queryValues.Get("q"),
		Category:      queryValues.Get("category"),
		MinPriceCents: int64(convert.ToInt(queryValues.Get("min_price_cents"))),
		MaxPriceCents: int64(convert.ToInt(queryValues.Get("max_price_cents"))),
	}

	if raw := queryValues.Get("is_auction"); raw != "" {
		filter.IsAuction = pointer.To(convert.ToBool(raw))
	}

	return filter
}

func (handler *Handler) listGallery(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	artworks, total, err := handler.service.ListGallery(request.Context(), filterFromRequest(request), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, artworks, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getPublished(writer http.ResponseWriter, request *http.Request) {
	artworkSlug := requestutil.Param(request, "slug")

	artwork, err := handler.service.GetPublished(request.Context(), artworkSlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artwork)
}

func (handler *Handler) listMine(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)
	filter := filterFromRequest(request)

	if rawStatus := request.URL.Query().Get("status"); rawStatus != "" {
		filter.Status = Status(rawStatus)
	}

	artworks, total, err := handler.service.ListByArtist(request.Context(), artistID, filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, artworks, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) createArtwork(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	artwork, err := handler.service.CreateArtwork(request.Context(), artistID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, artwork)
}

func (handler *Handler) updateArtwork(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artworkID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	artwork, err := handler.service.UpdateArtwork(request.Context(), artistID, artworkID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, artwork)
}

func (handler *Handler) deleteArtwork(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artworkID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteArtwork(request.Context(), artistID, artworkID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

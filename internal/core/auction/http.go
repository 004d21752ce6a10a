package auction

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yadawity/yadawity/internal/platform/middleware"
	requestutil "github.com/yadawity/yadawity/internal/platform/request"
	"github.com/yadawity/yadawity/internal/platform/respond"
	"github.com/yadawity/yadawity/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes serves auction browsing (public), bidding (authenticated) and
// auction creation (verified artists).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/", handler.listAuctions)
	router.Get("/{id}", handler.getAuction)
	router.Get("/{id}/bids", handler.listBids)

	// Authenticated bidders
	router.With(middleware.RequireAuth).Post("/{id}/bids", handler.placeBid)

	// Verified artists open auctions
	router.With(middleware.RequireVerifiedArtist).Post("/", handler.createAuction)

	return router
}

func (handler *Handler) listAuctions(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Status: Status(request.URL.Query().Get("status")),
	}

	auctions, total, err := handler.service.ListAuctions(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, auctions, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getAuction(writer http.ResponseWriter, request *http.Request) {
	auctionID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	auction, err := handler.service.GetAuction(request.Context(), auctionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, auction)
}

func (handler *Handler) listBids(writer http.ResponseWriter, request *http.Request) {
	auctionID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	bids, total, err := handler.service.ListBids(request.Context(), auctionID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, bids, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) createAuction(writer http.ResponseWriter, request *http.Request) {
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

	auction, err := handler.service.CreateAuction(request.Context(), artistID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, auction)
}

type placeBidRequest struct {
	AmountCents int64 `json:"amount_cents"`
}

func (handler *Handler) placeBid(writer http.ResponseWriter, request *http.Request) {
	bidderID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	auctionID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input placeBidRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	bid, err := handler.service.PlaceBid(request.Context(), bidderID, auctionID, input.AmountCents)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, bid)
}

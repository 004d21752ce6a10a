package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yadawity/yadawity/internal/platform/middleware"
	requestutil "github.com/yadawity/yadawity/internal/platform/request"
	"github.com/yadawity/yadawity/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes serves the authenticated shopping cart surface.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.getCart)
	router.Put("/items", handler.setItem)
	router.Delete("/items/{artworkID}", handler.removeItem)
	router.Delete("/", handler.clear)

	return router
}

func (handler *Handler) getCart(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	cart, err := handler.service.GetCart(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, cart)
}

type setItemRequest struct {
	ArtworkID int64 `json:"artwork_id"`
	Quantity  int   `json:"quantity"`
}

func (handler *Handler) setItem(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input setItemRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddItem(request.Context(), userID, input.ArtworkID, input.Quantity); err != nil {
		respond.Error(writer, request, err)
		return
	}

	cart, err := handler.service.GetCart(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, cart)
}

func (handler *Handler) removeItem(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	artworkID, err := requestutil.IntID(request, "artworkID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveItem(request.Context(), userID, artworkID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) clear(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Clear(request.Context(), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

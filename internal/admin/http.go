package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yadawity/yadawity/internal/core/artwork"
	"github.com/yadawity/yadawity/internal/core/order"
	"github.com/yadawity/yadawity/internal/platform/middleware"
	requestutil "github.com/yadawity/yadawity/internal/platform/request"
	"github.com/yadawity/yadawity/internal/platform/respond"
	"github.com/yadawity/yadawity/internal/platform/sec"
	"github.com/yadawity/yadawity/internal/reporting"
	"github.com/yadawity/yadawity/pkg/pagination"
)

// Handler serves the admin console API: user management, artist and artwork
// moderation, order fulfillment, and the analytics/reporting dashboard.
type Handler struct {
	service  *Service
	artworks *artwork.Service
	orders   *order.Service
	insights *reporting.Handler
}

func NewHandler(service *Service, artworks *artwork.Service, orders *order.Service, insights *reporting.Handler) *Handler {
	return &Handler{
		service:  service,
		artworks: artworks,
		orders:   orders,
		insights: insights,
	}
}

// Routes returns the admin router. Every endpoint requires the admin role.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireRole(sec.RoleAdmin))

	router.Get("/users", handler.listUsers)
	router.Get("/users/{id}", handler.getUser)
	router.Put("/users/{id}/active", handler.setUserActive)
	router.Put("/users/{id}/role", handler.setUserRole)
	router.Put("/artists/{id}/status", handler.updateArtistStatus)

	router.Get("/artworks", handler.listArtworks)
	router.Put("/artworks/{id}/status", handler.updateArtworkStatus)

	router.Get("/orders", handler.listOrders)
	router.Get("/orders/{id}", handler.getOrder)
	router.Put("/orders/{id}/status", handler.updateOrderStatus)

	router.Get("/analytics", handler.insights.Analytics)
	router.Get("/reports", handler.insights.Report)

	return router
}

// # User Management

func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryValues := request.URL.Query()

	filter := UserFilter{
		Query:  queryValues.Get("q"),
		Status: AccountStatus(queryValues.Get("status")),
		Role:   queryValues.Get("type"),
	}

	users, total, err := handler.service.ListUsers(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, users, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.GetUser(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user)
}

type setActiveRequest struct {
	IsActive bool `json:"is_active"`
}

func (handler *Handler) setUserActive(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input setActiveRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetUserActive(request.Context(), userID, input.IsActive); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

type setRoleRequest struct {
	Role string `json:"role"`
}

func (handler *Handler) setUserRole(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input setRoleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetUserRole(request.Context(), userID, input.Role); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

type artistStatusRequest struct {
	Decision string `json:"decision"`
}

func (handler *Handler) updateArtistStatus(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input artistStatusRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateArtistStatus(request.Context(), artistID, ArtistDecision(input.Decision)); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Artwork Moderation

func (handler *Handler) listArtworks(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryValues := request.URL.Query()

	filter := artwork.Filter{
		Query:    queryValues.Get("q"),
		Category: queryValues.Get("category"),
		Status:   artwork.Status(queryValues.Get("status")),
	}

	artworks, total, err := handler.artworks.ListForModeration(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, artworks, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

type artworkStatusRequest struct {
	Status string `json:"status"`
}

func (handler *Handler) updateArtworkStatus(writer http.ResponseWriter, request *http.Request) {
	artworkID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input artworkStatusRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.artworks.UpdateStatus(request.Context(), artworkID, artwork.Status(input.Status)); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Order Management

func (handler *Handler) listOrders(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := order.Filter{
		Status: order.Status(request.URL.Query().Get("status")),
	}

	orders, total, err := handler.orders.ListAll(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, orders, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getOrder(writer http.ResponseWriter, request *http.Request) {
	orderID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	adminOrder, err := handler.orders.GetOrder(request.Context(), orderID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, adminOrder)
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

func (handler *Handler) updateOrderStatus(writer http.ResponseWriter, request *http.Request) {
	orderID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input orderStatusRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.orders.UpdateStatus(request.Context(), orderID, order.Status(input.Status)); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

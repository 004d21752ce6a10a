package order

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yadawity/yadawity/internal/platform/middleware"
	requestutil "github.com/yadawity/yadawity/internal/platform/request"
	"github.com/yadawity/yadawity/internal/platform/respond"
	"github.com/yadawity/yadawity/internal/platform/sec"
	"github.com/yadawity/yadawity/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes serves the buyer-facing order surface. Admin order management lives
// under the admin router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Post("/checkout", handler.checkout)
	router.Get("/", handler.listMine)

	// Artists track orders containing their works
	router.With(middleware.RequireRole(sec.RoleArtist)).Get("/sales", handler.listSales)

	router.Get("/{id}", handler.getMine)

	return router
}

func (handler *Handler) listSales(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	orders, total, err := handler.service.ListSales(request.Context(), artistID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, orders, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) checkout(writer http.ResponseWriter, request *http.Request) {
	buyerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	order, err := handler.service.Checkout(request.Context(), buyerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, order)
}

func (handler *Handler) listMine(writer http.ResponseWriter, request *http.Request) {
	buyerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	orders, total, err := handler.service.ListMine(request.Context(), buyerID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, orders, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getMine(writer http.ResponseWriter, request *http.Request) {
	buyerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	orderID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	order, err := handler.service.GetOwn(request.Context(), buyerID, orderID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, order)
}

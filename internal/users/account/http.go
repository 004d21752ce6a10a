package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yadawity/yadawity/internal/platform/middleware"
	requestutil "github.com/yadawity/yadawity/internal/platform/request"
	"github.com/yadawity/yadawity/internal/platform/respond"
	"github.com/yadawity/yadawity/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes serves the authenticated /users surface: the caller's own profile
// and, for artists, their achievement list.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/me", handler.getMyProfile)
	router.Patch("/me", handler.updateMyProfile)

	// Achievements are an artist profile feature.
	router.Group(func(artistRoute chi.Router) {
		artistRoute.Use(middleware.RequireRole(sec.RoleArtist))

		artistRoute.Get("/me/achievements", handler.listAchievements)
		artistRoute.Post("/me/achievements", handler.addAchievement)
		artistRoute.Delete("/me/achievements/{id}", handler.deleteAchievement)
	})

	return router
}

// ArtistRoutes serves the public /artists surface.
func (handler *Handler) ArtistRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{id}", handler.getArtistProfile)
	return router
}

func (handler *Handler) getMyProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.GetProfile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

func (handler *Handler) updateMyProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateProfileInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.UpdateProfile(request.Context(), userID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

func (handler *Handler) getArtistProfile(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := handler.service.GetArtistProfile(request.Context(), artistID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, profile)
}

func (handler *Handler) listAchievements(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	achievements, err := handler.service.ListAchievements(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, achievements)
}

type addAchievementRequest struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
}

func (handler *Handler) addAchievement(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input addAchievementRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	achievement, err := handler.service.AddAchievement(request.Context(), userID, input.Title, input.Year)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, achievement)
}

func (handler *Handler) deleteAchievement(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	achievementID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteAchievement(request.Context(), userID, achievementID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

package handler

import (
	"net/http"

	"moviebag/internal/usecase/movie"
	"moviebag/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MovieHandler struct {
	service *movie.Service
}

func NewMovieHandler(service *movie.Service) *MovieHandler {
	return &MovieHandler{service: service}
}

func (h *MovieHandler) RegisterRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies")
	{
		// Public routes
		movies.GET("", h.ListMovies)
		movies.GET("/:id", h.GetMovie)
	}
}

func (h *MovieHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies")
	{
		movies.POST("", h.CreateMovie)
	}
}

func (h *MovieHandler) ListMovies(c *gin.Context) {
	movies, err := h.service.List(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) GetMovie(c *gin.Context) {
	movieID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, "movie not found")
		return
	}

	m, err := h.service.Get(c.Request.Context(), movieID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

func (h *MovieHandler) CreateMovie(c *gin.Context) {
	var req movie.CreateMovieRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = utils.SanitizeString(req.Name)

	// Set by the auth middleware
	userID, exists := c.Get("userID")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, ok := userID.(uuid.UUID)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid user ID format")
		return
	}

	id, err := h.service.Create(c.Request.Context(), userUUID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

package ratings

import (
	"errors"
	"net/http"
	"strconv"

	"bookstore/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/books/:id/rating", h.Summary)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/books/:id/rating", h.Rate)
}

func (h *Handler) Rate(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book id")
		return
	}

	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	err = h.service.Rate(c.Request.Context(), c.GetInt64("user_id"), bookID, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRating):
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_RATING", "Rating must be between 1 and 5")
		case errors.Is(err, ErrBookNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Book not found")
		default:
			response.Error(c, http.StatusInternalServerError, "RATING_FAILED", "Failed to save rating")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rated": true})
}

func (h *Handler) Summary(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book id")
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), bookID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "RATING_FAILED", "Failed to load rating")
		return
	}

	response.Success(c, http.StatusOK, summary)
}

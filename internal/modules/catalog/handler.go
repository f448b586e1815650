package catalog

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
	books := v1.Group("/books")
	{
		books.GET("", h.List)
		books.GET("/categories", h.Genres)
		books.GET("/authors", h.Authors)
		books.GET("/random", h.Random)
		books.GET("/:id", h.GetByID)
	}
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	books := admin.Group("/books")
	{
		books.POST("", h.Create)
		books.PUT("/:id", h.Update)
		books.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	result, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list books")
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book id")
		return
	}

	book, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBookNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Book not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch book")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"book": book})
}

func (h *Handler) Genres(c *gin.Context) {
	genres, err := h.service.Genres(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch categories")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"categories": genres})
}

func (h *Handler) Authors(c *gin.Context) {
	authors, err := h.service.Authors(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch authors")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"authors": authors})
}

func (h *Handler) Random(c *gin.Context) {
	n, _ := strconv.Atoi(c.DefaultQuery("count", "5"))
	books, err := h.service.Random(c.Request.Context(), n)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch books")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"books": books})
}

/* ---------- ADMIN ---------- */

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	book, err := h.service.CreateBook(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create book")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"book": book})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book id")
		return
	}

	var req UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	book, err := h.service.UpdateBook(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrBookNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Book not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update book")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"book": book})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book id")
		return
	}

	if err := h.service.DeleteBook(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrBookNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Book not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete book")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

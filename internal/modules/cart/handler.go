package cart

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

// RegisterRoutes mounts the cart endpoints on a session-protected group.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	cartGroup := protected.Group("/cart")
	{
		cartGroup.GET("", h.Summary)
		cartGroup.POST("/items/:id", h.AddItem)
		cartGroup.PUT("/items/:id", h.UpdateQuantity)
		cartGroup.DELETE("/items/:id", h.RemoveItem)
		cartGroup.DELETE("", h.Clear)
	}
}

func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CART_FAILED", "Failed to load cart")
		return
	}
	response.Success(c, http.StatusOK, summary)
}

func (h *Handler) AddItem(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid book id")
		return
	}

	// The body is optional; without it one copy goes in the cart.
	var req AddItemRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
			return
		}
	}

	err = h.service.AddItem(c.Request.Context(), c.GetInt64("user_id"), bookID, req.Quantity)
	if err != nil {
		if errors.Is(err, ErrBookNotAvailable) {
			response.Error(c, http.StatusUnprocessableEntity, "BOOK_NOT_AVAILABLE", "This book is not available")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CART_FAILED", "Failed to add item")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"added": true})
}

func (h *Handler) UpdateQuantity(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid item id")
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	err = h.service.UpdateQuantity(c.Request.Context(), c.GetInt64("user_id"), itemID, req.Quantity)
	if err != nil {
		h.writeItemError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

func (h *Handler) RemoveItem(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid item id")
		return
	}

	if err := h.service.RemoveItem(c.Request.Context(), c.GetInt64("user_id"), itemID); err != nil {
		h.writeItemError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"removed": true})
}

func (h *Handler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context(), c.GetInt64("user_id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "CART_FAILED", "Failed to clear cart")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cleared": true})
}

func (h *Handler) writeItemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrItemNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Cart item not found")
	case errors.Is(err, ErrNotCartOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Cart item belongs to another user")
	default:
		response.Error(c, http.StatusInternalServerError, "CART_FAILED", "Failed to update cart")
	}
}

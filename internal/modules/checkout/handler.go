package checkout

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

// RegisterRoutes mounts the buyer-facing endpoints on a session-protected
// group.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.POST("/checkout", h.Checkout)
	protected.GET("/checkout/success", h.Success)
	protected.GET("/checkout/cancel", h.Cancel)
	orders := protected.Group("/orders")
	{
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
	}
}

// RegisterWebhookRoutes mounts the provider callback. It is public; the
// payload's session id is the shared secret.
func (h *Handler) RegisterWebhookRoutes(v1 *gin.RouterGroup) {
	v1.POST("/webhooks/payment", h.Webhook)
}

func (h *Handler) Checkout(c *gin.Context) {
	result, err := h.service.Checkout(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			response.Error(c, http.StatusUnprocessableEntity, "EMPTY_CART", "Cart is empty")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CHECKOUT_FAILED", "Failed to start checkout")
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// Success is the provider's return-URL landing. The test provider has no
// server-to-server callback of its own, so arriving here settles the order;
// with a real provider the webhook usually beats the redirect and this
// becomes a no-op.
func (h *Handler) Success(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing session_id")
		return
	}

	if err := h.service.HandlePaymentSucceeded(c.Request.Context(), sessionID); err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Unknown payment session")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CHECKOUT_FAILED", "Failed to finalize order")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"paid": true})
}

func (h *Handler) Cancel(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing session_id")
		return
	}

	if err := h.service.HandlePaymentCancelled(c.Request.Context(), sessionID); err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Unknown payment session")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CHECKOUT_FAILED", "Failed to cancel order")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cancelled": true})
}

func (h *Handler) Webhook(c *gin.Context) {
	var event WebhookEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid webhook payload")
		return
	}

	var err error
	switch event.Type {
	case EventPaymentSucceeded:
		err = h.service.HandlePaymentSucceeded(c.Request.Context(), event.SessionID)
	case EventPaymentCancelled:
		err = h.service.HandlePaymentCancelled(c.Request.Context(), event.SessionID)
	default:
		// Unknown event types are acknowledged so the provider stops retrying.
		response.Success(c, http.StatusOK, gin.H{"ignored": true})
		return
	}

	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Unknown payment session")
			return
		}
		response.Error(c, http.StatusInternalServerError, "WEBHOOK_FAILED", "Failed to process event")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"processed": true})
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.service.ListOrders(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "ORDERS_FAILED", "Failed to list orders")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) GetOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid order id")
		return
	}

	order, err := h.service.GetOrder(c.Request.Context(), c.GetInt64("user_id"), orderID)
	if err != nil {
		switch {
		case errors.Is(err, ErrOrderNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		case errors.Is(err, ErrNotOrderOwner):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Order belongs to another user")
		default:
			response.Error(c, http.StatusInternalServerError, "ORDERS_FAILED", "Failed to fetch order")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"order": order})
}

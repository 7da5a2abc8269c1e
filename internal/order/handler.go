package order

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

type AdminHandler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func NewAdminHandler(service *Service) *AdminHandler {
	return &AdminHandler{service: service}
}

type checkoutRequest struct {
	Phone          string `json:"phone"`
	DeliveryOption string `json:"deliveryOption"`
	PaymentMethod  string `json:"paymentMethod"`
}

func (h *Handler) checkoutInput(c *gin.Context) (CheckoutInput, bool) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return CheckoutInput{}, false
	}

	userID := c.GetString("userID")
	sessionKey := userID
	if sessionKey == "" {
		sessionKey = c.GetHeader("X-Session-Key")
	}
	if sessionKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing X-Session-Key header"})
		return CheckoutInput{}, false
	}

	return CheckoutInput{
		SessionKey:     sessionKey,
		UserID:         userID,
		Phone:          req.Phone,
		DeliveryOption: req.DeliveryOption,
		PaymentMethod:  req.PaymentMethod,
	}, true
}

// --------------------------------------------------
// Checkout (guest or authenticated)
// --------------------------------------------------
func (h *Handler) Checkout(c *gin.Context) {
	in, ok := h.checkoutInput(c)
	if !ok {
		return
	}

	o, err := h.service.Checkout(c.Request.Context(), in)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "order submission failed"})
		return
	}

	c.JSON(http.StatusCreated, o)
}

// --------------------------------------------------
// Checkout via messaging deep link
// --------------------------------------------------
func (h *Handler) WhatsAppCheckout(c *gin.Context) {
	in, ok := h.checkoutInput(c)
	if !ok {
		return
	}

	link, err := h.service.WhatsAppCheckout(in, os.Getenv("BUSINESS_PHONE"))
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "order submission failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"link": link})
}

// --------------------------------------------------
// Authenticated: own order history
// --------------------------------------------------
func (h *Handler) ListMine(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	orders, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// --------------------------------------------------
// Staff dashboard
// --------------------------------------------------
func (h *AdminHandler) List(c *gin.Context) {
	orders, err := h.service.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	o, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		case errors.Is(err, ErrBadTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order"})
		}
		return
	}

	c.JSON(http.StatusOK, o)
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrInvalidPhone) ||
		errors.Is(err, ErrNoItems) ||
		errors.Is(err, ErrInvalidDelivery) ||
		errors.Is(err, ErrInvalidPayment) ||
		errors.Is(err, ErrNoIdentity)
}

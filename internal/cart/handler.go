package cart

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProfileSource resolves the loyalty profile for coupon eligibility.
// Implemented by the auth service.
type ProfileSource interface {
	Profile(ctx context.Context, userID string) (Profile, error)
}

type Handler struct {
	store    *Store
	profiles ProfileSource
}

func NewHandler(store *Store, profiles ProfileSource) *Handler {
	return &Handler{store: store, profiles: profiles}
}

// sessionKey binds the cart to the authenticated user when there is one,
// otherwise to the client-generated session header.
func sessionKey(c *gin.Context) string {
	if userID, ok := c.Get("userID"); ok {
		if s, ok := userID.(string); ok && s != "" {
			return s
		}
	}
	return c.GetHeader("X-Session-Key")
}

type addItemRequest struct {
	Product    string          `json:"product"`
	Title      string          `json:"title"`
	Price      decimal.Decimal `json:"price"`
	Image      string          `json:"img"`
	Quantity   int             `json:"quantity"`
	IsWeighted bool            `json:"is_weighted"`
	Vegetables []string        `json:"vegetables"`
	Additions  []Addition      `json:"additions"`
	Comment    string          `json:"comment"`
	Category   string          `json:"category"`
}

// --------------------------------------------------
// Add line to cart
// --------------------------------------------------
func (h *Handler) AddItem(c *gin.Context) {
	key := sessionKey(c)
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing X-Session-Key header"})
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be at least 1"})
		return
	}
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	line := Line{
		ProductRef: req.Product,
		Title:      req.Title,
		UnitPrice:  req.Price,
		Image:      req.Image,
		Quantity:   req.Quantity,
		Weighted:   req.IsWeighted,
		Vegetables: req.Vegetables,
		Additions:  req.Additions,
		Comment:    req.Comment,
		Category:   req.Category,
	}
	line.LineID = MergeKey(line)

	cart := h.store.Get(key)
	cart.AddItem(line)
	h.refreshEligibility(c, cart)

	c.JSON(http.StatusCreated, gin.H{
		"line_id":    line.LineID,
		"item_count": cart.ItemCount(),
		"total":      cart.Total().StringFixed(2),
	})
}

// --------------------------------------------------
// Remove line
// --------------------------------------------------
func (h *Handler) RemoveItem(c *gin.Context) {
	key := sessionKey(c)
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing X-Session-Key header"})
		return
	}

	cart := h.store.Get(key)
	cart.RemoveItem(c.Param("lineId"))
	h.refreshEligibility(c, cart)

	c.JSON(http.StatusOK, gin.H{
		"item_count": cart.ItemCount(),
		"total":      cart.Total().StringFixed(2),
	})
}

// --------------------------------------------------
// Read cart (lines + totals + coupon state)
// --------------------------------------------------
func (h *Handler) GetCart(c *gin.Context) {
	key := sessionKey(c)
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing X-Session-Key header"})
		return
	}

	cart := h.store.Get(key)
	h.refreshEligibility(c, cart)

	c.JSON(http.StatusOK, gin.H{
		"lines":      cart.Lines(),
		"item_count": cart.ItemCount(),
		"total":      cart.Total().StringFixed(2),
		"coupon":     cart.Coupon(),
	})
}

// --------------------------------------------------
// Apply loyalty coupon (authenticated only)
// --------------------------------------------------
func (h *Handler) ApplyCoupon(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "sign in to use coupons"})
		return
	}

	cart := h.store.Get(userID)
	h.refreshEligibility(c, cart)

	reward := cart.ApplyCoupon()
	if reward == RewardNone && cart.Coupon().State != CouponApplied {
		c.JSON(http.StatusConflict, gin.H{"error": "no eligible coupon"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"coupon": cart.Coupon(),
		"total":  cart.Total().StringFixed(2),
	})
}

// refreshEligibility re-runs the coupon rules for authenticated shoppers.
// Guests never see a reward, so their carts stay at NONE.
func (h *Handler) refreshEligibility(c *gin.Context, cart *Cart) {
	userID := c.GetString("userID")
	if userID == "" || h.profiles == nil {
		return
	}

	profile, err := h.profiles.Profile(c.Request.Context(), userID)
	if err != nil {
		return
	}
	cart.RefreshEligibility(profile)
}

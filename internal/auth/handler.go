package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/razeAb/resturant-system-sub001/internal/cart"
	"github.com/razeAb/resturant-system-sub001/internal/session"
)

type Handler struct {
	service  *Service
	sessions *session.Registry
	carts    *cart.Store
}

func NewHandler(service *Service, sessions *session.Registry, carts *cart.Store) *Handler {
	return &Handler{service: service, sessions: sessions, carts: carts}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "missing required fields"})
		return
	}

	user, err := h.service.Register(req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

type loginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	SessionKey string `json:"session_key"` // guest cart key, discarded on sign-in
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	user, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid email or password"})
		return
	}

	token, err := GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to issue token"})
		return
	}

	h.sessions.Start(token, session.Session{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})

	// A guest cart never carries over into the signed-in session.
	if req.SessionKey != "" && h.carts != nil {
		h.carts.Drop(req.SessionKey)
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

func (h *Handler) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	parts := strings.Split(header, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		h.sessions.End(parts[1])
	}

	userID := c.GetString("userID")
	if userID != "" && h.carts != nil {
		h.carts.Drop(userID)
	}

	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

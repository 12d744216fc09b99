package fakeapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barber-client/internal/models"
)

type authenticateRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) authenticate(c *gin.Context) {
	var req authenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	s.mu.Lock()
	acct := s.accounts[email]
	s.mu.Unlock()

	if acct == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid_credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(req.Password)); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := s.issueToken(acct.barberID, acct.role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":        token,
		"refreshToken": s.IssueRefreshToken(acct.barberID),
		"barberId":     acct.barberID,
		"role":         acct.role,
	})
}

type registerRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Role      string `json:"role" binding:"required,oneof=ADMIN BARBER"`
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[email]; exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_registered"})
		return
	}

	s.nextID++
	id := s.nextID
	s.barbers[id] = &models.Barber{
		ID:   id,
		Name: req.FirstName + " " + req.LastName,
	}
	s.accounts[email] = &account{
		barberID:     id,
		passwordHash: hashed,
		role:         req.Role,
	}

	c.JSON(http.StatusCreated, gin.H{"barberId": id})
}

type refreshRequest struct {
	Token string `json:"token" binding:"required"`
}

func (s *Server) refreshToken(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	s.mu.Lock()
	barberID, ok := s.refresh[req.Token]
	s.mu.Unlock()

	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid_refresh_token"})
		return
	}

	token, err := s.issueToken(barberID, models.RoleBarber)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"newToken": token})
}

type passwordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

func (s *Server) updatePassword(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req passwordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acct := range s.accounts {
		if acct.barberID != id {
			continue
		}
		if err := bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(req.CurrentPassword)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "wrong_current_password"})
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
			return
		}
		acct.passwordHash = hashed
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
}

// Package fakeapi is an in-memory stand-in for the remote scheduling
// service, implementing the wire contract the client consumes. The test
// suite mounts it behind httptest so every client path runs against real
// HTTP, including token issuance and the 403 refresh dance.
package fakeapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barber-client/internal/models"
)

type account struct {
	barberID     uint
	passwordHash []byte
	role         string
}

type Server struct {
	secret []byte
	engine *gin.Engine

	mu        sync.Mutex
	barbers   map[uint]*models.Barber
	accounts  map[string]*account
	services  map[uint][]models.Service
	schedules map[uint][]models.WorkingSchedule
	refresh   map[string]uint
	revoked   map[string]bool
	nextID    uint
	counts    map[string]int
}

func New(secret string) *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		secret:    []byte(secret),
		barbers:   make(map[uint]*models.Barber),
		accounts:  make(map[string]*account),
		services:  make(map[uint][]models.Service),
		schedules: make(map[uint][]models.WorkingSchedule),
		refresh:   make(map[string]uint),
		revoked:   make(map[string]bool),
		counts:    make(map[string]int),
	}

	r := gin.New()
	r.Use(s.countRequests())

	api := r.Group("/api")
	{
		api.POST("/auth/authenticate", s.authenticate)
		api.POST("/auth/register", s.register)
		api.POST("/refresh", s.refreshToken)

		api.GET("/barbers", s.listBarbers)
		api.GET("/barbers/:id/workingschedules", s.listSchedules)
		api.POST("/appointments", s.createAppointment)

		secured := api.Group("/")
		secured.Use(s.authRequired())
		{
			secured.GET("/barbers/:id", s.getBarber)
			secured.PUT("/barbers/:id", s.updateBarber)

			secured.GET("/barbers/:id/barberservs", s.listServices)
			secured.POST("/barbers/:id/barberservs", s.createService)
			secured.PUT("/barbers/:id/barberservs/:serviceId", s.updateService)
			secured.DELETE("/barbers/:id/barberservs/:serviceId", s.deleteService)

			secured.POST("/barbers/:id/workingschedules", s.createSchedule)
			secured.DELETE("/barbers/:id/workingschedules/:scheduleId", s.deleteSchedule)

			secured.PUT("/user/:id/password", s.updatePassword)
		}
	}

	s.engine = r
	return s
}

// Handler returns the router for httptest.NewServer.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) countRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		key := c.Request.Method + " " + c.FullPath()
		s.mu.Lock()
		s.counts[key]++
		s.mu.Unlock()
	}
}

// Requests reports how many calls hit the given "METHOD /api/route/:param"
// pattern.
func (s *Server) Requests(pattern string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[pattern]
}

func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		s.mu.Lock()
		revoked := s.revoked[tokenString]
		s.mu.Unlock()
		if revoked {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid_token"})
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return s.secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid_token_claims"})
			return
		}

		sub, ok := claims["sub"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid_token_payload"})
			return
		}

		c.Set("barberID", uint(sub))
		c.Next()
	}
}

func (s *Server) issueToken(barberID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  barberID,
		"role": role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// IssueToken mints a valid bearer token for tests that skip the login flow.
func (s *Server) IssueToken(barberID uint) string {
	token, _ := s.issueToken(barberID, models.RoleBarber)
	return token
}

// IssueRefreshToken registers and returns a refresh token for the barber.
func (s *Server) IssueRefreshToken(barberID uint) string {
	token := fmt.Sprintf("refresh-%d-%d", barberID, time.Now().UnixNano())
	s.mu.Lock()
	s.refresh[token] = barberID
	s.mu.Unlock()
	return token
}

// RevokeToken makes the given bearer token answer 403 from then on.
func (s *Server) RevokeToken(token string) {
	s.mu.Lock()
	s.revoked[token] = true
	s.mu.Unlock()
}

// SeedBarber creates a barber directly in the fixture state.
func (s *Server) SeedBarber(name string) uint {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.barbers[id] = &models.Barber{
		ID:       id,
		Name:     name,
		Rating:   5,
		Location: "Downtown",
	}
	return id
}

// SeedService attaches a service to a barber and returns its id.
func (s *Server) SeedService(barberID uint, t models.ServiceType, durationMinutes int) uint {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	svc := models.Service{ID: s.nextID, Service: t, DefaultDurationInMinutes: durationMinutes}
	s.services[barberID] = append(s.services[barberID], svc)
	return svc.ID
}

// SeedSchedule stores a working-schedule entry and returns its id.
func (s *Server) SeedSchedule(entry models.WorkingSchedule) uint {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	entry.ID = s.nextID
	s.schedules[entry.BarberID] = append(s.schedules[entry.BarberID], entry)
	return entry.ID
}

func parseID(c *gin.Context, param string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return 0, false
	}
	return uint(n), true
}

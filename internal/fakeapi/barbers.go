package fakeapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-client/internal/models"
)

func (s *Server) listBarbers(c *gin.Context) {
	s.mu.Lock()
	out := make([]models.Barber, 0, len(s.barbers))
	for _, b := range s.barbers {
		cp := *b
		cp.Description = ""
		out = append(out, cp)
	}
	s.mu.Unlock()

	c.JSON(http.StatusOK, out)
}

func (s *Server) getBarber(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	b := s.barbers[id]
	s.mu.Unlock()

	if b == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "barber_not_found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (s *Server) updateBarber(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var upd models.BarberUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.barbers[id]
	if b == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "barber_not_found"})
		return
	}

	if upd.Name != "" {
		b.Name = upd.Name
	}
	if upd.Location != "" {
		b.Location = upd.Location
	}
	if upd.ContactInformation != "" {
		b.ContactInformation = upd.ContactInformation
	}

	c.JSON(http.StatusOK, b)
}

type serviceRequest struct {
	Service                  models.ServiceType `json:"service" binding:"required"`
	DefaultDurationInMinutes int                `json:"defaultDurationInMinutes" binding:"required"`
}

func (s *Server) listServices(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	out := make([]models.Service, len(s.services[id]))
	copy(out, s.services[id])
	s.mu.Unlock()

	c.JSON(http.StatusOK, out)
}

func (s *Server) createService(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, svc := range s.services[id] {
		if svc.Service == req.Service {
			c.JSON(http.StatusConflict, gin.H{"error": "service_already_exists"})
			return
		}
	}

	s.nextID++
	svc := models.Service{
		ID:                       s.nextID,
		Service:                  req.Service,
		DefaultDurationInMinutes: req.DefaultDurationInMinutes,
	}
	s.services[id] = append(s.services[id], svc)

	c.JSON(http.StatusCreated, svc)
}

func (s *Server) updateService(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	serviceID, ok := parseID(c, "serviceId")
	if !ok {
		return
	}

	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, svc := range s.services[id] {
		if svc.ID != serviceID {
			continue
		}
		s.services[id][i].Service = req.Service
		s.services[id][i].DefaultDurationInMinutes = req.DefaultDurationInMinutes
		c.JSON(http.StatusOK, s.services[id][i])
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
}

func (s *Server) deleteService(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	serviceID, ok := parseID(c, "serviceId")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, svc := range s.services[id] {
		if svc.ID != serviceID {
			continue
		}
		s.services[id] = append(s.services[id][:i], s.services[id][i+1:]...)
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
}

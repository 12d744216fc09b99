package fakeapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-client/internal/models"
	"github.com/BruksfildServices01/barber-client/internal/slots"
)

func (s *Server) listSchedules(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	out := make([]models.WorkingSchedule, len(s.schedules[id]))
	copy(out, s.schedules[id])
	s.mu.Unlock()

	c.JSON(http.StatusOK, out)
}

type scheduleRequest struct {
	Date      string           `json:"date" binding:"required"`
	TimeSlots []slots.TimeSlot `json:"timeSlots" binding:"required,min=1"`
	BarberID  uint             `json:"barberId"`
}

func (s *Server) createSchedule(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	entry := models.WorkingSchedule{
		ID:        s.nextID,
		BarberID:  id,
		Date:      req.Date,
		TimeSlots: req.TimeSlots,
	}
	s.schedules[id] = append(s.schedules[id], entry)

	c.JSON(http.StatusCreated, entry)
}

func (s *Server) deleteSchedule(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	scheduleID, ok := parseID(c, "scheduleId")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, entry := range s.schedules[id] {
		if entry.ID != scheduleID {
			continue
		}
		s.schedules[id] = append(s.schedules[id][:i], s.schedules[id][i+1:]...)
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "schedule_not_found"})
}

type appointmentRequest struct {
	BarberID    uint               `json:"barberId" binding:"required"`
	Service     models.ServiceType `json:"service" binding:"required"`
	Date        string             `json:"date" binding:"required"`
	Time        slots.TimeSlot     `json:"time" binding:"required"`
	ClientName  string             `json:"clientName" binding:"required"`
	ClientPhone string             `json:"clientPhone" binding:"required"`
}

// createAppointment books the slot and drops the consumed window from the
// barber's schedule entries, so the next availability fetch no longer offers
// it.
func (s *Server) createAppointment(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	duration := 30
	for _, svc := range s.services[req.BarberID] {
		if svc.Service == req.Service {
			duration = svc.DefaultDurationInMinutes
			break
		}
	}
	consumed := (duration + 29) / 30

	booked := false
	for i, entry := range s.schedules[req.BarberID] {
		if entry.Date != req.Date {
			continue
		}
		idx := slots.Index(entry.TimeSlots, req.Time)
		if idx == -1 {
			continue
		}

		end := idx + consumed
		if end > len(entry.TimeSlots) {
			end = len(entry.TimeSlots)
		}
		remaining := make([]slots.TimeSlot, 0, len(entry.TimeSlots))
		remaining = append(remaining, entry.TimeSlots[:idx]...)
		remaining = append(remaining, entry.TimeSlots[end:]...)
		s.schedules[req.BarberID][i].TimeSlots = remaining
		booked = true
		break
	}

	if !booked {
		c.JSON(http.StatusConflict, gin.H{"error": "slot_not_available"})
		return
	}

	s.nextID++
	c.JSON(http.StatusCreated, gin.H{"id": s.nextID, "status": "scheduled"})
}

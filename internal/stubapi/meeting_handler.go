package stubapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skymentor/skymentor-client/internal/models"
)

// MeetingHandler serves the meeting resource endpoints
type MeetingHandler struct {
	store *Store
}

// NewMeetingHandler creates a meeting handler over the store
func NewMeetingHandler(store *Store) *MeetingHandler {
	return &MeetingHandler{store: store}
}

// Create handles POST /api/v1/meeting/createMeeting
func (h *MeetingHandler) Create(c *gin.Context) {
	var req models.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid meeting payload", err)
		return
	}

	// Referenced participants must exist before a meeting can be booked
	if _, ok := h.store.GetMentor(req.MentorID); !ok {
		respondError(c, http.StatusNotFound, "Mentor not found", nil)
		return
	}
	if _, ok := h.store.GetMentee(req.MenteeID); !ok {
		respondError(c, http.StatusNotFound, "Mentee not found", nil)
		return
	}

	meeting := h.store.CreateMeeting(&req)
	c.JSON(http.StatusCreated, meeting)
}

// GetByID handles GET /api/v1/meeting/getMeetingById/:id
func (h *MeetingHandler) GetByID(c *gin.Context) {
	meeting, ok := h.store.GetMeeting(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, "Meeting not found", nil)
		return
	}
	c.JSON(http.StatusOK, meeting)
}

// Filtered handles GET /api/v1/meeting/getFilteredMeetings
func (h *MeetingHandler) Filtered(c *gin.Context) {
	meetings := h.store.FilteredMeetings(c.Query("mentorId"), c.Query("menteeId"))
	c.JSON(http.StatusOK, models.FilteredMeetings{
		Success: true,
		Data:    meetings,
	})
}

package stubapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skymentor/skymentor-client/internal/models"
)

// MentorHandler serves the mentor resource endpoints
type MentorHandler struct {
	store *Store
}

// NewMentorHandler creates a mentor handler over the store
func NewMentorHandler(store *Store) *MentorHandler {
	return &MentorHandler{store: store}
}

// Create handles POST /api/v1/mentor/createMentor
func (h *MentorHandler) Create(c *gin.Context) {
	var req models.CreateMentorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid mentor payload", err)
		return
	}

	mentor := h.store.CreateMentor(&req)
	c.JSON(http.StatusCreated, mentor)
}

// Login handles POST /api/v1/mentor/loginMentor. Phone number is the only
// credential; a miss is a 404, never a credential error.
func (h *MentorHandler) Login(c *gin.Context) {
	var req models.MentorLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid login payload", err)
		return
	}

	mentor, ok := h.store.MentorByPhone(req.PhoneNumber)
	if !ok {
		respondError(c, http.StatusNotFound, "Mentor not found", nil)
		return
	}
	c.JSON(http.StatusOK, models.MentorLoginResponse{Mentor: mentor})
}

// List handles GET /api/v1/mentor/getAllMentors
func (h *MentorHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)
	mentors, total := h.store.ListMentors(limit, offset)
	c.JSON(http.StatusOK, models.MentorList{
		Mentors: mentors,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}

// GetByID handles GET /api/v1/mentor/getMentorById/:id
func (h *MentorHandler) GetByID(c *gin.Context) {
	mentor, ok := h.store.GetMentor(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, "Mentor not found", nil)
		return
	}
	c.JSON(http.StatusOK, mentor)
}

// Update handles PUT /api/v1/mentor/updateMentorById/:id with a partial body
func (h *MentorHandler) Update(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid update payload", err)
		return
	}

	mentor, found, err := h.store.UpdateMentor(c.Param("id"), patch)
	if !found {
		respondError(c, http.StatusNotFound, "Mentor not found", nil)
		return
	}
	if err != nil {
		respondError(c, http.StatusBadRequest, "Update fields do not match the mentor schema", err)
		return
	}
	c.JSON(http.StatusOK, mentor)
}

// Delete handles DELETE /api/v1/mentor/deleteMentorById/:id
func (h *MentorHandler) Delete(c *gin.Context) {
	if !h.store.DeleteMentor(c.Param("id")) {
		respondError(c, http.StatusNotFound, "Mentor not found", nil)
		return
	}
	c.JSON(http.StatusOK, models.DeleteResponse{Success: true})
}

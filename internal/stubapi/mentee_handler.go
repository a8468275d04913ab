package stubapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skymentor/skymentor-client/internal/models"
)

// MenteeHandler serves the mentee resource endpoints
type MenteeHandler struct {
	store *Store
}

// NewMenteeHandler creates a mentee handler over the store
func NewMenteeHandler(store *Store) *MenteeHandler {
	return &MenteeHandler{store: store}
}

// Create handles POST /api/v1/mentee/createMentee
func (h *MenteeHandler) Create(c *gin.Context) {
	var req models.CreateMenteeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid mentee payload", err)
		return
	}

	mentee := h.store.CreateMentee(&req)
	c.JSON(http.StatusCreated, mentee)
}

// Login handles POST /api/v1/mentee/loginMentee
func (h *MenteeHandler) Login(c *gin.Context) {
	var req models.MenteeLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid login payload", err)
		return
	}

	mentee, ok := h.store.MenteeByPhone(req.PhoneNumber)
	if !ok {
		respondError(c, http.StatusNotFound, "Mentee not found", nil)
		return
	}
	c.JSON(http.StatusOK, models.MenteeLoginResponse{
		Message: "Login successful",
		Mentee:  mentee,
	})
}

// List handles GET /api/v1/mentee/getAllMentees
func (h *MenteeHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)
	mentees, total := h.store.ListMentees(limit, offset)
	c.JSON(http.StatusOK, models.MenteeList{
		Mentees: mentees,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}

// GetByID handles GET /api/v1/mentee/getMenteeById/:id
func (h *MenteeHandler) GetByID(c *gin.Context) {
	mentee, ok := h.store.GetMentee(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, "Mentee not found", nil)
		return
	}
	c.JSON(http.StatusOK, mentee)
}

// Update handles PUT /api/v1/mentee/updateMenteeById/:id with a partial body
func (h *MenteeHandler) Update(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid update payload", err)
		return
	}

	mentee, found, err := h.store.UpdateMentee(c.Param("id"), patch)
	if !found {
		respondError(c, http.StatusNotFound, "Mentee not found", nil)
		return
	}
	if err != nil {
		respondError(c, http.StatusBadRequest, "Update fields do not match the mentee schema", err)
		return
	}
	c.JSON(http.StatusOK, mentee)
}

// Delete handles DELETE /api/v1/mentee/deleteMenteeById/:id
func (h *MenteeHandler) Delete(c *gin.Context) {
	if !h.store.DeleteMentee(c.Param("id")) {
		respondError(c, http.StatusNotFound, "Mentee not found", nil)
		return
	}
	c.JSON(http.StatusOK, models.DeleteResponse{Success: true})
}

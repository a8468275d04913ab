package stubapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skymentor/skymentor-client/internal/models"
)

// AdminHandler serves the admin resource endpoints
type AdminHandler struct {
	store *Store
}

// NewAdminHandler creates an admin handler over the store
func NewAdminHandler(store *Store) *AdminHandler {
	return &AdminHandler{store: store}
}

// Create handles POST /api/v1/admin/createAdmin
func (h *AdminHandler) Create(c *gin.Context) {
	var req models.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid admin payload", err)
		return
	}

	admin := h.store.CreateAdmin(&req)
	c.JSON(http.StatusCreated, admin)
}

// Login handles POST /api/v1/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid login payload", err)
		return
	}

	admin, ok := h.store.AdminByPhone(req.PhoneNumber)
	if !ok {
		respondError(c, http.StatusNotFound, "Admin not found", nil)
		return
	}
	c.JSON(http.StatusOK, admin)
}

// List handles GET /api/v1/admin/getAllAdmins. Unlike the other resources
// the admin list is a bare array, not a paginated envelope.
func (h *AdminHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListAdmins())
}

// GetByID handles GET /api/v1/admin/getAdminById/:id
func (h *AdminHandler) GetByID(c *gin.Context) {
	admin, ok := h.store.GetAdmin(c.Param("id"))
	if !ok {
		respondError(c, http.StatusNotFound, "Admin not found", nil)
		return
	}
	c.JSON(http.StatusOK, admin)
}

// Update handles PUT /api/v1/admin/updateAdminById/:id with a partial body
func (h *AdminHandler) Update(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid update payload", err)
		return
	}

	admin, found, err := h.store.UpdateAdmin(c.Param("id"), patch)
	if !found {
		respondError(c, http.StatusNotFound, "Admin not found", nil)
		return
	}
	if err != nil {
		respondError(c, http.StatusBadRequest, "Update fields do not match the admin schema", err)
		return
	}
	c.JSON(http.StatusOK, admin)
}

// Delete handles DELETE /api/v1/admin/deleteAdminById/:id
func (h *AdminHandler) Delete(c *gin.Context) {
	if !h.store.DeleteAdmin(c.Param("id")) {
		respondError(c, http.StatusNotFound, "Admin not found", nil)
		return
	}
	c.JSON(http.StatusOK, models.DeleteResponse{Success: true})
}

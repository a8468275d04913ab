package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/skymentor/skymentor-client/internal/models"
	"github.com/skymentor/skymentor-client/pkg/errors"
)

// AdminClient wraps the admin resource endpoints. The admin list is a bare
// array with no pagination envelope.
type AdminClient struct {
	c *Client
}

// NewAdminClient creates an admin API client
func NewAdminClient(c *Client) *AdminClient {
	return &AdminClient{c: c}
}

// Login looks up an admin by phone number
func (ac *AdminClient) Login(ctx context.Context, phoneNumber string) (*models.Admin, error) {
	var admin models.Admin
	req := models.AdminLoginRequest{PhoneNumber: phoneNumber}
	if err := ac.c.do(ctx, "loginAdmin", http.MethodPost, "/api/v1/admin/login", req, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// Create adds a new administrator
func (ac *AdminClient) Create(ctx context.Context, req *models.CreateAdminRequest) (*models.Admin, error) {
	var admin models.Admin
	if err := ac.c.do(ctx, "createAdmin", http.MethodPost, "/api/v1/admin/createAdmin", req, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// List fetches all administrators. The bare-array response skips the
// wrapper's struct check, so each element is schema-checked here.
func (ac *AdminClient) List(ctx context.Context) ([]models.Admin, error) {
	var admins []models.Admin
	endpoint := "/api/v1/admin/getAllAdmins"
	if err := ac.c.do(ctx, "getAllAdmins", http.MethodGet, endpoint, nil, &admins); err != nil {
		return nil, err
	}
	for i := range admins {
		if err := ac.c.validateResponse(&admins[i]); err != nil {
			return nil, errors.NewDecodeError(endpoint, err)
		}
	}
	if admins == nil {
		admins = []models.Admin{}
	}
	return admins, nil
}

// GetByID fetches a single administrator
func (ac *AdminClient) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	var admin models.Admin
	endpoint := "/api/v1/admin/getAdminById/" + url.PathEscape(id)
	if err := ac.c.do(ctx, "getAdminById", http.MethodGet, endpoint, nil, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// Update sends a partial admin update
func (ac *AdminClient) Update(ctx context.Context, id string, patch *models.AdminPatch) (*models.Admin, error) {
	var admin models.Admin
	endpoint := "/api/v1/admin/updateAdminById/" + url.PathEscape(id)
	if err := ac.c.do(ctx, "updateAdminById", http.MethodPut, endpoint, patch, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// Delete removes an administrator
func (ac *AdminClient) Delete(ctx context.Context, id string) error {
	var resp models.DeleteResponse
	endpoint := "/api/v1/admin/deleteAdminById/" + url.PathEscape(id)
	if err := ac.c.do(ctx, "deleteAdminById", http.MethodDelete, endpoint, nil, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return errors.InternalError("admin delete not acknowledged")
	}
	return nil
}

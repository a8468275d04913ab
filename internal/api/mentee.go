package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/skymentor/skymentor-client/internal/models"
	"github.com/skymentor/skymentor-client/pkg/errors"
)

// MenteeClient wraps the mentee resource endpoints
type MenteeClient struct {
	c *Client
}

// NewMenteeClient creates a mentee API client
func NewMenteeClient(c *Client) *MenteeClient {
	return &MenteeClient{c: c}
}

// Login looks up a mentee by phone number and returns the matched record
func (mc *MenteeClient) Login(ctx context.Context, phoneNumber string) (*models.Mentee, error) {
	var resp models.MenteeLoginResponse
	req := models.MenteeLoginRequest{PhoneNumber: phoneNumber}
	if err := mc.c.do(ctx, "loginMentee", http.MethodPost, "/api/v1/mentee/loginMentee", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Mentee, nil
}

// Create registers a new mentee
func (mc *MenteeClient) Create(ctx context.Context, req *models.CreateMenteeRequest) (*models.Mentee, error) {
	var mentee models.Mentee
	if err := mc.c.do(ctx, "createMentee", http.MethodPost, "/api/v1/mentee/createMentee", req, &mentee); err != nil {
		return nil, err
	}
	return &mentee, nil
}

// List fetches one page of mentees
func (mc *MenteeClient) List(ctx context.Context, limit, offset int) (*models.MenteeList, error) {
	var list models.MenteeList
	endpoint := fmt.Sprintf("/api/v1/mentee/getAllMentees?limit=%d&offset=%d", limit, offset)
	if err := mc.c.do(ctx, "getAllMentees", http.MethodGet, endpoint, nil, &list); err != nil {
		return nil, err
	}
	if list.Mentees == nil {
		list.Mentees = []models.Mentee{}
	}
	return &list, nil
}

// GetByID fetches a single mentee
func (mc *MenteeClient) GetByID(ctx context.Context, id string) (*models.Mentee, error) {
	var mentee models.Mentee
	endpoint := "/api/v1/mentee/getMenteeById/" + url.PathEscape(id)
	if err := mc.c.do(ctx, "getMenteeById", http.MethodGet, endpoint, nil, &mentee); err != nil {
		return nil, err
	}
	return &mentee, nil
}

// Update sends a partial mentee update
func (mc *MenteeClient) Update(ctx context.Context, id string, patch *models.MenteePatch) (*models.Mentee, error) {
	var mentee models.Mentee
	endpoint := "/api/v1/mentee/updateMenteeById/" + url.PathEscape(id)
	if err := mc.c.do(ctx, "updateMenteeById", http.MethodPut, endpoint, patch, &mentee); err != nil {
		return nil, err
	}
	return &mentee, nil
}

// Delete removes a mentee
func (mc *MenteeClient) Delete(ctx context.Context, id string) error {
	var resp models.DeleteResponse
	endpoint := "/api/v1/mentee/deleteMenteeById/" + url.PathEscape(id)
	if err := mc.c.do(ctx, "deleteMenteeById", http.MethodDelete, endpoint, nil, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return errors.InternalError("mentee delete not acknowledged")
	}
	return nil
}

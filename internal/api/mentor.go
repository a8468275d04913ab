package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/skymentor/skymentor-client/internal/models"
	"github.com/skymentor/skymentor-client/pkg/errors"
)

// MentorClient wraps the mentor resource endpoints
type MentorClient struct {
	c *Client
}

// NewMentorClient creates a mentor API client
func NewMentorClient(c *Client) *MentorClient {
	return &MentorClient{c: c}
}

// Login looks up a mentor by phone number. No credential is checked; the
// backend returns the matching record or 404.
func (mc *MentorClient) Login(ctx context.Context, phoneNumber string) (*models.Mentor, error) {
	var resp models.MentorLoginResponse
	req := models.MentorLoginRequest{PhoneNumber: phoneNumber}
	if err := mc.c.do(ctx, "loginMentor", http.MethodPost, "/api/v1/mentor/loginMentor", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Mentor, nil
}

// Create registers a new mentor
func (mc *MentorClient) Create(ctx context.Context, req *models.CreateMentorRequest) (*models.Mentor, error) {
	var mentor models.Mentor
	if err := mc.c.do(ctx, "createMentor", http.MethodPost, "/api/v1/mentor/createMentor", req, &mentor); err != nil {
		return nil, err
	}
	return &mentor, nil
}

// List fetches one page of mentors. Pagination is offset-based.
func (mc *MentorClient) List(ctx context.Context, limit, offset int) (*models.MentorList, error) {
	var list models.MentorList
	endpoint := fmt.Sprintf("/api/v1/mentor/getAllMentors?limit=%d&offset=%d", limit, offset)
	if err := mc.c.do(ctx, "getAllMentors", http.MethodGet, endpoint, nil, &list); err != nil {
		return nil, err
	}
	if list.Mentors == nil {
		list.Mentors = []models.Mentor{}
	}
	return &list, nil
}

// GetByID fetches a single mentor
func (mc *MentorClient) GetByID(ctx context.Context, id string) (*models.Mentor, error) {
	var mentor models.Mentor
	endpoint := "/api/v1/mentor/getMentorById/" + url.PathEscape(id)
	if err := mc.c.do(ctx, "getMentorById", http.MethodGet, endpoint, nil, &mentor); err != nil {
		return nil, err
	}
	return &mentor, nil
}

// Update sends a partial mentor update. Only fields set on the patch are
// serialized; the backend performs the merge.
func (mc *MentorClient) Update(ctx context.Context, id string, patch *models.MentorPatch) (*models.Mentor, error) {
	var mentor models.Mentor
	endpoint := "/api/v1/mentor/updateMentorById/" + url.PathEscape(id)
	if err := mc.c.do(ctx, "updateMentorById", http.MethodPut, endpoint, patch, &mentor); err != nil {
		return nil, err
	}
	return &mentor, nil
}

// Delete removes a mentor. The delete is terminal; callers re-fetch the
// current list page afterwards instead of splicing locally.
func (mc *MentorClient) Delete(ctx context.Context, id string) error {
	var resp models.DeleteResponse
	endpoint := "/api/v1/mentor/deleteMentorById/" + url.PathEscape(id)
	if err := mc.c.do(ctx, "deleteMentorById", http.MethodDelete, endpoint, nil, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return errors.InternalError("mentor delete not acknowledged")
	}
	return nil
}

package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/skymentor/skymentor-client/internal/models"
)

// MeetingClient wraps the meeting resource endpoints. Meetings are created
// at the payment-confirmation step and read afterwards; status transitions
// happen server-side.
type MeetingClient struct {
	c *Client
}

// NewMeetingClient creates a meeting API client
func NewMeetingClient(c *Client) *MeetingClient {
	return &MeetingClient{c: c}
}

// Create books a new meeting
func (mc *MeetingClient) Create(ctx context.Context, req *models.CreateMeetingRequest) (*models.Meeting, error) {
	var meeting models.Meeting
	if err := mc.c.do(ctx, "createMeeting", http.MethodPost, "/api/v1/meeting/createMeeting", req, &meeting); err != nil {
		return nil, err
	}
	return &meeting, nil
}

// GetByID fetches a single meeting
func (mc *MeetingClient) GetByID(ctx context.Context, id string) (*models.Meeting, error) {
	var meeting models.Meeting
	endpoint := "/api/v1/meeting/getMeetingById/" + url.PathEscape(id)
	if err := mc.c.do(ctx, "getMeetingById", http.MethodGet, endpoint, nil, &meeting); err != nil {
		return nil, err
	}
	return &meeting, nil
}

// Filtered lists meetings for a mentor and/or mentee. Either filter may be
// empty. Data always comes back non-nil even when the backend omits it.
func (mc *MeetingClient) Filtered(ctx context.Context, mentorID, menteeID string) (*models.FilteredMeetings, error) {
	query := url.Values{}
	if mentorID != "" {
		query.Set("mentorId", mentorID)
	}
	if menteeID != "" {
		query.Set("menteeId", menteeID)
	}

	endpoint := "/api/v1/meeting/getFilteredMeetings"
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var resp models.FilteredMeetings
	if err := mc.c.do(ctx, "getFilteredMeetings", http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		resp.Data = []models.Meeting{}
	}
	return &resp, nil
}

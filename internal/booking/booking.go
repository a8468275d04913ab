package booking

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/skymentor/skymentor-client/internal/models"
	"github.com/skymentor/skymentor-client/internal/session"
	"github.com/skymentor/skymentor-client/pkg/errors"
	"github.com/skymentor/skymentor-client/pkg/logger"
	"go.uber.org/zap"
)

// Defaults applied when confirming a booking. Session length and mode are
// not part of the checkout flow yet; every booked session is a one-hour
// Zoom call until the backend exposes a choice.
const (
	defaultDurationMinutes = 60
	defaultMode            = models.ModeZoom
)

// Booking is the in-progress checkout state, persisted between the slot
// picker and the payment page. Field names are part of the stored format.
type Booking struct {
	MentorID   string  `json:"mentorId"`
	MentorName string  `json:"mentorName"`
	Date       string  `json:"date"` // ISO 8601 datetime of the chosen slot
	Price      float64 `json:"price"`
}

// MeetingCreator books the confirmed meeting on the backend
type MeetingCreator interface {
	Create(ctx context.Context, req *models.CreateMeetingRequest) (*models.Meeting, error)
}

// Flow drives checkout: stage a booking when a slot is picked, confirm it
// after payment, clear it on cancel. No meeting exists server-side until
// ConfirmPayment succeeds.
type Flow struct {
	store    *session.Store
	meetings MeetingCreator
}

// NewFlow creates a booking flow over the session store
func NewFlow(store *session.Store, meetings MeetingCreator) *Flow {
	return &Flow{store: store, meetings: meetings}
}

// Begin stages a booking for the payment step
func (f *Flow) Begin(b Booking) error {
	if b.MentorID == "" {
		return errors.InvalidInputError("mentorId", "must not be empty")
	}
	if b.Date == "" {
		return errors.InvalidInputError("date", "must not be empty")
	}

	payload, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encoding booking: %w", err)
	}
	return f.store.Set(session.KeyBookingData, string(payload))
}

// Pending returns the staged booking, or ErrNotFound when checkout is not
// in progress. A corrupt stored booking reads as not found.
func (f *Flow) Pending() (*Booking, error) {
	raw, ok := f.store.Get(session.KeyBookingData)
	if !ok {
		return nil, errors.NotFoundError("pending booking")
	}

	var b Booking
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		logger.Warn("Stored booking failed to parse, discarding",
			zap.Error(err))
		return nil, errors.NotFoundError("pending booking")
	}
	return &b, nil
}

// Cancel abandons the staged booking
func (f *Flow) Cancel() error {
	return f.store.Remove(session.KeyBookingData)
}

// ConfirmPayment creates the meeting after the payment step succeeds.
// It requires a staged booking and a logged-in mentee, and clears the
// staged booking only after the backend accepts the meeting.
func (f *Flow) ConfirmPayment(ctx context.Context) (*models.Meeting, error) {
	pending, err := f.Pending()
	if err != nil {
		return nil, err
	}

	mentee, err := f.store.CurrentMentee()
	if err != nil {
		return nil, err
	}

	meeting, err := f.meetings.Create(ctx, &models.CreateMeetingRequest{
		MentorID:          pending.MentorID,
		MenteeID:          mentee.ID,
		ScheduledDatetime: pending.Date,
		DurationMinutes:   defaultDurationMinutes,
		ModeOfMeeting:     defaultMode,
		Status:            models.StatusScheduled,
	})
	if err != nil {
		return nil, err
	}

	if err := f.Cancel(); err != nil {
		logger.Warn("Meeting booked but staged booking not cleared",
			zap.String("meeting_id", meeting.ID), zap.Error(err))
	}

	logger.Info("Booking confirmed",
		zap.String("meeting_id", meeting.ID),
		zap.String("mentor_id", pending.MentorID),
		zap.String("mentee_id", mentee.ID))
	return meeting, nil
}

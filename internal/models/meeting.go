package models

// MeetingMode is how a session is conducted
type MeetingMode string

const (
	ModeZoom      MeetingMode = "Zoom"
	ModePhone     MeetingMode = "Phone"
	ModeVideoCall MeetingMode = "Video Call"
)

// MeetingStatus is the lifecycle state of a session. Transitions happen
// server-side; this client only ever creates and reads meetings.
type MeetingStatus string

const (
	StatusScheduled MeetingStatus = "Scheduled"
	StatusCompleted MeetingStatus = "Completed"
	StatusCancelled MeetingStatus = "Cancelled"
	StatusNoShow    MeetingStatus = "No Show"
)

// Meeting represents a booked mentorship session
type Meeting struct {
	ID                  string        `json:"id" validate:"required"`
	MentorID            string        `json:"mentor_id" validate:"required"`
	MenteeID            string        `json:"mentee_id" validate:"required"`
	ScheduledDatetime   string        `json:"scheduled_datetime" validate:"required"`
	DurationMinutes     int           `json:"duration_minutes" validate:"gt=0"`
	ModeOfMeeting       MeetingMode   `json:"mode_of_meeting" validate:"omitempty,oneof='Zoom' 'Phone' 'Video Call'"`
	MeetingLink         string        `json:"meeting_link"`
	Status              MeetingStatus `json:"status" validate:"required,oneof='Scheduled' 'Completed' 'Cancelled' 'No Show'"`
	RescheduleRequested bool          `json:"reschedule_requested"`
	RescheduleReason    string        `json:"reschedule_reason"`
	NotesMentor         string        `json:"notes_mentor"`
	NotesMentee         string        `json:"notes_mentee"`
	SessionRecording    string        `json:"session_recording"`
	CreatedAt           string        `json:"created_at" validate:"required"`
}

// CreateMeetingRequest is the payload sent at the payment-confirmation
// step. The meeting link may be empty; the backend (or the local stub)
// provisions one.
type CreateMeetingRequest struct {
	MentorID            string        `json:"mentor_id" binding:"required" validate:"required"`
	MenteeID            string        `json:"mentee_id" binding:"required" validate:"required"`
	ScheduledDatetime   string        `json:"scheduled_datetime" binding:"required" validate:"required"`
	DurationMinutes     int           `json:"duration_minutes" binding:"gt=0" validate:"gt=0"`
	ModeOfMeeting       MeetingMode   `json:"mode_of_meeting"`
	MeetingLink         string        `json:"meeting_link"`
	Status              MeetingStatus `json:"status"`
	RescheduleRequested bool          `json:"reschedule_requested"`
	RescheduleReason    string        `json:"reschedule_reason"`
	NotesMentor         string        `json:"notes_mentor"`
	NotesMentee         string        `json:"notes_mentee"`
	SessionRecording    string        `json:"session_recording"`
}

// FilteredMeetings is the filtered-list envelope. Data defaults to an
// empty slice when the backend omits it.
type FilteredMeetings struct {
	Success bool      `json:"success"`
	Data    []Meeting `json:"data"`
}

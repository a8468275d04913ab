package models

// Mentee represents a mentee record as returned by the backend
type Mentee struct {
	ID                    string   `json:"id" validate:"required"`
	FullName              string   `json:"full_name" validate:"required"`
	Email                 string   `json:"email" validate:"required,email"`
	PhoneNumber           string   `json:"phone_number" validate:"required"`
	AgeGroup              string   `json:"age_group"`
	CurrentStage          string   `json:"current_stage"`
	KeyGoal               string   `json:"key_goal"`
	PreferredLanguage     string   `json:"preferred_language"`
	PreferredMentorDomain []string `json:"preferred_mentor_domain"`
	Availability          []string `json:"availability"`
	Budget                float64  `json:"budget" validate:"gte=0"`
	QuestionsForMentor    string   `json:"questions_for_mentor,omitempty"`
	PreviousAttempts      string   `json:"previous_attempts,omitempty"`
	CreatedAt             string   `json:"created_at" validate:"required"`
	UpdatedAt             string   `json:"updated_at"`
}

// CreateMenteeRequest is the payload for mentee registration
type CreateMenteeRequest struct {
	FullName              string   `json:"full_name" binding:"required" validate:"required"`
	Email                 string   `json:"email" binding:"required,email" validate:"required,email"`
	PhoneNumber           string   `json:"phone_number" binding:"required" validate:"required"`
	AgeGroup              string   `json:"age_group"`
	CurrentStage          string   `json:"current_stage"`
	KeyGoal               string   `json:"key_goal"`
	PreferredLanguage     string   `json:"preferred_language"`
	PreferredMentorDomain []string `json:"preferred_mentor_domain"`
	Availability          []string `json:"availability"`
	Budget                float64  `json:"budget" binding:"gte=0"`
	QuestionsForMentor    string   `json:"questions_for_mentor,omitempty"`
	PreviousAttempts      string   `json:"previous_attempts,omitempty"`
}

// MenteePatch carries a partial mentee update. Only non-nil fields are
// serialized; the backend merges them into the stored record.
type MenteePatch struct {
	FullName              *string  `json:"full_name,omitempty"`
	Email                 *string  `json:"email,omitempty"`
	PhoneNumber           *string  `json:"phone_number,omitempty"`
	AgeGroup              *string  `json:"age_group,omitempty"`
	CurrentStage          *string  `json:"current_stage,omitempty"`
	KeyGoal               *string  `json:"key_goal,omitempty"`
	PreferredLanguage     *string  `json:"preferred_language,omitempty"`
	PreferredMentorDomain []string `json:"preferred_mentor_domain,omitempty"`
	Availability          []string `json:"availability,omitempty"`
	Budget                *float64 `json:"budget,omitempty"`
	QuestionsForMentor    *string  `json:"questions_for_mentor,omitempty"`
	PreviousAttempts      *string  `json:"previous_attempts,omitempty"`
}

// MenteeList is the paginated mentee list response
type MenteeList struct {
	Mentees []Mentee `json:"mentees"`
	Total   int      `json:"total" validate:"gte=0"`
	Limit   int      `json:"limit"`
	Offset  int      `json:"offset"`
}

// MenteeLoginRequest looks up a mentee by phone number
type MenteeLoginRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required" validate:"required"`
}

// MenteeLoginResponse wraps the matched mentee record together with a
// human-readable message
type MenteeLoginResponse struct {
	Message string `json:"message"`
	Mentee  Mentee `json:"mentee" validate:"required"`
}

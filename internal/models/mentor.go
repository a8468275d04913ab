package models

// ComfortLevel is the mentee experience level a mentor is comfortable teaching
type ComfortLevel string

const (
	ComfortBeginner     ComfortLevel = "Beginner"
	ComfortIntermediate ComfortLevel = "Intermediate"
	ComfortAdvanced     ComfortLevel = "Advanced"
	ComfortAllLevels    ComfortLevel = "All Levels"
)

// Mentor represents a mentor record as returned by the backend
type Mentor struct {
	ID                      string       `json:"id" validate:"required"`
	FirstName               string       `json:"first_name" validate:"required"`
	LastName                string       `json:"last_name" validate:"required"`
	Email                   string       `json:"email" validate:"required,email"`
	PhoneNumber             string       `json:"phone_number" validate:"required"`
	LinkedinURL             string       `json:"linkedin_url,omitempty"`
	CurrentRole             string       `json:"current_occ_role"`
	YearsOfExperience       int          `json:"years_of_experience" validate:"gte=0"`
	AreaOfExpertise         []string     `json:"area_of_expertise"`
	AvailabilitySlots       []string     `json:"availability_slots"`
	ProfileBio              string       `json:"profile_bio"`
	LanguagesSpoken         []string     `json:"languages_spoken"`
	MentoringFee            float64      `json:"mentoring_fee" validate:"gte=0"`
	LevelComfortable        ComfortLevel `json:"level_comfortable" validate:"omitempty,oneof='Beginner' 'Intermediate' 'Advanced' 'All Levels'"`
	Documents               []string     `json:"documents,omitempty"`
	RequirementsFromMentees string       `json:"requirements_from_mentees,omitempty"`
	CreatedAt               string       `json:"created_at" validate:"required"`
	UpdatedAt               string       `json:"updated_at"`
}

// DisplayName returns the mentor's full name for list and card views
func (m *Mentor) DisplayName() string {
	return m.FirstName + " " + m.LastName
}

// CreateMentorRequest is the payload for mentor signup and the admin
// mentor form
type CreateMentorRequest struct {
	FirstName               string       `json:"first_name" binding:"required" validate:"required"`
	LastName                string       `json:"last_name" binding:"required" validate:"required"`
	Email                   string       `json:"email" binding:"required,email" validate:"required,email"`
	PhoneNumber             string       `json:"phone_number" binding:"required" validate:"required"`
	LinkedinURL             string       `json:"linkedin_url,omitempty"`
	CurrentRole             string       `json:"current_occ_role"`
	YearsOfExperience       int          `json:"years_of_experience" binding:"gte=0"`
	AreaOfExpertise         []string     `json:"area_of_expertise"`
	AvailabilitySlots       []string     `json:"availability_slots"`
	ProfileBio              string       `json:"profile_bio"`
	LanguagesSpoken         []string     `json:"languages_spoken"`
	MentoringFee            float64      `json:"mentoring_fee" binding:"gte=0"`
	LevelComfortable        ComfortLevel `json:"level_comfortable"`
	Documents               []string     `json:"documents,omitempty"`
	RequirementsFromMentees string       `json:"requirements_from_mentees,omitempty"`
}

// MentorPatch carries a partial mentor update. Only non-nil fields are
// serialized; the backend merges them into the stored record.
type MentorPatch struct {
	FirstName               *string       `json:"first_name,omitempty"`
	LastName                *string       `json:"last_name,omitempty"`
	Email                   *string       `json:"email,omitempty"`
	PhoneNumber             *string       `json:"phone_number,omitempty"`
	LinkedinURL             *string       `json:"linkedin_url,omitempty"`
	CurrentRole             *string       `json:"current_occ_role,omitempty"`
	YearsOfExperience       *int          `json:"years_of_experience,omitempty"`
	AreaOfExpertise         []string      `json:"area_of_expertise,omitempty"`
	AvailabilitySlots       []string      `json:"availability_slots,omitempty"`
	ProfileBio              *string       `json:"profile_bio,omitempty"`
	LanguagesSpoken         []string      `json:"languages_spoken,omitempty"`
	MentoringFee            *float64      `json:"mentoring_fee,omitempty"`
	LevelComfortable        *ComfortLevel `json:"level_comfortable,omitempty"`
	Documents               []string      `json:"documents,omitempty"`
	RequirementsFromMentees *string       `json:"requirements_from_mentees,omitempty"`
}

// MentorList is the paginated mentor list response
type MentorList struct {
	Mentors []Mentor `json:"mentors"`
	Total   int      `json:"total" validate:"gte=0"`
	Limit   int      `json:"limit"`
	Offset  int      `json:"offset"`
}

// MentorLoginRequest looks up a mentor by phone number. Phone is the
// canonical login identifier for every role.
type MentorLoginRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required" validate:"required"`
}

// MentorLoginResponse wraps the matched mentor record
type MentorLoginResponse struct {
	Mentor Mentor `json:"mentor" validate:"required"`
}

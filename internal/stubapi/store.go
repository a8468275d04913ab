package stubapi

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/skymentor/skymentor-client/internal/models"
)

// Store is the in-memory dataset behind the stub API. It exists so the
// client and its consumers can run against the full wire contract without
// a deployed backend; nothing survives a restart.
type Store struct {
	mu       sync.RWMutex
	mentors  map[string]models.Mentor
	mentees  map[string]models.Mentee
	admins   map[string]models.Admin
	meetings map[string]models.Meeting

	// Insertion order, for stable list pagination
	mentorOrder  []string
	menteeOrder  []string
	adminOrder   []string
	meetingOrder []string

	now func() time.Time
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		mentors:  make(map[string]models.Mentor),
		mentees:  make(map[string]models.Mentee),
		admins:   make(map[string]models.Admin),
		meetings: make(map[string]models.Meeting),
		now:      time.Now,
	}
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// mergePatch overlays the supplied patch fields onto record and decodes the
// result into out. Only keys present in the patch change; everything else
// keeps its stored value, matching the partial-update contract.
func mergePatch(record any, patch map[string]any, out any) error {
	encoded, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding stored record: %w", err)
	}
	base := make(map[string]any)
	if err := json.Unmarshal(encoded, &base); err != nil {
		return fmt.Errorf("decoding stored record: %w", err)
	}
	for k, v := range patch {
		base[k] = v
	}
	merged, err := json.Marshal(base)
	if err != nil {
		return fmt.Errorf("encoding merged record: %w", err)
	}
	return json.Unmarshal(merged, out)
}

// paginate slices ids by limit/offset and reports the total
func paginate(ids []string, limit, offset int) ([]string, int) {
	total := len(ids)
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return nil, total
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	return ids[offset:end], total
}

// CreateMentor stores a new mentor record
func (s *Store) CreateMentor(req *models.CreateMentorRequest) models.Mentor {
	s.mu.Lock()
	defer s.mu.Unlock()

	mentor := models.Mentor{
		ID:                      uuid.NewString(),
		FirstName:               req.FirstName,
		LastName:                req.LastName,
		Email:                   req.Email,
		PhoneNumber:             req.PhoneNumber,
		LinkedinURL:             req.LinkedinURL,
		CurrentRole:             req.CurrentRole,
		YearsOfExperience:       req.YearsOfExperience,
		AreaOfExpertise:         req.AreaOfExpertise,
		AvailabilitySlots:       req.AvailabilitySlots,
		ProfileBio:              req.ProfileBio,
		LanguagesSpoken:         req.LanguagesSpoken,
		MentoringFee:            req.MentoringFee,
		LevelComfortable:        req.LevelComfortable,
		Documents:               req.Documents,
		RequirementsFromMentees: req.RequirementsFromMentees,
		CreatedAt:               s.timestamp(),
	}
	s.mentors[mentor.ID] = mentor
	s.mentorOrder = append(s.mentorOrder, mentor.ID)
	return mentor
}

// ListMentors returns one page of mentors plus the total count
func (s *Store) ListMentors(limit, offset int) ([]models.Mentor, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	page, total := paginate(s.mentorOrder, limit, offset)
	mentors := make([]models.Mentor, 0, len(page))
	for _, id := range page {
		mentors = append(mentors, s.mentors[id])
	}
	return mentors, total
}

// GetMentor returns a mentor by id
func (s *Store) GetMentor(id string) (models.Mentor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	mentor, ok := s.mentors[id]
	return mentor, ok
}

// MentorByPhone returns the mentor with the given phone number
func (s *Store) MentorByPhone(phone string) (models.Mentor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.mentorOrder {
		if s.mentors[id].PhoneNumber == phone {
			return s.mentors[id], true
		}
	}
	return models.Mentor{}, false
}

// UpdateMentor merges the patch into the stored mentor
func (s *Store) UpdateMentor(id string, patch map[string]any) (models.Mentor, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.mentors[id]
	if !ok {
		return models.Mentor{}, false, nil
	}

	var updated models.Mentor
	if err := mergePatch(stored, patch, &updated); err != nil {
		return models.Mentor{}, true, err
	}
	updated.ID = stored.ID
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = s.timestamp()
	s.mentors[id] = updated
	return updated, true, nil
}

// DeleteMentor removes a mentor permanently
func (s *Store) DeleteMentor(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.mentors[id]; !ok {
		return false
	}
	delete(s.mentors, id)
	s.mentorOrder = removeID(s.mentorOrder, id)
	return true
}

// CreateMentee stores a new mentee record
func (s *Store) CreateMentee(req *models.CreateMenteeRequest) models.Mentee {
	s.mu.Lock()
	defer s.mu.Unlock()

	mentee := models.Mentee{
		ID:                    uuid.NewString(),
		FullName:              req.FullName,
		Email:                 req.Email,
		PhoneNumber:           req.PhoneNumber,
		AgeGroup:              req.AgeGroup,
		CurrentStage:          req.CurrentStage,
		KeyGoal:               req.KeyGoal,
		PreferredLanguage:     req.PreferredLanguage,
		PreferredMentorDomain: req.PreferredMentorDomain,
		Availability:          req.Availability,
		Budget:                req.Budget,
		QuestionsForMentor:    req.QuestionsForMentor,
		PreviousAttempts:      req.PreviousAttempts,
		CreatedAt:             s.timestamp(),
	}
	s.mentees[mentee.ID] = mentee
	s.menteeOrder = append(s.menteeOrder, mentee.ID)
	return mentee
}

// ListMentees returns one page of mentees plus the total count
func (s *Store) ListMentees(limit, offset int) ([]models.Mentee, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	page, total := paginate(s.menteeOrder, limit, offset)
	mentees := make([]models.Mentee, 0, len(page))
	for _, id := range page {
		mentees = append(mentees, s.mentees[id])
	}
	return mentees, total
}

// GetMentee returns a mentee by id
func (s *Store) GetMentee(id string) (models.Mentee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	mentee, ok := s.mentees[id]
	return mentee, ok
}

// MenteeByPhone returns the mentee with the given phone number
func (s *Store) MenteeByPhone(phone string) (models.Mentee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.menteeOrder {
		if s.mentees[id].PhoneNumber == phone {
			return s.mentees[id], true
		}
	}
	return models.Mentee{}, false
}

// UpdateMentee merges the patch into the stored mentee
func (s *Store) UpdateMentee(id string, patch map[string]any) (models.Mentee, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.mentees[id]
	if !ok {
		return models.Mentee{}, false, nil
	}

	var updated models.Mentee
	if err := mergePatch(stored, patch, &updated); err != nil {
		return models.Mentee{}, true, err
	}
	updated.ID = stored.ID
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = s.timestamp()
	s.mentees[id] = updated
	return updated, true, nil
}

// DeleteMentee removes a mentee permanently
func (s *Store) DeleteMentee(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.mentees[id]; !ok {
		return false
	}
	delete(s.mentees, id)
	s.menteeOrder = removeID(s.menteeOrder, id)
	return true
}

// CreateAdmin stores a new admin record
func (s *Store) CreateAdmin(req *models.CreateAdminRequest) models.Admin {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin := models.Admin{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		CreatedAt:   s.timestamp(),
	}
	s.admins[admin.ID] = admin
	s.adminOrder = append(s.adminOrder, admin.ID)
	return admin
}

// ListAdmins returns every admin. The admin list is unpaginated.
func (s *Store) ListAdmins() []models.Admin {
	s.mu.RLock()
	defer s.mu.RUnlock()

	admins := make([]models.Admin, 0, len(s.adminOrder))
	for _, id := range s.adminOrder {
		admins = append(admins, s.admins[id])
	}
	return admins
}

// GetAdmin returns an admin by id
func (s *Store) GetAdmin(id string) (models.Admin, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	admin, ok := s.admins[id]
	return admin, ok
}

// AdminByPhone returns the admin with the given phone number
func (s *Store) AdminByPhone(phone string) (models.Admin, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.adminOrder {
		if s.admins[id].PhoneNumber == phone {
			return s.admins[id], true
		}
	}
	return models.Admin{}, false
}

// UpdateAdmin merges the patch into the stored admin
func (s *Store) UpdateAdmin(id string, patch map[string]any) (models.Admin, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.admins[id]
	if !ok {
		return models.Admin{}, false, nil
	}

	var updated models.Admin
	if err := mergePatch(stored, patch, &updated); err != nil {
		return models.Admin{}, true, err
	}
	updated.ID = stored.ID
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = s.timestamp()
	s.admins[id] = updated
	return updated, true, nil
}

// DeleteAdmin removes an admin permanently
func (s *Store) DeleteAdmin(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.admins[id]; !ok {
		return false
	}
	delete(s.admins, id)
	s.adminOrder = removeID(s.adminOrder, id)
	return true
}

// CreateMeeting stores a new meeting. Missing status defaults to Scheduled
// and a missing link gets a provisioned stub meeting room.
func (s *Store) CreateMeeting(req *models.CreateMeetingRequest) models.Meeting {
	s.mu.Lock()
	defer s.mu.Unlock()

	meeting := models.Meeting{
		ID:                  uuid.NewString(),
		MentorID:            req.MentorID,
		MenteeID:            req.MenteeID,
		ScheduledDatetime:   req.ScheduledDatetime,
		DurationMinutes:     req.DurationMinutes,
		ModeOfMeeting:       req.ModeOfMeeting,
		MeetingLink:         req.MeetingLink,
		Status:              req.Status,
		RescheduleRequested: req.RescheduleRequested,
		RescheduleReason:    req.RescheduleReason,
		NotesMentor:         req.NotesMentor,
		NotesMentee:         req.NotesMentee,
		SessionRecording:    req.SessionRecording,
		CreatedAt:           s.timestamp(),
	}
	if meeting.Status == "" {
		meeting.Status = models.StatusScheduled
	}
	if meeting.MeetingLink == "" {
		meeting.MeetingLink = "https://meet.skymentor.dev/" + uuid.NewString()
	}
	s.meetings[meeting.ID] = meeting
	s.meetingOrder = append(s.meetingOrder, meeting.ID)
	return meeting
}

// GetMeeting returns a meeting by id
func (s *Store) GetMeeting(id string) (models.Meeting, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	meeting, ok := s.meetings[id]
	return meeting, ok
}

// FilteredMeetings returns meetings matching the given mentor and/or
// mentee. Empty filters match everything.
func (s *Store) FilteredMeetings(mentorID, menteeID string) []models.Meeting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	meetings := make([]models.Meeting, 0)
	for _, id := range s.meetingOrder {
		m := s.meetings[id]
		if mentorID != "" && m.MentorID != mentorID {
			continue
		}
		if menteeID != "" && m.MenteeID != menteeID {
			continue
		}
		meetings = append(meetings, m)
	}
	return meetings
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/skymentor/skymentor-client/internal/models"
	"github.com/skymentor/skymentor-client/pkg/errors"
	"github.com/skymentor/skymentor-client/pkg/logger"
	"go.uber.org/zap"
)

// Persisted keys. The names are part of the stored format and survive from
// the original browser storage layout, so existing snapshots keep working.
const (
	KeyMentorData     = "mentorData"
	KeyMentorLoggedIn = "isMentorLoggedIn"
	KeyMenteeData     = "menteeData"
	KeyMenteeLoggedIn = "isLoggedIn"
	KeyAdminData      = "adminData"
	KeyAdminLoggedIn  = "isAdminLoggedIn"
	KeyBookingData    = "bookingData"
)

const snapshotFile = "session.json"

// Store is a persisted key/value session store: a local cache of the last
// successful login and quiz answers. It is an access gate only, not a
// security boundary — the snapshot is plaintext on the user's machine.
type Store struct {
	path   string
	mu     sync.Mutex
	values map[string]string
}

// DefaultDir returns the per-user session directory
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(base, "skymentor"), nil
}

// Open loads the session snapshot from dir, creating the directory if
// needed. A missing or unreadable snapshot yields an empty store: stale or
// corrupt local state means "not logged in", never a hard failure.
func Open(dir string) (*Store, error) {
	if dir == "" {
		var err error
		dir, err = DefaultDir()
		if err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating session dir: %w", err)
	}

	s := &Store{
		path:   filepath.Join(dir, snapshotFile),
		values: make(map[string]string),
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read session snapshot, starting empty",
				zap.String("path", s.path), zap.Error(err))
		}
		return s, nil
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		logger.Warn("Corrupt session snapshot, starting empty",
			zap.String("path", s.path), zap.Error(err))
		s.values = make(map[string]string)
	}
	return s, nil
}

// Get returns the raw value for key
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores a value and persists the snapshot
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.flushLocked()
}

// Remove deletes the given keys and persists the snapshot
func (s *Store) Remove(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.values, key)
	}
	return s.flushLocked()
}

// Clear wipes the whole session
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string]string)
	return s.flushLocked()
}

// flushLocked writes the snapshot atomically. Caller holds s.mu.
func (s *Store) flushLocked() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing session snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing session snapshot: %w", err)
	}
	return nil
}

// saveLogin persists an entity record plus its login flag
func (s *Store) saveLogin(dataKey, flagKey string, record any) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", dataKey, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[dataKey] = string(payload)
	s.values[flagKey] = "true"
	return s.flushLocked()
}

// currentLogin hydrates the stored record for a role. Missing flag,
// missing data, or a data parse failure all read as not logged in.
func (s *Store) currentLogin(dataKey, flagKey string, out any) error {
	s.mu.Lock()
	flag, flagOK := s.values[flagKey]
	data, dataOK := s.values[dataKey]
	s.mu.Unlock()

	if !flagOK || flag != "true" || !dataOK {
		return errors.ErrNotLoggedIn
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		logger.Warn("Stored session data failed to parse, treating as logged out",
			zap.String("key", dataKey), zap.Error(err))
		return errors.ErrNotLoggedIn
	}
	return nil
}

// SaveMentorLogin records a successful mentor login
func (s *Store) SaveMentorLogin(mentor *models.Mentor) error {
	return s.saveLogin(KeyMentorData, KeyMentorLoggedIn, mentor)
}

// CurrentMentor returns the logged-in mentor, or ErrNotLoggedIn
func (s *Store) CurrentMentor() (*models.Mentor, error) {
	var mentor models.Mentor
	if err := s.currentLogin(KeyMentorData, KeyMentorLoggedIn, &mentor); err != nil {
		return nil, err
	}
	return &mentor, nil
}

// ClearMentor logs the mentor out
func (s *Store) ClearMentor() error {
	return s.Remove(KeyMentorData, KeyMentorLoggedIn)
}

// SaveMenteeLogin records a successful mentee login. Only the mentee
// record is persisted, never the login response envelope.
func (s *Store) SaveMenteeLogin(mentee *models.Mentee) error {
	return s.saveLogin(KeyMenteeData, KeyMenteeLoggedIn, mentee)
}

// CurrentMentee returns the logged-in mentee, or ErrNotLoggedIn
func (s *Store) CurrentMentee() (*models.Mentee, error) {
	var mentee models.Mentee
	if err := s.currentLogin(KeyMenteeData, KeyMenteeLoggedIn, &mentee); err != nil {
		return nil, err
	}
	return &mentee, nil
}

// ClearMentee logs the mentee out
func (s *Store) ClearMentee() error {
	return s.Remove(KeyMenteeData, KeyMenteeLoggedIn)
}

// SaveAdminLogin records a successful admin login
func (s *Store) SaveAdminLogin(admin *models.Admin) error {
	return s.saveLogin(KeyAdminData, KeyAdminLoggedIn, admin)
}

// CurrentAdmin returns the logged-in admin, or ErrNotLoggedIn
func (s *Store) CurrentAdmin() (*models.Admin, error) {
	var admin models.Admin
	if err := s.currentLogin(KeyAdminData, KeyAdminLoggedIn, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// ClearAdmin logs the admin out
func (s *Store) ClearAdmin() error {
	return s.Remove(KeyAdminData, KeyAdminLoggedIn)
}

package matching

import (
	"context"
	"fmt"
	"strings"

	"github.com/skymentor/skymentor-client/internal/models"
	"github.com/skymentor/skymentor-client/internal/session"
	"github.com/skymentor/skymentor-client/pkg/errors"
	"github.com/skymentor/skymentor-client/pkg/logger"
	"go.uber.org/zap"
)

// Persisted quiz answer keys, one per step
const (
	KeyStep1 = "matchingStep1" // area of help
	KeyStep2 = "matchingStep2" // experience level
	KeyStep3 = "matchingStep3" // specific goal (free text)
	KeyStep4 = "matchingStep4" // journey stage
)

// Placeholder answers used when a step was skipped, so the results view
// always renders.
const (
	defaultArea  = "aviation"
	defaultLevel = "beginner"
	defaultGoal  = "career advancement"
	defaultStage = "planning"
)

// resultsPageSize caps how many mentors the results view shows
const resultsPageSize = 50

// Areas are the step-1 options
var Areas = []string{
	"ground-school",
	"dgca-clearance",
	"flight-school-selection",
	"subject-doubts",
	"simulator-training",
	"exam-preparation",
}

// Levels are the step-2 options
var Levels = []string{"beginner", "intermediate", "advanced"}

// Stages are the step-4 options
var Stages = []string{
	"just-getting-started",
	"preparing-ground-school",
	"completed-cpl",
	"considering-abroad-options",
}

// MentorLister fetches one page of the mentor directory
type MentorLister interface {
	List(ctx context.Context, limit, offset int) (*models.MentorList, error)
}

// Answers holds whatever quiz answers exist; absent steps are empty
type Answers struct {
	Area  string
	Level string
	Goal  string
	Stage string
}

// WithDefaults substitutes placeholders for missing answers
func (a Answers) WithDefaults() Answers {
	if a.Area == "" {
		a.Area = defaultArea
	}
	if a.Level == "" {
		a.Level = defaultLevel
	}
	if a.Goal == "" {
		a.Goal = defaultGoal
	}
	if a.Stage == "" {
		a.Stage = defaultStage
	}
	return a
}

// MatchReason renders the explanatory blurb shown above the results list.
// It is cosmetic copy derived from the answers, not a computed score.
func (a Answers) MatchReason() string {
	d := a.WithDefaults()
	return fmt.Sprintf(
		"Based on your need for %s guidance at %s level, with the goal of %q at the %s stage.",
		d.Area, d.Level, d.Goal, d.Stage,
	)
}

// Quiz drives the 4-step matching questionnaire over the session store
type Quiz struct {
	store *session.Store
}

// NewQuiz creates a quiz bound to the session store
func NewQuiz(store *session.Store) *Quiz {
	return &Quiz{store: store}
}

// SaveArea records the step-1 answer
func (q *Quiz) SaveArea(area string) error {
	if !contains(Areas, area) {
		return errors.InvalidInputError("area", fmt.Sprintf("unknown option %q", area))
	}
	return q.store.Set(KeyStep1, area)
}

// SaveLevel records the step-2 answer
func (q *Quiz) SaveLevel(level string) error {
	if !contains(Levels, level) {
		return errors.InvalidInputError("level", fmt.Sprintf("unknown option %q", level))
	}
	return q.store.Set(KeyStep2, level)
}

// SaveGoal records the free-text step-3 answer
func (q *Quiz) SaveGoal(goal string) error {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return errors.InvalidInputError("goal", "must not be empty")
	}
	return q.store.Set(KeyStep3, goal)
}

// SaveStage records the step-4 answer
func (q *Quiz) SaveStage(stage string) error {
	if !contains(Stages, stage) {
		return errors.InvalidInputError("stage", fmt.Sprintf("unknown option %q", stage))
	}
	return q.store.Set(KeyStep4, stage)
}

// Answers reads whatever steps were answered. Each is optionally absent.
func (q *Quiz) Answers() Answers {
	var a Answers
	a.Area, _ = q.store.Get(KeyStep1)
	a.Level, _ = q.store.Get(KeyStep2)
	a.Goal, _ = q.store.Get(KeyStep3)
	a.Stage, _ = q.store.Get(KeyStep4)
	return a
}

// Reset clears all quiz answers
func (q *Quiz) Reset() error {
	return q.store.Remove(KeyStep1, KeyStep2, KeyStep3, KeyStep4)
}

// Results fetches the mentor list for the results view. The answers gate
// nothing: the list is unfiltered, and a fetch failure degrades to an
// empty list rather than blocking the view.
func (q *Quiz) Results(ctx context.Context, source MentorLister) []models.Mentor {
	page, err := source.List(ctx, resultsPageSize, 0)
	if err != nil {
		logger.Warn("Failed to fetch mentors for quiz results", zap.Error(err))
		return []models.Mentor{}
	}
	return page.Mentors
}

func contains(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}

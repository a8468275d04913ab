package stubapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/skymentor/skymentor-client/config"
	"github.com/skymentor/skymentor-client/internal/models"
	"github.com/skymentor/skymentor-client/internal/stubapi"
	"github.com/skymentor/skymentor-client/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.InitializeForTesting()
	os.Exit(m.Run())
}

func newTestRouter() *gin.Engine {
	cfg := &config.Config{
		Stub: config.StubConfig{
			GinMode:        gin.TestMode,
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Observability: config.ObservabilityConfig{ServiceName: "skymentor-test"},
		AppEnv:        "test",
	}
	return stubapi.NewRouter(cfg, stubapi.NewStore())
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func createMentor(t *testing.T, router *gin.Engine, phone string) models.Mentor {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/mentor/createMentor", models.CreateMentorRequest{
		FirstName:    "Sarah",
		LastName:     "Johnson",
		Email:        "sarah@example.com",
		PhoneNumber:  phone,
		MentoringFee: 1500,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return decode[models.Mentor](t, w)
}

func createMentee(t *testing.T, router *gin.Engine, phone string) models.Mentee {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/mentee/createMentee", models.CreateMenteeRequest{
		FullName:    "Aisha Khan",
		Email:       "aisha@example.com",
		PhoneNumber: phone,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return decode[models.Mentee](t, w)
}

func TestMentorLifecycle(t *testing.T) {
	router := newTestRouter()

	mentor := createMentor(t, router, "+919800000001")
	assert.NotEmpty(t, mentor.ID)
	assert.NotEmpty(t, mentor.CreatedAt)

	// fetch it back
	w := doJSON(t, router, http.MethodGet, "/api/v1/mentor/getMentorById/"+mentor.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	fetched := decode[models.Mentor](t, w)
	assert.Equal(t, "Sarah Johnson", fetched.DisplayName())

	// partial update: only the supplied field changes
	w = doJSON(t, router, http.MethodPut, "/api/v1/mentor/updateMentorById/"+mentor.ID,
		map[string]any{"profile_bio": "A320 captain"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[models.Mentor](t, w)
	assert.Equal(t, "A320 captain", updated.ProfileBio)
	assert.Equal(t, "Sarah", updated.FirstName)
	assert.Equal(t, 1500.0, updated.MentoringFee)
	assert.NotEmpty(t, updated.UpdatedAt)

	// delete
	w = doJSON(t, router, http.MethodDelete, "/api/v1/mentor/deleteMentorById/"+mentor.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[models.DeleteResponse](t, w).Success)

	w = doJSON(t, router, http.MethodGet, "/api/v1/mentor/getMentorById/"+mentor.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMentorLogin(t *testing.T) {
	router := newTestRouter()
	mentor := createMentor(t, router, "+919800000001")

	w := doJSON(t, router, http.MethodPost, "/api/v1/mentor/loginMentor",
		models.MentorLoginRequest{PhoneNumber: "+919800000001"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.MentorLoginResponse](t, w)
	assert.Equal(t, mentor.ID, resp.Mentor.ID)

	// unknown phone reads as not found, not as a credential failure
	w = doJSON(t, router, http.MethodPost, "/api/v1/mentor/loginMentor",
		models.MentorLoginRequest{PhoneNumber: "+910000000000"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMentorListPagination(t *testing.T) {
	router := newTestRouter()
	for i := 0; i < 15; i++ {
		createMentor(t, router, "+9198000000"+string(rune('a'+i)))
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/mentor/getAllMentors?limit=10&offset=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[models.MentorList](t, w)
	assert.Len(t, list.Mentors, 5)
	assert.Equal(t, 15, list.Total)
	assert.Equal(t, 10, list.Limit)
	assert.Equal(t, 10, list.Offset)
}

func TestMenteeLoginEnvelope(t *testing.T) {
	router := newTestRouter()
	mentee := createMentee(t, router, "+919800000101")

	w := doJSON(t, router, http.MethodPost, "/api/v1/mentee/loginMentee",
		models.MenteeLoginRequest{PhoneNumber: "+919800000101"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.MenteeLoginResponse](t, w)
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, mentee.ID, resp.Mentee.ID)
}

func TestAdminListIsBareArray(t *testing.T) {
	router := newTestRouter()
	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/createAdmin", models.CreateAdminRequest{
		Name:        "Ops Admin",
		Email:       "admin@example.com",
		PhoneNumber: "+919800000201",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/admin/getAllAdmins", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(w.Body.String()), "["))
	admins := decode[[]models.Admin](t, w)
	assert.Len(t, admins, 1)
}

func TestMeetingCreateAndFilter(t *testing.T) {
	router := newTestRouter()
	mentor := createMentor(t, router, "+919800000001")
	mentee := createMentee(t, router, "+919800000101")

	w := doJSON(t, router, http.MethodPost, "/api/v1/meeting/createMeeting", models.CreateMeetingRequest{
		MentorID:          mentor.ID,
		MenteeID:          mentee.ID,
		ScheduledDatetime: "2025-07-19T14:00:00Z",
		DurationMinutes:   60,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	meeting := decode[models.Meeting](t, w)
	assert.Equal(t, models.StatusScheduled, meeting.Status)
	assert.True(t, strings.HasPrefix(meeting.MeetingLink, "https://meet.skymentor.dev/"))

	// filtered by mentor
	w = doJSON(t, router, http.MethodGet, "/api/v1/meeting/getFilteredMeetings?mentorId="+mentor.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	filtered := decode[models.FilteredMeetings](t, w)
	assert.True(t, filtered.Success)
	require.Len(t, filtered.Data, 1)
	assert.Equal(t, meeting.ID, filtered.Data[0].ID)

	// filter that matches nothing yields an empty array, not null
	w = doJSON(t, router, http.MethodGet, "/api/v1/meeting/getFilteredMeetings?mentorId=missing", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestMeetingCreateRequiresParticipants(t *testing.T) {
	router := newTestRouter()
	mentor := createMentor(t, router, "+919800000001")

	w := doJSON(t, router, http.MethodPost, "/api/v1/meeting/createMeeting", models.CreateMeetingRequest{
		MentorID:          mentor.ID,
		MenteeID:          "missing",
		ScheduledDatetime: "2025-07-19T14:00:00Z",
		DurationMinutes:   60,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateMentorValidation(t *testing.T) {
	router := newTestRouter()
	w := doJSON(t, router, http.MethodPost, "/api/v1/mentor/createMentor",
		map[string]any{"first_name": "NoPhone"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestHealthcheck(t *testing.T) {
	router := newTestRouter()
	w := doJSON(t, router, http.MethodGet, "/api/healthcheck", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

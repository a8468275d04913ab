package api_test

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/skymentor/skymentor-client/internal/api"
	"github.com/skymentor/skymentor-client/internal/models"
	"github.com/skymentor/skymentor-client/pkg/errors"
	"github.com/skymentor/skymentor-client/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.InitializeForTesting()
	os.Exit(m.Run())
}

// recordedRequest captures what the client put on the wire
type recordedRequest struct {
	method string
	path   string
	query  string
	body   string
}

// fakeBackend serves a canned response and records the request
func fakeBackend(t *testing.T, status int, response string) (*httptest.Server, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.body = string(body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

const mentorJSON = `{
	"id": "m1",
	"first_name": "Sarah",
	"last_name": "Johnson",
	"email": "sarah@example.com",
	"phone_number": "+919800000001",
	"mentoring_fee": 1500,
	"created_at": "2025-07-01T10:00:00Z"
}`

func TestMentorClient_ListQueryString(t *testing.T) {
	srv, rec := fakeBackend(t, http.StatusOK,
		`{"mentors": [`+mentorJSON+`], "total": 25, "limit": 10, "offset": 20}`)

	mentors := api.NewMentorClient(api.NewClient(srv.URL, nil))
	list, err := mentors.List(context.Background(), 10, api.OffsetForPage(3, 10))
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/api/v1/mentor/getAllMentors", rec.path)
	assert.Equal(t, "limit=10&offset=20", rec.query)
	assert.Equal(t, 25, list.Total)
	assert.Equal(t, 3, api.PageCount(list.Total, 10))
}

func TestMentorClient_ListNormalizesMissingMentors(t *testing.T) {
	srv, _ := fakeBackend(t, http.StatusOK, `{"total": 0, "limit": 10, "offset": 0}`)

	mentors := api.NewMentorClient(api.NewClient(srv.URL, nil))
	list, err := mentors.List(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.NotNil(t, list.Mentors)
	assert.Empty(t, list.Mentors)
}

func TestMentorClient_LoginUnwrapsEnvelope(t *testing.T) {
	srv, rec := fakeBackend(t, http.StatusOK, `{"mentor": `+mentorJSON+`}`)

	mentors := api.NewMentorClient(api.NewClient(srv.URL, nil))
	mentor, err := mentors.Login(context.Background(), "+919800000001")
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/mentor/loginMentor", rec.path)
	assert.JSONEq(t, `{"phone_number": "+919800000001"}`, rec.body)
	assert.Equal(t, "m1", mentor.ID)
	assert.Equal(t, "Sarah Johnson", mentor.DisplayName())
}

func TestMentorClient_LoginNotFound(t *testing.T) {
	srv, _ := fakeBackend(t, http.StatusNotFound, `{"error": "Mentor not found"}`)

	mentors := api.NewMentorClient(api.NewClient(srv.URL, nil))
	_, err := mentors.Login(context.Background(), "+910000000000")
	assert.True(t, errors.Is(err, errors.ErrNotFound))

	var apiErr *errors.APIError
	require.True(t, stderrors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestMentorClient_UpdateSerializesOnlySetFields(t *testing.T) {
	srv, rec := fakeBackend(t, http.StatusOK, mentorJSON)

	bio := "A320 captain"
	mentors := api.NewMentorClient(api.NewClient(srv.URL, nil))
	_, err := mentors.Update(context.Background(), "m1", &models.MentorPatch{ProfileBio: &bio})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/api/v1/mentor/updateMentorById/m1", rec.path)
	assert.JSONEq(t, `{"profile_bio": "A320 captain"}`, rec.body)
}

func TestMentorClient_DeleteChecksAcknowledgement(t *testing.T) {
	srv, rec := fakeBackend(t, http.StatusOK, `{"success": true}`)

	mentors := api.NewMentorClient(api.NewClient(srv.URL, nil))
	require.NoError(t, mentors.Delete(context.Background(), "m1"))
	assert.Equal(t, "/api/v1/mentor/deleteMentorById/m1", rec.path)

	srv2, _ := fakeBackend(t, http.StatusOK, `{"success": false}`)
	mentors2 := api.NewMentorClient(api.NewClient(srv2.URL, nil))
	err := mentors2.Delete(context.Background(), "m1")
	assert.True(t, errors.Is(err, errors.ErrInternal))
}

func TestMentorClient_MalformedResponseIsDecodeError(t *testing.T) {
	// 2xx body missing required fields must fail at the boundary
	srv, _ := fakeBackend(t, http.StatusOK, `{"id": "m1"}`)

	mentors := api.NewMentorClient(api.NewClient(srv.URL, nil))
	_, err := mentors.GetByID(context.Background(), "m1")
	require.Error(t, err)

	var decodeErr *errors.DecodeError
	assert.True(t, stderrors.As(err, &decodeErr))
}

func TestMentorClient_NonJSONResponseIsDecodeError(t *testing.T) {
	srv, _ := fakeBackend(t, http.StatusOK, `<html>proxy error page</html>`)

	mentors := api.NewMentorClient(api.NewClient(srv.URL, nil))
	_, err := mentors.GetByID(context.Background(), "m1")

	var decodeErr *errors.DecodeError
	assert.True(t, stderrors.As(err, &decodeErr))
}

func TestMenteeClient_LoginReturnsInnerRecord(t *testing.T) {
	srv, rec := fakeBackend(t, http.StatusOK, `{
		"message": "Login successful",
		"mentee": {
			"id": "e1",
			"full_name": "Aisha Khan",
			"email": "aisha@example.com",
			"phone_number": "+919800000101",
			"created_at": "2025-07-01T10:00:00Z"
		}
	}`)

	mentees := api.NewMenteeClient(api.NewClient(srv.URL, nil))
	mentee, err := mentees.Login(context.Background(), "+919800000101")
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/mentee/loginMentee", rec.path)
	assert.Equal(t, "e1", mentee.ID)
	assert.Equal(t, "Aisha Khan", mentee.FullName)
}

func TestAdminClient_ListIsBareArray(t *testing.T) {
	srv, rec := fakeBackend(t, http.StatusOK, `[{
		"id": "a1",
		"name": "Ops Admin",
		"email": "admin@example.com",
		"phone_number": "+919800000201",
		"created_at": "2025-07-01T10:00:00Z"
	}]`)

	admins := api.NewAdminClient(api.NewClient(srv.URL, nil))
	list, err := admins.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/admin/getAllAdmins", rec.path)
	require.Len(t, list, 1)
	assert.Equal(t, "Ops Admin", list[0].Name)
}

func TestAdminClient_ListValidatesElements(t *testing.T) {
	// an element missing required fields fails at the boundary
	srv, _ := fakeBackend(t, http.StatusOK, `[{"id": "a1"}]`)

	admins := api.NewAdminClient(api.NewClient(srv.URL, nil))
	_, err := admins.List(context.Background())
	require.Error(t, err)

	var decodeErr *errors.DecodeError
	assert.True(t, stderrors.As(err, &decodeErr))
}

func TestAdminClient_ListNormalizesNull(t *testing.T) {
	srv, _ := fakeBackend(t, http.StatusOK, `null`)

	admins := api.NewAdminClient(api.NewClient(srv.URL, nil))
	list, err := admins.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestMeetingClient_FilteredQueryAndNormalization(t *testing.T) {
	srv, rec := fakeBackend(t, http.StatusOK, `{"success": true}`)

	meetings := api.NewMeetingClient(api.NewClient(srv.URL, nil))
	resp, err := meetings.Filtered(context.Background(), "m1", "")
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/meeting/getFilteredMeetings", rec.path)
	assert.Equal(t, "mentorId=m1", rec.query)
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
}

func TestClient_ServerErrorMapsToInternal(t *testing.T) {
	srv, _ := fakeBackend(t, http.StatusInternalServerError, `{"error": "boom"}`)

	mentors := api.NewMentorClient(api.NewClient(srv.URL, nil))
	_, err := mentors.List(context.Background(), 10, 0)
	assert.True(t, errors.Is(err, errors.ErrInternal))
}

func TestClient_ContextCancellation(t *testing.T) {
	srv, _ := fakeBackend(t, http.StatusOK, mentorJSON)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mentors := api.NewMentorClient(api.NewClient(srv.URL, nil))
	_, err := mentors.GetByID(ctx, "m1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOffsetForPage(t *testing.T) {
	assert.Equal(t, 0, api.OffsetForPage(1, 10))
	assert.Equal(t, 20, api.OffsetForPage(3, 10))
	assert.Equal(t, 0, api.OffsetForPage(0, 10))
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, api.PageCount(0, 10))
	assert.Equal(t, 1, api.PageCount(1, 10))
	assert.Equal(t, 3, api.PageCount(25, 10))
	assert.Equal(t, 2, api.PageCount(20, 10))
}

package cache_test

import (
	"context"
	"testing"

	"github.com/skymentor/skymentor-client/internal/cache"
	"github.com/skymentor/skymentor-client/internal/models"
	"github.com/skymentor/skymentor-client/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMentorSource struct {
	mock.Mock
}

func (m *MockMentorSource) List(ctx context.Context, limit, offset int) (*models.MentorList, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MentorList), args.Error(1)
}

func testMentor(id, first string) models.Mentor {
	return models.Mentor{
		ID:          id,
		FirstName:   first,
		LastName:    "Pilot",
		Email:       first + "@example.com",
		PhoneNumber: "+91000000000" + id,
		CreatedAt:   "2025-07-01T10:00:00Z",
	}
}

func TestMentorCache_InitializeAndRead(t *testing.T) {
	source := new(MockMentorSource)
	source.On("List", mock.Anything, 100, 0).Return(&models.MentorList{
		Mentors: []models.Mentor{testMentor("1", "Sarah"), testMentor("2", "Raj")},
		Total:   2, Limit: 100, Offset: 0,
	}, nil).Once()

	mc := cache.NewMentorCache(source, 600)
	defer mc.Close()

	require.NoError(t, mc.Initialize(context.Background()))
	assert.True(t, mc.IsReady())

	all, err := mc.All()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mentor, err := mc.GetByID("2")
	require.NoError(t, err)
	assert.Equal(t, "Raj Pilot", mentor.DisplayName())

	source.AssertExpectations(t)
}

func TestMentorCache_PaginatedRefresh(t *testing.T) {
	source := new(MockMentorSource)
	firstPage := make([]models.Mentor, 100)
	for i := range firstPage {
		firstPage[i] = testMentor("p"+string(rune('a'+i%26))+string(rune('0'+i/26)), "M")
	}
	source.On("List", mock.Anything, 100, 0).Return(&models.MentorList{
		Mentors: firstPage, Total: 101, Limit: 100, Offset: 0,
	}, nil).Once()
	source.On("List", mock.Anything, 100, 100).Return(&models.MentorList{
		Mentors: []models.Mentor{testMentor("last", "Final")}, Total: 101, Limit: 100, Offset: 100,
	}, nil).Once()

	mc := cache.NewMentorCache(source, 600)
	defer mc.Close()

	require.NoError(t, mc.Initialize(context.Background()))

	all, err := mc.All()
	require.NoError(t, err)
	assert.Len(t, all, 101)

	source.AssertExpectations(t)
}

func TestMentorCache_ListServesPagesFromSnapshot(t *testing.T) {
	source := new(MockMentorSource)
	source.On("List", mock.Anything, 100, 0).Return(&models.MentorList{
		Mentors: []models.Mentor{
			testMentor("1", "Sarah"),
			testMentor("2", "Raj"),
			testMentor("3", "Meera"),
		},
		Total: 3, Limit: 100, Offset: 0,
	}, nil).Once()

	mc := cache.NewMentorCache(source, 600)
	defer mc.Close()
	require.NoError(t, mc.Initialize(context.Background()))

	page, err := mc.List(context.Background(), 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Mentors, 1)
	assert.Equal(t, "3", page.Mentors[0].ID)

	// offset past the end yields an empty page, not nil
	page, err = mc.List(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.NotNil(t, page.Mentors)
	assert.Empty(t, page.Mentors)

	// only the initial population hit the backend
	source.AssertExpectations(t)
}

func TestMentorCache_InitializeFailure(t *testing.T) {
	source := new(MockMentorSource)
	source.On("List", mock.Anything, 100, 0).Return(nil, errors.InternalError("backend down")).Once()

	mc := cache.NewMentorCache(source, 600)
	defer mc.Close()

	assert.Error(t, mc.Initialize(context.Background()))
	assert.False(t, mc.IsReady())

	_, err := mc.All()
	assert.Error(t, err)
}

func TestMentorCache_GetByID_NotFound(t *testing.T) {
	source := new(MockMentorSource)
	source.On("List", mock.Anything, 100, 0).Return(&models.MentorList{
		Mentors: []models.Mentor{testMentor("1", "Sarah")}, Total: 1,
	}, nil).Once()

	mc := cache.NewMentorCache(source, 600)
	defer mc.Close()

	require.NoError(t, mc.Initialize(context.Background()))

	_, err := mc.GetByID("missing")
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

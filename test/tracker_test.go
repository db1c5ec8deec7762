package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/2beens/gymtracker/internal/tracker/analytics"
	"github.com/2beens/gymtracker/internal/tracker/api"
	"github.com/2beens/gymtracker/internal/tracker/model"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) doRequest(
	ctx context.Context,
	method, path string,
	body any,
	withToken bool,
) (int, []byte) {
	var reqBody io.Reader
	if body != nil {
		bodyJson, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reqBody = bytes.NewReader(bodyJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "GymTracker/1.0 test")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withToken {
		req.Header.Set("Authorization", "Bearer "+testAPIToken)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) TestIdentityBootstrap() {
	ctx := context.Background()

	code, body := s.doRequest(ctx, http.MethodGet, "/user", nil, false)
	require.Equal(s.T(), http.StatusOK, code)

	var user model.User
	require.NoError(s.T(), json.Unmarshal(body, &user))
	assert.Equal(s.T(), "42", user.ID)
	assert.Equal(s.T(), "Иван Петров", user.Name)
	assert.Equal(s.T(), "Москва", user.City)

	code, body = s.doRequest(ctx, http.MethodGet, "/friends", nil, false)
	require.Equal(s.T(), http.StatusOK, code)
	var friends []model.Friend
	require.NoError(s.T(), json.Unmarshal(body, &friends))
	assert.Len(s.T(), friends, 2)
}

func (s *IntegrationTestSuite) TestCatalogSeededFromPostgres() {
	ctx := context.Background()

	code, body := s.doRequest(ctx, http.MethodGet, "/exercises", nil, false)
	require.Equal(s.T(), http.StatusOK, code)
	var exercises []model.Exercise
	require.NoError(s.T(), json.Unmarshal(body, &exercises))
	require.GreaterOrEqual(s.T(), len(exercises), 3)

	code, body = s.doRequest(ctx, http.MethodGet, "/workouts/catalog-1", nil, false)
	require.Equal(s.T(), http.StatusOK, code)
	var workout model.Workout
	require.NoError(s.T(), json.Unmarshal(body, &workout))
	assert.Equal(s.T(), model.OriginCatalog, workout.Origin)
	require.Len(s.T(), workout.Exercises, 1)
	assert.Len(s.T(), workout.Exercises[0].Sets, 2)
	require.Len(s.T(), workout.Participants, 1)
	assert.Equal(s.T(), model.ParticipantPending, workout.Participants[0].Status)
}

func (s *IntegrationTestSuite) TestMutatingRoutesRequireToken() {
	ctx := context.Background()

	code, _ := s.doRequest(ctx, http.MethodPost, "/exercises", model.Exercise{Name: "Тяга"}, false)
	assert.Equal(s.T(), http.StatusUnauthorized, code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, serverEndpoint+"/exercises", bytes.NewBufferString(`{"name":"x"}`))
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "GymTracker/1.0 test")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer wrong")
	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()
	assert.Equal(s.T(), http.StatusUnauthorized, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestWorkoutFlowAndStats() {
	ctx := context.Background()

	code, body := s.doRequest(ctx, http.MethodPost, "/workouts/user", api.NewWorkoutRequest{
		Title: "Грудь",
		Date:  "2024-03-05",
		Time:  "19:30",
		Gym:   "Зал на Ленина",
		Exercises: []api.WorkoutExerciseRequest{
			{
				ExerciseID: "bench",
				Sets: []api.SetRequest{
					{Reps: model.Float(6), Weight: model.Float(94)},
					{Reps: model.Float(6), Weight: model.Float(94)},
				},
			},
		},
		FriendIDs: []string{"f-2"},
	}, true)
	require.Equal(s.T(), http.StatusCreated, code, string(body))

	var workout model.Workout
	require.NoError(s.T(), json.Unmarshal(body, &workout))
	assert.Equal(s.T(), model.OriginUser, workout.Origin)
	assert.Equal(s.T(), "42", workout.CreatedBy)
	require.Len(s.T(), workout.Participants, 1)
	assert.Equal(s.T(), "Олег", workout.Participants[0].User.Name)

	code, body = s.doRequest(ctx, http.MethodGet, "/exercises/bench/stats", nil, false)
	require.Equal(s.T(), http.StatusOK, code)
	var stats analytics.ExerciseStats
	require.NoError(s.T(), json.Unmarshal(body, &stats))
	assert.Equal(s.T(), 4, stats.TotalSets)
	assert.Equal(s.T(), "6-10", stats.Reps)
	assert.Equal(s.T(), "40-100 кг", stats.Weight)
	require.Len(s.T(), stats.History, 2)
	assert.Equal(s.T(), workout.ID, stats.History[0].WorkoutID)
	assert.Equal(s.T(), "catalog-1", stats.History[1].WorkoutID)

	code, _ = s.doRequest(ctx, http.MethodPost, "/workouts/catalog-1/invite/respond", api.InviteResponseRequest{
		Status: model.ParticipantAccepted,
	}, true)
	assert.Equal(s.T(), http.StatusOK, code)

	code, body = s.doRequest(ctx, http.MethodDelete, "/workouts/user/"+workout.ID, nil, true)
	require.Equal(s.T(), http.StatusOK, code)
	var deleted api.DeleteResponse
	require.NoError(s.T(), json.Unmarshal(body, &deleted))
	assert.True(s.T(), deleted.Deleted)
}

func (s *IntegrationTestSuite) TestOnboardingPersistedInRedis() {
	ctx := context.Background()

	code, body := s.doRequest(ctx, http.MethodPost, "/onboarding/complete", nil, true)
	require.Equal(s.T(), http.StatusOK, code)

	var onboarding api.OnboardingResponse
	require.NoError(s.T(), json.Unmarshal(body, &onboarding))
	assert.False(s.T(), onboarding.ShowModal)

	flag, err := s.redisClient.Get(ctx, "gymtracker::onboarded").Result()
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "true", flag)
}

func (s *IntegrationTestSuite) TestMCPEndpoint() {
	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{Name: "integration-test", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: serverEndpoint + "/mcp"}, nil)
	require.NoError(s.T(), err)
	defer session.Close()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "list_exercises",
		Arguments: map[string]any{"muscle_group": "Ноги"},
	})
	require.NoError(s.T(), err)
	require.False(s.T(), res.IsError)
	require.Len(s.T(), res.Content, 1)

	var exercises []model.Exercise
	require.NoError(s.T(), json.Unmarshal([]byte(res.Content[0].(*mcp.TextContent).Text), &exercises))
	require.Len(s.T(), exercises, 1)
	assert.Equal(s.T(), "squat", exercises[0].ID)
}

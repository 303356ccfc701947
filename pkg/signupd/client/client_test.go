package client

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/mergington/signupd/pkg/actdb/seed"
	"github.com/mergington/signupd/pkg/actdb/stor"
	"github.com/mergington/signupd/pkg/signupd/webapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	catalog := seed.DefaultActivities()
	activitiesController := webapi.NewActivitiesController(
		stor.NewInMemoryActivityStor(catalog, false), catalog)

	e := echo.New()
	e.GET("/activities", activitiesController.GetActivities)
	e.POST("/activities/:activity_name/signup", activitiesController.Signup)
	e.DELETE("/activities/:activity_name/unregister", activitiesController.Unregister)
	e.POST("/api/reset", activitiesController.Reset)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	return srv
}

func TestClientListActivities(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL)

	activities, err := c.ListActivities()
	require.NoErrorf(t, err, "ListActivities failed: %s", err)
	require.Len(t, activities, 9)

	chess, ok := activities["Chess Club"]
	require.True(t, ok)
	assert.Equal(t, 12, chess.MaxParticipants)
	assert.Contains(t, chess.Participants, "michael@mergington.edu")
}

func TestClientSignupAndUnregister(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL)

	msg, err := c.Signup("Chess Club", "newstudent@mergington.edu")
	require.NoErrorf(t, err, "Signup failed: %s", err)
	assert.Equal(t, "Signed up newstudent@mergington.edu for Chess Club", msg)

	activities, err := c.ListActivities()
	require.NoError(t, err)
	assert.Contains(t, activities["Chess Club"].Participants, "newstudent@mergington.edu")

	msg, err = c.Unregister("Chess Club", "newstudent@mergington.edu")
	require.NoErrorf(t, err, "Unregister failed: %s", err)
	assert.Equal(t, "Unregistered newstudent@mergington.edu from Chess Club", msg)

	activities, err = c.ListActivities()
	require.NoError(t, err)
	assert.NotContains(t, activities["Chess Club"].Participants, "newstudent@mergington.edu")
}

func TestClientEncodesActivityNamesAndEmails(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL)

	msg, err := c.Signup("Programming Class", "test+tag@mergington.edu")
	require.NoErrorf(t, err, "Signup failed: %s", err)
	assert.Equal(t, "Signed up test+tag@mergington.edu for Programming Class", msg)

	activities, err := c.ListActivities()
	require.NoError(t, err)
	assert.Contains(t, activities["Programming Class"].Participants, "test+tag@mergington.edu")

	_, err = c.Unregister("Programming Class", "test+tag@mergington.edu")
	require.NoError(t, err)
}

func TestClientErrorResponses(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL)

	_, err := c.Signup("Nonexistent Activity", "student@mergington.edu")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(HTTP Status: 404)")
	assert.Contains(t, err.Error(), "Activity not found")

	_, err = c.Signup("Chess Club", "michael@mergington.edu")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(HTTP Status: 400)")
	assert.Contains(t, err.Error(), "Student is already signed up")

	_, err = c.Unregister("Chess Club", "notregistered@mergington.edu")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(HTTP Status: 404)")
	assert.Contains(t, err.Error(), "Student is not registered for this activity")
}

func TestClientReset(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL)

	_, err := c.Signup("Drama Club", "transient@mergington.edu")
	require.NoError(t, err)

	require.NoError(t, c.Reset())

	activities, err := c.ListActivities()
	require.NoError(t, err)
	assert.NotContains(t, activities["Drama Club"].Participants, "transient@mergington.edu")
}

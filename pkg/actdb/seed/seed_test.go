package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultActivities(t *testing.T) {
	activities := DefaultActivities()
	require.Len(t, activities, 9)

	byName := make(map[string]bool)
	for _, activity := range activities {
		byName[activity.Name] = true
		assert.NotEmpty(t, activity.Description)
		assert.NotEmpty(t, activity.Schedule)
		assert.Greater(t, activity.MaxParticipants, 0)
		assert.Len(t, activity.Participants, 2)
	}

	assert.True(t, byName["Chess Club"])
	assert.True(t, byName["Science Club"])
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	activities, err := Load("")
	require.NoError(t, err)
	assert.Len(t, activities, 9)

	activities, err = Load(filepath.Join(t.TempDir(), "no-such-file.yaml"))
	require.NoError(t, err)
	assert.Len(t, activities, 9)
}

func TestLoadFromYaml(t *testing.T) {
	catalog := `
activities:
  - name: Robotics Club
    description: Build and program robots
    schedule: Mondays, 3:30 PM - 5:00 PM
    max_participants: 10
    participants:
      - alice@mergington.edu
  - name: Debate Team
    description: Practice argumentation and public speaking
    schedule: Thursdays, 4:00 PM - 5:30 PM
    max_participants: 16
`

	path := filepath.Join(t.TempDir(), "activities.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalog), 0644))

	activities, err := Load(path)
	require.NoErrorf(t, err, "Load failed: %s", err)
	require.Len(t, activities, 2)

	assert.Equal(t, "Robotics Club", activities[0].Name)
	assert.Equal(t, "Build and program robots", activities[0].Description)
	assert.Equal(t, 10, activities[0].MaxParticipants)
	require.Len(t, activities[0].Participants, 1)
	assert.Equal(t, "alice@mergington.edu", activities[0].Participants[0].Email)

	assert.Equal(t, "Debate Team", activities[1].Name)
	assert.Empty(t, activities[1].Participants)
}

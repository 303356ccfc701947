// Package seed holds the activity catalog the registry is populated
// with at startup and restored to on reset. The built-in catalog can be
// replaced with an activities.yaml file.
package seed

import (
	"os"

	"github.com/mergington/signupd/pkg/actdb/model"
	"github.com/spf13/viper"
)

type catalogEntry struct {
	Name            string   `mapstructure:"name"`
	Description     string   `mapstructure:"description"`
	Schedule        string   `mapstructure:"schedule"`
	MaxParticipants int      `mapstructure:"max_participants"`
	Participants    []string `mapstructure:"participants"`
}

// Load returns the activity catalog. When path names a readable yaml
// file its activities list replaces the built-in defaults; an empty
// path (or missing file) falls back to DefaultActivities.
func Load(path string) ([]model.Activity, error) {
	if path == "" {
		return DefaultActivities(), nil
	}

	if _, err := os.Stat(path); err != nil {
		return DefaultActivities(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var entries []catalogEntry
	if err := v.UnmarshalKey("activities", &entries); err != nil {
		return nil, err
	}

	activities := make([]model.Activity, 0, len(entries))
	for _, entry := range entries {
		activity := model.Activity{
			Name:            entry.Name,
			Description:     entry.Description,
			Schedule:        entry.Schedule,
			MaxParticipants: entry.MaxParticipants,
		}
		for _, email := range entry.Participants {
			activity.Participants = append(activity.Participants, model.Participant{Email: email})
		}
		activities = append(activities, activity)
	}

	return activities, nil
}

// DefaultActivities is the Mergington High School catalog.
func DefaultActivities() []model.Activity {
	return []model.Activity{
		newActivity("Chess Club",
			"Learn strategies and compete in chess tournaments",
			"Fridays, 3:30 PM - 5:00 PM", 12,
			"michael@mergington.edu", "daniel@mergington.edu"),
		newActivity("Programming Class",
			"Learn programming fundamentals and build software projects",
			"Tuesdays and Thursdays, 3:30 PM - 4:30 PM", 20,
			"emma@mergington.edu", "sophia@mergington.edu"),
		newActivity("Gym Class",
			"Physical education and sports activities",
			"Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM", 30,
			"john@mergington.edu", "olivia@mergington.edu"),
		newActivity("Soccer Team",
			"Join the school soccer team and compete in local leagues",
			"Tuesdays and Thursdays, 4:00 PM - 5:30 PM", 18,
			"lucas@mergington.edu", "mia@mergington.edu"),
		newActivity("Basketball Club",
			"Practice basketball skills and play friendly matches",
			"Wednesdays, 3:30 PM - 5:00 PM", 15,
			"liam@mergington.edu", "ava@mergington.edu"),
		newActivity("Drama Club",
			"Participate in school plays and improve acting skills",
			"Mondays, 4:00 PM - 5:30 PM", 25,
			"noah@mergington.edu", "isabella@mergington.edu"),
		newActivity("Art Workshop",
			"Explore painting, drawing, and sculpture techniques",
			"Fridays, 2:00 PM - 3:30 PM", 20,
			"amelia@mergington.edu", "benjamin@mergington.edu"),
		newActivity("Math Olympiad",
			"Prepare for math competitions and solve challenging problems",
			"Thursdays, 3:30 PM - 5:00 PM", 15,
			"charlotte@mergington.edu", "ethan@mergington.edu"),
		newActivity("Science Club",
			"Conduct experiments and explore scientific concepts",
			"Wednesdays, 4:00 PM - 5:00 PM", 20,
			"harper@mergington.edu", "jackson@mergington.edu"),
	}
}

func newActivity(name, description, schedule string, maxParticipants int, emails ...string) model.Activity {
	activity := model.Activity{
		Name:            name,
		Description:     description,
		Schedule:        schedule,
		MaxParticipants: maxParticipants,
	}

	for _, email := range emails {
		activity.Participants = append(activity.Participants, model.Participant{Email: email})
	}

	return activity
}

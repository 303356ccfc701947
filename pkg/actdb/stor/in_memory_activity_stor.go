package stor

import (
	"sort"
	"sync"

	"github.com/mergington/signupd/pkg/actdb/model"
)

// InMemoryActivityStor keeps the registry in a map guarded by a RWMutex.
// It is used by tests and by deployments that don't want a database file.
type InMemoryActivityStor struct {
	mu              sync.RWMutex
	activities      map[string]*model.Activity
	nextID          int
	enforceCapacity bool
}

func NewInMemoryActivityStor(seed []model.Activity, enforceCapacity bool) *InMemoryActivityStor {
	s := &InMemoryActivityStor{
		activities:      make(map[string]*model.Activity),
		nextID:          1,
		enforceCapacity: enforceCapacity,
	}

	_ = s.Reset(seed)

	return s
}

func (s *InMemoryActivityStor) ListActivities() ([]model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activities := make([]model.Activity, 0, len(s.activities))
	for _, activity := range s.activities {
		activities = append(activities, copyActivity(activity))
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Name < activities[j].Name
	})

	return activities, nil
}

func (s *InMemoryActivityStor) GetActivityByName(name string) (*model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activity, ok := s.activities[name]
	if !ok {
		return nil, ErrActivityNotFound
	}

	a := copyActivity(activity)
	return &a, nil
}

func (s *InMemoryActivityStor) Signup(activityName, email string) (*model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[activityName]
	if !ok {
		return nil, ErrActivityNotFound
	}

	if activity.HasParticipant(email) {
		return nil, ErrAlreadyRegistered
	}

	if s.enforceCapacity && len(activity.Participants) >= activity.MaxParticipants {
		return nil, ErrActivityFull
	}

	activity.Participants = append(activity.Participants, model.Participant{
		ID:         s.nextID,
		ActivityID: activity.ID,
		Email:      email,
	})
	s.nextID++

	a := copyActivity(activity)
	return &a, nil
}

func (s *InMemoryActivityStor) Unregister(activityName, email string) (*model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[activityName]
	if !ok {
		return nil, ErrActivityNotFound
	}

	if !activity.HasParticipant(email) {
		return nil, ErrNotRegistered
	}

	remaining := activity.Participants[:0]
	for _, p := range activity.Participants {
		if p.Email != email {
			remaining = append(remaining, p)
		}
	}
	activity.Participants = remaining

	a := copyActivity(activity)
	return &a, nil
}

func (s *InMemoryActivityStor) Reset(seed []model.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activities = make(map[string]*model.Activity)
	s.nextID = 1

	for _, activity := range seed {
		a := copyActivity(&activity)
		a.ID = s.nextID
		s.nextID++
		for i := range a.Participants {
			a.Participants[i].ID = s.nextID
			a.Participants[i].ActivityID = a.ID
			s.nextID++
		}
		s.activities[a.Name] = &a
	}

	return nil
}

func copyActivity(activity *model.Activity) model.Activity {
	a := *activity
	a.Participants = make([]model.Participant, len(activity.Participants))
	copy(a.Participants, activity.Participants)
	return a
}

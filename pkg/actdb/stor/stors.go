package stor

import (
	"github.com/mergington/signupd/pkg/actdb/model"
	"gorm.io/gorm"
)

// ActivityStor mediates all access to the activity registry. Activities
// themselves are fixed after seeding; only roster membership changes at
// runtime.
type ActivityStor interface {
	ListActivities() ([]model.Activity, error)
	GetActivityByName(name string) (*model.Activity, error)
	Signup(activityName, email string) (*model.Activity, error)
	Unregister(activityName, email string) (*model.Activity, error)
	Reset(seed []model.Activity) error
}

type Stors struct {
	ActivityStor ActivityStor
}

func NewGormStors(db *gorm.DB, enforceCapacity bool) *Stors {
	return &Stors{
		ActivityStor: NewGormActivityStor(db, enforceCapacity),
	}
}

func NewInMemoryStors(seed []model.Activity, enforceCapacity bool) *Stors {
	return &Stors{
		ActivityStor: NewInMemoryActivityStor(seed, enforceCapacity),
	}
}

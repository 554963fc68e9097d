package lifecycle

import (
	"time"

	"github.com/google/uuid"
)

// Clock abstracts wall-clock reads so tests can pin time.
type Clock interface {
	Now() time.Time
}

// systemClock is the production Clock.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// IDGenerator produces identifiers for new alarms.
type IDGenerator interface {
	NewID() string
}

// uuidGenerator is the production IDGenerator.
type uuidGenerator struct{}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

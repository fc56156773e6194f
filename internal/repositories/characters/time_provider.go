package characters

import "time"

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks github.com/ntuteepl/finalterm-LuoJuneChi/internal/repositories/characters TimeProvider

// TimeProvider stamps stored snapshots
type TimeProvider interface {
	Now() time.Time
}

type RealTimeProvider struct{}

func (r *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

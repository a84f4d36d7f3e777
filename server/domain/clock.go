package domain

import "time"

//go:generate go tool mockgen -destination=./mocks/clock_mock.go -package=mocks . Clock

// Clock は経過時間の計測に使う時計です。
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

type systemClock struct{}

var _ Clock = systemClock{}

func (systemClock) Now() time.Time                  { return time.Now() }
func (systemClock) Since(t time.Time) time.Duration { return time.Since(t) }

// NewSystemClock は壁時計を返します。
func NewSystemClock() Clock {
	return systemClock{}
}

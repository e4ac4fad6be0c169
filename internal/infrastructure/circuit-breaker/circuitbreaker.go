package circuitbreaker

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

const (
	minRequests   = 3
	failureRatio  = 0.6
	openTimeout   = 30 * time.Second
	halfOpenProbe = 1
)

// CreateCircuitBreaker opens once at least 60% of three or more calls in
// the current window have failed, and probes again after openTimeout.
func CreateCircuitBreaker(name string) *gobreaker.CircuitBreaker[[]byte] {
	return gobreaker.NewCircuitBreaker[[]byte](settings(name, openTimeout))
}

func settings(name string, timeout time.Duration) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        name,
		MaxRequests: halfOpenProbe,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= failureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn().Str("component", "CircuitBreaker").Str("name", name).
				Str("from", from.String()).Str("to", to.String()).Msg("state changed")
		},
	}
}

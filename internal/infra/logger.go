// README: Structured logger construction (zap).
package infra

import "go.uber.org/zap"

// NewLogger builds the process-wide logger. Production encoding; callers own
// the Sync on shutdown.
func NewLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

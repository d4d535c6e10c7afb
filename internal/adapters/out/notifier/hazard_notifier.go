// Package notifier provides the outbound adapter for hazard warnings.
// The domain raises warnings through the HazardNotifier port; this adapter
// turns them into structured log records.
package notifier

import (
	"log/slog"

	"stowage/internal/core/domain/model/kernel"
)

// SlogHazardNotifier logs hazard warnings via slog.
// Notifications are fire and forget: the adapter never fails and never
// blocks a load operation.
type SlogHazardNotifier struct {
	logger *slog.Logger
}

// NewSlogHazardNotifier creates a notifier writing to the given logger.
// A nil logger falls back to slog.Default().
func NewSlogHazardNotifier(logger *slog.Logger) *SlogHazardNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogHazardNotifier{logger: logger}
}

// NotifyHazard records a warning that the container's cargo has crossed
// half of its maximum payload.
func (n *SlogHazardNotifier) NotifyHazard(serialNumber kernel.SerialNumber) {
	n.logger.Warn("hazardous cargo above half of maximum payload",
		slog.String("serialNumber", serialNumber.String()),
	)
}

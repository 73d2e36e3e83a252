// Package geo abstracts the platform location capability: a provider that
// yields the current position within a bounded wait, with failures
// classified as denied, unsupported or generic error.
package geo

import (
	"context"
	"errors"
	"time"

	"storefront-gateway/models"
)

var (
	ErrPermissionDenied = errors.New("geo: permission denied")
	ErrUnsupported      = errors.New("geo: location not supported")
)

// Provider yields the device's current position. Implementations should
// honour ctx cancellation.
type Provider interface {
	CurrentPosition(ctx context.Context, highAccuracy bool) (models.Coordinates, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, highAccuracy bool) (models.Coordinates, error)

func (f ProviderFunc) CurrentPosition(ctx context.Context, highAccuracy bool) (models.Coordinates, error) {
	return f(ctx, highAccuracy)
}

// Static pins the position to fixed coordinates (kiosk deployments).
func Static(lat, lng float64) Provider {
	return ProviderFunc(func(context.Context, bool) (models.Coordinates, error) {
		return models.Coordinates{Latitude: lat, Longitude: lng}, nil
	})
}

// Classify maps a provider failure to a location status. A location failure
// is never fatal; it degrades to status text.
func Classify(err error) models.LocationStatus {
	switch {
	case err == nil:
		return models.LocationGranted
	case errors.Is(err, ErrPermissionDenied):
		return models.LocationDenied
	case errors.Is(err, ErrUnsupported):
		return models.LocationUnsupported
	default:
		return models.LocationError
	}
}

// Resolver wraps a provider with the bounded wait the storefront uses for
// location requests. A nil provider resolves to the unsupported status.
type Resolver struct {
	provider Provider
	timeout  time.Duration
}

func NewResolver(provider Provider, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Resolver{provider: provider, timeout: timeout}
}

// Resolve requests the current position with a high-accuracy hint and the
// configured timeout. The returned status classifies the outcome; it never
// silently retries.
func (r *Resolver) Resolve(ctx context.Context) (*models.Coordinates, models.LocationStatus, error) {
	if r.provider == nil {
		return nil, models.LocationUnsupported, ErrUnsupported
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	coords, err := r.provider.CurrentPosition(ctx, true)
	if err != nil {
		return nil, Classify(err), err
	}
	return &coords, models.LocationGranted, nil
}

package geo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-gateway/models"
)

func TestStaticProvider(t *testing.T) {
	resolver := NewResolver(Static(35.7, 51.4), time.Second)

	coords, status, err := resolver.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.LocationGranted, status)
	assert.Equal(t, 35.7, coords.Latitude)
	assert.Equal(t, 51.4, coords.Longitude)
}

func TestNilProviderIsUnsupported(t *testing.T) {
	resolver := NewResolver(nil, time.Second)

	coords, status, err := resolver.Resolve(context.Background())
	assert.Nil(t, coords)
	assert.Equal(t, models.LocationUnsupported, status)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestDeniedProvider(t *testing.T) {
	provider := ProviderFunc(func(context.Context, bool) (models.Coordinates, error) {
		return models.Coordinates{}, ErrPermissionDenied
	})
	resolver := NewResolver(provider, time.Second)

	coords, status, err := resolver.Resolve(context.Background())
	assert.Nil(t, coords)
	assert.Equal(t, models.LocationDenied, status)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestResolveBoundedWait(t *testing.T) {
	provider := ProviderFunc(func(ctx context.Context, _ bool) (models.Coordinates, error) {
		<-ctx.Done()
		return models.Coordinates{}, ctx.Err()
	})
	resolver := NewResolver(provider, 20*time.Millisecond)

	start := time.Now()
	coords, status, err := resolver.Resolve(context.Background())
	assert.Nil(t, coords)
	assert.Equal(t, models.LocationError, status)
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, models.LocationGranted, Classify(nil))
	assert.Equal(t, models.LocationDenied, Classify(ErrPermissionDenied))
	assert.Equal(t, models.LocationUnsupported, Classify(ErrUnsupported))
	assert.Equal(t, models.LocationError, Classify(errors.New("gps glitch")))
}

package store

import (
	"errors"
	"sync"

	"storefront-gateway/kvstore"
	"storefront-gateway/models"
)

const keyLocation = "last_location"

// Location is the single-slot holder for the last-known coordinates plus
// the status of the most recent location request. Coordinates are cached in
// the key-value store so they survive restarts.
type Location struct {
	mu     sync.Mutex
	kv     *kvstore.Store
	coords *models.Coordinates
	status models.LocationStatus
	errMsg string
}

// NewLocation hydrates the last-known coordinates from the cache when
// available. kv may be nil (tests).
func NewLocation(kv *kvstore.Store) *Location {
	l := &Location{kv: kv, status: models.LocationIdle}
	if kv != nil {
		var coords models.Coordinates
		if err := kv.GetJSON(keyLocation, &coords); err == nil {
			l.coords = &coords
			l.status = models.LocationGranted
		} else if !errors.Is(err, kvstore.ErrNotFound) {
			l.status = models.LocationIdle
		}
	}
	return l
}

// SetCoords overwrites the slot and persists the new value.
func (l *Location) SetCoords(coords models.Coordinates) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c := coords
	l.coords = &c
	l.status = models.LocationGranted
	l.errMsg = ""
	if l.kv != nil {
		_ = l.kv.PutJSON(keyLocation, coords)
	}
}

// SetStatus records the outcome of a failed or in-progress request without
// touching the cached coordinates.
func (l *Location) SetStatus(status models.LocationStatus, errMsg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.status = status
	l.errMsg = errMsg
}

// Coords returns the last-known coordinates, or nil when none were captured.
func (l *Location) Coords() *models.Coordinates {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.coords == nil {
		return nil
	}
	c := *l.coords
	return &c
}

func (l *Location) Status() (models.LocationStatus, string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status, l.errMsg
}

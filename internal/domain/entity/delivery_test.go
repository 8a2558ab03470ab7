package entity

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCoordinate_Valid(t *testing.T) {
	tests := []struct {
		name       string
		coordinate Coordinate
		want       bool
	}{
		{"Lagos", Coordinate{Latitude: 6.4550, Longitude: 3.3841}, true},
		{"north pole", Coordinate{Latitude: 90, Longitude: 0}, true},
		{"antimeridian", Coordinate{Latitude: 0, Longitude: -180}, true},
		{"latitude too high", Coordinate{Latitude: 90.0001, Longitude: 0}, false},
		{"latitude far out", Coordinate{Latitude: 500, Longitude: 999}, false},
		{"longitude too low", Coordinate{Latitude: 0, Longitude: -180.5}, false},
		{"NaN latitude", Coordinate{Latitude: math.NaN(), Longitude: 0}, false},
		{"NaN longitude", Coordinate{Latitude: 0, Longitude: math.NaN()}, false},
		{"infinite latitude", Coordinate{Latitude: math.Inf(1), Longitude: 0}, false},
		{"negative infinite longitude", Coordinate{Latitude: 0, Longitude: math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coordinate.Valid())
		})
	}
}

func TestDelivery_Assigned(t *testing.T) {
	delivery := &Delivery{}
	assert.False(t, delivery.Assigned())

	riderID := uuid.New()
	delivery.RiderID = &riderID
	assert.True(t, delivery.Assigned())
}

func TestDelivery_Terminal(t *testing.T) {
	delivery := &Delivery{IsDelivered: true}
	assert.True(t, delivery.Terminal())
}

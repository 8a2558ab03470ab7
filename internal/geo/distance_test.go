package geo

import (
	"testing"

	"dispatch/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name      string
		point1    entity.Coordinate
		point2    entity.Coordinate
		expected  float64
		tolerance float64
	}{
		{
			name:      "same point",
			point1:    entity.Coordinate{Latitude: 6.5244, Longitude: 3.3792},
			point2:    entity.Coordinate{Latitude: 6.5244, Longitude: 3.3792},
			expected:  0.0,
			tolerance: 0.001,
		},
		{
			name:      "one degree of latitude",
			point1:    entity.Coordinate{Latitude: 0, Longitude: 0},
			point2:    entity.Coordinate{Latitude: 1, Longitude: 0},
			expected:  111.19, // 6371 * pi / 180
			tolerance: 0.1,
		},
		{
			name:      "Lagos to Ibadan (approximately)",
			point1:    entity.Coordinate{Latitude: 6.5244, Longitude: 3.3792},
			point2:    entity.Coordinate{Latitude: 7.3775, Longitude: 3.9470},
			expected:  113.0,
			tolerance: 5.0,
		},
		{
			name:      "short hop within one city",
			point1:    entity.Coordinate{Latitude: 6.4281, Longitude: 3.4219},
			point2:    entity.Coordinate{Latitude: 6.4584, Longitude: 3.6015},
			expected:  20.0,
			tolerance: 2.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.point1, tt.point2)
			assert.InDelta(t, tt.expected, got, tt.tolerance)
		})
	}
}

func TestDistanceSymmetry(t *testing.T) {
	a := entity.Coordinate{Latitude: 9.0765, Longitude: 7.3986}
	b := entity.Coordinate{Latitude: 4.8156, Longitude: 7.0498}

	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestAirQualityIsValid(t *testing.T) {
	assert.False(t, AirQualityIsValid(AirQuality{}))
	assert.True(t, AirQualityIsValid(AirQuality{PM25: f(12)}))
	assert.True(t, AirQualityIsValid(AirQuality{CO: f(0)}), "a reported zero is still a report")
}

func TestValidPollutants(t *testing.T) {
	aq := AirQuality{PM10: f(30), O3: f(80)}
	assert.Equal(t, []Pollutant{PollutantPM10, PollutantO3}, ValidPollutants(aq))

	assert.Nil(t, ValidPollutants(AirQuality{}))
}

func TestPollutantIndex(t *testing.T) {
	tests := []struct {
		name     string
		aq       AirQuality
		p        Pollutant
		expected int
	}{
		{"pm25 at first breakpoint", AirQuality{PM25: f(10)}, PollutantPM25, 20},
		{"pm25 interpolated", AirQuality{PM25: f(15)}, PollutantPM25, 35},
		{"pm25 at last breakpoint", AirQuality{PM25: f(75)}, PollutantPM25, 250},
		{"pm25 extrapolated past table", AirQuality{PM25: f(100)}, PollutantPM25, 350},
		{"ozone moderate", AirQuality{O3: f(100)}, PollutantO3, 50},
		{"zero concentration", AirQuality{NO2: f(0)}, PollutantNO2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := PollutantIndex(tt.aq, tt.p)
			require.NotNil(t, idx)
			assert.Equal(t, tt.expected, *idx)
		})
	}

	t.Run("absent pollutant", func(t *testing.T) {
		assert.Nil(t, PollutantIndex(AirQuality{PM25: f(10)}, PollutantO3))
	})
}

func TestAirQualityIndexIsMaxOfComponents(t *testing.T) {
	aq := AirQuality{
		PM25: f(10), // index 20
		O3:   f(100), // index 50
	}
	idx := AirQualityIndex(aq)
	require.NotNil(t, idx)
	assert.Equal(t, 50, *idx)

	assert.Nil(t, AirQualityIndex(AirQuality{}))
}

func TestAirQualityColor(t *testing.T) {
	assert.Equal(t, int64(0xFF50F0E6), AirQualityColor(10))
	assert.Equal(t, int64(0xFF50CCAA), AirQualityColor(50))
	assert.Equal(t, int64(0xFFF0E641), AirQualityColor(75))
	assert.Equal(t, int64(0xFF7D2181), AirQualityColor(999))
}

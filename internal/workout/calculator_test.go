package workout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func TestRunningStatistics(t *testing.T) {
	w := Running{Training: Training{Action: 15000, DurationH: 1, WeightKg: 75}}

	assert.InDelta(t, 9.75, Distance(w), delta)
	assert.InDelta(t, 9.75, MeanSpeed(w), delta)
	// (18*9.75 - 20) * 75 / 1000 * 1 * 60
	assert.InDelta(t, 699.75, Calories(w), delta)
}

func TestSportsWalkingStatistics(t *testing.T) {
	w := SportsWalking{Training: Training{Action: 9000, DurationH: 1, WeightKg: 75}, HeightCm: 180}

	assert.InDelta(t, 5.85, Distance(w), delta)
	assert.InDelta(t, 5.85, MeanSpeed(w), delta)
	// 5.85^2 // 180 == 0, so only the weight term remains.
	assert.InDelta(t, 157.5, Calories(w), delta)
}

func TestSportsWalkingCaloriesUseFloorDivision(t *testing.T) {
	// 3 hours at 15 km/h: 225 // 100 == 2.
	w := SportsWalking{Training: Training{Action: 69231, DurationH: 3, WeightKg: 80}, HeightCm: 100}
	speed := MeanSpeed(w)
	require.InDelta(t, 15.0, speed, 0.001)

	expected := (0.035*80 + 2*0.029*80) * 3 * 60
	assert.InDelta(t, expected, Calories(w), delta)
}

func TestSwimmingStatistics(t *testing.T) {
	w := Swimming{Training: Training{Action: 720, DurationH: 1, WeightKg: 80}, PoolLengthM: 25, PoolCount: 40}

	assert.InDelta(t, 0.9936, Distance(w), delta)
	assert.InDelta(t, 1.0, MeanSpeed(w), delta)
	assert.InDelta(t, 336.0, Calories(w), delta)
}

func TestSwimmingSpeedIgnoresStrokeDistance(t *testing.T) {
	short := Swimming{Training: Training{Action: 100, DurationH: 0.5, WeightKg: 70}, PoolLengthM: 50, PoolCount: 20}
	long := short
	long.Action = 5000

	assert.InDelta(t, 2.0, MeanSpeed(short), delta)
	assert.InDelta(t, MeanSpeed(short), MeanSpeed(long), delta)
	assert.NotEqual(t, Distance(short), Distance(long))
}

func TestDistanceAndSpeedArePure(t *testing.T) {
	workouts := []Workout{
		Running{Training: Training{Action: 12345, DurationH: 1.5, WeightKg: 81}},
		SportsWalking{Training: Training{Action: 4321, DurationH: 0.75, WeightKg: 64}, HeightCm: 171},
		Swimming{Training: Training{Action: 900, DurationH: 2, WeightKg: 90}, PoolLengthM: 25, PoolCount: 60},
	}

	for _, w := range workouts {
		t.Run(w.Kind().String(), func(t *testing.T) {
			before := w
			require.Equal(t, Distance(w), Distance(w))
			require.Equal(t, MeanSpeed(w), MeanSpeed(w))
			require.Equal(t, Calories(w), Calories(w))
			require.Equal(t, before, w)
		})
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{name: "positive", a: 7, b: 2, want: 3},
		{name: "negative dividend", a: -7, b: 2, want: -4},
		{name: "negative divisor", a: 7, b: -2, want: -4},
		{name: "both negative", a: -7, b: -2, want: 3},
		{name: "below one", a: 34.2225, b: 180, want: 0},
		{name: "exact", a: 360, b: 180, want: 2},
		{name: "inexact divisor", a: 1, b: 0.1, want: 9},
		{name: "zero", a: 0, b: 5, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FloorDiv(tc.a, tc.b))
		})
	}

	// Naive flooring of the quotient disagrees with floor division here.
	assert.Equal(t, 10.0, math.Floor(1/0.1))
}

func TestSummarize(t *testing.T) {
	w := Swimming{Training: Training{Action: 720, DurationH: 1, WeightKg: 80}, PoolLengthM: 25, PoolCount: 40}

	s := Summarize(w)
	assert.Equal(t, "Swimming", s.TrainingType)
	assert.InDelta(t, 1.0, s.DurationH, delta)
	assert.InDelta(t, 0.9936, s.DistanceKm, delta)
	assert.InDelta(t, 1.0, s.SpeedKmh, delta)
	assert.InDelta(t, 336.0, s.Calories, delta)
}

func TestKindNamesAndCodes(t *testing.T) {
	assert.Equal(t, "Running", KindRunning.String())
	assert.Equal(t, "SportsWalking", KindSportsWalking.String())
	assert.Equal(t, "Swimming", KindSwimming.String())
	assert.Equal(t, "Unknown", Kind(0).String())

	assert.Equal(t, "RUN", KindRunning.Code())
	assert.Equal(t, "WLK", KindSportsWalking.Code())
	assert.Equal(t, "SWM", KindSwimming.Code())
	assert.Empty(t, Kind(42).Code())
}

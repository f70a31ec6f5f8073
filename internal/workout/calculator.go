package workout

import "math"

// Distance returns the covered distance in kilometres.
func Distance(w Workout) float64 {
	t := w.base()
	c := constantsFor(w.Kind())
	return float64(t.Action) * c.StepLengthM / c.MetersInKm
}

// MeanSpeed returns the average speed in km/h.
// Swimming speed is measured by pool laps, not by stroke distance.
func MeanSpeed(w Workout) float64 {
	switch v := w.(type) {
	case Swimming:
		c := constantsFor(KindSwimming)
		return v.PoolLengthM * float64(v.PoolCount) / c.MetersInKm / v.DurationH
	default:
		return Distance(w) / w.base().DurationH
	}
}

// Calories returns the energy spent during the workout in kcal.
func Calories(w Workout) float64 {
	speed := MeanSpeed(w)
	c := constantsFor(w.Kind())

	switch v := w.(type) {
	case Running:
		return (runningSpeedMultiplier*speed - runningSpeedShift) *
			v.WeightKg / c.MetersInKm * v.DurationH * c.MinInHour
	case SportsWalking:
		return (walkingWeightMultiplier*v.WeightKg +
			FloorDiv(math.Pow(speed, walkingSpeedExponent), v.HeightCm)*walkingHeightMultiplier*v.WeightKg) *
			v.DurationH * c.MinInHour
	case Swimming:
		return (speed + swimmingSpeedShift) * swimmingWeightMultiplier * v.WeightKg
	default:
		panic("workout: unhandled variant " + w.Kind().String())
	}
}

// FloorDiv divides a by b rounding toward negative infinity, with the same
// rounding as Python's float // operator. b must be non-zero.
func FloorDiv(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div -= 1
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor += 1
	}
	return floor
}

// Summarize derives the summary message for a workout.
func Summarize(w Workout) Summary {
	return Summary{
		TrainingType: w.Kind().String(),
		DurationH:    w.base().DurationH,
		DistanceKm:   Distance(w),
		SpeedKmh:     MeanSpeed(w),
		Calories:     Calories(w),
	}
}

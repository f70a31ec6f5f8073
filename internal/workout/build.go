package workout

import (
	"errors"
	"fmt"
	"math"
)

// Sensor package codes.
const (
	CodeSwimming      = "SWM"
	CodeRunning       = "RUN"
	CodeSportsWalking = "WLK"
)

var (
	// ErrUnknownWorkout is returned for a package code with no matching variant.
	ErrUnknownWorkout = errors.New("unknown workout type")
	// ErrFieldCount is returned when the number of readings does not match the variant.
	ErrFieldCount = errors.New("wrong number of readings")
	// ErrFieldType is returned when an integer reading carries a fractional part
	// or lies outside the range a float64 holds exactly.
	ErrFieldType = errors.New("reading must be an integer")
	// ErrInvalidDuration is returned for a non-positive duration.
	ErrInvalidDuration = errors.New("duration must be > 0")
	// ErrInvalidHeight is returned for a zero walker height.
	ErrInvalidHeight = errors.New("height must be non-zero")
)

// maxExactInt bounds integer readings: above 2^53 a float64 no longer holds every integer.
const maxExactInt = 1 << 53

var codeToKind = map[string]Kind{
	CodeSwimming:      KindSwimming,
	CodeRunning:       KindRunning,
	CodeSportsWalking: KindSportsWalking,
}

var fieldCounts = map[Kind]int{
	KindRunning:       3,
	KindSportsWalking: 4,
	KindSwimming:      5,
}

// ParseCode resolves a sensor package code to a workout kind. Codes match exactly.
func ParseCode(code string) (Kind, error) {
	kind, ok := codeToKind[code]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWorkout, code)
	}
	return kind, nil
}

// FieldCount returns how many readings the kind expects.
func FieldCount(k Kind) int {
	return fieldCounts[k]
}

// Build constructs a workout from a package code and its readings, applied
// positionally in field order: action, duration, weight, then the variant fields.
func Build(code string, values []float64) (Workout, error) {
	kind, err := ParseCode(code)
	if err != nil {
		return nil, err
	}

	if want := FieldCount(kind); len(values) != want {
		return nil, fmt.Errorf("%w: %s expects %d, got %d", ErrFieldCount, code, want, len(values))
	}

	action, err := intField("action", values[0])
	if err != nil {
		return nil, err
	}
	training := Training{
		Action:    action,
		DurationH: values[1],
		WeightKg:  values[2],
	}
	if !(training.DurationH > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidDuration, training.DurationH)
	}

	switch kind {
	case KindRunning:
		return Running{Training: training}, nil
	case KindSportsWalking:
		if values[3] == 0 || math.IsNaN(values[3]) {
			return nil, fmt.Errorf("%w: got %v", ErrInvalidHeight, values[3])
		}
		return SportsWalking{Training: training, HeightCm: values[3]}, nil
	case KindSwimming:
		count, err := intField("pool count", values[4])
		if err != nil {
			return nil, err
		}
		return Swimming{Training: training, PoolLengthM: values[3], PoolCount: count}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkout, code)
	}
}

func intField(name string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || math.Abs(v) > maxExactInt {
		return 0, fmt.Errorf("%w: %s=%v", ErrFieldType, name, v)
	}
	return int(v), nil
}

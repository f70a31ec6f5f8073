// Package workout computes distance, speed and calorie statistics for recorded trainings.
package workout

// Kind identifies a workout variant.
type Kind int

const (
	KindRunning Kind = iota + 1
	KindSportsWalking
	KindSwimming
)

// String returns the training type name shown in summaries.
func (k Kind) String() string {
	switch k {
	case KindRunning:
		return "Running"
	case KindSportsWalking:
		return "SportsWalking"
	case KindSwimming:
		return "Swimming"
	default:
		return "Unknown"
	}
}

// Code returns the sensor package code for the kind.
func (k Kind) Code() string {
	switch k {
	case KindRunning:
		return CodeRunning
	case KindSportsWalking:
		return CodeSportsWalking
	case KindSwimming:
		return CodeSwimming
	default:
		return ""
	}
}

// Workout is one of Running, SportsWalking or Swimming.
type Workout interface {
	Kind() Kind
	base() Training
}

// Training holds the readings shared by every variant.
type Training struct {
	Action    int     // steps or strokes
	DurationH float64 // hours, always > 0
	WeightKg  float64
}

// Running is a run tracked by step count.
type Running struct {
	Training
}

// SportsWalking is a brisk walk; the walker's height feeds the calorie formula.
type SportsWalking struct {
	Training
	HeightCm float64
}

// Swimming is a pool session; speed comes from pool length and lap count.
type Swimming struct {
	Training
	PoolLengthM float64
	PoolCount   int
}

func (Running) Kind() Kind       { return KindRunning }
func (SportsWalking) Kind() Kind { return KindSportsWalking }
func (Swimming) Kind() Kind      { return KindSwimming }

func (w Running) base() Training       { return w.Training }
func (w SportsWalking) base() Training { return w.Training }
func (w Swimming) base() Training      { return w.Training }

// constants is the per-variant table of unit and stride parameters.
type constants struct {
	StepLengthM float64
	MetersInKm  float64
	MinInHour   float64
}

var defaultConstants = constants{
	StepLengthM: 0.65,
	MetersInKm:  1000,
	MinInHour:   60,
}

var variantConstants = map[Kind]constants{
	KindRunning:       defaultConstants,
	KindSportsWalking: defaultConstants,
	KindSwimming: {
		StepLengthM: 1.38,
		MetersInKm:  1000,
		MinInHour:   60,
	},
}

func constantsFor(k Kind) constants {
	if c, ok := variantConstants[k]; ok {
		return c
	}
	return defaultConstants
}

// Calorie formula coefficients.
const (
	runningSpeedMultiplier = 18
	runningSpeedShift      = 20

	walkingWeightMultiplier = 0.035
	walkingSpeedExponent    = 2
	walkingHeightMultiplier = 0.029

	swimmingSpeedShift       = 1.1
	swimmingWeightMultiplier = 2
)

package workout

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleMessages(t *testing.T) {
	tests := []struct {
		code   string
		values []float64
		want   string
	}{
		{
			code:   "SWM",
			values: []float64{720, 1, 80, 25, 40},
			want:   "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		},
		{
			code:   "RUN",
			values: []float64{15000, 1, 75},
			want:   "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.",
		},
		{
			code:   "WLK",
			values: []float64{9000, 1, 75, 180},
			want:   "Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			w, err := Build(tc.code, tc.values)
			require.NoError(t, err)
			assert.Equal(t, tc.want, Summarize(w).Message())
		})
	}
}

func TestMessageUsesThreeDecimals(t *testing.T) {
	s := Summary{
		TrainingType: "Running",
		DurationH:    1.23456789,
		DistanceKm:   2,
		SpeedKmh:     0.0004,
		Calories:     1234.5678,
	}

	msg := s.Message()
	assert.Equal(t, "Тип тренировки: Running; Длительность: 1.235 ч.; Дистанция: 2.000 км; Ср. скорость: 0.000 км/ч; Потрачено ккал: 1234.568.", msg)

	numbers := regexp.MustCompile(`-?\d+\.\d+`).FindAllString(msg, -1)
	require.Len(t, numbers, 4)
	for _, n := range numbers {
		assert.Regexp(t, `\.\d{3}$`, n)
	}
	assert.Equal(t, msg, fmt.Sprint(s))
}

package spectrum_test

import "math"

func sin(freq, rate float64, i int) float64 {
	return math.Sin(2 * math.Pi * freq * float64(i) / rate)
}

// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
// Used for gameplay rolls only (spawns, explosion jitter). Not safe for
// concurrent use; the simulation is single-threaded.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a uniform value in [lo, hi). An empty range returns lo.
func (s *PRNGService) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}

// Angle returns a uniform angle in [-π, π).
func (s *PRNGService) Angle() float64 {
	return s.Range(-math.Pi, math.Pi)
}

// Direction returns a unit vector with a uniform random heading.
func (s *PRNGService) Direction() Vec2 {
	return AngleToVector(s.Angle())
}

// Jitter returns a vector with uniform heading and magnitude in [lo, hi).
func (s *PRNGService) Jitter(lo, hi float64) Vec2 {
	return s.Direction().Scale(s.Range(lo, hi))
}

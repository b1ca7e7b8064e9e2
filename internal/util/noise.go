package util

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Параметры шума Перлина
const (
	perlinAlpha  = 2.0 // Сглаживание шума
	perlinBeta   = 2.0 // Частота шума
	perlinOctave = 3   // Количество октав
)

// HeightMap - детерминированная карта высот колонн на основе шума Перлина.
// Один экземпляр на мир, глобального состояния нет.
type HeightMap struct {
	noise     *perlin.Perlin
	Seed      int64
	Scale     float64 // Масштаб координат колонн
	MaxHeight int     // Высота при значении шума 1
}

// NewHeightMap создает карту высот с указанным сидом
func NewHeightMap(seed int64, scale float64, maxHeight int) *HeightMap {
	if scale <= 0 {
		scale = 0.02
	}
	return &HeightMap{
		noise:     perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctave, seed),
		Seed:      seed,
		Scale:     scale,
		MaxHeight: maxHeight,
	}
}

// Noise2D возвращает значение шума для координат (от 0 до 1)
func (h *HeightMap) Noise2D(x, y float64) float64 {
	// Значение шума лежит примерно в [-1, 1]
	n := (h.noise.Noise2D(x, y) + 1.0) / 2.0
	return math.Max(0, math.Min(1, n))
}

// Height возвращает высоту поверхности колонны (x, z)
func (h *HeightMap) Height(x, z int) int {
	n := h.Noise2D(float64(x)*h.Scale, float64(z)*h.Scale)
	return int(math.Round(n * float64(h.MaxHeight)))
}

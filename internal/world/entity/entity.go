package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/advikgoyal02/Minecraft/internal/physics"
	"github.com/advikgoyal02/Minecraft/internal/vec"
)

// EntityType представляет тип сущности
type EntityType uint16

const (
	EntityTypePlayer EntityType = iota
)

// Entity представляет базовую сущность в мире: тело и направление взгляда
type Entity struct {
	ID   uint64
	Type EntityType
	Body *physics.Body
	// Yaw - поворот вокруг вертикали в градусах, Pitch - наклон в [-90, 90]
	Yaw   float64
	Pitch float64
}

// NewEntity создаёт новую сущность высотой height в позиции pos
func NewEntity(id uint64, entityType EntityType, pos mgl64.Vec3, height int) *Entity {
	return &Entity{
		ID:   id,
		Type: entityType,
		Body: physics.NewBody(pos, height),
	}
}

// Position возвращает непрерывную позицию
func (e *Entity) Position() mgl64.Vec3 { return e.Body.Position }

// BlockPos возвращает позицию блока, в котором находится сущность
func (e *Entity) BlockPos() vec.Vec3 { return vec.Normalize(e.Body.Position) }

// Sector возвращает сектор сущности
func (e *Entity) Sector() vec.Vec3 { return vec.SectorOf(e.Body.Position) }

// Rotate поворачивает взгляд. Наклон ограничен [-90, 90].
func (e *Entity) Rotate(dYaw, dPitch float64) {
	e.Yaw += dYaw
	e.Pitch = math.Max(-90, math.Min(90, e.Pitch+dPitch))
}

// SightVector возвращает единичный вектор взгляда
func (e *Entity) SightVector() mgl64.Vec3 {
	yaw := mgl64.DegToRad(e.Yaw - 90)
	pitch := mgl64.DegToRad(e.Pitch)
	m := math.Cos(pitch)
	return mgl64.Vec3{math.Cos(yaw) * m, math.Sin(pitch), math.Sin(yaw) * m}
}

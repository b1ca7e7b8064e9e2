package app

import (
	"errors"
	"fmt"

	"github.com/advikgoyal02/Minecraft/internal/vec"
	"github.com/advikgoyal02/Minecraft/internal/world"
	"github.com/advikgoyal02/Minecraft/internal/world/block"
)

// LookSensitivity - градусов поворота на пиксель движения мыши
const LookSensitivity = 0.15

var (
	ErrIndestructible = errors.New("блок нельзя разрушить")
	ErrOccupied       = errors.New("позиция занята игроком")
	ErrNoTarget       = errors.New("нет блока в прицеле")
)

// SetDesiredStrafe задаёт намерение движения: forward и lateral из {-1, 0, 1}
func (s *Session) SetDesiredStrafe(forward, lateral int) {
	s.player.SetStrafe(forward, lateral)
}

// SetFlying включает и выключает полёт
func (s *Session) SetFlying(on bool) {
	s.player.Flying = on
	if on {
		s.player.Body.VelocityY = 0
	}
}

// RequestJump удерживает или отпускает прыжок
func (s *Session) RequestJump(on bool) { s.player.Jumping = on }

// SetSprinting включает бег
func (s *Session) SetSprinting(on bool) { s.player.SetSprinting(on) }

// SetCrouching включает присед
func (s *Session) SetCrouching(on bool) { s.player.SetCrouching(on) }

// Look поворачивает взгляд на смещение мыши в пикселях
func (s *Session) Look(dx, dy float64) {
	s.player.Rotate(dx*LookSensitivity, dy*LookSensitivity)
}

// SelectSlot выбирает ячейку инвентаря
func (s *Session) SelectSlot(i int) { s.player.SelectSlot(i) }

// CycleSlot переключает ячейку инвентаря
func (s *Session) CycleSlot() { s.player.CycleSlot() }

// Raycast ищет блок по направлению взгляда
func (s *Session) Raycast() (world.Hit, bool) {
	return s.model.HitTest(s.player.Position(), s.player.SightVector(), world.DefaultHitDistance)
}

// PlaceBlock ставит блок немедленно. Занятая клетка заменяется, клетки тела
// игрока запрещены.
func (s *Session) PlaceBlock(pos vec.Vec3, id block.BlockID) error {
	if _, err := block.Lookup(id); err != nil {
		return fmt.Errorf("установка %v: %w", pos, err)
	}
	if s.occupiesBody(pos) {
		return fmt.Errorf("установка %v: %w", pos, ErrOccupied)
	}
	s.model.AddBlock(pos, id)
	return nil
}

// RemoveBlock убирает блок немедленно
func (s *Session) RemoveBlock(pos vec.Vec3) error {
	id, ok := s.model.BlockAt(pos)
	if !ok {
		return fmt.Errorf("удаление %v: %w", pos, ErrNoTarget)
	}
	if (world.Block{Pos: pos, ID: id}).Indestructible() {
		return fmt.Errorf("удаление %v (%s): %w", pos, id, ErrIndestructible)
	}
	s.model.RemoveBlock(pos)
	return nil
}

// UseTarget ставит выбранный блок перед блоком в прицеле или разрушает его
func (s *Session) UseTarget(place bool) error {
	hit, ok := s.Raycast()
	if !ok {
		return ErrNoTarget
	}
	if !place {
		return s.RemoveBlock(hit.Block)
	}
	if !hit.HasPrevious {
		return ErrNoTarget
	}
	return s.PlaceBlock(hit.Previous, s.player.SelectedBlock())
}

// occupiesBody проверяет клетки колонны игрока, которые видит коллайдер
func (s *Session) occupiesBody(pos vec.Vec3) bool {
	head := s.player.BlockPos()
	for dy := 0; dy < s.player.Body.Collider.Height; dy++ {
		if pos == head.Add(vec.Vec3{Y: -dy}) {
			return true
		}
	}
	return false
}

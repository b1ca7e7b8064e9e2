package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/advikgoyal02/Minecraft/internal/config"
	"github.com/advikgoyal02/Minecraft/internal/world/block"
)

const (
	// jumpBoost добавляется к скорости, пока игрок в прыжке
	jumpBoost = 0.7
	// BaseFOV - угол обзора по умолчанию
	BaseFOV = 70.0
)

// DefaultInventory - блоки, которые игрок может ставить
var DefaultInventory = []block.BlockID{
	block.BrickBlockID,
	block.GrassBlockID,
	block.SandBlockID,
	block.WoodBlockID,
	block.LeafBlockID,
}

// Movement - параметры движения игрока
type Movement struct {
	WalkingSpeed     float64
	FlyingSpeed      float64
	CrouchSpeed      float64
	SprintSpeed      float64
	Gravity          float64
	JumpSpeed        float64
	TerminalVelocity float64
	Height           int
}

// MovementFromConfig переносит параметры из конфигурации
func MovementFromConfig(cfg config.PlayerConfig) Movement {
	return Movement{
		WalkingSpeed:     cfg.WalkingSpeed,
		FlyingSpeed:      cfg.FlyingSpeed,
		CrouchSpeed:      cfg.CrouchSpeed,
		SprintSpeed:      cfg.SprintSpeed,
		Gravity:          cfg.Gravity,
		JumpSpeed:        cfg.JumpSpeed(),
		TerminalVelocity: cfg.TerminalVelocity,
		Height:           cfg.Height,
	}
}

// DefaultMovement возвращает параметры движения по умолчанию
func DefaultMovement() Movement {
	return MovementFromConfig(config.Defaults().Player)
}

// Player - управляемый игрок: намерения движения, режимы и инвентарь
type Player struct {
	Entity
	Movement Movement

	// strafe хранит (-вперёд, вбок): вперёд уменьшает первую компоненту
	strafe    [2]int
	Flying    bool
	Jumping   bool
	Crouching bool
	Sprinting bool
	jumped    bool

	Inventory []block.BlockID
	selected  int
}

// NewPlayer создаёт игрока в позиции pos
func NewPlayer(id uint64, pos mgl64.Vec3, movement Movement) *Player {
	inv := make([]block.BlockID, len(DefaultInventory))
	copy(inv, DefaultInventory)
	return &Player{
		Entity:    *NewEntity(id, EntityTypePlayer, pos, movement.Height),
		Movement:  movement,
		Inventory: inv,
	}
}

// SetStrafe задаёт желаемое движение: forward > 0 - вперёд, lateral > 0 - вправо
func (p *Player) SetStrafe(forward, lateral int) {
	p.strafe = [2]int{-clampUnit(forward), clampUnit(lateral)}
}

// Strafe возвращает (вперёд, вбок)
func (p *Player) Strafe() (forward, lateral int) {
	return -p.strafe[0], p.strafe[1]
}

func clampUnit(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// SetCrouching включает приседание. Приседание отменяет бег.
func (p *Player) SetCrouching(on bool) {
	p.Crouching = on
	if on {
		p.Sprinting = false
	}
}

// SetSprinting включает бег, если игрок не присел
func (p *Player) SetSprinting(on bool) {
	if on && p.Crouching {
		return
	}
	p.Sprinting = on
}

// Speed возвращает горизонтальную скорость для текущего режима
func (p *Player) Speed() float64 {
	switch {
	case p.Flying:
		return p.Movement.FlyingSpeed
	case p.Sprinting:
		return p.Movement.SprintSpeed
	case p.Crouching:
		return p.Movement.CrouchSpeed
	default:
		return p.Movement.WalkingSpeed
	}
}

// FOV возвращает угол обзора: при беге он шире
func (p *Player) FOV() float64 {
	if p.Sprinting {
		return BaseFOV + p.Movement.SprintSpeed/2
	}
	return BaseFOV
}

// MotionVector возвращает направление движения из намерений и взгляда.
// В полёте наклон взгляда даёт вертикальную составляющую.
func (p *Player) MotionVector() mgl64.Vec3 {
	if p.strafe == [2]int{} {
		return mgl64.Vec3{}
	}
	strafe := math.Atan2(float64(p.strafe[0]), float64(p.strafe[1]))
	xAngle := mgl64.DegToRad(p.Yaw) + strafe
	if !p.Flying {
		return mgl64.Vec3{math.Cos(xAngle), 0, math.Sin(xAngle)}
	}

	yAngle := mgl64.DegToRad(p.Pitch)
	m := math.Cos(yAngle)
	dy := math.Sin(yAngle)
	if p.strafe[1] != 0 {
		dy = 0
		m = 1
	}
	if p.strafe[0] > 0 {
		dy = -dy
	}
	return mgl64.Vec3{math.Cos(xAngle) * m, dy, math.Sin(xAngle) * m}
}

// Update продвигает игрока на dt секунд: прыжок, гравитация, коллизии
func (p *Player) Update(dt float64, world block.Source) {
	speed := p.Speed()
	grounded := p.Body.Contacts.Top
	if p.Jumping {
		if grounded {
			p.Body.VelocityY = p.Movement.JumpSpeed
			p.jumped = true
		}
	} else if grounded {
		p.jumped = false
	}
	if p.jumped {
		speed += jumpBoost
	}

	motion := p.MotionVector().Mul(dt * speed)
	if !p.Flying {
		p.Body.VelocityY -= dt * p.Movement.Gravity
		p.Body.VelocityY = math.Max(p.Body.VelocityY, -p.Movement.TerminalVelocity)
		motion[1] += p.Body.VelocityY * dt
	}

	old := p.Body.Position
	p.Body.MoveTo(old.Add(motion), world)

	// Бег заканчивается, когда игрок перестал двигаться по горизонтали
	if old.X() == p.Body.Position.X() && old.Z() == p.Body.Position.Z() {
		p.Sprinting = false
	}
}

// SelectSlot выбирает ячейку инвентаря (по модулю длины)
func (p *Player) SelectSlot(i int) {
	n := len(p.Inventory)
	if n == 0 {
		return
	}
	p.selected = ((i % n) + n) % n
}

// CycleSlot переключает на следующую ячейку
func (p *Player) CycleSlot() {
	p.SelectSlot(p.selected + 1)
}

// SelectedBlock возвращает выбранный материал
func (p *Player) SelectedBlock() block.BlockID {
	if len(p.Inventory) == 0 {
		return block.AirBlockID
	}
	return p.Inventory[p.selected]
}

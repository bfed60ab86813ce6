package player

import (
	"voxelworld/internal/input"
	"voxelworld/internal/physics"
	"voxelworld/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// UpdatePosition flies the player according to the held movement actions.
// With Collision on, each axis is moved separately and a step into a solid
// block is undone.
func (p *Player) UpdatePosition(dt float64, im *input.InputManager) {
	defer profiling.Track("player.UpdatePosition")()

	front := p.GetFrontVector()
	forward := mgl32.Vec3{front.X(), 0, front.Z()}
	if forward.Len() > 0 {
		forward = forward.Normalize()
	}
	right := p.GetRightVector()

	var dir mgl32.Vec3
	if im.IsActive(input.ActionMoveForward) {
		dir = dir.Add(forward)
	}
	if im.IsActive(input.ActionMoveBackward) {
		dir = dir.Sub(forward)
	}
	if im.IsActive(input.ActionMoveRight) {
		dir = dir.Add(right)
	}
	if im.IsActive(input.ActionMoveLeft) {
		dir = dir.Sub(right)
	}
	if im.IsActive(input.ActionMoveUp) {
		dir[1]++
	}
	if im.IsActive(input.ActionMoveDown) {
		dir[1]--
	}
	if dir.Len() == 0 {
		return
	}

	speed := p.FlySpeed
	if im.IsActive(input.ActionSprint) {
		speed *= SprintMultiplier
	}
	p.Move(dir.Normalize().Mul(speed * float32(dt)))
}

// Move displaces the player by delta, axis by axis when Collision is on.
func (p *Player) Move(delta mgl32.Vec3) {
	if !p.Collision {
		p.Position = p.Position.Add(delta)
		return
	}
	width, height := p.GetBounds()
	for axis := range 3 {
		if delta[axis] == 0 {
			continue
		}
		next := p.Position
		next[axis] += delta[axis]
		if !physics.Collides(next, width, height, p.World) {
			p.Position = next
		}
	}
}

package player

import (
	"voxelworld/internal/input"
	"voxelworld/internal/physics"
	"voxelworld/internal/world"
)

// Target casts the view ray out to the player's reach.
func (p *Player) Target() world.RaycastResult {
	return p.World.CastRay(p.GetEyePosition(), p.GetFrontVector(), p.Reach)
}

// UpdateHoveredBlock refreshes the block under the crosshair.
func (p *Player) UpdateHoveredBlock() {
	res := p.Target()
	p.HasHoveredBlock = res.Hit
	if res.Hit {
		p.HoveredBlock = res.HitPosition
	}
}

// RemoveBlock clears the targeted block. It reports whether a block was
// removed.
func (p *Player) RemoveBlock() bool {
	res := p.Target()
	if !res.Hit {
		return false
	}
	x, y, z := res.HitPosition[0], res.HitPosition[1], res.HitPosition[2]
	return p.World.SetBlock(x, y, z, world.BlockTypeAir)
}

// PlaceBlock puts the held block in the empty voxel in front of the
// targeted face. Placement is suppressed when that voxel overlaps the
// player's body.
func (p *Player) PlaceBlock() bool {
	if p.Held == world.BlockTypeAir {
		return false
	}
	res := p.Target()
	if !res.Hit || res.AdjacentPosition == res.HitPosition {
		return false
	}
	ax, ay, az := res.AdjacentPosition[0], res.AdjacentPosition[1], res.AdjacentPosition[2]
	if !p.World.IsAir(ax, ay, az) {
		return false
	}
	width, height := p.GetBounds()
	if physics.IntersectsBlock(p.Position, width, height, ax, ay, az) {
		return false
	}
	return p.World.SetBlock(ax, ay, az, p.Held)
}

// HandleActions applies the click actions pressed this frame.
func (p *Player) HandleActions(im *input.InputManager) {
	if im.JustPressed(input.ActionRemoveBlock) {
		p.RemoveBlock()
	}
	if im.JustPressed(input.ActionPlaceBlock) {
		p.PlaceBlock()
	}
	if im.JustPressed(input.ActionToggleCollision) {
		p.Collision = !p.Collision
	}
	p.UpdateHoveredBlock()
}

package player_test

import (
	"testing"

	"voxelworld/internal/player"
	"voxelworld/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// newLookingDown returns a player whose eye is at (0.5, eyeY, 0.5) looking
// straight down, in a world with stone at (0,3,0).
func newLookingDown(t *testing.T, eyeY float32) (*player.Player, *world.World) {
	t.Helper()
	w := world.NewEmpty()
	w.LoadChunk(world.ChunkCoord{})
	w.SetBlock(0, 3, 0, world.BlockTypeStone)

	p := player.New(w)
	p.Position = mgl32.Vec3{0.5, eyeY - player.PlayerEyeHeight, 0.5}
	p.CamPitch = -90
	p.Reach = 8
	return p, w
}

func TestRemoveBlock(t *testing.T) {
	p, w := newLookingDown(t, 10)
	if !p.RemoveBlock() {
		t.Fatal("RemoveBlock found nothing")
	}
	if !w.IsAir(0, 3, 0) {
		t.Error("block not removed")
	}
	if p.RemoveBlock() {
		t.Error("second RemoveBlock should miss")
	}
}

func TestPlaceBlock(t *testing.T) {
	p, w := newLookingDown(t, 10)
	p.Held = world.BlockTypeWood
	if !p.PlaceBlock() {
		t.Fatal("PlaceBlock failed")
	}
	if got := w.GetBlock(0, 4, 0); got != world.BlockTypeWood {
		t.Errorf("block at (0,4,0) = %v, want wood", got)
	}
}

func TestPlaceBlockSuppressedInsidePlayer(t *testing.T) {
	p, w := newLookingDown(t, 4+player.PlayerEyeHeight)
	p.Held = world.BlockTypeStone
	if p.PlaceBlock() {
		t.Fatal("placed a block inside the player")
	}
	if !w.IsAir(0, 4, 0) {
		t.Error("world changed by a suppressed placement")
	}
}

func TestPlaceBlockOutOfReach(t *testing.T) {
	p, _ := newLookingDown(t, 10)
	p.Reach = 3
	if p.PlaceBlock() || p.RemoveBlock() {
		t.Error("interaction beyond reach")
	}
	p.UpdateHoveredBlock()
	if p.HasHoveredBlock {
		t.Error("hovered block beyond reach")
	}
}

func TestHoveredBlock(t *testing.T) {
	p, _ := newLookingDown(t, 10)
	p.UpdateHoveredBlock()
	if !p.HasHoveredBlock || p.HoveredBlock != [3]int{0, 3, 0} {
		t.Errorf("hovered %v %v", p.HasHoveredBlock, p.HoveredBlock)
	}
}

func TestMouseLookClampsPitch(t *testing.T) {
	p := player.New(world.NewEmpty())
	p.Sensitivity = 0.5
	p.HandleMouseMovement(100, 100)
	if p.CamYaw != 0 || p.CamPitch != 0 {
		t.Fatal("first movement should only record the cursor")
	}
	p.HandleMouseMovement(100, -5000)
	if p.CamPitch != 89 {
		t.Errorf("pitch = %v, want 89", p.CamPitch)
	}
	p.HandleMouseMovement(200, -5000)
	if p.CamYaw != 50 {
		t.Errorf("yaw = %v, want 50", p.CamYaw)
	}
}

func TestMoveWithCollision(t *testing.T) {
	w := world.NewEmpty()
	w.LoadChunk(world.ChunkCoord{})
	w.SetBlock(2, 5, 0, world.BlockTypeStone)

	p := player.New(w)
	p.Position = mgl32.Vec3{0.5, 5, 0.5}
	p.Collision = true
	p.Move(mgl32.Vec3{1, 0, 0})
	if p.Position.X() != 1.5 {
		t.Fatalf("free step: x = %v", p.Position.X())
	}
	p.Move(mgl32.Vec3{1, 0, 0})
	if p.Position.X() != 1.5 {
		t.Errorf("moved into stone: x = %v", p.Position.X())
	}

	p.Collision = false
	p.Move(mgl32.Vec3{1, 0, 0})
	if p.Position.X() != 2.5 {
		t.Errorf("without collision x = %v, want 2.5", p.Position.X())
	}
}

package player

import (
	"voxelworld/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	PlayerEyeHeight = 1.62
	PlayerHeight    = 1.8
	PlayerWidth     = 0.6

	DefaultReach     = 6.0
	DefaultFlySpeed  = 8.0
	SprintMultiplier = 2.5
)

// Player is the viewer's avatar: a flying camera with a body box used to
// keep block placement out of the space it occupies.
type Player struct {
	Position mgl32.Vec3 // feet, centre of the box

	CamYaw      float64
	CamPitch    float64
	LastMouseX  float64
	LastMouseY  float64
	FirstMouse  bool
	Sensitivity float64

	FlySpeed  float32
	Collision bool

	// Interaction
	Reach           float32
	Held            world.BlockType
	HoveredBlock    [3]int
	HasHoveredBlock bool

	World *world.World
}

func New(w *world.World) *Player {
	return &Player{
		Position:    mgl32.Vec3{0, 50, 0},
		FirstMouse:  true,
		Sensitivity: 0.1,
		FlySpeed:    DefaultFlySpeed,
		Reach:       DefaultReach,
		Held:        world.BlockTypeDirt,
		World:       w,
	}
}

// GetBounds returns the body box width and height.
func (p *Player) GetBounds() (float32, float32) {
	return PlayerWidth, PlayerHeight
}

package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// HandleMouseMovement turns the camera by the cursor delta since the last
// call. The first call only records the cursor.
func (p *Player) HandleMouseMovement(xpos, ypos float64) {
	if p.FirstMouse {
		p.LastMouseX = xpos
		p.LastMouseY = ypos
		p.FirstMouse = false
		return
	}

	xoffset := (xpos - p.LastMouseX) * p.Sensitivity
	yoffset := (p.LastMouseY - ypos) * p.Sensitivity
	p.LastMouseX = xpos
	p.LastMouseY = ypos

	p.CamYaw = math.Mod(p.CamYaw+xoffset, 360)
	p.CamPitch = max(-89, min(89, p.CamPitch+yoffset))
}

func (p *Player) GetFrontVector() mgl32.Vec3 {
	y := mgl32.DegToRad(float32(p.CamYaw))
	pt := mgl32.DegToRad(float32(p.CamPitch))
	fx := float32(math.Cos(float64(y)) * math.Cos(float64(pt)))
	fy := float32(math.Sin(float64(pt)))
	fz := float32(math.Sin(float64(y)) * math.Cos(float64(pt)))
	return mgl32.Vec3{fx, fy, fz}.Normalize()
}

// GetRightVector is the horizontal unit vector to the camera's right.
func (p *Player) GetRightVector() mgl32.Vec3 {
	y := mgl32.DegToRad(float32(p.CamYaw))
	return mgl32.Vec3{-float32(math.Sin(float64(y))), 0, float32(math.Cos(float64(y)))}
}

func (p *Player) GetEyePosition() mgl32.Vec3 {
	return p.Position.Add(mgl32.Vec3{0, PlayerEyeHeight, 0})
}

func (p *Player) GetViewMatrix() mgl32.Mat4 {
	eye := p.GetEyePosition()
	return mgl32.LookAtV(eye, eye.Add(p.GetFrontVector()), mgl32.Vec3{0, 1, 0})
}

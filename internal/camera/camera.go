package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ViewTransform is the editor viewport's camera placement.
type ViewTransform struct {
	location rl.Vector3
	Yaw      float32
	Pitch    float32
}

func (t *ViewTransform) Location() rl.Vector3 {
	return t.location
}

func (t *ViewTransform) SetLocation(loc rl.Vector3) {
	t.location = loc
}

// EditorCamera flies the viewport while the right mouse button is held.
type EditorCamera struct {
	Transform ViewTransform
	MoveSpeed float32
	LookSpeed float32
}

func New(pos rl.Vector3) *EditorCamera {
	c := &EditorCamera{
		MoveSpeed: 10.0,
		LookSpeed: 0.1,
	}
	c.Transform.SetLocation(pos)
	c.Transform.Yaw = -135.0
	c.Transform.Pitch = -30.0
	return c
}

func (c *EditorCamera) Update(deltaTime float32) {
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		mouseDelta := rl.GetMouseDelta()
		c.Look(mouseDelta.X*c.LookSpeed, -mouseDelta.Y*c.LookSpeed)

		var move rl.Vector3
		if rl.IsKeyDown(rl.KeyW) {
			move.Z += 1
		}
		if rl.IsKeyDown(rl.KeyS) {
			move.Z -= 1
		}
		if rl.IsKeyDown(rl.KeyA) {
			move.X += 1
		}
		if rl.IsKeyDown(rl.KeyD) {
			move.X -= 1
		}
		if rl.IsKeyDown(rl.KeyE) {
			move.Y += 1
		}
		if rl.IsKeyDown(rl.KeyQ) {
			move.Y -= 1
		}
		c.Fly(move, deltaTime)
	}

	// Scroll wheel + Shift adjusts fly speed
	scroll := rl.GetMouseWheelMove()
	if scroll != 0 && (rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)) {
		c.MoveSpeed = clamp(c.MoveSpeed+scroll*2.0, 1, 100)
	}
}

// Look turns the camera by the given degrees, clamping pitch short of vertical.
func (c *EditorCamera) Look(yaw, pitch float32) {
	c.Transform.Yaw += yaw
	c.Transform.Pitch = clamp(c.Transform.Pitch+pitch, -89, 89)
}

// Fly moves along the camera's local axes: X is right, Y is world up, Z is
// forward on the horizontal plane.
func (c *EditorCamera) Fly(move rl.Vector3, deltaTime float32) {
	forward, right := c.directions()
	speed := c.MoveSpeed * deltaTime

	loc := c.Transform.Location()
	loc = rl.Vector3Add(loc, rl.Vector3Scale(forward, move.Z*speed))
	loc = rl.Vector3Add(loc, rl.Vector3Scale(right, move.X*speed))
	loc.Y += move.Y * speed
	c.Transform.SetLocation(loc)
}

func (c *EditorCamera) directions() (forward, right rl.Vector3) {
	yawRad := float64(c.Transform.Yaw) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Y: 0,
		Z: float32(math.Sin(yawRad)),
	}
	right = rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Y: 0,
		Z: float32(-math.Cos(yawRad)),
	}
	return
}

func (c *EditorCamera) GetRaylibCamera() rl.Camera3D {
	yawRad := float64(c.Transform.Yaw) * math.Pi / 180
	pitchRad := float64(c.Transform.Pitch) * math.Pi / 180
	pos := c.Transform.Location()

	target := rl.Vector3{
		X: pos.X + float32(math.Cos(yawRad)*math.Cos(pitchRad)),
		Y: pos.Y + float32(math.Sin(pitchRad)),
		Z: pos.Z + float32(math.Sin(yawRad)*math.Cos(pitchRad)),
	}

	return rl.Camera3D{
		Position:   pos,
		Target:     target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

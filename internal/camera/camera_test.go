package camera

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestViewTransformLocation(t *testing.T) {
	var tr ViewTransform
	tr.SetLocation(rl.Vector3{X: 1, Y: 2, Z: 3})
	assert.Equal(t, rl.Vector3{X: 1, Y: 2, Z: 3}, tr.Location())
}

func TestLookClampsPitch(t *testing.T) {
	c := New(rl.Vector3{})
	c.Look(10, 500)
	assert.Equal(t, float32(89), c.Transform.Pitch)
	assert.Equal(t, float32(-125), c.Transform.Yaw)

	c.Look(0, -500)
	assert.Equal(t, float32(-89), c.Transform.Pitch)
}

func TestFlyForwardAlongYaw(t *testing.T) {
	c := New(rl.Vector3{})
	c.Transform.Yaw = 0
	c.MoveSpeed = 2

	c.Fly(rl.Vector3{Z: 1}, 0.5)

	loc := c.Transform.Location()
	assert.InDelta(t, 1.0, loc.X, 1e-5)
	assert.InDelta(t, 0.0, loc.Y, 1e-5)
	assert.InDelta(t, 0.0, loc.Z, 1e-5)
}

func TestFlyVerticalIgnoresYaw(t *testing.T) {
	c := New(rl.Vector3{X: 5})
	c.Fly(rl.Vector3{Y: 1}, 1)

	loc := c.Transform.Location()
	assert.InDelta(t, 5.0, loc.X, 1e-5)
	assert.InDelta(t, 10.0, loc.Y, 1e-5)
}

func TestGetRaylibCameraTargetsForward(t *testing.T) {
	c := New(rl.Vector3{X: 1, Y: 1, Z: 1})
	c.Transform.Yaw = 0
	c.Transform.Pitch = 0

	cam := c.GetRaylibCamera()
	assert.Equal(t, rl.Vector3{X: 1, Y: 1, Z: 1}, cam.Position)
	assert.InDelta(t, 2.0, cam.Target.X, 1e-5)
	assert.InDelta(t, 1.0, cam.Target.Y, 1e-5)
	assert.InDelta(t, 1.0, cam.Target.Z, 1e-5)
}

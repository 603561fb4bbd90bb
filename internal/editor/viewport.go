package editor

import (
	"reflect"

	"editorcampos/internal/core"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ViewTransform is a viewport camera's placement in world space.
type ViewTransform interface {
	Location() rl.Vector3
	SetLocation(loc rl.Vector3)
}

// ViewportClient is one level-editing viewport.
type ViewportClient struct {
	Name      string
	transform ViewTransform
}

// NewViewportClient binds a viewport to its camera. A nil transform, including
// a nil pointer of a concrete type, leaves the viewport without a camera.
func NewViewportClient(name string, transform ViewTransform) *ViewportClient {
	if isNil(transform) {
		transform = nil
	}
	return &ViewportClient{Name: name, transform: transform}
}

func (v *ViewportClient) ViewTransform() ViewTransform {
	return v.transform
}

func isNil(t ViewTransform) bool {
	if t == nil {
		return true
	}
	rv := reflect.ValueOf(t)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Viewports tracks which viewport currently has focus. There may be none.
type Viewports struct {
	current *ViewportClient

	// OnFocusChanged fires with the newly focused viewport, or nil when focus
	// is lost.
	OnFocusChanged core.DelegateWithArg[*ViewportClient]
}

func (v *Viewports) Current() *ViewportClient {
	return v.current
}

func (v *Viewports) SetCurrent(c *ViewportClient) {
	if v.current == c {
		return
	}
	v.current = c
	v.OnFocusChanged.Broadcast(c)
}

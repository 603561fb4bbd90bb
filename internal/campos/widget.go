package campos

import (
	"strconv"

	"editorcampos/internal/editor"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// PositionEditor is what the widget edits. *Module implements it and
// outlives the widget.
type PositionEditor interface {
	X() float32
	Y() float32
	Z() float32
	SetX(v float32)
	SetY(v float32)
	SetZ(v float32)
	ToolbarVisibility() Visibility
	Copy()
	Paste()
}

const (
	axisLabelWidth = 14
	fieldWidth     = 78
	fieldGap       = 4
	buttonWidth    = 44
	fontSize       = 14
)

// Widget is the toolbar control: three float fields plus Copy and Paste.
type Widget struct {
	editor PositionEditor
	fields [3]floatField
}

func NewWidget(e PositionEditor) *Widget {
	return &Widget{editor: e}
}

func (w *Widget) Visible() bool {
	return w.editor.ToolbarVisibility() == Visible
}

func (w *Widget) Width() float32 {
	return 3*(axisLabelWidth+fieldWidth+fieldGap) + 2*(buttonWidth+fieldGap)
}

func (w *Widget) Draw(bounds rl.Rectangle) {
	axes := [3]struct {
		label string
		color rl.Color
		get   func() float32
		set   func(float32)
	}{
		{"X", editor.ColorAxisX, w.editor.X, w.editor.SetX},
		{"Y", editor.ColorAxisY, w.editor.Y, w.editor.SetY},
		{"Z", editor.ColorAxisZ, w.editor.Z, w.editor.SetZ},
	}

	x := bounds.X
	for i, axis := range axes {
		rl.DrawText(axis.label, int32(x)+2, int32(bounds.Y+(bounds.Height-fontSize)/2), fontSize, axis.color)
		x += axisLabelWidth

		field := rl.Rectangle{X: x, Y: bounds.Y, Width: fieldWidth, Height: bounds.Height}
		if v, changed := w.fields[i].draw(field, axis.get()); changed {
			axis.set(v)
		}
		x += fieldWidth + fieldGap
	}

	if gui.Button(rl.Rectangle{X: x, Y: bounds.Y, Width: buttonWidth, Height: bounds.Height}, "Copy") {
		w.editor.Copy()
	}
	x += buttonWidth + fieldGap
	if gui.Button(rl.Rectangle{X: x, Y: bounds.Y, Width: buttonWidth, Height: bounds.Height}, "Paste") {
		w.editor.Paste()
	}
}

// floatField is a numeric input: click to type, drag to scrub.
type floatField struct {
	editing      bool
	text         string
	initial      string
	dragging     bool
	dragStartX   float32
	dragStartVal float32
}

// draw renders the field and reports a new value when the user changed it.
func (f *floatField) draw(bounds rl.Rectangle, value float32) (float32, bool) {
	mouse := rl.GetMousePosition()
	hovered := rl.CheckCollisionPointRec(mouse, bounds)

	bg := editor.ColorBgElement
	if f.editing {
		bg = editor.ColorBgActive
	} else if hovered || f.dragging {
		bg = editor.ColorBgHover
	}
	rl.DrawRectangleRounded(bounds, 0.2, 4, bg)
	if f.editing {
		rl.DrawRectangleRoundedLinesEx(bounds, 0.2, 4, 1, editor.ColorAccent)
	}

	textX := int32(bounds.X) + 6
	textY := int32(bounds.Y + (bounds.Height-fontSize)/2)

	if f.editing {
		rl.DrawText(f.text+"_", textX, textY, fontSize, editor.ColorTextPrimary)

		for {
			key := rl.GetCharPressed()
			if key == 0 {
				break
			}
			f.text = appendNumeric(f.text, rune(key))
		}
		if rl.IsKeyPressed(rl.KeyBackspace) && len(f.text) > 0 {
			f.text = f.text[:len(f.text)-1]
		}
		if rl.IsKeyPressed(rl.KeyEscape) {
			f.editing = false
			f.text = ""
			return value, false
		}

		clickedOutside := rl.IsMouseButtonPressed(rl.MouseLeftButton) && !hovered
		if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) || rl.IsKeyPressed(rl.KeyTab) || clickedOutside {
			v, ok := commitEdit(f.text, f.initial)
			f.editing = false
			f.text, f.initial = "", ""
			return v, ok
		}
		return value, false
	}

	rl.DrawText(formatField(value), textX, textY, fontSize, editor.ColorTextSecondary)

	if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		f.dragging = true
		f.dragStartX = mouse.X
		f.dragStartVal = value
	}
	if !f.dragging {
		return value, false
	}

	deltaX := mouse.X - f.dragStartX
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		if deltaX > -2 && deltaX < 2 {
			return value, false
		}
		return scrub(f.dragStartVal, deltaX, rl.IsKeyDown(rl.KeyLeftShift)), true
	}

	// Released without moving: treat as a click and start typing
	f.dragging = false
	if deltaX > -2 && deltaX < 2 {
		f.editing = true
		f.text = editText(value)
		f.initial = f.text
	}
	return value, false
}

func formatField(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', 2, 32)
}

// editText is the exact text of v, so committing it unchanged is lossless.
func editText(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// scrub maps horizontal drag distance to a value. One pixel is one world
// unit, a tenth with fine control.
func scrub(start, deltaX float32, fine bool) float32 {
	sensitivity := float32(1)
	if fine {
		sensitivity = 0.1
	}
	return start + deltaX*sensitivity
}

// appendNumeric adds r to text if it can be part of a float literal.
func appendNumeric(text string, r rune) string {
	switch {
	case r >= '0' && r <= '9', r == '-', r == '+', r == '.', r == 'e', r == 'E':
		return text + string(r)
	}
	return text
}

// commitEdit reports a value only if the user changed the text.
func commitEdit(text, initial string) (float32, bool) {
	if text == initial {
		return 0, false
	}
	return commitText(text)
}

// commitText parses typed text. Empty or malformed text is rejected.
func commitText(text string) (float32, bool) {
	if text == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, false
	}
	return float32(v), true
}

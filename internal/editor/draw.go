package editor

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	ToolBarHeight  = 30
	toolBarPadding = 6
	separatorWidth = 9
	menuItemHeight = 24
	menuWidth      = 240
)

// DrawToolBar draws elements left to right starting at x, y. Hidden widgets
// take no space.
func DrawToolBar(elements []ToolBarElement, x, y, width float32) {
	rl.DrawRectangle(int32(x), int32(y), int32(width), ToolBarHeight, ColorBgPanel)

	cursor := x + toolBarPadding
	for _, el := range elements {
		switch el.Kind {
		case ElementSeparator:
			mid := int32(cursor + separatorWidth/2)
			rl.DrawLine(mid, int32(y)+5, mid, int32(y)+ToolBarHeight-5, ColorSeparator)
			cursor += separatorWidth
		case ElementWidget:
			if !el.Widget.Visible() {
				continue
			}
			w := el.Widget.Width()
			el.Widget.Draw(rl.Rectangle{X: cursor, Y: y + 3, Width: w, Height: ToolBarHeight - 6})
			cursor += w + toolBarPadding
		}
	}
}

// MenuButton is a toolbar button that drops down a ToolMenus menu.
type MenuButton struct {
	Menu *Menu
	open bool
}

func (b *MenuButton) IsOpen() bool { return b.open }

// Draw renders the button and, when open, its entries. Clicking an entry runs
// its action and closes the menu.
func (b *MenuButton) Draw(bounds rl.Rectangle) {
	if b.Menu == nil {
		return
	}
	if gui.Button(bounds, b.Menu.Label) {
		b.open = !b.open
	}
	if !b.open {
		return
	}

	ctx := ToolMenuContext{Menu: b.Menu.Name}
	entries := b.Menu.Entries()
	panel := rl.Rectangle{
		X:      bounds.X,
		Y:      bounds.Y + bounds.Height + 2,
		Width:  menuWidth,
		Height: float32(len(entries)*menuItemHeight + 8),
	}
	rl.DrawRectangleRec(panel, ColorBgPanel)
	rl.DrawRectangleLinesEx(panel, 1, ColorBgActive)

	mouse := rl.GetMousePosition()
	y := panel.Y + 4
	for _, entry := range entries {
		row := rl.Rectangle{X: panel.X + 4, Y: y, Width: panel.Width - 8, Height: menuItemHeight}
		hovered := rl.CheckCollisionPointRec(mouse, row)
		if hovered {
			rl.DrawRectangleRec(row, ColorBgHover)
		}

		label := entry.Label
		if entry.UIType == UICheck || entry.UIType == UIToggleButton {
			check := rl.Rectangle{X: row.X + 4, Y: row.Y + 5, Width: 14, Height: 14}
			gui.CheckBox(check, "", entry.CheckState(ctx) == Checked)
			rl.DrawText(label, int32(row.X)+26, int32(row.Y)+6, 14, ColorTextPrimary)
		} else {
			rl.DrawText(label, int32(row.X)+8, int32(row.Y)+6, 14, ColorTextPrimary)
		}

		if hovered && entry.ToolTip != "" {
			rl.DrawText(entry.ToolTip, int32(panel.X), int32(panel.Y+panel.Height)+4, 12, ColorTextMuted)
		}
		if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			entry.Execute(ctx)
			b.open = false
		}
		y += menuItemHeight
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) &&
		!rl.CheckCollisionPointRec(mouse, panel) && !rl.CheckCollisionPointRec(mouse, bounds) {
		b.open = false
	}
}

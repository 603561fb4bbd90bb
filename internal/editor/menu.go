package editor

import "github.com/samber/lo"

// CheckBoxState is the check mark shown next to a menu entry.
type CheckBoxState int

const (
	Unchecked CheckBoxState = iota
	Checked
	Undetermined
)

// ToolMenuContext is passed to menu callbacks.
type ToolMenuContext struct {
	Menu string
}

// ToolUIAction binds a menu entry to behavior. Either callback may be nil.
type ToolUIAction struct {
	Execute       func(ctx ToolMenuContext)
	GetCheckState func(ctx ToolMenuContext) CheckBoxState
}

type MenuEntry struct {
	Name    string
	Label   string
	ToolTip string
	Icon    string
	UIType  UserInterfaceType
	Action  ToolUIAction
}

func (e *MenuEntry) Execute(ctx ToolMenuContext) {
	if e.Action.Execute != nil {
		e.Action.Execute(ctx)
	}
}

func (e *MenuEntry) CheckState(ctx ToolMenuContext) CheckBoxState {
	if e.Action.GetCheckState == nil {
		return Unchecked
	}
	return e.Action.GetCheckState(ctx)
}

type MenuSection struct {
	Name    string
	Entries []*MenuEntry
}

// AddMenuEntry appends an entry, replacing any entry with the same name.
func (s *MenuSection) AddMenuEntry(name, label, toolTip, icon string, action ToolUIAction, uiType UserInterfaceType) *MenuEntry {
	entry := &MenuEntry{
		Name:    name,
		Label:   label,
		ToolTip: toolTip,
		Icon:    icon,
		UIType:  uiType,
		Action:  action,
	}
	_, idx, found := lo.FindIndexOf(s.Entries, func(e *MenuEntry) bool { return e.Name == name })
	if found {
		s.Entries[idx] = entry
	} else {
		s.Entries = append(s.Entries, entry)
	}
	return entry
}

func (s *MenuSection) RemoveMenuEntry(name string) {
	s.Entries = lo.Reject(s.Entries, func(e *MenuEntry, _ int) bool { return e.Name == name })
}

type Menu struct {
	Name     string
	Label    string
	Sections []*MenuSection
}

func (m *Menu) FindSection(name string) *MenuSection {
	s, _ := lo.Find(m.Sections, func(s *MenuSection) bool { return s.Name == name })
	return s
}

func (m *Menu) FindOrAddSection(name string) *MenuSection {
	if s := m.FindSection(name); s != nil {
		return s
	}
	s := &MenuSection{Name: name}
	m.Sections = append(m.Sections, s)
	return s
}

// Entries flattens the menu in display order.
func (m *Menu) Entries() []*MenuEntry {
	return lo.FlatMap(m.Sections, func(s *MenuSection, _ int) []*MenuEntry { return s.Entries })
}

// ToolMenus is the registry of extendable menus.
type ToolMenus struct {
	menus map[string]*Menu
}

func NewToolMenus() *ToolMenus {
	return &ToolMenus{menus: make(map[string]*Menu)}
}

// RegisterMenu creates the menu, or returns it if it already exists.
func (t *ToolMenus) RegisterMenu(name, label string) *Menu {
	if m, ok := t.menus[name]; ok {
		return m
	}
	m := &Menu{Name: name, Label: label}
	t.menus[name] = m
	return m
}

// ExtendMenu returns the named menu, or nil if no such menu is registered.
func (t *ToolMenus) ExtendMenu(name string) *Menu {
	return t.menus[name]
}

package editor

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// Widget is a custom control hosted in the viewport toolbar.
type Widget interface {
	Visible() bool
	Width() float32
	Draw(bounds rl.Rectangle)
}

// ExtensionHook places an extension relative to its anchor.
type ExtensionHook int

const (
	HookBefore ExtensionHook = iota
	HookAfter
)

// ElementKind tells the toolbar how to lay out an element.
type ElementKind int

const (
	ElementWidget ElementKind = iota
	ElementSeparator
	ElementSection
)

// ToolBarElement is one laid-out item of a built toolbar.
type ToolBarElement struct {
	Kind    ElementKind
	Section string
	Widget  Widget
}

// ToolBarBuilder collects the elements an extension contributes.
type ToolBarBuilder struct {
	elements []ToolBarElement
	section  string
}

func (b *ToolBarBuilder) AddSeparator() {
	b.elements = append(b.elements, ToolBarElement{Kind: ElementSeparator, Section: b.section})
}

func (b *ToolBarBuilder) BeginSection(name string) {
	b.section = name
	b.elements = append(b.elements, ToolBarElement{Kind: ElementSection, Section: name})
}

func (b *ToolBarBuilder) EndSection() {
	b.section = ""
}

func (b *ToolBarBuilder) AddWidget(w Widget) {
	if w == nil {
		return
	}
	b.elements = append(b.elements, ToolBarElement{Kind: ElementWidget, Section: b.section, Widget: w})
}

func (b *ToolBarBuilder) Elements() []ToolBarElement {
	return b.elements
}

type toolBarExtension struct {
	hook     string
	position ExtensionHook
	build    func(*ToolBarBuilder)
}

// Extender groups toolbar extensions from one source.
type Extender struct {
	extensions []toolBarExtension
}

func NewExtender() *Extender {
	return &Extender{}
}

// AddToolBarExtension asks the toolbar to call build next to the anchor
// named hook each time the toolbar is rebuilt.
func (e *Extender) AddToolBarExtension(hook string, position ExtensionHook, build func(*ToolBarBuilder)) {
	if build == nil {
		return
	}
	e.extensions = append(e.extensions, toolBarExtension{hook: hook, position: position, build: build})
}

// ExtensibilityManager holds every extender registered against a toolbar.
type ExtensibilityManager struct {
	extenders []*Extender
}

func (m *ExtensibilityManager) AddExtender(e *Extender) {
	if e == nil || lo.Contains(m.extenders, e) {
		return
	}
	m.extenders = append(m.extenders, e)
}

func (m *ExtensibilityManager) RemoveExtender(e *Extender) {
	m.extenders = lo.Without(m.extenders, e)
}

func (m *ExtensibilityManager) Len() int { return len(m.extenders) }

type toolBarAnchor struct {
	name   string
	widget Widget
}

// ToolBar is the viewport toolbar: a row of named anchors that extensions
// attach to.
type ToolBar struct {
	anchors []toolBarAnchor
	manager *ExtensibilityManager
	log     zerolog.Logger
}

func NewToolBar(manager *ExtensibilityManager, log zerolog.Logger) *ToolBar {
	return &ToolBar{manager: manager, log: log}
}

// AddAnchor appends a host section. w may be nil for an anchor with no
// control of its own.
func (t *ToolBar) AddAnchor(name string, w Widget) {
	t.anchors = append(t.anchors, toolBarAnchor{name: name, widget: w})
}

func (t *ToolBar) hasAnchor(name string) bool {
	return lo.ContainsBy(t.anchors, func(a toolBarAnchor) bool { return a.name == name })
}

// Build lays out anchors and extensions. Extensions whose hook names no
// anchor are skipped.
func (t *ToolBar) Build() []ToolBarElement {
	var exts []toolBarExtension
	for _, e := range t.manager.extenders {
		for _, ext := range e.extensions {
			if !t.hasAnchor(ext.hook) {
				t.log.Debug().Str("hook", ext.hook).Msg("toolbar extension hook not found")
				continue
			}
			exts = append(exts, ext)
		}
	}

	var out []ToolBarElement
	apply := func(anchor string, pos ExtensionHook) {
		for _, ext := range exts {
			if ext.hook != anchor || ext.position != pos {
				continue
			}
			b := &ToolBarBuilder{}
			ext.build(b)
			out = append(out, b.Elements()...)
		}
	}

	for _, a := range t.anchors {
		apply(a.name, HookBefore)
		out = append(out, ToolBarElement{Kind: ElementSection, Section: a.name})
		if a.widget != nil {
			out = append(out, ToolBarElement{Kind: ElementWidget, Section: a.name, Widget: a.widget})
		}
		apply(a.name, HookAfter)
	}
	return out
}

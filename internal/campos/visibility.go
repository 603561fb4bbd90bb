package campos

// Visibility is how the host lays out the widget.
type Visibility int

const (
	Collapsed Visibility = iota
	Visible
)

const (
	configSection = "EditorCameraPositionPlugin"
	configKey     = "CameraPositionInViewport"
)

// IsToolbarVisible reads the persisted flag. Unset means hidden.
func (m *Module) IsToolbarVisible() bool {
	store := m.host.ConfigStore()
	if store == nil {
		return false
	}
	v, _ := store.GetBool(configSection, configKey)
	return v
}

// SetToolbarVisible stores the flag and flushes it to disk right away.
func (m *Module) SetToolbarVisible(visible bool) {
	store := m.host.ConfigStore()
	if store == nil {
		return
	}
	store.SetBool(configSection, configKey, visible)
	if err := store.Flush(); err != nil {
		m.log.Warn().Err(err).Msg("failed to flush toolbar visibility")
	}
}

func (m *Module) ToggleToolbarVisibility() {
	m.SetToolbarVisible(!m.IsToolbarVisible())
}

func (m *Module) ToolbarVisibility() Visibility {
	if m.IsToolbarVisible() {
		return Visible
	}
	return Collapsed
}

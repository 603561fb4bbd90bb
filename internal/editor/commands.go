package editor

import (
	"fmt"
	"sort"
)

// UserInterfaceType is how a command presents itself in menus.
type UserInterfaceType string

const (
	UIButton       UserInterfaceType = "button"
	UIToggleButton UserInterfaceType = "toggle"
	UICheck        UserInterfaceType = "check"
	UIRadioButton  UserInterfaceType = "radio"
	UIUndetermined UserInterfaceType = ""
)

// CommandInfo is the UI metadata of a named editor command.
type CommandInfo struct {
	Name        string            `yaml:"name"`
	Label       string            `yaml:"label"`
	Description string            `yaml:"description"`
	Icon        string            `yaml:"icon"`
	UIType      UserInterfaceType `yaml:"type"`
}

// Commands is the editor's command registry. Extensions register their
// commands at startup and unregister them at shutdown.
type Commands struct {
	registered map[string]CommandInfo
}

func NewCommands() *Commands {
	return &Commands{registered: make(map[string]CommandInfo)}
}

func (c *Commands) Register(info CommandInfo) error {
	if info.Name == "" {
		return fmt.Errorf("register command: empty name")
	}
	if _, exists := c.registered[info.Name]; exists {
		return fmt.Errorf("register command %q: already registered", info.Name)
	}
	c.registered[info.Name] = info
	return nil
}

// Unregister removes the command. Unknown names are ignored.
func (c *Commands) Unregister(name string) {
	delete(c.registered, name)
}

func (c *Commands) Get(name string) (CommandInfo, bool) {
	info, ok := c.registered[name]
	return info, ok
}

// Names lists registered commands in sorted order.
func (c *Commands) Names() []string {
	names := make([]string, 0, len(c.registered))
	for name := range c.registered {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

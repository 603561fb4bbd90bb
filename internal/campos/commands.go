package campos

import (
	_ "embed"
	"fmt"

	"editorcampos/internal/editor"

	"gopkg.in/yaml.v3"
)

const ToggleCommandName = "ToggleShowCameraPosWidget"

//go:embed commands.yaml
var commandsYAML []byte

func loadCommands(data []byte) ([]editor.CommandInfo, error) {
	var cmds []editor.CommandInfo
	if err := yaml.Unmarshal(data, &cmds); err != nil {
		return nil, fmt.Errorf("parse command catalogue: %w", err)
	}
	for i, c := range cmds {
		if c.Name == "" {
			return nil, fmt.Errorf("command %d has no name", i)
		}
	}
	return cmds, nil
}

// registerCommands adds every catalogued command and returns the names it
// registered, so they can be removed again.
func registerCommands(reg *editor.Commands) ([]string, error) {
	cmds, err := loadCommands(commandsYAML)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, c := range cmds {
		if err := reg.Register(c); err != nil {
			return names, err
		}
		names = append(names, c.Name)
	}
	return names, nil
}

package core

import "fmt"

// RunMode is how the engine process was started.
type RunMode int

const (
	ModeEditor RunMode = iota
	ModeGame
	ModeCommandlet
)

func (m RunMode) String() string {
	switch m {
	case ModeEditor:
		return "editor"
	case ModeGame:
		return "game"
	case ModeCommandlet:
		return "commandlet"
	default:
		return fmt.Sprintf("RunMode(%d)", int(m))
	}
}

func (m RunMode) IsRunningGame() bool       { return m == ModeGame }
func (m RunMode) IsRunningCommandlet() bool { return m == ModeCommandlet }

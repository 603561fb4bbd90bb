package campos

import (
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FormatPosition renders v as (X=<x>,Y=<y>,Z=<z>) with six decimals.
func FormatPosition(v rl.Vector3) string {
	return fmt.Sprintf("(X=%f,Y=%f,Z=%f)", v.X, v.Y, v.Z)
}

// ParsePosition reads text produced by FormatPosition. Components are found
// by their X=, Y= and Z= prefixes in any order and case; all three must be
// present and numeric. On failure the zero vector and false are returned.
func ParsePosition(s string) (rl.Vector3, bool) {
	x, ok := parseComponent(s, "X=")
	if !ok {
		return rl.Vector3{}, false
	}
	y, ok := parseComponent(s, "Y=")
	if !ok {
		return rl.Vector3{}, false
	}
	z, ok := parseComponent(s, "Z=")
	if !ok {
		return rl.Vector3{}, false
	}
	return rl.Vector3{X: x, Y: y, Z: z}, true
}

func parseComponent(s, prefix string) (float32, bool) {
	i := indexFold(s, prefix)
	if i < 0 {
		return 0, false
	}
	rest := strings.TrimLeft(s[i+len(prefix):], " \t")
	end := strings.IndexAny(rest, ",) \t\r\n")
	if end >= 0 {
		rest = rest[:end]
	}
	if rest == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(rest, 32)
	if err != nil {
		return 0, false
	}
	return float32(f), true
}

// indexFold is a case-insensitive strings.Index for ASCII prefixes.
func indexFold(s, prefix string) int {
	for i := 0; i+len(prefix) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(prefix)], prefix) {
			return i
		}
	}
	return -1
}

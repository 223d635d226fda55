package tui

import (
	"slices"
	"sort"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// animations holds the named frame sets usable as a bar's status animation.
var animations = map[string][]string{
	"spinner": spinnerFrames,
	"line":    {"-", "\\", "|", "/"},
	"dots":    {".  ", ".. ", "...", "   "},
	"arrows":  {"←", "↖", "↑", "↗", "→", "↘", "↓", "↙"},
}

// AnimationFrames returns a copy of the named animation's frames.
func AnimationFrames(name string) ([]string, bool) {
	frames, ok := animations[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(frames), true
}

// AnimationNames returns the known animation names, sorted.
func AnimationNames() []string {
	names := make([]string, 0, len(animations))
	for name := range animations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

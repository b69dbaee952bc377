package jsonpp

import (
	"fmt"
	"sort"
	"strings"

	"pkt.systems/jsonpp/internal/ansi"
)

const (
	paletteDefaultName = "default"
	paletteNoneName    = "none"
)

var paletteRegistry = map[string]ansi.Palette{
	paletteDefaultName: ansi.PaletteDefault,
	"classic":          ansi.PaletteDefault,
	"bright":           ansi.PaletteBright,
	"doom-dracula":     ansi.PaletteDoomDracula,
	"tokyo-night":      ansi.PaletteTokyoNight,
	"monokai-vibrant":  ansi.PaletteMonokaiVibrant,
}

// PaletteNames returns the sorted list of palette names, including "none".
func PaletteNames() []string {
	names := make([]string, 0, len(paletteRegistry)+1)
	for name := range paletteRegistry {
		names = append(names, name)
	}
	names = append(names, paletteNoneName)
	sort.Strings(names)
	return names
}

// resolvePalette maps a palette name to its colors, defaulting to
// paletteDefaultName when name is empty. The special name "none" disables
// coloring. When enableColor is false the zero palette is returned
// regardless of the selection, but the name is still validated.
func resolvePalette(name string, enableColor bool) (ansi.Palette, error) {
	resolved := paletteDefaultName
	if strings.TrimSpace(name) != "" {
		resolved = strings.ToLower(strings.TrimSpace(name))
	}

	if resolved == paletteNoneName {
		return ansi.Palette{}, nil
	}

	pal, ok := paletteRegistry[resolved]
	if !ok {
		return ansi.Palette{}, fmt.Errorf("unknown palette %q (use one of: %s)", name, strings.Join(PaletteNames(), ", "))
	}

	if !enableColor {
		return ansi.Palette{}, nil
	}
	return pal, nil
}

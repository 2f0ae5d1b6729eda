// internal/defs/loader.go
package defs

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"space-game/internal/config"
	"space-game/internal/utils"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// ErrInvalidDefinition is wrapped by every content validation failure.
var ErrInvalidDefinition = errors.New("invalid definition")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidDefinition, fmt.Sprintf(format, args...))
}

// Library is the whole game content: the ship, enemy archetypes, waves and power-ups.
type Library struct {
	Ship     ShipDef             `yaml:"ship"`
	Enemies  []EnemyDefinition   `yaml:"enemies"`
	Waves    []WaveDefinition    `yaml:"waves"`
	PowerUps []PowerUpDefinition `yaml:"power_ups"`

	// Source names where the library was read from.
	Source string `yaml:"-"`
}

// Load reads the game content.
// Search order: customPath -> ./configs/game.yaml -> embedded default.
// A file that exists but fails to parse or validate is an error, not a fallback.
func Load(customPath string) (*Library, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read definitions %s: %w", customPath, err)
		}
		return Parse(data, customPath)
	}

	local := filepath.Join("configs", "game.yaml")
	if data, err := os.ReadFile(local); err == nil {
		return Parse(data, local)
	}

	return Parse(defaultGameYAML, "embedded")
}

// Default returns the embedded content.
func Default() (*Library, error) {
	return Parse(defaultGameYAML, "embedded")
}

// Parse decodes and validates a library. Unknown keys are rejected.
func Parse(data []byte, source string) (*Library, error) {
	var lib Library
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&lib); err != nil {
		return nil, fmt.Errorf("failed to parse definitions %s: %w", source, err)
	}
	lib.Source = source
	if err := lib.Validate(); err != nil {
		return nil, fmt.Errorf("definitions %s: %w", source, err)
	}
	return &lib, nil
}

// Validate builds every template once and reports the first inconsistency.
func (l *Library) Validate() error {
	if _, err := l.NewPlayer(); err != nil {
		return err
	}
	seen := make(map[string]bool, len(l.Enemies))
	for _, e := range l.Enemies {
		if seen[e.ID] {
			return invalid("duplicate enemy id %q", e.ID)
		}
		seen[e.ID] = true
		if _, err := l.NewEnemy(e.ID); err != nil {
			return err
		}
	}
	if _, err := l.NewWaves(); err != nil {
		return err
	}
	if _, err := l.NewPowerUps(utils.Vec2{}); err != nil {
		return err
	}
	return nil
}

// TextureNames lists every image the content and the HUD refer to, sorted.
func (l *Library) TextureNames() []string {
	set := map[string]bool{config.WarningTexture: true}
	add := func(name string) {
		if name != "" {
			set[name] = true
		}
	}
	add(l.Ship.Texture)
	for _, e := range l.Enemies {
		add(e.Texture)
		if e.Cannon != nil {
			add(e.Cannon.Texture)
		}
	}
	for _, p := range l.PowerUps {
		add(p.Texture)
	}

	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

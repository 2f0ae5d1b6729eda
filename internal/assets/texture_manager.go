package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"space-game/internal/config"
	"space-game/internal/platform"
)

// ErrTextureMissing is returned when an image file cannot be found or decoded.
var ErrTextureMissing = errors.New("texture missing")

// TextureManager управляет загрузкой, кэшированием и выгрузкой текстур.
// Textures are looked up by file name relative to <dir>/Images.
type TextureManager struct {
	loader   platform.TextureLoader
	dir      string
	textures map[string]platform.Texture
	logger   *log.Logger
}

// NewTextureManager создает новый экземпляр TextureManager.
func NewTextureManager(loader platform.TextureLoader, dir string, logger *log.Logger) *TextureManager {
	return &TextureManager{
		loader:   loader,
		dir:      dir,
		textures: make(map[string]platform.Texture),
		logger:   logger,
	}
}

// Load loads every named texture that is not cached yet. It stops at the
// first failure; textures loaded before it stay cached.
func (m *TextureManager) Load(names ...string) error {
	for _, name := range names {
		if _, ok := m.textures[name]; ok {
			continue
		}
		path := filepath.Join(m.dir, config.ImagesDir, name)
		// Проверяем существование файла до вызова загрузчика.
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrTextureMissing, path, err)
		}
		tex, err := m.loader.LoadTexture(path)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrTextureMissing, path, err)
		}
		m.textures[name] = tex
		m.logger.Info("texture loaded", "name", name, "size", fmt.Sprintf("%dx%d", tex.Width(), tex.Height()))
	}
	return nil
}

// Get returns a loaded texture by file name.
func (m *TextureManager) Get(name string) (platform.Texture, bool) {
	tex, ok := m.textures[name]
	return tex, ok
}

// Unload выгружает все загруженные текстуры.
func (m *TextureManager) Unload() {
	for name, tex := range m.textures {
		m.loader.UnloadTexture(tex)
		delete(m.textures, name)
	}
	m.logger.Debug("all textures unloaded")
}

package helpers

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/awesome-gocui/gocui"
	"github.com/mitchellh/go-homedir"

	"github.com/mintgate/mintterm/cmd/tui/types"
)

// ConfigManager persists display preferences (theme, language, cursor
// style, pacing) to a JSON settings file under ~/.mintterm.
type ConfigManager struct {
	configPath string
	config     *types.Config
	loaded     bool
	mu         sync.RWMutex
}

func NewConfigManager() (*ConfigManager, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	configDir := filepath.Join(home, ".mintterm")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, err
	}

	return NewConfigManagerAt(filepath.Join(configDir, "settings.json")), nil
}

// NewConfigManagerAt uses an explicit settings path
func NewConfigManagerAt(path string) *ConfigManager {
	return &ConfigManager{
		configPath: path,
		loaded:     false,
	}
}

func (h *ConfigManager) Load() (*types.Config, error) {
	config := h.GetDefaultConfig()

	data, err := os.ReadFile(h.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

func (h *ConfigManager) Save(config *types.Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(h.configPath, data, 0644)
}

// GetConfig returns the current config (thread-safe with lazy loading)
func (h *ConfigManager) GetConfig() *types.Config {
	h.mu.RLock()
	if h.loaded {
		defer h.mu.RUnlock()
		return h.config
	}
	h.mu.RUnlock()

	h.mu.Lock()
	defer h.mu.Unlock()

	// Another goroutine may have loaded it while we waited for the lock
	if h.loaded {
		return h.config
	}

	config, err := h.Load()
	if err != nil {
		// Broken settings file: run on defaults rather than crash
		config = h.GetDefaultConfig()
	}

	h.config = config
	h.loaded = true
	return h.config
}

// UpdateConfig updates the config and optionally saves to disk (thread-safe)
func (h *ConfigManager) UpdateConfig(fn func(*types.Config), save bool) error {
	_ = h.GetConfig()

	h.mu.Lock()
	defer h.mu.Unlock()

	fn(h.config)

	if save {
		return h.Save(h.config)
	}
	return nil
}

func (h *ConfigManager) GetDefaultConfig() *types.Config {
	return &types.Config{
		Theme:             "matrix",
		Language:          "en",
		CursorStyle:       types.CursorBlock,
		ShowCursor:        "enabled",
		MarkdownRendering: "enabled",
		OutputMode:        "true", // 24-bit color with enhanced Unicode support
		GlamourTheme:      "auto",
		EnableMouse:       "enabled",
		Prompt:            "guest@mintgate:~$",
		MaskChar:          "*",
		HistorySize:       50,
		TypingDelayMs:     12,
		TypingVarianceMs:  18,
	}
}

// GetGocuiOutputMode converts the string config to the appropriate gocui.OutputMode
// This controls terminal color depth and Unicode character support:
//
//   - "true": 24-bit color (16M colors) with enhanced Unicode support (recommended)
//   - "256": 256-color mode with standard Unicode
//   - "normal": 8-color mode with basic character support
func (h *ConfigManager) GetGocuiOutputMode(outputMode string) gocui.OutputMode {
	switch outputMode {
	case "normal":
		return gocui.OutputNormal
	case "256":
		return gocui.Output256
	case "simulator":
		return gocui.OutputSimulator
	case "true", "":
		return gocui.OutputTrue
	default:
		return gocui.OutputTrue
	}
}

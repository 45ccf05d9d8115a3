package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment keys understood by the terminal. The access code gates the
// terminal when lock mode is enabled; the RPC settings point the wallet
// client at a node.
const (
	KeyAccessCode   = "MINTTERM_ACCESS_CODE"
	KeyRPCURL       = "MINTTERM_RPC_URL"
	KeyContractAddr = "MINTTERM_CONTRACT"
)

// Manager provides configuration management functionality
type Manager interface {
	GetString(key string) (string, error)
	GetStringWithDefault(key, defaultValue string) string
	RequireString(key string) string
	GetInt(key string) (int, error)
	GetIntWithDefault(key string, defaultValue int) int
	GetBoolWithDefault(key string, defaultValue bool) bool
}

// DefaultManager implements the Manager interface on top of the process
// environment.
type DefaultManager struct {
}

// NewManager creates a new default config manager
func NewManager() Manager {
	return &DefaultManager{}
}

// GetString gets a configuration value by key, returns error if not found
func (m *DefaultManager) GetString(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("configuration key %s not found", key)
	}
	return value, nil
}

// GetStringWithDefault gets a configuration value by key, returns default if not found
func (m *DefaultManager) GetStringWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// RequireString gets a configuration value by key, panics if not found
func (m *DefaultManager) RequireString(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("required configuration key %s not found", key))
	}
	return value
}

// GetInt gets an integer configuration value by key
func (m *DefaultManager) GetInt(key string) (int, error) {
	value, err := m.GetString(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("configuration key %s is not an integer: %w", key, err)
	}
	return n, nil
}

// GetIntWithDefault gets an integer configuration value, returns default if
// missing or malformed
func (m *DefaultManager) GetIntWithDefault(key string, defaultValue int) int {
	n, err := m.GetInt(key)
	if err != nil {
		return defaultValue
	}
	return n
}

// GetBoolWithDefault gets a boolean configuration value, returns default if
// missing or malformed
func (m *DefaultManager) GetBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxSize bounds the history when no explicit cap is configured.
const DefaultMaxSize = 50

// Direction selects where history navigation moves.
type Direction string

const (
	DirectionUp   Direction = "up"   // towards older entries
	DirectionDown Direction = "down" // towards the live/empty line
)

// CommandHistory manages typed-command history with optional file persistence.
// Entries are stored newest first. A navigation cursor of -1 means "not
// browsing" (the live input line).
type CommandHistory interface {
	Add(command string)
	Navigate(direction Direction) (command string, prevIndex int)
	ResetNavigation()
	Index() int
	Commands() []string
	Load() error
	Save() error
}

// FileCommandHistory implements CommandHistory with optional file persistence
type FileCommandHistory struct {
	filePath    string
	commands    []string // newest first
	maxSize     int
	index       int // -1 means not browsing
	saveEnabled bool
}

// NewCommandHistory creates a command history bounded to maxSize entries.
// A maxSize of zero or less falls back to DefaultMaxSize.
func NewCommandHistory(filePath string, maxSize int, saveEnabled bool) CommandHistory {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &FileCommandHistory{
		filePath:    filePath,
		commands:    make([]string, 0),
		maxSize:     maxSize,
		index:       -1,
		saveEnabled: saveEnabled,
	}
}

// Add prepends a command to history. Empty input is ignored, and a command
// equal to the current most-recent entry is not re-added (exact,
// case-sensitive match). The oldest entry is dropped when the cap is
// exceeded. Navigation always resets to the live line afterwards.
func (h *FileCommandHistory) Add(command string) {
	defer func() { h.index = -1 }()

	if command == "" {
		return
	}

	if len(h.commands) > 0 && h.commands[0] == command {
		return
	}

	h.commands = append([]string{command}, h.commands...)

	if len(h.commands) > h.maxSize {
		h.commands = h.commands[:h.maxSize]
	}

	if h.saveEnabled {
		h.Save()
	}
}

// Navigate moves the cursor up (older) or down (newer) and returns the
// command at the new position plus the cursor position before the move.
// At index -1 the live line is represented by an empty string.
func (h *FileCommandHistory) Navigate(direction Direction) (string, int) {
	prev := h.index

	if len(h.commands) == 0 {
		return "", prev
	}

	switch direction {
	case DirectionUp:
		if h.index < len(h.commands)-1 {
			h.index++
		}
	case DirectionDown:
		if h.index > -1 {
			h.index--
		}
	}

	if h.index == -1 {
		return "", prev
	}
	return h.commands[h.index], prev
}

// ResetNavigation returns the cursor to the live line
func (h *FileCommandHistory) ResetNavigation() {
	h.index = -1
}

// Index returns the current navigation cursor (-1 when not browsing)
func (h *FileCommandHistory) Index() int {
	return h.index
}

// Commands returns a copy of the stored history, newest first
func (h *FileCommandHistory) Commands() []string {
	result := make([]string, len(h.commands))
	copy(result, h.commands)
	return result
}

// escapeForHistory escapes a command for storage in the history file.
// Converts newlines to \n and backslashes to \\.
func escapeForHistory(command string) string {
	escaped := strings.ReplaceAll(command, "\\", "\\\\")
	escaped = strings.ReplaceAll(escaped, "\n", "\\n")
	return escaped
}

// unescapeFromHistory reverses escapeForHistory
func unescapeFromHistory(escaped string) string {
	var result strings.Builder
	i := 0
	for i < len(escaped) {
		if i+1 < len(escaped) && escaped[i] == '\\' {
			switch escaped[i+1] {
			case 'n':
				result.WriteByte('\n')
				i += 2
			case '\\':
				result.WriteByte('\\')
				i += 2
			default:
				// Unknown escape sequence, keep as is
				result.WriteByte(escaped[i])
				i++
			}
		} else {
			result.WriteByte(escaped[i])
			i++
		}
	}
	return result.String()
}

// Load reads command history from file. The file stores oldest first so that
// appends preserve chronology; in memory the order is reversed to newest
// first. A missing file is not an error.
func (h *FileCommandHistory) Load() error {
	if !h.saveEnabled {
		return nil
	}

	if _, err := os.Stat(h.filePath); os.IsNotExist(err) {
		return nil
	}

	file, err := os.Open(h.filePath)
	if err != nil {
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	var loaded []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		escaped := strings.TrimSpace(scanner.Text())
		if escaped != "" {
			loaded = append(loaded, unescapeFromHistory(escaped))
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read history file: %w", err)
	}

	h.commands = h.commands[:0]
	for i := len(loaded) - 1; i >= 0; i-- {
		h.commands = append(h.commands, loaded[i])
	}

	if len(h.commands) > h.maxSize {
		h.commands = h.commands[:h.maxSize]
	}

	return nil
}

// Save writes command history to file, oldest first
func (h *FileCommandHistory) Save() error {
	if !h.saveEnabled {
		return nil
	}

	dir := filepath.Dir(h.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	file, err := os.Create(h.filePath)
	if err != nil {
		return fmt.Errorf("failed to create history file: %w", err)
	}
	defer file.Close()

	for i := len(h.commands) - 1; i >= 0; i-- {
		if _, err := fmt.Fprintln(file, escapeForHistory(h.commands[i])); err != nil {
			return fmt.Errorf("failed to write command to history file: %w", err)
		}
	}

	return nil
}

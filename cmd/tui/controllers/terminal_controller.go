package controllers

import (
	"context"
	"strings"
	"unicode"

	"github.com/mintgate/mintterm/cmd/tui/controllers/commands"
	"github.com/mintgate/mintterm/cmd/tui/state"
	"github.com/mintgate/mintterm/cmd/tui/types"
	"github.com/mintgate/mintterm/pkg/events"
	"github.com/mintgate/mintterm/pkg/i18n"
	"github.com/mintgate/mintterm/pkg/logging"
	"github.com/mintgate/mintterm/pkg/version"
)

// InputControl is what the controller needs from the input component
type InputControl interface {
	SetPasswordMode(enabled bool)
	SetPrompt(prompt string)
}

// TerminalController owns the session state machine. A locked session
// routes every submission to the authenticator; an unlocked one parses
// and dispatches commands. While a command is processing, further
// submissions are dropped, not queued.
type TerminalController struct {
	eventBus      *events.EventBus
	notification  types.Notification
	registry      *CommandRegistry
	terminalState *state.TerminalState
	translator    i18n.Translator
	auth          *Authenticator
	input         InputControl
	config        commands.ConfigHelper
	logger        logging.Logger
}

func NewTerminalController(
	eventBus *events.EventBus,
	notification types.Notification,
	registry *CommandRegistry,
	terminalState *state.TerminalState,
	translator i18n.Translator,
	auth *Authenticator,
	input InputControl,
	config commands.ConfigHelper,
) *TerminalController {
	c := &TerminalController{
		eventBus:      eventBus,
		notification:  notification,
		registry:      registry,
		terminalState: terminalState,
		translator:    translator,
		auth:          auth,
		input:         input,
		config:        config,
		logger:        logging.NewComponentLogger("terminal"),
	}

	eventBus.Subscribe("user.input.submitted", func(e interface{}) {
		if input, ok := e.(string); ok {
			c.HandleInput(input)
		}
	})

	return c
}

// Start puts the session into its initial state
func (c *TerminalController) Start() {
	if c.auth.Required() {
		c.terminalState.SetAuthenticated(false)
		c.input.SetPasswordMode(true)
		c.notification.AddOutput(types.OutputItem{
			Kind:    types.KindMenu,
			Content: c.translator.T("auth.prompt"),
		})
		return
	}
	c.terminalState.SetAuthenticated(true)
}

// HandleInput is the single entry point for submitted lines
func (c *TerminalController) HandleInput(input string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return
	}

	if !c.terminalState.IsAuthenticated() {
		c.handleAuth(input)
		return
	}

	c.echo(input)

	if !c.terminalState.TryBeginProcessing() {
		c.logger.Debug("dropped submission while processing",
			"input", input,
			"inFlight", c.terminalState.GetProcessingDuration())
		return
	}

	go func() {
		defer c.terminalState.EndProcessing()
		c.dispatch(input)
	}()
}

// handleAuth consumes one access-code attempt. The echo preserves length
// but not content, and the attempt never reaches command history.
func (c *TerminalController) handleAuth(input string) {
	cfg := c.config.GetConfig()
	c.echo(MaskEcho(input, cfg.MaskChar))

	if !c.auth.Verify(input) {
		c.logger.Debug("access code rejected")
		c.notification.AddOutput(types.Error(c.translator.T("auth.failure")))
		return
	}

	c.terminalState.SetAuthenticated(true)
	c.input.SetPasswordMode(false)

	prompt := unlockedPrompt(cfg.Prompt)
	c.terminalState.SetPrompt(prompt)
	c.input.SetPrompt(prompt)
	c.eventBus.Emit("prompt.changed", prompt)

	c.notification.AddOutput(
		types.Success(c.translator.T("auth.success")),
		types.OutputItem{Kind: types.KindPrompt, Content: prompt},
	)
}

// dispatch parses and runs one command line
func (c *TerminalController) dispatch(input string) {
	name, args := parseCommand(input)
	if name == "" {
		return
	}

	// Builtins resolve before the registry
	switch strings.ToLower(name) {
	case "clear", "cls":
		c.eventBus.Emit("terminal.clear", "")
		return
	case "version":
		items := []types.OutputItem{types.Text(version.GetInfo().String())}
		if !version.IsRelease() {
			items = append(items, types.Warning(c.translator.T("version.dev_build")))
		}
		c.notification.AddOutput(items...)
		return
	}

	cmd := c.registry.GetCommand(name)
	if cmd == nil {
		c.notification.AddOutput(
			types.Error(c.translator.T("errors.unknown_command", map[string]string{"command": name})),
			types.Text(c.translator.T("errors.unknown_command_hint")),
		)
		return
	}

	c.execute(cmd, name, args)
}

// execute runs the command with panic isolation. Streamed output goes
// straight to the view; returned output follows once the command ends.
func (c *TerminalController) execute(cmd commands.Command, name string, args []string) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("command panicked", "command", name, "panic", r)
			c.notification.AddOutput(types.Error(c.translator.T("errors.internal")))
		}
	}()

	emit := func(items ...types.OutputItem) {
		c.notification.AddOutput(items...)
	}

	items, err := cmd.Execute(context.Background(), args, emit)
	if err != nil {
		c.logger.Error("command failed", "command", name, "error", err)
		c.notification.AddOutput(types.Error(
			c.translator.T("errors.command_failed", map[string]string{"reason": err.Error()}),
		))
		return
	}

	if len(items) > 0 {
		c.notification.AddOutput(items...)
	}
}

// echo writes the prompt + input line into the transcript, un-animated
func (c *TerminalController) echo(input string) {
	c.notification.AddOutput(types.OutputItem{
		Kind:    types.KindEcho,
		Content: c.terminalState.GetPrompt() + " " + input,
	})
}

// unlockedPrompt derives the authenticated prompt label
func unlockedPrompt(prompt string) string {
	if strings.Contains(prompt, "guest") {
		return strings.Replace(prompt, "guest", "user", 1)
	}
	return prompt
}

// parseCommand splits a line into the command name and its arguments.
// Double and single quotes group words; a backslash escapes the next
// character. A trailing backslash stays literal.
func parseCommand(input string) (string, []string) {
	tokens := tokenize(input)
	if len(tokens) == 0 {
		return "", nil
	}
	return tokens[0], tokens[1:]
}

func tokenize(input string) []string {
	var tokens []string
	var current strings.Builder
	inToken := false
	var quote rune
	escaped := false

	flush := func() {
		if inToken {
			tokens = append(tokens, current.String())
			current.Reset()
			inToken = false
		}
	}

	for _, r := range input {
		switch {
		case escaped:
			current.WriteRune(r)
			inToken = true
			escaped = false
		case r == '\\':
			escaped = true
			inToken = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inToken = true
		case unicode.IsSpace(r):
			flush()
		default:
			current.WriteRune(r)
			inToken = true
		}
	}

	if escaped {
		current.WriteRune('\\')
	}
	flush()
	return tokens
}

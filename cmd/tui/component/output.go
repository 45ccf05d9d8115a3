package component

import (
	"strings"
	"sync"
	"time"

	"github.com/mintgate/mintterm/cmd/tui/helpers"
	"github.com/mintgate/mintterm/cmd/tui/presentation"
	"github.com/mintgate/mintterm/cmd/tui/state"
	"github.com/mintgate/mintterm/cmd/tui/types"
	"github.com/mintgate/mintterm/pkg/events"
)

const revealFrameInterval = 40 * time.Millisecond

// OutputComponent renders the terminal transcript. Batches go through a
// single render queue so output always appears in submission order, one
// line at a time, regardless of which goroutine produced it.
type OutputComponent struct {
	*BaseComponent
	eventBus  *events.EventBus
	state     *state.OutputState
	formatter *presentation.OutputFormatter
	animator  *Animator
	scrambler *presentation.Scrambler

	queue chan []types.OutputItem
	done  chan struct{}

	redrawMu sync.Mutex
	redraws  uint64
}

func NewOutputComponent(gui types.Gui, configManager *helpers.ConfigManager, eventBus *events.EventBus, outputState *state.OutputState) *OutputComponent {
	config := configManager.GetConfig()

	c := &OutputComponent{
		BaseComponent: NewBaseComponent("output", "output", gui, configManager),
		eventBus:      eventBus,
		state:         outputState,
		formatter:     presentation.NewOutputFormatter(config, presentation.GetTheme(config.Theme)),
		animator:      NewAnimator(config),
		scrambler:     presentation.NewScrambler(time.Now().UnixNano()),
		queue:         make(chan []types.OutputItem, 64),
		done:          make(chan struct{}),
	}

	c.SetTitle("")
	c.SetWindowProperties(types.WindowProperties{
		Focusable:  false,
		Editable:   false,
		Wrap:       true,
		Autoscroll: true,
		Highlight:  false,
		Frame:      true,
	})

	eventBus.Subscribe("theme.changed", func(e interface{}) {
		if name, ok := e.(string); ok {
			c.formatter.SetTheme(presentation.GetTheme(name))
		}
		c.gui.PostUIUpdate(func() {
			c.RefreshThemeColors()
			c.redraw()
		})
	})

	go c.renderLoop()
	return c
}

// AddOutput queues items for animated rendering
func (c *OutputComponent) AddOutput(items ...types.OutputItem) {
	if len(items) == 0 {
		return
	}
	select {
	case c.queue <- items:
	case <-c.done:
	}
}

func (c *OutputComponent) AddErrorMessage(msg string) {
	c.AddOutput(types.Error(msg))
}

// ClearOutput cancels any running animation and wipes the scrollback.
// The greeting block stays.
func (c *OutputComponent) ClearOutput() {
	c.animator.Cancel()
	c.state.Clear()
	c.gui.PostUIUpdate(func() { c.redraw() })
}

func (c *OutputComponent) Animator() *Animator {
	return c.animator
}

func (c *OutputComponent) Close() {
	close(c.done)
}

func (c *OutputComponent) Render() error {
	c.applyThemeBorderColors(false)
	c.redraw()
	return nil
}

func (c *OutputComponent) renderLoop() {
	for {
		select {
		case <-c.done:
			return
		case batch := <-c.queue:
			gen := c.animator.Generation()
			for _, item := range batch {
				c.renderItem(item, gen)
				if c.animator.Alive(gen) {
					c.animator.Pace(gen)
				}
			}
		}
	}
}

func (c *OutputComponent) renderItem(item types.OutputItem, gen int64) {
	switch item.Kind {
	case types.KindClear:
		c.ClearOutput()
		return
	case types.KindGreeting:
		c.revealGreeting(item, gen)
		return
	case types.KindPrompt:
		c.revealInPlace(item, gen)
		return
	}

	c.state.AddItems(item)

	formatted := c.formatter.FormatItemWithWidth(item, c.viewWidth())
	lines := strings.Split(formatted, "\n")

	// A redraw repaints the whole item from state; incremental writes after
	// one would duplicate its lines.
	start := c.redrawCount()

	for i := range lines {
		// Cancelled mid-item: settle the rest instantly
		if !c.animator.Alive(gen) {
			c.gui.PostUIUpdate(func() { c.redraw() })
			return
		}
		if c.redrawCount() != start {
			return
		}
		line := lines[i]
		c.gui.PostUIUpdate(func() {
			if c.redrawCount() != start {
				return
			}
			if view := c.GetView(); view != nil {
				view.Write([]byte(line + "\n"))
			}
		})
		if i < len(lines)-1 {
			c.animator.Pace(gen)
		}
	}
}

// revealGreeting plays the scramble effect for the banner block and pins
// it above the scrollback so clear keeps it around.
func (c *OutputComponent) revealGreeting(item types.OutputItem, gen int64) {
	c.playReveal(item, gen)
	c.state.SetGreeting(append(c.state.GetGreeting(), item))
	c.gui.PostUIUpdate(func() { c.redraw() })
}

// revealInPlace plays the scramble effect for transient lines such as a
// prompt change announcement.
func (c *OutputComponent) revealInPlace(item types.OutputItem, gen int64) {
	c.playReveal(item, gen)
	c.state.AddItems(item)
	c.gui.PostUIUpdate(func() { c.redraw() })
}

func (c *OutputComponent) playReveal(item types.OutputItem, gen int64) {
	if c.GetConfig().Instant {
		return
	}

	frames := c.scrambler.Frames(item.Content, presentation.StepsForText(item.Content))
	for _, frame := range frames[:len(frames)-1] {
		if !c.animator.Alive(gen) {
			return
		}
		styled := c.formatter.FormatItemWithWidth(types.OutputItem{Kind: item.Kind, Content: frame}, c.viewWidth())
		c.gui.PostUIUpdate(func() {
			c.redraw()
			if view := c.GetView(); view != nil {
				view.Write([]byte(styled + "\n"))
			}
		})
		c.sleepFrame()
	}
}

func (c *OutputComponent) sleepFrame() {
	time.Sleep(revealFrameInterval)
}

func (c *OutputComponent) redrawCount() uint64 {
	c.redrawMu.Lock()
	defer c.redrawMu.Unlock()
	return c.redraws
}

// redraw repaints the whole transcript from state, instantly
func (c *OutputComponent) redraw() {
	c.redrawMu.Lock()
	c.redraws++
	c.redrawMu.Unlock()

	view := c.GetView()
	if view == nil {
		return
	}

	view.Clear()
	width := c.viewWidth()
	for _, item := range c.state.GetItems() {
		formatted := c.formatter.FormatItemWithWidth(item, width)
		view.Write([]byte(formatted + "\n"))
	}
}

func (c *OutputComponent) viewWidth() int {
	if view := c.GetView(); view != nil {
		if w, _ := view.Size(); w > 0 {
			return w
		}
	}
	return 80
}

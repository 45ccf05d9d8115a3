package commands

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintgate/mintterm/cmd/tui/types"
	"github.com/mintgate/mintterm/pkg/events"
	"github.com/mintgate/mintterm/pkg/i18n"
	"github.com/mintgate/mintterm/pkg/wallet/sim"
)

type fakeConfigHelper struct {
	cfg    *types.Config
	saves  int
	failed error
}

func (f *fakeConfigHelper) GetConfig() *types.Config { return f.cfg }
func (f *fakeConfigHelper) UpdateConfig(fn func(*types.Config), save bool) error {
	if f.failed != nil {
		return f.failed
	}
	fn(f.cfg)
	if save {
		f.saves++
	}
	return nil
}

type fakeClipboard struct {
	copied []string
	err    error
}

func (f *fakeClipboard) Copy(text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, text)
	return nil
}

func newTestContext(t *testing.T) (*CommandContext, *fakeConfigHelper, *fakeClipboard) {
	t.Helper()

	translator, err := i18n.NewTranslator("en")
	require.NoError(t, err)

	config := &fakeConfigHelper{cfg: &types.Config{Theme: "matrix", Language: "en", CursorStyle: types.CursorBlock}}
	clip := &fakeClipboard{}

	ctx := &CommandContext{
		Notification: &types.MockNotification{},
		EventBus:     events.NewEventBus(),
		Translator:   translator,
		Wallet:       sim.NewWallet(sim.WithStepDelay(0)),
		Config:       config,
		Clipboard:    clip,
	}
	return ctx, config, clip
}

func kinds(items []types.OutputItem) []types.OutputKind {
	result := make([]types.OutputKind, len(items))
	for i, item := range items {
		result[i] = item.Kind
	}
	return result
}

func TestThemeCommand(t *testing.T) {
	cctx, config, _ := newTestContext(t)
	cmd := NewThemeCommand(cctx)

	t.Run("no args shows current and available", func(t *testing.T) {
		items, err := cmd.Execute(context.Background(), nil, nil)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Contains(t, items[0].Content, "matrix")
	})

	t.Run("switching persists and announces", func(t *testing.T) {
		var announced string
		cctx.EventBus.Subscribe("theme.changed", func(e interface{}) {
			announced = e.(string)
		})

		items, err := cmd.Execute(context.Background(), []string{"Amber"}, nil)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, types.KindSuccess, items[0].Kind)
		assert.Equal(t, "amber", config.cfg.Theme)
		assert.Equal(t, 1, config.saves)
		assert.Equal(t, "amber", announced)
	})

	t.Run("unknown theme errors and lists options", func(t *testing.T) {
		items, err := cmd.Execute(context.Background(), []string{"hotdog"}, nil)
		require.NoError(t, err)
		assert.Equal(t, []types.OutputKind{types.KindError, types.KindText}, kinds(items))
	})
}

func TestLangCommand(t *testing.T) {
	cctx, config, _ := newTestContext(t)
	cmd := NewLangCommand(cctx)

	t.Run("switch translates the confirmation into the new language", func(t *testing.T) {
		items, err := cmd.Execute(context.Background(), []string{"fr"}, nil)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, types.KindSuccess, items[0].Kind)
		assert.Contains(t, items[0].Content, "fr")
		assert.Equal(t, "fr", config.cfg.Language)
		assert.Equal(t, "fr", cctx.Translator.Language())
	})

	t.Run("unsupported code keeps the active language", func(t *testing.T) {
		items, err := cmd.Execute(context.Background(), []string{"tlh"}, nil)
		require.NoError(t, err)
		assert.Equal(t, types.KindError, items[0].Kind)
		assert.Equal(t, "fr", cctx.Translator.Language())
	})
}

func TestCursorCommand(t *testing.T) {
	cctx, config, _ := newTestContext(t)
	cmd := NewCursorCommand(cctx)

	items, err := cmd.Execute(context.Background(), []string{"pipe"}, nil)
	require.NoError(t, err)
	assert.Equal(t, types.KindSuccess, items[0].Kind)
	assert.Equal(t, types.CursorPipe, config.cfg.CursorStyle)

	items, err = cmd.Execute(context.Background(), []string{"laser"}, nil)
	require.NoError(t, err)
	assert.Equal(t, types.KindError, items[0].Kind)
}

func TestCopyCommand(t *testing.T) {
	cctx, _, clip := newTestContext(t)

	t.Run("copies the last output", func(t *testing.T) {
		cmd := NewCopyCommand(cctx, func() string { return "tx 0xabc" })
		items, err := cmd.Execute(context.Background(), nil, nil)
		require.NoError(t, err)
		assert.Equal(t, types.KindSuccess, items[0].Kind)
		assert.Equal(t, []string{"tx 0xabc"}, clip.copied)
	})

	t.Run("warns when there is nothing", func(t *testing.T) {
		cmd := NewCopyCommand(cctx, func() string { return "" })
		items, err := cmd.Execute(context.Background(), nil, nil)
		require.NoError(t, err)
		assert.Equal(t, types.KindWarning, items[0].Kind)
	})
}

func TestConnectCommand(t *testing.T) {
	cctx, _, _ := newTestContext(t)
	cmd := NewConnectCommand(cctx)

	var emitted []types.OutputItem
	items, err := cmd.Execute(context.Background(), nil, func(i ...types.OutputItem) {
		emitted = append(emitted, i...)
	})
	require.NoError(t, err)

	require.Len(t, emitted, 1, "progress line streamed while connecting")
	require.Len(t, items, 1)
	assert.Equal(t, types.KindSuccess, items[0].Kind)
	assert.Contains(t, items[0].Content, "0x")

	_, connected := cctx.Wallet.Account()
	assert.True(t, connected)
}

func TestMintCommand(t *testing.T) {
	t.Run("requires a connected wallet", func(t *testing.T) {
		cctx, _, _ := newTestContext(t)
		cmd := NewMintCommand(cctx)

		items, err := cmd.Execute(context.Background(), nil, func(...types.OutputItem) {})
		require.NoError(t, err)
		assert.Equal(t, types.KindError, items[0].Kind)
	})

	t.Run("mints and reports the tokens", func(t *testing.T) {
		cctx, _, _ := newTestContext(t)
		_, err := cctx.Wallet.Connect(context.Background())
		require.NoError(t, err)

		cmd := NewMintCommand(cctx)
		var emitted []types.OutputItem
		items, err := cmd.Execute(context.Background(), []string{"2"}, func(i ...types.OutputItem) {
			emitted = append(emitted, i...)
		})
		require.NoError(t, err)

		require.Len(t, items, 1)
		assert.Equal(t, types.KindSuccess, items[0].Kind)
		assert.Contains(t, items[0].Content, "#1, #2")
		assert.NotEmpty(t, emitted)
	})

	t.Run("rejects bad quantities", func(t *testing.T) {
		cctx, _, _ := newTestContext(t)
		cmd := NewMintCommand(cctx)

		for _, arg := range []string{"0", "-1", "nope"} {
			items, err := cmd.Execute(context.Background(), []string{arg}, nil)
			require.NoError(t, err)
			assert.Equal(t, types.KindError, items[0].Kind, arg)
		}

		items, err := cmd.Execute(context.Background(), []string{"11"}, nil)
		require.NoError(t, err)
		assert.Equal(t, types.KindError, items[0].Kind)
	})

	t.Run("warns when the network is slow", func(t *testing.T) {
		cctx, _, _ := newTestContext(t)
		cctx.Wallet = sim.NewWallet(sim.WithStepDelay(30 * time.Millisecond))
		_, err := cctx.Wallet.Connect(context.Background())
		require.NoError(t, err)

		cmd := NewMintCommand(cctx)
		cmd.slowAfter = time.Millisecond

		var mu sync.Mutex
		var warnings int
		_, err = cmd.Execute(context.Background(), nil, func(items ...types.OutputItem) {
			mu.Lock()
			defer mu.Unlock()
			for _, item := range items {
				if item.Kind == types.KindWarning {
					warnings++
				}
			}
		})
		require.NoError(t, err)

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 1, warnings)
	})
}

func TestVerifyCommand(t *testing.T) {
	cctx, _, _ := newTestContext(t)
	account, err := cctx.Wallet.Connect(context.Background())
	require.NoError(t, err)
	_, err = cctx.Wallet.Mint(context.Background(), 1, nil)
	require.NoError(t, err)

	cmd := NewVerifyCommand(cctx)

	t.Run("holder", func(t *testing.T) {
		items, execErr := cmd.Execute(context.Background(), []string{account.Address}, nil)
		require.NoError(t, execErr)
		assert.Equal(t, types.KindSuccess, items[0].Kind)
	})

	t.Run("non-holder", func(t *testing.T) {
		items, execErr := cmd.Execute(context.Background(), []string{"0x00000000000000000000000000000000000000bb"}, nil)
		require.NoError(t, execErr)
		assert.Equal(t, types.KindText, items[0].Kind)
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		items, execErr := cmd.Execute(context.Background(), []string{"0x123"}, nil)
		require.NoError(t, execErr)
		assert.Equal(t, types.KindError, items[0].Kind)
	})
}

func TestListCommand(t *testing.T) {
	cctx, _, _ := newTestContext(t)
	_, err := cctx.Wallet.Connect(context.Background())
	require.NoError(t, err)
	_, err = cctx.Wallet.Mint(context.Background(), 2, nil)
	require.NoError(t, err)

	cmd := NewListCommand(cctx)
	items, err := cmd.Execute(context.Background(), nil, nil)
	require.NoError(t, err)

	require.Len(t, items, 3, "header plus one line per token")
	assert.Contains(t, items[1].Content, "#1")
	assert.Contains(t, items[2].Content, "#2")
}

func TestStatusCommand(t *testing.T) {
	cctx, _, _ := newTestContext(t)
	cmd := NewStatusCommand(cctx)

	items, err := cmd.Execute(context.Background(), nil, nil)
	require.NoError(t, err)

	require.Len(t, items, 5)
	assert.Equal(t, types.KindSuccess, items[4].Kind, "minting open")
}

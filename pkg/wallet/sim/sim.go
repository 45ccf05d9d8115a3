package sim

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mintgate/mintterm/pkg/wallet"
)

// Defaults for the simulated drop
const (
	DefaultSupply   = 1000
	DefaultPrice    = "0.05 ETH"
	DefaultChainID  = 1337
	DefaultMaxPerTx = 10
)

// Wallet is an in-memory wallet provider used when no RPC endpoint is
// configured. It behaves like a small ERC-721 drop: sequential token IDs,
// a supply cap, and mint progress reported in stages.
type Wallet struct {
	mu       sync.Mutex
	account  wallet.Account
	linked   bool
	minted   uint64
	supply   uint64
	owned    map[string][]uint64
	block    uint64
	stepWait time.Duration
}

// Option configures the simulated wallet
type Option func(*Wallet)

// WithSupply overrides the supply cap
func WithSupply(supply uint64) Option {
	return func(w *Wallet) { w.supply = supply }
}

// WithStepDelay overrides the pause between mint progress stages
// (zero makes mints immediate, which tests rely on)
func WithStepDelay(d time.Duration) Option {
	return func(w *Wallet) { w.stepWait = d }
}

// NewWallet creates a simulated wallet
func NewWallet(opts ...Option) *Wallet {
	w := &Wallet{
		supply:   DefaultSupply,
		owned:    make(map[string][]uint64),
		block:    1,
		stepWait: 400 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Connect creates a fresh session account
func (w *Wallet) Connect(ctx context.Context) (wallet.Account, error) {
	select {
	case <-ctx.Done():
		return wallet.Account{}, ctx.Err()
	default:
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.linked {
		w.account = wallet.Account{
			Address: "0x" + strings.ReplaceAll(uuid.NewString(), "-", "")[:40],
			ChainID: DefaultChainID,
		}
		w.linked = true
	}
	return w.account, nil
}

// Account returns the session account, if connected
func (w *Wallet) Account() (wallet.Account, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.account, w.linked
}

// Mint allocates sequential token IDs to the connected account, reporting
// submitted, pending and confirmed stages with a delay between them.
func (w *Wallet) Mint(ctx context.Context, quantity int, progress wallet.ProgressFunc) (wallet.Receipt, error) {
	if quantity < 1 || quantity > DefaultMaxPerTx {
		return wallet.Receipt{}, fmt.Errorf("quantity must be between 1 and %d", DefaultMaxPerTx)
	}

	w.mu.Lock()
	if !w.linked {
		w.mu.Unlock()
		return wallet.Receipt{}, wallet.ErrNotConnected
	}
	if w.minted+uint64(quantity) > w.supply {
		w.mu.Unlock()
		return wallet.Receipt{}, fmt.Errorf("sold out: %d of %d minted", w.minted, w.supply)
	}
	account := w.account
	w.mu.Unlock()

	txHash := "0x" + strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
	notify := func(kind wallet.MintEventKind) {
		if progress != nil {
			progress(wallet.MintEvent{Kind: kind, TxHash: txHash})
		}
	}

	notify(wallet.MintSubmitted)
	if err := w.wait(ctx); err != nil {
		return wallet.Receipt{}, err
	}

	notify(wallet.MintPending)
	if err := w.wait(ctx); err != nil {
		return wallet.Receipt{}, err
	}

	w.mu.Lock()
	tokens := make([]uint64, 0, quantity)
	for i := 0; i < quantity; i++ {
		w.minted++
		tokens = append(tokens, w.minted)
	}
	w.owned[account.Address] = append(w.owned[account.Address], tokens...)
	w.block++
	w.mu.Unlock()

	notify(wallet.MintConfirmed)
	return wallet.Receipt{TxHash: txHash, TokenIDs: tokens}, nil
}

// Tokens lists token IDs owned by the address
func (w *Wallet) Tokens(ctx context.Context, address string) ([]uint64, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	tokens := w.owned[strings.ToLower(address)]
	if tokens == nil {
		tokens = w.owned[address]
	}
	result := make([]uint64, len(tokens))
	copy(result, tokens)
	return result, nil
}

// Status reports the simulated contract state
func (w *Wallet) Status(ctx context.Context) (wallet.Status, error) {
	select {
	case <-ctx.Done():
		return wallet.Status{}, ctx.Err()
	default:
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	return wallet.Status{
		ChainID: DefaultChainID,
		Block:   w.block,
		Minted:  w.minted,
		Supply:  w.supply,
		Price:   DefaultPrice,
		Paused:  false,
	}, nil
}

func (w *Wallet) wait(ctx context.Context) error {
	if w.stepWait <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(w.stepWait):
		return nil
	}
}

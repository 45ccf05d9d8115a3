package wallet

import (
	"context"
	"errors"
	"regexp"
)

// ErrNotConnected is returned by operations that need an account before
// Connect has succeeded.
var ErrNotConnected = errors.New("wallet not connected")

// ErrUnsupported is returned by providers that cannot perform an operation,
// e.g. minting through a read-only RPC endpoint.
var ErrUnsupported = errors.New("operation not supported by this wallet provider")

// Account is a connected wallet identity
type Account struct {
	Address string
	ChainID uint64
}

// Receipt describes a completed mint
type Receipt struct {
	TxHash   string
	TokenIDs []uint64
}

// Status is a snapshot of the mint contract
type Status struct {
	ChainID uint64
	Block   uint64
	Minted  uint64
	Supply  uint64
	Price   string
	Paused  bool
}

// MintEventKind tags progress notifications during a mint
type MintEventKind string

const (
	MintSubmitted MintEventKind = "submitted"
	MintPending   MintEventKind = "pending"
	MintConfirmed MintEventKind = "confirmed"
)

// MintEvent is pushed to the progress callback while a mint is in flight
type MintEvent struct {
	Kind   MintEventKind
	TxHash string
}

// ProgressFunc receives mint progress events. It may be nil.
type ProgressFunc func(MintEvent)

// Wallet is the narrow interface the terminal commands call through. All
// blocking operations take a context.
type Wallet interface {
	// Connect establishes the wallet session and returns the account.
	Connect(ctx context.Context) (Account, error)
	// Account returns the connected account, if any.
	Account() (Account, bool)
	// Mint mints quantity tokens, reporting progress along the way.
	Mint(ctx context.Context, quantity int, progress ProgressFunc) (Receipt, error)
	// Tokens lists token IDs owned by the address.
	Tokens(ctx context.Context, address string) ([]uint64, error)
	// Status fetches the current contract status.
	Status(ctx context.Context) (Status, error)
}

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// IsHexAddress reports whether s looks like a 20-byte hex address
func IsHexAddress(s string) bool {
	return addressPattern.MatchString(s)
}

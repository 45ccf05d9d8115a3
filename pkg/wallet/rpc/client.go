package rpc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/mintgate/mintterm/pkg/logging"
	"github.com/mintgate/mintterm/pkg/wallet"
)

// Contract function selectors (first four bytes of the keccak hash of the
// canonical signature).
const (
	selTotalSupply = "0x18160ddd" // totalSupply()
	selMaxSupply   = "0xd5abeb01" // maxSupply()
	selPaused      = "0x5c975abb" // paused()
	selPrice       = "0xa035b1fe" // price()
	selBalanceOf   = "0x70a08231" // balanceOf(address)
	selTokenByIdx  = "0x2f745c59" // tokenOfOwnerByIndex(address,uint256)
)

const (
	defaultTimeout = 15 * time.Second
	maxAttempts    = 3
	retryBackoff   = 100 * time.Millisecond
)

// Client is a read-only wallet provider speaking plain JSON-RPC to a node.
// It can inspect the mint contract but cannot sign, so Mint reports
// wallet.ErrUnsupported.
type Client struct {
	endpoint string
	contract string
	http     *http.Client
	logger   logging.Logger

	mu      sync.RWMutex
	account wallet.Account
	linked  bool
}

// NewClient creates a JSON-RPC wallet provider for the given node endpoint
// and contract address.
func NewClient(endpoint, contract string) *Client {
	return &Client{
		endpoint: endpoint,
		contract: contract,
		http:     &http.Client{Timeout: defaultTimeout},
		logger:   logging.NewRPCLogger(endpoint),
	}
}

// Connect resolves the node identity. JSON-RPC nodes expose no user account,
// so the session binds to the first address the node reports, when any.
func (c *Client) Connect(ctx context.Context) (wallet.Account, error) {
	chainHex, err := c.call(ctx, "eth_chainId")
	if err != nil {
		return wallet.Account{}, fmt.Errorf("eth_chainId: %w", err)
	}
	chainID, err := parseHexUint(chainHex)
	if err != nil {
		return wallet.Account{}, err
	}

	address := "0x0000000000000000000000000000000000000000"
	if accounts, err := c.call(ctx, "eth_accounts"); err == nil {
		if first := gjson.Parse(accounts).Get("0"); first.Exists() {
			address = first.String()
		}
	}

	account := wallet.Account{Address: address, ChainID: chainID}

	c.mu.Lock()
	c.account = account
	c.linked = true
	c.mu.Unlock()

	c.logger.Debug("connected", "chain", chainID, "address", address)
	return account, nil
}

// Account returns the connected account, if any
func (c *Client) Account() (wallet.Account, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.account, c.linked
}

// Mint is unavailable over a read-only endpoint
func (c *Client) Mint(ctx context.Context, quantity int, progress wallet.ProgressFunc) (wallet.Receipt, error) {
	return wallet.Receipt{}, wallet.ErrUnsupported
}

// Tokens lists token IDs owned by the address via enumerable contract calls
func (c *Client) Tokens(ctx context.Context, address string) ([]uint64, error) {
	balance, err := c.contractCallUint(ctx, selBalanceOf+encodeAddress(address))
	if err != nil {
		return nil, fmt.Errorf("balanceOf: %w", err)
	}

	tokens := make([]uint64, 0, balance)
	for i := uint64(0); i < balance; i++ {
		data := selTokenByIdx + encodeAddress(address) + encodeUint(i)
		id, err := c.contractCallUint(ctx, data)
		if err != nil {
			return nil, fmt.Errorf("tokenOfOwnerByIndex(%d): %w", i, err)
		}
		tokens = append(tokens, id)
	}
	return tokens, nil
}

// Status fetches chain and contract state in a handful of calls
func (c *Client) Status(ctx context.Context) (wallet.Status, error) {
	var status wallet.Status

	chainHex, err := c.call(ctx, "eth_chainId")
	if err != nil {
		return status, fmt.Errorf("eth_chainId: %w", err)
	}
	if status.ChainID, err = parseHexUint(chainHex); err != nil {
		return status, err
	}

	blockHex, err := c.call(ctx, "eth_blockNumber")
	if err != nil {
		return status, fmt.Errorf("eth_blockNumber: %w", err)
	}
	if status.Block, err = parseHexUint(blockHex); err != nil {
		return status, err
	}

	if status.Minted, err = c.contractCallUint(ctx, selTotalSupply); err != nil {
		return status, fmt.Errorf("totalSupply: %w", err)
	}
	if status.Supply, err = c.contractCallUint(ctx, selMaxSupply); err != nil {
		return status, fmt.Errorf("maxSupply: %w", err)
	}

	priceWei, err := c.contractCallUint(ctx, selPrice)
	if err != nil {
		return status, fmt.Errorf("price: %w", err)
	}
	status.Price = formatWei(priceWei)

	pausedWord, err := c.contractCallUint(ctx, selPaused)
	if err != nil {
		return status, fmt.Errorf("paused: %w", err)
	}
	status.Paused = pausedWord != 0

	return status, nil
}

// contractCallUint performs eth_call against the contract and decodes a
// single uint256 return word.
func (c *Client) contractCallUint(ctx context.Context, data string) (uint64, error) {
	result, err := c.call(ctx, "eth_call",
		map[string]string{"to": c.contract, "data": data}, "latest")
	if err != nil {
		return 0, err
	}
	return parseHexUint(result)
}

// call performs a JSON-RPC request and returns the raw result value.
// Transport-level failures (network errors, 429 and 5xx) are retried a
// couple of times with a short backoff; RPC-level errors are final.
func (c *Client) call(ctx context.Context, method string, params ...interface{}) (string, error) {
	body := `{"jsonrpc":"2.0"}`
	body, _ = sjson.Set(body, "id", uuid.NewString())
	body, _ = sjson.Set(body, "method", method)
	if params == nil {
		params = []interface{}{}
	}
	body, _ = sjson.Set(body, "params", params)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Duration(attempt-1) * retryBackoff):
			}
			c.logger.Debug("retrying rpc call", "method", method, "attempt", attempt)
		}

		result, transient, err := c.roundTrip(ctx, method, body)
		if err == nil {
			return result, nil
		}
		if !transient {
			return "", err
		}
		lastErr = err
	}
	return "", lastErr
}

// roundTrip performs one HTTP exchange. The bool reports whether a failure
// is worth retrying.
func (c *Client) roundTrip(ctx context.Context, method, body string) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(body))
	if err != nil {
		return "", false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", true, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, err
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return "", true, fmt.Errorf("rpc status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("rpc status %d", resp.StatusCode)
	}

	parsed := gjson.ParseBytes(raw)
	if errMsg := parsed.Get("error.message"); errMsg.Exists() {
		return "", false, fmt.Errorf("rpc error: %s", errMsg.String())
	}

	result := parsed.Get("result")
	if !result.Exists() {
		return "", false, fmt.Errorf("rpc response missing result")
	}

	c.logger.Debug("rpc call", "method", method)
	return result.Raw, false, nil
}

// parseHexUint decodes a quantity like "0x2a" (possibly JSON-quoted, possibly
// a 32-byte call return word) into a uint64.
func parseHexUint(raw string) (uint64, error) {
	s := strings.Trim(raw, `"`)
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed hex quantity %q: %w", raw, err)
	}
	return n, nil
}

// encodeAddress left-pads an address into a 32-byte call argument
func encodeAddress(address string) string {
	hex := strings.ToLower(strings.TrimPrefix(address, "0x"))
	return strings.Repeat("0", 64-len(hex)) + hex
}

// encodeUint encodes a uint into a 32-byte call argument
func encodeUint(n uint64) string {
	hex := strconv.FormatUint(n, 16)
	return strings.Repeat("0", 64-len(hex)) + hex
}

// formatWei renders a wei amount as a decimal ETH string
func formatWei(wei uint64) string {
	const weiPerEth = 1e18
	eth := float64(wei) / weiPerEth
	return strconv.FormatFloat(eth, 'f', -1, 64) + " ETH"
}

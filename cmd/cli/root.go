package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mintgate/mintterm/cmd/tui"
	"github.com/mintgate/mintterm/pkg/config"
	"github.com/mintgate/mintterm/pkg/logging"
	"github.com/mintgate/mintterm/pkg/version"
	"github.com/mintgate/mintterm/pkg/wallet"
	"github.com/mintgate/mintterm/pkg/wallet/rpc"
	"github.com/mintgate/mintterm/pkg/wallet/sim"
)

var (
	verbose bool
	quiet   bool
	rpcURL  string
	contract string
)

var RootCmd = &cobra.Command{
	Use:   "mintterm",
	Short: "Terminal-styled mint console",
	Long: `mintterm opens a retro terminal for the MintGate collection.
Connect a wallet, mint tokens, and browse holdings from a command line
that lives inside your terminal.`,
	Version:       version.GetInfo().Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; the environment wins when both are set
		_ = godotenv.Load()
		setupLogging()
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.NewManager()

		endpoint := rpcURL
		if endpoint == "" {
			endpoint = cfg.GetStringWithDefault(config.KeyRPCURL, "")
		}
		contractAddr := contract
		if contractAddr == "" {
			contractAddr = cfg.GetStringWithDefault(config.KeyContractAddr, "")
		}

		var w wallet.Wallet
		if endpoint != "" && contractAddr != "" {
			w = rpc.NewClient(endpoint, contractAddr)
		} else {
			w = sim.NewWallet()
		}

		app, err := tui.NewApp(tui.Options{
			Wallet:     w,
			AccessCode: cfg.GetStringWithDefault(config.KeyAccessCode, ""),
		})
		if err != nil {
			return err
		}
		defer app.Stop()

		return app.Run()
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	RootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")
	RootCmd.Flags().StringVar(&rpcURL, "rpc-url", "", "JSON-RPC endpoint (overrides MINTTERM_RPC_URL)")
	RootCmd.Flags().StringVar(&contract, "contract", "", "collection contract address (overrides MINTTERM_CONTRACT)")
	RootCmd.SetVersionTemplate(version.GetInfo().String() + "\n")
	RootCmd.SetOut(os.Stdout)
}

func setupLogging() {
	logger := logging.NewFileLoggerFromEnv("mintterm-debug.log")
	switch {
	case quiet:
		logger.SetLevel(slog.LevelError)
	case verbose:
		logger.SetLevel(slog.LevelDebug)
	}
	logging.SetGlobalLogger(logger)
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

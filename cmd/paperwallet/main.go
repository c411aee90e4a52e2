// Command paperwallet generates paper wallets from user-supplied entropy,
// either through an HTTP API or interactively in a terminal.
//
// @title        Paper Wallet API
// @version      1.0
// @description  Collects user entropy and renders printable paper wallets with QR codes.
// @BasePath     /
package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/paper-wallet/internal/api"
	"github.com/AlexZinkM/paper-wallet/internal/config"
	"github.com/AlexZinkM/paper-wallet/internal/engine"
)

var version = "dev" // set by the linker

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Environment configuration is loaded
// before any subcommand runs; flags override it.
func newRootCmd() *cobra.Command {
	var (
		network string
		count   int
		testnet bool
	)

	cmd := &cobra.Command{
		Use:     "paperwallet",
		Short:   "Paper wallet generator",
		Version: version,
		Long: `paperwallet derives wallet addresses and private keys from your own
randomness mixed with the system random source, and renders them as
printable sections with QR codes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Init(); err != nil {
				return err
			}
			cfg := config.Get()
			flags := cmd.Flags()
			if flags.Changed("network") {
				cfg.Network = network
			}
			if flags.Changed("count") {
				cfg.AddressCount = count
			}
			if flags.Changed("testnet") {
				cfg.Testnet = testnet
			}
			return cfg.Validate()
		},
	}

	cmd.PersistentFlags().StringVar(&network, "network", config.NetworkSolana, "network to generate wallets for (solana|bitcoin)")
	cmd.PersistentFlags().IntVarP(&count, "count", "n", 2, "number of addresses to generate")
	cmd.PersistentFlags().BoolVar(&testnet, "testnet", false, "generate testnet addresses")

	cmd.AddCommand(newServeCmd(), newGenerateCmd(), newGreetCmd())
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the paper wallet HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEngine(config.Get())
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              ":" + config.GetPort(),
				Handler:           api.SetupRouter(e),
				ReadHeaderTimeout: 10 * time.Second,
			}
			log.Printf("paperwallet %s: generating %d %s addresses per wallet, listening on %s",
				version, config.GetAddressCount(), config.GetNetwork(), srv.Addr)
			return srv.ListenAndServe()
		},
	}
}

func newGreetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "greet",
		Short: "Print one demo wallet generated without user entropy",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEngine(config.Get())
			if err != nil {
				return err
			}
			payload, err := e.Greet()
			if err != nil {
				return err
			}
			set, err := engine.ParseWalletSet(payload)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), set)
		},
	}
}

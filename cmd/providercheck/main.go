// Command providercheck fans a health check out across every endpoint in a
// config file concurrently, ranks them by success rate, tail latency, and
// block-height freshness, and cross-checks block height/hash agreement —
// the multi-endpoint analogue of ethcli's single-connector commands.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmagro/ethrpc/internal/env"
)

func main() {
	env.Load()

	var (
		configPath string
		samples    int
	)

	root := &cobra.Command{
		Use:   "providercheck",
		Short: "Rank configured RPC endpoints by health and cross-check block consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			samplesSet := cmd.Flags().Changed("samples")
			return run(context.Background(), configPath, samples, samplesSet)
		},
	}
	root.Flags().StringVar(&configPath, "config", "config/endpoints.yaml", "path to the endpoints YAML file")
	root.Flags().IntVar(&samples, "samples", 5, "number of eth_blockNumber samples per endpoint (default: config's health_samples, else 5)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

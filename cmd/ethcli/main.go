// Command ethcli drives a single connector over whichever transport a
// config.Endpoint names: blocknumber, getblock, gettx, call, and the
// subscribe-newheads/subscribe-logs streaming commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmagro/ethrpc/internal/env"
)

var (
	configPath   string
	endpointName string
)

func main() {
	env.Load()

	root := &cobra.Command{
		Use:   "ethcli",
		Short: "Drive a single Ethereum JSON-RPC endpoint over HTTP, WebSocket, or a Unix socket",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config/endpoints.yaml", "path to the endpoints YAML file")
	root.PersistentFlags().StringVar(&endpointName, "endpoint", "", "name of the endpoint to dial (config/endpoints.yaml)")

	root.AddCommand(
		newBlockNumberCmd(),
		newGetBlockCmd(),
		newGetTxCmd(),
		newCallCmd(),
		newSubscribeNewHeadsCmd(),
		newSubscribeLogsCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

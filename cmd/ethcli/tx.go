package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmagro/ethrpc/catalog"
	"github.com/dmagro/ethrpc/connector"
	"github.com/dmagro/ethrpc/ethtypes"
)

func newGetTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gettx <hash>",
		Short: "Call eth_getTransactionByHash and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := parseHash32(args[0])
			if err != nil {
				return err
			}

			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			tx, err := connector.Call[*ethtypes.Transaction](conn, catalog.EthGetTransactionByHash(hash))
			if err != nil {
				return err
			}
			if tx == nil {
				fmt.Println("null")
				return nil
			}
			encoded, err := json.MarshalIndent(tx, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(encoded))
			return nil
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmagro/ethrpc/catalog"
	"github.com/dmagro/ethrpc/connector"
	"github.com/dmagro/ethrpc/rpcvalue"
)

func newBlockNumberCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blocknumber",
		Short: "Call eth_blockNumber and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			height, err := connector.Call[rpcvalue.Bytes](conn, catalog.EthBlockNumber())
			if err != nil {
				return err
			}
			fmt.Println(height.String())
			return nil
		},
	}
}

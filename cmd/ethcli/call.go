package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmagro/ethrpc/catalog"
	"github.com/dmagro/ethrpc/connector"
	"github.com/dmagro/ethrpc/ethtypes"
	"github.com/dmagro/ethrpc/rpcvalue"
)

func newCallCmd() *cobra.Command {
	var to, data, from string
	cmd := &cobra.Command{
		Use:   "call",
		Short: "Call eth_call (a gas-free read-only execution) and print the returned bytes",
		RunE: func(cmd *cobra.Command, args []string) error {
			var toAddr *rpcvalue.Address
			if to != "" {
				addr, err := parseAddress(to)
				if err != nil {
					return err
				}
				toAddr = &addr
			}

			var fromAddr rpcvalue.Address
			if from != "" {
				addr, err := parseAddress(from)
				if err != nil {
					return err
				}
				fromAddr = addr
			}

			var input *rpcvalue.Bytes
			if data != "" {
				decoded, err := parseBytes(data)
				if err != nil {
					return err
				}
				input = &decoded
			}

			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			req := ethtypes.TransactionRequest{From: fromAddr, To: toAddr, Data: input}
			result, err := connector.Call[rpcvalue.Bytes](conn, catalog.EthCall(req, rpcvalue.DefaultBlockParameter()))
			if err != nil {
				return err
			}
			fmt.Println(result.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "contract address to call (0x...)")
	cmd.Flags().StringVar(&from, "from", "", "sender address (0x...)")
	cmd.Flags().StringVar(&data, "data", "", "calldata (0x...)")
	return cmd
}

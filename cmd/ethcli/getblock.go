package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmagro/ethrpc/catalog"
	"github.com/dmagro/ethrpc/connector"
	"github.com/dmagro/ethrpc/ethtypes"
	"github.com/dmagro/ethrpc/rpcvalue"
)

func newGetBlockCmd() *cobra.Command {
	var fullTransactions bool
	cmd := &cobra.Command{
		Use:   "getblock [latest|earliest|pending|<number>]",
		Short: "Call eth_getBlockByNumber and print the result as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			block := rpcvalue.DefaultBlockParameter()
			if len(args) == 1 {
				parsed, err := parseBlockParameter(args[0])
				if err != nil {
					return err
				}
				block = parsed
			}

			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			result, err := connector.Call[*ethtypes.Block](conn, catalog.EthGetBlockByNumber(block, fullTransactions))
			if err != nil {
				return err
			}
			if result == nil {
				fmt.Println("null")
				return nil
			}
			encoded, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(encoded))
			return nil
		},
	}
	cmd.Flags().BoolVar(&fullTransactions, "full", false, "include full transaction objects instead of hashes")
	return cmd
}

func parseBlockParameter(s string) (rpcvalue.BlockParameter, error) {
	switch rpcvalue.BlockTag(s) {
	case rpcvalue.Latest, rpcvalue.Earliest, rpcvalue.Pending:
		return rpcvalue.BlockByTag(rpcvalue.BlockTag(s)), nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return rpcvalue.BlockParameter{}, fmt.Errorf("invalid block selector %q: must be latest, earliest, pending, or a decimal number", s)
	}
	return rpcvalue.BlockByNumber(n), nil
}

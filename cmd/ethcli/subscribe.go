package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/dmagro/ethrpc/catalog"
	"github.com/dmagro/ethrpc/connector"
	"github.com/dmagro/ethrpc/ethtypes"
)

func newSubscribeNewHeadsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subscribe-newheads",
		Short: "Open an eth_subscribe(\"newHeads\") stream and print each header until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			sub, err := connector.Subscribe[ethtypes.BlockHeader](conn, catalog.EthSubscribeNewHeads())
			if err != nil {
				return err
			}
			defer sub.Close()

			return streamUntilInterrupted(func() error {
				header, err := sub.Next()
				if err != nil {
					return err
				}
				encoded, err := json.Marshal(header)
				if err != nil {
					return err
				}
				fmt.Println(string(encoded))
				return nil
			})
		},
	}
}

func newSubscribeLogsCmd() *cobra.Command {
	var address string
	cmd := &cobra.Command{
		Use:   "subscribe-logs",
		Short: "Open an eth_subscribe(\"logs\", filter) stream and print each log until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ethtypes.Filter{}
			if address != "" {
				addr, err := parseAddress(address)
				if err != nil {
					return err
				}
				filter.Address = &addr
			}

			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			sub, err := connector.Subscribe[ethtypes.Log](conn, catalog.EthSubscribeLogs(filter))
			if err != nil {
				return err
			}
			defer sub.Close()

			return streamUntilInterrupted(func() error {
				entry, err := sub.Next()
				if err != nil {
					return err
				}
				encoded, err := json.Marshal(entry)
				if err != nil {
					return err
				}
				fmt.Println(string(encoded))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "restrict the filter to logs from this contract address")
	return cmd
}

// streamUntilInterrupted calls next in a loop until it errors or the
// process receives SIGINT, whichever comes first.
func streamUntilInterrupted(next func() error) error {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	done := make(chan error, 1)
	go func() {
		for {
			if err := next(); err != nil {
				done <- err
				return
			}
		}
	}()

	select {
	case <-interrupt:
		return nil
	case err := <-done:
		return err
	}
}

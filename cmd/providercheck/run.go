package main

import (
	"context"
	"fmt"

	"github.com/rodaine/table"

	"github.com/dmagro/ethrpc/catalog"
	"github.com/dmagro/ethrpc/connector"
	"github.com/dmagro/ethrpc/ethtypes"
	"github.com/dmagro/ethrpc/internal/config"
	"github.com/dmagro/ethrpc/internal/format"
	"github.com/dmagro/ethrpc/internal/metrics"
	"github.com/dmagro/ethrpc/internal/provider"
	"github.com/dmagro/ethrpc/rpcvalue"
)

func blockParameterFor(height uint64) rpcvalue.BlockParameter {
	return rpcvalue.BlockByNumber(height)
}

func run(ctx context.Context, configPath string, samples int, samplesSet bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", configPath, err)
	}

	if !samplesSet && cfg.Defaults.HealthSamples > 0 {
		samples = cfg.Defaults.HealthSamples
	}

	ranked, err := provider.QuickHealthCheck(ctx, cfg, samples)
	if err != nil {
		return err
	}
	printHealthTable(ranked)

	report := checkConsistency(ctx, cfg, ranked)
	printConsistencyReport(report)

	best, err := ranked.Best()
	if err != nil {
		fmt.Println()
		fmt.Println(format.Yellow(err.Error()))
		return nil
	}
	fmt.Println()
	fmt.Printf("best endpoint: %s\n", format.Bold(best.Name))
	return nil
}

func printHealthTable(ranked provider.RankedEndpoints) {
	tbl := table.New("ENDPOINT", "TRANSPORT", "STATUS", "SUCCESS", "P95", "BLOCK", "LAG", "SCORE")
	for _, h := range ranked {
		tbl.AddRow(
			h.Name,
			string(h.Transport),
			format.ColorStatus(h.Status),
			format.ColorSuccess(h.SuccessRate),
			format.ColorLatency(h.P95Latency.Milliseconds()),
			h.BlockHeight,
			format.ColorLag(h.BlockDelta),
			fmt.Sprintf("%.2f", h.Score),
		)
	}
	tbl.Print()
}

// checkConsistency takes each endpoint's block height from the health
// check, then samples the eth_getBlockByNumber hash at the reference height
// (the lowest height any healthy endpoint reported) to check that every
// endpoint agrees on the canonical chain.
func checkConsistency(ctx context.Context, cfg *config.Config, ranked provider.RankedEndpoints) *metrics.ConsistencyReport {
	heightByName := make(map[string]uint64, len(ranked))
	for _, h := range ranked {
		if !h.Excluded {
			heightByName[h.Name] = h.BlockHeight
		}
	}

	var refHeight uint64
	first := true
	for _, height := range heightByName {
		if first || height < refHeight {
			refHeight = height
			first = false
		}
	}

	heights := make([]metrics.HeightData, 0, len(ranked))
	for _, h := range ranked {
		heights = append(heights, metrics.HeightData{Endpoint: h.Name, Height: h.BlockHeight, Success: !h.Excluded})
	}

	results := provider.ExecuteAll(ctx, cfg.Endpoints, func(ctx context.Context, e config.Endpoint) (string, error) {
		if _, ok := heightByName[e.Name]; !ok {
			return "", fmt.Errorf("excluded")
		}
		conn, err := e.Dial()
		if err != nil {
			return "", err
		}
		defer conn.Close()

		block, err := connector.Call[*ethtypes.Block](conn, catalog.EthGetBlockByNumber(blockParameterFor(refHeight), false))
		if err != nil {
			return "", err
		}
		if block == nil {
			return "", fmt.Errorf("no block at height %d", refHeight)
		}
		return block.Hash.String(), nil
	})

	hashes := make([]metrics.HashData, 0, len(results))
	for _, r := range results {
		hashes = append(hashes, metrics.HashData{
			Endpoint: r.EndpointName,
			Height:   refHeight,
			Hash:     r.Value,
			Success:  r.Err == nil,
		})
	}

	checker := metrics.NewConsistencyChecker()
	return checker.CheckTwoPhase(heights, hashes)
}

func printConsistencyReport(report *metrics.ConsistencyReport) {
	fmt.Println()
	fmt.Println(format.Bold("consistency:"))
	fmt.Printf("  height variance: %s\n", metrics.FormatHeightDrift(report.HeightVariance))
	if report.HashConsensus {
		fmt.Printf("  hash consensus at height %d: %s\n", report.ReferenceHeight, format.Green("agree"))
	} else {
		fmt.Printf("  hash consensus at height %d: %s\n", report.ReferenceHeight, format.Red("disagree"))
	}
	for _, issue := range report.Issues {
		fmt.Printf("  - %s\n", format.Yellow(issue))
	}
}

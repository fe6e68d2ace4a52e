package provider

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmagro/ethrpc/catalog"
	"github.com/dmagro/ethrpc/connector"
	"github.com/dmagro/ethrpc/internal/config"
	"github.com/dmagro/ethrpc/internal/stats"
	"github.com/dmagro/ethrpc/rpcvalue"
	"github.com/dmagro/ethrpc/transport"
)

// EndpointHealth holds health check results for one endpoint.
type EndpointHealth struct {
	Name          string
	Transport     transport.Kind
	Status        string // UP, SLOW, DEGRADED, DOWN
	SuccessRate   float64
	AvgLatency    time.Duration
	P95Latency    time.Duration
	BlockHeight   uint64
	BlockDelta    int
	Score         float64
	Excluded      bool
	ExcludeReason string
	Samples       int
}

// RankedEndpoints is a list of endpoints sorted by descending score.
type RankedEndpoints []EndpointHealth

// QuickHealthCheck dials every endpoint in cfg, samples eth_blockNumber
// `samples` times per endpoint, and ranks the results. Each endpoint is
// dialed once and used strictly sequentially from its own goroutine,
// per Connector's no-internal-locking contract.
func QuickHealthCheck(ctx context.Context, cfg *config.Config, samples int) (RankedEndpoints, error) {
	if samples <= 0 {
		samples = 5
	}

	conns := make(map[string]*connector.Connector, len(cfg.Endpoints))
	for _, e := range cfg.Endpoints {
		conn, err := e.Dial()
		if err != nil {
			continue // recorded as DOWN below: it has no endpointData entry
		}
		conns[e.Name] = conn
	}
	defer func() {
		for _, conn := range conns {
			_ = conn.Close()
		}
	}()

	type sampleResult struct {
		endpoint string
		latency  time.Duration
		height   uint64
		success  bool
	}

	results := make([]sampleResult, 0, len(conns)*samples)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)

	for name, conn := range conns {
		name, conn := name, conn
		g.Go(func() error {
			for i := 0; i < samples; i++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				start := time.Now()
				height, err := connector.Call[rpcvalue.Bytes](conn, catalog.EthBlockNumber())
				latency := time.Since(start)

				mu.Lock()
				results = append(results, sampleResult{
					endpoint: name,
					latency:  latency,
					height:   new(big.Int).SetBytes(height).Uint64(),
					success:  err == nil,
				})
				mu.Unlock()

				if i < samples-1 {
					time.Sleep(50 * time.Millisecond)
				}
			}
			return nil
		})
	}

	_ = g.Wait()

	endpointData := make(map[string]*struct {
		latencies []time.Duration
		heights   []uint64
		successes int
		total     int
	})
	for name := range conns {
		endpointData[name] = &struct {
			latencies []time.Duration
			heights   []uint64
			successes int
			total     int
		}{}
	}

	for _, r := range results {
		pd := endpointData[r.endpoint]
		pd.total++
		if r.success {
			pd.successes++
			pd.latencies = append(pd.latencies, r.latency)
			pd.heights = append(pd.heights, r.height)
		}
	}

	if len(cfg.Endpoints) == 0 {
		return nil, fmt.Errorf("no endpoints configured")
	}

	var maxHeight uint64
	for _, pd := range endpointData {
		for _, h := range pd.heights {
			if h > maxHeight {
				maxHeight = h
			}
		}
	}

	ranked := make(RankedEndpoints, 0, len(cfg.Endpoints))
	for _, e := range cfg.Endpoints {
		pd, dialed := endpointData[e.Name]
		health := EndpointHealth{Name: e.Name}
		if conn, ok := conns[e.Name]; ok {
			health.Transport, _ = conn.Kind()
		}

		if !dialed || pd.total == 0 {
			health.Status = "DOWN"
			health.Excluded = true
			health.ExcludeReason = "endpoint could not be dialed or sampled"
			ranked = append(ranked, health)
			continue
		}

		health.Samples = pd.total
		health.SuccessRate = float64(pd.successes) / float64(pd.total) * 100

		if len(pd.latencies) > 0 {
			health.AvgLatency = avgDuration(pd.latencies)
			health.P95Latency = stats.CalculateTailLatency(pd.latencies).P95
		}
		if len(pd.heights) > 0 {
			health.BlockHeight = pd.heights[len(pd.heights)-1]
			health.BlockDelta = int(maxHeight - health.BlockHeight)
		}

		switch {
		case health.SuccessRate < 50:
			health.Status = "DOWN"
		case health.SuccessRate < 90:
			health.Status = "DEGRADED"
		case health.P95Latency > 500*time.Millisecond:
			health.Status = "SLOW"
		default:
			health.Status = "UP"
		}

		health.Score = calculateScore(health)

		if health.SuccessRate < 80 {
			health.Excluded = true
			health.ExcludeReason = fmt.Sprintf("success rate %.1f%% below threshold", health.SuccessRate)
		} else if health.BlockDelta > 5 {
			health.Excluded = true
			health.ExcludeReason = fmt.Sprintf("%d blocks behind", health.BlockDelta)
		}

		ranked = append(ranked, health)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Name < ranked[j].Name
	})

	return ranked, nil
}

// Best returns the best non-excluded endpoint.
func (rp RankedEndpoints) Best() (EndpointHealth, error) {
	for _, p := range rp {
		if !p.Excluded {
			return p, nil
		}
	}
	if len(rp) > 0 {
		return rp[0], fmt.Errorf("all endpoints degraded, using least-bad: %s", rp[0].Name)
	}
	return EndpointHealth{}, fmt.Errorf("no endpoints available")
}

func calculateScore(h EndpointHealth) float64 {
	successScore := h.SuccessRate / 100.0

	latencyMs := float64(h.P95Latency.Milliseconds())
	latencyScore := 1.0 - (latencyMs / 1000.0)
	if latencyScore < 0 {
		latencyScore = 0
	}

	freshnessScore := 1.0 - (float64(h.BlockDelta) / 10.0)
	if freshnessScore < 0 {
		freshnessScore = 0
	}

	return (successScore * 0.5) + (latencyScore * 0.3) + (freshnessScore * 0.2)
}

func avgDuration(durations []time.Duration) time.Duration {
	if len(durations) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range durations {
		total += d
	}
	return total / time.Duration(len(durations))
}

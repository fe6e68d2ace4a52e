// Package metrics cross-checks block height and hash agreement across the
// endpoints cmd/providercheck samples concurrently.
package metrics

import (
	"fmt"
	"sort"
)

// ConsistencyReport holds the results of a cross-endpoint consistency check.
type ConsistencyReport struct {
	Heights               map[string]uint64
	MaxHeight             uint64
	HeightVariance        int
	HeightConsensus       bool
	AuthoritativeEndpoint string

	ReferenceHeight uint64
	Hashes          map[string]string
	HashConsensus   bool
	HashGroups      []HashGroup

	Consistent bool
	Issues     []string
}

// HashGroup is the set of endpoints that reported the same block hash.
type HashGroup struct {
	Hash      string
	Endpoints []string
}

// ConsistencyChecker validates block-height and block-hash agreement
// across endpoints, tolerating a small amount of propagation drift.
type ConsistencyChecker struct {
	acceptableHeightDrift int
}

// NewConsistencyChecker returns a checker that tolerates 2 blocks
// (~24s at Ethereum's block time) of height drift before flagging it.
func NewConsistencyChecker() *ConsistencyChecker {
	return &ConsistencyChecker{acceptableHeightDrift: 2}
}

// HeightData is one endpoint's sampled block height.
type HeightData struct {
	Endpoint string
	Height   uint64
	Success  bool
}

// HashData is one endpoint's sampled block hash at a given height.
type HashData struct {
	Endpoint string
	Height   uint64
	Hash     string
	Success  bool
}

// CheckTwoPhase finds the reference height (the minimum height any
// endpoint reported) and compares hashes only at that height — comparing
// hashes across different heights would flag normal propagation lag as
// a hash disagreement.
func (c *ConsistencyChecker) CheckTwoPhase(heights []HeightData, hashes []HashData) *ConsistencyReport {
	report := &ConsistencyReport{
		Heights:    make(map[string]uint64),
		Hashes:     make(map[string]string),
		Consistent: true,
	}

	var maxHeight uint64
	var maxEndpoint string
	var minHeight uint64
	var hasValidHeight bool

	for _, d := range heights {
		if !d.Success {
			continue
		}
		report.Heights[d.Endpoint] = d.Height
		if d.Height > maxHeight {
			maxHeight = d.Height
			maxEndpoint = d.Endpoint
		}
		if !hasValidHeight || d.Height < minHeight {
			minHeight = d.Height
			hasValidHeight = true
		}
	}

	report.MaxHeight = maxHeight
	report.AuthoritativeEndpoint = maxEndpoint
	report.ReferenceHeight = minHeight
	report.HeightVariance = int(maxHeight - minHeight)
	report.HeightConsensus = report.HeightVariance <= c.acceptableHeightDrift

	if !report.HeightConsensus {
		report.Consistent = false
		report.Issues = append(report.Issues,
			fmt.Sprintf("block height variance of %d blocks exceeds threshold", report.HeightVariance))
	}

	for _, d := range hashes {
		if d.Success && d.Height == report.ReferenceHeight {
			report.Hashes[d.Endpoint] = d.Hash
		}
	}

	c.checkHashConsensus(report)
	return report
}

func (c *ConsistencyChecker) checkHashConsensus(report *ConsistencyReport) {
	if len(report.Hashes) == 0 {
		report.HashConsensus = false
		return
	}

	hashToEndpoints := make(map[string][]string)
	for endpoint, hash := range report.Hashes {
		hashToEndpoints[hash] = append(hashToEndpoints[hash], endpoint)
	}
	for hash, endpoints := range hashToEndpoints {
		sort.Strings(endpoints)
		report.HashGroups = append(report.HashGroups, HashGroup{Hash: hash, Endpoints: endpoints})
	}
	sort.Slice(report.HashGroups, func(i, j int) bool {
		return len(report.HashGroups[i].Endpoints) > len(report.HashGroups[j].Endpoints)
	})

	report.HashConsensus = len(report.HashGroups) <= 1
	if !report.HashConsensus {
		report.Consistent = false
		majorityCount := len(report.HashGroups[0].Endpoints)
		for _, group := range report.HashGroups {
			if len(group.Endpoints) < majorityCount {
				report.Issues = append(report.Issues,
					fmt.Sprintf("endpoint(s) %v report a different block hash at height %d (possible reorg or stale data)",
						group.Endpoints, report.ReferenceHeight))
			}
		}
	}
}

// FormatHeightDrift renders a block-count drift as a human-readable
// approximate duration, assuming a 12-second block time.
func FormatHeightDrift(drift int) string {
	if drift == 0 {
		return "all endpoints in sync"
	}
	seconds := drift * 12
	if seconds < 60 {
		return fmt.Sprintf("%d block(s) behind (~%ds)", drift, seconds)
	}
	return fmt.Sprintf("%d block(s) behind (~%dm)", drift, seconds/60)
}

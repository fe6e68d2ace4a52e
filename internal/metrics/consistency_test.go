package metrics

import "testing"

func TestCheckTwoPhaseHashConsensus(t *testing.T) {
	tests := []struct {
		name          string
		heights       []HeightData
		hashes        []HashData
		wantConsensus bool
		wantGroups    int
	}{
		{
			name: "all_same_hash",
			heights: []HeightData{
				{Endpoint: "a", Height: 100, Success: true},
				{Endpoint: "b", Height: 100, Success: true},
				{Endpoint: "c", Height: 100, Success: true},
			},
			hashes: []HashData{
				{Endpoint: "a", Height: 100, Hash: "0xabc", Success: true},
				{Endpoint: "b", Height: 100, Hash: "0xabc", Success: true},
				{Endpoint: "c", Height: 100, Hash: "0xabc", Success: true},
			},
			wantConsensus: true,
			wantGroups:    1,
		},
		{
			name: "one_different_hash",
			heights: []HeightData{
				{Endpoint: "a", Height: 100, Success: true},
				{Endpoint: "b", Height: 100, Success: true},
				{Endpoint: "c", Height: 100, Success: true},
			},
			hashes: []HashData{
				{Endpoint: "a", Height: 100, Hash: "0xabc", Success: true},
				{Endpoint: "b", Height: 100, Hash: "0xabc", Success: true},
				{Endpoint: "c", Height: 100, Hash: "0xdef", Success: true},
			},
			wantConsensus: false,
			wantGroups:    2,
		},
		{
			name: "single_endpoint",
			heights: []HeightData{
				{Endpoint: "a", Height: 100, Success: true},
			},
			hashes: []HashData{
				{Endpoint: "a", Height: 100, Hash: "0xabc", Success: true},
			},
			wantConsensus: true,
			wantGroups:    1,
		},
		{
			name: "failed_sample_excluded",
			heights: []HeightData{
				{Endpoint: "a", Height: 100, Success: true},
				{Endpoint: "b", Height: 100, Success: true},
			},
			hashes: []HashData{
				{Endpoint: "a", Height: 100, Hash: "0xabc", Success: true},
				{Endpoint: "b", Success: false},
			},
			wantConsensus: true,
			wantGroups:    1,
		},
		{
			name: "all_different_hashes",
			heights: []HeightData{
				{Endpoint: "a", Height: 100, Success: true},
				{Endpoint: "b", Height: 100, Success: true},
				{Endpoint: "c", Height: 100, Success: true},
			},
			hashes: []HashData{
				{Endpoint: "a", Height: 100, Hash: "0xabc", Success: true},
				{Endpoint: "b", Height: 100, Hash: "0xdef", Success: true},
				{Endpoint: "c", Height: 100, Hash: "0xghi", Success: true},
			},
			wantConsensus: false,
			wantGroups:    3,
		},
		{
			name:          "no_endpoints",
			heights:       nil,
			hashes:        nil,
			wantConsensus: false,
			wantGroups:    0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			checker := NewConsistencyChecker()
			report := checker.CheckTwoPhase(tc.heights, tc.hashes)
			if report.HashConsensus != tc.wantConsensus {
				t.Errorf("HashConsensus = %v, want %v", report.HashConsensus, tc.wantConsensus)
			}
			if len(report.HashGroups) != tc.wantGroups {
				t.Errorf("len(HashGroups) = %d, want %d", len(report.HashGroups), tc.wantGroups)
			}
		})
	}
}

func TestCheckTwoPhaseHeightVariance(t *testing.T) {
	checker := NewConsistencyChecker()
	report := checker.CheckTwoPhase([]HeightData{
		{Endpoint: "a", Height: 100, Success: true},
		{Endpoint: "b", Height: 105, Success: true},
	}, nil)

	if report.HeightVariance != 5 {
		t.Fatalf("HeightVariance = %d, want 5", report.HeightVariance)
	}
	if report.HeightConsensus {
		t.Fatalf("HeightConsensus = true, want false for a 5-block spread")
	}
	if report.AuthoritativeEndpoint != "b" {
		t.Fatalf("AuthoritativeEndpoint = %q, want %q", report.AuthoritativeEndpoint, "b")
	}
	if report.ReferenceHeight != 100 {
		t.Fatalf("ReferenceHeight = %d, want 100", report.ReferenceHeight)
	}
}

func TestFormatHeightDrift(t *testing.T) {
	cases := []struct {
		drift int
		want  string
	}{
		{0, "all endpoints in sync"},
		{1, "1 block(s) behind (~12s)"},
		{10, "10 block(s) behind (~2m)"},
	}
	for _, tc := range cases {
		if got := FormatHeightDrift(tc.drift); got != tc.want {
			t.Errorf("FormatHeightDrift(%d) = %q, want %q", tc.drift, got, tc.want)
		}
	}
}

package engine

import "testing"

func TestRankSortsDescending(t *testing.T) {
	dist := ScoreDistribution{
		{Disease: "a", Score: 0.1},
		{Disease: "b", Score: 0.7},
		{Disease: "c", Score: 0.2},
	}
	got := Rank(dist, 10, false)
	if got[0].Disease != "b" || got[1].Disease != "c" || got[2].Disease != "a" {
		t.Fatalf("unexpected order: %v", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Probability > got[i-1].Probability {
			t.Fatalf("not non-increasing: %v", got)
		}
	}
}

func TestRankStableTies(t *testing.T) {
	// Equal scores keep emission order; no secondary tie-break.
	dist := ScoreDistribution{
		{Disease: "first", Score: 0.5},
		{Disease: "second", Score: 0.5},
		{Disease: "third", Score: 0.5},
	}
	got := Rank(dist, 10, false)
	if got[0].Disease != "first" || got[1].Disease != "second" || got[2].Disease != "third" {
		t.Fatalf("tie order not preserved: %v", got)
	}
}

func TestRankTruncates(t *testing.T) {
	dist := make(ScoreDistribution, 25)
	for i := range dist {
		dist[i] = DiseaseScore{Disease: "d", Score: float64(i)}
	}
	if got := Rank(dist, 10, false); len(got) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(got))
	}
}

func TestRankDropsNonPositive(t *testing.T) {
	dist := ScoreDistribution{
		{Disease: "keep", Score: 0.4},
		{Disease: "zero", Score: 0},
		{Disease: "neg", Score: -0.1},
	}
	got := Rank(dist, 10, true)
	if len(got) != 1 || got[0].Disease != "keep" {
		t.Fatalf("non-positive entries not dropped: %v", got)
	}
	kept := Rank(dist, 10, false)
	if len(kept) != 3 {
		t.Fatalf("statistical path must keep all entries, got %v", kept)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	dist := ScoreDistribution{
		{Disease: "a", Score: 0.1},
		{Disease: "b", Score: 0.9},
	}
	Rank(dist, 10, false)
	if dist[0].Disease != "a" {
		t.Fatalf("input distribution mutated: %v", dist)
	}
}

package chess

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Perft (C12): a leaf-count conformance oracle over the legal move tree,
// used to catch generator regressions (spec.md §8's "full conformance
// test"). Grounded on treepeck-chego's internal/perft.go, restructured
// around the in-place MakeMove/UnmakeMove of this package instead of a
// pure-copy position type.

// Perft returns the number of leaves of the legal-move tree rooted at pos,
// explored to depth plies.
func Perft(pos *Position, depth int) int64 {
	if depth == 0 {
		return 1
	}
	moves := GenerateMoves(pos)
	if depth == 1 {
		return int64(len(moves))
	}
	var total int64
	for _, m := range moves {
		pos.MakeMove(m)
		total += Perft(pos, depth-1)
		pos.UnmakeMove()
	}
	return total
}

// DivideEntry is one root move's contribution to a Perft count.
type DivideEntry struct {
	Move  Move
	Nodes int64
}

// PerftDivide returns, for every legal root move, the Perft count of the
// subtree it roots at depth-1 — used to localize a conformance divergence
// to a specific first move.
func PerftDivide(pos *Position, depth int) []DivideEntry {
	moves := GenerateMoves(pos)
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		pos.MakeMove(m)
		n := Perft(pos, depth-1)
		pos.UnmakeMove()
		entries = append(entries, DivideEntry{Move: m, Nodes: n})
	}
	return entries
}

// PerftParallel computes the same count as Perft, fanning the first ply
// out across workers workers using golang.org/x/sync/errgroup (grounded on
// the same dependency frankkopp-FrankyGo's go.mod lists, and on
// barakmich-chess parallel_scanner.go's worker-pool shape). Each worker
// clones its own Position before descending, per spec.md §5: "each worker
// owns a distinct Position." This is test tooling, not the multithreaded
// search the Non-goals exclude — no shared mutable position ever crosses
// a goroutine boundary.
func PerftParallel(pos *Position, depth int, workers int) int64 {
	if depth == 0 {
		return 1
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	moves := GenerateMoves(pos)
	if depth == 1 {
		return int64(len(moves))
	}

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)

	counts := make([]int64, len(moves))
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			worker := pos.Clone()
			worker.MakeMove(m)
			counts[i] = Perft(worker, depth-1)
			return nil
		})
	}
	_ = g.Wait()

	var total int64
	for _, c := range counts {
		total += c
	}
	return total
}

package booster

import (
	"github.com/ezoic/boostsplit/core/parallel"
)

// BestSplitParallel is BestSplit with the per-feature scans fanned out over
// workers goroutines. Results land in a per-feature slice and the maximum is
// reduced sequentially by ascending feature index, so the outcome is
// identical to the sequential scan at any concurrency level.
func BestSplitParallel(s Splitter, node *SplittableNode, workers int) *SplitInfo {
	n := node.Histograms.NumFeatures()
	results := make([]*SplitInfo, n)
	parallel.For(n, workers, func(start, end int) {
		for feature := start; feature < end; feature++ {
			results[feature] = BestFeatureSplit(s, node, feature)
		}
	})

	var best *SplitInfo
	bestGain := 0.0
	for _, info := range results {
		if info == nil {
			continue
		}
		if info.SplitGain > bestGain {
			bestGain = info.SplitGain
			best = info
		}
	}
	return best
}

// Package booster implements the split-finding core of a histogram-based
// gradient boosted decision tree trainer.
//
// A feature matrix is first quantized with BinMatrix, which maps every value
// onto a small set of per-feature bins and reserves bin 0 for missing
// values. NewHistogramMatrix then aggregates per-row gradient and hessian
// statistics into one histogram per feature. From there the split search
// operates on histograms only and never touches row data.
//
// # Quick Start
//
//	binned, err := booster.BinMatrix(x, nil, 256)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	grads, hess := booster.GradHess(booster.NewLogLoss(), y, predictions, nil)
//	hists, err := booster.NewHistogramMatrix(binned, grads, hess)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	splitter, err := booster.NewMissingImputerSplitter(booster.SplitterParams{
//	    L2:            1.0,
//	    MinLeafWeight: 1.0,
//	    LearningRate:  0.3,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	node := booster.NewSplittableNode(0, hists, weight, gain, gradSum, hessSum, 0,
//	    math.Inf(-1), math.Inf(1))
//	if best := booster.BestSplit(splitter, node); best != nil {
//	    fmt.Println(best.SplitFeature, best.SplitValue, best.SplitGain)
//	}
//
// MissingImputerSplitter routes rows with a missing feature value down
// whichever child improves the gain more, and optionally admits splits that
// separate missing rows from everything else. Monotonic constraints are
// declared per feature through SplitterParams.Constraints and enforced both
// on candidate gains and on the weight intervals children inherit.
//
// BestSplit scans features sequentially; BestSplitParallel fans the
// per-feature scans out over a worker pool and reduces to the same winner.
package booster

package booster

// SplittableNode is the grower's read-only view of one frontier node: its
// aggregated statistics, its gain and weight as a leaf, the weight interval
// it inherited under monotonic constraints, and its histogram matrix. The
// split search never mutates a node.
type SplittableNode struct {
	Num        int
	Histograms *HistogramMatrix

	WeightValue float64
	GainValue   float64
	GradSum     float64
	HessSum     float64
	Depth       int

	LowerBound float64
	UpperBound float64
}

// NewSplittableNode assembles a node view. Unconstrained nodes carry the
// bounds (-Inf, +Inf).
func NewSplittableNode(num int, hists *HistogramMatrix, weight, gain, gradSum, hessSum float64, depth int, lower, upper float64) *SplittableNode {
	return &SplittableNode{
		Num:         num,
		Histograms:  hists,
		WeightValue: weight,
		GainValue:   gain,
		GradSum:     gradSum,
		HessSum:     hessSum,
		Depth:       depth,
		LowerBound:  lower,
		UpperBound:  upper,
	}
}

package booster

import (
	"math"

	"github.com/ezoic/boostsplit/pkg/errors"
)

// NodeInfo describes one candidate child of a split: its aggregated
// statistics, its gain and shrunk leaf weight, and the weight interval it
// must respect if split further.
type NodeInfo struct {
	Grad       float64
	Gain       float64
	Cover      float64
	Weight     float64
	LowerBound float64
	UpperBound float64
}

// MissingDirection tags how rows missing a value for the split feature are
// routed at prediction time.
type MissingDirection int

const (
	// MissingRight routes missing rows into the right child.
	MissingRight MissingDirection = iota
	// MissingLeft routes missing rows into the left child.
	MissingLeft
	// MissingBranch routes missing rows into a dedicated third child. The
	// evaluator defines this outcome but does not currently produce it.
	MissingBranch
)

// MissingInfo is the missing-value routing decision of one split. Branch is
// populated only for MissingBranch.
type MissingInfo struct {
	Direction MissingDirection
	Branch    *NodeInfo
}

// SplitInfo is the winning split of a node: the feature and threshold, the
// two children it creates, and the routing of missing values.
type SplitInfo struct {
	SplitGain    float64
	SplitFeature int
	SplitValue   float64
	SplitBin     int
	LeftNode     NodeInfo
	RightNode    NodeInfo
	MissingNode  MissingInfo
}

// SplitterParams are the hyperparameters of a splitter. The value is
// immutable once handed to a splitter and may be shared across concurrent
// searches.
type SplitterParams struct {
	L2                 float64
	Gamma              float64
	MinLeafWeight      float64
	LearningRate       float64
	AllowMissingSplits bool
	Constraints        ConstraintMap
}

// Splitter is the capability of evaluating one candidate split from
// aggregated statistics. BestSplit and BestFeatureSplit drive any
// implementation through the same histogram scan, so alternative
// missing-value policies slot in without touching the search.
type Splitter interface {
	// EvaluateSplit decides whether the candidate split described by the
	// left/right/missing statistics is admissible, and if so returns both
	// children and the missing-value routing. ok is false when the candidate
	// is rejected.
	EvaluateSplit(leftGrad, leftHess, rightGrad, rightHess, missingGrad, missingHess, lowerBound, upperBound float64, constraint Constraint) (left, right NodeInfo, missing MissingInfo, ok bool)

	// Constraint returns the monotonic constraint of a feature.
	Constraint(feature int) Constraint

	// Gamma returns the minimum-gain pruning threshold.
	Gamma() float64

	// L2 returns the ridge penalty.
	L2() float64
}

// MissingImputerSplitter imputes missing values per split by sending them
// down whichever branch yields the larger increase in gain.
type MissingImputerSplitter struct {
	params SplitterParams
}

// NewMissingImputerSplitter validates the hyperparameters and returns a
// splitter safe for concurrent use.
func NewMissingImputerSplitter(params SplitterParams) (*MissingImputerSplitter, error) {
	if params.L2 < 0 {
		return nil, errors.NewValidationError("l2", "must be non-negative", params.L2)
	}
	if params.Gamma < 0 {
		return nil, errors.NewValidationError("gamma", "must be non-negative", params.Gamma)
	}
	if params.MinLeafWeight < 0 {
		return nil, errors.NewValidationError("min_leaf_weight", "must be non-negative", params.MinLeafWeight)
	}
	if params.LearningRate <= 0 || params.LearningRate > 1 {
		return nil, errors.NewValidationError("learning_rate", "must be in (0, 1]", params.LearningRate)
	}
	return &MissingImputerSplitter{params: params}, nil
}

// Constraint returns the monotonic constraint of a feature.
func (s *MissingImputerSplitter) Constraint(feature int) Constraint {
	return s.params.Constraints.Get(feature)
}

// Gamma returns the minimum-gain pruning threshold.
func (s *MissingImputerSplitter) Gamma() float64 { return s.params.Gamma }

// L2 returns the ridge penalty.
func (s *MissingImputerSplitter) L2() float64 { return s.params.L2 }

// EvaluateSplit implements the Splitter interface. Missing statistics are
// excluded from both raw sides; when the missing bin carries mass, the side
// whose gain improves more absorbs it.
func (s *MissingImputerSplitter) EvaluateSplit(
	leftGrad, leftHess, rightGrad, rightHess,
	missingGrad, missingHess,
	lowerBound, upperBound float64,
	constraint Constraint,
) (NodeInfo, NodeInfo, MissingInfo, bool) {
	// An empty side means the candidate collapses into a missing-only
	// split; reject it up front unless those are allowed.
	if ((leftGrad == 0 && leftHess == 0) || (rightGrad == 0 && rightHess == 0)) &&
		!s.params.AllowMissingSplits {
		return NodeInfo{}, NodeInfo{}, MissingInfo{}, false
	}

	// By default missing values go into the right node.
	missing := MissingInfo{Direction: MissingRight}

	leftWeight := constrainedWeight(s.params.L2, leftGrad, leftHess, lowerBound, upperBound, constraint)
	rightWeight := constrainedWeight(s.params.L2, rightGrad, rightHess, lowerBound, upperBound, constraint)
	leftGain := gainGivenWeight(s.params.L2, leftGrad, leftHess, leftWeight)
	rightGain := gainGivenWeight(s.params.L2, rightGrad, rightHess, rightWeight)

	if !s.params.AllowMissingSplits {
		if rightHess < s.params.MinLeafWeight || leftHess < s.params.MinLeafWeight {
			return NodeInfo{}, NodeInfo{}, MissingInfo{}, false
		}
	}

	// Decide the missing direction. Nothing to do when the missing bin
	// carries no mass.
	if missingGrad != 0 || missingHess != 0 {
		// The weight and gain if missing went left.
		missingLeftWeight := constrainedWeight(s.params.L2, leftGrad+missingGrad, leftHess+missingHess, lowerBound, upperBound, constraint)
		missingLeftGain := gainGivenWeight(s.params.L2, leftGrad+missingGrad, leftHess+missingHess, missingLeftWeight)
		// Confirm this would not break monotonicity.
		missingLeftGain = cullGain(missingLeftGain, missingLeftWeight, rightWeight, constraint)

		// The weight and gain if missing went right.
		missingRightWeight := LeafWeight(s.params.L2, rightGrad+missingGrad, rightHess+missingHess)
		missingRightGain := gainGivenWeight(s.params.L2, rightGrad+missingGrad, rightHess+missingHess, missingRightWeight)
		// Confirm this would not break monotonicity.
		missingLeftGain = cullGain(missingLeftGain, missingLeftWeight, rightWeight, constraint)

		if (missingRightGain - rightGain) < (missingLeftGain - leftGain) {
			leftGrad += missingGrad
			leftHess += missingHess
			leftGain = missingLeftGain
			leftWeight = missingLeftWeight
			missing.Direction = MissingLeft
		} else {
			rightGrad += missingGrad
			rightHess += missingHess
			rightGain = missingRightGain
			rightWeight = missingRightWeight
			missing.Direction = MissingRight
		}
	}

	if rightHess < s.params.MinLeafWeight || leftHess < s.params.MinLeafWeight {
		return NodeInfo{}, NodeInfo{}, MissingInfo{}, false
	}

	left := NodeInfo{
		Grad:       leftGrad,
		Gain:       leftGain,
		Cover:      leftHess,
		Weight:     leftWeight * s.params.LearningRate,
		LowerBound: math.Inf(-1),
		UpperBound: math.Inf(1),
	}
	right := NodeInfo{
		Grad:       rightGrad,
		Gain:       rightGain,
		Cover:      rightHess,
		Weight:     rightWeight * s.params.LearningRate,
		LowerBound: math.Inf(-1),
		UpperBound: math.Inf(1),
	}
	return left, right, missing, true
}

// BestFeatureSplit scans every bin boundary of one feature and returns the
// gain-maximizing admissible split, or nil when no boundary improves on the
// node staying a leaf. Ties keep the earlier bin.
func BestFeatureSplit(s Splitter, node *SplittableNode, feature int) *SplitInfo {
	var best *SplitInfo
	bestGain := 0.0

	histogram := node.Histograms.Column(feature)
	// Bin 0 is always the missing bin.
	missing := histogram[0]
	cumlGrad := 0.0
	cumlHess := 0.0
	constraint := s.Constraint(feature)

	for i := 1; i < len(histogram); i++ {
		bin := histogram[i]
		leftGrad := cumlGrad
		leftHess := cumlHess
		rightGrad := node.GradSum - cumlGrad - missing.GradSum
		rightHess := node.HessSum - cumlHess - missing.HessSum

		left, right, missingInfo, ok := s.EvaluateSplit(
			leftGrad, leftHess,
			rightGrad, rightHess,
			missing.GradSum, missing.HessSum,
			node.LowerBound, node.UpperBound,
			constraint,
		)
		if !ok {
			cumlGrad += bin.GradSum
			cumlHess += bin.HessSum
			continue
		}

		splitGain := (left.Gain + right.Gain - node.GainValue) - s.Gamma()
		// Check monotonicity holds for the final child weights.
		splitGain = cullGain(splitGain, left.Weight, right.Weight, constraint)

		if splitGain <= 0 {
			cumlGrad += bin.GradSum
			cumlHess += bin.HessSum
			continue
		}

		if best == nil || splitGain > bestGain {
			mid := (left.Weight + right.Weight) / 2.0
			switch constraint {
			case NonIncreasing:
				left.LowerBound, left.UpperBound = mid, node.UpperBound
				right.LowerBound, right.UpperBound = node.LowerBound, mid
			case NonDecreasing:
				left.LowerBound, left.UpperBound = node.LowerBound, mid
				right.LowerBound, right.UpperBound = mid, node.UpperBound
			default:
				left.LowerBound, left.UpperBound = node.LowerBound, node.UpperBound
				right.LowerBound, right.UpperBound = node.LowerBound, node.UpperBound
			}

			bestGain = splitGain
			best = &SplitInfo{
				SplitGain:    splitGain,
				SplitFeature: feature,
				SplitValue:   bin.CutValue,
				SplitBin:     i,
				LeftNode:     left,
				RightNode:    right,
				MissingNode:  missingInfo,
			}
		}

		cumlGrad += bin.GradSum
		cumlHess += bin.HessSum
	}
	return best
}

// BestSplit scans every feature of a node and returns the globally best
// split, or nil when the node should stay a leaf. A candidate must beat the
// running best strictly, so the lowest feature index wins ties.
func BestSplit(s Splitter, node *SplittableNode) *SplitInfo {
	var best *SplitInfo
	bestGain := 0.0
	for feature := 0; feature < node.Histograms.NumFeatures(); feature++ {
		info := BestFeatureSplit(s, node, feature)
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

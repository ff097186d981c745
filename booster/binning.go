package booster

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/ezoic/boostsplit/pkg/errors"
	"github.com/ezoic/boostsplit/pkg/log"
)

// BinnedMatrix is a feature matrix quantized into per-feature bin indices.
// Bin 0 is the missing-value bin; value bins start at 1 and are ordered by
// increasing feature value. cuts[j][k-1] is the lower edge of value bin k,
// so a split at threshold cuts[j][k-1] sends bins 1..k-1 left. The last cut
// of every feature is math.MaxFloat64, which makes a final empty bin whose
// boundary routes every non-missing row left.
type BinnedMatrix struct {
	rows int
	bins [][]int     // [feature][row]
	cuts [][]float64 // [feature], ascending
}

// BinMatrix discovers bin edges for every column of x and quantizes the
// matrix. Edges are weighted quantiles when a column has more than maxBins
// distinct values, and the distinct values themselves otherwise. NaN entries
// map to the missing bin. A nil weights slice means unit weights.
func BinMatrix(x *mat.Dense, weights []float64, maxBins int) (*BinnedMatrix, error) {
	rows, cols := x.Dims()
	if rows == 0 || cols == 0 {
		return nil, errors.ErrEmptyData
	}
	if maxBins < 2 {
		return nil, errors.NewValidationError("maxBins", "must be at least 2", maxBins)
	}
	if weights != nil && len(weights) != rows {
		return nil, errors.NewDimensionError("BinMatrix", rows, len(weights), 0)
	}

	bm := &BinnedMatrix{
		rows: rows,
		bins: make([][]int, cols),
		cuts: make([][]float64, cols),
	}
	values := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(values, j, x)
		cuts, err := binCuts(values, weights, maxBins)
		if err != nil {
			return nil, errors.Wrapf(err, "binning feature %d", j)
		}
		column := make([]int, rows)
		for i, v := range values {
			column[i] = binIndex(cuts, v)
		}
		bm.cuts[j] = cuts
		bm.bins[j] = column
	}

	logger := log.GetLoggerWithName("boostsplit.binning")
	logger.Debug("binned feature matrix",
		"rows", rows,
		"features", cols,
		"max_bins", maxBins,
	)
	return bm, nil
}

// Rows returns the number of rows that were binned.
func (bm *BinnedMatrix) Rows() int { return bm.rows }

// NumFeatures returns the number of binned feature columns.
func (bm *BinnedMatrix) NumFeatures() int { return len(bm.bins) }

// Cuts returns the ascending cut points of one feature.
func (bm *BinnedMatrix) Cuts(feature int) []float64 { return bm.cuts[feature] }

// Bins returns the per-row bin indices of one feature.
func (bm *BinnedMatrix) Bins(feature int) []int { return bm.bins[feature] }

// binCuts computes the ascending cut points for one column. The result always
// ends with math.MaxFloat64.
func binCuts(values, weights []float64, maxBins int) ([]float64, error) {
	finite := make([]float64, 0, len(values))
	var finiteWeights []float64
	if weights != nil {
		finiteWeights = make([]float64, 0, len(values))
	}
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		finite = append(finite, v)
		if weights != nil {
			finiteWeights = append(finiteWeights, weights[i])
		}
	}
	if len(finite) == 0 {
		return nil, errors.NewValueError("binCuts", "column has no non-missing values")
	}

	if weights == nil {
		sort.Float64s(finite)
	} else {
		idx := make([]int, len(finite))
		for i := range idx {
			idx[i] = i
		}
		sort.Slice(idx, func(a, b int) bool { return finite[idx[a]] < finite[idx[b]] })
		sortedVals := make([]float64, len(finite))
		sortedWts := make([]float64, len(finite))
		for i, id := range idx {
			sortedVals[i] = finite[id]
			sortedWts[i] = finiteWeights[id]
		}
		finite, finiteWeights = sortedVals, sortedWts
	}

	distinct := finite[:1]
	for i := 1; i < len(finite); i++ {
		if finite[i] != distinct[len(distinct)-1] {
			distinct = append(distinct, finite[i])
		}
	}

	var cuts []float64
	if len(distinct) <= maxBins {
		cuts = append(cuts, distinct...)
	} else {
		cuts = make([]float64, 0, maxBins)
		for i := 0; i < maxBins; i++ {
			p := float64(i) / float64(maxBins)
			q := stat.Quantile(p, stat.Empirical, finite, finiteWeights)
			if len(cuts) == 0 || q > cuts[len(cuts)-1] {
				cuts = append(cuts, q)
			}
		}
	}
	return append(cuts, math.MaxFloat64), nil
}

// binIndex maps a feature value onto its 1-based value bin: one plus the
// number of cuts at or below the value. NaN maps to the missing bin.
func binIndex(cuts []float64, v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	idx := sort.SearchFloat64s(cuts, v)
	if idx < len(cuts) && cuts[idx] == v {
		idx++
	}
	if idx < 1 {
		// Below the lowest cut; only possible for values unseen at binning.
		idx = 1
	}
	return idx
}

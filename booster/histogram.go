package booster

import (
	"math"

	"github.com/ezoic/boostsplit/pkg/errors"
)

// Bin holds the aggregated gradient and hessian statistics of the rows whose
// feature value falls in one bin. CutValue is the split boundary the bin
// opens: rows with value below CutValue belong to earlier bins.
type Bin struct {
	GradSum  float64
	HessSum  float64
	CutValue float64
}

// HistogramMatrix holds one ordered bin column per feature. Bin 0 of every
// column is reserved for rows missing a value for that feature; its CutValue
// is unused. Columns are immutable once built: summing GradSum/HessSum over a
// column (including the missing bin) equals the node's totals.
type HistogramMatrix struct {
	columns [][]Bin
}

// NewHistogramMatrix aggregates per-row gradients and hessians into the bin
// layout of a binned matrix. Rows binned as missing accumulate into bin 0.
func NewHistogramMatrix(bm *BinnedMatrix, grads, hess []float64) (*HistogramMatrix, error) {
	if len(grads) != bm.rows {
		return nil, errors.NewDimensionError("NewHistogramMatrix", bm.rows, len(grads), 0)
	}
	if len(hess) != bm.rows {
		return nil, errors.NewDimensionError("NewHistogramMatrix", bm.rows, len(hess), 0)
	}

	columns := make([][]Bin, len(bm.bins))
	for j := range bm.bins {
		cuts := bm.cuts[j]
		col := make([]Bin, len(cuts)+1)
		col[0].CutValue = math.NaN()
		for k := 1; k < len(col); k++ {
			col[k].CutValue = cuts[k-1]
		}
		for i, b := range bm.bins[j] {
			col[b].GradSum += grads[i]
			col[b].HessSum += hess[i]
		}
		columns[j] = col
	}
	return &HistogramMatrix{columns: columns}, nil
}

// NewHistogramMatrixFromColumns wraps pre-aggregated bin columns, for callers
// that build their histograms elsewhere. Every column must carry the missing
// bin plus at least one value bin.
func NewHistogramMatrixFromColumns(columns [][]Bin) (*HistogramMatrix, error) {
	if len(columns) == 0 {
		return nil, errors.ErrEmptyData
	}
	for j, col := range columns {
		if len(col) < 2 {
			return nil, errors.Newf("histogram column %d has %d bins, need the missing bin plus at least one value bin", j, len(col))
		}
	}
	return &HistogramMatrix{columns: columns}, nil
}

// NumFeatures returns the number of feature columns.
func (h *HistogramMatrix) NumFeatures() int {
	return len(h.columns)
}

// Column returns the bin column of one feature. The slice is shared, not
// copied; callers must treat it as read-only.
func (h *HistogramMatrix) Column(feature int) []Bin {
	return h.columns[feature]
}

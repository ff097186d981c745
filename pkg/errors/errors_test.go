package errors_test

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ezoic/boostsplit/pkg/errors"
)

func TestValidationErrorRoundTrip(t *testing.T) {
	err := errors.NewValidationError("learning_rate", "must be in (0, 1]", 1.5)

	var vErr *errors.ValidationError
	if !stderrors.As(err, &vErr) {
		t.Fatalf("errors.As failed to extract ValidationError")
	}
	if vErr.ParamName != "learning_rate" {
		t.Errorf("expected ParamName 'learning_rate', got '%s'", vErr.ParamName)
	}
	if !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestDimensionErrorAxisNaming(t *testing.T) {
	rowErr := errors.NewDimensionError("NewHistogramMatrix", 7, 5, 0)
	if !strings.Contains(rowErr.Error(), "rows") {
		t.Errorf("axis 0 should name rows: %s", rowErr.Error())
	}
	colErr := errors.NewDimensionError("BinMatrix", 3, 2, 1)
	if !strings.Contains(colErr.Error(), "features") {
		t.Errorf("axis 1 should name features: %s", colErr.Error())
	}
}

func TestWrappingPreservesChain(t *testing.T) {
	base := errors.NewValueError("binCuts", "column has no non-missing values")
	wrapped := errors.Wrapf(base, "binning feature %d", 2)

	var valErr *errors.ValueError
	if !errors.As(wrapped, &valErr) {
		t.Fatalf("errors.As failed to find ValueError through wrap")
	}
	if !errors.Is(fmt.Errorf("outer: %w", wrapped), base) {
		t.Errorf("errors.Is failed to find base error through stdlib wrap")
	}
}

func TestSentinelErrors(t *testing.T) {
	wrapped := errors.Wrap(errors.ErrEmptyData, "BinMatrix")
	if !errors.Is(wrapped, errors.ErrEmptyData) {
		t.Errorf("wrapped sentinel lost identity")
	}
}

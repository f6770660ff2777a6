// Package errplot renders the absolute-error-vs-refinement-level curve of
// an adaptive run on a logarithmically scaled vertical axis. It consumes
// the (history, reference) pair produced by refine and is entirely
// outside the numerical core: nothing here feeds back into convergence.
package errplot

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Sentinel errors returned by this package.
var (
	// ErrEmptyHistory indicates that no approximations were supplied.
	ErrEmptyHistory = errors.New("errplot: history is empty")

	// ErrBadReference indicates a NaN or infinite reference value.
	ErrBadReference = errors.New("errplot: reference must be finite")
)

// errorFloor keeps levels that hit the reference exactly representable on
// the log axis (log(0) is not).
const errorFloor = 1e-17

// ErrorCurve converts an approximation history and a reference value into
// plot points: X is the refinement level, Y the absolute error, clamped
// from below at a tiny floor so a log scale stays finite.
func ErrorCurve(history []float64, reference float64) plotter.XYs {
	pts := make(plotter.XYs, len(history))
	for i, approx := range history {
		absErr := math.Abs(approx - reference)
		if absErr < errorFloor {
			absErr = errorFloor
		}
		pts[i].X = float64(i)
		pts[i].Y = absErr
	}

	return pts
}

// Save writes the error curve to path; the image format follows the file
// extension (png, pdf, svg, eps — whatever gonum/plot supports).
func Save(history []float64, reference float64, path string) error {
	if len(history) == 0 {
		return ErrEmptyHistory
	}
	if math.IsNaN(reference) || math.IsInf(reference, 0) {
		return ErrBadReference
	}

	p := plot.New()
	p.Title.Text = "Cavalieri-Simpson adaptive refinement"
	p.X.Label.Text = "refinement level"
	p.Y.Label.Text = "absolute error"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	if err := plotutil.AddLinePoints(p, "Simpson", ErrorCurve(history, reference)); err != nil {
		return fmt.Errorf("errplot: add curve: %w", err)
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("errplot: save %s: %w", path, err)
	}

	return nil
}

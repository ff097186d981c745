package booster

import (
	"math"
)

// ObjectiveFunction supplies the per-row gradient and hessian of a loss with
// respect to the model prediction.
type ObjectiveFunction interface {
	// CalculateGradient calculates the gradient for a single sample
	CalculateGradient(prediction, target float64) float64

	// CalculateHessian calculates the hessian for a single sample
	CalculateHessian(prediction, target float64) float64

	// CalculateLoss calculates the loss for a single sample
	CalculateLoss(prediction, target float64) float64

	// GetInitScore returns the initial score for this objective
	GetInitScore(targets []float64) float64

	// Name returns the name of the objective
	Name() string
}

// LogLoss implements binary logistic loss on raw scores.
type LogLoss struct{}

func NewLogLoss() *LogLoss { return &LogLoss{} }

func (o *LogLoss) CalculateGradient(prediction, target float64) float64 {
	return sigmoid(prediction) - target
}

func (o *LogLoss) CalculateHessian(prediction, target float64) float64 {
	p := sigmoid(prediction)
	return p * (1.0 - p)
}

func (o *LogLoss) CalculateLoss(prediction, target float64) float64 {
	p := sigmoid(prediction)
	return -(target*math.Log(p) + (1.0-target)*math.Log(1.0-p))
}

func (o *LogLoss) GetInitScore(targets []float64) float64 {
	if len(targets) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, t := range targets {
		sum += t
	}
	p := sum / float64(len(targets))
	if p <= 0 || p >= 1 {
		return 0.0
	}
	return math.Log(p / (1.0 - p))
}

func (o *LogLoss) Name() string { return "binary" }

// SquaredLoss implements L2 (mean squared error) loss.
type SquaredLoss struct{}

func NewSquaredLoss() *SquaredLoss { return &SquaredLoss{} }

func (o *SquaredLoss) CalculateGradient(prediction, target float64) float64 {
	return prediction - target
}

func (o *SquaredLoss) CalculateHessian(prediction, target float64) float64 {
	return 1.0
}

func (o *SquaredLoss) CalculateLoss(prediction, target float64) float64 {
	diff := prediction - target
	return 0.5 * diff * diff
}

func (o *SquaredLoss) GetInitScore(targets []float64) float64 {
	if len(targets) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, t := range targets {
		sum += t
	}
	return sum / float64(len(targets))
}

func (o *SquaredLoss) Name() string { return "regression" }

// GradHess evaluates an objective over aligned target/prediction slices,
// scaling by sample weights when provided.
func GradHess(o ObjectiveFunction, targets, predictions, weights []float64) (grads, hess []float64) {
	grads = make([]float64, len(targets))
	hess = make([]float64, len(targets))
	for i := range targets {
		g := o.CalculateGradient(predictions[i], targets[i])
		h := o.CalculateHessian(predictions[i], targets[i])
		if weights != nil {
			g *= weights[i]
			h *= weights[i]
		}
		grads[i] = g
		hess[i] = h
	}
	return grads, hess
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

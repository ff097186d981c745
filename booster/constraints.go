package booster

// Constraint restricts the relationship between the leaf weights of the two
// children created by splitting on a feature.
type Constraint int

const (
	// Unconstrained places no restriction on child weights.
	Unconstrained Constraint = iota
	// NonDecreasing requires the left child weight to not exceed the right.
	NonDecreasing
	// NonIncreasing requires the left child weight to not fall below the right.
	NonIncreasing
)

func (c Constraint) String() string {
	switch c {
	case NonDecreasing:
		return "non_decreasing"
	case NonIncreasing:
		return "non_increasing"
	default:
		return "unconstrained"
	}
}

// ConstraintMap maps feature indices to monotonic constraints. Features
// absent from the map are unconstrained.
type ConstraintMap map[int]Constraint

// Get returns the constraint for a feature, defaulting to Unconstrained.
func (m ConstraintMap) Get(feature int) Constraint {
	if m == nil {
		return Unconstrained
	}
	return m[feature]
}

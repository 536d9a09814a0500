package geom

// Form describes the topology of a parameter domain.
type Form int

const (
	// The two ends of the domain map to distinct positions.
	OpenForm Form = iota
	// The two ends of the domain map to the same position.
	ClosedForm
	// The geometry repeats with a period of the domain's span.
	PeriodicForm
	// No other form applies.
	OtherForm
)

// ParamType describes how a parameter relates to the geometry it traces.
type ParamType int

const (
	// The parameter measures signed distance along a direction.
	LinearParam ParamType = iota
	// The parameter measures an angle in radians.
	CircularParam
	// No other type applies.
	OtherParam
)

// Parameterization describes how a single parameter drives a geometric
// entity: the topology of its domain, the meaning of the parameter, and the
// domain itself.
type Parameterization struct {
	Form   Form
	Type   ParamType
	Domain Interval
}

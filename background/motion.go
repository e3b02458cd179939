package background

// MotionKind tags the blob motion law
type MotionKind uint8

const (
	// MotionIntegrated advances position by velocity once per frame
	MotionIntegrated MotionKind = iota
	// MotionClosedForm evaluates position directly from the time accumulator
	MotionClosedForm
)

func (k MotionKind) String() string {
	switch k {
	case MotionIntegrated:
		return "Integrated"
	case MotionClosedForm:
		return "ClosedForm"
	default:
		return "Unknown"
	}
}

// Motion advances every blob of a state by one frame
// A state uses exactly one Motion for its whole lifetime
type Motion interface {
	Kind() MotionKind
	Advance(s *State)
}

// Integrated is the velocity integrator: pixel blobs wrap, normalized blobs oscillate
type Integrated struct{}

func (Integrated) Kind() MotionKind { return MotionIntegrated }

func (Integrated) Advance(s *State) {
	for i := range s.Blobs {
		b := &s.Blobs[i]
		b.X += b.VX
		b.Y += b.VY
		if b.Space == SpaceNormalized {
			b.bounce()
		} else {
			b.wrap(s.Width, s.Height)
		}
	}
}

// ClosedForm places blobs on trigonometric orbits of the time accumulator
type ClosedForm struct{}

func (ClosedForm) Kind() MotionKind { return MotionClosedForm }

func (ClosedForm) Advance(s *State) {
	for i := range s.Blobs {
		s.Blobs[i].place(s.Time)
	}
}

// MotionFor returns the motion law used by a variant
func MotionFor(v Variant) Motion {
	if v == VariantOrbit {
		return ClosedForm{}
	}
	return Integrated{}
}

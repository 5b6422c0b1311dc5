package stride

// Stepper supplies the step of a cursor.
type Stepper interface {
	comparable
	Step() int
}

// Static is a step fixed by its type. Implementations are empty structs whose
// Step method returns a constant.
type Static interface {
	~struct{}
	Stepper
}

// Unit is the set of static steps whose traversal is a plain walk over
// adjacent elements. Cursors with these steps may be turned back into
// sub-slices with Contiguous.
type Unit interface {
	Fwd1 | Back1
	Step() int
}

type (
	Fwd1  struct{}
	Fwd2  struct{}
	Fwd3  struct{}
	Fwd4  struct{}
	Back1 struct{}
	Back2 struct{}
	Back3 struct{}
	// Still never moves.
	Still struct{}
)

func (Fwd1) Step() int  { return 1 }
func (Fwd2) Step() int  { return 2 }
func (Fwd3) Step() int  { return 3 }
func (Fwd4) Step() int  { return 4 }
func (Back1) Step() int { return -1 }
func (Back2) Step() int { return -2 }
func (Back3) Step() int { return -3 }
func (Still) Step() int { return 0 }

// Dynamic is a step chosen at run time. The zero value is a step of 1.
type Dynamic struct {
	// stored off by one so that the zero value means 1
	delta int
}

// Every returns a dynamic step of n. Zero and negative values are allowed.
func Every(n int) Dynamic {
	return Dynamic{delta: n - 1}
}

func (d Dynamic) Step() int { return d.delta + 1 }

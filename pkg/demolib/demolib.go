package demolib

// DemoLib carries no state; the zero value is ready to use.
type DemoLib struct{}

// New returns a ready DemoLib.
func New() DemoLib {
	return DemoLib{}
}

// NewDemoLib is the same as New.
func NewDemoLib() DemoLib {
	return New()
}

// DivideBy returns 1/n. It fails with ErrInvalidArgument when n is zero.
func (DemoLib) DivideBy(n int) (float64, error) {
	if n == 0 {
		return 0, &Error{Kind: InvalidArgument, Msg: "Cannot divide by zero"}
	}
	return 1.0 / float64(n), nil
}

// NegativeThrows returns in unchanged. It fails with ErrRange when in < 0.
func (DemoLib) NegativeThrows(in int) (int, error) {
	if in < 0 {
		return 0, &Error{Kind: RangeError, Msg: "NegativeThrows threw exception"}
	}
	return in, nil
}

// NeverThrows returns in unchanged.
func (DemoLib) NeverThrows(in int) int {
	return in
}

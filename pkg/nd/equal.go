package nd

// Equaler is implemented by types that can encode "equals" against a right-hand side of type R.
// NotEqual, AssertEqual and AssertNotEqual derive from it.
type Equaler[R any] interface {
	Equal(rhs R) (Bool, error)
}

// NotEqual encodes the negation of lhs.Equal(rhs)
func NotEqual[R any, T Equaler[R]](lhs T, rhs R) (Bool, error) {
	eq, err := lhs.Equal(rhs)
	if err != nil {
		return Bool{}, err
	}
	return eq.Not(), nil
}

// Equal encodes (a OR NOT b) AND (NOT a OR b)
func (a Bool) Equal(b Bool) (Bool, error) {
	left, err := a.Or(b.Not())
	if err != nil {
		return Bool{}, err
	}
	right, err := a.Not().Or(b)
	if err != nil {
		return Bool{}, err
	}
	return left.And(right)
}

func (a Bool) NotEqual(b Bool) (Bool, error) {
	return NotEqual(a, b)
}

package nd

// Assert requires b to hold in every assignment found from now on
func Assert(b Bool) error {
	return b.machine.AssertAny(b)
}

func AssertEqual[R any, T Equaler[R]](lhs T, rhs R) error {
	eq, err := lhs.Equal(rhs)
	if err != nil {
		return err
	}
	return Assert(eq)
}

func AssertNotEqual[R any, T Equaler[R]](lhs T, rhs R) error {
	ne, err := NotEqual(lhs, rhs)
	if err != nil {
		return err
	}
	return Assert(ne)
}

package nd

import "github.com/pkg/errors"

const maxWidth = 64

// Bits is a fixed-width unsigned integer made of nondeterministic booleans, least significant bit first
type Bits []Bool

// FreshBits returns width unconstrained bits
func (m *Machine) FreshBits(width int) (Bits, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	bits := make(Bits, width)
	for i := range bits {
		var err error
		if bits[i], err = m.Fresh(); err != nil {
			return nil, err
		}
	}
	return bits, nil
}

// ConstBits returns width bits forced to the binary representation of value
func (m *Machine) ConstBits(value uint64, width int) (Bits, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	if width < maxWidth && value>>width != 0 {
		return nil, errors.Errorf("%d does not fit in %d bits", value, width)
	}
	bits := make(Bits, width)
	for i := range bits {
		var err error
		if value>>i&1 == 1 {
			bits[i], err = m.True()
		} else {
			bits[i], err = m.False()
		}
		if err != nil {
			return nil, err
		}
	}
	return bits, nil
}

// Equal holds when every pair of bits is equal
func (x Bits) Equal(y Bits) (Bool, error) {
	if len(x) != len(y) {
		return Bool{}, errors.Wrapf(ErrWidthMismatch, "%d and %d", len(x), len(y))
	} else if len(x) == 0 {
		return Bool{}, errors.Wrap(ErrWidthMismatch, "cannot compare empty bit vectors")
	}

	result, err := x[0].Equal(y[0])
	if err != nil {
		return Bool{}, err
	}
	for i := 1; i < len(x); i++ {
		eq, err := x[i].Equal(y[i])
		if err != nil {
			return Bool{}, err
		}
		if result, err = result.And(eq); err != nil {
			return Bool{}, err
		}
	}
	return result, nil
}

// Value reads the bits in the current assignment
func (x Bits) Value() (uint64, error) {
	if err := checkWidth(len(x)); err != nil {
		return 0, err
	}
	var value uint64
	for i, bit := range x {
		set, err := bit.Value()
		if err != nil {
			return 0, err
		}
		if set {
			value |= 1 << i
		}
	}
	return value, nil
}

func checkWidth(width int) error {
	if width <= 0 || width > maxWidth {
		return errors.Errorf("bit width must be between 1 and %d, got %d", maxWidth, width)
	}
	return nil
}

// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum copies m into a new gonum *mat.Dense.
// Both layouts are row-major, so the *Dense path is a single copy.
//
// Errors:
//   - ErrNilMatrix, or an At error from a non-Dense implementation.
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}
	rows, cols := m.Rows(), m.Cols()
	if d, ok := m.(*Dense); ok {
		return mat.NewDense(rows, cols, d.RawData()), nil
	}

	buf := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf("ToGonum", err)
			}
			buf[i*cols+j] = v
		}
	}

	return mat.NewDense(rows, cols, buf), nil
}

// FromGonum copies any gonum matrix into a new *Dense.
//
// Errors:
//   - ErrNilMatrix when g is nil.
//   - ErrInvalidDimensions for an empty gonum matrix.
//   - ErrNaNInf when g holds a non-finite value (default numeric policy).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	rows, cols := g.Dims()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err = out.Set(i, j, g.At(i, j)); err != nil {
				return nil, matrixErrorf("FromGonum", err)
			}
		}
	}

	return out, nil
}

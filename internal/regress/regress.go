// Package regress solves dense linear least-squares problems through the
// Moore-Penrose pseudo-inverse.
package regress

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrFactorization indicates the SVD of the design matrix did not converge.
var ErrFactorization = errors.New("regress: svd factorization failed")

// machEps is the double-precision machine epsilon used for the singular
// value cutoff.
const machEps = 2.220446049250313e-16

// LeastSquares returns the minimum-norm w minimizing ‖Xw − y‖₂, computed as
// pinv(X)·y from a thin SVD. Singular values below eps·max(m,n)·σmax are
// treated as zero, matching the conventional pseudo-inverse cutoff.
func LeastSquares(x *mat.Dense, y []float64) ([]float64, error) {
	m, n := x.Dims()
	if len(y) != m {
		return nil, fmt.Errorf("regress: %d observations for %d design rows", len(y), m)
	}

	var svd mat.SVD
	if ok := svd.Factorize(x, mat.SVDThin); !ok {
		return nil, ErrFactorization
	}
	s := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	dim := max(m, n)
	cutoff := machEps * float64(dim) * s[0]

	// z = S⁺·Uᵀ·y
	z := make([]float64, len(s))
	for j := range s {
		if s[j] <= cutoff {
			continue
		}
		sum := 0.0
		for i := 0; i < m; i++ {
			sum += u.At(i, j) * y[i]
		}
		z[j] = sum / s[j]
	}

	// w = V·z
	w := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := range s {
			sum += v.At(i, j) * z[j]
		}
		w[i] = sum
	}
	return w, nil
}

package fractalgarden

// 3×3 matrix (row-major)
type Mat3 struct {
	M [3][3]Real
}

func I3() Mat3 {
	return Mat3{M: [3][3]Real{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

func (A Mat3) Mul(B Mat3) Mat3 {
	var R Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += A.M[r][k] * B.M[k][c]
			}
			R.M[r][c] = sum
		}
	}
	return R
}

func (A Mat3) Add(B Mat3) Mat3 {
	var R Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			R.M[r][c] = A.M[r][c] + B.M[r][c]
		}
	}
	return R
}

func (A Mat3) Scale(s Real) Mat3 {
	var R Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			R.M[r][c] = A.M[r][c] * s
		}
	}
	return R
}

func (A Mat3) Transpose() Mat3 {
	var R Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			R.M[r][c] = A.M[c][r]
		}
	}
	return R
}

// skew returns the cross-product matrix [v]x, so that skew(v).MulVec(w) == v×w.
func skew(v Vec3) Mat3 {
	return Mat3{M: [3][3]Real{
		{0, -v.Z, v.Y},
		{v.Z, 0, -v.X},
		{-v.Y, v.X, 0},
	}}
}

// outer returns u·vᵀ.
func outer(u, v Vec3) Mat3 {
	return Mat3{M: [3][3]Real{
		{u.X * v.X, u.X * v.Y, u.X * v.Z},
		{u.Y * v.X, u.Y * v.Y, u.Y * v.Z},
		{u.Z * v.X, u.Z * v.Y, u.Z * v.Z},
	}}
}

package fractalgarden

import (
	"math"
	"testing"
)

func TestI3MulVec(t *testing.T) {
	I := I3()
	v := V3(1, 2, 3)
	out := I.MulVec(v)
	if out != v {
		t.Fatalf("I*v != v: %+v", out)
	}
}

func TestTransposeAndMul(t *testing.T) {
	M := Mat3{M: [3][3]Real{
		{1, 2, 3},
		{0, 1, 0.5},
		{2, 0, -1},
	}}
	T := M.Transpose()
	if T.M[0][1] != M.M[1][0] || T.M[2][1] != M.M[1][2] {
		t.Fatal("Transpose mismatch")
	}
	S := T.Mul(M)
	if math.Abs(S.M[0][2]-S.M[2][0]) > 1e-12 {
		t.Fatal("M^T M not symmetric")
	}
	if M.Mul(I3()) != M || I3().Mul(M) != M {
		t.Fatal("identity does not commute")
	}
}

func TestSkewIsCrossProduct(t *testing.T) {
	v, w := V3(1, -2, 0.5), V3(3, 4, -1)
	got := skew(v).MulVec(w)
	if got.Sub(v.Cross(w)).Norm() > 1e-12 {
		t.Fatalf("skew(v)w = %v, v×w = %v", got, v.Cross(w))
	}
}

func TestOuterAndScale(t *testing.T) {
	u := V3(1, 2, 3)
	O := outer(u, u)
	if O.M[1][2] != 6 || O.M[2][1] != 6 || O.M[0][0] != 1 {
		t.Fatalf("outer mismatch: %+v", O)
	}
	if got := O.Scale(2).Add(O.Scale(-1)); got != O {
		t.Fatalf("2O - O != O: %+v", got)
	}
}

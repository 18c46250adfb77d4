package fractalgarden

import "math"

// Branch is one segment of a generated tree. Level 0 is the trunk.
type Branch struct {
	Start, End Point3D
	Level      int
}

// Length returns the Euclidean length of the segment.
func (b Branch) Length() Real { return b.Start.Distance(b.End) }

// Direction returns End - Start.
func (b Branch) Direction() Vec3 { return b.End.Sub(b.Start) }

// TreeParams describes a recursive tree. Direction is scaled by Length as
// given, it is not normalized.
type TreeParams struct {
	Base        Point3D
	Length      Real
	Direction   Vec3
	Depth       int
	BranchAngle Real // radians between parent and each child
	ScaleFactor Real // child length / parent length
}

func (p TreeParams) Validate() error {
	if !isFinite(p.Length) || p.Length <= 0 {
		return invalidf("tree length must be a finite value > 0, got %g", p.Length)
	}
	if !isFinite(p.ScaleFactor) || p.ScaleFactor <= 0 {
		return invalidf("tree scale factor must be a finite value > 0, got %g", p.ScaleFactor)
	}
	if p.Depth < 0 || p.Depth > MaxTreeDepth {
		return invalidf("tree depth must be in [0, %d], got %d", MaxTreeDepth, p.Depth)
	}
	if !isFinite(p.BranchAngle) || p.BranchAngle < 0 || p.BranchAngle > TwoPi {
		return invalidf("branch angle must be in [0, 2π], got %g", p.BranchAngle)
	}
	if !p.Base.IsFinite() {
		return invalidf("tree base %v is not finite", p.Base)
	}
	if !vecIsFinite(p.Direction) || p.Direction.Norm2() == 0 {
		return invalidf("tree direction %v must be finite and non-zero", p.Direction)
	}
	return nil
}

// TreeBranchCount returns Σ_{k<depth} 4^k, the number of branches GenerateTree
// emits for depth.
func TreeBranchCount(depth int) int {
	n, level := 0, 1
	for k := 0; k < depth; k++ {
		n += level
		level *= TreeFanout
	}
	return n
}

// childDirections returns the four child directions in the parent's local
// frame, where the parent points along +Z.
func childDirections(angle Real) [TreeFanout]Vec3 {
	s, c := math.Sin(angle), math.Cos(angle)
	return [TreeFanout]Vec3{
		{X: s, Y: 0, Z: c},
		{X: -s, Y: 0, Z: c},
		{X: 0, Y: s, Z: c},
		{X: 0, Y: -s, Z: c},
	}
}

type pendingBranch struct {
	base   Point3D
	length Real
	dir    Vec3
	depth  int
	level  int
}

// GenerateTree grows the tree depth-first. Branches come out in the same order
// a recursive walk visiting children in childDirections order would give.
func GenerateTree(p TreeParams) ([]Branch, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	local := childDirections(p.BranchAngle)
	out := make([]Branch, 0, TreeBranchCount(p.Depth))
	stack := make([]pendingBranch, 0, TreeFanout*imax(p.Depth, 1))
	if p.Depth > 0 {
		stack = append(stack, pendingBranch{base: p.Base, length: p.Length, dir: p.Direction, depth: p.Depth})
	}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		end := b.base.Add(b.dir.Mul(b.length))
		out = append(out, Branch{Start: b.base, End: end, Level: b.level})
		if b.depth == 1 {
			continue
		}
		R := RotationBetween(UpVec, b.dir)
		// push in reverse so the first child is popped first
		for i := TreeFanout - 1; i >= 0; i-- {
			stack = append(stack, pendingBranch{
				base:   end,
				length: b.length * p.ScaleFactor,
				dir:    R.MulVec(local[i]),
				depth:  b.depth - 1,
				level:  b.level + 1,
			})
		}
	}
	DebugLog("tree: %d branches for depth %d", len(out), p.Depth)
	return out, nil
}

package fractalgarden

import (
	"math"
	"math/rand"
	"time"
)

// AffineMap is one contraction of an iterated function system:
//
//	x' = A·x + B·y + E
//	y' = C·x + D·y + F
//
// Weight is the probability of picking this map on each iteration.
type AffineMap struct {
	Name             string
	A, B, C, D, E, F Real
	Weight           Real
}

// Apply maps p through m.
func (m AffineMap) Apply(p Point2D) Point2D {
	return Point2D{
		X: m.A*p.X + m.B*p.Y + m.E,
		Y: m.C*p.X + m.D*p.Y + m.F,
	}
}

func (m AffineMap) finite() bool {
	return isFinite(m.A) && isFinite(m.B) && isFinite(m.C) &&
		isFinite(m.D) && isFinite(m.E) && isFinite(m.F)
}

// BarnsleyMaps returns the four maps of the Barnsley fern.
func BarnsleyMaps() []AffineMap {
	return []AffineMap{
		{Name: "large leaflet", A: 0.85, B: 0.04, C: -0.04, D: 0.85, F: 1.6, Weight: 0.85},
		{Name: "left leaflet", A: 0.20, B: -0.26, C: 0.23, D: 0.22, F: 1.6, Weight: 0.07},
		{Name: "right leaflet", A: -0.15, B: 0.28, C: 0.26, D: 0.24, F: 0.44, Weight: 0.07},
		{Name: "stem", D: 0.16, Weight: 0.01},
	}
}

// IFS draws points from the attractor of a weighted set of affine maps.
// An IFS is not safe for concurrent use; give each goroutine its own.
type IFS struct {
	maps []AffineMap
	cum  []Real
	rng  *rand.Rand
}

// NewIFS validates maps and binds them to rng. A nil rng is replaced by a
// time-seeded source.
func NewIFS(maps []AffineMap, rng *rand.Rand) (*IFS, error) {
	if len(maps) == 0 {
		return nil, invalidf("IFS needs at least one map")
	}
	cum := make([]Real, len(maps))
	total := 0.0
	for i, m := range maps {
		if !m.finite() {
			return nil, invalidf("map #%d (%s) has non-finite coefficients", i, m.Name)
		}
		if !isFinite(m.Weight) || m.Weight < 0 {
			return nil, invalidf("map #%d (%s) has weight %g, want >= 0", i, m.Name, m.Weight)
		}
		total += m.Weight
		cum[i] = total
	}
	if math.Abs(total-1) > WeightTolerance {
		return nil, invalidf("map weights sum to %g, want 1", total)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	own := make([]AffineMap, len(maps))
	copy(own, maps)
	return &IFS{maps: own, cum: cum, rng: rng}, nil
}

// NewFern returns an IFS over the Barnsley maps.
func NewFern(rng *rand.Rand) *IFS {
	ifs, err := NewIFS(BarnsleyMaps(), rng)
	if err != nil {
		panic(err) // constant table
	}
	return ifs
}

// Maps returns a copy of the map table.
func (f *IFS) Maps() []AffineMap {
	out := make([]AffineMap, len(f.maps))
	copy(out, f.maps)
	return out
}

// pick returns the index of a map chosen by weight.
func (f *IFS) pick() int {
	r := f.rng.Float64()
	for i, c := range f.cum {
		if r < c {
			return i
		}
	}
	// r landed in the rounding gap above the last cumulative weight
	for i := len(f.maps) - 1; i >= 0; i-- {
		if f.maps[i].Weight > 0 {
			return i
		}
	}
	return len(f.maps) - 1
}

// Generate iterates the system from (0, 0) and returns every visited point.
// A pointCount of 0 yields no points; positive counts below MinFernPoints
// are raised to MinFernPoints.
func (f *IFS) Generate(pointCount int) ([]Point2D, error) {
	if pointCount < 0 {
		return nil, invalidf("point count must be >= 0, got %d", pointCount)
	}
	if pointCount == 0 {
		return []Point2D{}, nil
	}
	if pointCount < MinFernPoints {
		InfoLog("fern: %d points requested, using minimum of %d", pointCount, MinFernPoints)
		pointCount = MinFernPoints
	}
	DebugLog("fern: iterating %d maps for %d points", len(f.maps), pointCount)
	pts := make([]Point2D, pointCount)
	p := Point2D{}
	for i := range pts {
		p = f.maps[f.pick()].Apply(p)
		pts[i] = p
	}
	return pts, nil
}

// GenerateFern is a one-shot helper over the Barnsley maps.
func GenerateFern(pointCount int, rng *rand.Rand) ([]Point2D, error) {
	return NewFern(rng).Generate(pointCount)
}

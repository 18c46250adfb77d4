package fractalgarden

import (
	"bytes"
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBarnsleyMapsWeights(t *testing.T) {
	maps := BarnsleyMaps()
	if len(maps) != 4 {
		t.Fatalf("want 4 maps, got %d", len(maps))
	}
	want := []Real{0.85, 0.07, 0.07, 0.01}
	sum := 0.0
	for i, m := range maps {
		if m.Weight != want[i] {
			t.Fatalf("map #%d weight %g, want %g", i, m.Weight, want[i])
		}
		sum += m.Weight
	}
	if math.Abs(sum-1) > WeightTolerance {
		t.Fatalf("weights sum to %.12g", sum)
	}
}

func TestAffineMapApply(t *testing.T) {
	maps := BarnsleyMaps()
	p := Point2D{X: 1, Y: 2}
	cases := []Point2D{
		{X: 0.85*1 + 0.04*2, Y: -0.04*1 + 0.85*2 + 1.6},
		{X: 0.20*1 - 0.26*2, Y: 0.23*1 + 0.22*2 + 1.6},
		{X: -0.15*1 + 0.28*2, Y: 0.26*1 + 0.24*2 + 0.44},
		{X: 0, Y: 0.16 * 2},
	}
	for i, want := range cases {
		got := maps[i].Apply(p)
		if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 {
			t.Fatalf("map #%d: got %v want %v", i, got, want)
		}
	}
}

func TestFernPointCounts(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{10000, 10000},
		{MinFernPoints, MinFernPoints},
		{MinFernPoints + 1, MinFernPoints + 1},
		{999, MinFernPoints},
		{1, MinFernPoints},
		{0, 0},
	}
	old := Output
	Output = &bytes.Buffer{}
	defer func() { Output = old }()
	for _, c := range cases {
		pts, err := GenerateFern(c.in, rand.New(rand.NewSource(1)))
		if err != nil {
			t.Fatalf("GenerateFern(%d): %v", c.in, err)
		}
		if len(pts) != c.want {
			t.Fatalf("GenerateFern(%d): got %d points, want %d", c.in, len(pts), c.want)
		}
	}
}

func TestFernNegativeCount(t *testing.T) {
	pts, err := GenerateFern(-100, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument, got %v", err)
	}
	if pts != nil {
		t.Fatalf("want no points on error, got %d", len(pts))
	}
}

func TestFernFloorIsReported(t *testing.T) {
	var buf bytes.Buffer
	old := Output
	Output = &buf
	defer func() { Output = old }()

	if _, err := GenerateFern(10, rand.New(rand.NewSource(1))); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "[INFO]") {
		t.Fatalf("expected an info line, got %q", buf.String())
	}

	buf.Reset()
	if _, err := GenerateFern(MinFernPoints, rand.New(rand.NewSource(1))); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("no substitution expected, got %q", buf.String())
	}
}

func TestFernPointsFiniteAndBounded(t *testing.T) {
	pts, err := GenerateFern(10000, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 10000 {
		t.Fatalf("got %d points", len(pts))
	}
	for i, p := range pts {
		if !p.IsFinite() {
			t.Fatalf("point %d not finite: %v", i, p)
		}
		// The Barnsley attractor lies within x ∈ [-2.182, 2.6558], y ∈ [0, 9.9983].
		if p.X < -2.3 || p.X > 2.8 || p.Y < -1e-9 || p.Y > 10.01 {
			t.Fatalf("point %d outside the attractor: %v", i, p)
		}
	}
}

func TestFernSeedDeterminism(t *testing.T) {
	a, err := GenerateFern(6000, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateFern(6000, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(a, b); d != "" {
		t.Fatalf("same seed, different output (-first +second):\n%s", d)
	}
	c, err := GenerateFern(6000, rand.New(rand.NewSource(43)))
	if err != nil {
		t.Fatal(err)
	}
	if cmp.Equal(a, c) {
		t.Fatal("different seeds produced identical sequences")
	}
}

func TestIFSSingleMapIsDeterministic(t *testing.T) {
	leaf := BarnsleyMaps()[0]
	leaf.Weight = 1
	ifs, err := NewIFS([]AffineMap{leaf}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	pts, err := ifs.Generate(MinFernPoints)
	if err != nil {
		t.Fatal(err)
	}
	want := []Point2D{
		{X: 0, Y: 1.6},
		{X: 0.04 * 1.6, Y: 0.85*1.6 + 1.6},
	}
	for i, w := range want {
		if math.Abs(pts[i].X-w.X) > 1e-12 || math.Abs(pts[i].Y-w.Y) > 1e-12 {
			t.Fatalf("point %d: got %v want %v", i, pts[i], w)
		}
	}
}

func TestIFSMapFrequencies(t *testing.T) {
	f := NewFern(rand.New(rand.NewSource(3)))
	const n = 200_000
	counts := make([]int, len(f.Maps()))
	for i := 0; i < n; i++ {
		counts[f.pick()]++
	}
	for i, m := range f.Maps() {
		got := Real(counts[i]) / n
		if math.Abs(got-m.Weight) > 0.01 {
			t.Fatalf("map %q picked %.4f of the time, want ~%.2f", m.Name, got, m.Weight)
		}
	}
}

func TestNewIFSValidation(t *testing.T) {
	good := BarnsleyMaps()
	cases := map[string][]AffineMap{
		"empty":      nil,
		"short":      good[:3],
		"negative":   {{Weight: -0.1}, {Weight: 1.1}},
		"nan weight": {{Weight: math.NaN()}},
		"inf coeff":  {{A: math.Inf(1), Weight: 1}},
	}
	for name, maps := range cases {
		if _, err := NewIFS(maps, nil); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("%s: want ErrInvalidArgument, got %v", name, err)
		}
	}
	if _, err := NewIFS(good, nil); err != nil {
		t.Fatalf("Barnsley maps rejected: %v", err)
	}
}

func TestIFSMapsIsACopy(t *testing.T) {
	f := NewFern(rand.New(rand.NewSource(1)))
	m := f.Maps()
	m[0].A = 100
	if f.Maps()[0].A != 0.85 {
		t.Fatal("Maps exposed internal table")
	}
}

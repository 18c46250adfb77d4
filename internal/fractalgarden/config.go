package fractalgarden

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Vec3Cfg is a 3-vector as written in config files.
type Vec3Cfg struct {
	X Real `json:"x" yaml:"x"`
	Y Real `json:"y" yaml:"y"`
	Z Real `json:"z" yaml:"z"`
}

func (v Vec3Cfg) Point() Point3D { return P3(v.X, v.Y, v.Z) }
func (v Vec3Cfg) Vec() Vec3      { return V3(v.X, v.Y, v.Z) }

// Rotation in degrees for config files (friendlier than radians).
type Rot3Deg struct {
	X Real `json:"x" yaml:"x"`
	Y Real `json:"y" yaml:"y"`
	Z Real `json:"z" yaml:"z"`
}

func (r Rot3Deg) Radians() Rot3 {
	return Rot3{X: degToRad(r.X), Y: degToRad(r.Y), Z: degToRad(r.Z)}
}

type ViewCfg struct {
	Elev Real `json:"elev" yaml:"elev"`
	Azim Real `json:"azim" yaml:"azim"`
}

func (v ViewCfg) View() View { return View{ElevDeg: v.Elev, AzimDeg: v.Azim} }

type BoxCfg struct {
	Min Vec3Cfg `json:"min" yaml:"min"`
	Max Vec3Cfg `json:"max" yaml:"max"`
}

type FernCfg struct {
	Skip   bool   `json:"skip,omitempty" yaml:"skip,omitempty"`
	Points int    `json:"points" yaml:"points"`
	Seed   int64  `json:"seed,omitempty" yaml:"seed,omitempty"` // 0 picks a time-based seed
	Out    string `json:"out" yaml:"out"`
}

type ShellCfg struct {
	Skip         bool    `json:"skip,omitempty" yaml:"skip,omitempty"`
	A            Real    `json:"a" yaml:"a"`
	B            Real    `json:"b" yaml:"b"`
	C            Real    `json:"c" yaml:"c"`
	Turns        int     `json:"turns" yaml:"turns"`
	TurnsInverse int     `json:"turnsInverse" yaml:"turnsInverse"`
	Thickness    Real    `json:"thickness" yaml:"thickness"`
	Points       int     `json:"points" yaml:"points"`
	RotDeg       Rot3Deg `json:"rotDeg" yaml:"rotDeg"`
	View         ViewCfg `json:"view" yaml:"view"`
	Out          string  `json:"out" yaml:"out"`
	GIFOut       string  `json:"gifOut,omitempty" yaml:"gifOut,omitempty"`
}

type TreeCfg struct {
	Skip           bool    `json:"skip,omitempty" yaml:"skip,omitempty"`
	Base           Vec3Cfg `json:"base" yaml:"base"`
	Length         Real    `json:"length" yaml:"length"`
	Direction      Vec3Cfg `json:"direction" yaml:"direction"`
	Depth          int     `json:"depth" yaml:"depth"`
	BranchAngleDeg Real    `json:"branchAngleDeg" yaml:"branchAngleDeg"`
	ScaleFactor    Real    `json:"scaleFactor" yaml:"scaleFactor"`
	View           ViewCfg `json:"view" yaml:"view"`
	Limits         *BoxCfg `json:"limits,omitempty" yaml:"limits,omitempty"`
	Out            string  `json:"out" yaml:"out"`
	GIFOut         string  `json:"gifOut,omitempty" yaml:"gifOut,omitempty"`
}

type Config struct {
	Width     int      `json:"width" yaml:"width"`
	Height    int      `json:"height" yaml:"height"`
	OutDir    string   `json:"outDir" yaml:"outDir"`
	GIFFrames int      `json:"gifFrames,omitempty" yaml:"gifFrames,omitempty"`
	GIFDelay  int      `json:"gifDelay,omitempty" yaml:"gifDelay,omitempty"`
	Fern      FernCfg  `json:"fern" yaml:"fern"`
	Shell     ShellCfg `json:"shell" yaml:"shell"`
	Tree      TreeCfg  `json:"tree" yaml:"tree"`
}

// DefaultConfig returns the garden the program draws with no config file.
func DefaultConfig() *Config {
	return &Config{
		Width:     ImageWidth,
		Height:    ImageHeight,
		OutDir:    "out",
		GIFFrames: GIFFrames,
		GIFDelay:  GIFDelay,
		Fern: FernCfg{
			Points: 100_000,
			Out:    "fern.png",
		},
		Shell: ShellCfg{
			A: 0.1, B: 0.2, C: 0.15,
			Turns: 10, TurnsInverse: 5,
			Thickness: 0.05,
			Points:    8000,
			RotDeg:    Rot3Deg{Y: 90},
			View:      ViewCfg{Elev: 30, Azim: -60},
			Out:       "seashell.png",
			GIFOut:    "seashell.gif",
		},
		Tree: TreeCfg{
			Length:         1,
			Direction:      Vec3Cfg{X: 0.001, Y: 0.001, Z: 1},
			Depth:          7,
			BranchAngleDeg: 45,
			ScaleFactor:    0.5,
			View:           ViewCfg{Elev: 10, Azim: 60},
			Limits:         &BoxCfg{Min: Vec3Cfg{X: -1, Y: -1, Z: 0}, Max: Vec3Cfg{X: 1, Y: 1, Z: 2}},
			Out:            "tree.png",
			GIFOut:         "tree.gif",
		},
	}
}

// LoadConfig reads path over DefaultConfig. Files ending in .yaml or .yml are
// decoded as YAML, anything else as JSON. An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode yaml config %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode json config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	DebugLog("Loaded config from %s: size=(%d, %d), fern=%d, shell=%d, tree depth=%d",
		path, cfg.Width, cfg.Height, cfg.Fern.Points, cfg.Shell.Points, cfg.Tree.Depth)
	return cfg, nil
}

// Validate checks the settings that are not covered by the generators' own
// argument checks.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.Width > 4096 || c.Height > 4096 {
		return invalidf("image size must be within 1..4096, got %dx%d", c.Width, c.Height)
	}
	if c.GIFFrames < 0 || c.GIFDelay < 0 {
		return invalidf("gif frames and delay must be >= 0, got %d/%d", c.GIFFrames, c.GIFDelay)
	}
	if c.Fern.Points > MaxFernPoints {
		return invalidf("fern points must be <= %d, got %d", MaxFernPoints, c.Fern.Points)
	}
	return nil
}

// Build returns the fern generator and the requested point count.
func (fc FernCfg) Build() (*IFS, int, error) {
	if fc.Points < 0 {
		return nil, 0, invalidf("fern points must be >= 0, got %d", fc.Points)
	}
	seed := fc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	DebugLog("fern seed: %d", seed)
	return NewFern(rand.New(rand.NewSource(seed))), fc.Points, nil
}

// Build validates and constructs the runtime parameters.
func (sc ShellCfg) Build() (ShellParams, error) {
	p := ShellParams{
		A: sc.A, B: sc.B, C: sc.C,
		Turns:        sc.Turns,
		TurnsInverse: sc.TurnsInverse,
		Thickness:    sc.Thickness,
		SampleCount:  sc.Points,
	}
	return p, p.Validate()
}

// Build validates and constructs the runtime parameters.
func (tc TreeCfg) Build() (TreeParams, error) {
	p := TreeParams{
		Base:        tc.Base.Point(),
		Length:      tc.Length,
		Direction:   tc.Direction.Vec(),
		Depth:       tc.Depth,
		BranchAngle: degToRad(tc.BranchAngleDeg),
		ScaleFactor: tc.ScaleFactor,
	}
	return p, p.Validate()
}

func (b *BoxCfg) Box() *Box {
	if b == nil {
		return nil
	}
	return &Box{Min: b.Min.Point(), Max: b.Max.Point()}
}

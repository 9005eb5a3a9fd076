// Package config holds the settings of a single render job and loads them
// from TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/sr3d"
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("config: invalid job")

// Job describes one render: which mesh to read, how to place it on the
// canvas, and where to write the image.
//
// In a TOML file every key is optional; missing keys, zero sizes and empty
// vectors take their value from Default. Relative input and output paths in
// a file are relative to the directory holding that file.
type Job struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Input  string `toml:"input"`
	Output string `toml:"output"`

	Translate []float64 `toml:"translate"`
	Scale     []float64 `toml:"scale"`
	Light     []float64 `toml:"light"`

	// NormalSpace is "screen" or "model".
	NormalSpace string `toml:"normal_space"`

	// Wireframe is a hex color for face outlines; empty disables them.
	Wireframe string `toml:"wireframe"`
}

// Default returns the default job: an 800x600 canvas written to out.bmp,
// identity transform, light toward the viewer.
func Default() *Job {
	return &Job{
		Width:       800,
		Height:      600,
		Output:      "out.bmp",
		Translate:   []float64{0, 0, 0},
		Scale:       []float64{1, 1, 1},
		Light:       []float64{0, 0, 1},
		NormalSpace: sr3d.NormalSpaceScreen.String(),
	}
}

// Load reads a job from a TOML file. Unknown keys are rejected.
func Load(path string) (*Job, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("config: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var j Job
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&j); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	j.fillDefaults()
	j.resolvePaths(filepath.Dir(path))
	return &j, nil
}

// resolvePaths makes relative Input and Output paths relative to dir.
func (j *Job) resolvePaths(dir string) {
	if j.Input != "" && !filepath.IsAbs(j.Input) {
		j.Input = filepath.Join(dir, j.Input)
	}
	if j.Output != "" && !filepath.IsAbs(j.Output) {
		j.Output = filepath.Join(dir, j.Output)
	}
}

// fillDefaults replaces unset fields with their Default values.
func (j *Job) fillDefaults() {
	d := Default()
	if j.Width == 0 {
		j.Width = d.Width
	}
	if j.Height == 0 {
		j.Height = d.Height
	}
	if j.Output == "" {
		j.Output = d.Output
	}
	if len(j.Translate) == 0 {
		j.Translate = d.Translate
	}
	if len(j.Scale) == 0 {
		j.Scale = d.Scale
	}
	if len(j.Light) == 0 {
		j.Light = d.Light
	}
	if j.NormalSpace == "" {
		j.NormalSpace = d.NormalSpace
	}
}

// Validate checks that the job can be rendered.
func (j *Job) Validate() error {
	if err := sr3d.CheckSize(j.Width, j.Height); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if j.Input == "" {
		return fmt.Errorf("%w: no input mesh", ErrInvalid)
	}
	if j.Output == "" {
		return fmt.Errorf("%w: no output file", ErrInvalid)
	}
	vectors := []struct {
		name string
		v    []float64
	}{{"translate", j.Translate}, {"scale", j.Scale}, {"light", j.Light}}
	for _, vv := range vectors {
		if len(vv.v) != 3 {
			return fmt.Errorf("%w: %s needs 3 components, got %d", ErrInvalid, vv.name, len(vv.v))
		}
	}
	if _, err := sr3d.ParseNormalSpace(j.NormalSpace); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if j.Wireframe != "" {
		if _, err := sr3d.Hex(j.Wireframe); err != nil {
			return fmt.Errorf("%w: wireframe: %w", ErrInvalid, err)
		}
	}
	return nil
}

// RenderOptions converts the job's settings to sr3d render options.
// The job must be valid.
func (j *Job) RenderOptions() ([]sr3d.RenderOption, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}

	ns, _ := sr3d.ParseNormalSpace(j.NormalSpace)
	opts := []sr3d.RenderOption{
		sr3d.WithTranslate(vec(j.Translate)),
		sr3d.WithScale(vec(j.Scale)),
		sr3d.WithLight(vec(j.Light)),
		sr3d.WithNormalSpace(ns),
	}
	if j.Wireframe != "" {
		c, _ := sr3d.Hex(j.Wireframe)
		opts = append(opts, sr3d.WithWireframe(c))
	}
	return opts, nil
}

func vec(v []float64) sr3d.Vec3 {
	return sr3d.V3(v[0], v[1], v[2])
}

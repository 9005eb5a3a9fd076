package sr3d

import (
	"fmt"
	"log/slog"
)

// NormalSpace selects which coordinates the face normal is computed from.
type NormalSpace int

const (
	// NormalSpaceScreen computes normals from the transformed, rounded
	// screen coordinates. Lighting then depends on the scale factors.
	NormalSpaceScreen NormalSpace = iota

	// NormalSpaceModel computes normals from the untransformed model
	// coordinates.
	NormalSpaceModel
)

// String returns the name used in configuration files.
func (s NormalSpace) String() string {
	switch s {
	case NormalSpaceScreen:
		return "screen"
	case NormalSpaceModel:
		return "model"
	default:
		return fmt.Sprintf("NormalSpace(%d)", int(s))
	}
}

// ParseNormalSpace parses "screen" or "model".
func ParseNormalSpace(s string) (NormalSpace, error) {
	switch s {
	case "screen", "":
		return NormalSpaceScreen, nil
	case "model":
		return NormalSpaceModel, nil
	default:
		return 0, fmt.Errorf("sr3d: unknown normal space %q", s)
	}
}

// DefaultLight is the directional light used when none is given. It points
// out of the screen toward the viewer.
var DefaultLight = V3(0, 0, 1)

// RenderOption configures a call to Render.
// Use functional options to customize the shading pipeline.
//
// Example:
//
//	// Identity transform, light from the viewer
//	stats, err := sr3d.Render(c, mesh)
//
//	// Centered and enlarged model
//	stats, err := sr3d.Render(c, mesh,
//		sr3d.WithScale(sr3d.V3(100, 100, 100)),
//		sr3d.WithTranslate(sr3d.V3(400, 300, 0)))
type RenderOption func(*renderOptions)

// renderOptions holds optional configuration for Render.
type renderOptions struct {
	transform   Transform
	light       Vec3
	normalSpace NormalSpace
	wireframe   *Color
	logger      *slog.Logger
}

// defaultRenderOptions returns the default render options.
func defaultRenderOptions() renderOptions {
	return renderOptions{
		transform:   IdentityTransform(),
		light:       DefaultLight,
		normalSpace: NormalSpaceScreen,
	}
}

// WithTranslate sets the per-axis offset added after scaling.
func WithTranslate(t Vec3) RenderOption {
	return func(o *renderOptions) {
		o.transform.Translate = t
	}
}

// WithScale sets the per-axis scale factors applied to model coordinates.
func WithScale(s Vec3) RenderOption {
	return func(o *renderOptions) {
		o.transform.Scale = s
	}
}

// WithTransform sets translation and scale at once.
func WithTransform(t Transform) RenderOption {
	return func(o *renderOptions) {
		o.transform = t
	}
}

// WithLight sets the light direction. The vector is used as given;
// pass a unit vector to keep intensities within [-1, 1].
func WithLight(dir Vec3) RenderOption {
	return func(o *renderOptions) {
		o.light = dir
	}
}

// WithNormalSpace selects the coordinates used for face normals.
func WithNormalSpace(s NormalSpace) RenderOption {
	return func(o *renderOptions) {
		o.normalSpace = s
	}
}

// WithLogger sends the records of one Render call to l instead of the
// package logger. A nil l keeps the package logger.
func WithLogger(l *slog.Logger) RenderOption {
	return func(o *renderOptions) {
		o.logger = l
	}
}

// WithWireframe outlines every drawn face with lines in the given color.
// Outlines are drawn after the fill and ignore the depth buffer.
func WithWireframe(col Color) RenderOption {
	return func(o *renderOptions) {
		o.wireframe = &col
	}
}

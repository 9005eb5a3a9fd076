// Package sr3d is a small software 3D rasterizer.
//
// # Overview
//
// sr3d flat-shades a triangle/quad mesh into a fixed-size canvas with a
// depth buffer and writes the result as an uncompressed 24-bit BMP. There is
// no camera: the mesh is mapped to pixels by a per-axis scale and translate,
// X and Y become pixel coordinates and Z becomes depth.
//
// # Quick Start
//
//	import "github.com/gogpu/sr3d"
//
//	c, _ := sr3d.NewCanvas(800, 600)
//
//	stats, err := sr3d.Render(c, mesh,
//		sr3d.WithScale(sr3d.V3(200, 200, 200)),
//		sr3d.WithTranslate(sr3d.V3(400, 300, 0)))
//	if err != nil {
//		return err
//	}
//
//	return c.SaveBMP("out.bmp")
//
// Meshes are usually read with the internal/obj package from Wavefront OBJ
// files; the cmd/sr3d command wires reader, renderer and encoder together.
//
// # Pipeline
//
// For each face Render:
//   - transforms the vertices to screen space and rounds them
//   - computes the face normal from the first three corners
//   - lights it with one directional light (default (0, 0, 1))
//   - culls the face if the grey level is negative
//   - fills one triangle, or two for a quad: (A,B,C) and (A,D,C)
//
// # Coordinate System
//
//   - Origin (0,0) is buffer row 0, column 0
//   - X increases right, Y increases with the buffer row
//   - Larger Z is nearer to the viewer
//
// BMP readers place buffer row 0 at the bottom of the image, so Y appears
// to increase upward in the written file.
package sr3d

// Version is the current version of the library.
const Version = "0.1.0"

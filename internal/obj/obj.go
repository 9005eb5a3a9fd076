// Package obj reads the geometry of Wavefront OBJ files (*.obj) into an
// sr3d.Mesh. Only vertex positions and faces are kept; texture
// coordinates, normals, groups and materials are parsed past and ignored.
// Basic format info: https://en.wikipedia.org/wiki/Wavefront_.obj_file
package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/sr3d"
)

// ErrSyntax is returned for lines that cannot be parsed.
var ErrSyntax = errors.New("obj: syntax error")

// Decoder holds the state of a single decode.
type Decoder struct {
	Mesh     sr3d.Mesh // decoded geometry
	Warnings []string  // statements that were skipped

	line    int // current line number, 1-based
	normals int // vn lines seen so far
	uvs     int // vt lines seen so far
}

// Load reads the OBJ file at path.
func Load(path string) (*sr3d.Mesh, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("obj: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("obj: %s: %w", path, err)
	}
	return m, nil
}

// Decode reads OBJ data from r.
func Decode(r io.Reader) (*sr3d.Mesh, error) {
	dec := &Decoder{}
	if err := dec.Decode(r); err != nil {
		return nil, err
	}
	for _, w := range dec.Warnings {
		sr3d.Logger().Warn("obj: statement ignored", "detail", w)
	}
	return &dec.Mesh, nil
}

// Decode reads all lines from r, appending to dec.Mesh.
func (dec *Decoder) Decode(r io.Reader) error {
	sc := bufio.NewScanner(r)
	dec.line = 0
	for sc.Scan() {
		dec.line++
		if err := dec.parseLine(sc.Text()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("obj: read: %w", err)
	}
	return nil
}

// parseLine dispatches a single line to its statement parser.
func (dec *Decoder) parseLine(line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "v":
		return dec.parseVertex(fields[1:])
	case "vn":
		dec.normals++
	case "vt":
		dec.uvs++
	case "f":
		return dec.parseFace(fields[1:])
	case "o", "g", "s", "usemtl", "mtllib":
		// Grouping and materials do not affect flat grey shading.
	default:
		dec.appendWarn("statement not supported: " + fields[0])
	}
	return nil
}

// parseVertex parses a vertex position line:
// v <x> <y> <z> [w]
func (dec *Decoder) parseVertex(fields []string) error {
	if len(fields) < 3 {
		return dec.formatError("vertex with fewer than 3 coordinates")
	}

	var xyz [3]float64
	for i, f := range fields[:3] {
		val, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return dec.formatError(fmt.Sprintf("bad coordinate %q", f))
		}
		xyz[i] = val
	}
	dec.Mesh.Vertices = append(dec.Mesh.Vertices, sr3d.V3(xyz[0], xyz[1], xyz[2]))
	return nil
}

// parseFace parses a face description line:
// f v1[/vt1][/vn1] v2[/vt2][/vn2] v3[/vt3][/vn3] ...
func (dec *Decoder) parseFace(fields []string) error {
	if len(fields) < 3 {
		return dec.formatError("face with fewer than 3 vertices")
	}

	face := make(sr3d.Face, 0, len(fields))
	for _, f := range fields {
		parts := strings.Split(f, "/")
		if len(parts) > 3 {
			return dec.formatError(fmt.Sprintf("bad face vertex %q", f))
		}

		var fv sr3d.FaceVertex
		var err error
		if fv.V, err = dec.parseIndex(parts[0], len(dec.Mesh.Vertices)); err != nil {
			return err
		}
		if len(parts) > 1 && parts[1] != "" {
			if fv.VT, err = dec.parseIndex(parts[1], dec.uvs); err != nil {
				return err
			}
		}
		if len(parts) > 2 && parts[2] != "" {
			if fv.VN, err = dec.parseIndex(parts[2], dec.normals); err != nil {
				return err
			}
		}
		face = append(face, fv)
	}

	dec.Mesh.Faces = append(dec.Mesh.Faces, face)
	return nil
}

// parseIndex parses a 1-based index. Negative indices count back from the
// last element defined so far, -1 being the most recent; they are returned
// as the equivalent positive index.
func (dec *Decoder) parseIndex(s string, count int) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, dec.formatError(fmt.Sprintf("bad index %q", s))
	}
	switch {
	case idx > 0:
		return idx, nil
	case idx < 0 && count+idx >= 0:
		return count + idx + 1, nil
	default:
		return 0, dec.formatError(fmt.Sprintf("index %d out of range", idx))
	}
}

func (dec *Decoder) appendWarn(msg string) {
	dec.Warnings = append(dec.Warnings, fmt.Sprintf("line %d: %s", dec.line, msg))
}

func (dec *Decoder) formatError(msg string) error {
	return fmt.Errorf("%w: line %d: %s", ErrSyntax, dec.line, msg)
}

// Package obj reads Wavefront OBJ meshes into the flat triangle-list
// vertex order the pipeline consumes (three consecutive vertices per
// triangle, no index buffer).
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/raster"
)

// Load reads an OBJ file. A mesh that cannot be read or parsed is a fatal
// startup condition for the caller.
func Load(path string) ([]raster.Vertex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("obj: open %s: %w", path, err)
	}
	defer f.Close()

	verts, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("obj: parse %s: %w", path, err)
	}
	return verts, nil
}

// Parse reads OBJ statements from r. Supported statements: v, vn, vt and f
// (with v, v/vt, v//vn and v/vt/vn references); faces with more than three
// corners are fan-triangulated. Unknown statements are skipped.
func Parse(r io.Reader) ([]raster.Vertex, error) {
	var (
		positions []mathutil.Vec3
		normals   []mathutil.Vec3
		uvs       []mathutil.Vec2
		out       []raster.Vertex
	)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: v: %w", line, err)
			}
			positions = append(positions, p)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vn: %w", line, err)
			}
			normals = append(normals, n)
		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: vt: want 2 components", line)
			}
			u, err1 := strconv.ParseFloat(fields[1], 64)
			v, err2 := strconv.ParseFloat(fields[2], 64)
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("line %d: vt: bad component", line)
			}
			uvs = append(uvs, mathutil.Vec2{u, v})
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: f: want at least 3 corners", line)
			}
			corners := make([]raster.Vertex, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				v, err := resolveRef(ref, positions, uvs, normals)
				if err != nil {
					return nil, fmt.Errorf("line %d: f: %w", line, err)
				}
				corners = append(corners, v)
			}
			// Fan triangulation around the first corner.
			for i := 1; i+1 < len(corners); i++ {
				out = append(out, corners[0], corners[i], corners[i+1])
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseVec3(fields []string) (mathutil.Vec3, error) {
	if len(fields) < 3 {
		return mathutil.Vec3{}, fmt.Errorf("want 3 components, got %d", len(fields))
	}
	var v mathutil.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return mathutil.Vec3{}, fmt.Errorf("bad component %q", fields[i])
		}
		v[i] = f
	}
	return v, nil
}

// resolveRef turns a face corner reference (v, v/vt, v//vn, v/vt/vn, with
// 1-based or negative relative indices) into a Vertex.
func resolveRef(ref string, positions []mathutil.Vec3, uvs []mathutil.Vec2, normals []mathutil.Vec3) (raster.Vertex, error) {
	parts := strings.Split(ref, "/")

	pi, err := resolveIndex(parts[0], len(positions))
	if err != nil {
		return raster.Vertex{}, err
	}
	v := raster.Vertex{Position: positions[pi]}

	if len(parts) > 1 && parts[1] != "" {
		ti, err := resolveIndex(parts[1], len(uvs))
		if err != nil {
			return raster.Vertex{}, err
		}
		v.UV = uvs[ti]
	}
	if len(parts) > 2 && parts[2] != "" {
		ni, err := resolveIndex(parts[2], len(normals))
		if err != nil {
			return raster.Vertex{}, err
		}
		v.Normal = normals[ni]
	}
	return v, nil
}

func resolveIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad index %q", s)
	}
	if i < 0 {
		i = n + i
	} else {
		i--
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("index %s out of range (%d elements)", s, n)
	}
	return i, nil
}

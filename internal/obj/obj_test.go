package obj

import (
	"strings"
	"testing"

	"solar-renderer/internal/mathutil"
)

const triangleOBJ = `
# simple triangle
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
vt 0 0
vt 1 0
vt 0 1
f 1/1/1 2/2/1 3/3/1
`

func TestParseTriangle(t *testing.T) {
	verts, err := Parse(strings.NewReader(triangleOBJ))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(verts) != 3 {
		t.Fatalf("got %d vertices, want 3", len(verts))
	}

	if verts[0].Position != (mathutil.Vec3{0, 0, 0}) {
		t.Errorf("v0 position = %v", verts[0].Position)
	}
	if verts[1].Position != (mathutil.Vec3{1, 0, 0}) {
		t.Errorf("v1 position = %v", verts[1].Position)
	}
	for i, v := range verts {
		if v.Normal != (mathutil.Vec3{0, 0, 1}) {
			t.Errorf("vertex %d normal = %v, want +z", i, v.Normal)
		}
	}
	if verts[2].UV != (mathutil.Vec2{0, 1}) {
		t.Errorf("v2 uv = %v, want (0,1)", verts[2].UV)
	}
}

func TestParseQuadFanTriangulation(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	verts, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// A quad fans into two triangles sharing the first corner.
	if len(verts) != 6 {
		t.Fatalf("got %d vertices, want 6", len(verts))
	}
	if verts[0].Position != verts[3].Position {
		t.Error("fan triangles do not share the first corner")
	}
}

func TestParseReferenceForms(t *testing.T) {
	tests := []struct {
		name string
		face string
	}{
		{"position only", "f 1 2 3"},
		{"position and uv", "f 1/1 2/1 3/1"},
		{"position and normal", "f 1//1 2//1 3//1"},
		{"full", "f 1/1/1 2/1/1 3/1/1"},
		{"negative indices", "f -3 -2 -1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nvn 0 0 1\nvt 0 0\n" + tc.face + "\n"
			verts, err := Parse(strings.NewReader(src))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if len(verts) != 3 {
				t.Fatalf("got %d vertices, want 3", len(verts))
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"bad vertex component", "v 0 zero 0\n"},
		{"short vertex", "v 0 0\n"},
		{"face index out of range", "v 0 0 0\nf 1 2 3\n"},
		{"bad face index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 x\n"},
		{"face with two corners", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tc.src)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseSkipsUnknownStatements(t *testing.T) {
	src := `
mtllib planet.mtl
o Sphere
s off
v 0 0 0
v 1 0 0
v 0 1 0
usemtl rock
f 1 2 3
`
	verts, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(verts) != 3 {
		t.Fatalf("got %d vertices, want 3", len(verts))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does/not/exist.obj"); err == nil {
		t.Error("expected an error for a missing file")
	}
}

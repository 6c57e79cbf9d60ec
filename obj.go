package arbor

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// LoadOBJ loads a Wavefront OBJ file as a triangle mesh. Polygonal faces
// are fan-triangulated; missing normals are derived from face winding.
func LoadOBJ(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "arbor: open obj %q", path)
	}
	defer file.Close()
	mesh, err := LoadOBJFromReader(file)
	if err != nil {
		return nil, errors.Wrapf(err, "arbor: parse obj %q", path)
	}
	return mesh, nil
}

func LoadOBJFromBytes(b []byte) (*Mesh, error) {
	return LoadOBJFromReader(bytes.NewReader(b))
}

func LoadOBJFromReader(r io.Reader) (*Mesh, error) {
	// index 0 stays unused so OBJ's 1-based references map directly
	vs := make([]mgl64.Vec3, 1, 1024)
	vts := make([]mgl64.Vec2, 1, 1024)
	vns := make([]mgl64.Vec3, 1, 1024)

	var triangles []*Triangle
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 2 || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				continue
			}
			vs = append(vs, mgl64.Vec3{pf(fields[1]), pf(fields[2]), pf(fields[3])})
		case "vt":
			if len(fields) < 3 {
				continue
			}
			vts = append(vts, mgl64.Vec2{pf(fields[1]), pf(fields[2])})
		case "vn":
			if len(fields) < 4 {
				continue
			}
			vns = append(vns, mgl64.Vec3{pf(fields[1]), pf(fields[2]), pf(fields[3])})
		case "f":
			args := fields[1:]
			fvs := make([]int, len(args))
			fvts := make([]int, len(args))
			fvns := make([]int, len(args))

			for i, arg := range args {
				vertex := strings.Split(arg+"//", "/")
				fvs[i] = fixIndex(vertex[0], len(vs))
				fvts[i] = fixIndex(vertex[1], len(vts))
				fvns[i] = fixIndex(vertex[2], len(vns))
			}

			for i := 1; i < len(fvs)-1; i++ {
				t := &Triangle{}
				i1, i2, i3 := 0, i, i+1

				t.V1.Position = vs[fvs[i1]]
				t.V2.Position = vs[fvs[i2]]
				t.V3.Position = vs[fvs[i3]]

				if fvns[i1] > 0 {
					t.V1.Normal = vns[fvns[i1]]
					t.V2.Normal = vns[fvns[i2]]
					t.V3.Normal = vns[fvns[i3]]
				}
				if fvts[i1] > 0 {
					t.V1.Texture = vts[fvts[i1]]
					t.V2.Texture = vts[fvts[i2]]
					t.V3.Texture = vts[fvts[i3]]
				}

				t.FixNormals()
				triangles = append(triangles, t)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "arbor: read obj")
	}
	return NewTriangleMesh(triangles), nil
}

func pf(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// fixIndex resolves OBJ's 1-based and negative (relative) indices.
func fixIndex(value string, length int) int {
	if value == "" {
		return 0
	}
	parsed, _ := strconv.Atoi(value)
	if parsed < 0 {
		return parsed + length
	}
	return parsed
}

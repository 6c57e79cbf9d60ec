package arbor

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF loads a .gltf or .glb file as a triangle mesh. Only triangle
// primitives are read; other modes are skipped.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "arbor: open gltf %q", path)
	}

	var allTriangles []*Triangle

	for _, mesh := range doc.Meshes {
		for _, primitive := range mesh.Primitives {
			if primitive.Mode != gltf.PrimitiveTriangles {
				continue
			}

			posIdx, ok := primitive.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, errors.Wrapf(err, "arbor: gltf positions in %q", path)
			}

			var normals [][3]float32
			if normIdx, ok := primitive.Attributes[gltf.NORMAL]; ok {
				normals, _ = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
			}

			var texCoords [][2]float32
			if texIdx, ok := primitive.Attributes[gltf.TEXCOORD_0]; ok {
				texCoords, _ = modeler.ReadTextureCoord(doc, doc.Accessors[texIdx], nil)
			}

			var indices []uint32
			if primitive.Indices != nil {
				indices, err = modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], nil)
				if err != nil {
					return nil, errors.Wrapf(err, "arbor: gltf indices in %q", path)
				}
			} else {
				indices = make([]uint32, len(positions))
				for k := range indices {
					indices[k] = uint32(k)
				}
			}

			for i := 0; i+2 < len(indices); i += 3 {
				t := &Triangle{}
				i1, i2, i3 := indices[i], indices[i+1], indices[i+2]

				t.V1 = gltfVertex(positions, normals, texCoords, i1)
				t.V2 = gltfVertex(positions, normals, texCoords, i2)
				t.V3 = gltfVertex(positions, normals, texCoords, i3)

				t.FixNormals()
				allTriangles = append(allTriangles, t)
			}
		}
	}

	if len(allTriangles) == 0 {
		return nil, errors.Errorf("arbor: no triangles in gltf %q", path)
	}
	return NewTriangleMesh(allTriangles), nil
}

func gltfVertex(positions, normals [][3]float32, texCoords [][2]float32, i uint32) Vertex {
	var v Vertex
	p := positions[i]
	v.Position = mgl64.Vec3{float64(p[0]), float64(p[1]), float64(p[2])}
	if int(i) < len(normals) {
		n := normals[i]
		v.Normal = mgl64.Vec3{float64(n[0]), float64(n[1]), float64(n[2])}
	}
	if int(i) < len(texCoords) {
		t := texCoords[i]
		v.Texture = mgl64.Vec2{float64(t[0]), float64(t[1])}
	}
	return v
}

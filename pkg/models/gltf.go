package models

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ErrTooManyVertices is returned when a model cannot be addressed with
// 16-bit indices (gl.UNSIGNED_SHORT).
var ErrTooManyVertices = errors.New("models: mesh exceeds 65536 vertices")

// GLTFLoader loads GLTF/GLB files into Mesh format.
type GLTFLoader struct {
	// Options
	Normalize    bool       // Recentre and fit into a 2-unit cube
	DefaultColor color.RGBA // Used when a primitive has no COLOR_0
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		Normalize:    true,
		DefaultColor: white,
	}
}

// LoadGLB loads a binary GLTF (.glb) file with the default options.
func LoadGLB(path string) (*Mesh, error) {
	return NewGLTFLoader().Load(path)
}

// Load loads a GLTF or GLB file and returns a Mesh merging every
// triangle primitive in the document.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return l.FromDocument(doc, filepath.Base(path))
}

// FromDocument converts an already decoded document.
func (l *GLTFLoader) FromDocument(doc *gltf.Document, name string) (*Mesh, error) {
	mesh := NewMesh(name)
	for _, m := range doc.Meshes {
		if err := l.processMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}
	if len(mesh.Elements) == 0 {
		return nil, fmt.Errorf("%s: no triangle primitives", name)
	}

	mesh.CalculateBounds()
	if l.Normalize {
		mesh.Normalize()
	}
	return mesh, nil
}

// processMesh extracts geometry from a GLTF mesh.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			// Skip non-triangle primitives (lines, points, etc)
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		var colors [][4]uint8
		if colIdx, ok := prim.Attributes[gltf.COLOR_0]; ok {
			colors, err = modeler.ReadColor(doc, doc.Accessors[colIdx], nil)
			if err != nil {
				return fmt.Errorf("read colors: %w", err)
			}
		}

		baseVertex := len(mesh.Vertices)
		if baseVertex+len(positions) > math.MaxUint16+1 {
			return ErrTooManyVertices
		}

		for i, p := range positions {
			v := MeshVertex{Color: l.DefaultColor}
			v.Position.X, v.Position.Y, v.Position.Z = float64(p[0]), float64(p[1]), float64(p[2])
			if i < len(colors) {
				c := colors[i]
				v.Color = color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
			}
			mesh.Vertices = append(mesh.Vertices, v)
		}

		if prim.Indices == nil {
			// No indices, assume sequential triangles
			for i := 0; i+2 < len(positions); i += 3 {
				mesh.Elements = append(mesh.Elements,
					uint16(baseVertex+i), uint16(baseVertex+i+1), uint16(baseVertex+i+2))
			}
			continue
		}

		indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return fmt.Errorf("read indices: %w", err)
		}
		for i := 0; i+2 < len(indices); i += 3 {
			for _, idx := range indices[i : i+3] {
				if int(idx) >= len(positions) {
					return fmt.Errorf("index %d out of range for %d vertices", idx, len(positions))
				}
				mesh.Elements = append(mesh.Elements, uint16(baseVertex+int(idx)))
			}
		}
	}

	return nil
}

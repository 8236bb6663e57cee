package gfx

import "fmt"

const floatSize = 4 // bytes per float32 component

// Attribute is one float32 vector attribute of an interleaved vertex.
type Attribute struct {
	Location   uint32
	Components int32
}

// Layout lists the attributes of one vertex in buffer order.
type Layout []Attribute

var (
	// layout(location = 0) in vec3 aPos;
	PositionLayout = Layout{{Location: 0, Components: 3}}
	// layout(location = 0) in vec3 aPos;
	// layout(location = 1) in vec3 aColor;
	PositionColorLayout = Layout{{Location: 0, Components: 3}, {Location: 1, Components: 3}}
)

// Floats is the number of float32 components per vertex.
func (l Layout) Floats() int {
	n := 0
	for _, a := range l {
		n += int(a.Components)
	}
	return n
}

// Stride is the byte distance between consecutive vertices.
func (l Layout) Stride() int32 { return int32(l.Floats() * floatSize) }

// Offsets returns each attribute's byte offset inside a vertex.
func (l Layout) Offsets() []int {
	out := make([]int, len(l))
	off := 0
	for i, a := range l {
		out[i] = off
		off += int(a.Components) * floatSize
	}
	return out
}

// Mesh is a fixed vertex list plus the layout it is interleaved with.
type Mesh struct {
	Vertices []float32
	Layout   Layout
}

// TriangleMesh is the position-only triangle.
func TriangleMesh() Mesh {
	return Mesh{
		Vertices: []float32{
			//  X,    Y,   Z
			-0.5, -0.5, 0.0,
			0.5, -0.5, 0.0,
			0.0, 0.5, 0.0,
		},
		Layout: PositionLayout,
	}
}

// ColoredTriangleMesh carries a per-vertex color after each position.
func ColoredTriangleMesh() Mesh {
	return Mesh{
		Vertices: []float32{
			//  X,    Y,   Z,   R,   G,   B
			0.5, -0.5, 0.0, 1.0, 0.0, 0.0,
			-0.5, -0.5, 0.0, 0.0, 1.0, 0.0,
			0.0, 0.5, 0.0, 0.0, 0.0, 1.0,
		},
		Layout: PositionColorLayout,
	}
}

func (m Mesh) VertexCount() int32 {
	n := m.Layout.Floats()
	if n == 0 {
		return 0
	}
	return int32(len(m.Vertices) / n)
}

// Validate checks that stride x vertex count covers the whole vertex list.
func (m Mesh) Validate() error {
	if len(m.Layout) == 0 {
		return fmt.Errorf("mesh: empty layout")
	}
	seen := map[uint32]bool{}
	for _, a := range m.Layout {
		if a.Components < 1 || a.Components > 4 {
			return fmt.Errorf("mesh: attribute %d has %d components", a.Location, a.Components)
		}
		if seen[a.Location] {
			return fmt.Errorf("mesh: location %d used twice", a.Location)
		}
		seen[a.Location] = true
	}
	count := m.VertexCount()
	if count == 0 {
		return fmt.Errorf("mesh: no vertices")
	}
	if int(m.Layout.Stride())*int(count) != len(m.Vertices)*floatSize {
		return fmt.Errorf("mesh: %d floats do not divide into %d-float vertices", len(m.Vertices), m.Layout.Floats())
	}
	return nil
}

// VertexArray is an uploaded mesh: one VAO recording the layout and the
// VBO holding the vertices.
type VertexArray struct {
	dev   Device
	vao   uint32
	vbo   uint32
	count int32
}

// Upload copies the mesh into a static buffer and records its attribute
// layout in a new vertex array object.
func Upload(dev Device, m Mesh) (*VertexArray, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	va := &VertexArray{dev: dev, count: m.VertexCount()}

	va.vao = dev.GenVertexArray()
	dev.BindVertexArray(va.vao)

	va.vbo = dev.GenBuffer()
	dev.BindArrayBuffer(va.vbo)
	dev.ArrayBufferStaticData(m.Vertices)

	stride := m.Layout.Stride()
	offsets := m.Layout.Offsets()
	for i, a := range m.Layout {
		dev.VertexAttribPointer(a.Location, a.Components, stride, offsets[i])
		dev.EnableVertexAttribArray(a.Location)
	}

	dev.BindVertexArray(0)
	dev.BindArrayBuffer(0)
	return va, nil
}

func (va *VertexArray) Count() int32 { return va.count }

func (va *VertexArray) Bind() { va.dev.BindVertexArray(va.vao) }

// Draw issues one triangle draw over every vertex. The array must be bound.
func (va *VertexArray) Draw() { va.dev.DrawTriangles(0, va.count) }

func (va *VertexArray) Delete() {
	if va.vbo != 0 {
		va.dev.DeleteBuffer(va.vbo)
		va.vbo = 0
	}
	if va.vao != 0 {
		va.dev.DeleteVertexArray(va.vao)
		va.vao = 0
	}
}

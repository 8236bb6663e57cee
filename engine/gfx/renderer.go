package gfx

import (
	"math"

	"github.com/hubastard/learngl/engine/colors"
)

// ColorUniform is the fragment stage uniform driven by PulseColor.
const ColorUniform = "ourColor"

// TriangleRenderer draws one uploaded mesh with one program.
type TriangleRenderer struct {
	dev      Device
	program  *Program
	vertices *VertexArray
}

// NewTriangleRenderer builds the program first and uploads the mesh only
// after it linked.
func NewTriangleRenderer(dev Device, vertexSrc, fragmentSrc string, mesh Mesh) (*TriangleRenderer, error) {
	prog, err := BuildProgram(dev, vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	va, err := Upload(dev, mesh)
	if err != nil {
		prog.Delete()
		return nil, err
	}
	return &TriangleRenderer{dev: dev, program: prog, vertices: va}, nil
}

func (r *TriangleRenderer) Program() *Program { return r.program }

func (r *TriangleRenderer) Resize(w, h int) {
	r.dev.Viewport(0, 0, int32(w), int32(h))
}

func (r *TriangleRenderer) Clear(c colors.Color) { r.dev.Clear(c) }

// DrawFrame activates the program, pushes the color for time t if the
// program reads it, and draws the triangle.
func (r *TriangleRenderer) DrawFrame(t float64) {
	r.program.Use()
	r.program.SetVec4(ColorUniform, PulseColor(t))
	r.vertices.Bind()
	r.vertices.Draw()
}

func (r *TriangleRenderer) Shutdown() {
	r.vertices.Delete()
	r.program.Delete()
}

// PulseColor oscillates green and blue with sin(t); red is their sum.
func PulseColor(t float64) colors.Color {
	s := math.Sin(t)
	g := float32(s/2 + 0.5)
	b := float32(s/6 + 0.6)
	return colors.Color{g + b, g, b, 1}
}

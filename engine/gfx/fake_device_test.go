package gfx

import (
	"fmt"
	"strings"

	"github.com/hubastard/learngl/engine/colors"
	"github.com/hubastard/learngl/engine/core"
)

// fakeDevice records calls and "compiles" a source when its braces balance.
type fakeDevice struct {
	next     uint32
	calls    []string
	stages   map[uint32]core.Stage
	compiled map[uint32]bool
	shaders  map[uint32]bool // live shader objects
	programs map[uint32]bool // live program objects
	uniforms map[string]int32
	failLink bool

	uploaded []float32
	attribs  []attribCall
	enabled  []uint32
	uniform  map[int32][4]float32
	draws    [][2]int32
	viewport [4]int32
	cleared  []colors.Color
}

type attribCall struct {
	location   uint32
	components int32
	stride     int32
	offset     int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		stages:   map[uint32]core.Stage{},
		compiled: map[uint32]bool{},
		shaders:  map[uint32]bool{},
		programs: map[uint32]bool{},
		uniforms: map[string]int32{ColorUniform: 7},
		uniform:  map[int32][4]float32{},
	}
}

func (d *fakeDevice) id() uint32 { d.next++; return d.next }
func (d *fakeDevice) log(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) CreateShader(stage core.Stage) uint32 {
	sh := d.id()
	d.stages[sh] = stage
	d.shaders[sh] = true
	d.log("create %s", stage)
	return sh
}

func (d *fakeDevice) CompileShader(sh uint32, src string) {
	d.log("compile %s", d.stages[sh])
	d.compiled[sh] = strings.Contains(src, "void main") &&
		strings.Count(src, "{") == strings.Count(src, "}")
}

func (d *fakeDevice) ShaderCompiled(sh uint32) bool { return d.compiled[sh] }
func (d *fakeDevice) ShaderInfoLog(sh uint32) string {
	return fmt.Sprintf("0:1(1): error: %s syntax error, unexpected end of file", d.stages[sh])
}
func (d *fakeDevice) DeleteShader(sh uint32) {
	d.log("delete %s", d.stages[sh])
	delete(d.shaders, sh)
}

func (d *fakeDevice) CreateProgram() uint32 {
	p := d.id()
	d.programs[p] = true
	d.log("create program")
	return p
}
func (d *fakeDevice) AttachShader(p, sh uint32) { d.log("attach %s", d.stages[sh]) }
func (d *fakeDevice) LinkProgram(p uint32)      { d.log("link") }
func (d *fakeDevice) ProgramLinked(p uint32) bool {
	return !d.failLink
}
func (d *fakeDevice) ProgramInfoLog(p uint32) string {
	return "error: vertex output vColor not consumed"
}
func (d *fakeDevice) DeleteProgram(p uint32) {
	d.log("delete program")
	delete(d.programs, p)
}
func (d *fakeDevice) UseProgram(p uint32) { d.log("use %d", p) }
func (d *fakeDevice) UniformLocation(p uint32, name string) int32 {
	if loc, ok := d.uniforms[name]; ok {
		return loc
	}
	return -1
}
func (d *fakeDevice) Uniform4f(loc int32, v [4]float32) {
	d.log("uniform %d", loc)
	d.uniform[loc] = v
}

func (d *fakeDevice) GenVertexArray() uint32       { d.log("gen vao"); return d.id() }
func (d *fakeDevice) BindVertexArray(vao uint32)   { d.log("bind vao %d", vao) }
func (d *fakeDevice) DeleteVertexArray(vao uint32) { d.log("delete vao") }
func (d *fakeDevice) GenBuffer() uint32            { d.log("gen vbo"); return d.id() }
func (d *fakeDevice) BindArrayBuffer(vbo uint32)   { d.log("bind vbo %d", vbo) }
func (d *fakeDevice) ArrayBufferStaticData(data []float32) {
	d.log("buffer %d", len(data)*4)
	d.uploaded = append([]float32(nil), data...)
}
func (d *fakeDevice) DeleteBuffer(vbo uint32) { d.log("delete vbo") }
func (d *fakeDevice) VertexAttribPointer(loc uint32, components, stride int32, offset int) {
	d.log("attrib %d", loc)
	d.attribs = append(d.attribs, attribCall{loc, components, stride, offset})
}
func (d *fakeDevice) EnableVertexAttribArray(loc uint32) {
	d.log("enable %d", loc)
	d.enabled = append(d.enabled, loc)
}

func (d *fakeDevice) Viewport(x, y, w, h int32) { d.viewport = [4]int32{x, y, w, h} }
func (d *fakeDevice) Clear(c colors.Color) {
	d.log("clear")
	d.cleared = append(d.cleared, c)
}
func (d *fakeDevice) DrawTriangles(first, count int32) {
	d.log("draw %d", count)
	d.draws = append(d.draws, [2]int32{first, count})
}

func (d *fakeDevice) countCalls(prefix string) int {
	n := 0
	for _, c := range d.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

const (
	validVertex = `#version 330 core
layout (location = 0) in vec3 aPos;
void main() {
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`
	validFragment = `#version 330 core
out vec4 FragColor;
uniform vec4 ourColor;
void main() {
    FragColor = ourColor;
}
`
	// closing brace missing
	brokenFragment = `#version 330 core
out vec4 FragColor;
void main() {
    FragColor = vec4(1.0, 0.5, 0.2, 1.0);
`
	brokenVertex = `#version 330 core
layout (location = 0) in vec3 aPos;
void main() {
    gl_Position = vec4(aPos, 1.0);
`
)

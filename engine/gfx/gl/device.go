package glbackend

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/learngl/engine/colors"
	"github.com/hubastard/learngl/engine/core"
)

// Device implements gfx.Device on the current OpenGL 3.3 core context.
// The context must be current on the calling thread (see platform.NewGLFWWindow).
type Device struct{}

func NewDevice() *Device { return &Device{} }

func (Device) CreateShader(stage core.Stage) uint32 {
	switch stage {
	case core.StageVertex:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case core.StageFragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return 0
	}
}

func (Device) CompileShader(sh uint32, src string) {
	csrc, free := gl.Strs(cstr(src))
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)
}

func (Device) ShaderCompiled(sh uint32) bool {
	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (Device) ShaderInfoLog(sh uint32) string {
	var logLen int32
	gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Device) DeleteShader(sh uint32) { gl.DeleteShader(sh) }

func (Device) CreateProgram() uint32             { return gl.CreateProgram() }
func (Device) AttachShader(prog, sh uint32)      { gl.AttachShader(prog, sh) }
func (Device) LinkProgram(prog uint32)           { gl.LinkProgram(prog) }
func (Device) DeleteProgram(prog uint32)         { gl.DeleteProgram(prog) }
func (Device) UseProgram(prog uint32)            { gl.UseProgram(prog) }
func (Device) Uniform4f(loc int32, v [4]float32) { gl.Uniform4f(loc, v[0], v[1], v[2], v[3]) }

func (Device) ProgramLinked(prog uint32) bool {
	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (Device) ProgramInfoLog(prog uint32) string {
	var logLen int32
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Device) UniformLocation(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(cstr(name)))
}

func (Device) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (Device) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (Device) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

func (Device) GenBuffer() uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return vbo
}

func (Device) BindArrayBuffer(vbo uint32) { gl.BindBuffer(gl.ARRAY_BUFFER, vbo) }

func (Device) ArrayBufferStaticData(data []float32) {
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (Device) DeleteBuffer(vbo uint32) { gl.DeleteBuffers(1, &vbo) }

func (Device) VertexAttribPointer(loc uint32, components, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(loc, components, gl.FLOAT, false, stride, uintptr(offset))
}

func (Device) EnableVertexAttribArray(loc uint32) { gl.EnableVertexAttribArray(loc) }

func (Device) Viewport(x, y, w, h int32) { gl.Viewport(x, y, w, h) }

func (Device) Clear(c colors.Color) {
	gl.ClearColor(c.RGBA())
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (Device) DrawTriangles(first, count int32) { gl.DrawArrays(gl.TRIANGLES, first, count) }

// cstr null-terminates s for gl.Str/gl.Strs.
func cstr(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// Package gfx builds the shader program and vertex state for the triangle
// and draws it each frame. All GPU calls go through Device so the same code
// runs against OpenGL (package glbackend) or a recording fake in tests.
package gfx

import (
	"github.com/hubastard/learngl/engine/colors"
	"github.com/hubastard/learngl/engine/core"
)

// Device is the slice of the graphics API this package uses.
// Handles are plain object names as the API hands them out; 0 is never valid.
type Device interface {
	// shaders
	CreateShader(stage core.Stage) uint32
	CompileShader(shader uint32, src string)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	// programs
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	UniformLocation(program uint32, name string) int32
	Uniform4f(location int32, v [4]float32)

	// vertex state
	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	GenBuffer() uint32
	BindArrayBuffer(vbo uint32)
	ArrayBufferStaticData(data []float32)
	DeleteBuffer(vbo uint32)
	VertexAttribPointer(location uint32, components, stride int32, offset int)
	EnableVertexAttribArray(location uint32)

	// framebuffer
	Viewport(x, y, w, h int32)
	Clear(c colors.Color)
	DrawTriangles(first, count int32)
}

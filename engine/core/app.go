package core

import "github.com/hubastard/learngl/engine/colors"

// Window abstraction. The platform window is the sole owner of the native
// handle; everything else goes through these calls.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	SetShouldClose(v bool)
	KeyPressed(k Key) bool
	FramebufferSize() (int, int)
	Time() float64 // seconds since the window was created
	SetEventCallback(cb func(Event))
	Destroy()
}

// Renderer abstraction.
type Renderer interface {
	Resize(w, h int)
	Clear(c colors.Color)
	DrawFrame(t float64) // activate program, update uniforms, draw the triangle
	Shutdown()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	GLMajor    int
	GLMinor    int
	VSync      bool
	ClearColor colors.Color
}

// DefaultConfig returns the fixed startup configuration: a 700x700
// "Learn OpenGL" window with a 3.3 core context.
func DefaultConfig() Config {
	return Config{
		Title:      "Learn OpenGL",
		Width:      700,
		Height:     700,
		GLMajor:    3,
		GLMinor:    3,
		VSync:      true,
		ClearColor: colors.Teal,
	}
}

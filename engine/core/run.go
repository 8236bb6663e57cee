package core

import (
	"log"
	"runtime"
)

// Run wires the platform window + renderer and executes the main loop.
// Errors from either constructor are returned unmodified.
func Run(cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	// window owns context and GLFW; destroyed last
	defer win.Destroy()

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	win.SetEventCallback(func(ev Event) {
		switch e := ev.(type) {
		case EventResize:
			if e.W < 1 || e.H < 1 {
				return
			}
			rend.Resize(e.W, e.H)
		case EventCloseRequested:
			log.Println("Close requested")
		}
	})

	frames := 0
	for !win.ShouldClose() {
		ProcessInput(win)
		if win.ShouldClose() {
			// closing: no draw after the transition
			continue
		}

		rend.Clear(cfg.ClearColor)
		rend.DrawFrame(win.Time())

		win.SwapBuffers()
		win.PollEvents()
		frames++
	}

	log.Printf("Engine exit after %d frames", frames)
	return nil
}

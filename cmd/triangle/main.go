package main

import (
	"log"
	"os"
	"runtime"

	"github.com/hubastard/learngl/engine/assets"
	"github.com/hubastard/learngl/engine/core"
	"github.com/hubastard/learngl/engine/gfx"
	glbackend "github.com/hubastard/learngl/engine/gfx/gl"
	"github.com/hubastard/learngl/engine/platform"
)

func init() {
	runtime.LockOSThread()
}

func run() error {
	vs, fs, err := assets.LoadProgramSources(assets.VertexShaderPath, assets.FragmentShaderPath)
	if err != nil {
		return err
	}

	newWindow := func(cfg core.Config) (core.Window, error) {
		w, err := platform.NewGLFWWindow(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
	newRenderer := func(_ core.Window, _ core.Config) (core.Renderer, error) {
		r, err := gfx.NewTriangleRenderer(glbackend.NewDevice(), vs, fs, gfx.TriangleMesh())
		if err != nil {
			return nil, err
		}
		return r, nil
	}

	return core.Run(core.DefaultConfig(), newWindow, newRenderer)
}

func main() {
	if err := run(); err != nil {
		log.Printf("%v (%s error)", err, core.KindOf(err))
		os.Exit(1)
	}
}

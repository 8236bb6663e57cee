package gfx

import "github.com/hubastard/learngl/engine/core"

// Program is a linked vertex+fragment program.
type Program struct {
	dev Device
	id  uint32
}

// BuildProgram compiles both stages, links them and releases the stage
// objects. A vertex failure returns before the fragment stage is touched.
func BuildProgram(dev Device, vertexSrc, fragmentSrc string) (*Program, error) {
	vs, err := compileStage(dev, vertexSrc, core.StageVertex)
	if err != nil {
		return nil, err
	}
	fs, err := compileStage(dev, fragmentSrc, core.StageFragment)
	if err != nil {
		dev.DeleteShader(vs)
		return nil, err
	}

	prog := dev.CreateProgram()
	dev.AttachShader(prog, vs)
	dev.AttachShader(prog, fs)
	dev.LinkProgram(prog)

	linked := dev.ProgramLinked(prog)
	dev.DeleteShader(vs)
	dev.DeleteShader(fs)

	if !linked {
		log := dev.ProgramInfoLog(prog)
		dev.DeleteProgram(prog)
		return nil, &core.Error{Kind: core.KindLink, Log: log}
	}
	return &Program{dev: dev, id: prog}, nil
}

func compileStage(dev Device, src string, stage core.Stage) (uint32, error) {
	sh := dev.CreateShader(stage)
	dev.CompileShader(sh, src)
	if !dev.ShaderCompiled(sh) {
		log := dev.ShaderInfoLog(sh)
		dev.DeleteShader(sh)
		return 0, &core.Error{Kind: core.KindCompile, Stage: stage, Log: log}
	}
	return sh, nil
}

// ID returns the device handle.
func (p *Program) ID() uint32 { return p.id }

func (p *Program) Use() { p.dev.UseProgram(p.id) }

// UniformLocation returns -1 when the program has no active uniform by that name.
func (p *Program) UniformLocation(name string) int32 {
	return p.dev.UniformLocation(p.id, name)
}

// SetVec4 sets a vec4 uniform on the program, which must be in use.
// Unknown names are ignored.
func (p *Program) SetVec4(name string, v [4]float32) bool {
	loc := p.UniformLocation(name)
	if loc < 0 {
		return false
	}
	p.dev.Uniform4f(loc, v)
	return true
}

func (p *Program) Delete() {
	if p.id != 0 {
		p.dev.DeleteProgram(p.id)
		p.id = 0
	}
}

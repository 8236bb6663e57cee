package assets

import (
	"os"
	"path/filepath"

	"github.com/hubastard/learngl/engine/core"
)

// Fixed shader locations, relative to the working directory.
var (
	VertexShaderPath   = filepath.Join("assets", "shaders", "shader.vs")
	FragmentShaderPath = filepath.Join("assets", "shaders", "shader.fs")
)

// LoadShader reads a GLSL source file. Read failures come back as a
// core.Error of kind KindIO wrapping the os error.
func LoadShader(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &core.Error{Kind: core.KindIO, Path: path, Err: err}
	}
	return string(b), nil
}

// LoadProgramSources reads the vertex and fragment sources.
func LoadProgramSources(vertexPath, fragmentPath string) (vs, fs string, err error) {
	if vs, err = LoadShader(vertexPath); err != nil {
		return "", "", err
	}
	if fs, err = LoadShader(fragmentPath); err != nil {
		return "", "", err
	}
	return vs, fs, nil
}

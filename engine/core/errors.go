package core

import (
	"errors"
	"fmt"
)

// ErrorKind tags the failure classes that abort a run.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindContext           // window or GL context could not be created
	KindCompile           // a shader stage failed to compile
	KindLink              // the program failed to link
	KindIO                // a shader source could not be read
)

func (k ErrorKind) String() string {
	switch k {
	case KindContext:
		return "context"
	case KindCompile:
		return "compile"
	case KindLink:
		return "link"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Stage is the kind of a shader stage.
type Stage int

const (
	StageVertex Stage = iota + 1
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Error is returned by every component for unrecoverable failures.
// Log holds the raw compiler or linker output, if any.
type Error struct {
	Kind  ErrorKind
	Stage Stage
	Path  string
	Log   string
	Err   error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindContext:
		msg = "window creation failed"
	case KindCompile:
		msg = fmt.Sprintf("%s shader compilation failed", e.Stage)
	case KindLink:
		msg = "program link failed"
	case KindIO:
		msg = fmt.Sprintf("read shader %q", e.Path)
	default:
		msg = "engine error"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Log != "" {
		msg += ":\n" + e.Log
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

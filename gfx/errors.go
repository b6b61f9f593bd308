package gfx

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"go.uber.org/zap"
)

var (
	ErrInvalidShaderType = errors.New("invalid shader type")
	ErrUniformNotFound   = errors.New("cannot find uniform location")
	ErrEmptyMesh         = errors.New("mesh has no geometry")
	ErrIndexOutOfRange   = errors.New("mesh index out of range")
)

// Stack errors were dropped from the 3.3 core headers but drivers still
// report them.
const (
	errStackOverflow  = 0x0503
	errStackUnderflow = 0x0504
)

// getError reads the next queued GL error.
var getError = gl.GetError

// checkLogger receives GL errors drained after each gfx call.
// A nil logger disables the checks.
var checkLogger *zap.Logger

// EnableErrorChecks makes every gfx operation drain glGetError after its GL
// calls, logging each error with the location of the call.
func EnableErrorChecks(logger *zap.Logger) {
	checkLogger = logger
}

// ErrorName returns the GL name of an error code returned by glGetError.
func ErrorName(code uint32) string {
	switch code {
	case gl.NO_ERROR:
		return "NO_ERROR"
	case gl.INVALID_ENUM:
		return "INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "INVALID_OPERATION"
	case errStackOverflow:
		return "STACK_OVERFLOW"
	case errStackUnderflow:
		return "STACK_UNDERFLOW"
	case gl.OUT_OF_MEMORY:
		return "OUT_OF_MEMORY"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "INVALID_FRAMEBUFFER_OPERATION"
	}
	return fmt.Sprintf("UNKNOWN_ERROR(0x%04x)", code)
}

// CheckError drains the GL error queue, logging every pending error, and
// returns the last error code seen or gl.NO_ERROR.
func CheckError(logger *zap.Logger) uint32 {
	return drainErrors(logger, 2)
}

func checkError() {
	if checkLogger == nil {
		return
	}
	drainErrors(checkLogger, 3)
}

func drainErrors(logger *zap.Logger, skip int) uint32 {
	location := "unknown file"
	if _, file, line, ok := runtime.Caller(skip); ok {
		location = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}

	last := uint32(gl.NO_ERROR)
	for {
		code := getError()
		if code == gl.NO_ERROR {
			return last
		}
		last = code
		logger.Error("gl error",
			zap.String("error", ErrorName(code)),
			zap.String("location", location),
		)
	}
}

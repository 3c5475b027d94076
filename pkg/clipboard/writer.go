package clipboard

import (
	"context"
	"os/exec"

	"cwdclip/pkg/errors"
	"cwdclip/pkg/logger"
)

// EchoProgram emits the text that is piped into the backend.
const EchoProgram = "echo"

// Writer delivers text to the clipboard through a selected backend.
type Writer struct {
	backend Backend
	program string
}

// NewWriter returns a Writer that runs program with the fixed arguments of
// backend. An empty program falls back to the backend's name.
func NewWriter(backend Backend, program string) *Writer {
	if program == "" {
		program = backend.Program()
	}
	return &Writer{backend: backend, program: program}
}

func (w *Writer) Backend() Backend {
	return w.backend
}

// Write runs `echo -n text | backend args...` and blocks until the backend
// exits. Backend output is discarded.
func (w *Writer) Write(ctx context.Context, text string) error {
	echo := exec.CommandContext(ctx, EchoProgram, "-n", text)
	pipe, err := echo.StdoutPipe()
	if err != nil {
		return errors.SubprocessError(EchoProgram, "open output pipe of", err)
	}
	if err := echo.Start(); err != nil {
		return errors.SubprocessError(EchoProgram, "start", err)
	}
	logger.Debug().Int("pid", echo.Process.Pid).Msg("started echo")

	backend := exec.CommandContext(ctx, w.program, w.backend.Args()...)
	// Stdout and Stderr must stay on the null device: xclip forks a child
	// that holds them open while it owns the selection.
	backend.Stdin = pipe
	if err := backend.Start(); err != nil {
		pipe.Close()
		_ = echo.Wait()
		return errors.SubprocessError(w.backend.Program(), "start", err)
	}
	// The backend holds its own copy of the read end. Closing ours lets echo
	// see a broken pipe if the backend exits without reading.
	pipe.Close()
	logger.Debug().Str("backend", w.backend.String()).Int("pid", backend.Process.Pid).Msg("started clipboard backend")

	if err := backend.Wait(); err != nil {
		_ = echo.Wait()
		return errors.SubprocessError(w.backend.Program(), "wait for", err)
	}
	if err := echo.Wait(); err != nil {
		return errors.SubprocessError(EchoProgram, "wait for", err)
	}

	logger.Debug().Str("backend", w.backend.String()).Int("bytes", len(text)).Msg("copied to clipboard")
	return nil
}

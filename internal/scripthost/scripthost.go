// Package scripthost executes user-supplied action code for the clip
// engine. Scripts are an explicitly granted capability: the engine only
// sees the ScriptHost contract, and the host wired in at composition
// time decides whether and how code runs.
package scripthost

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"

	"clipdeck/internal/engine"
)

// maxCapturedOutput bounds how much script output is kept for error messages.
const maxCapturedOutput = 4096

// ShellHost runs action code as a script in the user's shell, inside a
// pty so the script behaves as it would in a terminal. There is no
// sandbox and no timeout: a script that never exits stalls its clip run.
type ShellHost struct {
	shell string
	path  string // login shell PATH, resolved once
}

// NewShellHost creates a host running scripts with the given shell,
// falling back to $SHELL and then /bin/sh.
func NewShellHost(shell string) *ShellHost {
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}
	return &ShellHost{shell: shell, path: resolveShellPath(shell)}
}

// Run executes source and waits for it to exit. The clip and its
// resolved children are handed to the script as JSON in the environment
// (CLIPDECK_CLIP, CLIPDECK_CHILDREN). A non-zero exit is an error
// carrying the tail of the script's output.
func (h *ShellHost) Run(_ context.Context, source string, sc engine.ScriptContext) error {
	clipJSON, err := json.Marshal(sc.Clip)
	if err != nil {
		return fmt.Errorf("encode clip context: %w", err)
	}
	childrenJSON, err := json.Marshal(sc.Children)
	if err != nil {
		return fmt.Errorf("encode children context: %w", err)
	}

	cmd := exec.Command(h.shell, "-c", source)
	cmd.Env = append(os.Environ(),
		"CLIPDECK_CLIP="+string(clipJSON),
		"CLIPDECK_CHILDREN="+string(childrenJSON),
	)
	if h.path != "" {
		cmd.Env = append(cmd.Env, "PATH="+h.path)
	}

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("start script: %w", err)
	}
	defer ptmx.Close()

	output := drainOutput(ptmx)

	if err := cmd.Wait(); err != nil {
		if tail := strings.TrimSpace(output); tail != "" {
			return fmt.Errorf("%v: %s", err, tail)
		}
		return err
	}
	return nil
}

// drainOutput reads the pty until the script closes it, keeping at most
// the last maxCapturedOutput bytes.
func drainOutput(ptmx *os.File) string {
	var buf []byte
	chunk := make([]byte, 1024)
	for {
		n, err := ptmx.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
			if len(buf) > maxCapturedOutput {
				buf = buf[len(buf)-maxCapturedOutput:]
			}
		}
		if err != nil {
			// EIO on Linux is the normal pty EOF signal, same as io.EOF.
			return string(buf)
		}
	}
}

// resolveShellPath captures the user's full login shell PATH. GUI apps
// inherit a minimal PATH, so child scripts would otherwise miss tools
// installed via shell profiles.
func resolveShellPath(shell string) string {
	out, err := exec.Command(shell, "-lc", "echo $PATH").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// Disabled is the "unsupported" end of the ScriptHost capability range:
// every run fails with a stable message.
type Disabled struct{}

func (Disabled) Run(_ context.Context, _ string, _ engine.ScriptContext) error {
	return errors.New("script execution is disabled")
}

package projutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
)

// Result is the captured standard output and exit code of a command.
// ExitCode is -1 when the command could not be started.
type Result struct {
	Output   string
	ExitCode int
}

// ExecCommand runs cmd through the platform shell and captures its standard
// output. A non-zero exit status is reported in Result.ExitCode, not as an
// error; the error is only set when the command could not run at all or ctx
// ended first.
func ExecCommand(ctx context.Context, cmd string) (Result, error) {
	shell, flag := "sh", "-c"
	if runtime.GOOS == "windows" {
		shell, flag = "cmd", "/C"
	}

	var stdout bytes.Buffer
	c := exec.CommandContext(ctx, shell, flag, cmd)
	c.Stdout = &stdout

	err := c.Run()
	res := Result{Output: stdout.String(), ExitCode: c.ProcessState.ExitCode()}
	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		return res, nil
	}
	return res, fmt.Errorf("running %q: %w", cmd, err)
}

package main

import (
	"os/exec"

	"github.com/pkg/errors"
)

// exitCode maps a pipeline error to the process exit status,
// propagating the exit code of a failed external tool.
func exitCode(err error) int {
	if ee, ok := errors.Cause(err).(*exec.ExitError); ok {
		if code := ee.ExitCode(); code > 0 {
			return code
		}
	}
	return 1
}

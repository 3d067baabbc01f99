package nanopipe

import (
	"bytes"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// A helper to run an external command,
// keeping its stderr for the error message.
func runCmd(cmd *exec.Cmd) error {
	stderr := new(bytes.Buffer)
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		name := filepath.Base(cmd.Path)
		if stderr.Len() > 0 {
			return errors.Wrapf(err, "%s: %s", name, strings.TrimSpace(stderr.String()))
		}
		return errors.Wrap(err, name)
	}
	return nil
}

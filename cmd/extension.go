package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// EnvDataDir carries the -data-dir global flag to extensions.
const EnvDataDir = "NEXO_DATA_DIR"

// RunExtension attempts to find and execute an external nexo-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "nexo-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables so the extension opens the
	// same store.
	cmd.Env = os.Environ()
	if *dataDir != "" {
		cmd.Env = append(cmd.Env, EnvDataDir+"="+*dataDir)
	}

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}

	return true, 0
}

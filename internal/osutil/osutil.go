package osutil

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/kballard/go-shellquote"
)

const (
	Windows = "windows"
	Darwin  = "darwin"
)

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
)

const (
	DirPermission  = 0o755
	FilePermission = 0o600
)

// Editor returns the user's preferred text editor.
func Editor() string {
	defaultEditor := "nano"

	if runtime.GOOS == Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	return firstNonEmpty(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)
}

// Command parses a shell-style command line into an exec.Cmd. It returns nil
// when the line is empty.
func Command(line string) (*exec.Cmd, error) {
	parts, err := shellquote.Split(line)
	if err != nil {
		return nil, errParseCommand.Wrap(err)
	}

	if len(parts) == 0 {
		return nil, nil
	}

	return exec.Command(parts[0], parts[1:]...), nil
}

// firstNonEmpty returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// Package browser opens URLs in the system's default web browser.
//
// Launchers differ per platform, and on Linux no single opener is guaranteed
// to exist, so a fixed list of candidates is tried in order. Inside WSL the
// Linux openers are usually absent and the Windows host browser is reached
// through powershell.exe instead.
package browser

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ErrNoLauncher is returned by Open when every candidate command failed to
// spawn.
var ErrNoLauncher = errors.New("could not find a suitable program to open the URL")

const osReleasePath = "/proc/sys/kernel/osrelease"

// Command is a single launcher invocation to attempt.
type Command struct {
	Name string
	Args []string
}

// Candidates returns the launcher invocations for url on the given platform,
// in the order they should be tried. It is a pure function of its inputs so
// every platform's table can be tested on any host.
func Candidates(goos string, wsl bool, url string) []Command {
	switch goos {
	case "windows":
		return []Command{{Name: "cmd", Args: []string{"/C", "start", "", url}}}
	case "darwin":
		return []Command{{Name: "open", Args: []string{url}}}
	case "linux":
		cmds := []Command{
			{Name: "xdg-open", Args: []string{url}},
			{Name: "gnome-open", Args: []string{url}},
			{Name: "kde-open", Args: []string{url}},
			{Name: "wslview", Args: []string{url}},
		}
		if wsl {
			cmds = append(cmds, Command{
				Name: "powershell.exe",
				Args: []string{"-Command", fmt.Sprintf("Start-Process '%s'", url)},
			})
		}
		return cmds
	default:
		// Other Unix systems (BSDs and friends).
		openers := []string{"xdg-open", "open", "x-www-browser", "firefox", "chromium-browser", "google-chrome"}
		cmds := make([]Command, 0, len(openers))
		for _, name := range openers {
			cmds = append(cmds, Command{Name: name, Args: []string{url}})
		}
		return cmds
	}
}

// Open launches the default browser on url. The first candidate that spawns
// wins; the spawned process is deliberately not awaited.
func Open(url string) error {
	for _, candidate := range Candidates(runtime.GOOS, isWSL(osReleasePath), url) {
		// #nosec G204 - candidate commands come from the fixed tables above
		if err := exec.Command(candidate.Name, candidate.Args...).Start(); err == nil {
			return nil
		}
	}

	return ErrNoLauncher
}

// isWSL reports whether the kernel release read from path identifies a WSL
// environment.
func isWSL(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	release := strings.ToLower(string(data))
	return strings.Contains(release, "microsoft") || strings.Contains(release, "wsl")
}

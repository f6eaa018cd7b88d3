//go:build linux

package browser

import "os/exec"

// openCommand opens a URL in the default browser on Linux
func openCommand(url string) *exec.Cmd {
	return exec.Command("xdg-open", url)
}

//go:build !darwin && !linux && !windows

package browser

import "os/exec"

func openCommand(url string) *exec.Cmd {
	return exec.Command("xdg-open", url)
}

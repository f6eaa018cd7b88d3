package git

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const regOutput = "\r\nHKEY_LOCAL_MACHINE\\SOFTWARE\\GitForWindows\r\n" +
	"    CurrentVersion    REG_SZ    2.44.0\r\n" +
	"    InstallPath    REG_SZ    C:\\Program Files\\Git\r\n" +
	"    LibexecPath    REG_SZ    C:\\Program Files\\Git\\mingw64\\libexec\\git-core\r\n\r\n"

// recordingQuery answers reg queries from a table keyed by "key view-arg".
type recordingQuery struct {
	answers map[string]string
	calls   []string
}

func (q *recordingQuery) run(ctx context.Context, name string, args ...string) (string, error) {
	call := strings.Join(append([]string{name}, args...), " ")
	q.calls = append(q.calls, call)
	if out, ok := q.answers[call]; ok {
		return out, nil
	}
	return "", errors.New("ERROR: The system was unable to find the specified registry key or value.")
}

func TestLocator_ConfiguredPath(t *testing.T) {
	q := &recordingQuery{}
	l := NewLocator("  /opt/git/bin/git ", nil, WithGOOS("windows"), WithQueryFunc(q.run))

	assert.Equal(t, "/opt/git/bin/git", l.Locate(context.Background()))
	assert.Empty(t, q.calls, "configured path must not probe the registry")
}

func TestLocator_NonWindows(t *testing.T) {
	for _, goos := range []string{"linux", "darwin", "freebsd"} {
		t.Run(goos, func(t *testing.T) {
			q := &recordingQuery{}
			l := NewLocator("", nil, WithGOOS(goos), WithQueryFunc(q.run))
			assert.Equal(t, "git", l.Locate(context.Background()))
			assert.Empty(t, q.calls)
		})
	}
}

func TestLocator_WindowsProbeOrder(t *testing.T) {
	q := &recordingQuery{}
	l := NewLocator("", nil, WithGOOS("windows"), WithQueryFunc(q.run))

	assert.Equal(t, "git", l.Locate(context.Background()), "falls back to PATH when every probe fails")
	assert.Equal(t, []string{
		`reg query HKCU\SOFTWARE\GitForWindows`,
		`reg query HKLM\SOFTWARE\GitForWindows`,
		`reg query HKCU\SOFTWARE\GitForWindows /reg:64`,
		`reg query HKLM\SOFTWARE\GitForWindows /reg:64`,
		`reg query HKCU\SOFTWARE\GitForWindows /reg:32`,
		`reg query HKLM\SOFTWARE\GitForWindows /reg:32`,
	}, q.calls)
}

func TestLocator_WindowsStopsAtFirstSuccess(t *testing.T) {
	q := &recordingQuery{answers: map[string]string{
		`reg query HKLM\SOFTWARE\GitForWindows`:         regOutput,
		`reg query HKCU\SOFTWARE\GitForWindows /reg:64`: strings.ReplaceAll(regOutput, `C:\Program Files\Git`, `D:\Git`),
	}}
	l := NewLocator("", nil, WithGOOS("windows"), WithQueryFunc(q.run))

	assert.Equal(t, `C:\Program Files\Git\bin\git`, l.Locate(context.Background()))
	assert.Len(t, q.calls, 2)
}

func TestLocator_UnparsableOutputTriesNext(t *testing.T) {
	q := &recordingQuery{answers: map[string]string{
		`reg query HKCU\SOFTWARE\GitForWindows`: "HKEY_CURRENT_USER\\SOFTWARE\\GitForWindows\r\n    CurrentVersion    REG_SZ    2.44.0\r\n",
		`reg query HKLM\SOFTWARE\GitForWindows`: regOutput,
	}}
	l := NewLocator("", nil, WithGOOS("windows"), WithQueryFunc(q.run))

	assert.Equal(t, `C:\Program Files\Git\bin\git`, l.Locate(context.Background()))
	assert.Len(t, q.calls, 2)
}

func TestParseInstallPath(t *testing.T) {
	path, err := ParseInstallPath(regOutput)
	require.NoError(t, err)
	assert.Equal(t, `C:\Program Files\Git`, path)

	path, err = ParseInstallPath("    installpath  reg_sz  E:\\tools\\git\n")
	require.NoError(t, err)
	assert.Equal(t, `E:\tools\git`, path)

	_, err = ParseInstallPath("    InstallPath    REG_SZ    C:\\Git")
	assert.Error(t, err, "value must be terminated by a newline")

	_, err = ParseInstallPath("")
	assert.Error(t, err)
}

func TestRegistryView_Arg(t *testing.T) {
	assert.Equal(t, "", ViewDefault.Arg())
	assert.Equal(t, "/reg:64", View64.Arg())
	assert.Equal(t, "/reg:32", View32.Arg())
}

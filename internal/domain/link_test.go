package domain

import (
	"errors"
	"strings"
	"testing"
)

const testRev = "deadbeefdeadbeefdeadbeefdeadbeefdeadbeef"

func TestFormatLink(t *testing.T) {
	uri := RepositoryURI("github.com/acme/widget")
	base := "https://sourcegraph.com/github.com/acme/widget@" + testRev

	tests := []struct {
		name   string
		target LinkTarget
		want   string
	}{
		{"repo root", RepoRoot(), base},
		{"directory", Directory("pkg/x"), base + "/-/tree/pkg/x"},
		{"file", File("src/a.ts"), base + "/-/blob/src/a.ts"},
		{"file line", FileLine("src/a.ts", 42), base + "/-/blob/src/a.ts#L42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatLink(DefaultBaseURL, uri, testRev, tt.target)
			if got != tt.want {
				t.Errorf("FormatLink() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatLink_BaseURL(t *testing.T) {
	got := FormatLink("https://sg.example.com/", "github.com/a/b", "abc", File("x/y.go"))
	if got != "https://sg.example.com/github.com/a/b@abc/-/blob/x/y.go" {
		t.Errorf("FormatLink() = %q", got)
	}

	got = FormatLink("", "github.com/a/b", "abc", RepoRoot())
	if got != "https://sourcegraph.com/github.com/a/b@abc" {
		t.Errorf("FormatLink() with empty base = %q", got)
	}
}

func TestPushUpstreamMessage(t *testing.T) {
	msg := PushUpstreamMessage(testRev)
	if msg != "Push revision deadbe upstream first!" {
		t.Errorf("PushUpstreamMessage() = %q", msg)
	}
	if !strings.Contains(PushUpstreamMessage("abc"), "abc") {
		t.Error("short revisions should be kept whole")
	}
}

func TestLinkTarget_Validate(t *testing.T) {
	valid := []LinkTarget{RepoRoot(), Directory("a"), File("a/b.go"), FileLine("a/b.go", 1)}
	for _, target := range valid {
		if err := target.Validate(); err != nil {
			t.Errorf("%v.Validate() error = %v", target, err)
		}
	}

	invalid := []LinkTarget{
		Directory(""),
		File(""),
		FileLine("", 3),
		FileLine("a.go", 0),
		{Kind: "bogus"},
	}
	for _, target := range invalid {
		err := target.Validate()
		if !errors.Is(err, ErrInvocationContext) {
			t.Errorf("%+v.Validate() = %v, want ErrInvocationContext", target, err)
		}
	}
}

package browser

import (
	"errors"
	"testing"
)

func stubLaunch(t *testing.T, err error) *[]string {
	t.Helper()
	var calls []string
	orig := launch
	launch = func(name string, args ...string) error {
		calls = append(calls, name)
		return err
	}
	t.Cleanup(func() { launch = orig })
	return &calls
}

func TestOpenRejectsNonHTTP(t *testing.T) {
	calls := stubLaunch(t, nil)

	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://example.com", false},
		{"http://example.com", false},
		{"file:///etc/passwd", true},
		{"javascript:alert(1)", true},
		{"ftp://example.com", true},
		{"", true},
	}
	for _, tt := range tests {
		err := Open(tt.url)
		if tt.wantErr && err == nil {
			t.Errorf("Open(%q): expected error, got nil", tt.url)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("Open(%q): unexpected error: %v", tt.url, err)
		}
	}
	if len(*calls) != 2 {
		t.Errorf("expected launcher to run for the 2 valid URLs, ran %d times", len(*calls))
	}
}

func TestOpenLaunchFailure(t *testing.T) {
	stubLaunch(t, errors.New("no display"))
	if err := Open("https://example.com"); err == nil {
		t.Error("expected launch error to surface")
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		goos, want string
	}{
		{"darwin", "open"},
		{"linux", "xdg-open"},
		{"windows", "rundll32"},
		{"freebsd", "xdg-open"},
	}
	for _, tt := range tests {
		name, args := command(tt.goos, "https://example.com")
		if name != tt.want {
			t.Errorf("command(%q) = %q, want %q", tt.goos, name, tt.want)
		}
		if args[len(args)-1] != "https://example.com" {
			t.Errorf("command(%q): URL must be the last argument, got %v", tt.goos, args)
		}
	}
}

package domain

import "testing"

func TestTrimRootPath(t *testing.T) {
	tests := []struct {
		name string
		root string
		path string
		want string
	}{
		{"file under root", "/home/u/proj", "/home/u/proj/src/a.ts", "src/a.ts"},
		{"root with trailing slash", "/home/u/proj/", "/home/u/proj/src/a.ts", "src/a.ts"},
		{"directory under root", "/home/u/proj", "/home/u/proj/pkg/x", "pkg/x"},
		{"root itself", "/home/u/proj", "/home/u/proj", ""},
		{"outside root", "/home/u/proj", "/etc/hosts", "/etc/hosts"},
		{"sibling sharing prefix", "/home/u/proj", "/home/u/proj2/a.ts", "/home/u/proj2/a.ts"},
		{"empty root", "", "/home/u/proj/a.ts", "/home/u/proj/a.ts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrimRootPath(tt.root, tt.path)
			if got != tt.want {
				t.Errorf("TrimRootPath(%q, %q) = %q, want %q", tt.root, tt.path, got, tt.want)
			}
		})
	}
}

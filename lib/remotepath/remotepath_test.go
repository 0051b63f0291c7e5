// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package remotepath

import "testing"

func TestJoin(t *testing.T) {
	tests := []struct {
		name string
		base string
		p    string
		want string
	}{
		{"relative segment", "/a", "c", "/a/c"},
		{"parent segment", "/a/b", "..", "/a"},
		{"absolute replaces base", "/a/b", "/x", "/x"},
		{"dot is a no-op", "/a/b", ".", "/a/b"},
		{"empty is a no-op", "/a/b", "", "/a/b"},
		{"parent of root stays root", "/", "..", "/"},
		{"mixed segments", "/a/b", "../c/./d", "/a/c/d"},
		{"trailing slash stripped", "/a", "b/", "/a/b"},
		{"double slashes collapsed", "/a", "b//c", "/a/b/c"},
		{"escape above root clamps", "/a", "../../..", "/"},
		{"non-absolute base rooted", "a/b", "c", "/a/b/c"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Join(test.base, test.p)
			if got != test.want {
				t.Errorf("Join(%q, %q) = %q, want %q", test.base, test.p, got, test.want)
			}
		})
	}
}

func TestIsRoot(t *testing.T) {
	if !IsRoot("/") {
		t.Error("IsRoot(\"/\") = false")
	}
	if !IsRoot("/a/..") {
		t.Error("IsRoot(\"/a/..\") = false")
	}
	if IsRoot("/a") {
		t.Error("IsRoot(\"/a\") = true")
	}
}

// Copyright 2026 The Skyvault Authors
// SPDX-License-Identifier: Apache-2.0

package remotepath

import "path"

// Join resolves p against the absolute base directory and returns a
// normalized absolute remote path. An absolute p replaces base
// entirely; a relative p (including "." and ".." segments) is resolved
// against it. The result always begins with "/" and never ends with a
// trailing slash except for the root itself.
func Join(base, p string) string {
	if path.IsAbs(p) {
		return path.Clean(p)
	}
	if !path.IsAbs(base) {
		base = "/" + base
	}
	return path.Clean(path.Join(base, p))
}

// IsRoot reports whether p names the root of the remote namespace.
func IsRoot(p string) bool {
	return path.Clean(p) == "/"
}

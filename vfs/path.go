package vfs

import "strings"

// splitPath splits a raw path string into its segments, discarding empty
// segments and bare "." components. A leading "/" carries no information
// here; absolute-vs-relative handling belongs to Normalize.
func splitPath(path string) []string {
	path = strings.TrimSpace(path)
	path = strings.TrimPrefix(path, "/")
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" && p != "." {
			parts = append(parts, p)
		}
	}
	return parts
}

// Normalize resolves raw against the current directory cwd into a normalized
// absolute segment sequence. It is pure syntactic normalization: no tree
// lookup happens and it never fails. ".." pops the accumulator, clamped at
// the root. The returned slice is always a fresh copy.
func Normalize(cwd []string, raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "." {
		return append([]string{}, cwd...)
	}

	var parts []string
	if strings.HasPrefix(raw, "/") {
		parts = splitPath(raw)
	} else {
		parts = append(append([]string{}, cwd...), splitPath(raw)...)
	}

	out := []string{}
	for _, p := range parts {
		if p == ".." {
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
			continue
		}
		out = append(out, p)
	}
	return out
}

// JoinAbs renders a normalized segment sequence as an absolute path string;
// the empty sequence renders as "/".
func JoinAbs(parts []string) string {
	return "/" + strings.Join(parts, "/")
}

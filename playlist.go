package main

import "strings"

const (
	extM3U = "#EXTM3U"
	extInf = "#EXTINF:-1,"
)

// BuildM3U renders entries as an extended M3U document. There is no
// trailing newline.
func BuildM3U(entries []LinkEntry) string {
	lines := make([]string, 0, 1+2*len(entries))
	lines = append(lines, extM3U)
	for _, e := range entries {
		lines = append(lines, extInf+e.Name, e.Href)
	}
	return strings.Join(lines, "\n")
}

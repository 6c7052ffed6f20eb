package main

import (
	"net/url"
	"path"
	"sort"
	"strings"
)

// videoExts is read-only after init.
var videoExts = map[string]struct{}{
	".mp4":  {},
	".mkv":  {},
	".m3u8": {},
	".webm": {},
	".avi":  {},
	".mov":  {},
	".flv":  {},
	".ts":   {},
	".wmv":  {},
}

// placeholder base for hrefs classified without their page URL
var classifyBase = &url.URL{Scheme: "http", Host: "example.com", Path: "/"}

// looksLikeVideo reports whether href points at a file with a known video
// extension. Relative hrefs are accepted; unparseable ones are not videos.
func looksLikeVideo(href string) bool {
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	if !u.IsAbs() {
		u = classifyBase.ResolveReference(u)
	}
	_, ok := videoExts[extOf(u.Path)]
	return ok
}

// extOf returns the lowercased extension of the last segment of p,
// dot included, or "" when the segment has no dot.
func extOf(p string) string {
	seg := p
	if i := strings.LastIndexByte(seg, '/'); i >= 0 {
		seg = seg[i+1:]
	}
	i := strings.LastIndexByte(seg, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(seg[i:])
}

// displayName is the percent-decoded final path segment of an absolute URL.
func displayName(u *url.URL) string {
	base := path.Base(u.EscapedPath())
	if name, err := url.PathUnescape(base); err == nil {
		return name
	}
	return base
}

// videoExtList returns the allow-list in a stable order (for the UI).
func videoExtList() []string {
	out := make([]string, 0, len(videoExts))
	for ext := range videoExts {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

package main

import "time"

// ======================= CONFIG =======================

const (
	defaultAddr      = ":8080"
	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "FTP-to-M3U/1.0"
	defaultMaxBody   = 32 << 20 // safety cap on a listing page

	playlistFilename = "playlist.m3u"
	msgNoVideos      = "No video files found."
	msgMissingURL    = "Missing url parameter"
)

// Config holds the runtime settings of the server and the one-shot mode.
type Config struct {
	Addr         string        `yaml:"addr"`
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
}

// ======================= DATA TYPES ===================

// LinkEntry is one video file found on a listing page.
type LinkEntry struct {
	Href string // absolute URL
	Name string // decoded last path segment
}

package domain

import "go.trai.ch/zerr"

var (
	// ErrCacheCorrupted is returned when the persisted cache file is
	// structurally malformed and cannot be loaded.
	ErrCacheCorrupted = zerr.New("build cache is corrupted")

	// ErrCacheSaveFailed is returned when the cache cannot be written back
	// to disk.
	ErrCacheSaveFailed = zerr.New("failed to save build cache")

	// ErrConfigReadFailed is returned when cbuild.yaml exists but cannot
	// be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when cbuild.yaml cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrDirReadFailed is returned when a source or output directory
	// cannot be listed during a scan.
	ErrDirReadFailed = zerr.New("failed to open directory")

	// ErrMtimeReadFailed is returned when the modification time of an
	// enumerated file cannot be read. The orchestrator only asks for
	// mtimes of files it just listed, so this means the file vanished or
	// became inaccessible mid-session.
	ErrMtimeReadFailed = zerr.New("could not get last modified time")

	// ErrOutDirCreateFailed is returned when the output directory cannot
	// be created.
	ErrOutDirCreateFailed = zerr.New("failed to create output directory")

	// ErrBuildFailed is returned by the application layer when the
	// compile/link pass fails for any reason.
	ErrBuildFailed = zerr.New("build failed")

	// ErrEmbedSourceOpenFailed is returned when the file to embed cannot
	// be opened.
	ErrEmbedSourceOpenFailed = zerr.New("failed to open file for embedding")

	// ErrEmbedOutputOpenFailed is returned when the embed output file
	// cannot be created.
	ErrEmbedOutputOpenFailed = zerr.New("failed to open embed output file")
)

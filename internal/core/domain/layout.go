package domain

const (
	// CacheFileName is the name of the persisted build cache file.
	CacheFileName = ".cbuild-cache"

	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "cbuild.yaml"

	// SourceExt is the extension of compilable source files.
	SourceExt = ".c"

	// HeaderExt is the extension of header files. Headers are tracked in
	// the cache only to detect their own changes; they are never compiled.
	HeaderExt = ".h"

	// ObjectExt is the extension of compiled object files.
	ObjectExt = ".o"

	// DefaultCompiler is the compiler used when none is configured.
	DefaultCompiler = "cc"

	// DefaultSrcDir is the source directory used when none is configured.
	DefaultSrcDir = "src"

	// DefaultBinDir is the output directory used when none is configured.
	DefaultBinDir = "bin"

	// DefaultOutName is the executable name used when none is configured.
	DefaultOutName = "app"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

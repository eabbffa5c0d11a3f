package domain

import "path/filepath"

// Config describes one build: which directories to scan, which compiler to
// invoke and where artifacts go. It is produced by the config loader from
// cbuild.yaml, falling back to defaults when the file is absent.
type Config struct {
	// Compiler is the C compiler executable name. It must be resolvable
	// via PATH; no other environment is consulted.
	Compiler string

	// SrcDirs are the source directories to scan for .c and .h files.
	SrcDirs []string

	// BinDir is the directory object files and the executable go into.
	BinDir string

	// Out is the name of the linked executable inside BinDir.
	Out string

	// CFlags are passed to every compile and link invocation.
	CFlags []string

	// LDFlags are passed to the link invocation only.
	LDFlags []string
}

// OutPath returns the full path of the linked executable.
func (c *Config) OutPath() string {
	return filepath.Join(c.BinDir, c.Out)
}

// DefaultConfig returns the configuration used when no cbuild.yaml exists.
func DefaultConfig() *Config {
	return &Config{
		Compiler: DefaultCompiler,
		SrcDirs:  []string{DefaultSrcDir},
		BinDir:   DefaultBinDir,
		Out:      DefaultOutName,
	}
}

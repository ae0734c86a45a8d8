package domain

import (
	"path/filepath"
	"strings"
)

const (
	// TaskFileName is the name of the task definition file.
	TaskFileName = "klse.json"

	// SettingsFileName is the name of the optional project settings file.
	SettingsFileName = "klse.yaml"

	// FlagCacheFileName is the name of the per-output-directory flag cache.
	FlagCacheFileName = "klse_CFLAGS.json.cache"

	// ObjectExt is the extension given to compiled objects.
	ObjectExt = ".o"

	// DistDirName is the name of the directory created by build-dir.
	DistDirName = "dist"

	// LibsDirName holds libraries inside dist.
	LibsDirName = "libs"

	// BinDirName holds executables inside dist.
	BinDirName = "bin"

	// ObjDirName holds objects inside dist.
	ObjDirName = "obj"

	// DefaultTaskPath is the directory searched for klse.json when none is given.
	DefaultTaskPath = "."

	// DefaultOutputDir receives objects and the flag cache when no output directory is given.
	DefaultOutputDir = "."

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// TaskFilePath returns the location of klse.json inside root.
func TaskFilePath(root string) string {
	return filepath.Join(root, TaskFileName)
}

// SettingsFilePath returns the location of klse.yaml inside root.
func SettingsFilePath(root string) string {
	return filepath.Join(root, SettingsFileName)
}

// FlagCachePath returns the location of the flag cache inside an output directory.
func FlagCachePath(outputDir string) string {
	return filepath.Join(outputDir, FlagCacheFileName)
}

// ObjectPath returns the object file produced for source inside outputDir.
// The source's directory is dropped and its last extension replaced by ".o".
// Leading dots do not start an extension, so ".hidden" becomes ".hidden.o".
func ObjectPath(outputDir, source string) string {
	base := filepath.Base(source)
	if strings.Contains(strings.TrimLeft(base, "."), ".") {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return filepath.Join(outputDir, base+ObjectExt)
}

// DistLayout returns the directories build-dir creates below root, dist first.
func DistLayout(root string) []string {
	dist := filepath.Join(root, DistDirName)
	return []string{
		dist,
		filepath.Join(dist, LibsDirName),
		filepath.Join(dist, BinDirName),
		filepath.Join(dist, ObjDirName),
	}
}

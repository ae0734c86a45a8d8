package domain

import "go.trai.ch/zerr"

var (
	// ErrTaskFileNotFound is returned when klse.json does not exist in the task path.
	ErrTaskFileNotFound = zerr.New("could not find or load task file")

	// ErrTaskFileMalformed is returned when klse.json is not valid JSON or has the wrong shape.
	ErrTaskFileMalformed = zerr.New("could not load task file (probably due to invalid json)")

	// ErrNoTaskSection is returned when klse.json has no top-level "task" object.
	ErrNoTaskSection = zerr.New("could not find a \"task\" object in task file")

	// ErrNoTaskProvided is returned when the task command is invoked without a sequence.
	ErrNoTaskProvided = zerr.New("no task provided")

	// ErrTaskNotFound is returned when the first token of a sequence is not a top-level task.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrInvalidTask is returned when the resolved node has neither a platform command nor a generic one.
	ErrInvalidTask = zerr.New("invalid task (maybe due to incompatibility with your OS)")

	// ErrTaskCommandFailed is returned when a task's shell command exits with a non-zero status.
	ErrTaskCommandFailed = zerr.New("task command failed")

	// ErrUnsupportedLanguage is returned for language tags other than c and c++.
	ErrUnsupportedLanguage = zerr.New("unsupported language")

	// ErrCompilerNotFound is returned when none of the candidate compilers is on PATH.
	ErrCompilerNotFound = zerr.New("could not find a compiler")

	// ErrSourceNotFound is returned when the source file is missing or is not a regular file.
	ErrSourceNotFound = zerr.New("source file does not exist or is not a file")

	// ErrSourceDirNotFound is returned when the folder to compile is missing or is not a directory.
	ErrSourceDirNotFound = zerr.New("source directory does not exist or is not a directory")

	// ErrOutputPathNotADirectory is returned when the output path exists but is not a directory.
	ErrOutputPathNotADirectory = zerr.New("output path is not a directory")

	// ErrOutputDirCreateFailed is returned when the output directory cannot be created.
	ErrOutputDirCreateFailed = zerr.New("failed to create output directory")

	// ErrCompilationFailed is returned when the compiler exits with a non-zero status.
	ErrCompilationFailed = zerr.New("compilation failed")

	// ErrCompilerStartFailed is returned when the compiler process cannot be started.
	ErrCompilerStartFailed = zerr.New("failed to start compiler")

	// ErrCacheFileCorrupt is returned when the flag cache exists but cannot be parsed.
	ErrCacheFileCorrupt = zerr.New("could not load cache file (probably due to invalid json)")

	// ErrCacheReadFailed is returned when the flag cache cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read flag cache")

	// ErrCacheWriteFailed is returned when the flag cache cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write flag cache")

	// ErrSettingsMalformed is returned when klse.yaml cannot be parsed.
	ErrSettingsMalformed = zerr.New("failed to parse settings file")

	// ErrSettingsReadFailed is returned when klse.yaml exists but cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrInvalidCachePolicy is returned for cache policies other than write-before and write-after.
	ErrInvalidCachePolicy = zerr.New("invalid cache policy, expected 'write-before' or 'write-after'")

	// ErrInvalidShell is returned for shell modes other than system and builtin.
	ErrInvalidShell = zerr.New("invalid shell, expected 'system' or 'builtin'")

	// ErrBuildDirCreateFailed is returned when the dist layout cannot be created.
	ErrBuildDirCreateFailed = zerr.New("failed to create build directory")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch source directory")
)

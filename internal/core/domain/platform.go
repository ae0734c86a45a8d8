package domain

import "runtime"

// Platform is the host family a task command is selected for.
type Platform uint8

const (
	// PlatformPosix covers every non-Windows host.
	PlatformPosix Platform = iota
	// PlatformWindows is selected when running on Windows.
	PlatformWindows
)

const (
	// PosixKey is the task-file key holding the POSIX command.
	PosixKey = "posix"
	// WindowsKey is the task-file key holding the Windows command.
	WindowsKey = "windows"
	// GenericKey is the task-file key holding the platform-independent command.
	GenericKey = "task"
	// ChildrenKey is the task-file key holding nested tasks.
	ChildrenKey = "childs"
)

// HostPlatform derives the platform of the running process.
func HostPlatform() Platform {
	return PlatformFor(runtime.GOOS)
}

// PlatformFor maps a GOOS value to a Platform.
func PlatformFor(goos string) Platform {
	if goos == "windows" {
		return PlatformWindows
	}
	return PlatformPosix
}

// Key returns the task-file key for the platform.
func (p Platform) Key() string {
	if p == PlatformWindows {
		return WindowsKey
	}
	return PosixKey
}

func (p Platform) String() string {
	return p.Key()
}

package ports

// FlagStore persists the flags each source was last compiled with.
// There is one store file per output directory.
//
//go:generate mockgen -source=flag_store.go -destination=mocks/mock_flag_store.go -package=mocks
type FlagStore interface {
	// Load returns the recorded source-to-flags mapping of outputDir.
	// A missing store yields an empty mapping.
	Load(outputDir string) (map[string]string, error)

	// Record sets the flags of source in outputDir's store and persists it.
	Record(outputDir, source, flags string) error
}

package ports

// Scaffolder creates the project build directory layout.
//
//go:generate mockgen -source=scaffold.go -destination=mocks/mock_scaffold.go -package=mocks
type Scaffolder interface {
	// CreateDist creates dist and its subdirectories below root and returns
	// the directories in creation order. Existing directories are kept.
	CreateDist(root string) ([]string, error)
}

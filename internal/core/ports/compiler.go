package ports

import "go.trai.ch/klse/internal/core/domain"

// CompilerResolver maps a language to an executable compiler.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type CompilerResolver interface {
	// Resolve returns the compiler to invoke for lang. The preferred names
	// are probed before the built-in candidates.
	Resolve(lang domain.Language, preferred []string) (string, error)
}

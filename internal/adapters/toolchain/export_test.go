package toolchain

// NewResolverForOS creates a Resolver that behaves as it would on goos.
func NewResolverForOS(env []string, goos string) *Resolver {
	r := NewResolver(env)
	r.goos = goos
	return r
}

package cache

// ScopedKeyer prefixes every key of another Keyer, letting several
// deployments share one Redis database:
//
//	keyer := NewScopedKeyer(DefaultKeyer{}, "stackuml:v1:")
type ScopedKeyer struct {
	Keyer
	Prefix string
}

// NewScopedKeyer prefixes the keys of inner, or of DefaultKeyer when inner
// is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = DefaultKeyer{}
	}
	return ScopedKeyer{Keyer: inner, Prefix: prefix}
}

func (k ScopedKeyer) ArtifactKey(descHash string, opts ArtifactKeyOpts) string {
	return k.Prefix + k.Keyer.ArtifactKey(descHash, opts)
}

func (k ScopedKeyer) DiagramKey(id string) string {
	return k.Prefix + k.Keyer.DiagramKey(id)
}

package cache

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format      string `json:"format"`
	Theme       string `json:"theme,omitempty"`
	Background  string `json:"background,omitempty"`
	Marker      string `json:"marker,omitempty"`
	Scale       int    `json:"scale,omitempty"`
	BreakCycles bool   `json:"break_cycles,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey returns the key for a rendered artifact of the
	// description with the given hash.
	ArtifactKey(descHash string, opts ArtifactKeyOpts) string
	// DiagramKey returns the key for a stored diagram id.
	DiagramKey(id string) string
}

// DefaultKeyer produces unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey hashes the description hash together with the options.
func (DefaultKeyer) ArtifactKey(descHash string, opts ArtifactKeyOpts) string {
	return digestKey("artifact", descHash, opts)
}

// DiagramKey returns "diagram:<id>".
func (DefaultKeyer) DiagramKey(id string) string { return "diagram:" + id }

package cache

// Keyer generates cache keys for pipeline artifacts.
type Keyer interface {
	// ArtifactKey returns the key of one rendered output of a figure.
	ArtifactKey(resultHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render options that affect an artifact's bytes.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Grid   bool   `json:"grid"`
}

// DefaultKeyer builds keys of the form "artifact:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey generates a key from the figure hash and render options.
func (DefaultKeyer) ArtifactKey(resultHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", resultHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix, giving each session its own key
// namespace.
//
//	keyer := cache.NewScopedKeyer(nil, "session:"+sess.ShortID()+":")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(resultHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(resultHash, opts)
}

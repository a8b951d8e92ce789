package cache

// KeyPrefix constants for different cache entries
const (
	PrefixTheme = "theme"
)

// GenerateKeyWithPrefix generates a cache key with a prefix
func GenerateKeyWithPrefix(prefix, id string) string {
	return prefix + "_" + id
}

// ArtifactKey generates the cache key for an artifact. variant names the
// settings the artifact was generated with and extension the output type,
// so a persistent store never returns an artifact built differently.
func ArtifactKey(variant, extension, fingerprint string) string {
	return GenerateKeyWithPrefix(PrefixTheme, variant+"_"+extension+"_"+fingerprint)
}

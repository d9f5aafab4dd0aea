package signgloss

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AssetNamer derives deterministic artifact identifiers for rendered gloss
// sequences.
//
// The default format is "{languagePrefix}_{unixSeconds}", e.g.
// "isl_1699999999". Two requests completing within the same second for the
// same language then produce the same identifier and later writes overwrite
// earlier ones at the storage layer. WithUniqueSuffix appends a random
// suffix to close that gap.
type AssetNamer struct {
	unique bool
}

// NamerOption configures an AssetNamer.
type NamerOption func(*AssetNamer)

// WithUniqueSuffix appends a short random suffix to every asset identifier,
// trading determinism for collision resistance.
func WithUniqueSuffix() NamerOption {
	return func(n *AssetNamer) {
		n.unique = true
	}
}

// NewAssetNamer creates an asset namer.
func NewAssetNamer(opts ...NamerOption) *AssetNamer {
	n := &AssetNamer{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Name returns the asset identifier for a gloss sequence generated at the
// given time. Without WithUniqueSuffix it is a pure function of its inputs.
func (n *AssetNamer) Name(_ GlossSequence, lang Language, generatedAt time.Time) string {
	id := fmt.Sprintf("%s_%d", lang.AssetPrefix(), generatedAt.Unix())
	if n.unique {
		id += "_" + uuid.NewString()[:8]
	}
	return id
}

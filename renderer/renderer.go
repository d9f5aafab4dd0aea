// Package renderer provides gloss-sequence renderer implementations. Real
// media synthesis is external; the file renderer here is the default
// fallback that records the sign sequence as plain text.
package renderer

import "github.com/RebelAKL/signgloss"

// Renderer is the interface for turning a gloss sequence into an asset
// reference. This is an alias to the main package interface for convenience.
type Renderer = signgloss.Renderer

// GlossSequence is an alias to the main package type.
type GlossSequence = signgloss.GlossSequence

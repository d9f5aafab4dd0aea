// Package tagger provides external language-model backed tagger
// implementations. The built-in lexicon tagger lives in the root package.
package tagger

import "github.com/RebelAKL/signgloss"

// Tagger is the interface for tokenization and part-of-speech tagging.
// This is an alias to the main package interface for convenience.
type Tagger = signgloss.Tagger

// Token is an alias to the main package type.
type Token = signgloss.Token

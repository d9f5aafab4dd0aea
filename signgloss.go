// Package signgloss converts natural-language text into sign-language gloss
// sequences with content-addressed result caching.
//
// Signgloss tokenizes and part-of-speech tags input text, reorders the tokens
// for the target sign grammar (English SVO to ISL SOV, identity order for
// ASL), derives a deterministic asset identifier, and hands the gloss sequence
// to a pluggable renderer. Whole results are memoized in a time-bounded cache
// keyed by (text, language).
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/RebelAKL/signgloss"
//	    "github.com/RebelAKL/signgloss/cache"
//	    "github.com/RebelAKL/signgloss/renderer"
//	)
//
//	func main() {
//	    r, _ := renderer.NewFileRenderer("assets")
//	    store, _ := cache.NewInMemoryCache(cache.DefaultTTL, 1024)
//
//	    t := signgloss.NewTranslator(r,
//	        signgloss.WithCache(store),
//	    )
//
//	    result, err := t.Translate(context.Background(), "I eat rice", "isl")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(result.Gloss) // I RICE EAT
//	}
package signgloss

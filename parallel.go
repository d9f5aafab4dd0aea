package signgloss

import (
	"context"
	"encoding/json"
	"sync"
)

// ParallelCacheLookup checks the cache for a batch of texts concurrently.
// Returns a map of cache key to decoded result, and the texts that missed
// (deduplicated, preserving original order).
func ParallelCacheLookup(cache TranslationCache, texts []string, lang Language) (map[string]*TranslationResult, []string) {
	if cache == nil || len(texts) == 0 {
		return make(map[string]*TranslationResult), texts
	}

	type lookupResult struct {
		key    string
		result *TranslationResult
		found  bool
	}

	// Deduplicate texts by cache key first
	uniqueTexts := make(map[string]string)
	for _, text := range texts {
		key := CacheKey(text, lang)
		if _, exists := uniqueTexts[key]; !exists {
			uniqueTexts[key] = text
		}
	}

	results := make(chan lookupResult, len(uniqueTexts))
	var wg sync.WaitGroup

	for key := range uniqueTexts {
		wg.Add(1)
		go func(k string) {
			defer wg.Done()
			raw, ok := cache.Get(k)
			if !ok {
				results <- lookupResult{key: k, found: false}
				return
			}
			var decoded TranslationResult
			if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
				// Undecodable entries count as misses
				results <- lookupResult{key: k, found: false}
				return
			}
			results <- lookupResult{key: k, result: &decoded, found: true}
		}(key)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	hits := make(map[string]*TranslationResult)
	missedKeys := make(map[string]bool)

	for r := range results {
		if r.found {
			hits[r.key] = r.result
		} else {
			missedKeys[r.key] = true
		}
	}

	// Build misses slice preserving original order
	var misses []string
	seenMisses := make(map[string]bool)
	for _, text := range texts {
		key := CacheKey(text, lang)
		if missedKeys[key] && !seenMisses[key] {
			misses = append(misses, text)
			seenMisses[key] = true
		}
	}

	return hits, misses
}

// TranslateBatch translates multiple texts for one target language. Cache
// lookups run in parallel once the batch reaches the configured threshold;
// cache misses run through the pipeline sequentially. Results are returned in
// input order.
func (t *Translator) TranslateBatch(ctx context.Context, texts []string, language string) ([]*TranslationResult, error) {
	lang, err := ParseLanguage(language)
	if err != nil {
		return nil, err
	}

	results := make([]*TranslationResult, len(texts))

	if t.cache == nil || len(texts) < t.parallelThreshold {
		for i, text := range texts {
			results[i] = t.translate(ctx, text, lang)
		}
		return results, nil
	}

	hits, misses := ParallelCacheLookup(t.cache, texts, lang)

	computed := make(map[string]*TranslationResult, len(misses))
	for _, text := range misses {
		key := CacheKey(text, lang)
		result := t.run(ctx, text, lang)
		if result.Success {
			t.cacheSet(key, result)
		}
		computed[key] = result
	}

	for i, text := range texts {
		key := CacheKey(text, lang)
		if hit, ok := hits[key]; ok {
			results[i] = hit
			continue
		}
		results[i] = computed[key]
	}

	return results, nil
}

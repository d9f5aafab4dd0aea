// Command signgloss converts text into sign-language gloss sequences.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/RebelAKL/signgloss"
	"github.com/RebelAKL/signgloss/cache"
	"github.com/RebelAKL/signgloss/renderer"
	"github.com/RebelAKL/signgloss/source"
	"github.com/RebelAKL/signgloss/tagger"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = signgloss.Version
	commit    = signgloss.GitCommit
	buildDate = signgloss.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("signgloss", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	lang := fs.String("lang", "isl", "Target sign language (isl, asl)")
	output := fs.String("output", "", "Output file (default: stdout)")
	outputShort := fs.String("o", "", "Output file (short for --output)")
	outDir := fs.String("out-dir", "assets", "Directory for rendered sign assets")
	htmlInput := fs.Bool("html", false, "Treat input as HTML and extract visible text")
	cacheBackend := fs.String("cache", "file", "Cache backend: file, memory, redis, off")
	cacheDir := fs.String("cache-dir", "cache", "Directory for the file cache")
	cacheTTL := fs.Duration("cache-ttl", cache.DefaultTTL, "Cache entry lifetime (0 to keep entries forever)")
	cacheCap := fs.Int("cache-cap", cache.DefaultCapacity, "Entry bound for the memory cache")
	redisURL := fs.String("redis", "redis://localhost:6379", "Redis URL for the redis cache backend")
	useOpenAI := fs.Bool("openai", false, "Tag with the OpenAI model instead of the built-in lexicon")
	apiKey := fs.String("api-key", "", "OpenAI API key (default: OPENAI_API_KEY env)")
	model := fs.String("model", "gpt-4o-mini", "OpenAI model to use")
	uniqueIDs := fs.Bool("unique-ids", false, "Append a random suffix to asset identifiers")
	exportCache := fs.String("export-cache", "", "Export cache entries to a JSON file and exit")
	importCache := fs.String("import-cache", "", "Import cache entries from a JSON file before translating")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")
	showVersion := fs.Bool("version", false, "Show version")
	quiet := fs.Bool("quiet", false, "Suppress progress output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", signgloss.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	// Handle -o alias for --output
	if *outputShort != "" && *output == "" {
		*output = *outputShort
	}

	logger := log.New(stderr)
	if *quiet {
		logger = log.New(io.Discard)
	}

	store, err := buildCache(*cacheBackend, *cacheDir, *redisURL, *cacheTTL, *cacheCap)
	if err != nil {
		return err
	}

	if *exportCache != "" {
		if store == nil {
			return fmt.Errorf("--export-cache requires a cache backend")
		}
		if err := cache.ExportToFile(*exportCache, store, nil); err != nil {
			return fmt.Errorf("exporting cache: %w", err)
		}
		logger.Info("cache exported", "path", *exportCache)
		return nil
	}

	if *importCache != "" {
		if store == nil {
			return fmt.Errorf("--import-cache requires a cache backend")
		}
		result, err := cache.ImportFromFile(*importCache, store)
		if err != nil {
			return fmt.Errorf("importing cache: %w", err)
		}
		logger.Info("cache imported", "entries", result.Imported, "failed", result.Failed)
	}

	// Get input
	var input string
	var inputName string

	if fs.NArg() == 0 {
		// Read from stdin
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		input = string(data)
		inputName = "stdin"
	} else {
		// Read from file - user-provided path is intentional for CLI
		inputPath := fs.Arg(0)
		data, err := os.ReadFile(inputPath) // #nosec G304 - CLI tool reads user-specified files
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		input = string(data)
		inputName = filepath.Base(inputPath)
	}

	if *htmlInput {
		input, err = source.NewHTMLExtractor().Extract(input)
		if err != nil {
			return err
		}
	}

	fileRenderer, err := renderer.NewFileRenderer(*outDir)
	if err != nil {
		return err
	}

	opts := []signgloss.TranslatorOption{
		signgloss.WithLogger(logger),
	}
	if store != nil {
		opts = append(opts, signgloss.WithCache(store))
	}
	if *uniqueIDs {
		opts = append(opts, signgloss.WithNamer(signgloss.NewAssetNamer(signgloss.WithUniqueSuffix())))
	}
	if *useOpenAI {
		key := *apiKey
		if key == "" {
			key = os.Getenv("OPENAI_API_KEY")
		}
		if key == "" {
			return fmt.Errorf("--openai requires an API key (--api-key or OPENAI_API_KEY)")
		}
		modelTagger := signgloss.NewRetryableTagger(
			signgloss.NewRateLimitedTagger(
				tagger.NewOpenAITagger(tagger.OpenAIConfig{APIKey: key, Model: *model}),
				signgloss.RateLimitConfig{RequestsPerMinute: 60},
			),
			signgloss.DefaultRetryConfig(),
		)
		opts = append(opts, signgloss.WithTagger(signgloss.ISL, modelTagger))
	}

	t := signgloss.NewTranslator(fileRenderer, opts...)

	logger.Info("translating", "input", inputName, "language", *lang)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := t.Translate(ctx, input, *lang)
	if err != nil {
		return err
	}

	var out io.Writer = stdout
	if *output != "" {
		f, err := os.Create(*output) // #nosec G304 - CLI tool writes user-specified files
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if *jsonOutput {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
	} else if result.Success {
		fmt.Fprintf(out, "gloss: %s\n", result.Gloss)
		fmt.Fprintf(out, "asset: %s\n", result.AssetRef)
	}

	if !result.Success {
		return fmt.Errorf("translation failed: %s", result.Error)
	}

	return nil
}

// buildCache constructs the selected cache backend. "off" returns nil.
func buildCache(backend, dir, redisURL string, ttl time.Duration, capacity int) (cache.TranslationCache, error) {
	switch backend {
	case "file":
		return cache.NewFileCache(dir, ttl)
	case "memory":
		return cache.NewInMemoryCache(ttl, capacity)
	case "redis":
		return cache.NewRedisCache(cache.RedisConfig{URL: redisURL, TTL: ttl})
	case "off", "none", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q (use file, memory, redis or off)", backend)
	}
}

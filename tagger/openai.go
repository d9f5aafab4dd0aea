package tagger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/RebelAKL/signgloss"
	"github.com/sashabaranov/go-openai"
)

const defaultModel = "gpt-4o-mini"

// OpenAITagger assigns part-of-speech categories using OpenAI's API. The
// text is tokenized locally (same normalization and alphanumeric filter as
// the lexicon tagger); only the classification is delegated to the model, so
// token identity never depends on how the model splits text.
type OpenAITagger struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI tagger.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Temperature for generation (default: 0.1)
	BaseURL     string  // Custom base URL (optional)
}

// NewOpenAITagger creates a new OpenAI-backed tagger.
func NewOpenAITagger(cfg OpenAIConfig) *OpenAITagger {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	t := &OpenAITagger{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}
	if t.model == "" {
		t.model = defaultModel
	}
	if t.temperature == 0 {
		t.temperature = 0.1
	}
	return t
}

const systemPrompt = `# Role
You are a part-of-speech tagger for sign-language gloss conversion.

# Task
For each input token, assign exactly one category:
- SUBJECT: pronouns and grammatical subjects (I, you, he, she, we, they, ...)
- OBJECT: nouns
- VERB: verbs, including auxiliaries and modals
- OTHER: everything else (determiners, prepositions, adverbs, conjunctions, ...)

# Format
Return a valid JSON object with a single key "categories" containing an array
of category strings in the exact same order as the input tokens.
Example: { "categories": ["SUBJECT", "VERB", "OBJECT"] }
- The array length MUST equal the number of input tokens.
- Do NOT wrap in Markdown code blocks.`

// Tag tokenizes text and classifies each token via the model.
func (t *OpenAITagger) Tag(ctx context.Context, text string) ([]Token, error) {
	words := signgloss.Tokenize(text)
	if len(words) == 0 {
		return []Token{}, nil
	}

	payload, _ := json.Marshal(map[string][]string{"tokens": words})

	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: string(payload)},
		},
		Temperature: t.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, &signgloss.TaggerError{
			Message:   "OpenAI API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}
	if len(resp.Choices) == 0 {
		return nil, &signgloss.TaggerError{
			Message:   "no response from OpenAI",
			Retryable: true,
		}
	}

	categories, err := parseCategories(resp.Choices[0].Message.Content, len(words))
	if err != nil {
		return nil, err
	}

	tokens := make([]Token, len(words))
	for i, word := range words {
		tokens[i] = Token{
			Text:     word,
			Category: signgloss.ParsePartOfSpeech(categories[i]),
		}
	}
	return tokens, nil
}

// modelReply is the shape the system prompt asks for.
type modelReply struct {
	Categories []string `json:"categories"`
}

// parseCategories extracts the category array from the model response. The
// strict shape is tried first; bare arrays and mislabeled keys are accepted
// as fallbacks since models drift on formatting.
func parseCategories(content string, want int) ([]string, error) {
	raw := []byte(content)

	var reply modelReply
	if err := json.Unmarshal(raw, &reply); err == nil && len(reply.Categories) > 0 {
		return checkCount(reply.Categories, want)
	}

	var loose interface{}
	if err := json.Unmarshal(raw, &loose); err == nil {
		switch v := loose.(type) {
		case []interface{}:
			return checkCount(stringify(v), want)
		case map[string]interface{}:
			for _, val := range v {
				if arr, ok := val.([]interface{}); ok {
					return checkCount(stringify(arr), want)
				}
			}
		}
	}

	return nil, &signgloss.TaggerError{
		Message:   "invalid response format from OpenAI",
		Retryable: false,
	}
}

func checkCount(categories []string, want int) ([]string, error) {
	if len(categories) != want {
		return nil, &signgloss.TagCountMismatchError{
			Expected: want,
			Got:      len(categories),
		}
	}
	return categories, nil
}

func stringify(arr []interface{}) []string {
	out := make([]string, len(arr))
	for i, v := range arr {
		if s, ok := v.(string); ok {
			out[i] = s
			continue
		}
		out[i] = fmt.Sprintf("%v", v)
	}
	return out
}

// isRetryableError classifies API failures. Status-coded errors are decided
// by code; everything else falls back to matching transport-level failure
// text.
func isRetryableError(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable:
			return true
		}
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range []string{"rate limit", "timeout", "connection refused", "temporary"} {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// Verify OpenAITagger implements Tagger
var _ Tagger = (*OpenAITagger)(nil)

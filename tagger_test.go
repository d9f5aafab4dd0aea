package signgloss

import (
	"context"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"I eat rice", []string{"i", "eat", "rice"}},
		{"I eat rice.", []string{"i", "eat", "rice"}},
		{"Hello, World!", []string{"hello", "world"}},
		{"", nil},
		{"   \t\n", nil},
		{"... !!!", nil},
		{"co-op rocks", []string{"rocks"}},
		{"room 42", []string{"room", "42"}},
	}

	for _, tt := range tests {
		got := Tokenize(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestTokenizeWhitespace(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"I eat rice", []string{"i", "eat", "rice"}},
		// No edge trimming: the unit with punctuation is discarded whole
		{"I eat rice.", []string{"i", "eat"}},
		{"", nil},
	}

	for _, tt := range tests {
		got := TokenizeWhitespace(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("TokenizeWhitespace(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLexiconTagger_Tag(t *testing.T) {
	tagger := NewLexiconTagger()

	tokens, err := tagger.Tag(context.Background(), "I eat rice")
	if err != nil {
		t.Fatalf("Tag failed: %v", err)
	}

	want := []Token{
		{Text: "i", Category: Subject},
		{Text: "eat", Category: Verb},
		{Text: "rice", Category: Object},
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Tag = %v, want %v", tokens, want)
	}
}

func TestLexiconTagger_EmptyInput(t *testing.T) {
	tagger := NewLexiconTagger()

	for _, input := range []string{"", "   ", "\t\n"} {
		tokens, err := tagger.Tag(context.Background(), input)
		if err != nil {
			t.Fatalf("Tag(%q) failed: %v", input, err)
		}
		if len(tokens) != 0 {
			t.Errorf("Tag(%q) = %v, want empty", input, tokens)
		}
	}
}

func TestLexiconTagger_Deterministic(t *testing.T) {
	tagger := NewLexiconTagger()

	first, _ := tagger.Tag(context.Background(), "we are going home now")
	second, _ := tagger.Tag(context.Background(), "we are going home now")

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated tagging must yield identical tokens")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		word string
		want PartOfSpeech
	}{
		{"i", Subject},
		{"they", Subject},
		{"eat", Verb},
		{"is", Verb},
		{"must", Verb},
		{"running", Verb}, // -ing suffix
		{"walked", Verb},  // -ed suffix
		{"the", Other},
		{"because", Other},
		{"rice", Object},
		{"school", Object},
		{"ring", Object}, // too short for the -ing heuristic
		{"red", Object},  // too short for the -ed heuristic
	}

	for _, tt := range tests {
		if got := Classify(tt.word); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestWhitespaceTagger_Tag(t *testing.T) {
	tagger := NewWhitespaceTagger()

	tokens, err := tagger.Tag(context.Background(), "I eat rice")
	if err != nil {
		t.Fatalf("Tag failed: %v", err)
	}

	want := []Token{
		{Text: "i", Category: Other},
		{Text: "eat", Category: Other},
		{Text: "rice", Category: Other},
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Tag = %v, want %v", tokens, want)
	}
}

func TestPartOfSpeech_Roundtrip(t *testing.T) {
	for _, p := range []PartOfSpeech{Subject, Object, Verb, Other} {
		if got := ParsePartOfSpeech(p.String()); got != p {
			t.Errorf("ParsePartOfSpeech(%q) = %v, want %v", p.String(), got, p)
		}
	}

	if got := ParsePartOfSpeech("ADJECTIVE"); got != Other {
		t.Errorf("unknown category should map to Other, got %v", got)
	}
}

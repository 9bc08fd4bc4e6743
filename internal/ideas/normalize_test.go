package ideas

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestNormalize_PlainJSONRoundTrip(t *testing.T) {
	cases := []string{
		`[{"title":"A","description":"B"}]`,
		`{"title":"A","description":"B"}`,
		`[1,2,3]`,
		`  [1,2,3]  `,
	}
	for _, raw := range cases {
		got, err := Normalize(raw)
		if err != nil {
			t.Errorf("Normalize(%q) failed: %v", raw, err)
			continue
		}
		var want any
		if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &want); err != nil {
			t.Fatalf("test case %q is not valid JSON: %v", raw, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Normalize(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestNormalize_FencedEqualsUnfenced(t *testing.T) {
	plain := `[{"title":"A","description":"B"}]`
	fenced := "```json\n" + plain + "\n```"

	gotPlain, err := Normalize(plain)
	if err != nil {
		t.Fatalf("plain: %v", err)
	}
	gotFenced, err := Normalize(fenced)
	if err != nil {
		t.Fatalf("fenced: %v", err)
	}
	if !reflect.DeepEqual(gotPlain, gotFenced) {
		t.Errorf("fenced result %v differs from plain result %v", gotFenced, gotPlain)
	}
}

func TestNormalize_FenceWithoutLanguageTag(t *testing.T) {
	got, err := Normalize("```\n[1,2]\n```")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	want := []any{float64(1), float64(2)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNormalize_TrailingCommentaryAfterFence(t *testing.T) {
	// The closing fence must be found with the LAST occurrence: the model
	// sometimes appends prose after the closing marker.
	raw := "```json\n[1,2]\n```\nHope this helps!"
	got, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	want := []any{float64(1), float64(2)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNormalize_RecoversLongestPrefix(t *testing.T) {
	got, err := Normalize("Here is it: [1,2] extra junk")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	want := []any{float64(1), float64(2)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNormalize_PrefersMaximalValue(t *testing.T) {
	// Longest-first ordering must not truncate a valid array at an inner
	// bracket.
	raw := `answer: [[1,2],[3,4]]`
	got, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	want := []any{
		[]any{float64(1), float64(2)},
		[]any{float64(3), float64(4)},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNormalize_NoBrackets(t *testing.T) {
	_, err := Normalize("I cannot answer that.")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if !strings.Contains(parseErr.Snippet, "I cannot answer") {
		t.Errorf("snippet should carry the offending text, got %q", parseErr.Snippet)
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t"} {
		_, err := Normalize(raw)
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("Normalize(%q): expected ParseError, got %v", raw, err)
		}
	}
}

func TestNormalize_NullIsNotAValue(t *testing.T) {
	_, err := Normalize("null")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError for bare null, got %v", err)
	}
}

func TestNormalize_SnippetTruncatedTo300(t *testing.T) {
	long := strings.Repeat("x", 1000)
	_, err := Normalize(long)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if len(parseErr.Snippet) != 300 {
		t.Errorf("expected 300-char snippet, got %d", len(parseErr.Snippet))
	}
}

func TestNormalize_LenientControlChars(t *testing.T) {
	// A literal newline inside a string literal is invalid JSON but must be
	// recovered by the lenient pass.
	raw := "prefix {\"title\":\"A\",\"description\":\"line one\nline two\"} suffix"
	got, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("expected object, got %T", got)
	}
	if m["description"] != "line one\nline two" {
		t.Errorf("control character not preserved: %q", m["description"])
	}
}

func TestNormalize_LenientDoesNotRepairOtherMalformations(t *testing.T) {
	// The lenient pass tolerates control characters only. Trailing commas,
	// single quotes and unquoted keys keep failing; recovery may still find
	// a shorter parseable prefix, so these inputs are built without one.
	cases := []string{
		"{'title': 'A'}",
		"{title: 1}",
		"[1,2,]",
	}
	for _, raw := range cases {
		if v, err := Normalize(raw); err == nil {
			t.Errorf("Normalize(%q) unexpectedly succeeded: %v", raw, v)
		}
	}
}

func TestNormalize_NonIdeaShapePassesThrough(t *testing.T) {
	got, err := Normalize(`{"foo": 42}`)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	m, ok := got.(map[string]any)
	if !ok || m["foo"] != float64(42) {
		t.Errorf("expected verbatim pass-through, got %v", got)
	}
	if _, ok := DecodeIdeas(got); ok {
		t.Errorf("DecodeIdeas should reject a non-list value")
	}
}

func TestStripCodeFence_UnterminatedFence(t *testing.T) {
	// No closing marker: everything after the opening line is kept.
	got := stripCodeFence("```json\n[1,2]")
	if got != "[1,2]" {
		t.Errorf("got %q", got)
	}
}

func TestStripCodeFence_FenceWithoutNewline(t *testing.T) {
	// A lone ``` with no newline passes through untouched.
	got := stripCodeFence("```")
	if got != "```" {
		t.Errorf("got %q", got)
	}
}

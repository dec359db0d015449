package gen

import "testing"

func TestExtractJSONObject(t *testing.T) {
	text := "Here is the task you asked for:\n```json\n{\"text\": \"hello\"}\n```\nEnjoy!"
	doc, err := extractJSONObject(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc != `{"text": "hello"}` {
		t.Errorf("got %q", doc)
	}
}

func TestExtractJSONObjectMissing(t *testing.T) {
	_, err := extractJSONObject("Sorry, I cannot help with that.")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestExtractJSONArray(t *testing.T) {
	text := "Sure: [{\"a\": 1}, {\"a\": 2}] as requested."
	doc, err := extractJSONArray(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc != `[{"a": 1}, {"a": 2}]` {
		t.Errorf("got %q", doc)
	}
}

func TestExtractJSONArraySpansNestedBrackets(t *testing.T) {
	// The widest span must cover all items even when items themselves
	// contain brackets.
	text := `[[1,2],[3,4]]`
	doc, err := extractJSONArray(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc != text {
		t.Errorf("got %q, want %q", doc, text)
	}
}

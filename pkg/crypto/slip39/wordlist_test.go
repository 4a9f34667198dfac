package slip39

import "testing"

func TestWordlistEndpoints(t *testing.T) {
	first, err := WordAt(0)
	if err != nil || first != "academic" {
		t.Fatalf("word 0 = %q, err=%v; want \"academic\"", first, err)
	}
	last, err := WordAt(WordCount - 1)
	if err != nil || last != "zero" {
		t.Fatalf("word %d = %q, err=%v; want \"zero\"", WordCount-1, last, err)
	}
}

func TestWordlistIndexOfIsCaseInsensitive(t *testing.T) {
	idx, err := IndexOf("ACADEMIC")
	if err != nil || idx != 0 {
		t.Fatalf("IndexOf(ACADEMIC) = %d, err=%v; want 0", idx, err)
	}
}

func TestWordlistRoundTrip(t *testing.T) {
	words := []string{"academic", "zero", wordList[500]}
	indices, err := wordsToIndices(words)
	if err != nil {
		t.Fatal(err)
	}
	back, err := indicesToWords(indices)
	if err != nil {
		t.Fatal(err)
	}
	for i := range words {
		if words[i] != back[i] {
			t.Fatalf("round trip mismatch at %d: %q != %q", i, words[i], back[i])
		}
	}
}

func TestWordAtOutOfRange(t *testing.T) {
	if _, err := WordAt(-1); err == nil {
		t.Fatal("expected error for negative index")
	}
	if _, err := WordAt(WordCount); err == nil {
		t.Fatal("expected error for out-of-range index")
	}
}

func TestIndexOfUnknownWord(t *testing.T) {
	if _, err := IndexOf("notarealword"); err == nil {
		t.Fatal("expected error for unknown word")
	}
}

func TestIndexOfPrefixFallback(t *testing.T) {
	// "academ" has no exact entry but shares "acad" with "academic".
	idx, err := IndexOf("academ")
	if err != nil || idx != 0 {
		t.Fatalf("IndexOf(academ) = %d, err=%v; want 0", idx, err)
	}
}

func TestIndexOfPrefixFallbackTooShort(t *testing.T) {
	if _, err := IndexOf("abc"); err == nil {
		t.Fatal("expected error for a word shorter than the prefix length")
	}
}

func TestWordlistPrefixesAreUnique(t *testing.T) {
	seen := make(map[string]string, WordCount)
	for _, w := range wordList {
		prefix := w[:prefixLen]
		if other, dup := seen[prefix]; dup {
			t.Fatalf("words %q and %q share prefix %q", other, w, prefix)
		}
		seen[prefix] = w
	}
}

package team

import "testing"

func TestResolveText_NoKnownTokens(t *testing.T) {
	t.Parallel()

	if got := ResolveText("GO LEAFS GO\nSECTION 214"); got != nil {
		t.Fatalf("expected no matches, got %v", got)
	}
}

func TestResolveText_FirstMatchInReadingOrder(t *testing.T) {
	t.Parallel()

	got := ResolveText("PERIOD 2\nBOS 1 - 3 TOR\nSHOTS 18-22")
	if len(got) != 2 {
		t.Fatalf("expected two matches, got %v", got)
	}
	if got[0] != IDByCode["BOS"] {
		t.Fatalf("expected first match BOS (%d), got %d", IDByCode["BOS"], got[0])
	}
	if got[1] != IDByCode["TOR"] {
		t.Fatalf("expected second match TOR (%d), got %d", IDByCode["TOR"], got[1])
	}
}

func TestResolveText_CaseSensitive(t *testing.T) {
	t.Parallel()

	if got := ResolveText("bos tor wpg"); got != nil {
		t.Fatalf("lowercase tokens must not match, got %v", got)
	}
}

func TestResolveText_KeepsDuplicates(t *testing.T) {
	t.Parallel()

	got := ResolveText("WPG WPG")
	if len(got) != 2 || got[0] != got[1] {
		t.Fatalf("expected duplicate occurrences preserved, got %v", got)
	}
}

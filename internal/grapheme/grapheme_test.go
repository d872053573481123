package grapheme

import "testing"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	family := "\U0001F468‍\U0001F469‍\U0001F467"
	text := "a" + "é" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if j := Join(got); j != text {
		t.Fatalf("join=%q, want %q", j, text)
	}
}

func TestSplit_Empty(t *testing.T) {
	if got := Split(""); got != nil {
		t.Fatalf("split empty=%v, want nil", got)
	}
	if got := Count(""); got != 0 {
		t.Fatalf("count empty=%d, want 0", got)
	}
}

func TestWidth(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{in: "a", want: 1},
		{in: "テ", want: 2},
		{in: "é", want: 1},
	}
	for _, tc := range cases {
		if got := Width(tc.in); got != tc.want {
			t.Fatalf("Width(%q)=%d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestIsSpace(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") {
		t.Fatalf("letter should not be space")
	}
	if IsSpace("") {
		t.Fatalf("empty cluster should not be space")
	}
}

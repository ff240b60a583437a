package slug

import "testing"

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple two words", input: "Hello World", want: "hello-world"},
		{name: "title with year", input: "Rapport annuel 2026", want: "rapport-annuel-2026"},
		{name: "french accents folded", input: "Journée des Droits de l'Homme", want: "journee-des-droits-de-l-homme"},
		{name: "cedilla and ligature-free", input: "Leçon Française", want: "lecon-francaise"},
		{name: "punctuation dropped", input: "Hello, World! Ça va?", want: "hello-world-ca-va"},
		{name: "repeated separators collapse", input: "a  --  b", want: "a-b"},
		{name: "leading and trailing space", input: "   padded   ", want: "padded"},
		{name: "arabic kept", input: "أخبار المنظمة", want: "اخبار-المنظمة"},
		{name: "arabic harakat removed", input: "حُقُوق", want: "حقوق"},
		{name: "only symbols", input: "!!! ???", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestOr(t *testing.T) {
	if got := Or("!!!", "news-3"); got != "news-3" {
		t.Errorf("Or fallback: got %q, want %q", got, "news-3")
	}
	if got := Or("Nouvelles", "news-3"); got != "nouvelles" {
		t.Errorf("Or: got %q, want %q", got, "nouvelles")
	}
}

package indenter

import "testing"

func TestIndenter(t *testing.T) {
	tests := []struct {
		name     string
		actual   string
		expected string
	}{
		{"empty", Indenter().Start("{").NestStrings().End("}"), "{}"},
		{"single", Indenter().Start("{").NestStrings("a").End("}"), "{a}"},
		{"many", Indenter().Start("{").NestStringsSep(",", "a", "b").End("}"), "{\n  a,\n  b\n}"},
		{"nested", Indenter().Start("[").NestStrings(
			Indenter().Start("{").NestStrings("a", "b").End("}"),
			"c",
		).End("]"), "[\n  {\n    a\n    b\n  }\n  c\n]"},
		{"thunked", Indenter().Start("(").NestThunked(
			func() string { return "x" },
			func() string { return "y" },
		).End(")"), "(\n  x\n  y\n)"},
	}

	for _, test := range tests {
		if test.actual != test.expected {
			t.Errorf("%s: expected\n%s\ngot\n%s", test.name, test.expected, test.actual)
		}
	}
}

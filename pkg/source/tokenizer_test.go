package source_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/prosechunk/pkg/source"
)

func TestTokenizeLocations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   []int
	}{
		{
			name:   "block comment then line comment",
			source: "/* test */\n// test",
			want:   []int{0, 10, 11},
		},
		{
			name:   "multibyte block comment counts bytes",
			source: "/* te中st */\n// test",
			want:   []int{0, 13, 14},
		},
		{
			name:   "comments and code",
			source: "/* te中st */\n// test\nfn 中(){\t}",
			want:   []int{0, 13, 14, 21, 22, 24, 25, 28, 29, 30, 31, 32},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens := source.Tokenize(tt.source)
			require.Len(t, tokens, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want, tokens[i].Location, "token %d", i)
			}
		})
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	t.Parallel()

	sources := []string{
		"",
		"/* test */\n// test",
		"// a\n// b\nfn x(){}\n// c",
		"/* block\n 种 \ncomment */",
		"let s = \"// not a comment\";",
		"let s = \"escaped \\\" quote // still string\";",
		"let r = r#\"raw // string\"#;",
		"let c = '\\n'; let l: &'static str = \"x\";",
		"/* outer /* nested */ still outer */ fn main() {}",
		"/* unterminated",
		"//! inner doc\n/// outer doc\n//| odd but plain",
		"const N: usize = 0xff_u32C3; // hex\n",
		"\t \n  \r\n mixed whitespace",
	}

	for _, src := range sources {
		tokens := source.Tokenize(src)

		var sb strings.Builder
		offset := 0
		for i, tok := range tokens {
			assert.Equal(t, offset, tok.Location, "token %d of %q", i, src)
			sb.WriteString(tok.Content)
			offset += len(tok.Content)
		}
		assert.Equal(t, src, sb.String())
	}
}

func TestTokenizeKeepsCommentsWhole(t *testing.T) {
	t.Parallel()

	tokens := source.Tokenize("/* outer /* nested */ still outer */\n// tail")
	require.NotEmpty(t, tokens)
	assert.Equal(t, "/* outer /* nested */ still outer */", tokens[0].Content)
	assert.Equal(t, "// tail", tokens[len(tokens)-1].Content)
}

func TestTokenizeStringsHideCommentMarkers(t *testing.T) {
	t.Parallel()

	for _, src := range []string{
		`let s = "// not a comment";`,
		`let s = "/* not a comment */";`,
		`let r = r"// raw";`,
		`let r = r##"has "# inside // deep"##;`,
	} {
		for _, tok := range source.Tokenize(src) {
			if strings.HasPrefix(tok.Content, "//") || strings.HasPrefix(tok.Content, "/*") {
				t.Errorf("comment token %q leaked out of a string literal in %q", tok.Content, src)
			}
		}
	}
}

func TestTokenizeRetokenizeIsStable(t *testing.T) {
	t.Parallel()

	src := "/* te中st */\n// test\nfn 中(){\t}"
	first := source.Tokenize(src)

	var sb strings.Builder
	for _, tok := range first {
		sb.WriteString(tok.Content)
	}
	second := source.Tokenize(sb.String())

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i], second[i])
	}
}

func TestWithLineColumns(t *testing.T) {
	t.Parallel()

	type pos struct {
		line   int
		column int
	}

	tests := []struct {
		name   string
		source string
		want   []pos
	}{
		{
			name:   "ascii",
			source: "/* test */\n// test",
			want:   []pos{{1, 0}, {1, 10}, {2, 0}},
		},
		{
			name:   "multibyte column in scalars",
			source: "/* te中st */\n// test",
			want:   []pos{{1, 0}, {1, 11}, {2, 0}},
		},
		{
			name:   "comments and code",
			source: "/* te中st */\n// test\nfn 中(){\t}",
			want: []pos{
				{1, 0}, {1, 11}, {2, 0}, {2, 7},
				{3, 0}, {3, 2}, {3, 3}, {3, 4}, {3, 5}, {3, 6}, {3, 7}, {3, 8},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens := source.WithLineColumns(tt.source, source.Tokenize(tt.source))
			require.Len(t, tokens, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want.line, tokens[i].Line, "token %d line", i)
				assert.Equal(t, want.column, tokens[i].Column, "token %d column", i)
			}
		})
	}
}

func FuzzTokenizeRoundTrip(f *testing.F) {
	f.Add("/* test */\n// test")
	f.Add("let s = \"// hidden\"; // real")
	f.Add("r#\"raw\"# '\\'' 'a")
	f.Add("/* nested /* deeper */ out */")

	f.Fuzz(func(t *testing.T, src string) {
		tokens := source.Tokenize(src)

		var sb strings.Builder
		for _, tok := range tokens {
			sb.WriteString(tok.Content)
		}
		if sb.String() != src {
			t.Errorf("token concatenation diverged from input: %q != %q", sb.String(), src)
		}
	})
}

// Package extract runs the comment extraction pipeline: tokenize source
// text, classify developer comments, trim them into literals, and group the
// literals into sets ready to become checkable chunks.
package extract

import (
	"fmt"
	"strings"

	"github.com/yaklabco/prosechunk/internal/logging"
	"github.com/yaklabco/prosechunk/pkg/chunk"
	"github.com/yaklabco/prosechunk/pkg/literal"
	"github.com/yaklabco/prosechunk/pkg/source"
)

// DeveloperCommentSets extracts developer comments from src and groups them
// into literal sets: one set per run of line comments on consecutive lines
// and one set per block comment. Line comment sets come first, then block
// comment sets, each group in source order. Comments with no checkable
// content, like "/**/" and a bare "//", are dropped.
func DeveloperCommentSets(src string) []*literal.Set {
	tokens := source.RetainDeveloperComments(
		source.Classify(source.WithLineColumns(src, source.Tokenize(src))))

	sets := literalSetsFromLineComments(tokens)
	return append(sets, literalSetsFromBlockComments(tokens)...)
}

// Chunks extracts developer comments from src and renders every literal set
// into a checkable chunk.
func Chunks(src string) []*chunk.CheckableChunk {
	sets := DeveloperCommentSets(src)
	logging.Trace("rendering literal sets into chunks", logging.FieldSets, len(sets))

	chunks := make([]*chunk.CheckableChunk, 0, len(sets))
	for _, set := range sets {
		chunks = append(chunks, chunk.FromLiteralSet(set))
	}
	return chunks
}

// literalSetsFromLineComments groups line comment tokens into sets of
// consecutive lines. A comment on line n extends the open set only when the
// set's last literal sits on line n-1; anything else opens a new set.
func literalSetsFromLineComments(tokens []source.TokenWithKind) []*literal.Set {
	var sets []*literal.Set

	for _, t := range tokens {
		if t.Kind != source.KindLineComment {
			continue
		}

		l, err := literalFromLineComment(t)
		if err != nil {
			dropToken(t, err)
			continue
		}

		if len(sets) > 0 && sets[len(sets)-1].AddAdjacent(l) {
			continue
		}
		sets = append(sets, literal.NewSet(l))
	}

	return sets
}

// literalSetsFromBlockComments builds one set per block comment token. A
// comment any of whose lines fails literal construction is dropped whole.
func literalSetsFromBlockComments(tokens []source.TokenWithKind) []*literal.Set {
	var sets []*literal.Set

	for _, t := range tokens {
		if t.Kind != source.KindBlockComment {
			continue
		}

		set, err := literalSetFromBlockComment(t)
		if err != nil {
			dropToken(t, err)
			continue
		}
		sets = append(sets, set)
	}

	return sets
}

func literalSetFromBlockComment(t source.TokenWithKind) (*literal.Set, error) {
	literals, err := literalsFromBlockComment(t)
	if err != nil {
		return nil, err
	}

	set := literal.NewSet(literals[0])
	for _, l := range literals[1:] {
		if !set.AddAdjacent(l) {
			return nil, fmt.Errorf(
				"literal at %d:%d does not continue its own block comment", l.Line(), l.Column())
		}
	}
	return set, nil
}

func literalFromLineComment(t source.TokenWithKind) (literal.TrimmedLiteral, error) {
	return literal.NewTrimmedLiteral(
		literal.VariantDoubleSlash, t.Content,
		t.Kind.PreScalars(), t.Kind.PostScalars(), t.Line, t.Column)
}

// literalsFromBlockComment splits a block comment into one literal per line.
// The first line keeps the token's column and sheds the opening delimiter;
// later lines start at column zero and shed the closing delimiter only when
// they end with it.
func literalsFromBlockComment(t source.TokenWithKind) ([]literal.TrimmedLiteral, error) {
	pre, post := t.Kind.PreScalars(), t.Kind.PostScalars()

	lines := strings.Split(t.Content, "\n")
	if len(lines) == 1 {
		l, err := literal.NewTrimmedLiteral(
			literal.VariantSlashAsterisk, t.Content, pre, post, t.Line, t.Column)
		if err != nil {
			return nil, err
		}
		return []literal.TrimmedLiteral{l}, nil
	}

	literals := make([]literal.TrimmedLiteral, 0, len(lines))
	for i, line := range lines {
		var linePre, linePost, lineColumn int
		if i == 0 {
			linePre = pre
			lineColumn = t.Column
		} else if strings.HasSuffix(line, t.Kind.Post()) {
			linePost = post
		}

		l, err := literal.NewTrimmedLiteral(
			literal.VariantSlashAsterisk, line, linePre, linePost, t.Line+i, lineColumn)
		if err != nil {
			return nil, err
		}
		literals = append(literals, l)
	}
	return literals, nil
}

// dropToken records a comment that produced no checkable content. Dropping
// is expected for empty comments and for bare terminator lines.
func dropToken(t source.TokenWithKind, err error) {
	logging.Trace("dropping developer comment without checkable content",
		logging.FieldKind, t.Kind,
		logging.FieldLine, t.Line,
		logging.FieldColumn, t.Column,
		logging.FieldError, err)
}

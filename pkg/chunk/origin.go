package chunk

import (
	"fmt"

	"github.com/yaklabco/prosechunk/pkg/span"
)

// originKind enumerates the sources a chunk can come from.
type originKind int

const (
	originCommonMarkFile originKind = iota
	originRustDocTest
	originRustSourceFile
)

// ContentOrigin tags a chunk with enough information to open the original
// file when reporting findings. Doc-test origins carry a span because one
// file can hold several tests.
type ContentOrigin struct {
	kind originKind
	path string
	at   span.Span
}

// OriginCommonMarkFile tags content from a standalone CommonMark file.
func OriginCommonMarkFile(path string) ContentOrigin {
	return ContentOrigin{kind: originCommonMarkFile, path: path}
}

// OriginRustDocTest tags content from a doc test inside a source file.
func OriginRustDocTest(path string, at span.Span) ContentOrigin {
	return ContentOrigin{kind: originRustDocTest, path: path, at: at}
}

// OriginRustSourceFile tags content from source file comments.
func OriginRustSourceFile(path string) ContentOrigin {
	return ContentOrigin{kind: originRustSourceFile, path: path}
}

// Path returns the origin file path.
func (o ContentOrigin) Path() string {
	return o.path
}

// IsCommonMark reports whether the origin is a standalone CommonMark file.
func (o ContentOrigin) IsCommonMark() bool {
	return o.kind == originCommonMarkFile
}

// IsDocTest reports whether the origin is a doc test.
func (o ContentOrigin) IsDocTest() bool {
	return o.kind == originRustDocTest
}

// IsSourceFile reports whether the origin is source file comments.
func (o ContentOrigin) IsSourceFile() bool {
	return o.kind == originRustSourceFile
}

// String renders the origin for reports; doc tests include their span to
// stay unambiguous.
func (o ContentOrigin) String() string {
	if o.kind == originRustDocTest {
		return fmt.Sprintf("%s (doc test at %s)", o.path, o.at)
	}
	return o.path
}

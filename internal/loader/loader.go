// Package loader ingests Shot source text from exactly one of two input
// modes — an inline string or a file path — and exposes both the full
// text and a per-line view of it for diagnostic context. Grounded on
// original_source's Loader::load, rendered in Go idiom.
package loader

import (
	"fmt"
	"os"
	"strings"
)

// Source is the result of a successful load: the full source text and
// its line-split view, used by downstream stages to report the
// offending line on an error.
type Source struct {
	Text  string
	Lines []string
}

// Load ingests source text from content or filePath, never both and
// never neither. Exactly one of content/filePath should be non-nil.
func Load(content *string, filePath *string) (*Source, error) {
	hasContent := content != nil
	hasFilePath := filePath != nil

	if hasContent && hasFilePath {
		return nil, &Error{Kind: TooManyOptions}
	}
	if !hasContent && !hasFilePath {
		return nil, &Error{Kind: TooFewOptions}
	}
	if hasContent {
		return fromContent(*content), nil
	}
	return fromFile(*filePath)
}

func fromContent(content string) *Source {
	return &Source{Text: content, Lines: strings.Split(content, "\n")}
}

func fromFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: FileNotFound, Path: path}
	}
	return fromContent(string(data)), nil
}

// ErrorKind identifies which of the Loader's error variants occurred.
type ErrorKind string

const (
	FileNotFound   ErrorKind = "FileNotFound"
	TooManyOptions ErrorKind = "TooManyOptions"
	TooFewOptions  ErrorKind = "TooFewOptions"
)

// Error reports a source-ingestion failure.
type Error struct {
	Kind ErrorKind
	Path string
}

func (e *Error) Error() string {
	switch e.Kind {
	case FileNotFound:
		return fmt.Sprintf("file not found: %s", e.Path)
	case TooManyOptions:
		return "too many options: supply either -i or -f, not both"
	case TooFewOptions:
		return "too few options: supply one of -i or -f"
	default:
		return "loader error"
	}
}

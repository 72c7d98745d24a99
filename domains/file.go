package domains

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/authcorp/libs/go/strongof/strong"
	"github.com/authcorp/libs/go/strongof/validation"
)

var (
	fileExtensionRegex = regexp.MustCompile(`^\.[a-zA-Z0-9]+(?:\.[a-zA-Z0-9]+)*$`)
	filePathRegex      = regexp.MustCompile(`^[^\x00-\x1f<>"|?*]+$`)
)

const maxFilePathLength = 4096

var (
	fileExtensionRule = rules(pattern(fileExtensionRegex, "must start with a dot followed by letters or digits"))
	filePathRule      = rules(
		validation.MaxLength(maxFilePathLength),
		pattern(filePathRegex, "must not contain control characters or any of <>\"|?*"),
	)
)

// FileExtension is a file extension with its leading dot, such as ".json"
// or ".tar.gz".
type FileExtension struct{ strong.Text[FileExtension] }

func (FileExtension) rule() validation.Validator[string] { return fileExtensionRule }

// IsValidFormat reports whether the value is a dotted extension.
func (e FileExtension) IsValidFormat() bool { return fileExtensionRule(e.Value()) == nil }

// WithoutDot returns the extension without its leading dot.
func (e FileExtension) WithoutDot() string {
	return strings.TrimPrefix(e.Value(), ".")
}

// FilePath is a relative or absolute file system path.
type FilePath struct{ strong.Text[FilePath] }

func (FilePath) rule() validation.Validator[string] { return filePathRule }

// IsValidFormat reports whether the value is a usable path.
func (p FilePath) IsValidFormat() bool { return filePathRule(p.Value()) == nil }

// Base returns the last element of the path.
func (p FilePath) Base() string {
	return filepath.Base(p.Value())
}

// Dir returns all but the last element of the path.
func (p FilePath) Dir() FilePath {
	return strong.From[FilePath](filepath.Dir(p.Value()))
}

// Extension returns the extension of the last element, which is empty when
// there is none.
func (p FilePath) Extension() FileExtension {
	return strong.From[FileExtension](filepath.Ext(p.Value()))
}

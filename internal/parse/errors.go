package parse

// File errors.go defines the parser's error taxonomy. The default pipeline
// never returns these: unparseable input degrades to a verb-only command and
// failed binds leave the entity unset. They are exported as an extension
// point for stricter grammars layered on top of this one.

import (
	"fmt"
	"strings"
)

// UnknownWordError reports a word with no vocabulary entry.
type UnknownWordError struct {
	Word string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("I don't know the word %q.", e.Word)
}

// AmbiguousReferenceError reports a span that matched more than one entity.
type AmbiguousReferenceError struct {
	Noun    string
	Options []string
}

func (e *AmbiguousReferenceError) Error() string {
	return fmt.Sprintf("Which %s do you mean? I can see: %s.", e.Noun, strings.Join(e.Options, ", "))
}

// MissingObjectError reports a verb that requires an object but got none.
type MissingObjectError struct {
	Verb string
}

func (e *MissingObjectError) Error() string {
	return fmt.Sprintf("What do you want to %s?", e.Verb)
}

// MalformedCommandError reports input whose shape matched no known syntax.
type MalformedCommandError struct {
	Message string
}

func (e *MalformedCommandError) Error() string {
	return e.Message
}

// Package parse implements the command parsing and entity-binding pipeline:
// tokenizer, vocabulary, syntax-pattern matcher, per-session pronoun context,
// object binder, and the Parser that ties them together.
package parse

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenType classifies a token.
type TokenType int

const (
	TokenWord TokenType = iota
	TokenQuotedString
	TokenNumber
	TokenPunctuation
)

func (t TokenType) String() string {
	switch t {
	case TokenWord:
		return "WORD"
	case TokenQuotedString:
		return "QUOTED_STRING"
	case TokenNumber:
		return "NUMBER"
	case TokenPunctuation:
		return "PUNCTUATION"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token is the smallest lexical unit of a command line. Word values are
// lowercased; quoted strings keep their case with the quotes stripped.
type Token struct {
	Type     TokenType
	Value    string
	Position int
}

func (tok Token) String() string {
	return fmt.Sprintf("Token(%s, %q, %d)", tok.Type, tok.Value, tok.Position)
}

// Tokenize splits a raw command line into tokens.
//
// A line that starts with a double quote is the say shorthand: it yields a
// synthetic "say" word token followed by one quoted-string token holding the
// rest of the line. Otherwise the line is scanned left to right, and at each
// non-space position the first of these wins: a quoted span (quotes
// stripped), a digit run, a single punctuation character, or a word running
// to the next space or punctuation character. There are no error cases;
// anything unmatched is a word.
func Tokenize(line string) []Token {
	if strings.HasPrefix(line, `"`) {
		toks := []Token{{Type: TokenWord, Value: "say", Position: 0}}
		if content := strings.TrimSpace(line[1:]); content != "" {
			toks = append(toks, Token{Type: TokenQuotedString, Value: content, Position: 1})
		}
		return toks
	}

	var toks []Token
	i := 0
	for i < len(line) {
		r, size := utf8.DecodeRuneInString(line[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}

		start := i
		if r == '"' {
			if end := strings.IndexByte(line[i+1:], '"'); end >= 0 {
				toks = append(toks, Token{Type: TokenQuotedString, Value: line[i+1 : i+1+end], Position: start})
				i += end + 2
				continue
			}
			// unterminated quote: falls through to the word rule
		}
		if r >= '0' && r <= '9' {
			j := i
			for j < len(line) && line[j] >= '0' && line[j] <= '9' {
				j++
			}
			toks = append(toks, Token{Type: TokenNumber, Value: line[i:j], Position: start})
			i = j
			continue
		}
		if isPunctuation(r) {
			toks = append(toks, Token{Type: TokenPunctuation, Value: string(r), Position: start})
			i += size
			continue
		}

		j := i
		for j < len(line) {
			r2, size2 := utf8.DecodeRuneInString(line[j:])
			if unicode.IsSpace(r2) || isPunctuation(r2) {
				break
			}
			j += size2
		}
		toks = append(toks, Token{Type: TokenWord, Value: strings.ToLower(line[i:j]), Position: start})
		i = j
	}
	return toks
}

func isPunctuation(r rune) bool {
	switch r {
	case '.', ',', ';', ':', '!', '?':
		return true
	}
	return false
}

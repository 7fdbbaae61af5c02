package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Tokenize(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect []Token
	}{
		{
			name:   "empty line",
			input:  "",
			expect: nil,
		},
		{
			name:   "only spaces",
			input:  "   ",
			expect: nil,
		},
		{
			name:  "words are lowercased",
			input: "Look NORTH",
			expect: []Token{
				{Type: TokenWord, Value: "look", Position: 0},
				{Type: TokenWord, Value: "north", Position: 5},
			},
		},
		{
			name:  "digit run is a number",
			input: "get 3 coins",
			expect: []Token{
				{Type: TokenWord, Value: "get", Position: 0},
				{Type: TokenNumber, Value: "3", Position: 4},
				{Type: TokenWord, Value: "coins", Position: 6},
			},
		},
		{
			name:  "trailing punctuation splits off",
			input: "wait!",
			expect: []Token{
				{Type: TokenWord, Value: "wait", Position: 0},
				{Type: TokenPunctuation, Value: "!", Position: 4},
			},
		},
		{
			name:  "quoted span keeps case and drops quotes",
			input: `say "Hello There"`,
			expect: []Token{
				{Type: TokenWord, Value: "say", Position: 0},
				{Type: TokenQuotedString, Value: "Hello There", Position: 4},
			},
		},
		{
			name:  "unterminated quote falls back to a word",
			input: `say "oops`,
			expect: []Token{
				{Type: TokenWord, Value: "say", Position: 0},
				{Type: TokenWord, Value: `"oops`, Position: 4},
			},
		},
		{
			name:  "leading quote is the say shorthand",
			input: `"hello everyone`,
			expect: []Token{
				{Type: TokenWord, Value: "say", Position: 0},
				{Type: TokenQuotedString, Value: "hello everyone", Position: 1},
			},
		},
		{
			name:  "bare leading quote yields just the verb",
			input: `"`,
			expect: []Token{
				{Type: TokenWord, Value: "say", Position: 0},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := Tokenize(tc.input)

			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_TokenType_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("WORD", TokenWord.String())
	assert.Equal("QUOTED_STRING", TokenQuotedString.String())
	assert.Equal("NUMBER", TokenNumber.String())
	assert.Equal("PUNCTUATION", TokenPunctuation.String())
}

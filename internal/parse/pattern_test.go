package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CompilePattern(t *testing.T) {
	testCases := []struct {
		name      string
		template  string
		expectErr bool
	}{
		{
			name:     "all three slots",
			template: "VERB SUBJECT with INSTRUMENT",
		},
		{
			name:     "bare verb",
			template: "VERB",
		},
		{
			name:      "unknown slot name",
			template:  "VERB OBJECT",
			expectErr: true,
		},
		{
			name:      "empty template",
			template:  "",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			_, err := CompilePattern(tc.template, 10)

			if tc.expectErr {
				assert.Error(err)
			} else {
				assert.NoError(err)
			}
		})
	}
}

func Test_SyntaxPattern_Match(t *testing.T) {
	testCases := []struct {
		name     string
		template string
		input    string
		expect   Bindings
		expectOK bool
	}{
		{
			name:     "standard preposition",
			template: "VERB SUBJECT with INSTRUMENT",
			input:    "unlock door with brass key",
			expect: Bindings{
				Verb:        "unlock",
				Subject:     "door",
				Instrument:  "brass key",
				Preposition: "with",
			},
			expectOK: true,
		},
		{
			name:     "multi-word subject stops at the literal",
			template: "VERB SUBJECT in INSTRUMENT",
			input:    "put long sword in chest",
			expect: Bindings{
				Verb:           "put",
				Subject:        "long sword",
				Instrument:     "chest",
				Preposition:    "in",
				ReversedSyntax: true,
			},
			expectOK: true,
		},
		{
			name:     "reversed preposition binds instrument first",
			template: "VERB INSTRUMENT to SUBJECT",
			input:    "give sword to guard",
			expect: Bindings{
				Verb:           "give",
				Subject:        "guard",
				Instrument:     "sword",
				Preposition:    "to",
				ReversedSyntax: true,
			},
			expectOK: true,
		},
		{
			name:     "verb-subject wants a second token",
			template: "VERB SUBJECT",
			input:    "look",
			expectOK: false,
		},
		{
			name:     "bare verb matches with trailing tokens",
			template: "VERB",
			input:    "look sword",
			expect:   Bindings{Verb: "look"},
			expectOK: true,
		},
		{
			name:     "missing literal fails",
			template: "VERB SUBJECT with INSTRUMENT",
			input:    "get sword",
			expectOK: false,
		},
		{
			name:     "no tokens never matches",
			template: "VERB",
			input:    "",
			expectOK: false,
		},
	}

	vocab := DefaultVocabulary()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			pat, err := CompilePattern(tc.template, 10)
			assert.NoError(err)

			actual, ok := pat.Match(Tokenize(tc.input), vocab)

			assert.Equal(tc.expectOK, ok)
			if tc.expectOK {
				assert.Equal(tc.expect, actual)
			}
		})
	}
}

func Test_DefaultPatterns_order(t *testing.T) {
	assert := assert.New(t)

	patterns := DefaultPatterns()

	assert.NotEmpty(patterns)
	for i := 1; i < len(patterns); i++ {
		assert.GreaterOrEqual(patterns[i-1].Priority, patterns[i].Priority,
			"catalog must be sorted by descending priority")
	}
	assert.Equal(PriorityContainer, patterns[0].Priority)
	assert.Equal("VERB", patterns[len(patterns)-1].Template)
}

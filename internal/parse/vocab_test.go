package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ExpandWord_slots(t *testing.T) {
	v := DefaultVocabulary()

	testCases := []struct {
		name     string
		word     string
		position int
		total    int
		expect   string
	}{
		{
			name:     "w alone is the direction",
			word:     "w",
			position: 0,
			total:    1,
			expect:   "west",
		},
		{
			name:     "w in an interior slot is the preposition",
			word:     "w",
			position: 1,
			total:    3,
			expect:   "with",
		},
		{
			name:     "w in the final slot is the direction again",
			word:     "w",
			position: 2,
			total:    3,
			expect:   "west",
		},
		{
			name:     "u interior expands to using",
			word:     "u",
			position: 1,
			total:    4,
			expect:   "using",
		},
		{
			name:     "i alone expands to inventory",
			word:     "i",
			position: 0,
			total:    1,
			expect:   "inventory",
		},
		{
			name:     "i interior expands to in",
			word:     "i",
			position: 2,
			total:    4,
			expect:   "in",
		},
		{
			name:     "plain abbreviation ignores slot",
			word:     "dr",
			position: 0,
			total:    2,
			expect:   "drop",
		},
		{
			name:     "synonym resolves",
			word:     "grab",
			position: 0,
			total:    2,
			expect:   "get",
		},
		{
			name:     "case-insensitive",
			word:     "BYE",
			position: 0,
			total:    1,
			expect:   "quit",
		},
		{
			name:     "unknown word passes through",
			word:     "xylophone",
			position: 0,
			total:    1,
			expect:   "xylophone",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := v.ExpandWord(tc.word, tc.position, tc.total)

			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_ExpandWord_singlePasses(t *testing.T) {
	assert := assert.New(t)

	// "x" abbreviates to "take", which the synonym pass maps to "get"; the
	// result is never fed back into either table.
	v := NewBuilder().
		Defaults().
		Abbreviation("x", "take").
		Synonym("get", "acquire").
		Build()

	assert.Equal("get", v.Expand("x"))
}

func Test_Vocabulary_classifiers(t *testing.T) {
	assert := assert.New(t)

	v := DefaultVocabulary()

	assert.True(v.IsVerb("look"))
	assert.True(v.IsVerb("grab"), "synonyms expand before the verb check")
	assert.True(v.IsVerb("l"), "abbreviations expand before the verb check")
	assert.False(v.IsVerb("xyzzy"))

	assert.True(v.IsDirection("north"))
	assert.True(v.IsDirection("n"))
	assert.False(v.IsDirection("sideways"))

	assert.True(v.IsStandardPreposition("with"))
	assert.False(v.IsReversedPreposition("with"))
	assert.True(v.IsReversedPreposition("to"))
	assert.True(v.IsPreposition("from"))
	assert.False(v.IsPreposition("sword"))

	assert.True(v.IsCommunicationVerb("say"))
	assert.True(v.IsCommunicationVerb("tell"))
	assert.False(v.IsCommunicationVerb("look"))

	assert.True(v.IsAdverb("carefully"))
	assert.False(v.IsAdverb("sword"))
}

func Test_Suggest(t *testing.T) {
	testCases := []struct {
		name     string
		word     string
		expect   string
		expectOK bool
	}{
		{
			name:     "one letter off a verb",
			word:     "lok",
			expect:   "look",
			expectOK: true,
		},
		{
			name:     "one letter off a direction",
			word:     "nort",
			expect:   "north",
			expectOK: true,
		},
		{
			name:     "nothing close enough",
			word:     "xylophone",
			expectOK: false,
		},
		{
			name:     "exact words get no suggestion",
			word:     "look",
			expectOK: false,
		},
	}

	v := DefaultVocabulary()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, ok := v.Suggest(tc.word)

			assert.Equal(tc.expectOK, ok)
			if tc.expectOK {
				assert.Equal(tc.expect, actual)
			}
		})
	}
}

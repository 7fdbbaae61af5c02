package parse

// File vocab.go holds the Vocabulary: abbreviation, synonym, verb,
// preposition, adverb, and direction tables, with position-aware expansion.

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"
)

// PrepositionType classifies how a preposition arranges its surrounding
// spans.
type PrepositionType int

const (
	// PrepStandard prepositions read subject-first: "attack troll with sword".
	PrepStandard PrepositionType = iota

	// PrepReversed prepositions read instrument-first: "give sword to guard".
	PrepReversed
)

// slotKind is the lexical slot a word occupies within a command. Abbreviation
// expansion is keyed by (abbreviation, slot): "w" means "west" as a verb or
// final word but "with" in an interior (preposition) slot.
type slotKind int

const (
	slotVerb slotKind = iota
	slotInterior
	slotFinal
)

func slotFor(position, total int) slotKind {
	switch {
	case position == 0:
		return slotVerb
	case position >= total-1:
		return slotFinal
	default:
		return slotInterior
	}
}

// abbrevEntry is one row of the abbreviation table. InPrep is the expansion
// used in interior slots when set; Default is used everywhere else.
type abbrevEntry struct {
	Default string
	InPrep  string
}

// Vocabulary owns the word tables for the grammar. It is built once at
// startup (see Builder and DefaultVocabulary) and is read-only afterwards, so
// many sessions may share one instance without locking. Registration must not
// race live parsing.
type Vocabulary struct {
	abbreviations map[string]abbrevEntry
	synonyms      map[string]string
	verbs         map[string]bool
	prepositions  map[string]PrepositionType
	adverbs       map[string]bool
	directions    map[string]bool
	commVerbs     map[string]bool

	log *zap.Logger
}

// NewVocabulary creates an empty Vocabulary. Most callers want
// DefaultVocabulary or a Builder instead.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{
		abbreviations: make(map[string]abbrevEntry),
		synonyms:      make(map[string]string),
		verbs:         make(map[string]bool),
		prepositions:  make(map[string]PrepositionType),
		adverbs:       make(map[string]bool),
		directions:    make(map[string]bool),
		commVerbs:     make(map[string]bool),
		log:           zap.NewNop(),
	}
}

// SetLogger sets the logger used for expansion tracing. Passing nil restores
// the no-op logger.
func (v *Vocabulary) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	v.log = log
}

// AddAbbreviation registers an abbreviation with the same expansion in every
// slot.
func (v *Vocabulary) AddAbbreviation(abbr, full string) {
	v.abbreviations[strings.ToLower(abbr)] = abbrevEntry{Default: strings.ToLower(full)}
}

// AddSlottedAbbreviation registers an abbreviation that expands differently
// when it occupies an interior (preposition) slot.
func (v *Vocabulary) AddSlottedAbbreviation(abbr, def, inPrep string) {
	v.abbreviations[strings.ToLower(abbr)] = abbrevEntry{
		Default: strings.ToLower(def),
		InPrep:  strings.ToLower(inPrep),
	}
}

// AddSynonym registers a synonym for a base word. Synonyms are applied in one
// pass after abbreviation expansion and are never re-expanded.
func (v *Vocabulary) AddSynonym(synonym, base string) {
	v.synonyms[strings.ToLower(synonym)] = strings.ToLower(base)
}

// AddVerb registers a known verb.
func (v *Vocabulary) AddVerb(verb string) {
	v.verbs[strings.ToLower(verb)] = true
}

// AddPreposition registers a preposition with its type.
func (v *Vocabulary) AddPreposition(prep string, typ PrepositionType) {
	v.prepositions[strings.ToLower(prep)] = typ
}

// AddAdverb registers an adverb.
func (v *Vocabulary) AddAdverb(adverb string) {
	v.adverbs[strings.ToLower(adverb)] = true
}

// AddDirection registers a movement direction.
func (v *Vocabulary) AddDirection(direction string) {
	v.directions[strings.ToLower(direction)] = true
}

// AddCommunicationVerb registers a verb whose subject is a literal message
// rather than an entity reference. Communication commands never touch the
// pronoun context and their message text is preserved verbatim.
func (v *Vocabulary) AddCommunicationVerb(verb string) {
	v.commVerbs[strings.ToLower(verb)] = true
}

// ExpandWord expands abbreviations and then resolves synonyms for the word at
// the given position out of total words. Both passes are single-level: an
// abbreviation's expansion is not looked up again as an abbreviation, and a
// synonym's target is not looked up again as a synonym.
//
// The first word and the final word of a command always take an
// abbreviation's default expansion; interior words prefer the
// preposition-slot expansion when one is registered.
func (v *Vocabulary) ExpandWord(word string, position, total int) string {
	word = strings.ToLower(word)
	original := word

	if entry, ok := v.abbreviations[word]; ok {
		if slotFor(position, total) == slotInterior && entry.InPrep != "" {
			word = entry.InPrep
		} else {
			word = entry.Default
		}
	}

	if base, ok := v.synonyms[word]; ok {
		word = base
	}

	if word != original {
		v.log.Debug("expanded word",
			zap.String("word", original),
			zap.String("expansion", word),
			zap.Int("position", position))
	}
	return word
}

// Expand expands a word outside of any particular sentence slot, using
// default abbreviation expansions.
func (v *Vocabulary) Expand(word string) string {
	return v.ExpandWord(word, 0, 1)
}

// IsVerb reports whether the word, after expansion, is a known verb.
func (v *Vocabulary) IsVerb(word string) bool {
	return v.verbs[v.Expand(word)]
}

// IsPreposition reports whether the word is a known preposition.
func (v *Vocabulary) IsPreposition(word string) bool {
	_, ok := v.prepositions[strings.ToLower(word)]
	return ok
}

// IsStandardPreposition reports whether the word is a subject-first
// preposition.
func (v *Vocabulary) IsStandardPreposition(word string) bool {
	typ, ok := v.prepositions[strings.ToLower(word)]
	return ok && typ == PrepStandard
}

// IsReversedPreposition reports whether the word is an instrument-first
// preposition.
func (v *Vocabulary) IsReversedPreposition(word string) bool {
	typ, ok := v.prepositions[strings.ToLower(word)]
	return ok && typ == PrepReversed
}

// IsAdverb reports whether the word is a known adverb.
func (v *Vocabulary) IsAdverb(word string) bool {
	return v.adverbs[strings.ToLower(word)]
}

// IsDirection reports whether the word, after expansion, is a known movement
// direction.
func (v *Vocabulary) IsDirection(word string) bool {
	return v.directions[v.Expand(word)]
}

// IsCommunicationVerb reports whether the word is a registered communication
// verb.
func (v *Vocabulary) IsCommunicationVerb(word string) bool {
	return v.commVerbs[strings.ToLower(word)]
}

// maxSuggestDistance is the largest edit distance Suggest will bridge.
const maxSuggestDistance = 2

// Suggest returns the known verb or direction closest to the given word by
// edit distance, for "did you mean" messaging. The second return is false
// when nothing is close enough.
func (v *Vocabulary) Suggest(word string) (string, bool) {
	word = strings.ToLower(word)
	best := ""
	bestDist := maxSuggestDistance + 1
	consider := func(candidate string) {
		d := levenshtein.ComputeDistance(word, candidate)
		if d < bestDist || (d == bestDist && candidate < best) {
			best = candidate
			bestDist = d
		}
	}
	for verb := range v.verbs {
		consider(verb)
	}
	for dir := range v.directions {
		consider(dir)
	}
	if best == "" || best == word {
		return "", false
	}
	return best, true
}

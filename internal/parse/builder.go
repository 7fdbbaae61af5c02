package parse

// File builder.go holds the Builder used to assemble a Vocabulary in one
// explicit startup phase, plus the stock grammar.

// Builder assembles a Vocabulary through chained registration calls. It
// exists so subsystems can extend the grammar during a single startup phase
// instead of scattering registrations across import-time side effects.
type Builder struct {
	v *Vocabulary
}

// NewBuilder returns a Builder over an empty Vocabulary.
func NewBuilder() *Builder {
	return &Builder{v: NewVocabulary()}
}

// Defaults registers the stock grammar: compass directions, the standard and
// reversed preposition tables, common abbreviations (including the slotted
// ones like "w"), synonyms, adverbs, and the communication verbs.
func (b *Builder) Defaults() *Builder {
	for _, prep := range []string{"with", "using", "by", "via", "through", "underneath", "beneath", "under"} {
		b.v.AddPreposition(prep, PrepStandard)
	}
	for _, prep := range []string{
		"to", "onto", "toward", "towards", "on", "upon", "over",
		"in", "into", "inside", "at", "around", "about", "from",
	} {
		b.v.AddPreposition(prep, PrepReversed)
	}

	for _, dir := range []string{
		"north", "south", "east", "west",
		"northeast", "northwest", "southeast", "southwest",
		"up", "down", "in", "out",
	} {
		b.v.AddDirection(dir)
	}

	abbreviations := map[string]string{
		"g":   "get",
		"dr":  "drop",
		"fr":  "from",
		"inv": "inventory",
		"l":   "look",
		"k":   "kill",
		"n":   "north",
		"s":   "south",
		"e":   "east",
		"ne":  "northeast",
		"nw":  "northwest",
		"se":  "southeast",
		"sw":  "southwest",
		"d":   "down",
		"wi":  "with",
		"sh":  "shout",
	}
	for abbr, full := range abbreviations {
		b.v.AddAbbreviation(abbr, full)
	}

	// Slot-sensitive abbreviations: one letter, two meanings depending on
	// whether it lands in a preposition slot.
	b.v.AddSlottedAbbreviation("w", "west", "with")
	b.v.AddSlottedAbbreviation("u", "up", "using")
	b.v.AddSlottedAbbreviation("i", "inventory", "in")
	b.v.AddSlottedAbbreviation("t", "treasure", "to")

	synonyms := map[string]string{
		"grab":    "get",
		"take":    "get",
		"discard": "drop",
		"throw":   "drop",
		"toss":    "drop",
		"examine": "look",
		"check":   "look",
		"inspect": "look",
		"attack":  "kill",
		"fight":   "kill",
		"bye":     "quit",
		"go":      "move",
	}
	for syn, base := range synonyms {
		b.v.AddSynonym(syn, base)
	}

	for _, adv := range []string{
		"carefully", "quickly", "slowly", "quietly", "loudly",
		"briefly", "again", "now", "away", "back",
	} {
		b.v.AddAdverb(adv)
	}

	for _, verb := range []string{
		"move", "get", "drop", "look", "kill", "inventory", "quit", "put",
		"give", "unlock", "open", "close", "help", "who", "score",
	} {
		b.v.AddVerb(verb)
	}

	for _, verb := range []string{"say", "tell", "shout", "act", "whisper"} {
		b.v.AddVerb(verb)
		b.v.AddCommunicationVerb(verb)
	}

	return b
}

// Abbreviation registers an abbreviation with one expansion for every slot.
func (b *Builder) Abbreviation(abbr, full string) *Builder {
	b.v.AddAbbreviation(abbr, full)
	return b
}

// SlottedAbbreviation registers an abbreviation with a distinct expansion for
// interior (preposition) slots.
func (b *Builder) SlottedAbbreviation(abbr, def, inPrep string) *Builder {
	b.v.AddSlottedAbbreviation(abbr, def, inPrep)
	return b
}

// Synonym registers a synonym for a base word.
func (b *Builder) Synonym(synonym, base string) *Builder {
	b.v.AddSynonym(synonym, base)
	return b
}

// Verb registers a known verb.
func (b *Builder) Verb(verb string) *Builder {
	b.v.AddVerb(verb)
	return b
}

// CommunicationVerb registers a verb whose arguments are literal message
// text.
func (b *Builder) CommunicationVerb(verb string) *Builder {
	b.v.AddVerb(verb)
	b.v.AddCommunicationVerb(verb)
	return b
}

// Preposition registers a preposition with its type.
func (b *Builder) Preposition(prep string, typ PrepositionType) *Builder {
	b.v.AddPreposition(prep, typ)
	return b
}

// Adverb registers an adverb.
func (b *Builder) Adverb(adverb string) *Builder {
	b.v.AddAdverb(adverb)
	return b
}

// Direction registers a movement direction.
func (b *Builder) Direction(direction string) *Builder {
	b.v.AddDirection(direction)
	return b
}

// Build returns the assembled Vocabulary. The Builder must not be used after
// Build; the Vocabulary is treated as read-only from here on.
func (b *Builder) Build() *Vocabulary {
	v := b.v
	b.v = nil
	return v
}

// DefaultVocabulary builds a Vocabulary holding the stock grammar.
func DefaultVocabulary() *Vocabulary {
	return NewBuilder().Defaults().Build()
}

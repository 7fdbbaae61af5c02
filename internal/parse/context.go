package parse

// File context.go holds the per-session command context used for pronoun
// resolution.

import (
	"strings"

	"github.com/mkriley/mudlark/internal/game"
)

// EntityLookup resolves an EntityRef to a live entity. The second return is
// false when the referent no longer exists, which is how stale pronoun
// references die instead of dangling.
type EntityLookup interface {
	Lookup(ref game.EntityRef) (game.Entity, bool)
}

// Context is one session's cross-command memory. It stores weak references
// (stable IDs, not handles) to the entities most recently acted on so that
// "it", "him", "her", and "them" can be resolved on later commands.
//
// A Context belongs to exactly one session and is only ever touched by that
// session's sequential command stream; it needs no locking.
type Context struct {
	// LastVerb is the verb of the most recent non-communication command.
	LastVerb string

	lastSubject    game.EntityRef
	lastInstrument game.EntityRef
	lastThem       game.EntityRef
	lastHim        game.EntityRef
	lastHer        game.EntityRef
	lastIt         game.EntityRef
}

// NewContext returns an empty Context.
func NewContext() *Context {
	return &Context{}
}

// Update commits a parsed command's outcome to the context. A creature
// subject is remembered as "them" (and as "him" or "her" when its gender is
// known); anything else is remembered as "it". Callers must not invoke Update
// for communication commands, whose subject is message text rather than an
// entity.
func (c *Context) Update(verb string, subject, instrument game.Entity) {
	if verb != "" {
		c.LastVerb = verb
	}

	if subject != nil {
		ref := subject.Ref()
		if subject.IsCreature() {
			c.lastThem = ref
			switch subject.PronounGender() {
			case game.GenderMale:
				c.lastHim = ref
			case game.GenderFemale:
				c.lastHer = ref
			}
		} else {
			c.lastIt = ref
		}
		c.lastSubject = ref
	}

	if instrument != nil {
		c.lastInstrument = instrument.Ref()
	}
}

// LastSubject returns the weak reference to the most recent subject.
func (c *Context) LastSubject() game.EntityRef {
	return c.lastSubject
}

// LastInstrument returns the weak reference to the most recent instrument.
func (c *Context) LastInstrument() game.EntityRef {
	return c.lastInstrument
}

// ResolvePronoun maps "it", "him", "her", or "them" (case-insensitively) to
// the live entity the matching slot refers to. It returns nil for any other
// word, for an empty slot, and for a referent that no longer exists.
func (c *Context) ResolvePronoun(word string, lookup EntityLookup) game.Entity {
	var ref game.EntityRef
	switch strings.ToLower(word) {
	case "it":
		ref = c.lastIt
	case "him":
		ref = c.lastHim
	case "her":
		ref = c.lastHer
	case "them":
		ref = c.lastThem
	default:
		return nil
	}

	if ref.Zero() || lookup == nil {
		return nil
	}
	ent, ok := lookup.Lookup(ref)
	if !ok {
		return nil
	}
	return ent
}

// IsPronoun reports whether the word is one of the four resolvable pronouns.
func IsPronoun(word string) bool {
	switch strings.ToLower(word) {
	case "it", "him", "her", "them":
		return true
	}
	return false
}

package parse

// File pattern.go holds the syntax-pattern library and the lock-step matcher.

import (
	"fmt"
	"sort"
	"strings"
)

type componentKind int

const (
	compLiteral componentKind = iota
	compVerb
	compSubject
	compInstrument
)

// component is one element of a compiled pattern: either a literal word that
// must appear verbatim, or a variable slot.
type component struct {
	kind    componentKind
	literal string
}

// SyntaxPattern is a compiled command template such as
// "VERB SUBJECT with INSTRUMENT". All-caps words in the template are variable
// slots; everything else is a literal. Priority breaks ties between patterns
// that could both match: higher wins, and the catalog is evaluated in
// priority order with the first full match taken.
type SyntaxPattern struct {
	Template string
	Priority int

	components []component
}

// CompilePattern compiles a template string into a SyntaxPattern. The only
// recognized variable slots are VERB, SUBJECT, and INSTRUMENT.
func CompilePattern(template string, priority int) (SyntaxPattern, error) {
	p := SyntaxPattern{Template: template, Priority: priority}
	for _, part := range strings.Fields(template) {
		if part == strings.ToUpper(part) && part != strings.ToLower(part) {
			switch part {
			case "VERB":
				p.components = append(p.components, component{kind: compVerb})
			case "SUBJECT":
				p.components = append(p.components, component{kind: compSubject})
			case "INSTRUMENT":
				p.components = append(p.components, component{kind: compInstrument})
			default:
				return SyntaxPattern{}, fmt.Errorf("unknown variable slot %q in pattern %q", part, template)
			}
		} else {
			p.components = append(p.components, component{kind: compLiteral, literal: strings.ToLower(part)})
		}
	}
	if len(p.components) == 0 {
		return SyntaxPattern{}, fmt.Errorf("empty pattern")
	}
	return p, nil
}

// mustPattern compiles a template or panics. For the built-in catalog only.
func mustPattern(template string, priority int) SyntaxPattern {
	p, err := CompilePattern(template, priority)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// Bindings is the result of a successful pattern match. Empty Subject or
// Instrument means the slot was present in the pattern but bound nothing.
type Bindings struct {
	Verb       string
	Subject    string
	Instrument string

	// Preposition is the matched literal that is a known preposition, if
	// any.
	Preposition string

	// ReversedSyntax reports whether that preposition is of the
	// instrument-first type.
	ReversedSyntax bool
}

// Match walks the pattern and the tokens in lock step. A literal consumes
// exactly one token if it matches case-insensitively and fails the whole
// pattern otherwise; VERB consumes exactly one token; SUBJECT and INSTRUMENT
// are greedy spans that consume every remaining token when the slot is
// pattern-final and otherwise everything up to (excluding) the token matching
// the next literal. There is no backtracking: the first literal boundary
// wins.
//
// On a full match the bindings also record which matched literal is a known
// preposition and whether it is of the reversed (instrument-first) type.
func (p SyntaxPattern) Match(tokens []Token, vocab *Vocabulary) (Bindings, bool) {
	if len(tokens) == 0 {
		return Bindings{}, false
	}

	var b Bindings
	pi, ti := 0, 0
	for pi < len(p.components) && ti < len(tokens) {
		c := p.components[pi]
		switch c.kind {
		case compLiteral:
			if !strings.EqualFold(tokens[ti].Value, c.literal) {
				return Bindings{}, false
			}
			ti++
			pi++

		case compVerb:
			b.Verb = tokens[ti].Value
			ti++
			pi++

		case compSubject, compInstrument:
			start := ti
			if pi+1 >= len(p.components) {
				// pattern-final slot swallows the rest of the line
				ti = len(tokens)
			} else {
				next := p.components[pi+1]
				for ti < len(tokens) && !(next.kind == compLiteral && strings.EqualFold(tokens[ti].Value, next.literal)) {
					ti++
				}
			}
			span := joinValues(tokens[start:ti])
			if c.kind == compSubject {
				b.Subject = span
			} else {
				b.Instrument = span
			}
			pi++
		}
	}

	if pi < len(p.components) {
		return Bindings{}, false
	}

	for _, c := range p.components {
		if c.kind == compLiteral && vocab != nil && vocab.IsPreposition(c.literal) {
			b.Preposition = c.literal
			b.ReversedSyntax = vocab.IsReversedPreposition(c.literal)
		}
	}
	return b, true
}

func joinValues(tokens []Token) string {
	if len(tokens) == 0 {
		return ""
	}
	vals := make([]string, len(tokens))
	for i, tok := range tokens {
		vals[i] = tok.Value
	}
	return strings.Join(vals, " ")
}

// Catalog priorities. Container patterns outrank the generic preposition
// patterns so "put sword in chest" resolves as a container action; the bare
// verb-subject and verb patterns are the weakest.
const (
	PriorityContainer  = 20
	PriorityStandard   = 15
	PriorityReversed   = 15
	PriorityVerbObject = 11
	PriorityBareVerb   = 10
)

// DefaultPatterns returns the built-in pattern catalog, sorted by descending
// priority with declaration order preserved among equals.
func DefaultPatterns() []SyntaxPattern {
	patterns := []SyntaxPattern{
		mustPattern("VERB SUBJECT in INSTRUMENT", PriorityContainer),
		mustPattern("VERB SUBJECT from INSTRUMENT", PriorityContainer),

		mustPattern("VERB SUBJECT with INSTRUMENT", PriorityStandard),
		mustPattern("VERB SUBJECT using INSTRUMENT", PriorityStandard),
		mustPattern("VERB SUBJECT in INSTRUMENT", PriorityStandard),
		mustPattern("VERB SUBJECT on INSTRUMENT", PriorityStandard),
		mustPattern("VERB SUBJECT from INSTRUMENT", PriorityStandard),

		mustPattern("VERB INSTRUMENT to SUBJECT", PriorityReversed),
		mustPattern("VERB INSTRUMENT at SUBJECT", PriorityReversed),
		mustPattern("VERB INSTRUMENT onto SUBJECT", PriorityReversed),
		mustPattern("VERB INSTRUMENT into SUBJECT", PriorityReversed),

		mustPattern("VERB SUBJECT", PriorityVerbObject),
		mustPattern("VERB", PriorityBareVerb),
	}
	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].Priority > patterns[j].Priority
	})
	return patterns
}

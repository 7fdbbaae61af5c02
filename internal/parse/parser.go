package parse

// File parser.go holds the Parser, which ties the tokenizer, vocabulary,
// pattern catalog, binder, and context together into one entry point.

import (
	"sort"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/mkriley/mudlark/internal/game"
)

// Command is one fully parsed player command. Every non-empty input line
// produces at least a Verb; the other fields are filled in as the input
// allows. Original always carries the verbatim fragment the command came
// from, for handlers that need raw multi-word arguments.
type Command struct {
	Verb string

	// Subject is the raw text of the primary target span; SubjectEntity is
	// the live entity it bound to, nil when binding failed (the handler uses
	// Subject for its own error message). SubjectSentinel is set instead when
	// the span was a reserved word like "all".
	Subject         string
	SubjectEntity   game.Entity
	SubjectSentinel Sentinel

	Instrument         string
	InstrumentEntity   game.Entity
	InstrumentSentinel Sentinel

	// Preposition is the preposition literal that shaped the match, and
	// ReversedSyntax whether it is of the instrument-first type.
	Preposition    string
	ReversedSyntax bool

	// IsMovement marks direction commands produced by the movement
	// shortcuts.
	IsMovement bool

	// DirectMessage marks a tell produced by the player-name shortcut.
	DirectMessage bool

	Original string
}

// Parser converts raw input lines into Commands. One Parser (with its
// read-only Vocabulary) is shared by every session; all per-session state
// lives in the Context passed to Parse.
type Parser struct {
	vocab    *Vocabulary
	patterns []SyntaxPattern
	binder   *Binder
	log      *zap.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger for parse tracing.
func WithLogger(log *zap.Logger) Option {
	return func(p *Parser) {
		if log == nil {
			log = zap.NewNop()
		}
		p.log = log
	}
}

// WithPatterns replaces the built-in pattern catalog. The patterns are
// re-sorted by descending priority, preserving the given order among equals.
func WithPatterns(patterns []SyntaxPattern) Option {
	return func(p *Parser) {
		p.patterns = sortPatterns(patterns)
	}
}

// New creates a Parser over the given vocabulary with the default pattern
// catalog.
func New(vocab *Vocabulary, opts ...Option) *Parser {
	p := &Parser{
		vocab:    vocab,
		patterns: DefaultPatterns(),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.binder = NewBinder(p.log)
	return p
}

// Vocabulary returns the parser's vocabulary, for registration during
// startup.
func (p *Parser) Vocabulary() *Vocabulary {
	return p.vocab
}

// IsMovementCommand reports whether a verb is a movement direction.
func (p *Parser) IsMovementCommand(verb string) bool {
	return p.vocab.IsDirection(verb)
}

// Parse converts one raw input line into zero or more Commands. Chained
// input ("get sword, drop shield and look") yields one Command per fragment,
// in order. Parse never fails: the worst case for a non-empty fragment is a
// verb-only Command.
func (p *Parser) Parse(line string, actor *game.Player, view WorldView, ctx *Context) []*Command {
	if ctx == nil {
		ctx = NewContext()
	}

	var cmds []*Command
	for _, fragment := range splitChained(line) {
		if cmd := p.parseOne(fragment, actor, view, ctx); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func (p *Parser) parseOne(line string, actor *game.Player, view WorldView, ctx *Context) *Command {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	// leading-quote say shorthand bypasses everything else
	if strings.HasPrefix(line, `"`) {
		return &Command{
			Verb:     "say",
			Subject:  strings.TrimSpace(line[1:]),
			Original: line,
		}
	}

	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return nil
	}
	total := len(tokens)

	// direct message: a raw first token naming a player in the actor's room
	// turns the rest of the line into a tell
	if total > 1 && actor != nil && view != nil {
		for _, other := range view.PlayersIn(actor.CurrentRoom) {
			if strings.EqualFold(other.Name, tokens[0].Value) {
				p.log.Debug("direct-message shortcut", zap.String("target", other.Name))
				return &Command{
					Verb:          "tell",
					Subject:       other.Name,
					Instrument:    remainderAfterFields(line, 1),
					DirectMessage: true,
					Original:      line,
				}
			}
		}
	}

	originalVerb := tokens[0].Value
	tokens[0].Value = p.vocab.ExpandWord(tokens[0].Value, 0, total)
	verb := tokens[0].Value

	// communication verbs freeze the rest of the line: the message must
	// survive verbatim, so no other token is expanded
	comm := p.vocab.IsCommunicationVerb(verb)
	if !comm {
		for i := 1; i < total; i++ {
			tokens[i].Value = p.vocab.ExpandWord(tokens[i].Value, i, total)
		}
	}

	// "go <direction>" and bare-direction shortcuts
	if originalVerb == "go" && total > 1 && p.vocab.IsDirection(tokens[1].Value) {
		return &Command{
			Verb:       p.vocab.Expand(tokens[1].Value),
			IsMovement: true,
			Original:   line,
		}
	}
	if p.vocab.IsDirection(tokens[0].Value) {
		return &Command{
			Verb:       p.vocab.Expand(tokens[0].Value),
			IsMovement: true,
			Original:   line,
		}
	}

	cmd := p.matchPatterns(tokens)
	cmd.Original = line

	if comm {
		p.extractMessage(cmd, line)
		return cmd
	}

	if cmd.Subject != "" {
		cmd.SubjectEntity, cmd.SubjectSentinel = p.binder.Bind(cmd.Subject, actor, view, ctx)
	}
	if cmd.Instrument != "" {
		cmd.InstrumentEntity, cmd.InstrumentSentinel = p.binder.Bind(cmd.Instrument, actor, view, ctx)
	}

	ctx.Update(cmd.Verb, cmd.SubjectEntity, cmd.InstrumentEntity)

	p.log.Debug("parsed command",
		zap.String("verb", cmd.Verb),
		zap.String("subject", cmd.Subject),
		zap.String("instrument", cmd.Instrument))
	return cmd
}

// matchPatterns runs the priority-ordered catalog, taking the first full
// match. If nothing matches, a two-token line degrades to verb-subject and
// anything else to a bare verb, so a verb is always produced.
func (p *Parser) matchPatterns(tokens []Token) *Command {
	for _, pat := range p.patterns {
		b, ok := pat.Match(tokens, p.vocab)
		if !ok {
			continue
		}
		p.log.Debug("pattern matched",
			zap.String("pattern", pat.Template),
			zap.Int("priority", pat.Priority))
		return &Command{
			Verb:           b.Verb,
			Subject:        b.Subject,
			Instrument:     b.Instrument,
			Preposition:    b.Preposition,
			ReversedSyntax: b.ReversedSyntax,
		}
	}

	if len(tokens) == 2 {
		return &Command{Verb: tokens[0].Value, Subject: tokens[1].Value}
	}
	return &Command{Verb: tokens[0].Value}
}

// extractMessage overwrites a communication command's argument spans with the
// literal original text, so messages are never mangled by span heuristics or
// binding. For tell, the word after the verb is the target and everything
// after that is the message; for the other communication verbs the whole
// remainder is the message.
func (p *Parser) extractMessage(cmd *Command, line string) {
	cmd.Preposition = ""
	cmd.ReversedSyntax = false
	if cmd.Verb == "tell" {
		fields := strings.Fields(line)
		if len(fields) > 1 {
			cmd.Subject = strings.ToLower(fields[1])
		}
		cmd.Instrument = stripEnclosingQuotes(remainderAfterFields(line, 2))
		return
	}
	cmd.Subject = stripEnclosingQuotes(remainderAfterFields(line, 1))
}

// remainderAfterFields returns the trimmed remainder of line after its first
// n whitespace-delimited fields, preserving the original case and spacing of
// what is left.
func remainderAfterFields(line string, n int) string {
	i := 0
	for f := 0; f < n; f++ {
		for i < len(line) && unicode.IsSpace(rune(line[i])) {
			i++
		}
		for i < len(line) && !unicode.IsSpace(rune(line[i])) {
			i++
		}
	}
	return strings.TrimSpace(line[i:])
}

func stripEnclosingQuotes(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}

func sortPatterns(patterns []SyntaxPattern) []SyntaxPattern {
	sorted := make([]SyntaxPattern, len(patterns))
	copy(sorted, patterns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})
	return sorted
}

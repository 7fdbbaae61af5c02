// Package command routes parsed commands to their handlers. The registry
// maps verbs to handler functions and carries the help text shown for them;
// aliases point extra verbs at an existing handler.
package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mkriley/mudlark/internal/game"
	"github.com/mkriley/mudlark/internal/parse"
	"github.com/mkriley/mudlark/internal/session"
)

// Request is everything a handler needs to act on one parsed command.
type Request struct {
	Cmd   *parse.Command
	Actor *session.Session
	World *game.World
	View  *session.View
}

// Handler executes one command and returns the text to show the acting
// player. A returned error is reported to the player via its game message.
type Handler func(Request) (string, error)

type entry struct {
	handler Handler
	help    string
}

// Registry maps verbs to handlers.
type Registry struct {
	entries map[string]entry
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register binds a verb to a handler. Registering a verb twice is an error.
func (r *Registry) Register(verb, help string, h Handler) error {
	verb = strings.ToLower(verb)
	if _, ok := r.entries[verb]; ok {
		return fmt.Errorf("verb %q is already registered", verb)
	}
	if h == nil {
		return fmt.Errorf("verb %q: handler must not be nil", verb)
	}
	r.entries[verb] = entry{handler: h, help: help}
	return nil
}

// RegisterAlias points an extra verb at an already registered one. The alias
// shares the target's handler but is not listed in Help.
func (r *Registry) RegisterAlias(alias, verb string) error {
	verb = strings.ToLower(verb)
	alias = strings.ToLower(alias)
	e, ok := r.entries[verb]
	if !ok {
		return fmt.Errorf("alias %q: verb %q is not registered", alias, verb)
	}
	if _, ok := r.entries[alias]; ok {
		return fmt.Errorf("alias %q is already registered", alias)
	}
	r.entries[alias] = entry{handler: e.handler}
	return nil
}

// Lookup returns the handler for a verb.
func (r *Registry) Lookup(verb string) (Handler, bool) {
	e, ok := r.entries[strings.ToLower(verb)]
	if !ok {
		return nil, false
	}
	return e.handler, true
}

// HelpEntry is one verb and its help line.
type HelpEntry struct {
	Verb string
	Text string
}

// Help returns the help lines of every registered verb with help text,
// sorted by verb.
func (r *Registry) Help() []HelpEntry {
	var out []HelpEntry
	for verb, e := range r.entries {
		if e.help == "" {
			continue
		}
		out = append(out, HelpEntry{Verb: verb, Text: e.help})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Verb < out[j].Verb
	})
	return out
}

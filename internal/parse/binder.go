package parse

// File binder.go holds the object binder, which resolves text spans to live
// game entities.

import (
	"strings"

	"go.uber.org/zap"

	"github.com/mkriley/mudlark/internal/game"
)

// Sentinel is a reserved span the binder intercepts before entity search.
// Sentinels are returned to the caller as-is; the verb handler decides what
// "all" or "treasure" means for it.
type Sentinel string

const (
	SentinelNone     Sentinel = ""
	SentinelAll      Sentinel = "all"
	SentinelTreasure Sentinel = "treasure"
)

// WorldView is the world accessor the binder searches. It reads live, mutable
// state without locking; an entity bound here can be gone by the time a
// handler acts, and handlers must re-validate membership.
type WorldView interface {
	EntityLookup

	// OnlinePlayers returns every connected player, in any room.
	OnlinePlayers() []*game.Player

	// PlayersIn returns the players physically in the given room.
	PlayersIn(roomLabel string) []*game.Player

	// MobsIn returns the mobs in the given room.
	MobsIn(roomLabel string) []*game.Mob

	// ItemsIn returns the items on the ground in the given room.
	ItemsIn(roomLabel string) []*game.Item
}

// Binder resolves subject and instrument spans to entities. It holds no
// state of its own; everything it needs arrives per call.
type Binder struct {
	log *zap.Logger
}

// NewBinder returns a Binder that traces its decisions to the given logger.
// A nil logger disables tracing.
func NewBinder(log *zap.Logger) *Binder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Binder{log: log}
}

// Bind resolves a span of command text to an entity or a sentinel, searching
// in a fixed order with the first match winning:
//
//  1. any online player by exact name (world-wide, so spells like SUMMON can
//     target across rooms)
//  2. mobs in the actor's room by substring (the typical combat target)
//  3. the pronouns it/him/her/them, through the session context
//  4. the reserved spans "all" and "treasure"/"t"
//  5. the actor's inventory by exact item name (a carried item beats a
//     same-named one on the ground)
//  6. items on the ground in the actor's room by exact name
//  7. other players physically in the room by exact name
//
// No ambiguity scoring is done; when several entities in one tier share a
// name, whichever iterates first wins. An unresolvable span yields
// (nil, SentinelNone).
func (b *Binder) Bind(span string, actor *game.Player, view WorldView, ctx *Context) (game.Entity, Sentinel) {
	span = strings.TrimSpace(span)
	if span == "" || view == nil {
		return nil, SentinelNone
	}
	lower := strings.ToLower(span)

	for _, p := range view.OnlinePlayers() {
		if strings.EqualFold(p.Name, span) {
			b.log.Debug("bound span to online player", zap.String("span", span), zap.String("player", p.Name))
			return p, SentinelNone
		}
	}

	if actor != nil {
		for _, m := range view.MobsIn(actor.CurrentRoom) {
			if strings.Contains(strings.ToLower(m.Name), lower) {
				b.log.Debug("bound span to mob", zap.String("span", span), zap.String("mob", m.Label))
				return m, SentinelNone
			}
		}
	}

	if IsPronoun(lower) {
		ent := ctx.ResolvePronoun(lower, view)
		if ent != nil {
			b.log.Debug("resolved pronoun", zap.String("pronoun", lower), zap.Stringer("ref", ent.Ref()))
		}
		return ent, SentinelNone
	}

	switch lower {
	case "all":
		return nil, SentinelAll
	case "treasure", "t":
		return nil, SentinelTreasure
	}

	if actor != nil {
		if it := actor.Inventory.Find(span); it != nil {
			b.log.Debug("bound span to carried item", zap.String("span", span), zap.String("item", it.Label))
			return it, SentinelNone
		}

		for _, it := range view.ItemsIn(actor.CurrentRoom) {
			if strings.EqualFold(it.Name, span) {
				b.log.Debug("bound span to room item", zap.String("span", span), zap.String("item", it.Label))
				return it, SentinelNone
			}
		}

		for _, p := range view.PlayersIn(actor.CurrentRoom) {
			if p == actor {
				continue
			}
			if strings.EqualFold(p.Name, span) {
				return p, SentinelNone
			}
		}
	}

	b.log.Debug("span bound nothing", zap.String("span", span))
	return nil, SentinelNone
}

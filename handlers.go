package mudlark

import (
	"fmt"
	"strings"

	"github.com/mkriley/mudlark/internal/command"
	"github.com/mkriley/mudlark/internal/game"
	"github.com/mkriley/mudlark/internal/merrors"
)

// registerHandlers binds every built-in verb to its handler. The parser's
// vocabulary already maps synonyms and abbreviations onto these canonical
// verbs, so no aliases are needed for those.
func (eng *Engine) registerHandlers() error {
	reg := []struct {
		verb string
		help string
		h    command.Handler
	}{
		{"look", "describe the room you are in, or something in it", eng.cmdLook},
		{"move", "move in a direction: move <direction>", eng.cmdMove},
		{"score", "show your standing", eng.cmdScore},
		{"inventory", "list what you are carrying", eng.cmdInventory},
		{"say", "say something out loud to the room", eng.cmdSay},
		{"tell", "send a private message to another player", eng.cmdTell},
		{"shout", "shout something everyone can hear", eng.cmdShout},
		{"act", "perform an emote", eng.cmdAct},
		{"whisper", "whisper something to the room", eng.cmdWhisper},
		{"who", "list who is online", eng.cmdWho},
		{"help", "show this list of commands", eng.cmdHelp},
		{"quit", "leave the game", eng.cmdQuit},
	}

	for _, r := range reg {
		if err := eng.registry.Register(r.verb, r.help, r.h); err != nil {
			return err
		}
	}
	return eng.registry.RegisterAlias("emote", "act")
}

func (eng *Engine) cmdLook(req command.Request) (string, error) {
	if req.Cmd.Subject == "" {
		return eng.describeRoom(req.Actor.Player.CurrentRoom)
	}
	if req.Cmd.SubjectEntity == nil {
		return "", merrors.Commandf("You don't see any %q here.", req.Cmd.Subject)
	}

	switch e := req.Cmd.SubjectEntity.(type) {
	case *game.Item:
		return e.Description, nil
	case *game.Mob:
		return e.Description, nil
	case *game.Player:
		return fmt.Sprintf("%s is standing here.", e.Name), nil
	default:
		return req.Cmd.SubjectEntity.DisplayName(), nil
	}
}

func (eng *Engine) cmdMove(req command.Request) (string, error) {
	if req.Cmd.Subject == "" {
		return "", merrors.Commandf("Go where?")
	}
	dir := eng.parser.Vocabulary().Expand(req.Cmd.Subject)
	if !eng.parser.IsMovementCommand(dir) {
		return "", merrors.Commandf("%q isn't a direction you can go.", req.Cmd.Subject)
	}
	return eng.move(dir)
}

func (eng *Engine) cmdScore(req command.Request) (string, error) {
	p := req.Actor.Player
	room := req.World.Room(p.CurrentRoom)
	where := p.CurrentRoom
	if room != nil {
		where = room.Name
	}
	return fmt.Sprintf("You are %s, in %s, carrying %d items.", p.Name, where, len(p.Inventory)), nil
}

func (eng *Engine) cmdInventory(req command.Request) (string, error) {
	inv := req.Actor.Player.Inventory
	if len(inv) == 0 {
		return "You aren't carrying anything.", nil
	}

	var sb strings.Builder
	sb.WriteString("You are carrying:")
	for _, it := range inv {
		sb.WriteString("\n  ")
		sb.WriteString(it.Name)
	}
	return sb.String(), nil
}

func (eng *Engine) cmdSay(req command.Request) (string, error) {
	if req.Cmd.Subject == "" {
		return "", merrors.Commandf("Say what?")
	}
	return fmt.Sprintf("You say, %q", req.Cmd.Subject), nil
}

func (eng *Engine) cmdShout(req command.Request) (string, error) {
	if req.Cmd.Subject == "" {
		return "", merrors.Commandf("Shout what?")
	}
	return fmt.Sprintf("You shout, %q", strings.ToUpper(req.Cmd.Subject)), nil
}

func (eng *Engine) cmdWhisper(req command.Request) (string, error) {
	if req.Cmd.Subject == "" {
		return "", merrors.Commandf("Whisper what?")
	}
	return fmt.Sprintf("You whisper, %q", req.Cmd.Subject), nil
}

func (eng *Engine) cmdAct(req command.Request) (string, error) {
	if req.Cmd.Subject == "" {
		return "", merrors.Commandf("Do what?")
	}
	return fmt.Sprintf("%s %s", req.Actor.Player.Name, req.Cmd.Subject), nil
}

func (eng *Engine) cmdTell(req command.Request) (string, error) {
	if req.Cmd.Subject == "" {
		return "", merrors.Commandf("Tell whom?")
	}
	target, ok := req.View.Sessions.Find(req.Cmd.Subject)
	if !ok {
		return "", merrors.Commandf("There's nobody called %q online.", req.Cmd.Subject)
	}
	if req.Cmd.Instrument == "" {
		return "", merrors.Commandf("Tell %s what?", target.Player.Name)
	}
	return fmt.Sprintf("You tell %s, %q", target.Player.Name, req.Cmd.Instrument), nil
}

func (eng *Engine) cmdWho(req command.Request) (string, error) {
	players := req.View.Sessions.OnlinePlayers()

	var sb strings.Builder
	sb.WriteString("Online now:")
	for _, p := range players {
		sb.WriteString("\n  ")
		sb.WriteString(p.Name)
	}
	return sb.String(), nil
}

func (eng *Engine) cmdHelp(req command.Request) (string, error) {
	var sb strings.Builder
	sb.WriteString("Commands:")
	for _, e := range eng.registry.Help() {
		sb.WriteString(fmt.Sprintf("\n  %-10s %s", e.Verb, e.Text))
	}
	sb.WriteString("\nMost verbs can be abbreviated, and commands can be")
	sb.WriteString("\nchained with commas, \"and\", or \"then\".")
	return sb.String(), nil
}

func (eng *Engine) cmdQuit(req command.Request) (string, error) {
	eng.quit = true
	return "Goodbye!", nil
}

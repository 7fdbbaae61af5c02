// Package mudlark contains a CLI-driven engine for reading player commands,
// parsing them into world actions, and advancing the game continuously until
// the player quits.
package mudlark

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dekarrin/rosed"
	"go.uber.org/zap"

	"github.com/mkriley/mudlark/internal/command"
	"github.com/mkriley/mudlark/internal/game"
	"github.com/mkriley/mudlark/internal/input"
	"github.com/mkriley/mudlark/internal/merrors"
	"github.com/mkriley/mudlark/internal/parse"
	"github.com/mkriley/mudlark/internal/session"
	"github.com/mkriley/mudlark/internal/worldfile"
)

const consoleOutputWidth = 80

// Engine ties the parser, the world, and the command registry to an input
// and an output stream, and runs the main loop.
type Engine struct {
	world    *game.World
	parser   *parse.Parser
	registry *command.Registry
	sessions *session.Directory
	view     *session.View
	local    *session.Session

	in   input.Reader
	out  *bufio.Writer
	log  *zap.Logger
	quit bool
}

// New creates an engine ready to operate on the given input and output
// streams, with the world loaded from the world file at the given path.
//
// If nil is given for the input stream, stdin is used; if nil is given for
// the output stream, stdout. When both streams are the standard ones and
// direct input is not forced, input goes through readline for line editing
// and history.
func New(inputStream io.Reader, outputStream io.Writer, worldFilePath, playerName string, forceDirect bool, log *zap.Logger) (*Engine, error) {
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}
	if log == nil {
		log = zap.NewNop()
	}
	if playerName == "" {
		playerName = "you"
	}

	world, err := worldfile.LoadFile(worldFilePath)
	if err != nil {
		return nil, err
	}

	vocab := parse.DefaultVocabulary()
	vocab.SetLogger(log)

	eng := &Engine{
		world:    world,
		parser:   parse.New(vocab, parse.WithLogger(log)),
		registry: command.NewRegistry(),
		sessions: session.NewDirectory(),
		out:      bufio.NewWriter(outputStream),
		log:      log,
	}
	eng.view = &session.View{World: world, Sessions: eng.sessions}

	useReadline := !forceDirect && inputStream == os.Stdin && outputStream == os.Stdout
	if useReadline {
		eng.in, err = input.NewInteractiveReader("> ")
		if err != nil {
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
	} else {
		eng.in = input.NewDirectReader(inputStream)
	}

	player := &game.Player{
		Name:        playerName,
		CurrentRoom: world.Start(),
	}
	eng.local = eng.sessions.Connect(player)

	if err := eng.registerHandlers(); err != nil {
		return nil, fmt.Errorf("registering command handlers: %w", err)
	}

	return eng, nil
}

// Close releases input resources. It must be called before the engine is
// disposed of.
func (eng *Engine) Close() error {
	return eng.in.Close()
}

// RunUntilQuit starts reading and executing commands and does not return
// until the player quits, input runs out, or an I/O error occurs.
func (eng *Engine) RunUntilQuit() error {
	if err := eng.showRoom(); err != nil {
		return err
	}

	for !eng.quit {
		line, err := eng.in.ReadCommand()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading command: %w", err)
		}

		if err := eng.RunCommand(line); err != nil {
			return err
		}
	}
	return nil
}

// RunCommand parses one raw input line and executes every command it chains
// together, writing the results to the output stream. Player-level failures
// are written as game messages; the returned error is reserved for I/O.
func (eng *Engine) RunCommand(line string) error {
	cmds := eng.parser.Parse(line, eng.local.Player, eng.view, eng.local.Ctx)
	if len(cmds) == 0 {
		return nil
	}

	for _, cmd := range cmds {
		out, err := eng.execute(cmd)
		if err != nil {
			eng.log.Debug("command failed",
				zap.String("verb", cmd.Verb),
				zap.Error(err))
			out = merrors.GameMessage(err)
		}
		if out != "" {
			if werr := eng.writeMessage(out); werr != nil {
				return werr
			}
		}
		if eng.quit {
			break
		}
	}
	return nil
}

func (eng *Engine) execute(cmd *parse.Command) (string, error) {
	if cmd.IsMovement {
		return eng.move(cmd.Verb)
	}

	h, ok := eng.registry.Lookup(cmd.Verb)
	if !ok {
		if hint, ok := eng.parser.Vocabulary().Suggest(cmd.Verb); ok {
			return "", merrors.Commandf("I don't know how to %q. Did you mean %q?", cmd.Verb, hint)
		}
		return "", merrors.Commandf("I don't know how to %q.", cmd.Verb)
	}

	return h(command.Request{
		Cmd:   cmd,
		Actor: eng.local,
		World: eng.world,
		View:  eng.view,
	})
}

func (eng *Engine) move(direction string) (string, error) {
	room := eng.world.Room(eng.local.Player.CurrentRoom)
	if room == nil {
		return "", fmt.Errorf("player is in undefined room %q", eng.local.Player.CurrentRoom)
	}
	dest, ok := room.Exits[direction]
	if !ok {
		return "", merrors.Commandf("You can't go %s from here.", direction)
	}
	eng.local.Player.CurrentRoom = dest
	return eng.describeRoom(dest)
}

func (eng *Engine) showRoom() error {
	desc, err := eng.describeRoom(eng.local.Player.CurrentRoom)
	if err != nil {
		return err
	}
	return eng.writeMessage(desc)
}

func (eng *Engine) describeRoom(label string) (string, error) {
	room := eng.world.Room(label)
	if room == nil {
		return "", fmt.Errorf("undefined room %q", label)
	}

	var sb strings.Builder
	sb.WriteString(room.Name)
	sb.WriteString("\n")
	sb.WriteString(room.Description)

	for _, it := range room.Items {
		sb.WriteString(fmt.Sprintf("\nThere is a %s here.", it.Name))
	}
	for _, m := range eng.world.MobsIn(label) {
		sb.WriteString(fmt.Sprintf("\n%s is here.", m.Name))
	}
	for _, p := range eng.sessions.PlayersIn(label) {
		if p == eng.local.Player {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n%s is here.", p.Name))
	}
	if exits := room.ExitDirections(); len(exits) > 0 {
		sb.WriteString("\nExits: ")
		sb.WriteString(strings.Join(exits, ", "))
	}
	return sb.String(), nil
}

// writeMessage wraps the text to console width and writes it followed by a
// blank line.
func (eng *Engine) writeMessage(msg string) error {
	msg = rosed.Edit(msg).
		WithOptions(rosed.Options{ParagraphSeparator: "\n", PreserveParagraphs: true}).
		Wrap(consoleOutputWidth).
		String()

	if _, err := eng.out.WriteString(msg + "\n\n"); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	if err := eng.out.Flush(); err != nil {
		return fmt.Errorf("could not flush output: %w", err)
	}
	return nil
}

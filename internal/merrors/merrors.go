package merrors

import "fmt"

// CommandError is an error caused by handling a player command. Either the
// command could not be carried out or it asks for something that is not
// possible right now.
//
// CommandError includes a human-readable message to show to the player as
// well as a typical more technical "error message" style message.
type commandError struct {
	msg   string
	human string
	wrap  error
}

func (e *commandError) Error() string {
	return e.msg
}

// GameMessage shows the message that should be displayed in-game to describe
// the error.
func (e *commandError) GameMessage() string {
	return e.human
}

// Unwrap gives the error that the CommandError wraps, if it wraps one.
func (e *commandError) Unwrap() error {
	return e.wrap
}

// Command returns a new CommandError that has both the message to show the
// player and the technical description of the error.
func Command(game, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("got CommandError(%q)", game)
	}
	return &commandError{
		msg:   technical,
		human: game,
	}
}

// Commandf returns a new CommandError that has a message to show to the
// player and an automatically generated Error() description. The arguments
// given are the format string and the arguments to the format string.
func Commandf(gameFormat string, a ...interface{}) error {
	gameMessage := fmt.Sprintf(gameFormat, a...)
	return Command(gameMessage, "")
}

// WrapCommand returns a new CommandError that has both the message to show
// the player and the technical description of the error, and that wraps the
// given error.
func WrapCommand(e error, game, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("got CommandError(%q)", game)
	}
	return &commandError{
		msg:   technical,
		human: game,
		wrap:  e,
	}
}

// WrapCommandf returns a new CommandError that has both the message to show
// the player and an automatically generated Error() description, and that
// wraps the given error. The arguments given are the error to wrap, then the
// format followed by its arguments.
func WrapCommandf(e error, gameFormat string, a ...interface{}) error {
	gameMessage := fmt.Sprintf(gameFormat, a...)
	return WrapCommand(e, gameMessage, "")
}

// GameMessage gets the message to display to the console for the given
// error. If it is one of the types defined in merrors, the special game
// message is returned (if it exists). Otherwise, err.Error() is returned.
func GameMessage(err error) string {
	if cmdErr, ok := err.(*commandError); ok {
		return cmdErr.GameMessage()
	}
	return err.Error()
}

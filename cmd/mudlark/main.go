/*
Mudlark starts an interactive MUD command session.

It reads in a world file, connects a player in the designated starting room,
and then parses user input from stdin until input runs out or the "quit"
command is given.

Usage:

	mudlark [flags]

The flags are:

	--version
		Give the current version of Mudlark and then exit.

	-w/--world [FILE]
		Use the provided world data file. Defaults to the file "world.toml"
		in the current working directory.

	-n/--name [NAME]
		Play under the given character name.

	-d/--direct
		Force reading directly from the console as opposed to using GNU
		readline based routines for reading command input even if launched in
		a tty with stdin and stdout.

	--debug
		Log parse tracing to stderr.

Once a session has started, the user input will be parsed for commands. For
an explanation of the commands, type "help" once in a session. To exit, type
"quit".
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/mkriley/mudlark"
	"github.com/mkriley/mudlark/internal/version"
)

const (

	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitGameError indicates an unsuccessful program execution due to a
	// problem during the game.
	ExitGameError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue initializing the engine.
	ExitInitError
)

var (
	returnCode = ExitSuccess

	flagVersion = pflag.Bool("version", false, "Gives the version info")
	worldFile   = pflag.StringP("world", "w", "world.toml", "the world data file that contains the definition of the world")
	playerName  = pflag.StringP("name", "n", "you", "the name to play under")
	forceDirect = pflag.BoolP("direct", "d", false, "force reading directly from stdin instead of going through GNU readline where possible")
	flagDebug   = pflag.Bool("debug", false, "log parse tracing to stderr")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			// we are panicking, make sure we dont lose the panic just because
			// we checked
			panic("unrecoverable panic occured")
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	log := zap.NewNop()
	if *flagDebug {
		var err error
		log, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
		defer log.Sync()
	}

	gameEng, initErr := mudlark.New(os.Stdin, os.Stdout, *worldFile, *playerName, *forceDirect, log)
	if initErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", initErr.Error())
		returnCode = ExitInitError
		return
	}
	defer gameEng.Close()

	err := gameEng.RunUntilQuit()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitGameError
		return
	}
}

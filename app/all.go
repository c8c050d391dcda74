package app

import (
	"os"

	"github.com/gonuts/commander"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	LOG_LEVEL_FLAG = "loglevel"
)

var (
	logLevel string
)

func AllCommands() *commander.Command {
	cmd := &commander.Command{
		UsageLine: os.Args[0],
		Short:     "analyze morphological capabilities and temporal expressions",
		Subcommands: []*commander.Command{
			MorphCmd(),
			TimexCmd(),
		},
	}
	for _, app := range cmd.Subcommands {
		app.Run = NewAppWrapCommand(app.Run)
		app.Flag.StringVar(&logLevel, LOG_LEVEL_FLAG, "info", "Log level (debug, info, warn, error)")
	}
	return cmd
}

func InitCommand(cmd *commander.Command, args []string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		log.Warn().Msgf("Unknown log level %s, using info", logLevel)
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

func NewAppWrapCommand(f func(cmd *commander.Command, args []string) error) func(cmd *commander.Command, args []string) error {
	wrapped := func(cmd *commander.Command, args []string) error {
		InitCommand(cmd, args)
		return f(cmd, args)
	}

	return wrapped
}

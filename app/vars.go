package app

import (
	"io"
	"os"

	"github.com/KotlinNLP/LinguisticDescription-sub001/util"
	"github.com/KotlinNLP/LinguisticDescription-sub001/util/conf"

	"github.com/gonuts/commander"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	// file names
	input    string
	output   string
	confFile string

	DEFAULT_CONF_DIRS = []string{"conf", "/etc/lingdesc"}
)

func VerifyFlags(cmd *commander.Command, required []string) {
	for _, flag := range required {
		f := cmd.Flag.Lookup(flag)
		if f.Value.String() == "" {
			log.Error().Msgf("Required flag %s not set", f.Name)
			cmd.Usage()
			os.Exit(1)
		}
	}
}

// LoadConf reads the configuration file if given, the built-in default
// otherwise
func LoadConf(filename string) (*conf.Conf, error) {
	if len(filename) == 0 {
		log.Info().Msg("Using default configuration")
		return conf.Default(), nil
	}
	location, found := util.LocateFile(filename, DEFAULT_CONF_DIRS)
	if !found {
		return nil, errors.Errorf("configuration file %s not found", filename)
	}
	log.Info().Str("file", location).Msg("Reading configuration")
	return conf.ReadFile(location)
}

// OpenOutput returns stdout for an empty filename
func OpenOutput(filename string) (io.WriteCloser, error) {
	if len(filename) == 0 || filename == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(filename)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

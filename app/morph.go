package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/KotlinNLP/LinguisticDescription-sub001/nlp/format/conllu"
	"github.com/KotlinNLP/LinguisticDescription-sub001/nlp/format/lattice"
	"github.com/KotlinNLP/LinguisticDescription-sub001/nlp/morphology"
	"github.com/KotlinNLP/LinguisticDescription-sub001/util"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	conlluInput bool
	udOutput    bool
	latticeOut  string
)

type MorphOptions struct {
	// UD writes features in Universal Dependencies notation
	UD bool
}

type MorphStats struct {
	Morphemes, Skipped int
	ByCapability       map[string]int
}

func MorphConfigOut() {
	log.Info().Msg("Configuration")
	log.Info().Msgf("Conf:\t\t%s", confFile)
	log.Info().Msgf("Input:\t\t%s", input)
	log.Info().Msgf("Output:\t\t%s", output)
	log.Info().Msgf("CoNLL-U:\t%v", conlluInput)
	log.Info().Msgf("UD feats:\t%v", udOutput)
	if len(latticeOut) > 0 {
		log.Info().Msgf("Lattice out:\t%s", latticeOut)
	}
}

// ConllU2Lattices lines up the syntactic words of each sentence as a single
// path lattice, mapping UD tags and features onto treebank ones. An XPOS tag
// takes precedence over the mapped UPOS tag.
func ConllU2Lattices(sents []*conllu.Sentence) []lattice.Lattice {
	lats := make([]lattice.Lattice, len(sents))
	for i, sent := range sents {
		lat := make(lattice.Lattice, len(sent.Rows))
		for j, row := range sent.Rows {
			pos := row.XPosTag
			if len(pos) == 0 {
				if heb, exists := util.UD2HebPOS[row.UPosTag]; exists {
					pos = heb
				} else {
					pos = row.UPosTag
				}
			}
			feats := lattice.Features(util.UD2HebFeatures(row.Feats))
			lat[j] = append(lat[j], lattice.Edge{
				Start:   j,
				End:     j + 1,
				Word:    row.Form,
				Lemma:   row.Lemma,
				CPosTag: pos,
				PosTag:  pos,
				Feats:   feats,
				FeatStr: lattice.ParseString(feats.String()),
				Token:   row.TokenID + 1,
			})
		}
		lats[i] = lat
	}
	return lats
}

// AnalyzeLattices writes one line per morpheme: sentence, token, form, POS
// tag, capabilities and the properties they expose. Morphemes carrying
// unknown property values are logged and skipped.
func AnalyzeLattices(lats []lattice.Lattice, builder *morphology.Builder, opts MorphOptions, w io.Writer) (*MorphStats, error) {
	stats := &MorphStats{ByCapability: make(map[string]int)}
	for i, lat := range lats {
		for _, edge := range lat.Edges() {
			m, err := builder.Build(edge.Word, edge.CPosTag, edge.Feats)
			if err != nil {
				log.Warn().Err(err).Int("sentence", i+1).Str("form", edge.Word).Msg("Skipping morpheme")
				stats.Skipped++
				continue
			}
			caps := morphology.Capabilities(m)
			capStr := "_"
			if len(caps) > 0 {
				capStr = strings.Join(caps, ",")
			}
			feats := morphology.Features(m)
			if opts.UD {
				if feats, err = util.Heb2UDFeaturesString(feats); err != nil {
					log.Warn().Err(err).Int("sentence", i+1).Str("form", edge.Word).Msg("Skipping morpheme")
					stats.Skipped++
					continue
				}
			}
			for _, capability := range caps {
				stats.ByCapability[capability]++
			}
			if _, err := fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\n", i+1, edge.Token, edge.Word, m.POS(), capStr, feats); err != nil {
				return stats, errors.Wrap(err, "failed writing output")
			}
			stats.Morphemes++
		}
		if _, err := w.Write([]byte{'\n'}); err != nil {
			return stats, errors.Wrap(err, "failed writing output")
		}
	}
	return stats, nil
}

func Morph(cmd *commander.Command, args []string) error {
	VerifyFlags(cmd, []string{"in"})
	MorphConfigOut()

	c, err := LoadConf(confFile)
	if err != nil {
		return err
	}
	builder, err := c.Builder()
	if err != nil {
		return err
	}

	var lats []lattice.Lattice
	if conlluInput {
		log.Info().Msg("Reading CoNLL-U sentences")
		sents, err := conllu.ReadFile(input, 0)
		if err != nil {
			return errors.Wrapf(err, "failed reading CoNLL-U file %s", input)
		}
		lats = ConllU2Lattices(sents)
		if len(latticeOut) > 0 {
			if err := lattice.WriteFile(latticeOut, lats); err != nil {
				return errors.Wrapf(err, "failed writing lattice file %s", latticeOut)
			}
			log.Info().Msgf("Wrote %d converted lattices to %s", len(lats), latticeOut)
		}
	} else {
		log.Info().Msg("Reading lattices")
		lats, err = lattice.ReadFile(input)
		if err != nil {
			return errors.Wrapf(err, "failed reading lattice file %s", input)
		}
	}
	log.Info().Msgf("Read %d lattices", len(lats))

	out, err := OpenOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	stats, err := AnalyzeLattices(lats, builder, MorphOptions{UD: udOutput}, out)
	if err != nil {
		return err
	}
	log.Info().Msgf("Classified %d morphemes, skipped %d", stats.Morphemes, stats.Skipped)
	for _, capability := range []string{morphology.CAP_CONJUGABLE, morphology.CAP_GENDERABLE, morphology.CAP_GRADABLE, morphology.CAP_RELATION, morphology.CAP_TEMPORAL} {
		log.Info().Msgf("  %s:\t%d", capability, stats.ByCapability[capability])
	}
	return nil
}

func MorphCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Morph,
		UsageLine: "morph <file options> [arguments]",
		Short:     "classify lattice morphemes by morphological capability",
		Long: `
classify lattice morphemes by morphological capability

	$ ./lingdesc morph -in <lattice file> [-conllu [-lattice <lattice out file>]] [-ud] [-conf <yaml file>] [-out <output file>]

`,
		Flag: *flag.NewFlagSet("morph", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&input, "in", "", "Input lattice file")
	cmd.Flag.BoolVar(&conlluInput, "conllu", false, "Input is a CoNLL-U file")
	cmd.Flag.StringVar(&latticeOut, "lattice", "", "Write CoNLL-U input converted to lattices to this file")
	cmd.Flag.BoolVar(&udOutput, "ud", false, "Write features in Universal Dependencies notation")
	cmd.Flag.StringVar(&output, "out", "", "Output file (default stdout)")
	cmd.Flag.StringVar(&confFile, "conf", "", "YAML configuration of categories and temporal forms")
	return cmd
}

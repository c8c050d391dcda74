package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/KotlinNLP/LinguisticDescription-sub001/nlp/datetime"
	"github.com/KotlinNLP/LinguisticDescription-sub001/nlp/format/timex"
	"github.com/KotlinNLP/LinguisticDescription-sub001/nlp/morphology"
	"github.com/KotlinNLP/LinguisticDescription-sub001/nlp/temporal"
	nlp "github.com/KotlinNLP/LinguisticDescription-sub001/nlp/types"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const TEMPORAL_POS = "IN"

var (
	atDate    string
	intersect bool
)

type TimexOptions struct {
	At        *datetime.SingleDateTime
	Intersect bool
}

type TimexStats struct {
	Resolved, Skipped int
}

func TimexConfigOut() {
	log.Info().Msg("Configuration")
	log.Info().Msgf("Conf:\t\t%s", confFile)
	log.Info().Msgf("Input:\t\t%s", input)
	log.Info().Msgf("Output:\t\t%s", output)
	log.Info().Msgf("At:\t\t%s", atDate)
	log.Info().Msgf("Intersect:\t%v", intersect)
}

// ResolveRecords anchors each record to its interval and writes the
// expression followed by its relations: containment of opts.At, and overlap
// and precedence against the previously resolved expression. Records that
// cannot be resolved are logged and skipped.
func ResolveRecords(records []*timex.Record, lexicon map[string]temporal.Kind, opts TimexOptions, w io.Writer) ([]*temporal.Expression, *TimexStats, error) {
	var (
		stats = &TimexStats{}
		exprs = make([]*temporal.Expression, 0, len(records))
		prev  *temporal.Expression
	)
	for _, record := range records {
		if record.Err != nil {
			log.Warn().Err(record.Err).Int("line", record.Line).Msg("Skipping expression")
			stats.Skipped++
			continue
		}
		kind, known := lexicon[record.Form]
		if !known {
			log.Warn().Int("line", record.Line).Str("form", record.Form).Msg("Skipping expression with unknown relation form")
			stats.Skipped++
			continue
		}
		morph := morphology.NewTemporalPreposition(TEMPORAL_POS, record.Form)
		expr, err := temporal.Resolve(nlp.SpanOf(record.Tokens...), morph, kind, record.Points...)
		if err != nil {
			log.Warn().Err(err).Int("line", record.Line).Msg("Skipping expression")
			stats.Skipped++
			continue
		}
		fields := []string{expr.String()}
		if opts.At != nil {
			fields = append(fields, fmt.Sprintf("contains=%v", expr.Interval.Contains(*opts.At)))
		}
		if prev != nil {
			fields = append(fields,
				fmt.Sprintf("overlaps=%v", expr.Interval.Overlaps(prev.Interval)),
				fmt.Sprintf("follows=%v", prev.Interval.Precedes(expr.Interval)))
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, "\t")); err != nil {
			return exprs, stats, errors.Wrap(err, "failed writing output")
		}
		exprs = append(exprs, expr)
		prev = expr
		stats.Resolved++
	}
	if opts.Intersect && len(exprs) > 0 {
		var (
			common datetime.Interval = datetime.NewUnbounded()
			ok     bool              = true
		)
		for _, expr := range exprs {
			if common, ok = datetime.Intersect(common, expr.Interval); !ok {
				break
			}
		}
		result := "_"
		if ok {
			result = common.String()
		}
		if _, err := fmt.Fprintf(w, "intersection\t%s\n", result); err != nil {
			return exprs, stats, errors.Wrap(err, "failed writing output")
		}
	}
	return exprs, stats, nil
}

func Timex(cmd *commander.Command, args []string) error {
	VerifyFlags(cmd, []string{"in"})
	TimexConfigOut()

	opts := TimexOptions{Intersect: intersect}
	if len(atDate) > 0 {
		at, err := timex.ParseDate(atDate)
		if err != nil {
			return errors.Wrapf(err, "bad -at date %s", atDate)
		}
		opts.At = &at
	}

	c, err := LoadConf(confFile)
	if err != nil {
		return err
	}
	lexicon, err := c.Lexicon()
	if err != nil {
		return err
	}

	log.Info().Msg("Reading temporal expressions")
	records, err := timex.ReadFile(input)
	if err != nil {
		return errors.Wrapf(err, "failed reading expressions file %s", input)
	}

	out, err := OpenOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	_, stats, err := ResolveRecords(records, lexicon, opts, out)
	if err != nil {
		return err
	}
	log.Info().Msgf("Resolved %d of %d expressions, skipped %d", stats.Resolved, len(records), stats.Skipped)
	return nil
}

func TimexCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Timex,
		UsageLine: "timex <file options> [arguments]",
		Short:     "resolve temporal relation expressions into intervals",
		Long: `
resolve temporal relation expressions into intervals

	$ ./lingdesc timex -in <expressions file> [-conf <yaml file>] [-at <date>] [-intersect] [-out <output file>]

`,
		Flag: *flag.NewFlagSet("timex", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&input, "in", "", "Input temporal expressions file")
	cmd.Flag.StringVar(&output, "out", "", "Output file (default stdout)")
	cmd.Flag.StringVar(&confFile, "conf", "", "YAML configuration of categories and temporal forms")
	cmd.Flag.StringVar(&atDate, "at", "", "Report whether each expression contains this date (e.g. 2020-03-05)")
	cmd.Flag.BoolVar(&intersect, "intersect", false, "Report the span shared by all expressions")
	return cmd
}

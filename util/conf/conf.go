package conf

import (
	"io"
	"os"

	"github.com/KotlinNLP/LinguisticDescription-sub001/nlp/morphology"
	"github.com/KotlinNLP/LinguisticDescription-sub001/nlp/temporal"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type FeatureKeys struct {
	Tense  string `yaml:"tense"`
	Mood   string `yaml:"mood"`
	Gender string `yaml:"gender"`
	Degree string `yaml:"degree"`
}

// fillDefaults sets every unset key to its default, so a partial features
// block overrides only the keys it names.
func (k *FeatureKeys) fillDefaults() {
	defaults := morphology.DefaultFeatureKeys
	for _, key := range []struct {
		value *string
		def   string
	}{
		{&k.Tense, defaults.Tense},
		{&k.Mood, defaults.Mood},
		{&k.Gender, defaults.Gender},
		{&k.Degree, defaults.Degree},
	} {
		if len(*key.value) == 0 {
			*key.value = key.def
		}
	}
}

// Conf maps an analyzer's tag set onto morphology variants and lists the
// forms acting as temporal relation words.
type Conf struct {
	Categories map[string]string `yaml:"categories"`
	Features   FeatureKeys       `yaml:"features"`
	Temporal   map[string]string `yaml:"temporal"`
}

const defaultConf = `
categories:
  VB: verb
  BN: participle
  BNT: participle
  NN: noun
  NNT: noun
  NNP: noun
  JJ: adjective
  JJT: adjective
  RB: adverb
  IN: preposition
  PREPOSITION: preposition
features:
  tense: tense
  mood: mood
  gender: gen
  degree: degree
temporal:
  MAZ: since
  "&D": until
  LPNI: before
  ACRI: after
  BMHLK: during
  BIN: between
  TMID: ever
`

// Default is a configuration for Hebrew treebank tags
func Default() *Conf {
	c, err := Read([]byte(defaultConf))
	if err != nil {
		panic("Failed reading default configuration: " + err.Error())
	}
	return c
}

func Read(data []byte) (*Conf, error) {
	c := new(Conf)
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, errors.Wrap(err, "failed parsing configuration")
	}
	c.Features.fillDefaults()
	if _, err := c.Builder(); err != nil {
		return nil, err
	}
	if _, err := c.Lexicon(); err != nil {
		return nil, err
	}
	return c, nil
}

func ReadFrom(reader io.Reader) (*Conf, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return Read(data)
}

func ReadFile(filename string) (*Conf, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadFrom(file)
}

// Builder returns a morphology builder for the configured categories and
// temporal forms.
func (c *Conf) Builder() (*morphology.Builder, error) {
	categories := make(map[string]morphology.Variant, len(c.Categories))
	for pos, name := range c.Categories {
		variant, err := morphology.ParseVariant(name)
		if err != nil {
			return nil, errors.Wrapf(err, "category %s", pos)
		}
		categories[pos] = variant
	}
	forms := make([]string, 0, len(c.Temporal))
	for form := range c.Temporal {
		forms = append(forms, form)
	}
	return morphology.NewBuilder(categories, morphology.FeatureKeys(c.Features), forms), nil
}

// Lexicon maps each temporal form to the relation it expresses.
func (c *Conf) Lexicon() (map[string]temporal.Kind, error) {
	lexicon := make(map[string]temporal.Kind, len(c.Temporal))
	for form, name := range c.Temporal {
		kind, err := temporal.ParseKind(name)
		if err != nil {
			return nil, errors.Wrapf(err, "temporal form %s", form)
		}
		lexicon[form] = kind
	}
	return lexicon, nil
}

func (c *Conf) Write(writer io.Writer) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	_, err = writer.Write(data)
	return err
}

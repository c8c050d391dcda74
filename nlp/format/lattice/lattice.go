// Package lattice reads and writes lattice format files
package lattice

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Features map[string]string

func (f Features) String() string {
	if len(f) == 0 {
		return "_"
	}
	strs := make([]string, 0, len(f))
	for name, value := range f {
		strs = append(strs, name+FEATURE_SEPARATOR+value)
	}
	sort.Strings(strs)
	return strings.Join(strs, FEATURES_SEPARATOR)
}

type Edge struct {
	Start   int
	End     int
	Word    string
	Lemma   string
	CPosTag string
	PosTag  string
	Feats   Features
	FeatStr string
	Token   int
}

func (e Edge) String() string {
	fields := []string{
		fmt.Sprintf("%d", e.Start),
		fmt.Sprintf("%d", e.End),
		e.Word,
		e.Lemma,
		e.CPosTag,
		e.PosTag,
		e.FeatStr,
		fmt.Sprintf("%d", e.Token),
	}
	for i, field := range fields {
		if len(field) == 0 {
			fields[i] = "_"
		}
	}
	return strings.Join(fields, FIELD_SEPARATOR)
}

// Lattice maps a source node to the edges leaving it
type Lattice map[int][]Edge

// Edges returns all edges ordered by start node, then end node
func (l Lattice) Edges() []Edge {
	edges := make([]Edge, 0, len(l))
	for _, out := range l {
		edges = append(edges, out...)
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Start < edges[j].Start ||
			(edges[i].Start == edges[j].Start && edges[i].End < edges[j].End)
	})
	return edges
}

const (
	FIELD_SEPARATOR      = "\t"
	NUM_FIELDS           = 8
	FEATURES_SEPARATOR   = "|"
	FEATURE_SEPARATOR    = "="
	FEATURE_CONCAT_DELIM = ","
)

func ParseInt(value string) (int, error) {
	if value == "_" {
		return 0, nil
	}
	i, err := strconv.ParseInt(value, 10, 0)
	return int(i), err
}

func ParseString(value string) string {
	val := value
	if val == "_" {
		val = ""
	}
	return val
}

func ParseFeatures(featuresStr string) (Features, error) {
	var featureMap Features = make(Features)
	if featuresStr == "_" || featuresStr == "" {
		return featureMap, nil
	}

	featureList := strings.Split(featuresStr, FEATURES_SEPARATOR)
	featureMap = make(Features, len(featureList))
	for _, featureStr := range featureList {
		featureKV := strings.Split(featureStr, FEATURE_SEPARATOR)
		switch len(featureKV) {
		case 1:
			featureMap[featureKV[0]] = featureKV[0]
		case 2:
			featName := featureKV[0]
			featValue := featureKV[1]
			existingFeatValue, featExist := featureMap[featName]
			if featExist {
				featureMap[featName] = existingFeatValue + FEATURE_CONCAT_DELIM + featValue
			} else {
				featureMap[featName] = featValue
			}
		default:
			return nil, errors.Errorf("wrong number of fields for split of feature %s", featureStr)
		}
	}
	return featureMap, nil
}

func ParseEdge(record []string) (*Edge, error) {
	row := &Edge{}
	start, err := ParseInt(record[0])
	if err != nil {
		return row, errors.Wrapf(err, "error parsing START field (%s)", record[0])
	}
	row.Start = start

	end, err := ParseInt(record[1])
	if err != nil {
		return row, errors.Wrapf(err, "error parsing END field (%s)", record[1])
	}
	row.End = end

	word := ParseString(record[2])
	if word == "" {
		return row, errors.New("empty WORD field")
	}
	row.Word = word
	row.Lemma = ParseString(record[3])

	cpostag := ParseString(record[4])
	if cpostag == "" {
		return row, errors.New("empty CPOSTAG field")
	}
	row.CPosTag = cpostag

	postag := ParseString(record[5])
	if postag == "" {
		return row, errors.New("empty POSTAG field")
	}
	row.PosTag = postag

	token, err := ParseInt(record[7])
	if err != nil {
		return row, errors.Wrapf(err, "error parsing TOKEN field (%s)", record[7])
	}
	row.Token = token

	features, err := ParseFeatures(record[6])
	if err != nil {
		return row, errors.Wrapf(err, "error parsing FEATS field (%s)", record[6])
	}
	row.Feats = features
	row.FeatStr = ParseString(record[6])
	return row, nil
}

// Read reads lattices separated by blank lines
func Read(r io.Reader) ([]Lattice, error) {
	var (
		sentences   []Lattice
		currentLatt Lattice
		line        int
	)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 16384), 1024*1024)
	for scanner.Scan() {
		line++
		curLine := scanner.Text()
		if len(strings.TrimSpace(curLine)) == 0 {
			if currentLatt != nil {
				sentences = append(sentences, currentLatt)
				currentLatt = nil
			}
			continue
		}
		record := strings.Split(curLine, FIELD_SEPARATOR)
		if len(record) != NUM_FIELDS {
			return nil, errors.Errorf("line %d: expected %d fields, got %d", line, NUM_FIELDS, len(record))
		}
		edge, err := ParseEdge(record)
		if err != nil {
			return nil, errors.Wrapf(err, "error processing line %d at statement %d", line, len(sentences))
		}
		if currentLatt == nil {
			currentLatt = make(Lattice)
		}
		if edge.Start == edge.End {
			continue
		}
		currentLatt[edge.Start] = append(currentLatt[edge.Start], *edge)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed reading lattice input")
	}
	if currentLatt != nil {
		sentences = append(sentences, currentLatt)
	}
	return sentences, nil
}

func Write(writer io.Writer, lattices []Lattice) error {
	for _, lattice := range lattices {
		for _, edge := range lattice.Edges() {
			if _, err := writer.Write(append([]byte(edge.String()), '\n')); err != nil {
				return err
			}
		}
		if _, err := writer.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}

func ReadFile(filename string) ([]Lattice, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file)
}

func WriteFile(filename string, sents []Lattice) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return Write(file, sents)
}

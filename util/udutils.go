package util

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var ErrNoUDMapping = errors.New("no Universal Dependencies mapping")

type FeatureLookup struct {
	UDName   string
	ValueMap map[string]string
}

// Reverse maps UD values back to treebank values; on collisions the
// alphabetically first treebank value wins
func (f FeatureLookup) Reverse() map[string]string {
	reverse := make(map[string]string, len(f.ValueMap))
	keys := make([]string, 0, len(f.ValueMap))
	for k := range f.ValueMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, exists := reverse[f.ValueMap[k]]; !exists {
			reverse[f.ValueMap[k]] = k
		}
	}
	return reverse
}

var (
	GenderMap = FeatureLookup{
		UDName: "Gender",
		ValueMap: map[string]string{
			"F":   "Fem",
			"M":   "Masc",
			"N":   "Neut",
			"F,M": "Fem,Masc",
		},
	}
	TenseMap = FeatureLookup{
		UDName: "Tense",
		ValueMap: map[string]string{
			"PAST":    "Past",
			"PRESENT": "Pres",
			"FUTURE":  "Fut",
			// BEINONI is handled by VerbForm=Part
		},
	}
	MoodMap = FeatureLookup{
		UDName: "Mood",
		ValueMap: map[string]string{
			"IND": "Ind",
			"IMP": "Imp",
			"SUB": "Sub",
			"CND": "Cnd",
		},
	}
	DegreeMap = FeatureLookup{
		UDName: "Degree",
		ValueMap: map[string]string{
			"POS": "Pos",
			"CMP": "Cmp",
			"SUP": "Sup",
		},
	}
	HEB2UDFeatureNameLookup = map[string]FeatureLookup{
		"gen":    GenderMap,
		"tense":  TenseMap,
		"mood":   MoodMap,
		"degree": DegreeMap,
	}
	UD2HebPOS = map[string]string{
		"VERB":  "VB",
		"AUX":   "MD",
		"NOUN":  "NN",
		"PROPN": "NNP",
		"ADJ":   "JJ",
		"ADV":   "RB",
		"ADP":   "IN",
		"SCONJ": "TEMP",
		"CCONJ": "CC",
		"NUM":   "CD",
		"PRON":  "PRP",
		"DET":   "DT",
		"INTJ":  "INTJ",
	}
)

func Heb2UDFeature(feature string) (string, error) {
	if len(feature) == 0 {
		return feature, nil
	}
	switch feature {
	case "tense=BEINONI":
		return "VerbForm=Part", nil
	case "tense=TOINFINITIVE", "mood=INF":
		return "VerbForm=Inf", nil
	case "tense=IMPERATIVE":
		return "Mood=Imp", nil
	case "tense=_", "mood=_", "gen=_", "degree=_":
		return "", nil
	}
	pair := strings.Split(feature, "=")
	if len(pair) != 2 {
		return "", errors.Wrapf(ErrNoUDMapping, "non-attribute feature %s", feature)
	}
	propMap, exists := HEB2UDFeatureNameLookup[pair[0]]
	if !exists {
		return "", errors.Wrapf(ErrNoUDMapping, "feature %s", feature)
	}
	propValue, valExists := propMap.ValueMap[pair[1]]
	if !valExists {
		return "", errors.Wrapf(ErrNoUDMapping, "feature value %s", feature)
	}
	return fmt.Sprintf("%s=%s", propMap.UDName, propValue), nil
}

func Heb2UDFeaturesString(features string) (string, error) {
	if features == "_" {
		return features, nil
	}

	pairs := strings.Split(features, "|")
	udPairs := make([]string, 0, len(pairs))
	for _, hebFeature := range pairs {
		udFeature, err := Heb2UDFeature(hebFeature)
		if err != nil {
			return "", err
		}
		if len(udFeature) > 0 {
			udPairs = append(udPairs, udFeature)
		}
	}
	if len(udPairs) == 0 {
		return "_", nil
	}
	sort.Strings(udPairs)
	return strings.Join(UniqueSortedStrings(udPairs), "|"), nil
}

// UD2HebFeatures maps UD features onto treebank feature names and values.
// Features without a treebank counterpart are dropped.
func UD2HebFeatures(ud map[string]string) map[string]string {
	heb := make(map[string]string, len(ud))
	for hebName, lookup := range HEB2UDFeatureNameLookup {
		value, exists := ud[lookup.UDName]
		if !exists {
			continue
		}
		if hebValue, known := lookup.Reverse()[value]; known {
			heb[hebName] = hebValue
		} else {
			heb[hebName] = value
		}
	}
	switch ud["VerbForm"] {
	case "Part":
		heb["tense"] = "BEINONI"
	case "Inf":
		heb["tense"] = "TOINFINITIVE"
	}
	if ud["Mood"] == "Imp" {
		heb["tense"] = "IMPERATIVE"
	}
	return heb
}

func UniqueSortedStrings(sorted []string) []string {
	if len(sorted) < 2 {
		return sorted
	}
	uniqueStrings := make([]string, 0, len(sorted))
	for i, cur := range sorted {
		if len(cur) == 0 || (i > 0 && sorted[i-1] == cur) {
			continue
		}
		uniqueStrings = append(uniqueStrings, cur)
	}
	return uniqueStrings
}

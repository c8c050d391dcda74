package morphology

// Morphology is a grammatical classification attached to a morpheme or a
// multiword span. Grammatical properties are exposed through the capability
// interfaces below; a concrete morphology implements any subset of them.
type Morphology interface {
	POS() string
}

type Conjugable interface {
	Morphology
	Tense() Tense
	Mood() Mood
}

type Genderable interface {
	Morphology
	Gender() Gender
}

type Gradable interface {
	Morphology
	Degree() Degree
}

// Relation marks morphologies expressing a relation between entities or
// events. Families of relations extend it with their own marker.
type Relation interface {
	Morphology
	RelationMarker()
}

// Temporal marks time relations: before, after, during, since, until.
type Temporal interface {
	Relation
	TemporalMarker()
}

// RelationMark is embedded by concrete relation morphologies.
type RelationMark struct{}

func (RelationMark) RelationMarker() {}

type TemporalMark struct {
	RelationMark
}

func (TemporalMark) TemporalMarker() {}

const (
	CAP_CONJUGABLE = "conj"
	CAP_GENDERABLE = "gen"
	CAP_GRADABLE   = "grad"
	CAP_RELATION   = "rel"
	CAP_TEMPORAL   = "temporal"
)

// Capabilities lists the capabilities m satisfies, in a fixed order.
func Capabilities(m Morphology) []string {
	caps := make([]string, 0, 5)
	if _, ok := m.(Conjugable); ok {
		caps = append(caps, CAP_CONJUGABLE)
	}
	if _, ok := m.(Genderable); ok {
		caps = append(caps, CAP_GENDERABLE)
	}
	if _, ok := m.(Gradable); ok {
		caps = append(caps, CAP_GRADABLE)
	}
	if _, ok := m.(Relation); ok {
		caps = append(caps, CAP_RELATION)
	}
	if _, ok := m.(Temporal); ok {
		caps = append(caps, CAP_TEMPORAL)
	}
	return caps
}

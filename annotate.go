package embedplot

// Annotate selects which original columns are reattached to the embedding
// coordinates.
type Annotate int

const (
	// AnnotateAll reattaches every original column.
	AnnotateAll Annotate = iota
	// AnnotateCategorical reattaches non-numeric columns only.
	AnnotateCategorical
	// AnnotateNumeric reattaches numeric columns only.
	AnnotateNumeric
	// AnnotateNone reattaches nothing; the result holds coordinates only.
	AnnotateNone
)

func (a Annotate) String() string {
	switch a {
	case AnnotateAll:
		return "all"
	case AnnotateCategorical:
		return "categorical"
	case AnnotateNumeric:
		return "numeric"
	case AnnotateNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseAnnotate converts a policy name ("all", "categorical", "numeric",
// "none") into an Annotate value.
func ParseAnnotate(s string) (Annotate, error) {
	switch s {
	case "all":
		return AnnotateAll, nil
	case "categorical":
		return AnnotateCategorical, nil
	case "numeric":
		return AnnotateNumeric, nil
	case "none":
		return AnnotateNone, nil
	default:
		return 0, &ErrInvalidAnnotate{Value: s}
	}
}

func (a Annotate) valid() bool {
	switch a {
	case AnnotateAll, AnnotateCategorical, AnnotateNumeric, AnnotateNone:
		return true
	default:
		return false
	}
}

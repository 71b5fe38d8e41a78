package fileid

import (
	"fmt"

	"github.com/rs/zerolog"
)

// WarningKind is the kind of a non-fatal decoding problem.
type WarningKind int

const (
	// WarningUnknownType means the base type isn't a known photo or document
	// type. The ID was decoded as a document anyway.
	WarningUnknownType WarningKind = iota + 1
	// WarningTrailingData means there were bytes left after the last field.
	WarningTrailingData
)

func (k WarningKind) String() string {
	switch k {
	case WarningUnknownType:
		return "unknown_type"
	case WarningTrailingData:
		return "trailing_data"
	default:
		return fmt.Sprintf("WarningKind(%d)", int(k))
	}
}

// Warning describes a problem that didn't stop decoding.
type Warning struct {
	Kind WarningKind
	// Type is the base type of the record, or the unique kind for unique IDs.
	Type uint32
	// Bytes is the number of leftover bytes for WarningTrailingData.
	Bytes int
}

func (w Warning) String() string {
	switch w.Kind {
	case WarningUnknownType:
		return fmt.Sprintf("unknown type %d, decoded as document", w.Type)
	case WarningTrailingData:
		return fmt.Sprintf("found %d bytes of leftover data", w.Bytes)
	default:
		return w.Kind.String()
	}
}

// ZerologWarnings returns a warning handler that logs to log.
func ZerologWarnings(log zerolog.Logger) func(Warning) {
	return func(w Warning) {
		log.Warn().
			Stringer("warning", w.Kind).
			Uint32("type", w.Type).
			Int("leftover_bytes", w.Bytes).
			Msg(w.String())
	}
}

// CollectWarnings returns a warning handler that appends to *into.
func CollectWarnings(into *[]Warning) func(Warning) {
	return func(w Warning) {
		*into = append(*into, w)
	}
}

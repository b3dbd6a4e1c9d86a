package descriptor

import (
	"strconv"
	"strings"
)

// Render produces canonical descriptor bytes from a Spec.
//
// NOTE: This does not perform geometric validation; use Build for that.
func Render(s Spec) ([]byte, error) {
	if err := s.checkKeys(); err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(Preamble)
	sb.WriteString("\n")
	writePair(&sb, KeyKind, string(s.Kind))
	for _, k := range dimensionKeys[s.Kind] {
		writePair(&sb, k, formatNumber(s.Dims[k]))
	}
	sb.WriteString(Postamble)
	return []byte(sb.String()), nil
}

func writePair(sb *strings.Builder, k, v string) {
	sb.WriteString(k)
	sb.WriteString(": ")
	sb.WriteString(v)
	sb.WriteString("\n")
}

// formatNumber is the only number spelling Parse accepts.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

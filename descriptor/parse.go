package descriptor

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"xdao.co/shapes/shape"
)

// Parse reads canonical descriptor bytes.
//
// Non-canonical input (CRLF, trailing newline, reordered keys, alternative
// number spellings) is rejected with shape.KindCanonical; structurally broken
// input with shape.KindParse.
func Parse(data []byte) (Spec, error) {
	if !utf8.Valid(data) {
		return Spec{}, shape.NewError(shape.KindParse, "SHAPE-STR-001", "descriptor must be valid UTF-8")
	}
	text := string(data)
	if strings.Contains(text, "\r") {
		return Spec{}, shape.NewError(shape.KindCanonical, "SHAPE-CANON-001", "CR characters are forbidden")
	}
	if strings.HasSuffix(text, "\n") {
		return Spec{}, shape.NewError(shape.KindCanonical, "SHAPE-CANON-002", "descriptor must end with the postamble, without a trailing newline")
	}

	lines := strings.Split(text, "\n")
	if lines[0] != Preamble {
		return Spec{}, shape.NewError(shape.KindParse, "SHAPE-STR-010", "descriptor preamble must be exact")
	}
	if len(lines) < 3 || lines[len(lines)-1] != Postamble {
		return Spec{}, shape.NewError(shape.KindParse, "SHAPE-STR-011", "descriptor postamble must be exact")
	}
	body := lines[1 : len(lines)-1]

	k, kind, err := splitPair(body[0])
	if err != nil {
		return Spec{}, err
	}
	if k != KeyKind {
		return Spec{}, shape.NewError(shape.KindParse, "SHAPE-STR-021", "first key must be Kind")
	}
	keys, ok := dimensionKeys[shape.Kind(kind)]
	if !ok {
		return Spec{}, shape.NewError(shape.KindParse, "SHAPE-STR-022", "unknown shape kind: "+kind)
	}

	spec := Spec{Kind: shape.Kind(kind), Dims: make(map[string]float64, len(keys))}
	var order []string
	for _, line := range body[1:] {
		k, v, err := splitPair(line)
		if err != nil {
			return Spec{}, err
		}
		if k == KeyKind {
			return Spec{}, shape.NewError(shape.KindParse, "SHAPE-STR-030", "duplicate key: Kind")
		}
		if !contains(keys, k) {
			return Spec{}, shape.NewError(shape.KindParse, "SHAPE-STR-031", "unknown dimension: "+k)
		}
		if _, dup := spec.Dims[k]; dup {
			return Spec{}, shape.NewError(shape.KindParse, "SHAPE-STR-030", "duplicate key: "+k)
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Spec{}, shape.WrapError(shape.KindParse, "SHAPE-STR-040", "invalid number for "+k, err)
		}
		if formatNumber(n) != v {
			return Spec{}, shape.NewError(shape.KindCanonical, "SHAPE-CANON-030", "non-canonical number for "+k+": "+v)
		}
		spec.Dims[k] = n
		order = append(order, k)
	}
	if len(order) != len(keys) {
		for _, k := range keys {
			if _, ok := spec.Dims[k]; !ok {
				return Spec{}, shape.NewError(shape.KindParse, "SHAPE-STR-032", "missing dimension: "+k)
			}
		}
	}
	for i := range keys {
		if order[i] != keys[i] {
			return Spec{}, shape.NewError(shape.KindCanonical, "SHAPE-CANON-020", "dimension keys must be in canonical order")
		}
	}
	return spec, nil
}

func splitPair(line string) (string, string, error) {
	k, v, ok := strings.Cut(line, ": ")
	if !ok || k == "" || v == "" {
		return "", "", shape.NewError(shape.KindParse, "SHAPE-STR-020", "line must be 'Key: Value'")
	}
	if strings.TrimSpace(v) != v || strings.TrimSpace(k) != k {
		return "", "", shape.NewError(shape.KindCanonical, "SHAPE-CANON-010", "surrounding whitespace forbidden")
	}
	return k, v, nil
}

// Canonicalize is the single canonicalization choke point for descriptors.
// Hashing and CID derivation must go through it.
func Canonicalize(input []byte) ([]byte, error) {
	if _, err := Parse(input); err != nil {
		return nil, err
	}
	return append([]byte(nil), input...), nil
}

// Package measure computes area and perimeter for single shapes and batches.
//
// A batch is run in one of two compliance modes. Strict fails on the first
// input that cannot be built into a shape. Permissive measures the valid
// inputs and reports the rest as exclusions, in input order.
package measure

import (
	"fmt"

	"github.com/ipfs/go-cid"

	"xdao.co/shapes/cidutil"
	"xdao.co/shapes/compliance"
	"xdao.co/shapes/descriptor"
	"xdao.co/shapes/model"
	"xdao.co/shapes/shape"
)

// ID returns the CIDv1 (raw + sha2-256) of the canonical descriptor of s.
func ID(s shape.Shape) (cid.Cid, error) {
	b, err := canonicalBytes(s)
	if err != nil {
		return cid.Undef, err
	}
	return cidutil.CIDv1RawSHA256CID(b)
}

// Fingerprint returns the hex digest of the canonical descriptor of s.
// hashAlg must be one of: sha256, sha512, sha3-256.
func Fingerprint(s shape.Shape, hashAlg string) (string, error) {
	b, err := canonicalBytes(s)
	if err != nil {
		return "", err
	}
	return cidutil.Digest(hashAlg, b)
}

func canonicalBytes(s shape.Shape) ([]byte, error) {
	if s == nil {
		return nil, shape.NewError(shape.KindInternal, "SHAPE-INTERNAL-003", "nil shape")
	}
	b, err := descriptor.Render(descriptor.Describe(s))
	if err != nil {
		return nil, err
	}
	return descriptor.Canonicalize(b)
}

// Measure returns the boundary view of s.
func Measure(s shape.Shape) (model.Measurement, error) {
	id, err := ID(s)
	if err != nil {
		return model.Measurement{}, err
	}
	m := model.Measurement{
		Kind:      string(s.Kind()),
		CID:       id.String(),
		Area:      s.Area(),
		Perimeter: s.Perimeter(),
	}
	if t, ok := s.(shape.Triangle); ok {
		right := t.IsRight()
		m.Right = &right
	}
	return m, nil
}

// All builds and measures every spec.
//
// In strict mode the returned error wraps the first failing item's error.
func All(specs []descriptor.Spec, mode compliance.ComplianceMode) (*model.Report, error) {
	items := make([]buildFunc, len(specs))
	for i, s := range specs {
		s := s // per-iteration copy (go 1.21 loop semantics)
		items[i] = func() (shape.Kind, shape.Shape, error) {
			built, err := descriptor.Build(s)
			return s.Kind, built, err
		}
	}
	return run(items, mode)
}

// AllDescriptors parses canonical descriptors and measures them like All.
// Non-canonical descriptors fail (or are excluded) with an INVALID_REQUEST code.
func AllDescriptors(docs [][]byte, mode compliance.ComplianceMode) (*model.Report, error) {
	items := make([]buildFunc, len(docs))
	for i, d := range docs {
		d := d // per-iteration copy (go 1.21 loop semantics)
		items[i] = func() (shape.Kind, shape.Shape, error) {
			spec, err := descriptor.Parse(d)
			if err != nil {
				return "", nil, err
			}
			built, err := descriptor.Build(spec)
			return spec.Kind, built, err
		}
	}
	return run(items, mode)
}

// buildFunc returns the kind it attempted, even on failure, so that
// exclusions can name it. The kind is empty when the input did not parse.
type buildFunc func() (shape.Kind, shape.Shape, error)

func run(items []buildFunc, mode compliance.ComplianceMode) (*model.Report, error) {
	report := &model.Report{
		Compliance:   reportMode(mode),
		Measurements: []model.Measurement{},
		Exclusions:   []model.Exclusion{},
	}
	for i, build := range items {
		kind, s, err := build()
		if err == nil {
			var m model.Measurement
			m, err = Measure(s)
			if err == nil {
				m.Index = i
				report.Measurements = append(report.Measurements, m)
				report.Totals.Area += m.Area
				report.Totals.Perimeter += m.Perimeter
				continue
			}
		}
		if mode == compliance.Strict {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		ce := model.FromError(err)
		report.Exclusions = append(report.Exclusions, model.Exclusion{
			Index:  i,
			Kind:   string(kind),
			Code:   ce.Code,
			RuleID: ce.RuleID,
			Reason: ce.Message,
		})
	}
	return report, nil
}

func reportMode(mode compliance.ComplianceMode) model.ComplianceMode {
	if mode == compliance.Strict {
		return model.ComplianceStrict
	}
	return model.CompliancePermissive
}

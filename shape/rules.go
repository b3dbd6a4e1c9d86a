package shape

// rule is a named validation step.
//
// id must be stable across versions. apply must be deterministic and side-effect free.
type rule struct {
	id    string
	apply func() error
}

// validateRules runs rules in order, returning the first failure.
// Rule order is the validation order; keep it stable.
func validateRules(rules ...rule) error {
	for _, r := range rules {
		if r.apply == nil {
			return NewError(KindInternal, "SHAPE-INTERNAL-001", "nil rule apply: "+r.id)
		}
		if err := r.apply(); err != nil {
			return err
		}
	}
	return nil
}

// positive builds a rule rejecting non-positive or non-finite lengths.
func positive(ruleID, name string, v float64) rule {
	return rule{id: ruleID, apply: func() error {
		if !isPositiveFinite(v) {
			return NewError(KindInvalidDimension, ruleID, name+" must be a positive finite number")
		}
		return nil
	}}
}

// finiteResult rejects dimensions whose area or perimeter overflows float64.
// Keep it last in every rule list.
func finiteResult(s Shape) rule {
	return rule{id: "SHAPE-DIM-005", apply: func() error {
		if !isFinite(s.Area()) || !isFinite(s.Perimeter()) {
			return NewError(KindInvalidDimension, "SHAPE-DIM-005", string(s.Kind())+" dimensions are too large: area or perimeter overflows")
		}
		return nil
	}}
}

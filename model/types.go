package model

type ComplianceMode string

const (
	CompliancePermissive ComplianceMode = "permissive"
	ComplianceStrict     ComplianceMode = "strict"
)

// Measurement is the computed view of one valid shape.
//
// Right is only meaningful for triangles and is omitted otherwise.
type Measurement struct {
	Index     int     `json:"index"`
	Kind      string  `json:"kind"`
	CID       string  `json:"cid"`
	Area      float64 `json:"area"`
	Perimeter float64 `json:"perimeter"`
	Right     *bool   `json:"right,omitempty"`
}

// Exclusion records an input that could not be built into a shape.
type Exclusion struct {
	Index  int       `json:"index"`
	Kind   string    `json:"kind"`
	Code   ErrorCode `json:"code"`
	RuleID string    `json:"ruleID"`
	Reason string    `json:"reason"`
}

type Totals struct {
	Area      float64 `json:"area"`
	Perimeter float64 `json:"perimeter"`
}

type Report struct {
	Compliance   ComplianceMode `json:"compliance"`
	Measurements []Measurement  `json:"measurements"`
	Exclusions   []Exclusion    `json:"exclusions"`
	Totals       Totals         `json:"totals"`
}

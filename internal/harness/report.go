package harness

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Report is the serialized form of a run, written by the CLI after
// executing scenarios: YAML in text mode, JSON inside the response
// envelope.
type Report struct {
	Scenario string       `json:"scenario" yaml:"scenario"`
	RunToken string       `json:"run_token,omitempty" yaml:"run_token,omitempty"`
	Pass     bool         `json:"pass" yaml:"pass"`
	Steps    []StepReport `json:"steps" yaml:"steps"`
}

// StepReport is one step of a report. Exactly one of Elements, Scalar
// or Bool carries the outcome, matching the record's result class.
type StepReport struct {
	Op       string    `json:"op" yaml:"op"`
	RecordID string    `json:"record_id" yaml:"record_id"`
	Kind     string    `json:"kind,omitempty" yaml:"kind,omitempty"`
	Elements []float64 `json:"elements,omitempty" yaml:"elements,flow,omitempty"`
	Scalar   *float64  `json:"scalar,omitempty" yaml:"scalar,omitempty"`
	Bool     *bool     `json:"bool,omitempty" yaml:"bool,omitempty"`
	Failures []string  `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// NewReport flattens a run result for serialization.
func NewReport(res *Result) Report {
	rep := Report{Scenario: res.Scenario, RunToken: res.RunToken, Pass: res.Pass}
	for _, step := range res.Steps {
		sr := StepReport{Op: step.Op, RecordID: step.RecordID, Failures: step.Failures}
		r := step.Record.Result
		switch {
		case r.Vector != nil:
			sr.Kind = r.Vector.Kind
			sr.Elements = r.Vector.Elements
		case r.Scalar != nil:
			sr.Scalar = r.Scalar
		case r.Bool != nil:
			sr.Bool = r.Bool
		}
		rep.Steps = append(rep.Steps, sr)
	}
	return rep
}

// WriteYAML encodes the report to w.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

package verifier

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a named pair of scripts: the writes the code under test must issue and the reply lines it is
// served.
type Scenario struct {
	Name   string   `yaml:"name"`
	Writes []string `yaml:"writes"`
	Reads  []string `yaml:"reads"`
}

// Run creates an Exchange for the scenario, passes it to fn, and validates teardown on every exit path.
//
// The returned error joins the error of fn with any protocol mismatch. A mismatch already returned by fn is
// reported once. If fn panics, teardown is still validated and logged before the panic is re-raised.
func (s Scenario) Run(fn func(ex *Exchange) error, opts ...Option) (err error) {
	ex := New(s.Writes, s.Reads, opts...)

	defer func() {
		if r := recover(); r != nil {
			if verr := ex.Verify(); verr != nil {
				ex.logger.Error("scenario aborted by panic", "scenario", s.Name, "error", verr)
			}
			panic(r)
		}
	}()

	fnErr := fn(ex)
	verr := ex.Verify()
	if verr != nil && fnErr != nil && errors.Is(fnErr, ex.Failed()) {
		// fn already surfaced the first mismatch
		verr = nil
	}

	if fnErr == nil && verr == nil {
		return nil
	}

	return scenarioError(s.Name, errors.Join(fnErr, verr))
}

func scenarioError(name string, err error) error {
	if name == "" {
		return err
	}

	return fmt.Errorf("scenario %q: %w", name, err)
}

// LoadError indicates that a scenario document could not be loaded.
type LoadError struct {
	File    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.File != "" {
		msg = e.File + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ParseScenarios decodes a YAML stream of scenario documents.
//
// A stream may hold several documents separated by "---", each a mapping with name, writes and reads.
func ParseScenarios(r io.Reader) ([]Scenario, error) {
	dec := yaml.NewDecoder(r)

	var scenarios []Scenario
	for i := 0; ; i++ {
		var s Scenario
		err := dec.Decode(&s)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &LoadError{Message: fmt.Sprintf("document #%d", i), Cause: err}
		}
		if len(s.Writes) == 0 && len(s.Reads) == 0 {
			return nil, &LoadError{Message: fmt.Sprintf("document #%d: scenario %q has no writes and no reads", i, s.Name)}
		}
		scenarios = append(scenarios, s)
	}

	return scenarios, nil
}

// LoadScenarios reads the scenario documents of a YAML file.
func LoadScenarios(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{File: path, Message: "open", Cause: err}
	}
	defer f.Close()

	scenarios, err := ParseScenarios(f)
	if err != nil {
		var lerr *LoadError
		if errors.As(err, &lerr) {
			lerr.File = path
		}

		return nil, err
	}

	return scenarios, nil
}

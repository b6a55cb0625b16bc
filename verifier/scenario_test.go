package verifier

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScenario_Run(t *testing.T) {
	bodyErr := errors.New("body failed")

	tests := []struct {
		description string
		scenario    Scenario
		body        func(ex *Exchange) error
		wantErr     []error
		contains    []string
		notContains []string
	}{
		{
			description: "fully consumed",
			scenario:    Scenario{Name: "ack", Writes: []string{"INIT:NAME TRAN"}, Reads: []string{""}},
			body: func(ex *Exchange) error {
				if err := ex.Write("INIT:NAME TRAN"); err != nil {
					return err
				}
				_, err := ex.ReadLine()
				return err
			},
		},
		{
			description: "leftover write",
			scenario:    Scenario{Name: "leftover", Writes: []string{"OUTP?", "OUTP 1"}, Reads: []string{"0"}},
			body: func(ex *Exchange) error {
				if err := ex.Write("OUTP?"); err != nil {
					return err
				}
				_, err := ex.ReadLine()
				return err
			},
			wantErr:  []error{ErrProtocolMismatch},
			contains: []string{`scenario "leftover"`, "expected write never occurred", `"OUTP 1"`},
		},
		{
			description: "mismatch surfaced by the body is reported once",
			scenario:    Scenario{Name: "mismatch", Writes: []string{"OUTP 1"}},
			body: func(ex *Exchange) error {
				return ex.Write("OUTP ON")
			},
			wantErr:     []error{ErrProtocolMismatch},
			contains:    []string{`expected "OUTP 1", got "OUTP ON"`},
			notContains: []string{"never occurred"},
		},
		{
			description: "swallowed mismatch is still reported",
			scenario:    Scenario{Writes: []string{"OUTP 1"}},
			body: func(ex *Exchange) error {
				_ = ex.Write("OUTP ON")
				return nil
			},
			wantErr:  []error{ErrProtocolMismatch},
			contains: []string{"write mismatch"},
		},
		{
			description: "body error joined with leftovers",
			scenario:    Scenario{Writes: []string{"*RST"}},
			body: func(_ *Exchange) error {
				return bodyErr
			},
			wantErr:  []error{bodyErr, ErrProtocolMismatch},
			contains: []string{"body failed", `"*RST"`},
		},
	}

	for i, tt := range tests {
		t.Logf("Test #%d: %s", i, tt.description)
		require := require.New(t)

		err := tt.scenario.Run(tt.body, WithLogger(newErrorLogger()))
		if len(tt.wantErr) == 0 {
			require.NoError(err)
			continue
		}

		for _, want := range tt.wantErr {
			require.ErrorIs(err, want)
		}
		for _, s := range tt.contains {
			require.Contains(err.Error(), s)
		}
		for _, s := range tt.notContains {
			require.NotContains(err.Error(), s)
		}
		require.Equal(1, strings.Count(err.Error(), "protocol mismatch"))
	}
}

func TestScenario_RunPanic(t *testing.T) {
	require := require.New(t)

	log := newErrorLogger()
	s := Scenario{Name: "panics", Writes: []string{"VOLT?"}, Reads: []string{"1.0"}}

	require.PanicsWithValue("boom", func() {
		_ = s.Run(func(_ *Exchange) error {
			panic("boom")
		}, WithLogger(log))
	})

	// teardown ran: leftovers were logged before the panic propagated
	log.AssertCalled(t, "Error", "scenario aborted by panic", mock.Anything)
}

func TestParseScenarios(t *testing.T) {
	require := require.New(t)

	input := `
name: status
writes: ["STAT:OPER:COND?"]
reads: ["32"]
---
name: reset
writes: ["*RST"]
`
	scenarios, err := ParseScenarios(strings.NewReader(input))
	require.NoError(err)
	require.Len(scenarios, 2)
	require.Equal(Scenario{Name: "status", Writes: []string{"STAT:OPER:COND?"}, Reads: []string{"32"}}, scenarios[0])
	require.Equal("reset", scenarios[1].Name)
	require.Empty(scenarios[1].Reads)

	_, err = ParseScenarios(strings.NewReader("name: empty\n"))
	var lerr *LoadError
	require.ErrorAs(err, &lerr)
	require.Contains(err.Error(), "no writes and no reads")

	_, err = ParseScenarios(strings.NewReader("writes: {"))
	require.ErrorAs(err, &lerr)
	require.Error(lerr.Cause)
}

func TestLoadScenarios(t *testing.T) {
	require := require.New(t)

	path := filepath.Join("testdata", "output.yaml")
	scenarios, err := LoadScenarios(path)
	require.NoError(err)
	require.Len(scenarios, 2)

	err = scenarios[0].Run(func(ex *Exchange) error {
		if err := ex.Write("OUTP?"); err != nil {
			return err
		}
		if _, err := ex.ReadLine(); err != nil {
			return err
		}
		return ex.Write("OUTP 1")
	})
	require.NoError(err)

	_, err = LoadScenarios(filepath.Join("testdata", "missing.yaml"))
	var lerr *LoadError
	require.ErrorAs(err, &lerr)
	require.Equal(filepath.Join("testdata", "missing.yaml"), lerr.File)
}

func TestExpect(t *testing.T) {
	ex := Expect(t, []string{"DISP:TEXT \"HELLO\""}, []string{""})
	require.NoError(t, ex.Write("DISP:TEXT \"HELLO\""))
	_, err := ex.ReadLine()
	require.NoError(t, err)
}

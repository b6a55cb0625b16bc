package verifier

import (
	"errors"
	"strings"
	"testing"

	"github.com/arloliu/go-scpikit/logger"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExchange_BooleanWriteAfterRead(t *testing.T) {
	require := require.New(t)

	ex := New([]string{"OUTP?", "OUTP 1"}, []string{"0"})

	require.NoError(ex.Write("OUTP?"))
	reply, err := ex.ReadLine()
	require.NoError(err)
	require.Equal("0", reply)
	require.Equal(1, ex.ConsumedReads())

	require.NoError(ex.Write("OUTP 1"))
	require.Equal(2, ex.ConsumedWrites())
	require.Equal(1, ex.ConsumedReads())

	require.NoError(ex.Verify())
	require.NoError(ex.Failed())
}

func TestExchange_AcknowledgedWrite(t *testing.T) {
	require := require.New(t)

	ex := New([]string{"INIT:NAME TRAN"}, []string{""})
	require.NoError(ex.Write("INIT:NAME TRAN"))
	reply, err := ex.ReadLine()
	require.NoError(err)
	require.Empty(reply)
	require.NoError(ex.Verify())
}

func TestExchange_WriteMismatch(t *testing.T) {
	require := require.New(t)

	log := newErrorLogger()
	ex := New([]string{"VOLT 1.000000e+00", "VOLT?"}, []string{"1.0"}, WithLogger(log))

	err := ex.Write("VOLT 1.0")
	require.ErrorIs(err, ErrProtocolMismatch)

	var merr *MismatchError
	require.True(errors.As(err, &merr))
	require.Equal(WriteMismatch, merr.Kind)
	require.Equal(0, merr.Position)
	require.Equal("VOLT 1.000000e+00", merr.Expected)
	require.Equal("VOLT 1.0", merr.Actual)
	require.Contains(err.Error(), `expected "VOLT 1.000000e+00", got "VOLT 1.0"`)

	// poisoned: neither cursor moves after the first mismatch
	require.Same(merr, unwrapMismatch(t, ex.Write("VOLT 1.000000e+00")))
	_, rerr := ex.ReadLine()
	require.Same(merr, unwrapMismatch(t, rerr))
	require.Equal(0, ex.ConsumedWrites())
	require.Equal(0, ex.ConsumedReads())

	// teardown reports the first failure instead of the leftovers
	require.Same(merr, unwrapMismatch(t, ex.Verify()))
	log.AssertNumberOfCalls(t, "Error", 1)
}

func TestExchange_Overrun(t *testing.T) {
	tests := []struct {
		description string
		run         func(ex *Exchange) error
		kind        MismatchKind
		position    int
		message     string
	}{
		{
			description: "write after every expected write",
			run: func(ex *Exchange) error {
				if err := ex.Write("*CLS"); err != nil {
					return err
				}
				return ex.Write("*RST")
			},
			kind:     UnexpectedWrite,
			position: 1,
			message:  `unexpected write #1: "*RST"`,
		},
		{
			description: "read after every canned reply",
			run: func(ex *Exchange) error {
				if err := ex.Write("*CLS"); err != nil {
					return err
				}
				_, err := ex.ReadLine()
				return err
			},
			kind:     UnexpectedRead,
			position: 0,
			message:  "unexpected read, no canned reply available",
		},
	}

	for i, tt := range tests {
		t.Logf("Test #%d: %s", i, tt.description)
		require := require.New(t)

		ex := New([]string{"*CLS"}, nil, WithLogger(newErrorLogger()))
		err := tt.run(ex)
		require.ErrorIs(err, ErrProtocolMismatch)

		merr := unwrapMismatch(t, err)
		require.Equal(tt.kind, merr.Kind)
		require.Equal(tt.position, merr.Position)
		require.Contains(err.Error(), tt.message)
	}
}

func TestExchange_Leftovers(t *testing.T) {
	require := require.New(t)

	ex := New([]string{"CURR?", "CURR 1.000000e-01", "CURR?"}, []string{"0.5", "0.1"}, WithLogger(newErrorLogger()))
	require.NoError(ex.Write("CURR?"))
	_, err := ex.ReadLine()
	require.NoError(err)

	err = ex.Verify()
	require.ErrorIs(err, ErrProtocolMismatch)
	require.Contains(err.Error(), "expected write never occurred")
	require.Contains(err.Error(), `"CURR 1.000000e-01", "CURR?"`)
	require.Contains(err.Error(), "expected read never occurred")
	require.Contains(err.Error(), `"0.1"`)

	var merr *MismatchError
	require.True(errors.As(err, &merr))
	require.Equal(PendingWrites, merr.Kind)
	require.Equal(1, merr.Position)
	require.Equal([]string{"CURR 1.000000e-01", "CURR?"}, merr.Remaining)
}

func TestExchange_OnlyPendingReads(t *testing.T) {
	require := require.New(t)

	ex := New(nil, []string{""}, WithLogger(newErrorLogger()))
	err := ex.Verify()
	require.ErrorIs(err, ErrProtocolMismatch)
	require.False(strings.Contains(err.Error(), "expected write never occurred"))
	require.Contains(err.Error(), "expected read never occurred")
}

func TestExchange_VerifyPendingKinds(t *testing.T) {
	tests := []struct {
		description string
		writes      []string
		reads       []string
		consume     int
		kinds       []MismatchKind
	}{
		{description: "nothing scripted", kinds: nil},
		{description: "everything consumed", writes: []string{"VOLT?"}, reads: []string{"1"}, consume: 1, kinds: nil},
		{description: "empty reply left over", writes: []string{"VOLT?"}, reads: []string{"1", ""}, consume: 1, kinds: []MismatchKind{PendingReads}},
		{description: "empty write left over", writes: []string{"VOLT?", ""}, reads: []string{"1"}, consume: 1, kinds: []MismatchKind{PendingWrites}},
		{description: "both left over", writes: []string{"VOLT?"}, reads: []string{"1"}, consume: 0, kinds: []MismatchKind{PendingWrites, PendingReads}},
	}

	require := require.New(t)

	for i, tt := range tests {
		t.Logf("Test #%d: %s", i, tt.description)
		ex := New(tt.writes, tt.reads, WithLogger(newErrorLogger()))
		for j := 0; j < tt.consume; j++ {
			require.NoError(ex.Write(tt.writes[j]))
			_, err := ex.ReadLine()
			require.NoError(err)
		}

		err := ex.Verify()
		if len(tt.kinds) == 0 {
			require.NoError(err)
			continue
		}

		require.ErrorIs(err, ErrProtocolMismatch)
		for _, kind := range tt.kinds {
			require.Contains(err.Error(), kind.String())
		}
	}
}

func TestExchange_ScriptsAreCopied(t *testing.T) {
	require := require.New(t)

	writes := []string{"OUTP?"}
	reads := []string{"1"}
	ex := New(writes, reads)
	writes[0] = "VOLT?"
	reads[0] = "0"

	require.NoError(ex.Write("OUTP?"))
	reply, err := ex.ReadLine()
	require.NoError(err)
	require.Equal("1", reply)
	require.NoError(ex.Verify())
}

func unwrapMismatch(t *testing.T, err error) *MismatchError {
	t.Helper()

	var merr *MismatchError
	require.True(t, errors.As(err, &merr), "expected a MismatchError, got %v", err)

	return merr
}

func newErrorLogger() *logger.MockLogger {
	m := logger.NewMockLogger()
	m.On("Error", mock.Anything, mock.Anything).Return()

	return m
}

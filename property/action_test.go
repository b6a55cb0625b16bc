package property

import (
	"testing"

	"github.com/arloliu/go-scpikit/codec"
	"github.com/arloliu/go-scpikit/verifier"
	"github.com/stretchr/testify/require"
)

func TestAction_AcknowledgedWrite(t *testing.T) {
	require := require.New(t)

	metrics := &countingMetrics{}
	ex := verifier.Expect(t, []string{"INIT:NAME TRAN"}, []string{""})
	initTrigger := Must(NewAction(NewSession(ex, WithMetrics(metrics)), ActionSpec[NoArg]{
		Name:     "init_output_trigger",
		Template: "INIT:NAME TRAN",
		Ack:      ExpectReply(""),
	}))
	require.Equal("init_output_trigger", initTrigger.Name())

	reply, err := initTrigger.Fire()
	require.NoError(err)
	require.Empty(reply)
	require.Equal(1, ex.ConsumedWrites())
	require.Equal(1, ex.ConsumedReads())
	require.Equal(1, metrics.acks)
	require.Equal(0, metrics.queries)
}

func TestAction_WithArgument(t *testing.T) {
	require := require.New(t)

	ex := verifier.Expect(t, []string{`DISP:TEXT "SAY ""HI"""`}, []string{""})
	displayText := Must(NewAction(NewSession(ex), ActionSpec[string]{
		Name:     "display_text",
		Template: "DISP:TEXT %s",
		Codec:    codec.NewQuotedString(),
	}))

	reply, err := displayText.Do(`SAY "HI"`)
	require.NoError(err)
	require.Empty(reply)
}

func TestAction_TemplateKeepsLiteralPercent(t *testing.T) {
	tests := []struct {
		description string
		template    string
		value       string
		expected    string
	}{
		{description: "percent before placeholder", template: "CAL:LEV 100%;:DISP:TEXT %s", value: "CAL", expected: `CAL:LEV 100%;:DISP:TEXT "CAL"`},
		{description: "escaped percent is sent as written", template: "DISP:TEXT %s%%", value: "X", expected: `DISP:TEXT "X"%%`},
		{description: "percent in value", template: "DISP:TEXT %s", value: "5%d", expected: `DISP:TEXT "5%d"`},
	}

	require := require.New(t)

	for i, tt := range tests {
		t.Logf("Test #%d: %s", i, tt.description)
		ex := verifier.Expect(t, []string{tt.expected}, []string{""})
		action := Must(NewAction(NewSession(ex), ActionSpec[string]{
			Name:     "display_text",
			Template: tt.template,
			Codec:    codec.NewQuotedString(),
		}))

		_, err := action.Do(tt.value)
		require.NoError(err)
		require.Equal(1, ex.ConsumedWrites())
	}
}

func TestAction_AckRejected(t *testing.T) {
	require := require.New(t)

	ex := verifier.Expect(t, []string{"*OPC?", "*CLS"}, []string{"0"})
	session := NewSession(ex)
	opc := Must(NewAction(session, ActionSpec[NoArg]{Name: "opc", Template: "*OPC?", Ack: ExpectReply("1")}))

	reply, err := opc.Fire()
	require.Error(err)
	require.Contains(err.Error(), `unexpected completion reply "0"`)
	require.Equal("0", reply)

	// the reply was consumed; the session stays in step
	require.NoError(session.SendCmd("*CLS"))
}

func TestNewAction_Invalid(t *testing.T) {
	session := NewSession(verifier.New(nil, nil))

	tests := []struct {
		description string
		create      func() error
	}{
		{
			description: "empty name",
			create: func() error {
				_, err := NewAction(session, ActionSpec[NoArg]{Template: "*RST"})
				return err
			},
		},
		{
			description: "empty template",
			create: func() error {
				_, err := NewAction(session, ActionSpec[NoArg]{Name: "reset"})
				return err
			},
		},
		{
			description: "verb without codec",
			create: func() error {
				_, err := NewAction(session, ActionSpec[NoArg]{Name: "text", Template: "DISP:TEXT %s"})
				return err
			},
		},
		{
			description: "codec without verb",
			create: func() error {
				_, err := NewAction(session, ActionSpec[string]{Name: "text", Template: "DISP:TEXT", Codec: codec.NewString()})
				return err
			},
		},
		{
			description: "no session",
			create: func() error {
				_, err := NewAction(nil, ActionSpec[NoArg]{Name: "reset", Template: "*RST"})
				return err
			},
		},
	}

	for i, tt := range tests {
		t.Logf("Test #%d: %s", i, tt.description)
		require.ErrorIs(t, tt.create(), ErrInvalidSpec)
	}
}

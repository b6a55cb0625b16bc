package hp6632b

import (
	"fmt"
	"strings"

	"github.com/arloliu/go-scpikit/codec"
	"github.com/arloliu/go-scpikit/errqueue"
	"github.com/arloliu/go-scpikit/property"
	"github.com/arloliu/go-scpikit/unit"
)

// DisplayWidth is the number of characters the front panel display shows.
const DisplayWidth = 12

// HP6632B is one supply bound to a session.
type HP6632B struct {
	session *property.Session
	errors  *errqueue.Decoder[ErrorCode]
	table   *property.Table

	// Output programming
	Voltage               *property.Property[unit.Quantity]
	Current               *property.Property[unit.Quantity]
	Overvoltage           *property.Property[unit.Quantity]
	Overcurrent           *property.Property[bool]
	Output                *property.Property[bool]
	OutputProtectionDelay *property.Property[unit.Quantity]
	VoltageTrigger        *property.Property[unit.Quantity]
	CurrentTrigger        *property.Property[unit.Quantity]
	VoltageALCBandwidth   *property.Property[ALCBandwidth]

	// Measurement
	VoltageSense       *property.Property[unit.Quantity]
	CurrentSense       *property.Property[unit.Quantity]
	CurrentSenseRange  *property.Property[unit.Quantity]
	SenseSweepPoints   *property.Property[int64]
	SenseSweepInterval *property.Property[unit.Quantity]
	SenseWindow        *property.Property[SenseWindow]

	// Digital port and fault indicator
	OutputDFI           *property.Property[bool]
	OutputDFISource     *property.Property[DFISource]
	OutputRemoteInhibit *property.Property[RemoteInhibit]
	DigitalFunction     *property.Property[DigitalFunction]
	DigitalData         *property.Property[int64]

	// Front panel
	DisplayTextMode *property.Property[bool]

	Name *property.Property[string]

	initOutputTrigger *property.Action[property.NoArg]
	displayText       *property.Action[string]
}

// Option configures an HP6632B.
type Option func(*options)

type options struct {
	errorFallback *ErrorCode
}

// WithUnknownErrorCode decodes error codes missing from ErrorCodes as code instead of failing.
func WithUnknownErrorCode(code ErrorCode) Option {
	return func(o *options) {
		o.errorFallback = &code
	}
}

// New binds every property of the supply to session.
func New(session *property.Session, opts ...Option) (*HP6632B, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	table := ErrorCodes
	if o.errorFallback != nil {
		table = newErrorCodeTable(errqueue.WithFallback(*o.errorFallback))
	}

	p := &HP6632B{
		session: session,
		errors:  errqueue.NewDecoder(table),
	}

	b := binder{session: session}
	p.Voltage = bind(&b, property.Spec[unit.Quantity]{Name: "voltage", Query: "VOLT?", Set: "VOLT %s", Codec: codec.NewQuantity(unit.Volt)})
	p.Current = bind(&b, property.Spec[unit.Quantity]{Name: "current", Query: "CURR?", Set: "CURR %s", Codec: codec.NewQuantity(unit.Ampere)})
	p.VoltageSense = bind(&b, property.Spec[unit.Quantity]{Name: "voltage_sense", Query: "MEAS:VOLT?", Codec: codec.NewQuantity(unit.Volt)})
	p.CurrentSense = bind(&b, property.Spec[unit.Quantity]{Name: "current_sense", Query: "MEAS:CURR?", Codec: codec.NewQuantity(unit.Ampere)})
	p.Overvoltage = bind(&b, property.Spec[unit.Quantity]{Name: "overvoltage", Query: "VOLT:PROT?", Set: "VOLT:PROT %s", Codec: codec.NewQuantity(unit.Volt)})
	p.Overcurrent = bind(&b, property.Spec[bool]{Name: "overcurrent", Query: "CURR:PROT:STAT?", Set: "CURR:PROT:STAT %s", Codec: codec.NewBoolean()})
	p.Output = bind(&b, property.Spec[bool]{Name: "output", Query: "OUTP?", Set: "OUTP %s", Codec: codec.NewBoolean()})
	p.OutputProtectionDelay = bind(&b, property.Spec[unit.Quantity]{Name: "output_protection_delay", Query: "OUTP:PROT:DEL?", Set: "OUTP:PROT:DEL %s", Codec: codec.NewQuantity(unit.Second)})
	p.VoltageTrigger = bind(&b, property.Spec[unit.Quantity]{Name: "voltage_trigger", Query: "VOLT:TRIG?", Set: "VOLT:TRIG %s", Codec: codec.NewQuantity(unit.Volt)})
	p.CurrentTrigger = bind(&b, property.Spec[unit.Quantity]{Name: "current_trigger", Query: "CURR:TRIG?", Set: "CURR:TRIG %s", Codec: codec.NewQuantity(unit.Ampere)})
	p.VoltageALCBandwidth = bind(&b, property.Spec[ALCBandwidth]{Name: "voltage_alc_bandwidth", Query: "VOLT:ALC:BAND?", Codec: ALCBandwidthTable})
	p.CurrentSenseRange = bind(&b, property.Spec[unit.Quantity]{Name: "current_sense_range", Query: "SENS:CURR:RANGE?", Set: "SENS:CURR:RANGE %s", Codec: codec.NewQuantity(unit.Ampere)})
	p.SenseSweepPoints = bind(&b, property.Spec[int64]{Name: "sense_sweep_points", Query: "SENS:SWE:POIN?", Set: "SENS:SWE:POIN %s", Codec: codec.NewScientificInteger()})
	p.SenseSweepInterval = bind(&b, property.Spec[unit.Quantity]{Name: "sense_sweep_interval", Query: "SENS:SWE:TINT?", Set: "SENS:SWE:TINT %s", Codec: codec.NewQuantity(unit.Second)})
	p.SenseWindow = bind(&b, property.Spec[SenseWindow]{Name: "sense_window", Query: "SENS:WIND?", Set: "SENS:WIND %s", Codec: SenseWindowMapping})
	p.OutputDFI = bind(&b, property.Spec[bool]{Name: "output_dfi", Query: "OUTP:DFI?", Set: "OUTP:DFI %s", Codec: codec.NewBoolean()})
	p.OutputDFISource = bind(&b, property.Spec[DFISource]{Name: "output_dfi_source", Query: "OUTP:DFI:SOUR?", Set: "OUTP:DFI:SOUR %s", Codec: DFISourceMapping})
	p.OutputRemoteInhibit = bind(&b, property.Spec[RemoteInhibit]{Name: "output_remote_inhibit", Query: "OUTP:RI:MODE?", Set: "OUTP:RI:MODE %s", Codec: RemoteInhibitMapping})
	p.DigitalFunction = bind(&b, property.Spec[DigitalFunction]{Name: "digital_function", Query: "DIG:FUNC?", Set: "DIG:FUNC %s", Codec: DigitalFunctionMapping})
	p.DigitalData = bind(&b, property.Spec[int64]{Name: "digital_data", Query: "DIG:DATA?", Set: "DIG:DATA %s", Codec: codec.NewInteger()})
	p.DisplayTextMode = bind(&b, property.Spec[bool]{Name: "display_textmode", Query: "DISP:MODE?", Set: "DISP:MODE %s", Codec: codec.NewTokenBoolean("TEXT", "NORM")})
	p.Name = bind(&b, property.Spec[string]{Name: "name", Query: "*IDN?", Codec: codec.NewString()})
	if b.err != nil {
		return nil, b.err
	}

	var err error
	p.table, err = property.NewTable(b.entries...)
	if err != nil {
		return nil, err
	}

	p.initOutputTrigger, err = property.NewAction(session, property.ActionSpec[property.NoArg]{
		Name:     "init_output_trigger",
		Template: "INIT:NAME TRAN",
	})
	if err != nil {
		return nil, err
	}

	p.displayText, err = property.NewAction(session, property.ActionSpec[string]{
		Name:     "display_text",
		Template: "DISP:TEXT %s",
		Codec:    codec.NewQuotedString(),
	})
	if err != nil {
		return nil, err
	}

	return p, nil
}

// binder accumulates bound properties and keeps the first binding error.
type binder struct {
	session *property.Session
	entries []property.Descriptor
	err     error
}

func bind[T any](b *binder, spec property.Spec[T]) *property.Property[T] {
	if b.err != nil {
		return nil
	}

	p, err := property.New(b.session, spec)
	if err != nil {
		b.err = fmt.Errorf("bind %s: %w", spec.Name, err)
		return nil
	}
	b.entries = append(b.entries, p)

	return p
}

// Session returns the session the supply is bound to.
func (p *HP6632B) Session() *property.Session { return p.session }

// Properties returns the property table of the supply.
func (p *HP6632B) Properties() *property.Table { return p.table }

// InitOutputTrigger arms the output trigger system. The supply acknowledges with one empty line.
func (p *HP6632B) InitOutputTrigger() error {
	_, err := p.initOutputTrigger.Fire()
	return err
}

// AbortOutputTrigger cancels a pending output trigger.
func (p *HP6632B) AbortOutputTrigger() error {
	return p.session.SendCmd("ABOR")
}

// DisplayText shows text on the front panel and returns the text actually displayed: upper case, cut to
// DisplayWidth characters.
func (p *HP6632B) DisplayText(text string) (string, error) {
	text = strings.ToUpper(text)
	if r := []rune(text); len(r) > DisplayWidth {
		text = string(r[:DisplayWidth])
	}

	if _, err := p.displayText.Do(text); err != nil {
		return "", err
	}

	return text, nil
}

// ClearProtection clears latched overvoltage, overcurrent and remote inhibit conditions.
func (p *HP6632B) ClearProtection() error {
	return p.session.SendCmd("OUTP:PROT:CLE")
}

// Reset restores the power-on state.
func (p *HP6632B) Reset() error {
	return p.session.SendCmd("*RST")
}

// Clear clears the status registers and the error queue.
func (p *HP6632B) Clear() error {
	return p.session.SendCmd("*CLS")
}

// CheckErrorQueue reads and empties the error queue. The result is in the order reported by the supply and is
// empty when the queue holds no error.
func (p *HP6632B) CheckErrorQueue() ([]ErrorCode, error) {
	reply, err := p.session.Query("SYST:ERR:CODE:ALL?")
	if err != nil {
		return nil, err
	}

	codes, err := p.errors.Decode(reply)
	if err != nil {
		return nil, fmt.Errorf("check error queue: %w", err)
	}
	if len(codes) == 1 && codes[0] == NoError {
		return []ErrorCode{}, nil
	}

	return codes, nil
}

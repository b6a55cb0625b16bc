package hp6632b

import (
	"github.com/arloliu/go-scpikit/registry"
)

// DFISource selects the status summary that drives the discrete fault indicator output.
type DFISource uint8

const (
	DFIQuestionable DFISource = iota
	DFIOperation
	DFIEventStatusBit
	DFIRequestServiceBit
	DFIOff
)

// DFISourceMapping maps DFISource values to their device tokens.
var DFISourceMapping = registry.MustEnumMapping([]registry.Pair[DFISource]{
	{Value: DFIQuestionable, Token: "QUES"},
	{Value: DFIOperation, Token: "OPER"},
	{Value: DFIEventStatusBit, Token: "ESB"},
	{Value: DFIRequestServiceBit, Token: "RQS"},
	{Value: DFIOff, Token: "OFF"},
})

func (s DFISource) String() string { return tokenOf(DFISourceMapping, s) }

// RemoteInhibit is the operating mode of the remote inhibit input.
type RemoteInhibit uint8

const (
	RemoteInhibitLatching RemoteInhibit = iota
	RemoteInhibitLive
	RemoteInhibitOff
)

// RemoteInhibitMapping maps RemoteInhibit values to their device tokens.
var RemoteInhibitMapping = registry.MustEnumMapping([]registry.Pair[RemoteInhibit]{
	{Value: RemoteInhibitLatching, Token: "LATC"},
	{Value: RemoteInhibitLive, Token: "LIVE"},
	{Value: RemoteInhibitOff, Token: "OFF"},
})

func (m RemoteInhibit) String() string { return tokenOf(RemoteInhibitMapping, m) }

// DigitalFunction configures the digital control port either as remote inhibit and fault indicator, or as
// a general purpose digital I/O port.
type DigitalFunction uint8

const (
	DigitalRemoteInhibit DigitalFunction = iota
	DigitalData
)

// DigitalFunctionMapping maps DigitalFunction values to their device tokens.
var DigitalFunctionMapping = registry.MustEnumMapping([]registry.Pair[DigitalFunction]{
	{Value: DigitalRemoteInhibit, Token: "RIDF"},
	{Value: DigitalData, Token: "DIG"},
})

func (f DigitalFunction) String() string { return tokenOf(DigitalFunctionMapping, f) }

// SenseWindow is the window function applied to measurement samples.
type SenseWindow uint8

const (
	WindowHanning SenseWindow = iota
	WindowRectangular
)

// SenseWindowMapping maps SenseWindow values to their device tokens.
var SenseWindowMapping = registry.MustEnumMapping([]registry.Pair[SenseWindow]{
	{Value: WindowHanning, Token: "HANN"},
	{Value: WindowRectangular, Token: "RECT"},
})

func (w SenseWindow) String() string { return tokenOf(SenseWindowMapping, w) }

// ALCBandwidth is the bandwidth class of the voltage loop, reported in Hz.
type ALCBandwidth uint8

const (
	BandwidthNormal ALCBandwidth = iota
	BandwidthFast
)

// ALCBandwidthTable classifies a reported loop bandwidth: 15 kHz and up is normal, 60 kHz and up is fast.
var ALCBandwidthTable = registry.MustClassificationTable([]registry.Threshold[ALCBandwidth]{
	{Lower: 1.5e4, Value: BandwidthNormal},
	{Lower: 6e4, Value: BandwidthFast},
})

func (b ALCBandwidth) String() string {
	switch b {
	case BandwidthNormal:
		return "normal"
	case BandwidthFast:
		return "fast"
	default:
		return "unknown"
	}
}

func tokenOf[T comparable](m *registry.EnumMapping[T], v T) string {
	token, err := m.Token(v)
	if err != nil {
		return "UNKNOWN"
	}

	return token
}

package hp6632b

import (
	"strconv"

	"github.com/arloliu/go-scpikit/errqueue"
)

// ErrorCode is an entry of the supply's error queue. Negative codes are the SCPI standard errors, positive
// codes are specific to the supply.
type ErrorCode int

const (
	NoError ErrorCode = 0

	// SCPI command errors
	CommandError                ErrorCode = -100
	InvalidCharacter            ErrorCode = -101
	SyntaxError                 ErrorCode = -102
	InvalidSeparator            ErrorCode = -103
	DataTypeError               ErrorCode = -104
	GETNotAllowed               ErrorCode = -105
	ParameterNotAllowed         ErrorCode = -108
	MissingParameter            ErrorCode = -109
	CommandHeaderError          ErrorCode = -110
	HeaderSeparatorError        ErrorCode = -111
	ProgramMnemonicTooLong      ErrorCode = -112
	UndefinedHeader             ErrorCode = -113
	HeaderSuffixOutOfRange      ErrorCode = -114
	UnexpectedNumberOfParameter ErrorCode = -115
	NumericDataError            ErrorCode = -120
	InvalidCharacterInNumber    ErrorCode = -121
	ExponentTooLarge            ErrorCode = -123
	TooManyDigits               ErrorCode = -124
	NumericDataNotAllowed       ErrorCode = -128
	SuffixError                 ErrorCode = -130
	InvalidSuffix               ErrorCode = -131
	SuffixTooLong               ErrorCode = -134
	SuffixNotAllowed            ErrorCode = -138
	CharacterDataError          ErrorCode = -140
	InvalidCharacterData        ErrorCode = -141
	CharacterDataTooLong        ErrorCode = -144
	CharacterDataNotAllowed     ErrorCode = -148
	StringDataError             ErrorCode = -150
	InvalidStringData           ErrorCode = -151
	StringDataNotAllowed        ErrorCode = -158
	BlockDataError              ErrorCode = -160
	InvalidBlockData            ErrorCode = -161
	BlockDataNotAllowed         ErrorCode = -168
	ExpressionError             ErrorCode = -170
	InvalidExpression           ErrorCode = -171
	ExpressionDataNotAllowed    ErrorCode = -178
	MacroError180               ErrorCode = -180
	InvalidOutsideMacroDef      ErrorCode = -181
	InvalidInsideMacroDef       ErrorCode = -183
	MacroParameterError         ErrorCode = -184
	MacroError190               ErrorCode = -190

	// SCPI execution errors
	ExecutionError           ErrorCode = -200
	InvalidWhileInLocal      ErrorCode = -201
	SettingsLostDueToRTL     ErrorCode = -202
	TriggerError             ErrorCode = -210
	TriggerIgnored           ErrorCode = -211
	ArmIgnored               ErrorCode = -212
	InitIgnored              ErrorCode = -213
	TriggerDeadlock          ErrorCode = -214
	ArmDeadlock              ErrorCode = -215
	ParameterError           ErrorCode = -220
	SettingsConflict         ErrorCode = -221
	DataOutOfRange           ErrorCode = -222
	TooMuchData              ErrorCode = -223
	IllegalParameterValue    ErrorCode = -224
	DataCorruptOrStale       ErrorCode = -230
	DataQuestionable         ErrorCode = -231
	HardwareError            ErrorCode = -240
	HardwareMissing          ErrorCode = -241
	MassStorageError         ErrorCode = -250
	MissingMassStorage       ErrorCode = -251
	MissingMedia             ErrorCode = -252
	CorruptMedia             ErrorCode = -253
	MediaFull                ErrorCode = -254
	DirectoryFull            ErrorCode = -255
	FileNameNotFound         ErrorCode = -256
	FileNameError            ErrorCode = -257
	MediaProtected           ErrorCode = -258
	ExpressionExecutionError ErrorCode = -260
	MathErrorInExpression    ErrorCode = -261
	MacroUndefinedExecError  ErrorCode = -270
	MacroSyntaxError         ErrorCode = -271
	MacroExecutionError      ErrorCode = -272
	IllegalMacroLabel        ErrorCode = -273
	MacroParameterExecError  ErrorCode = -274
	MacroDefinitionTooLong   ErrorCode = -275
	MacroRecursionError      ErrorCode = -276
	MacroRedefNotAllowed     ErrorCode = -277
	MacroHeaderNotFound      ErrorCode = -278
	ProgramError             ErrorCode = -280
	CannotCreateProgram      ErrorCode = -281
	IllegalProgramName       ErrorCode = -282
	IllegalVariableName      ErrorCode = -283
	ProgramCurrentlyRunning  ErrorCode = -284
	ProgramSyntaxError       ErrorCode = -285
	ProgramRuntimeError      ErrorCode = -286

	// SCPI device-specific errors
	DeviceSpecificError     ErrorCode = -300
	SystemError             ErrorCode = -310
	MemoryError             ErrorCode = -311
	PUDMemoryLost           ErrorCode = -312
	CalibrationMemoryLost   ErrorCode = -313
	SaveRecallMemoryLost    ErrorCode = -314
	ConfigurationMemoryLost ErrorCode = -315
	QueueOverflow           ErrorCode = -350

	// SCPI query errors
	QueryError                     ErrorCode = -400
	QueryInterrupted               ErrorCode = -410
	QueryUnterminated              ErrorCode = -420
	QueryDeadlocked                ErrorCode = -430
	QueryUnterminatedAfterIndefRsp ErrorCode = -440

	// Self-test errors
	RAMRD0ChecksumFailed    ErrorCode = 1
	RAMConfigChecksumFailed ErrorCode = 2
	RAMCalChecksumFailed    ErrorCode = 3
	RAMStateChecksumFailed  ErrorCode = 4
	RAMRSTChecksumFailed    ErrorCode = 5
	RAMSelftest             ErrorCode = 10
	VDACIDACSelftest1       ErrorCode = 11
	VDACIDACSelftest2       ErrorCode = 12
	VDACIDACSelftest3       ErrorCode = 13
	VDACIDACSelftest4       ErrorCode = 14
	OVDACSelftest           ErrorCode = 15
	DigitalIOSelftest       ErrorCode = 80

	// Communication errors
	IngrdRecvBufferOverrun  ErrorCode = 213
	RS232RecvFramingError   ErrorCode = 216
	RS232RecvParityError    ErrorCode = 217
	RS232RecvOverrunError   ErrorCode = 218
	FrontPanelUARTOverrun   ErrorCode = 220
	FrontPanelUARTFraming   ErrorCode = 221
	FrontPanelUARTParity    ErrorCode = 222
	FrontPanelBufferOverrun ErrorCode = 223
	FrontPanelTimeout       ErrorCode = 224

	// Calibration errors
	CalSwitchPreventsCal           ErrorCode = 401
	CalPasswordIncorrect           ErrorCode = 402
	CalNotEnabled                  ErrorCode = 403
	ComputedReadbackCalConstIncorr ErrorCode = 404
	ComputedProgCalConstIncorr     ErrorCode = 405
	IncorrectSeqCalCommands        ErrorCode = 406
	CVOrCCStatusIncorrect          ErrorCode = 407
	OutputModeMustBeNormal         ErrorCode = 408

	// Measurement errors
	TooManySweepPoints                 ErrorCode = 601
	CommandOnlyApplicRS232             ErrorCode = 602
	CurrOrVoltFetchIncompatWithLastAcq ErrorCode = 603
	MeasurementOverrange               ErrorCode = 604
)

var errorCodeNames = map[ErrorCode]string{
	NoError: "no error",

	CommandError:                "command error",
	InvalidCharacter:            "invalid character",
	SyntaxError:                 "syntax error",
	InvalidSeparator:            "invalid separator",
	DataTypeError:               "data type error",
	GETNotAllowed:               "GET not allowed",
	ParameterNotAllowed:         "parameter not allowed",
	MissingParameter:            "missing parameter",
	CommandHeaderError:          "command header error",
	HeaderSeparatorError:        "header separator error",
	ProgramMnemonicTooLong:      "program mnemonic too long",
	UndefinedHeader:             "undefined header",
	HeaderSuffixOutOfRange:      "header suffix out of range",
	UnexpectedNumberOfParameter: "unexpected number of parameters",
	NumericDataError:            "numeric data error",
	InvalidCharacterInNumber:    "invalid character in number",
	ExponentTooLarge:            "exponent too large",
	TooManyDigits:               "too many digits",
	NumericDataNotAllowed:       "numeric data not allowed",
	SuffixError:                 "suffix error",
	InvalidSuffix:               "invalid suffix",
	SuffixTooLong:               "suffix too long",
	SuffixNotAllowed:            "suffix not allowed",
	CharacterDataError:          "character data error",
	InvalidCharacterData:        "invalid character data",
	CharacterDataTooLong:        "character data too long",
	CharacterDataNotAllowed:     "character data not allowed",
	StringDataError:             "string data error",
	InvalidStringData:           "invalid string data",
	StringDataNotAllowed:        "string data not allowed",
	BlockDataError:              "block data error",
	InvalidBlockData:            "invalid block data",
	BlockDataNotAllowed:         "block data not allowed",
	ExpressionError:             "expression error",
	InvalidExpression:           "invalid expression",
	ExpressionDataNotAllowed:    "expression data not allowed",
	MacroError180:               "macro error",
	InvalidOutsideMacroDef:      "invalid outside macro definition",
	InvalidInsideMacroDef:       "invalid inside macro definition",
	MacroParameterError:         "macro parameter error",
	MacroError190:               "macro error",

	ExecutionError:           "execution error",
	InvalidWhileInLocal:      "invalid while in local",
	SettingsLostDueToRTL:     "settings lost due to rtl",
	TriggerError:             "trigger error",
	TriggerIgnored:           "trigger ignored",
	ArmIgnored:               "arm ignored",
	InitIgnored:              "init ignored",
	TriggerDeadlock:          "trigger deadlock",
	ArmDeadlock:              "arm deadlock",
	ParameterError:           "parameter error",
	SettingsConflict:         "settings conflict",
	DataOutOfRange:           "data out of range",
	TooMuchData:              "too much data",
	IllegalParameterValue:    "illegal parameter value",
	DataCorruptOrStale:       "data corrupt or stale",
	DataQuestionable:         "data questionable",
	HardwareError:            "hardware error",
	HardwareMissing:          "hardware missing",
	MassStorageError:         "mass storage error",
	MissingMassStorage:       "missing mass storage",
	MissingMedia:             "missing media",
	CorruptMedia:             "corrupt media",
	MediaFull:                "media full",
	DirectoryFull:            "directory full",
	FileNameNotFound:         "file name not found",
	FileNameError:            "file name error",
	MediaProtected:           "media protected",
	ExpressionExecutionError: "expression error",
	MathErrorInExpression:    "math error in expression",
	MacroUndefinedExecError:  "macro error",
	MacroSyntaxError:         "macro syntax error",
	MacroExecutionError:      "macro execution error",
	IllegalMacroLabel:        "illegal macro label",
	MacroParameterExecError:  "macro parameter error",
	MacroDefinitionTooLong:   "macro definition too long",
	MacroRecursionError:      "macro recursion error",
	MacroRedefNotAllowed:     "macro redefinition not allowed",
	MacroHeaderNotFound:      "macro header not found",
	ProgramError:             "program error",
	CannotCreateProgram:      "cannot create program",
	IllegalProgramName:       "illegal program name",
	IllegalVariableName:      "illegal variable name",
	ProgramCurrentlyRunning:  "program currently running",
	ProgramSyntaxError:       "program syntax error",
	ProgramRuntimeError:      "program runtime error",

	DeviceSpecificError:     "device specific error",
	SystemError:             "system error",
	MemoryError:             "memory error",
	PUDMemoryLost:           "PUD memory lost",
	CalibrationMemoryLost:   "calibration memory lost",
	SaveRecallMemoryLost:    "save/recall memory lost",
	ConfigurationMemoryLost: "configuration memory lost",
	QueueOverflow:           "queue overflow",

	QueryError:                     "query error",
	QueryInterrupted:               "query interrupted",
	QueryUnterminated:              "query unterminated",
	QueryDeadlocked:                "query deadlocked",
	QueryUnterminatedAfterIndefRsp: "query unterminated after indefinite response",

	RAMRD0ChecksumFailed:    "RAM RD0 checksum failed",
	RAMConfigChecksumFailed: "RAM config checksum failed",
	RAMCalChecksumFailed:    "RAM cal checksum failed",
	RAMStateChecksumFailed:  "RAM state checksum failed",
	RAMRSTChecksumFailed:    "RAM RST checksum failed",
	RAMSelftest:             "RAM selftest",
	VDACIDACSelftest1:       "VDAC/IDAC selftest 1",
	VDACIDACSelftest2:       "VDAC/IDAC selftest 2",
	VDACIDACSelftest3:       "VDAC/IDAC selftest 3",
	VDACIDACSelftest4:       "VDAC/IDAC selftest 4",
	OVDACSelftest:           "OVDAC selftest",
	DigitalIOSelftest:       "digital I/O selftest error",

	IngrdRecvBufferOverrun:  "ingrd receiver buffer overrun",
	RS232RecvFramingError:   "RS-232 receiver framing error",
	RS232RecvParityError:    "RS-232 receiver parity error",
	RS232RecvOverrunError:   "RS-232 receiver overrun error",
	FrontPanelUARTOverrun:   "front panel uart overrun",
	FrontPanelUARTFraming:   "front panel uart framing",
	FrontPanelUARTParity:    "front panel uart parity",
	FrontPanelBufferOverrun: "front panel buffer overrun",
	FrontPanelTimeout:       "front panel timeout",

	CalSwitchPreventsCal:           "cal switch prevents cal",
	CalPasswordIncorrect:           "cal password incorrect",
	CalNotEnabled:                  "cal not enabled",
	ComputedReadbackCalConstIncorr: "computed readback cal constants incorrect",
	ComputedProgCalConstIncorr:     "computed programming cal constants incorrect",
	IncorrectSeqCalCommands:        "incorrect sequence of cal commands",
	CVOrCCStatusIncorrect:          "CV or CC status incorrect",
	OutputModeMustBeNormal:         "output mode switch must be in normal",

	TooManySweepPoints:                 "too many sweep points",
	CommandOnlyApplicRS232:             "command only applies to RS-232",
	CurrOrVoltFetchIncompatWithLastAcq: "CURR or VOLT fetch incompatible with last acquisition",
	MeasurementOverrange:               "measurement overrange",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}

	return "error " + strconv.Itoa(int(c))
}

// Code returns the numeric code.
func (c ErrorCode) Code() int { return int(c) }

// ErrorCodes is the immutable table of every code the supply reports. It is shared by all instances.
var ErrorCodes = newErrorCodeTable()

func newErrorCodeTable(opts ...errqueue.Option[ErrorCode]) *errqueue.CodeTable[ErrorCode] {
	codes := make(map[int]ErrorCode, len(errorCodeNames))
	for code := range errorCodeNames {
		codes[int(code)] = code
	}

	return errqueue.NewCodeTable(codes, opts...)
}

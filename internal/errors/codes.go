package errors

// Common error codes
const (
	// Argument errors
	ErrNullArgument    ErrorCode = "null_argument"
	ErrInvalidArgument ErrorCode = "invalid_argument"

	// System errors
	ErrInternal         ErrorCode = "internal_error"
	ErrInvalidOperation ErrorCode = "invalid_operation"

	// Configuration errors
	ErrInvalidConfig ErrorCode = "invalid_configuration"
	ErrReadConfig    ErrorCode = "read_config_failed"
	ErrBindFlags     ErrorCode = "bind_flags_failed"

	// Logging errors
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// Application errors
	ErrReadInput   ErrorCode = "read_input_failed"
	ErrWriteOutput ErrorCode = "write_output_failed"
)

type codeInfo struct {
	title       string
	description string
}

// Titles and default descriptions. Read-only after init.
var codeTable = map[ErrorCode]codeInfo{
	ErrNullArgument:     {"Null argument", "Checked parameter is null."},
	ErrInvalidArgument:  {"Invalid argument", "Invalid argument provided."},
	ErrInternal:         {"Internal error", "Internal error occurred."},
	ErrInvalidOperation: {"Invalid operation", "Operation is not valid in the current state."},
	ErrInvalidConfig:    {"Invalid configuration", "Configuration contains invalid values."},
	ErrReadConfig:       {"Configuration read failure", "Failed to read config file."},
	ErrBindFlags:        {"Flag binding failure", "Failed to bind command line flags."},
	ErrInvalidLogLevel:  {"Invalid log level", "Log level must be one of debug, info, warning, error."},
	ErrReadInput:        {"Input failure", "Failed to read input."},
	ErrWriteOutput:      {"Output failure", "Failed to write output."},
}

// Title returns the short title for a given error code.
// Undeclared codes get the title of ErrInternal.
func Title(code ErrorCode) string {
	return lookup(code).title
}

// Description returns the default description for a given error code.
// Undeclared codes get the description of ErrInternal.
func Description(code ErrorCode) string {
	return lookup(code).description
}

func lookup(code ErrorCode) codeInfo {
	if info, ok := codeTable[code]; ok {
		return info
	}

	return codeTable[ErrInternal]
}

// Codes returns every declared error code.
func Codes() []ErrorCode {
	codes := make([]ErrorCode, 0, len(codeTable))
	for code := range codeTable {
		codes = append(codes, code)
	}

	return codes
}

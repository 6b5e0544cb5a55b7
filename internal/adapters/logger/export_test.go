// export_test.go exports private functions for white-box testing.
package logger

// FormatError exports the private error formatting for testing.
var FormatError = formatError

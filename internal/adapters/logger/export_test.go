// export_test.go exports private functions for white-box testing.
package logger

// FormatError renders err the way the pretty logger does, without the level icon.
func FormatError(err error) string {
	return formatErrorEntries(collectErrorEntries(err))
}

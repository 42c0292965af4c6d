package pretty

// TruncateString exposes truncateString for tests.
var TruncateString = truncateString //nolint:gochecknoglobals // test export

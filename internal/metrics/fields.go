package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod    = "method"
	AttrPath      = "path"
	AttrStatus    = "status"
	AttrOperation = "op"
	AttrPattern   = "pattern"
)

// Operation names recorded against the formatter.
const (
	OpFormat = "format"
	OpParse  = "parse"
)

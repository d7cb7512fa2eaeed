package types

type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatJSON OutputFormat = "json"
)

type DuplicateMode string

const (
	DuplicateModeLastWriteWins DuplicateMode = "last-write-wins"
	DuplicateModeReject        DuplicateMode = "reject"
)

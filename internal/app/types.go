package app

import "qmk-keymap/internal/types"

type KnowledgeBaseRequest struct {
	KeycodesDir   string
	DuplicateMode types.DuplicateMode
}

type KnowledgeBaseStats struct {
	Documents   []string
	Entries     int
	Skipped     []types.SkippedDocument
	Identifiers int
}

type ResolveRequest struct {
	KeymapPath    string
	KeycodesDir   string
	DuplicateMode types.DuplicateMode
	OutputPath    string
	Format        types.OutputFormat
}

type ResolveResult struct {
	Keymap types.ResolvedKeymap
	Stats  KnowledgeBaseStats
}

type LookupRequest struct {
	KeycodesDir   string
	DuplicateMode types.DuplicateMode
	Identifiers   []string
}

type LookupEntry struct {
	Identifier string
	Label      string
	Key        string
	Group      string
	Found      bool
}

type LookupResult struct {
	Entries []LookupEntry
}

type ValidateRequest struct {
	KeymapPath string
}

type ValidateResult struct {
	Keyboard string
	Keymap   string
	Layout   string
	Layers   int
	Keys     int
}

type InspectRequest struct {
	KeycodesDir   string
	DuplicateMode types.DuplicateMode
}

type InspectGroupSummary struct {
	Name  string
	Count int
}

type InspectResult struct {
	Stats  KnowledgeBaseStats
	Groups []InspectGroupSummary
}

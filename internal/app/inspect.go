package app

import (
	"context"
	"sort"
)

// Inspect builds the keycode table and summarises it by entry group.
// Each canonical key is counted once, however many aliases it has.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	kb, stats, err := s.BuildKnowledgeBase(ctx, KnowledgeBaseRequest{
		KeycodesDir:   req.KeycodesDir,
		DuplicateMode: req.DuplicateMode,
	})
	if err != nil {
		return InspectResult{}, err
	}
	groups := map[string]map[string]struct{}{}
	for _, id := range kb.Identifiers() {
		entry, _ := kb.Lookup(id)
		name := entry.Group
		if name == "" {
			name = "(none)"
		}
		if groups[name] == nil {
			groups[name] = map[string]struct{}{}
		}
		groups[name][entry.Key] = struct{}{}
	}
	var summaries []InspectGroupSummary
	for _, name := range sortedKeys(groups) {
		summaries = append(summaries, InspectGroupSummary{Name: name, Count: len(groups[name])})
	}
	return InspectResult{Stats: stats, Groups: summaries}, nil
}

func sortedKeys[V any](input map[string]V) []string {
	keys := make([]string, 0, len(input))
	for key := range input {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

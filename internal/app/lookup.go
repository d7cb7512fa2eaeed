package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"qmk-keymap/internal/shared"
)

func (s Service) Lookup(ctx context.Context, req LookupRequest) (LookupResult, error) {
	identifiers := shared.NonBlank(req.Identifiers)
	if len(identifiers) == 0 {
		return LookupResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one keycode is required")
	}
	kb, _, err := s.BuildKnowledgeBase(ctx, KnowledgeBaseRequest{
		KeycodesDir:   req.KeycodesDir,
		DuplicateMode: req.DuplicateMode,
	})
	if err != nil {
		return LookupResult{}, err
	}
	result := LookupResult{}
	for _, id := range identifiers {
		entry, found := kb.Lookup(id)
		result.Entries = append(result.Entries, LookupEntry{
			Identifier: id,
			Label:      kb.Label(id),
			Key:        entry.Key,
			Group:      entry.Group,
			Found:      found,
		})
	}
	return result, nil
}

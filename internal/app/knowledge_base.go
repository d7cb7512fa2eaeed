package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"qmk-keymap/internal/core"
	"qmk-keymap/internal/policies"
	"qmk-keymap/internal/types"
)

// BuildKnowledgeBase loads every keycode document of req.KeycodesDir and
// merges them in order.  Documents that fail to parse are skipped with a
// warning; listing or read failures abort the build.
func (s Service) BuildKnowledgeBase(ctx context.Context, req KnowledgeBaseRequest) (*core.KnowledgeBase, KnowledgeBaseStats, error) {
	dir := strings.TrimSpace(req.KeycodesDir)
	if dir == "" {
		return nil, KnowledgeBaseStats{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("keycode directory is required")
	}
	policy, err := policies.NewDuplicatePolicy(req.DuplicateMode)
	if err != nil {
		return nil, KnowledgeBaseStats{}, err
	}
	docs, err := s.KeycodeSource.LoadDocuments(ctx, dir)
	if err != nil {
		return nil, KnowledgeBaseStats{}, err
	}

	kb := core.NewKnowledgeBase(policy)
	stats := KnowledgeBaseStats{}
	for _, doc := range docs {
		if doc.Err != nil {
			log.Warn().Str("path", doc.Path).Err(doc.Err).Msg("skipping keycode document")
			stats.Skipped = append(stats.Skipped, types.SkippedDocument{Path: doc.Path, Reason: doc.Err.Error()})
			continue
		}
		count, err := kb.Merge(ctx, doc.Path, doc.File)
		if err != nil {
			return nil, KnowledgeBaseStats{}, err
		}
		log.Info().Str("path", doc.Path).Int("entries", count).Msg("keycode document loaded")
		stats.Entries += count
	}
	stats.Documents = kb.Documents()
	stats.Identifiers = kb.Len()
	log.Info().
		Int("documents", len(stats.Documents)).
		Int("skipped", len(stats.Skipped)).
		Int("entries", stats.Entries).
		Int("identifiers", stats.Identifiers).
		Msg("keycode table built")
	return kb, stats, nil
}

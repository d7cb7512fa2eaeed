package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"qmk-keymap/internal/core"
)

func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	keymapPath := strings.TrimSpace(req.KeymapPath)
	if keymapPath == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("keymap path is required")
	}
	keymap, err := s.KeymapLoader.LoadKeymap(keymapPath)
	if err != nil {
		return ResolveResult{}, err
	}
	if err := core.ValidateLayers(keymap); err != nil {
		return ResolveResult{}, err
	}
	kb, stats, err := s.BuildKnowledgeBase(ctx, KnowledgeBaseRequest{
		KeycodesDir:   req.KeycodesDir,
		DuplicateMode: req.DuplicateMode,
	})
	if err != nil {
		return ResolveResult{}, err
	}
	resolved, err := core.ResolveKeymap(ctx, keymap, kb)
	if err != nil {
		return ResolveResult{}, err
	}
	if s.Output != nil {
		if err := s.Output(strings.TrimSpace(req.OutputPath)).WriteResolvedKeymap(resolved, req.Format); err != nil {
			return ResolveResult{}, err
		}
	}
	return ResolveResult{Keymap: resolved, Stats: stats}, nil
}

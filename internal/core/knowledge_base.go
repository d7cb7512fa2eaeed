package core

import (
	"context"
	"sort"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"qmk-keymap/internal/policies"
	"qmk-keymap/internal/types"
)

// KnowledgeBase maps every known keycode identifier, canonical key or
// alias, to its keycode entry.  Documents are merged in call order and a
// later binding of an identifier replaces the earlier one unless the
// duplicate policy refuses it.
type KnowledgeBase struct {
	entries   map[string]types.KeycodeEntry
	policy    policies.DuplicatePolicy
	documents []string
}

func NewKnowledgeBase(policy policies.DuplicatePolicy) *KnowledgeBase {
	return &KnowledgeBase{
		entries: make(map[string]types.KeycodeEntry),
		policy:  policy,
	}
}

// Merge adds every entry of file to the table and returns the number of
// entries the document contributed.  Entries are visited in sorted
// document-local name order so repeated builds produce the same table.
func (kb *KnowledgeBase) Merge(ctx context.Context, source string, file types.KeycodeFile) (int, error) {
	names := make([]string, 0, len(file.Keycodes))
	for name := range file.Keycodes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := kb.Insert(ctx, source, file.Keycodes[name]); err != nil {
			return 0, err
		}
	}
	kb.documents = append(kb.documents, source)
	return len(names), nil
}

// Insert binds entry.Key and each non-blank alias to entry.  Aliases are
// stored trimmed; blank ones are dropped.
func (kb *KnowledgeBase) Insert(ctx context.Context, source string, entry types.KeycodeEntry) error {
	key := strings.TrimSpace(entry.Key)
	if key == "" {
		return nil
	}
	if err := kb.bind(ctx, source, key, entry); err != nil {
		return err
	}
	for _, alias := range entry.Aliases {
		trimmed := strings.TrimSpace(alias)
		if trimmed == "" {
			continue
		}
		if err := kb.bind(ctx, source, trimmed, entry); err != nil {
			return err
		}
	}
	return nil
}

func (kb *KnowledgeBase) bind(ctx context.Context, source string, identifier string, entry types.KeycodeEntry) error {
	assert.NotEmpty(ctx, identifier, "keycode identifier must be set")
	if existing, exists := kb.entries[identifier]; exists {
		if err := kb.policy.Check(identifier, existing, entry, source); err != nil {
			return err
		}
		log.Ctx(ctx).Debug().
			Str("identifier", identifier).
			Str("previous", existing.Key).
			Str("key", entry.Key).
			Str("document", source).
			Msg("keycode identifier overridden by later entry")
	}
	kb.entries[identifier] = entry
	return nil
}

// Lookup returns the entry bound to identifier.
func (kb *KnowledgeBase) Lookup(identifier string) (types.KeycodeEntry, bool) {
	if kb == nil {
		return types.KeycodeEntry{}, false
	}
	entry, ok := kb.entries[identifier]
	return entry, ok
}

// Label returns the display label for identifier.  Unknown identifiers and
// entries without a label resolve to the identifier itself.
func (kb *KnowledgeBase) Label(identifier string) string {
	entry, ok := kb.Lookup(identifier)
	if !ok || strings.TrimSpace(entry.Label) == "" {
		return identifier
	}
	return entry.Label
}

// Len is the number of identifiers in the table.
func (kb *KnowledgeBase) Len() int {
	if kb == nil {
		return 0
	}
	return len(kb.entries)
}

// Identifiers returns every identifier in the table, sorted.
func (kb *KnowledgeBase) Identifiers() []string {
	if kb == nil {
		return nil
	}
	ids := make([]string, 0, len(kb.entries))
	for id := range kb.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Documents lists merged document sources in merge order.
func (kb *KnowledgeBase) Documents() []string {
	if kb == nil {
		return nil
	}
	return append([]string(nil), kb.documents...)
}

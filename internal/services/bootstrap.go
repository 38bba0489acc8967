package services

import (
	"context"

	"github.com/dmitrijs2005/itemkeeper/internal/logging"
	"github.com/dmitrijs2005/itemkeeper/internal/repositories/repomanager"
)

// Bootstrap loads every registry from m and returns an anonymous session.
// Categories load first, then users (creating the administrator when
// missing), then items, whose owners must already be known.
func Bootstrap(ctx context.Context, m repomanager.RepositoryManager, log logging.Logger) (*Session, error) {
	categories := NewCategoryRegistry(m.Categories(), log.With("registry", "categories"))
	if err := categories.Load(ctx); err != nil {
		return nil, err
	}

	users := NewUserRegistry(m.Users(), log.With("registry", "users"))
	if err := users.Load(ctx); err != nil {
		return nil, err
	}
	if _, err := users.EnsureAdmin(ctx); err != nil {
		return nil, err
	}

	items := NewItemRegistry(m.Items(), log.With("registry", "items"))
	if err := items.Load(ctx, users); err != nil {
		return nil, err
	}

	log.Info(ctx, "registries loaded",
		"categories", len(categories.All()),
		"users", len(users.All()),
		"items", len(items.All()),
	)

	return NewSession(users, items, categories, log.With("component", "session")), nil
}

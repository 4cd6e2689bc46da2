package tui

import (
	"context"

	"github.com/takak2166/notion-snippets/internal/models"
)

// SnippetStore is the part of the snippet repository the screens use
//
//go:generate mockgen -source=store.go -destination=mock_tui/mock_store.go -package=mock_tui
type SnippetStore interface {
	FetchAll(ctx context.Context) ([]models.Snippet, error)
	Create(ctx context.Context, snippet models.Snippet) (models.Snippet, error)
	UpdateUsageCount(ctx context.Context, id string, count int) error
}

package notion

import (
	"context"
	"fmt"
	"strings"

	"github.com/jomei/notionapi"
	"github.com/takak2166/notion-snippets/internal/apperror"
	"github.com/takak2166/notion-snippets/internal/config"
	"github.com/takak2166/notion-snippets/internal/logger"
	"github.com/takak2166/notion-snippets/internal/models"
)

// queryPageSize is the largest page Notion returns for a database query
const queryPageSize = 100

// Client maps snippets to and from pages of the snippet database
type Client struct {
	client NotionClient
	cfg    config.Config
}

// New creates a new Notion client. The configuration is checked by each
// operation, so a client can be built before the user has finished setup.
func New(cfg *config.Config) *Client {
	notionClient := notionapi.NewClient(notionapi.Token(cfg.APIKey))
	return NewWithClient(newNotionClientAdapter(notionClient), cfg)
}

// NewWithClient creates a client on top of an existing NotionClient
func NewWithClient(client NotionClient, cfg *config.Config) *Client {
	return &Client{
		client: client,
		cfg:    *cfg,
	}
}

// FetchAll returns every snippet in the database, most used first. The order
// is Notion's; callers rely on it and must not re-sort.
func (c *Client) FetchAll(ctx context.Context) ([]models.Snippet, error) {
	if err := c.cfg.CheckDatabase(); err != nil {
		return nil, err
	}

	logger.Debug("Querying snippet database", map[string]interface{}{
		"database_id": c.cfg.DatabaseID,
	})

	resp, err := c.client.Database().Query(ctx, notionapi.DatabaseID(c.cfg.DatabaseID), &notionapi.DatabaseQueryRequest{
		Sorts: []notionapi.SortObject{
			{
				Property:  models.PropUsageCount,
				Direction: notionapi.SortOrderDESC,
			},
		},
		PageSize: queryPageSize,
	})
	if err != nil {
		return nil, apperror.Fetch(err)
	}

	snippets := make([]models.Snippet, 0, len(resp.Results))
	for _, page := range resp.Results {
		snippets = append(snippets, snippetFromPage(page))
	}

	if resp.HasMore {
		logger.Info("Snippet database has more pages than a single query returns", map[string]interface{}{
			"returned": len(snippets),
		})
	}
	logger.Debug("Fetched snippets", map[string]interface{}{
		"count": len(snippets),
	})

	return snippets, nil
}

// Create adds a snippet as a new page and returns it with the ID and creation
// time Notion assigned
func (c *Client) Create(ctx context.Context, snippet models.Snippet) (models.Snippet, error) {
	if err := c.cfg.CheckDatabase(); err != nil {
		return models.Snippet{}, err
	}

	logger.Debug("Creating snippet page", map[string]interface{}{
		"name":     snippet.Name,
		"language": snippet.Language,
	})

	page, err := c.client.Page().Create(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       "database_id",
			DatabaseID: notionapi.DatabaseID(c.cfg.DatabaseID),
		},
		Properties: snippetProperties(snippet),
		Children:   snippetBlocks(snippet),
	})
	if err != nil {
		return models.Snippet{}, apperror.Create(err)
	}

	created := snippet
	created.ID = string(page.ID)
	created.CreatedAt = page.CreatedTime

	logger.Info("Successfully added snippet", map[string]interface{}{
		"name": created.Name,
		"id":   created.ID,
	})

	return created, nil
}

// UpdateUsageCount overwrites the usage count of one snippet. It does not
// compare count with the stored value.
func (c *Client) UpdateUsageCount(ctx context.Context, id string, count int) error {
	if err := c.cfg.CheckAPIKey(); err != nil {
		return err
	}

	_, err := c.client.Page().Update(ctx, notionapi.PageID(id), &notionapi.PageUpdateRequest{
		Properties: notionapi.Properties{
			models.PropUsageCount: notionapi.NumberProperty{
				Number: float64(count),
			},
		},
	})
	if err != nil {
		return apperror.Update(err)
	}

	logger.Debug("Updated usage count", map[string]interface{}{
		"id":    id,
		"count": count,
	})

	return nil
}

func snippetFromPage(page notionapi.Page) models.Snippet {
	props := page.Properties
	return models.Snippet{
		ID:          string(page.ID),
		Name:        ExtractTitle(props[models.PropName]),
		Code:        ExtractRichText(props[models.PropCode]),
		Language:    ExtractSelect(props[models.PropLanguage]),
		Description: ExtractRichText(props[models.PropDescription]),
		Category:    ExtractSelect(props[models.PropCategory]),
		UsageCount:  int(ExtractNumber(props[models.PropUsageCount])),
		CreatedAt:   page.CreatedTime,
	}
}

func snippetProperties(s models.Snippet) notionapi.Properties {
	return notionapi.Properties{
		models.PropName: notionapi.TitleProperty{
			Title: richText(s.Name),
		},
		models.PropCode: notionapi.RichTextProperty{
			RichText: richText(s.Code),
		},
		models.PropLanguage: notionapi.SelectProperty{
			Select: notionapi.Option{
				Name: s.Language,
			},
		},
		models.PropDescription: notionapi.RichTextProperty{
			RichText: richText(s.Description),
		},
		models.PropCategory: notionapi.SelectProperty{
			Select: notionapi.Option{
				Name: s.Category,
			},
		},
		models.PropUsageCount: notionapi.NumberProperty{
			Number: float64(s.UsageCount),
		},
	}
}

// snippetBlocks renders the page body: the description, then the code
func snippetBlocks(s models.Snippet) []notionapi.Block {
	var blocks []notionapi.Block
	if s.Description != "" {
		blocks = append(blocks, createParagraphBlock(s.Description))
	}
	return append(blocks, createCodeBlock(s.Code, models.NotionCodeLanguage(s.Language)))
}

// createCodeBlock creates a code block
func createCodeBlock(content, language string) notionapi.Block {
	return &notionapi.CodeBlock{
		BasicBlock: notionapi.BasicBlock{
			Object: "block",
			Type:   notionapi.BlockTypeCode,
		},
		Code: notionapi.Code{
			RichText: richText(content),
			Language: language,
		},
	}
}

// createParagraphBlock creates a paragraph block
func createParagraphBlock(text string) notionapi.Block {
	return &notionapi.ParagraphBlock{
		BasicBlock: notionapi.BasicBlock{
			Object: "block",
			Type:   notionapi.BlockTypeParagraph,
		},
		Paragraph: notionapi.Paragraph{
			RichText: richText(text),
		},
	}
}

// requiredSchema lists the properties the snippet database must define
var requiredSchema = []struct {
	name string
	kind string
}{
	{models.PropName, "title"},
	{models.PropCode, "rich_text"},
	{models.PropLanguage, "select"},
	{models.PropDescription, "rich_text"},
	{models.PropCategory, "select"},
	{models.PropUsageCount, "number"},
}

// VerifySchema checks that the configured database defines every property
// snippets are stored in, with the right type
func (c *Client) VerifySchema(ctx context.Context) error {
	if err := c.cfg.CheckDatabase(); err != nil {
		return err
	}

	db, err := c.client.Database().Get(ctx, notionapi.DatabaseID(c.cfg.DatabaseID))
	if err != nil {
		return apperror.Fetch(fmt.Errorf("failed to get database: %w", err))
	}

	var problems []string
	for _, want := range requiredSchema {
		prop, ok := db.Properties[want.name]
		if !ok || prop == nil {
			problems = append(problems, fmt.Sprintf("missing property %q (%s)", want.name, want.kind))
			continue
		}
		if got := string(prop.GetType()); got != want.kind {
			problems = append(problems, fmt.Sprintf("property %q is %s, expected %s", want.name, got, want.kind))
		}
	}
	if len(problems) > 0 {
		return apperror.Configuration("database schema mismatch: " + strings.Join(problems, "; "))
	}

	logger.Info("Snippet database schema verified", map[string]interface{}{
		"database_id": c.cfg.DatabaseID,
	})
	return nil
}

// DatabaseRef names a database the integration can see
type DatabaseRef struct {
	ID    string // 32 characters, no dashes
	Title string
}

// FindDatabases searches the databases shared with the integration by title
func (c *Client) FindDatabases(ctx context.Context, query string) ([]DatabaseRef, error) {
	if err := c.cfg.CheckAPIKey(); err != nil {
		return nil, err
	}

	results, err := c.client.Search().Do(ctx, &notionapi.SearchRequest{
		Query: query,
		Filter: notionapi.SearchFilter{
			Property: "object",
			Value:    "database",
		},
	})
	if err != nil {
		return nil, apperror.Fetch(fmt.Errorf("failed to search for databases: %w", err))
	}

	var refs []DatabaseRef
	for _, result := range results.Results {
		if db, ok := result.(*notionapi.Database); ok {
			refs = append(refs, DatabaseRef{
				ID:    strings.ReplaceAll(string(db.ID), "-", ""),
				Title: plainText(db.Title),
			})
		}
	}
	return refs, nil
}

// CurrentUser returns the bot user the API key belongs to
func (c *Client) CurrentUser(ctx context.Context) (string, error) {
	if err := c.cfg.CheckAPIKey(); err != nil {
		return "", err
	}

	user, err := c.client.User().Me(ctx)
	if err != nil {
		return "", apperror.Fetch(fmt.Errorf("failed to validate API key: %w", err))
	}
	return user.Name, nil
}

package notion

import (
	"context"

	"github.com/jomei/notionapi"
)

//go:generate mockgen -source=notionapi_interfaces.go -destination=mock_notion/mock_notionapi.go -package=mock_notion
type (
	PageService interface {
		Create(context.Context, *notionapi.PageCreateRequest) (*notionapi.Page, error)
		Update(context.Context, notionapi.PageID, *notionapi.PageUpdateRequest) (*notionapi.Page, error)
	}

	DatabaseService interface {
		Get(context.Context, notionapi.DatabaseID) (*notionapi.Database, error)
		Query(context.Context, notionapi.DatabaseID, *notionapi.DatabaseQueryRequest) (*notionapi.DatabaseQueryResponse, error)
	}

	SearchService interface {
		Do(context.Context, *notionapi.SearchRequest) (*notionapi.SearchResponse, error)
	}

	UserService interface {
		Me(context.Context) (*notionapi.User, error)
	}
)

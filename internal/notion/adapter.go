package notion

import (
	"github.com/jomei/notionapi"
)

type notionClientAdapter struct {
	client *notionapi.Client
}

func newNotionClientAdapter(client *notionapi.Client) NotionClient {
	return &notionClientAdapter{client: client}
}

func (a *notionClientAdapter) Page() PageService {
	return a.client.Page
}

func (a *notionClientAdapter) Search() SearchService {
	return a.client.Search
}

func (a *notionClientAdapter) Database() DatabaseService {
	return a.client.Database
}

func (a *notionClientAdapter) User() UserService {
	return a.client.User
}

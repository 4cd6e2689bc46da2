package notion

import "regexp"

var (
	// https://www.notion.so/workspace/<id>?v=...
	workspaceDatabaseURL = regexp.MustCompile(`(?i)notion\.so/[^/]+/([a-f0-9]{32})`)
	// https://notion.so/<id>?v=...
	directDatabaseURL = regexp.MustCompile(`(?i)notion\.so/([a-f0-9]{32})`)
)

// ExtractDatabaseID pulls the 32-character database ID out of a database URL.
// The workspace form is tried first. It returns "" when neither form matches.
func ExtractDatabaseID(url string) string {
	if m := workspaceDatabaseURL.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	if m := directDatabaseURL.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	return ""
}

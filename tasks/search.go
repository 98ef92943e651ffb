package tasks

import (
	"context"
	"strings"

	"github.com/flowmech/flow-plugin-dropbox/dropbox"
	"github.com/flowmech/flow-plugin-dropbox/runner"
)

// Search finds files and folders matching a query, optionally scoped to a
// subtree of the account.
type Search struct {
	AccessToken string `yaml:"accessToken" mapstructure:"accessToken"`

	// Query is the search text.
	Query string `yaml:"query" mapstructure:"query"`

	// Path scopes the search to a subtree: a literal path or an internal
	// storage URI of a blob containing the path. Empty searches the whole
	// account.
	Path string `yaml:"path" mapstructure:"path"`

	// MaxResults caps the matches returned per page by the server.
	MaxResults uint64 `yaml:"maxResults" mapstructure:"maxResults"`

	// FileExtensions restricts matches to the given extensions, e.g. "csv".
	FileExtensions []string `yaml:"fileExtensions" mapstructure:"fileExtensions"`

	// FetchType selects the output shape: FETCH_ONE, FETCH (default) or
	// STORE.
	FetchType string `yaml:"fetchType" mapstructure:"fetchType"`

	// Client overrides the API client built from AccessToken. Tests use it.
	Client dropbox.Client `yaml:"-" mapstructure:"-"`
}

// SearchOutput is the result of a Search run.
type SearchOutput = PagedOutput

func (t *Search) Run(ctx context.Context, rc *runner.Context) (*SearchOutput, error) {
	logger := rc.Logger()

	query, err := rc.Render(t.Query)
	if err != nil {
		return nil, newError(KindValidation, err.Error(), err)
	}
	if strings.TrimSpace(query) == "" {
		return nil, validationf("'query' is required")
	}

	path, err := resolveOptionalPath(ctx, rc, t.Path, "path")
	if err != nil {
		return nil, err
	}

	fetchType, err := ParseFetchType(t.FetchType)
	if err != nil {
		return nil, err
	}

	client, err := newClient(rc, t.Client, t.AccessToken)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("query", query).Str("path", path).Msg("Searching Dropbox")

	opts := dropbox.SearchOptions{
		Path:           path,
		MaxResults:     t.MaxResults,
		FileExtensions: t.FileExtensions,
	}

	out, err := collectPages(ctx, rc, fetchType, func(cursor string) (*dropbox.Page, error) {
		if cursor == "" {
			return client.Search(ctx, query, opts)
		}
		return client.SearchContinue(ctx, cursor)
	})
	if err != nil {
		return nil, classify(err, apiFailure{
			op:       "perform search",
			notFound: "search path not found: " + path,
		})
	}

	rc.Counter(MetricFilesCount, out.Size)
	logger.Debug().Int64("count", out.Size).Msg("Found search results")

	return out, nil
}

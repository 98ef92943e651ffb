package tasks

import (
	"context"

	"github.com/flowmech/flow-plugin-dropbox/dropbox"
	"github.com/flowmech/flow-plugin-dropbox/runner"
)

// defaultListLimit is the page size requested from list_folder when the
// task does not configure one.
const defaultListLimit = 2000

// List enumerates the files and folders under a Dropbox directory.
type List struct {
	AccessToken string `yaml:"accessToken" mapstructure:"accessToken"`

	// From is the directory to list: a literal path or an internal storage
	// URI of a blob containing the path. Empty lists the account root.
	From string `yaml:"from" mapstructure:"from"`

	// Recursive includes the contents of all sub-folders.
	Recursive bool `yaml:"recursive" mapstructure:"recursive"`

	// Limit is the page size requested per API call (default 2000).
	Limit uint32 `yaml:"limit" mapstructure:"limit"`

	// FetchType selects the output shape: FETCH_ONE, FETCH (default) or
	// STORE.
	FetchType string `yaml:"fetchType" mapstructure:"fetchType"`

	// Client overrides the API client built from AccessToken. Tests use it.
	Client dropbox.Client `yaml:"-" mapstructure:"-"`
}

// ListOutput is the result of a List run.
type ListOutput = PagedOutput

func (t *List) Run(ctx context.Context, rc *runner.Context) (*ListOutput, error) {
	logger := rc.Logger()

	path, err := resolveOptionalPath(ctx, rc, t.From, "from")
	if err != nil {
		return nil, err
	}

	fetchType, err := ParseFetchType(t.FetchType)
	if err != nil {
		return nil, err
	}

	limit := t.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	client, err := newClient(rc, t.Client, t.AccessToken)
	if err != nil {
		return nil, err
	}

	display := path
	if display == "" {
		display = "/"
	}
	logger.Info().Str("path", display).Bool("recursive", t.Recursive).Msg("Listing Dropbox folder")

	out, err := collectPages(ctx, rc, fetchType, func(cursor string) (*dropbox.Page, error) {
		if cursor == "" {
			return client.ListFolder(ctx, path, t.Recursive, limit)
		}
		return client.ListFolderContinue(ctx, cursor)
	})
	if err != nil {
		return nil, classify(err, apiFailure{
			op:       "list folder",
			notFound: "folder not found at Dropbox path: " + display,
		})
	}

	rc.Counter(MetricFilesCount, out.Size)
	logger.Debug().Int64("count", out.Size).Msg("Found entries")

	return out, nil
}

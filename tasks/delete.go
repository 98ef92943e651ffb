package tasks

import (
	"context"

	"github.com/flowmech/flow-plugin-dropbox/dropbox"
	"github.com/flowmech/flow-plugin-dropbox/models"
	"github.com/flowmech/flow-plugin-dropbox/runner"
)

// Delete removes a file or folder from Dropbox. Deleting a folder removes
// its contents as well.
type Delete struct {
	AccessToken string `yaml:"accessToken" mapstructure:"accessToken"`

	// From is the path of the item to delete: a literal path or an internal
	// storage URI of a blob containing the path.
	From string `yaml:"from" mapstructure:"from"`

	// Client overrides the API client built from AccessToken. Tests use it.
	Client dropbox.Client `yaml:"-" mapstructure:"-"`
}

// DeleteOutput is the result of a Delete run.
type DeleteOutput struct {
	// File is the metadata of the item as it was before deletion.
	File models.DropboxFile `json:"file"`
}

func (t *Delete) Run(ctx context.Context, rc *runner.Context) (*DeleteOutput, error) {
	logger := rc.Logger()

	path, err := resolvePath(ctx, rc, t.From, "from")
	if err != nil {
		return nil, err
	}

	client, err := newClient(rc, t.Client, t.AccessToken)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("path", path).Msg("Deleting Dropbox item")

	meta, err := client.Delete(ctx, path)
	if err != nil {
		return nil, classify(err, apiFailure{
			op:       "delete item",
			notFound: "file or folder not found at Dropbox path: " + path,
		})
	}

	logger.Info().Str("name", meta.Name).Msg("Successfully deleted item")

	return &DeleteOutput{File: models.FromMetadata(meta)}, nil
}

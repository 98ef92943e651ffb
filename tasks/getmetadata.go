package tasks

import (
	"context"

	"github.com/flowmech/flow-plugin-dropbox/dropbox"
	"github.com/flowmech/flow-plugin-dropbox/models"
	"github.com/flowmech/flow-plugin-dropbox/runner"
)

// GetMetadata looks up the metadata of a file or folder without downloading
// any content.
type GetMetadata struct {
	AccessToken string `yaml:"accessToken" mapstructure:"accessToken"`

	// Path is the item to inspect: a literal path or an internal storage
	// URI of a blob containing the path.
	Path string `yaml:"path" mapstructure:"path"`

	// IncludeMediaInfo asks the server for photo/video metadata on files
	// that have it.
	IncludeMediaInfo bool `yaml:"includeMediaInfo" mapstructure:"includeMediaInfo"`

	// Client overrides the API client built from AccessToken. Tests use it.
	Client dropbox.Client `yaml:"-" mapstructure:"-"`
}

// GetMetadataOutput is the result of a GetMetadata run.
type GetMetadataOutput struct {
	// File is the metadata of the inspected item.
	File models.DropboxFile `json:"file"`
}

func (t *GetMetadata) Run(ctx context.Context, rc *runner.Context) (*GetMetadataOutput, error) {
	logger := rc.Logger()

	path, err := resolvePath(ctx, rc, t.Path, "path")
	if err != nil {
		return nil, err
	}

	client, err := newClient(rc, t.Client, t.AccessToken)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("path", path).Msg("Fetching Dropbox metadata")

	meta, err := client.GetMetadata(ctx, path, t.IncludeMediaInfo)
	if err != nil {
		return nil, classify(err, apiFailure{
			op:       "get metadata",
			notFound: "file or folder not found at Dropbox path: " + path,
		})
	}

	return &GetMetadataOutput{File: models.FromMetadata(meta)}, nil
}

package tasks

import (
	"context"

	"github.com/flowmech/flow-plugin-dropbox/dropbox"
	"github.com/flowmech/flow-plugin-dropbox/models"
	"github.com/flowmech/flow-plugin-dropbox/runner"
)

// CreateFolder creates a folder at the given Dropbox path. Intermediate
// folders are created by the server as needed.
type CreateFolder struct {
	AccessToken string `yaml:"accessToken" mapstructure:"accessToken"`

	// Path is where the folder is created: a literal path or an internal
	// storage URI of a blob containing the path.
	Path string `yaml:"path" mapstructure:"path"`

	// Autorename lets the server rename the folder on a conflict.
	Autorename bool `yaml:"autorename" mapstructure:"autorename"`

	// Client overrides the API client built from AccessToken. Tests use it.
	Client dropbox.Client `yaml:"-" mapstructure:"-"`
}

// CreateFolderOutput is the result of a CreateFolder run.
type CreateFolderOutput struct {
	// File is the metadata of the created folder.
	File models.DropboxFile `json:"file"`
}

func (t *CreateFolder) Run(ctx context.Context, rc *runner.Context) (*CreateFolderOutput, error) {
	logger := rc.Logger()

	path, err := resolvePath(ctx, rc, t.Path, "path")
	if err != nil {
		return nil, err
	}

	client, err := newClient(rc, t.Client, t.AccessToken)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("path", path).Msg("Creating Dropbox folder")

	meta, err := client.CreateFolder(ctx, path, t.Autorename)
	if err != nil {
		return nil, classify(err, apiFailure{
			op:       "create folder",
			conflict: "a file or folder already exists at path: " + path,
		})
	}

	logger.Info().Str("name", meta.Name).Msg("Successfully created folder")

	return &CreateFolderOutput{File: models.FromMetadata(meta)}, nil
}

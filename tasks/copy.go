package tasks

import (
	"context"

	"github.com/flowmech/flow-plugin-dropbox/dropbox"
	"github.com/flowmech/flow-plugin-dropbox/models"
	"github.com/flowmech/flow-plugin-dropbox/runner"
)

// Copy duplicates a file or folder to a new location in Dropbox.
type Copy struct {
	AccessToken string `yaml:"accessToken" mapstructure:"accessToken"`

	// From is the path of the item to copy: a literal path or an internal
	// storage URI of a blob containing the path.
	From string `yaml:"from" mapstructure:"from"`

	// To is the destination path, with the same two input forms as From.
	To string `yaml:"to" mapstructure:"to"`

	// Autorename lets the server rename the copy on a destination conflict.
	Autorename bool `yaml:"autorename" mapstructure:"autorename"`

	// Client overrides the API client built from AccessToken. Tests use it.
	Client dropbox.Client `yaml:"-" mapstructure:"-"`
}

// CopyOutput is the result of a Copy run.
type CopyOutput struct {
	// File is the metadata of the newly created copy.
	File models.DropboxFile `json:"file"`
}

func (t *Copy) Run(ctx context.Context, rc *runner.Context) (*CopyOutput, error) {
	logger := rc.Logger()

	from, err := resolvePath(ctx, rc, t.From, "from")
	if err != nil {
		return nil, err
	}
	to, err := resolvePath(ctx, rc, t.To, "to")
	if err != nil {
		return nil, err
	}

	client, err := newClient(rc, t.Client, t.AccessToken)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("from", from).Str("to", to).Msg("Copying Dropbox item")

	meta, err := client.Copy(ctx, from, to, dropbox.RelocationOptions{Autorename: t.Autorename})
	if err != nil {
		return nil, classify(err, apiFailure{
			op:       "copy item",
			notFound: "source path not found: " + from,
			conflict: "a file or folder already exists at the destination path: " + to,
		})
	}

	logger.Info().Str("name", meta.Name).Msg("Successfully copied item")

	return &CopyOutput{File: models.FromMetadata(meta)}, nil
}

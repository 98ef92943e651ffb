package tasks

import (
	"context"

	"github.com/flowmech/flow-plugin-dropbox/dropbox"
	"github.com/flowmech/flow-plugin-dropbox/models"
	"github.com/flowmech/flow-plugin-dropbox/runner"
)

// Move relocates a file or folder to a different location in Dropbox.
type Move struct {
	AccessToken string `yaml:"accessToken" mapstructure:"accessToken"`

	// From is the path of the item to move: a literal path or an internal
	// storage URI of a blob containing the path.
	From string `yaml:"from" mapstructure:"from"`

	// To is the destination path, with the same two input forms as From.
	To string `yaml:"to" mapstructure:"to"`

	// Autorename lets the server rename the item on a destination conflict,
	// e.g. by appending (1).
	Autorename bool `yaml:"autorename" mapstructure:"autorename"`

	// AllowOwnershipTransfer permits moves that cross user boundaries.
	AllowOwnershipTransfer bool `yaml:"allowOwnershipTransfer" mapstructure:"allowOwnershipTransfer"`

	// Client overrides the API client built from AccessToken. Tests use it.
	Client dropbox.Client `yaml:"-" mapstructure:"-"`
}

// MoveOutput is the result of a Move run.
type MoveOutput struct {
	// File is the metadata of the moved item at its new location.
	File models.DropboxFile `json:"file"`
}

func (t *Move) Run(ctx context.Context, rc *runner.Context) (*MoveOutput, error) {
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

	logger.Info().Str("from", from).Str("to", to).Msg("Moving Dropbox item")

	meta, err := client.Move(ctx, from, to, dropbox.RelocationOptions{
		Autorename:             t.Autorename,
		AllowOwnershipTransfer: t.AllowOwnershipTransfer,
	})
	if err != nil {
		return nil, classify(err, apiFailure{
			op:       "move item",
			notFound: "source path not found: " + from,
			conflict: "a file or folder already exists at the destination path: " + to,
		})
	}

	logger.Info().Str("name", meta.Name).Msg("Successfully moved item")

	return &MoveOutput{File: models.FromMetadata(meta)}, nil
}

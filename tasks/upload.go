package tasks

import (
	"context"
	"strings"

	"github.com/flowmech/flow-plugin-dropbox/dropbox"
	"github.com/flowmech/flow-plugin-dropbox/models"
	"github.com/flowmech/flow-plugin-dropbox/runner"
	"github.com/flowmech/flow-plugin-dropbox/runner/storage"
)

// Write-conflict mode literals accepted by Upload.
const (
	UploadModeAdd       = "ADD"
	UploadModeOverwrite = "OVERWRITE"
)

// Upload writes a blob from internal storage to a Dropbox path.
type Upload struct {
	AccessToken string `yaml:"accessToken" mapstructure:"accessToken"`

	// From is the internal storage URI of the content to upload, typically
	// an output of a previous task.
	From string `yaml:"from" mapstructure:"from"`

	// To is the destination Dropbox path.
	To string `yaml:"to" mapstructure:"to"`

	// Mode decides what happens when To already exists: ADD (default) keeps
	// both, OVERWRITE replaces the existing file.
	Mode string `yaml:"mode" mapstructure:"mode"`

	// Autorename lets the server rename the upload on a conflict.
	Autorename bool `yaml:"autorename" mapstructure:"autorename"`

	// Client overrides the API client built from AccessToken. Tests use it.
	Client dropbox.Client `yaml:"-" mapstructure:"-"`
}

// UploadOutput is the result of an Upload run.
type UploadOutput struct {
	// File is the metadata of the uploaded file as Dropbox stored it; the
	// name may differ from To when autorename resolved a conflict.
	File models.DropboxFile `json:"file"`
}

func (t *Upload) Run(ctx context.Context, rc *runner.Context) (*UploadOutput, error) {
	logger := rc.Logger()

	from, err := rc.Render(t.From)
	if err != nil {
		return nil, newError(KindValidation, err.Error(), err)
	}
	if strings.TrimSpace(from) == "" {
		return nil, validationf("'from' is required and cannot be empty")
	}
	if !storage.IsReference(from) {
		return nil, validationf("'from' must be an internal storage URI (%s://...), got: %s", storage.Scheme, from)
	}

	to, err := rc.Render(t.To)
	if err != nil {
		return nil, newError(KindValidation, err.Error(), err)
	}
	if strings.TrimSpace(to) == "" {
		return nil, validationf("'to' path is required")
	}
	if !strings.HasPrefix(to, "/") {
		return nil, validationf("'to' path must start with '/'")
	}

	mode, err := t.writeMode(rc)
	if err != nil {
		return nil, err
	}

	client, err := newClient(rc, t.Client, t.AccessToken)
	if err != nil {
		return nil, err
	}

	store, err := rc.Storage()
	if err != nil {
		return nil, newError(KindStorageIO, err.Error(), err)
	}

	content, err := store.Get(ctx, from)
	if err != nil {
		return nil, newError(KindStorageIO, "failed to read file from internal storage: "+from, err)
	}
	defer content.Close()

	logger.Info().Str("from", from).Str("to", to).Msg("Uploading file to Dropbox")

	meta, err := client.Upload(ctx, to, mode, t.Autorename, content)
	if err != nil {
		return nil, classify(err, apiFailure{
			op:       "upload file",
			conflict: "a file or folder already exists at the destination path: " + to,
		})
	}

	logger.Info().Str("name", meta.Name).Uint64("size", meta.Size).Msg("File successfully uploaded to Dropbox")

	return &UploadOutput{File: models.FromMetadata(meta)}, nil
}

// writeMode validates the configured conflict mode. Only the two documented
// literals are accepted, case-insensitively.
func (t *Upload) writeMode(rc *runner.Context) (dropbox.WriteMode, error) {
	rendered, err := rc.Render(t.Mode)
	if err != nil {
		return "", newError(KindValidation, err.Error(), err)
	}

	switch strings.ToUpper(strings.TrimSpace(rendered)) {
	case "", UploadModeAdd:
		return dropbox.WriteModeAdd, nil
	case UploadModeOverwrite:
		return dropbox.WriteModeOverwrite, nil
	default:
		return "", validationf("invalid 'mode': %s. Must be 'ADD' or 'OVERWRITE'", strings.ToUpper(strings.TrimSpace(rendered)))
	}
}

package tasks

import (
	"context"
	"io"
	"os"

	"github.com/flowmech/flow-plugin-dropbox/dropbox"
	"github.com/flowmech/flow-plugin-dropbox/models"
	"github.com/flowmech/flow-plugin-dropbox/runner"
)

// Download fetches a file from Dropbox and persists it to internal storage,
// so downstream tasks can consume it by URI. The content is buffered through
// a working-dir temp file that is removed on every exit path; the blob is
// only committed once the download completed in full.
type Download struct {
	AccessToken string `yaml:"accessToken" mapstructure:"accessToken"`

	// From is the file to download: a literal path or an internal storage
	// URI of a blob containing the path.
	From string `yaml:"from" mapstructure:"from"`

	// Client overrides the API client built from AccessToken. Tests use it.
	Client dropbox.Client `yaml:"-" mapstructure:"-"`
}

// DownloadOutput is the result of a Download run.
type DownloadOutput struct {
	// URI addresses the downloaded content in internal storage.
	URI string `json:"uri"`
	// File is the metadata of the downloaded file.
	File models.DropboxFile `json:"file"`
}

func (t *Download) Run(ctx context.Context, rc *runner.Context) (*DownloadOutput, error) {
	logger := rc.Logger()

	path, err := resolvePath(ctx, rc, t.From, "from")
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

	logger.Info().Str("path", path).Msg("Downloading file from Dropbox")

	meta, content, err := client.Download(ctx, path)
	if err != nil {
		return nil, classify(err, apiFailure{
			op:       "download file",
			notFound: "file not found at Dropbox path: " + path,
		})
	}
	defer content.Close()

	tmp, err := rc.TempFile()
	if err != nil {
		return nil, newError(KindStorageIO, "failed to buffer download: "+err.Error(), err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if _, err := io.Copy(tmp, content); err != nil {
		return nil, newError(KindStorageIO, "failed to buffer download: "+err.Error(), err)
	}
	if _, err := tmp.Seek(0, 0); err != nil {
		return nil, newError(KindStorageIO, "failed to buffer download: "+err.Error(), err)
	}

	uri, err := store.Put(ctx, tmp)
	if err != nil {
		return nil, newError(KindStorageIO, "failed to store downloaded file: "+err.Error(), err)
	}

	logger.Info().
		Str("name", meta.Name).
		Uint64("size", meta.Size).
		Str("uri", uri).
		Msg("File downloaded to internal storage")

	return &DownloadOutput{URI: uri, File: models.FromMetadata(meta)}, nil
}

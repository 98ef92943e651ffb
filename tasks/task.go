// Package tasks implements the Dropbox file tasks a flow can run: Upload,
// Download, Move, Copy, Delete, CreateFolder, GetMetadata, List and Search.
//
// Every task is a plain struct whose fields are the flow-facing properties;
// string properties may contain {{ ... }} template expressions rendered
// against the invocation vars. Run executes exactly one remote operation
// (or one pagination loop) and maps the result into the task's output type.
// Tasks are single-shot: build one, run it once, read the output.
package tasks

import (
	"strings"

	"github.com/flowmech/flow-plugin-dropbox/dropbox"
	"github.com/flowmech/flow-plugin-dropbox/runner"
)

// MetricFilesCount is the counter metric List and Search report, counting
// the entries they accumulated.
const MetricFilesCount = "files.count"

// newClient returns injected when the caller supplied a ready client, or
// builds one from the rendered access token.
func newClient(rc *runner.Context, injected dropbox.Client, accessToken string) (dropbox.Client, error) {
	if injected != nil {
		return injected, nil
	}

	token, err := rc.Render(accessToken)
	if err != nil {
		return nil, newError(KindValidation, err.Error(), err)
	}
	if strings.TrimSpace(token) == "" {
		return nil, validationf("'accessToken' is required")
	}

	client, err := dropbox.NewClient(token)
	if err != nil {
		return nil, newError(KindValidation, err.Error(), err)
	}
	return client, nil
}

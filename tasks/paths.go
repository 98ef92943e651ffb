package tasks

import (
	"context"
	"io"
	"strings"

	"github.com/flowmech/flow-plugin-dropbox/runner"
	"github.com/flowmech/flow-plugin-dropbox/runner/storage"
)

// resolvePath turns a path-like task input into a validated absolute Dropbox
// path. The input is either a literal path or an internal-storage URI whose
// blob content is the path; indirection lets a task consume a path produced
// by an upstream task. Every task enforces the same rules through this one
// function: non-blank, and the resolved path starts with "/".
func resolvePath(ctx context.Context, rc *runner.Context, input, fieldName string) (string, error) {
	rendered, err := rc.Render(input)
	if err != nil {
		return "", newError(KindValidation, err.Error(), err)
	}

	if strings.TrimSpace(rendered) == "" {
		return "", validationf("'%s' is required and cannot be empty", fieldName)
	}

	candidate, err := readCandidatePath(ctx, rc, rendered)
	if err != nil {
		return "", err
	}

	if candidate == "" {
		return "", validationf("'%s' resolved to an empty path", fieldName)
	}
	if !strings.HasPrefix(candidate, "/") {
		return "", validationf("'%s' path must start with '/'", fieldName)
	}

	return candidate, nil
}

// resolveOptionalPath is the variant for inputs that may legitimately be
// absent, like the search scope: a blank input means "no path filter" and
// resolves to "". A non-blank input follows the same rules as resolvePath.
func resolveOptionalPath(ctx context.Context, rc *runner.Context, input, fieldName string) (string, error) {
	rendered, err := rc.Render(input)
	if err != nil {
		return "", newError(KindValidation, err.Error(), err)
	}

	if strings.TrimSpace(rendered) == "" {
		return "", nil
	}

	candidate, err := readCandidatePath(ctx, rc, rendered)
	if err != nil {
		return "", err
	}

	if candidate == "" {
		return "", nil
	}
	if !strings.HasPrefix(candidate, "/") {
		return "", validationf("'%s' path must start with '/'", fieldName)
	}

	return candidate, nil
}

// readCandidatePath dereferences a storage URI into its trimmed content, or
// returns a literal value as-is.
func readCandidatePath(ctx context.Context, rc *runner.Context, rendered string) (string, error) {
	if !storage.IsReference(rendered) {
		return rendered, nil
	}

	store, err := rc.Storage()
	if err != nil {
		return "", newError(KindStorageIO, err.Error(), err)
	}

	reader, err := store.Get(ctx, rendered)
	if err != nil {
		return "", newError(KindValidation, "failed to read path from storage reference: "+rendered, err)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return "", newError(KindValidation, "failed to read path from storage reference: "+rendered, err)
	}

	return strings.TrimSpace(string(content)), nil
}

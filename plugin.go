package plugin

import (
	"context"
	"fmt"
	"sort"

	"github.com/flowmech/flow-plugin-dropbox/runner"
	"github.com/flowmech/flow-plugin-dropbox/tasks"
)

// Name identifies this plugin to the engine.
const Name = "dropbox"

// Task type identifiers as they appear in flow definitions.
const (
	TypeUpload       = "dropbox.files.Upload"
	TypeDownload     = "dropbox.files.Download"
	TypeMove         = "dropbox.files.Move"
	TypeCopy         = "dropbox.files.Copy"
	TypeDelete       = "dropbox.files.Delete"
	TypeCreateFolder = "dropbox.files.CreateFolder"
	TypeGetMetadata  = "dropbox.files.GetMetadata"
	TypeList         = "dropbox.files.List"
	TypeSearch       = "dropbox.files.Search"
)

var registry = map[string]func() any{
	TypeUpload:       func() any { return &tasks.Upload{} },
	TypeDownload:     func() any { return &tasks.Download{} },
	TypeMove:         func() any { return &tasks.Move{} },
	TypeCopy:         func() any { return &tasks.Copy{} },
	TypeDelete:       func() any { return &tasks.Delete{} },
	TypeCreateFolder: func() any { return &tasks.CreateFolder{} },
	TypeGetMetadata:  func() any { return &tasks.GetMetadata{} },
	TypeList:         func() any { return &tasks.List{} },
	TypeSearch:       func() any { return &tasks.Search{} },
}

// Types returns every task type identifier this plugin provides, sorted.
func Types() []string {
	types := make([]string, 0, len(registry))
	for taskType := range registry {
		types = append(types, taskType)
	}
	sort.Strings(types)
	return types
}

// New returns a fresh, unconfigured task struct for the given type
// identifier, ready to be decoded from a flow definition.
func New(taskType string) (any, error) {
	factory, ok := registry[taskType]
	if !ok {
		return nil, fmt.Errorf("unknown task type: %s", taskType)
	}
	return factory(), nil
}

// Run executes a task built by New and returns its output.
func Run(ctx context.Context, rc *runner.Context, task any) (any, error) {
	switch t := task.(type) {
	case *tasks.Upload:
		return t.Run(ctx, rc)
	case *tasks.Download:
		return t.Run(ctx, rc)
	case *tasks.Move:
		return t.Run(ctx, rc)
	case *tasks.Copy:
		return t.Run(ctx, rc)
	case *tasks.Delete:
		return t.Run(ctx, rc)
	case *tasks.CreateFolder:
		return t.Run(ctx, rc)
	case *tasks.GetMetadata:
		return t.Run(ctx, rc)
	case *tasks.List:
		return t.Run(ctx, rc)
	case *tasks.Search:
		return t.Run(ctx, rc)
	default:
		return nil, fmt.Errorf("not a task of this plugin: %T", task)
	}
}

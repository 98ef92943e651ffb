package runner

import (
	"fmt"
	"strings"
	"text/template"
)

// Render expands {{ ... }} template expressions in value against the
// invocation vars. Plain strings pass through untouched. A reference to an
// undefined variable is an error, not an empty expansion.
func (c *Context) Render(value string) (string, error) {
	if !strings.Contains(value, "{{") {
		return value, nil
	}

	tmpl, err := template.New("property").Option("missingkey=error").Parse(value)
	if err != nil {
		return "", fmt.Errorf("invalid property template %q: %w", value, err)
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, c.vars); err != nil {
		return "", fmt.Errorf("render property %q failed: %w", value, err)
	}

	return out.String(), nil
}

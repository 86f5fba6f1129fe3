package store

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// DepList is the depends_on front-matter field. Hand-edited files declare it
// in all sorts of shapes (a list of strings, a list of numbers, a single
// scalar), and a malformed declaration must degrade to "no dependencies"
// rather than fail the whole file.
type DepList []string

// UnmarshalYAML accepts a sequence of scalars or a lone scalar. Anything
// else (a mapping, nested lists) coerces to nil without error.
func (d *DepList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var out []string
		for _, child := range node.Content {
			if child.Kind == yaml.ScalarNode && strings.TrimSpace(child.Value) != "" {
				out = append(out, strings.TrimSpace(child.Value))
			}
		}
		*d = out
	case yaml.ScalarNode:
		if v := strings.TrimSpace(node.Value); v != "" {
			*d = DepList{v}
		}
	default:
		*d = nil
	}
	return nil
}

// ParseFrontmatter splits a markdown file into YAML front-matter and body.
// Content without front-matter is treated as all body.
func ParseFrontmatter(content string) (*Task, error) {
	content = strings.TrimSpace(content)

	if !strings.HasPrefix(content, frontmatterDelimiter) {
		return &Task{Body: content}, nil
	}

	// Find the closing delimiter
	rest := content[len(frontmatterDelimiter):]
	idx := strings.Index(rest, "\n"+frontmatterDelimiter)
	if idx == -1 {
		return nil, fmt.Errorf("unclosed frontmatter delimiter")
	}

	yamlContent := rest[:idx]
	body := rest[idx+len("\n"+frontmatterDelimiter):]
	body = strings.TrimLeft(body, "\n")

	var task Task
	if err := yaml.Unmarshal([]byte(yamlContent), &task); err != nil {
		return nil, fmt.Errorf("parsing frontmatter YAML: %w", err)
	}

	task.Body = body
	return &task, nil
}

// SerializeFrontmatter renders a Task back to markdown with YAML
// front-matter.
func SerializeFrontmatter(t *Task) (string, error) {
	yamlBytes, err := yaml.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("serializing frontmatter YAML: %w", err)
	}

	var b strings.Builder
	b.WriteString(frontmatterDelimiter)
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(string(yamlBytes), "\n"))
	b.WriteString("\n")
	b.WriteString(frontmatterDelimiter)
	b.WriteString("\n")
	if t.Body != "" {
		b.WriteString("\n")
		b.WriteString(t.Body)
		if !strings.HasSuffix(t.Body, "\n") {
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}

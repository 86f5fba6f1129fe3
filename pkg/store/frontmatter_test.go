package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontmatter(t *testing.T) {
	content := `---
title: Fix the flaky deploy
type: bug
status: open
priority: 1
remaining: 2
depends_on:
  - rotate-credentials
tags: [critical, infra]
parallel: true
---

Deploys fail roughly one in five runs.
`

	task, err := ParseFrontmatter(content)
	require.NoError(t, err)
	assert.Equal(t, "Fix the flaky deploy", task.Title)
	assert.Equal(t, "bug", task.Type)
	assert.Equal(t, "open", task.Status)
	assert.Equal(t, 1, task.Priority)
	assert.InDelta(t, 2.0, task.Remaining, 0.001)
	assert.Equal(t, DepList{"rotate-credentials"}, task.DependsOn)
	assert.Equal(t, []string{"critical", "infra"}, task.Tags)
	assert.True(t, task.Parallel)
	assert.Contains(t, task.Body, "one in five")
}

func TestParseFrontmatterNoDelimiter(t *testing.T) {
	task, err := ParseFrontmatter("just some notes")
	require.NoError(t, err)
	assert.Empty(t, task.Title)
	assert.Equal(t, "just some notes", task.Body)
}

func TestParseFrontmatterUnclosed(t *testing.T) {
	_, err := ParseFrontmatter("---\ntitle: nope\n")
	assert.Error(t, err)
}

func TestDependsOnShapes(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want DepList
	}{
		{"list of strings", "depends_on:\n  - a\n  - b", DepList{"a", "b"}},
		{"list of numbers", "depends_on:\n  - 101\n  - 102", DepList{"101", "102"}},
		{"single scalar", "depends_on: a", DepList{"a"}},
		{"mapping coerces to none", "depends_on:\n  a: b", nil},
		{"empty scalar", "depends_on: \"\"", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task, err := ParseFrontmatter("---\ntitle: x\n" + tc.yaml + "\n---\n")
			require.NoError(t, err)
			assert.Equal(t, tc.want, task.DependsOn)
		})
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	task := &Task{
		Title:     "Round trip",
		Status:    "open",
		Priority:  3,
		DependsOn: DepList{"other"},
		Body:      "body text",
	}

	content, err := SerializeFrontmatter(task)
	require.NoError(t, err)

	parsed, err := ParseFrontmatter(content)
	require.NoError(t, err)
	assert.Equal(t, task.Title, parsed.Title)
	assert.Equal(t, task.Priority, parsed.Priority)
	assert.Equal(t, task.DependsOn, parsed.DependsOn)
	assert.Equal(t, "body text", parsed.Body)
}

func TestSerializeNoBody(t *testing.T) {
	content, err := SerializeFrontmatter(&Task{Title: "bare", Status: "open"})
	require.NoError(t, err)
	assert.NotContains(t, content[len(content)-5:], "\n\n\n")

	parsed, err := ParseFrontmatter(content)
	require.NoError(t, err)
	assert.Empty(t, parsed.Body)
}

package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stefanpenner/wrangle/pkg/item"
)

func TestBuildWIQL(t *testing.T) {
	q := BuildWIQL(WIQLFilter{})
	assert.Equal(t, "SELECT [System.Id] FROM WorkItems WHERE [System.TeamProject] = @project ORDER BY [Microsoft.VSTS.Common.Priority] ASC, [System.Id] ASC", q)

	q = BuildWIQL(WIQLFilter{States: []string{"New", "Active"}, Types: []string{"Bug"}, Tag: "critical"})
	assert.Contains(t, q, "[System.State] IN ('New', 'Active')")
	assert.Contains(t, q, "[System.WorkItemType] IN ('Bug')")
	assert.Contains(t, q, "[System.Tags] CONTAINS 'critical'")
}

func TestBuildWIQLEscapesQuotes(t *testing.T) {
	q := BuildWIQL(WIQLFilter{Tag: "it's"})
	assert.Contains(t, q, "CONTAINS 'it''s'")
}

func boardServer(t *testing.T) *BoardClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/_apis/wit/wiql"):
			assert.Equal(t, http.MethodPost, r.Method)
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Contains(t, body["query"], "SELECT [System.Id]")
			_, _ = w.Write([]byte(`{"workItems": [{"id": 101}, {"id": 102}]}`))

		case strings.HasSuffix(r.URL.Path, "/_apis/wit/workitems"):
			assert.Equal(t, "101,102", r.URL.Query().Get("ids"))
			_, _ = w.Write([]byte(`{"value": [
				{"id": 101, "fields": {
					"System.Title": "Ship the importer",
					"System.State": "Active",
					"System.WorkItemType": "User Story",
					"Microsoft.VSTS.Common.Priority": 2,
					"Microsoft.VSTS.Scheduling.RemainingWork": 6,
					"System.Tags": "backend; urgent; parallel"
				}},
				{"id": 102, "fields": {
					"System.Title": "Fix importer crash",
					"System.State": "New",
					"System.WorkItemType": "Bug"
				}, "relations": [
					{"rel": "System.LinkTypes.Dependency-Reverse", "url": "https://dev.example/_apis/wit/workItems/101"},
					{"rel": "System.LinkTypes.Hierarchy-Forward", "url": "https://dev.example/_apis/wit/workItems/9"}
				]}
			]}`))

		case strings.Contains(r.URL.Path, "/_apis/wit/workitems/102"):
			_, _ = w.Write([]byte(`{"id": 102, "relations": [{"rel": "System.LinkTypes.Dependency-Reverse", "url": "https://dev.example/_apis/wit/workItems/101"}]}`))

		default:
			http.Error(w, "missing", http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return NewBoardClient(BoardConfig{BaseURL: srv.URL, Org: "acme", Project: "platform", Token: "pat"})
}

func TestBoardListCandidates(t *testing.T) {
	client := boardServer(t)

	items, err := client.ListCandidates(context.Background(), WIQLFilter{})
	require.NoError(t, err)
	require.Len(t, items, 2)

	story := items[0]
	assert.Equal(t, "101", story.ID)
	assert.Equal(t, "Ship the importer", story.Title)
	assert.Equal(t, item.TypeUserStory, story.Type)
	assert.Equal(t, item.StatusInProgress, story.Status)
	assert.Equal(t, 2, story.Priority)
	assert.InDelta(t, 6.0, story.Remaining, 0.001)
	assert.Equal(t, []string{"backend", "urgent"}, story.Tags)
	assert.True(t, story.Parallel)

	bug := items[1]
	assert.Equal(t, item.TypeBug, bug.Type)
	assert.Equal(t, item.StatusOpen, bug.Status)
	assert.Equal(t, []string{"101"}, bug.DependsOn) // hierarchy link ignored
	assert.Equal(t, item.LowestPriority, bug.Priority)
}

func TestBoardCheckDependencyLinks(t *testing.T) {
	client := boardServer(t)

	linked, err := client.CheckDependencyLinks(context.Background(), "102")
	require.NoError(t, err)
	assert.True(t, linked)

	_, err = client.CheckDependencyLinks(context.Background(), "404")
	assert.Error(t, err)
}

func TestBoardEmptyQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"workItems": []}`))
	}))
	t.Cleanup(srv.Close)

	client := NewBoardClient(BoardConfig{BaseURL: srv.URL, Org: "a", Project: "p"})
	items, err := client.ListCandidates(context.Background(), WIQLFilter{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

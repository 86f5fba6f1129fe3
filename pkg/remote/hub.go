// Package remote implements thin clients for the supported work trackers: a
// GitHub-like issue API (HubClient) and an Azure-DevOps-like work-item
// service (BoardClient). Both normalize responses into the item model; all
// ranking logic stays in pkg/engine.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/stefanpenner/wrangle/pkg/item"
)

// defaultTimeout bounds every tracker request.
const defaultTimeout = 15 * time.Second

// HubConfig configures a HubClient. Everything is explicit; the client never
// reads environment state.
type HubConfig struct {
	BaseURL string // e.g. https://api.github.example
	Owner   string
	Repo    string
	Token   string
}

// HubClient talks to a GitHub-like issue tracker. Issue labels carry the
// work-item metadata the markdown store keeps in front-matter:
//
//	priority:N    urgency tier
//	type:bug      work-item type
//	depends:#42   dependency on issue 42
//	remaining:3h  remaining effort
//	blocked       manual blocked flag (kept as a plain tag)
type HubClient struct {
	cfg  HubConfig
	http *http.Client
}

// NewHubClient creates a client for a GitHub-like tracker.
func NewHubClient(cfg HubConfig) *HubClient {
	return &HubClient{
		cfg:  cfg,
		http: &http.Client{Timeout: defaultTimeout},
	}
}

type hubIssue struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	State  string `json:"state"`
	Labels []struct {
		Name string `json:"name"`
	} `json:"labels"`
	Assignee *struct {
		Login string `json:"login"`
	} `json:"assignee"`
	PullRequest *struct{} `json:"pull_request,omitempty"`
}

// List returns the issue snapshot, normalized. It implements item.Source.
func (c *HubClient) List() ([]item.WorkItem, error) {
	return c.ListCandidates(context.Background())
}

// ListCandidates fetches open and closed issues and maps them into the
// normalized model. Pull requests are skipped.
func (c *HubClient) ListCandidates(ctx context.Context) ([]item.WorkItem, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/issues?state=all&per_page=100",
		strings.TrimRight(c.cfg.BaseURL, "/"), url.PathEscape(c.cfg.Owner), url.PathEscape(c.cfg.Repo))

	var issues []hubIssue
	if err := c.get(ctx, endpoint, &issues); err != nil {
		return nil, fmt.Errorf("listing issues: %w", err)
	}

	var items []item.WorkItem
	for _, is := range issues {
		if is.PullRequest != nil {
			continue
		}
		items = append(items, normalizeHubIssue(is))
	}
	return items, nil
}

// CheckDependencyLinks reports whether the issue still carries dependency
// labels on the remote side. Callers (the recommender) treat any error as
// "no dependency"; this method only reports, it never guesses.
func (c *HubClient) CheckDependencyLinks(ctx context.Context, id string) (bool, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/issues/%s",
		strings.TrimRight(c.cfg.BaseURL, "/"), url.PathEscape(c.cfg.Owner), url.PathEscape(c.cfg.Repo), url.PathEscape(id))

	var is hubIssue
	if err := c.get(ctx, endpoint, &is); err != nil {
		return false, fmt.Errorf("checking issue %s: %w", id, err)
	}

	for _, l := range is.Labels {
		if strings.HasPrefix(l.Name, "depends:") {
			return true, nil
		}
	}
	return false, nil
}

func (c *HubClient) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func normalizeHubIssue(is hubIssue) item.WorkItem {
	w := item.WorkItem{
		ID:     strconv.Itoa(is.Number),
		Title:  is.Title,
		Type:   item.TypeTask,
		Status: item.CanonicalStatus(is.State),
	}

	for _, l := range is.Labels {
		name := strings.TrimSpace(l.Name)
		switch {
		case strings.HasPrefix(name, "priority:"):
			if p, err := strconv.Atoi(strings.TrimPrefix(name, "priority:")); err == nil {
				w.Priority = p
			}
		case strings.HasPrefix(name, "type:"):
			w.Type = item.CanonicalType(strings.TrimPrefix(name, "type:"))
		case strings.HasPrefix(name, "depends:"):
			dep := strings.TrimPrefix(name, "depends:")
			dep = strings.TrimPrefix(dep, "#")
			if dep != "" {
				w.DependsOn = append(w.DependsOn, dep)
			}
		case strings.HasPrefix(name, "remaining:"):
			hours := strings.TrimSuffix(strings.TrimPrefix(name, "remaining:"), "h")
			if h, err := strconv.ParseFloat(hours, 64); err == nil {
				w.Remaining = h
			}
		case name == "parallel":
			w.Parallel = true
		default:
			w.Tags = append(w.Tags, name)
		}
	}

	w.Normalize()
	return w
}

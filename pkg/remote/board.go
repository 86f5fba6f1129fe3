package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/stefanpenner/wrangle/pkg/item"
)

// apiVersion is the work-item API version the BoardClient speaks.
const apiVersion = "7.0"

// detailBatchSize caps how many work-item ids one detail request may carry.
const detailBatchSize = 200

// BoardConfig configures a BoardClient.
type BoardConfig struct {
	BaseURL string // e.g. https://dev.azure.example
	Org     string
	Project string
	Token   string
}

// BoardClient talks to an Azure-DevOps-like work-item service: a WIQL query
// returns matching ids, then details are fetched in batches.
type BoardClient struct {
	cfg  BoardConfig
	http *http.Client
}

// NewBoardClient creates a client for an Azure-DevOps-like tracker.
func NewBoardClient(cfg BoardConfig) *BoardClient {
	return &BoardClient{
		cfg:  cfg,
		http: &http.Client{Timeout: defaultTimeout},
	}
}

// WIQLFilter narrows the candidate query. Zero value means all work items in
// the project.
type WIQLFilter struct {
	States []string
	Types  []string
	Tag    string
}

// BuildWIQL renders the filter into a WIQL query string.
func BuildWIQL(f WIQLFilter) string {
	var b strings.Builder
	b.WriteString("SELECT [System.Id] FROM WorkItems WHERE [System.TeamProject] = @project")

	if len(f.States) > 0 {
		b.WriteString(" AND [System.State] IN (")
		for i, s := range f.States {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "'%s'", strings.ReplaceAll(s, "'", "''"))
		}
		b.WriteString(")")
	}
	if len(f.Types) > 0 {
		b.WriteString(" AND [System.WorkItemType] IN (")
		for i, t := range f.Types {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "'%s'", strings.ReplaceAll(t, "'", "''"))
		}
		b.WriteString(")")
	}
	if f.Tag != "" {
		fmt.Fprintf(&b, " AND [System.Tags] CONTAINS '%s'", strings.ReplaceAll(f.Tag, "'", "''"))
	}

	b.WriteString(" ORDER BY [Microsoft.VSTS.Common.Priority] ASC, [System.Id] ASC")
	return b.String()
}

type wiqlResponse struct {
	WorkItems []struct {
		ID int `json:"id"`
	} `json:"workItems"`
}

type boardWorkItem struct {
	ID        int            `json:"id"`
	Fields    map[string]any `json:"fields"`
	Relations []struct {
		Rel string `json:"rel"`
		URL string `json:"url"`
	} `json:"relations"`
}

type boardDetailResponse struct {
	Value []boardWorkItem `json:"value"`
}

// List returns the work-item snapshot, normalized. It implements
// item.Source.
func (c *BoardClient) List() ([]item.WorkItem, error) {
	return c.ListCandidates(context.Background(), WIQLFilter{})
}

// ListCandidates runs the WIQL query, then fetches details for the matching
// ids in batches. The detail fetches are sequential; a snapshot is complete
// before any resolution begins.
func (c *BoardClient) ListCandidates(ctx context.Context, filter WIQLFilter) ([]item.WorkItem, error) {
	ids, err := c.queryIDs(ctx, BuildWIQL(filter))
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	var items []item.WorkItem
	for start := 0; start < len(ids); start += detailBatchSize {
		end := min(start+detailBatchSize, len(ids))
		batch, err := c.fetchDetails(ctx, ids[start:end])
		if err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}
	return items, nil
}

// CheckDependencyLinks reports whether the work item has predecessor links
// on the remote side. Errors are advisory; the recommender fails open.
func (c *BoardClient) CheckDependencyLinks(ctx context.Context, id string) (bool, error) {
	endpoint := fmt.Sprintf("%s/%s/%s/_apis/wit/workitems/%s?$expand=relations&api-version=%s",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Org, c.cfg.Project, id, apiVersion)

	var wi boardWorkItem
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &wi); err != nil {
		return false, fmt.Errorf("checking work item %s: %w", id, err)
	}

	for _, rel := range wi.Relations {
		if strings.Contains(rel.Rel, "Dependency-Reverse") {
			return true, nil
		}
	}
	return false, nil
}

func (c *BoardClient) queryIDs(ctx context.Context, wiql string) ([]int, error) {
	endpoint := fmt.Sprintf("%s/%s/%s/_apis/wit/wiql?api-version=%s",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Org, c.cfg.Project, apiVersion)

	body, err := json.Marshal(map[string]string{"query": wiql})
	if err != nil {
		return nil, err
	}

	var resp wiqlResponse
	if err := c.do(ctx, http.MethodPost, endpoint, body, &resp); err != nil {
		return nil, fmt.Errorf("running WIQL query: %w", err)
	}

	ids := make([]int, 0, len(resp.WorkItems))
	for _, wi := range resp.WorkItems {
		ids = append(ids, wi.ID)
	}
	return ids, nil
}

func (c *BoardClient) fetchDetails(ctx context.Context, ids []int) ([]item.WorkItem, error) {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = strconv.Itoa(id)
	}
	endpoint := fmt.Sprintf("%s/%s/%s/_apis/wit/workitems?ids=%s&$expand=relations&api-version=%s",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Org, c.cfg.Project, strings.Join(strs, ","), apiVersion)

	var resp boardDetailResponse
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching work item details: %w", err)
	}

	items := make([]item.WorkItem, 0, len(resp.Value))
	for _, wi := range resp.Value {
		items = append(items, normalizeBoardItem(wi))
	}
	return items, nil
}

func (c *BoardClient) do(ctx context.Context, method, endpoint string, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.Token != "" {
		req.SetBasicAuth("", c.cfg.Token)
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

func normalizeBoardItem(wi boardWorkItem) item.WorkItem {
	w := item.WorkItem{
		ID:     strconv.Itoa(wi.ID),
		Title:  fieldString(wi.Fields, "System.Title"),
		Type:   item.CanonicalType(fieldString(wi.Fields, "System.WorkItemType")),
		Status: item.CanonicalStatus(fieldString(wi.Fields, "System.State")),
	}

	if p, ok := fieldNumber(wi.Fields, "Microsoft.VSTS.Common.Priority"); ok {
		w.Priority = int(p)
	}
	if r, ok := fieldNumber(wi.Fields, "Microsoft.VSTS.Scheduling.RemainingWork"); ok {
		w.Remaining = r
	}

	// System.Tags is a single "; "-separated string.
	for _, tag := range strings.Split(fieldString(wi.Fields, "System.Tags"), ";") {
		if tag = strings.TrimSpace(tag); tag != "" {
			if strings.EqualFold(tag, "parallel") {
				w.Parallel = true
				continue
			}
			w.Tags = append(w.Tags, tag)
		}
	}

	// Predecessor links are Dependency-Reverse relations; the dependency id
	// is the last path segment of the related item's URL.
	for _, rel := range wi.Relations {
		if !strings.Contains(rel.Rel, "Dependency-Reverse") {
			continue
		}
		if idx := strings.LastIndex(rel.URL, "/"); idx >= 0 && idx+1 < len(rel.URL) {
			w.DependsOn = append(w.DependsOn, rel.URL[idx+1:])
		}
	}

	w.Normalize()
	return w
}

func fieldString(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

func fieldNumber(fields map[string]any, key string) (float64, bool) {
	switch v := fields[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

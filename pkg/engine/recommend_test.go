package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stefanpenner/wrangle/pkg/item"
)

func TestRecommendNextEmptySnapshot(t *testing.T) {
	rec := RecommendNext(nil)
	assert.Nil(t, rec.Best)
	assert.Empty(t, rec.Alternatives)
}

func TestRecommendNextAllBlockedOrClosed(t *testing.T) {
	items := []item.WorkItem{
		closed("1"),
		open("2", "missing"),
	}

	rec := RecommendNext(items)
	assert.Nil(t, rec.Best)
}

func TestRecommendNextPicksBugOverTask(t *testing.T) {
	items := []item.WorkItem{
		{ID: "chore", Type: item.TypeTask, Status: item.StatusOpen, Priority: 3, Remaining: 8},
		{ID: "crash", Type: item.TypeBug, Status: item.StatusOpen, Priority: 1, Remaining: 2, Tags: []string{"critical", "urgent"}},
	}

	rec := RecommendNext(items)
	require.NotNil(t, rec.Best)
	assert.Equal(t, "crash", rec.Best.ID)
	assert.Contains(t, rec.Reasons, "bug, needs immediate attention")
	assert.Contains(t, rec.Reasons, "highest priority")
	assert.Contains(t, rec.Reasons, "quick win (2h remaining)")
	assert.Contains(t, rec.Reasons, "tagged as critical")
}

func TestRecommendNextAlternativesExcludeBest(t *testing.T) {
	items := []item.WorkItem{
		open("a"), open("b"), open("c"), open("d"), open("e"), open("f"),
	}

	rec := RecommendNext(items)
	require.NotNil(t, rec.Best)
	require.Len(t, rec.Alternatives, maxAlternatives)
	for _, alt := range rec.Alternatives {
		assert.NotEqual(t, rec.Best.ID, alt.ID)
	}
}

func TestRecommendNextDefaultReason(t *testing.T) {
	rec := RecommendNext([]item.WorkItem{open("only")})
	require.NotNil(t, rec.Best)
	require.Len(t, rec.Reasons, 1)
	assert.Contains(t, rec.Reasons[0], "ready queue")
}

type fakeChecker struct {
	linked map[string]bool
	errs   map[string]error
	calls  []string
}

func (f *fakeChecker) CheckDependencyLinks(_ context.Context, id string) (bool, error) {
	f.calls = append(f.calls, id)
	if err := f.errs[id]; err != nil {
		return false, err
	}
	return f.linked[id], nil
}

func TestRecommendNextCheckedSkipsLinkedCandidates(t *testing.T) {
	items := []item.WorkItem{
		{ID: "top", Type: item.TypeTask, Status: item.StatusOpen, Priority: 1},
		{ID: "second", Type: item.TypeTask, Status: item.StatusOpen, Priority: 2},
	}
	checker := &fakeChecker{linked: map[string]bool{"top": true}}

	rec := RecommendNextChecked(context.Background(), items, checker)
	require.NotNil(t, rec.Best)
	assert.Equal(t, "second", rec.Best.ID)
	assert.Equal(t, []string{"top", "second"}, checker.calls)
}

func TestRecommendNextCheckedFailsOpen(t *testing.T) {
	items := []item.WorkItem{
		{ID: "top", Type: item.TypeTask, Status: item.StatusOpen, Priority: 1},
		{ID: "second", Type: item.TypeTask, Status: item.StatusOpen, Priority: 2},
	}
	checker := &fakeChecker{errs: map[string]error{"top": errors.New("transport down")}}

	// A failed check is treated as "no dependency", never as blocked, and
	// never aborts the batch.
	rec := RecommendNextChecked(context.Background(), items, checker)
	require.NotNil(t, rec.Best)
	assert.Equal(t, "top", rec.Best.ID)
	require.Len(t, rec.Warnings, 1)
	assert.Contains(t, rec.Warnings[0], "transport down")
}

func TestRecommendNextCheckedNilChecker(t *testing.T) {
	rec := RecommendNextChecked(context.Background(), []item.WorkItem{open("a")}, nil)
	require.NotNil(t, rec.Best)
	assert.Equal(t, "a", rec.Best.ID)
}

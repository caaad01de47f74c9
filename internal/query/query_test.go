package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/course-catalog/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func fixture() []model.Course {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return []model.Course{
		{ID: 1, Title: "Go Basics", Description: "Intro to Go", Category: "programming", Level: model.LevelBeginner, Duration: 10, Published: true, CreatedAt: base, UpdatedAt: base.Add(time.Hour)},
		{ID: 2, Title: "SQL Deep Dive", Description: "Queries and indexes", Category: "databases", Level: model.LevelAdvanced, Duration: 25, Published: true, CreatedAt: base.Add(time.Hour), UpdatedAt: base.Add(2 * time.Hour)},
		{ID: 3, Title: "go concurrency", Description: "Channels in depth", Category: "programming", Level: model.LevelIntermediate, Duration: 15, Published: false, CreatedAt: base.Add(2 * time.Hour), UpdatedAt: base.Add(3 * time.Hour)},
		{ID: 4, Title: "Design Patterns", Description: "Classic go patterns", Category: "architecture", Level: model.LevelIntermediate, Duration: 15, Published: true, CreatedAt: base.Add(3 * time.Hour), UpdatedAt: base},
	}
}

func ids(cs []model.Course) []uint64 {
	out := make([]uint64, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func TestFilterTextMatchesTitleOrDescription(t *testing.T) {
	got := Filter(fixture(), Criteria{Text: "GO"})
	// "Go Basics" and "go concurrency" by title, "Classic go patterns" by description.
	assert.Equal(t, []uint64{1, 3, 4}, ids(got))
}

func TestFilterCategorySet(t *testing.T) {
	got := Filter(fixture(), Criteria{Categories: []string{"databases", "architecture"}})
	assert.Equal(t, []uint64{2, 4}, ids(got))

	// Empty set means no category filter.
	got = Filter(fixture(), Criteria{Categories: nil})
	assert.Len(t, got, 4)
}

func TestFilterLevelAndPublished(t *testing.T) {
	got := Filter(fixture(), Criteria{Level: model.LevelIntermediate})
	assert.Equal(t, []uint64{3, 4}, ids(got))

	got = Filter(fixture(), Criteria{Published: boolPtr(false)})
	assert.Equal(t, []uint64{3}, ids(got))

	// Unset tri-state keeps everything.
	got = Filter(fixture(), Criteria{Published: nil})
	assert.Len(t, got, 4)
}

func TestFilterCriteriaAreConjunctive(t *testing.T) {
	cr := Criteria{Text: "go", Categories: []string{"programming"}, Level: model.LevelBeginner, Published: boolPtr(true)}
	got := Filter(fixture(), cr)
	assert.Equal(t, []uint64{1}, ids(got))
}

func TestFilterOrderIndependence(t *testing.T) {
	// Applying independent criteria one at a time, in any order, must equal
	// applying them at once.
	full := Criteria{Text: "go", Categories: []string{"programming"}, Published: boolPtr(true)}
	combined := Filter(fixture(), full)

	stepA := Filter(Filter(Filter(fixture(), Criteria{Text: "go"}), Criteria{Categories: []string{"programming"}}), Criteria{Published: boolPtr(true)})
	stepB := Filter(Filter(Filter(fixture(), Criteria{Published: boolPtr(true)}), Criteria{Text: "go"}), Criteria{Categories: []string{"programming"}})

	assert.Equal(t, ids(combined), ids(stepA))
	assert.Equal(t, ids(combined), ids(stepB))
}

func TestSortByTitleCaseInsensitive(t *testing.T) {
	got := Sort(fixture(), SortSpec{Field: ByTitle})
	assert.Equal(t, []uint64{4, 1, 3, 2}, ids(got))

	got = Sort(fixture(), SortSpec{Field: ByTitle, Desc: true})
	assert.Equal(t, []uint64{2, 3, 1, 4}, ids(got))
}

func TestSortLevelUsesRawStringOrder(t *testing.T) {
	// advanced < beginner < intermediate: plain string order, not rank.
	got := Sort(fixture(), SortSpec{Field: ByLevel})
	require.Len(t, got, 4)
	assert.Equal(t, model.LevelAdvanced, got[0].Level)
	assert.Equal(t, model.LevelBeginner, got[1].Level)
	assert.Equal(t, model.LevelIntermediate, got[2].Level)
}

func TestSortNumericAndDates(t *testing.T) {
	got := Sort(fixture(), SortSpec{Field: ByDuration})
	assert.Equal(t, []uint64{1, 3, 4, 2}, ids(got))

	got = Sort(fixture(), SortSpec{Field: ByCreatedAt, Desc: true})
	assert.Equal(t, []uint64{4, 3, 2, 1}, ids(got))

	got = Sort(fixture(), SortSpec{Field: ByUpdatedAt})
	assert.Equal(t, []uint64{4, 1, 2, 3}, ids(got))
}

func TestSortIsStableOnTies(t *testing.T) {
	// Courses 3 and 4 share duration 15; they keep incoming order.
	got := Sort(fixture(), SortSpec{Field: ByDuration})
	assert.Equal(t, uint64(3), got[1].ID)
	assert.Equal(t, uint64(4), got[2].ID)
}

func TestSortIsIdempotent(t *testing.T) {
	spec := SortSpec{Field: ByTitle}
	once := Sort(fixture(), spec)
	twice := Sort(once, spec)
	assert.Equal(t, once, twice)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	in := fixture()
	want := ids(in)
	_ = Apply(in, Criteria{Text: "go"}, SortSpec{Field: ByDuration, Desc: true})
	assert.Equal(t, want, ids(in))
}

func TestSortUnknownFieldKeepsOrder(t *testing.T) {
	got := Sort(fixture(), SortSpec{Field: "bogus"})
	assert.Equal(t, []uint64{1, 2, 3, 4}, ids(got))
}

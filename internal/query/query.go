// Package query derives filtered and sorted views over a course collection.
// It is the client-side half of the catalog: callers fetch the full course
// list from the API and re-derive their view locally with these functions.
// Everything here is pure; inputs are never mutated and applying the same
// criteria and sort spec twice yields an identical sequence.
package query

import (
	"sort"
	"strings"

	"github.com/iliyamo/course-catalog/internal/model"
)

// Criteria is a conjunction of optional filters. Zero values mean "no filter
// on this dimension": empty Text, empty Categories, empty Level, and nil
// Published each pass every course.
type Criteria struct {
	// Text matches case-insensitively as a substring of title OR description.
	Text string
	// Categories keeps a course when its category is a member of the set.
	Categories []string
	// Level keeps courses whose level equals this exact value.
	Level string
	// Published is tri-state: nil disables the filter.
	Published *bool
}

// Sortable fields for a course view.
const (
	ByTitle     = "title"
	ByCategory  = "category"
	ByLevel     = "level"
	ByDuration  = "duration"
	ByCreatedAt = "createdAt"
	ByUpdatedAt = "updatedAt"
)

// SortSpec pairs a field with a direction. An empty Field leaves the
// sequence in its incoming order.
type SortSpec struct {
	Field string
	Desc  bool
}

// Matches reports whether c passes every active filter in cr.
func (cr Criteria) Matches(c model.Course) bool {
	if cr.Text != "" {
		q := strings.ToLower(cr.Text)
		if !strings.Contains(strings.ToLower(c.Title), q) &&
			!strings.Contains(strings.ToLower(c.Description), q) {
			return false
		}
	}
	if len(cr.Categories) > 0 {
		found := false
		for _, cat := range cr.Categories {
			if c.Category == cat {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if cr.Level != "" && c.Level != cr.Level {
		return false
	}
	if cr.Published != nil && c.Published != *cr.Published {
		return false
	}
	return true
}

// Filter returns the courses passing cr, preserving their incoming order.
func Filter(courses []model.Course, cr Criteria) []model.Course {
	out := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		if cr.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}

// Sort returns a copy of courses ordered by spec. String fields compare
// case-insensitively. Level compares by its raw string value, so "advanced"
// orders before "beginner" regardless of difficulty. The sort is stable:
// ties keep their incoming relative order.
func Sort(courses []model.Course, spec SortSpec) []model.Course {
	out := make([]model.Course, len(courses))
	copy(out, courses)
	if spec.Field == "" {
		return out
	}
	less := lessFunc(spec.Field)
	if less == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		if spec.Desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// Apply filters then sorts in one step.
func Apply(courses []model.Course, cr Criteria, spec SortSpec) []model.Course {
	return Sort(Filter(courses, cr), spec)
}

func lessFunc(field string) func(a, b model.Course) bool {
	switch field {
	case ByTitle:
		return func(a, b model.Course) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case ByCategory:
		return func(a, b model.Course) bool {
			return strings.ToLower(a.Category) < strings.ToLower(b.Category)
		}
	case ByLevel:
		return func(a, b model.Course) bool {
			return strings.ToLower(a.Level) < strings.ToLower(b.Level)
		}
	case ByDuration:
		return func(a, b model.Course) bool { return a.Duration < b.Duration }
	case ByCreatedAt:
		return func(a, b model.Course) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case ByUpdatedAt:
		return func(a, b model.Course) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	}
	return nil
}

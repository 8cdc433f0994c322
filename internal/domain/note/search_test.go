package note

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearch(t *testing.T) {
	notes := []Note{
		{ID: 3, Title: "Groceries", Body: "milk and eggs"},
		{ID: 2, Title: "Meeting notes", Body: "Budget for Q3"},
		{ID: 1, Title: "ideas", Body: ""},
	}

	tests := []struct {
		name        string
		query       string
		expectedIDs []int64
	}{
		{
			name:        "empty query returns everything",
			query:       "",
			expectedIDs: []int64{3, 2, 1},
		},
		{
			name:        "matches title case-insensitively",
			query:       "GROCER",
			expectedIDs: []int64{3},
		},
		{
			name:        "matches body case-insensitively",
			query:       "budget",
			expectedIDs: []int64{2},
		},
		{
			name:        "substring can span several notes",
			query:       "e",
			expectedIDs: []int64{3, 2, 1},
		},
		{
			name:        "no match yields empty result",
			query:       "vacation",
			expectedIDs: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(notes, tt.query)

			ids := make([]int64, 0, len(got))
			for _, n := range got {
				ids = append(ids, n.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestSearchPreservesOrder(t *testing.T) {
	notes := []Note{
		{ID: 30, Title: "plan a", Body: ""},
		{ID: 20, Title: "other", Body: "the plan"},
		{ID: 10, Title: "plan b", Body: ""},
	}

	got := Search(notes, "plan")

	assert.Len(t, got, 3)
	assert.Equal(t, int64(30), got[0].ID)
	assert.Equal(t, int64(20), got[1].ID)
	assert.Equal(t, int64(10), got[2].ID)
}

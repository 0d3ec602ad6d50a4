package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invoiceflow/invoiceflow-backend/internal/utils/pagination"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		pageStr   string
		limitStr  string
		wantPage  int
		wantLimit int
	}{
		{"empty strings fall back to defaults", "", "", 1, 10},
		{"valid values pass through", "3", "25", 3, 25},
		{"non-numeric page falls back", "abc", "20", 1, 20},
		{"non-numeric limit falls back", "2", "xyz", 2, 10},
		{"zero page falls back", "0", "10", 1, 10},
		{"negative page falls back", "-5", "10", 1, 10},
		{"zero limit falls back", "1", "0", 1, 10},
		{"limit above max falls back", "1", "101", 1, 10},
		{"limit at max accepted", "1", "100", 1, 100},
		{"float page falls back", "1.5", "10", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pagination.Parse(tt.pageStr, tt.limitStr)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestParamsOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 5, Limit: 10}.Offset())
	assert.Equal(t, 50, pagination.Params{Page: 3, Limit: 25}.Offset())
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name    string
		params  pagination.Params
		total   int
		want    pagination.Meta
	}{
		{
			name:   "first page with more pages",
			params: pagination.Params{Page: 1, Limit: 10},
			total:  25,
			want:   pagination.Meta{Page: 1, Limit: 10, Total: 25, TotalPages: 3, HasNext: true, HasPrev: false},
		},
		{
			name:   "middle page",
			params: pagination.Params{Page: 2, Limit: 10},
			total:  25,
			want:   pagination.Meta{Page: 2, Limit: 10, Total: 25, TotalPages: 3, HasNext: true, HasPrev: true},
		},
		{
			name:   "last page",
			params: pagination.Params{Page: 3, Limit: 10},
			total:  25,
			want:   pagination.Meta{Page: 3, Limit: 10, Total: 25, TotalPages: 3, HasNext: false, HasPrev: true},
		},
		{
			name:   "empty result set",
			params: pagination.Params{Page: 1, Limit: 10},
			total:  0,
			want:   pagination.Meta{Page: 1, Limit: 10, Total: 0, TotalPages: 0, HasNext: false, HasPrev: false},
		},
		{
			name:   "page beyond last has no next",
			params: pagination.Params{Page: 9, Limit: 10},
			total:  25,
			want:   pagination.Meta{Page: 9, Limit: 10, Total: 25, TotalPages: 3, HasNext: false, HasPrev: true},
		},
		{
			name:   "exact page boundary",
			params: pagination.Params{Page: 2, Limit: 10},
			total:  20,
			want:   pagination.Meta{Page: 2, Limit: 10, Total: 20, TotalPages: 2, HasNext: false, HasPrev: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pagination.NewMeta(tt.params, tt.total))
		})
	}
}

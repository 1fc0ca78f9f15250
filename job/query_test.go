package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFilter_Predicate(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   bson.M
	}{
		{
			name:   "empty filter matches all",
			filter: Filter{},
			want:   bson.M{},
		},
		{
			name:   "category is anchored case-insensitive",
			filter: Filter{Category: "Engineering"},
			want:   bson.M{"category": primitive.Regex{Pattern: "^Engineering$", Options: "i"}},
		},
		{
			name:   "title is anchored case-insensitive",
			filter: Filter{Title: "Backend Developer"},
			want:   bson.M{"job_title": primitive.Regex{Pattern: "^Backend Developer$", Options: "i"}},
		},
		{
			name:   "status is exact",
			filter: Filter{Status: StatusHot},
			want:   bson.M{"status": "hot"},
		},
		{
			name:   "employer email is exact",
			filter: Filter{EmployerEmail: "hr@acme.com"},
			want:   bson.M{"employer_email": "hr@acme.com"},
		},
		{
			name:   "regex metacharacters are quoted",
			filter: Filter{Title: "C++ (Senior)"},
			want:   bson.M{"job_title": primitive.Regex{Pattern: `^C\+\+ \(Senior\)$`, Options: "i"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Predicate())
		})
	}
}

func TestPage_SkipLimit(t *testing.T) {
	tests := []struct {
		name      string
		page      Page
		wantSkip  int64
		wantLimit int64
	}{
		{"first page", Page{Index: 0, Size: 10}, 0, 10},
		{"third page", Page{Index: 2, Size: 25}, 50, 25},
		{"size one", Page{Index: 7, Size: 1}, 7, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSkip, tt.page.Skip())
			assert.Equal(t, tt.wantLimit, tt.page.Limit())
		})
	}
}

func TestListProjection(t *testing.T) {
	projection := ListProjection()

	for _, field := range []string{"company_name", "job_title", "deadline", "status"} {
		require.Contains(t, projection, field)
	}
	assert.Len(t, projection, 4)
}

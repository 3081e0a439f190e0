package glassdoor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchURL(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		place   string
		want    string
	}{
		{
			name:    "ascii",
			keyword: "android-developer",
			place:   "boston-ma",
			want:    "https://www.glassdoor.com/Job/boston-ma-android-developer-jobs-SRCH_IL.0,12_IC1154532_KO10,27.htm",
		},
		{
			name:    "offsets count characters not bytes",
			keyword: "café",
			place:   "são-paulo",
			want:    "https://www.glassdoor.com/Job/são-paulo-café-jobs-SRCH_IL.0,12_IC1154532_KO10,14.htm",
		},
		{
			name:    "empty inputs are not validated",
			keyword: "",
			place:   "",
			want:    "https://www.glassdoor.com/Job/--jobs-SRCH_IL.0,12_IC1154532_KO1,1.htm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchURL(tt.keyword, tt.place)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, SearchURL(tt.keyword, tt.place), "must be deterministic")
		})
	}
}

func TestResolveLink(t *testing.T) {
	base := SearchURL("golang", "boston-ma")

	assert.Equal(t, "https://www.glassdoor.com/job-listing/go-dev-JV_1.htm",
		ResolveLink(base, "/job-listing/go-dev-JV_1.htm"))
	assert.Equal(t, "https://example.com/a",
		ResolveLink(base, "https://example.com/a"))
}

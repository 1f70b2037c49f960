package transport

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type banMode int

type listQuery struct {
	Page       *int     `query:"page"`
	PageSize   *int     `query:"page_size"`
	Search     *string  `query:"search"`
	BanMode    *banMode `query:"ban_mode"`
	OnlineOnly *bool
	Tags       []string `query:"tag"`
	Internal   string   `query:"-"`
	hidden     string
}

func intPtr(v int) *int { return &v }

func TestEncodeQuery(t *testing.T) {
	search := "steve"
	online := true
	mode := banMode(2)

	tests := []struct {
		name  string
		query any
		want  url.Values
	}{
		{
			name:  "nil",
			query: nil,
			want:  url.Values{},
		},
		{
			name: "params drop nil entries",
			query: Params{
				"page":    1,
				"search":  nil,
				"town_id": (*int)(nil),
				"name":    "alex",
			},
			want: url.Values{"page": {"1"}, "name": {"alex"}},
		},
		{
			name:  "plain map",
			query: map[string]any{"online_only": true, "ratio": 0.5},
			want:  url.Values{"online_only": {"true"}, "ratio": {"0.5"}},
		},
		{
			name:  "url values copied",
			query: url.Values{"detail": {"true"}},
			want:  url.Values{"detail": {"true"}},
		},
		{
			name:  "empty struct",
			query: listQuery{},
			want:  url.Values{},
		},
		{
			name: "struct fields",
			query: &listQuery{
				Page:       intPtr(2),
				PageSize:   intPtr(50),
				Search:     &search,
				BanMode:    &mode,
				OnlineOnly: &online,
				Tags:       []string{"a", "b"},
				Internal:   "skip",
				hidden:     "skip",
			},
			want: url.Values{
				"page":        {"2"},
				"page_size":   {"50"},
				"search":      {"steve"},
				"ban_mode":    {"2"},
				"online_only": {"true"},
				"tag":         {"a", "b"},
			},
		},
		{
			name:  "nil struct pointer",
			query: (*listQuery)(nil),
			want:  url.Values{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeQuery(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeQuery_Unsupported(t *testing.T) {
	_, err := EncodeQuery(42)
	assert.Error(t, err)

	_, err = EncodeQuery(Params{"bad": map[string]int{"x": 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"bad"`)
}

func TestEncodeQuery_DoesNotAliasInput(t *testing.T) {
	in := url.Values{"page": {"1"}}
	out, err := EncodeQuery(in)
	require.NoError(t, err)

	out.Set("page", "2")
	assert.Equal(t, "1", in.Get("page"))
}

func TestEncodeQuery_EmbeddedStruct(t *testing.T) {
	type page struct {
		Page     *int `query:"page"`
		PageSize *int `query:"page_size"`
	}
	type options struct {
		page
		Search *string `query:"search"`
	}

	search := "spawn"
	got, err := EncodeQuery(&options{page: page{PageSize: intPtr(10)}, Search: &search})
	require.NoError(t, err)
	assert.Equal(t, url.Values{"page_size": {"10"}, "search": {"spawn"}}, got)
}

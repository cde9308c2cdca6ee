package greeting

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		want    string
		wantErr error
	}{
		{
			name:   "simple name",
			params: Params{Name: strPtr("World")},
			want:   "World",
		},
		{
			name:   "whitespace only is valid",
			params: Params{Name: strPtr("  ")},
			want:   "  ",
		},
		{
			name:   "surrounding whitespace is kept",
			params: Params{Name: strPtr(" Ada ")},
			want:   " Ada ",
		},
		{
			name:   "non-ascii name",
			params: Params{Name: strPtr("東京")},
			want:   "東京",
		},
		{
			name:   "json and html special characters",
			params: Params{Name: strPtr(`<b>"x"</b>&\`)},
			want:   `<b>"x"</b>&\`,
		},
		{
			name:    "absent",
			params:  Params{},
			wantErr: ErrMissingParameter,
		},
		{
			name:    "empty",
			params:  Params{Name: strPtr("")},
			wantErr: ErrMissingParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParamsFromQuery(t *testing.T) {
	t.Run("no name key", func(t *testing.T) {
		p := ParamsFromQuery(url.Values{"other": {"x"}})
		assert.Nil(t, p.Name)
	})

	t.Run("empty name is present", func(t *testing.T) {
		p := ParamsFromQuery(url.Values{"name": {""}})
		require.NotNil(t, p.Name)
		assert.Equal(t, "", *p.Name)
	})

	t.Run("first value wins", func(t *testing.T) {
		p := ParamsFromQuery(url.Values{"name": {"first", "second"}})
		require.NotNil(t, p.Name)
		assert.Equal(t, "first", *p.Name)
	})

	t.Run("empty value slice is absent", func(t *testing.T) {
		p := ParamsFromQuery(url.Values{"name": {}})
		assert.Nil(t, p.Name)
	})
}

func TestValidateQuery(t *testing.T) {
	values, err := url.ParseQuery("name=%E6%9D%B1%E4%BA%AC")
	require.NoError(t, err)

	name, err := ValidateQuery(values)
	require.NoError(t, err)
	assert.Equal(t, "東京", name)

	_, err = ValidateQuery(url.Values{})
	assert.ErrorIs(t, err, ErrMissingParameter)

	_, err = ValidateQuery(url.Values{"name": {""}})
	assert.ErrorIs(t, err, ErrMissingParameter)
}

func TestNewResponse(t *testing.T) {
	names := []string{"World", "John Doe", "Mary-Jane", "A", "  ", "東京", `"quoted"`}

	for _, n := range names {
		t.Run(n, func(t *testing.T) {
			first := NewResponse(n)
			second := NewResponse(n)
			assert.Equal(t, "Hello, "+n+"!", first.Message)
			assert.Equal(t, first, second)
		})
	}
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
		want     url.Values
	}{
		{
			name:     "well formed",
			rawQuery: "name=%E6%9D%B1%E4%BA%AC&x=1",
			want:     url.Values{"name": {"東京"}, "x": {"1"}},
		},
		{
			name:     "empty query",
			rawQuery: "",
			want:     url.Values{},
		},
		{
			name:     "trailing percent",
			rawQuery: "name=100%",
			want:     url.Values{"name": {"100%"}},
		},
		{
			name:     "invalid escape kept verbatim",
			rawQuery: "name=%ZZ",
			want:     url.Values{"name": {"%ZZ"}},
		},
		{
			name:     "semicolon is part of the value",
			rawQuery: "name=a;b",
			want:     url.Values{"name": {"a;b"}},
		},
		{
			name:     "valid escapes still decoded next to bad ones",
			rawQuery: "name=J%C3%BCrgen+50%25+%G1&other=%",
			want:     url.Values{"name": {"Jürgen 50% %G1"}, "other": {"%"}},
		},
		{
			name:     "bare key and empty pairs",
			rawQuery: "name&&x=%",
			want:     url.Values{"name": {""}, "x": {"%"}},
		},
		{
			name:     "invalid utf-8 replaced",
			rawQuery: "name=%FF%",
			want:     url.Values{"name": {"�%"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQuery(tt.rawQuery))
		})
	}
}

func TestValidateQuery_Lenient(t *testing.T) {
	name, err := ValidateQuery(ParseQuery("name=100%"))
	require.NoError(t, err)
	assert.Equal(t, "100%", name)

	_, err = ValidateQuery(ParseQuery("name=&x=%"))
	assert.ErrorIs(t, err, ErrMissingParameter)
}

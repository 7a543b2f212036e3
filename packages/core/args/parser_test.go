package args

import (
	"testing"

	"github.com/abdul-hamid-achik/hitcurl/packages/core/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]string{"  https://api.example.com/users  "})

	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/users", cfg.URL)
	assert.Equal(t, config.MethodGet, cfg.Method)
	assert.Nil(t, cfg.FormData)
	assert.Nil(t, cfg.JSONBody)
	assert.Empty(t, cfg.Headers)
	assert.False(t, cfg.HeadOnly)
	assert.False(t, cfg.FollowRedirects)
	assert.False(t, cfg.Silent)
	assert.Empty(t, cfg.OutFile)
}

func TestParse_NoTokens(t *testing.T) {
	_, err := Parse(nil)
	assert.ErrorIs(t, err, ErrUsage)
}

func TestParse_FlagsWithoutURL(t *testing.T) {
	_, err := Parse([]string{"-s", "-L"})
	assert.ErrorIs(t, err, ErrUsage)
}

func TestParse_AllOptions(t *testing.T) {
	cfg, err := Parse([]string{
		"http://localhost:8080",
		"-X", "post",
		"-d", "a=1&b=2",
		"-H", "Accept: text/plain",
		"-o", "out.bin",
		"-L",
		"-s",
	})

	require.NoError(t, err)
	assert.Equal(t, config.MethodPost, cfg.Method)
	require.NotNil(t, cfg.FormData)
	assert.Equal(t, "a=1&b=2", *cfg.FormData)
	assert.Equal(t, config.Headers{{Name: "Accept", Value: "text/plain"}}, cfg.Headers)
	assert.Equal(t, "out.bin", cfg.OutFile)
	assert.True(t, cfg.FollowRedirects)
	assert.True(t, cfg.Silent)
}

func TestParse_JSONForcesPost(t *testing.T) {
	cfg, err := Parse([]string{"http://example.com", "--json", `{"b":2,"a":1}`})

	require.NoError(t, err)
	assert.Equal(t, config.MethodPost, cfg.Method)
	require.NotNil(t, cfg.JSONBody)
	assert.Equal(t, `{"b":2,"a":1}`, *cfg.JSONBody)
}

func TestParse_LastDirectiveWins(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		method config.Method
	}{
		{"method then json", []string{"http://x.io", "-X", "GET", "--json", "{}"}, config.MethodPost},
		{"json then method", []string{"http://x.io", "--json", "{}", "-X", "GET"}, config.MethodGet},
		{"method then head", []string{"http://x.io", "-X", "POST", "-I"}, config.MethodHead},
		{"head then method", []string{"http://x.io", "--head", "-X", "GET"}, config.MethodGet},
		{"unsupported then json", []string{"http://x.io", "-X", "PUT", "--json", "{}"}, config.MethodPost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(tt.tokens)
			require.NoError(t, err)
			assert.Equal(t, tt.method, cfg.Method)
		})
	}
}

func TestParse_JSONBodyKeptWhenMethodOverridden(t *testing.T) {
	cfg, err := Parse([]string{"http://x.io", "--json", `{"a":1}`, "-X", "get"})

	require.NoError(t, err)
	assert.Equal(t, config.MethodGet, cfg.Method)
	require.NotNil(t, cfg.JSONBody)
}

func TestParse_HeadOnly(t *testing.T) {
	for _, flag := range []string{"-I", "--head"} {
		cfg, err := Parse([]string{"http://x.io", flag})
		require.NoError(t, err)
		assert.True(t, cfg.HeadOnly)
		assert.Equal(t, config.MethodHead, cfg.Method)
	}
}

func TestParse_RepeatedHeaders(t *testing.T) {
	cfg, err := Parse([]string{"http://x.io", "-H", "X: 1", "-H", "X: 2"})

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, cfg.Headers.Values("X"))
}

func TestParse_HeaderSplitsOnFirstColon(t *testing.T) {
	cfg, err := Parse([]string{"http://x.io", "-H", "  Referer :  http://a.io:80/  "})

	require.NoError(t, err)
	assert.Equal(t, config.Headers{{Name: "Referer", Value: "http://a.io:80/"}}, cfg.Headers)
}

func TestParse_HeaderWithoutColon(t *testing.T) {
	_, err := Parse([]string{"http://x.io", "-H", "Accept text/plain"})

	var syntaxErr *HeaderSyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, "Accept text/plain", syntaxErr.Raw)
}

func TestParse_InvalidHeaderContent(t *testing.T) {
	tests := []string{
		"Bad Name: value",
		": empty name",
		"X-Test: line\x00break",
	}

	for _, raw := range tests {
		_, err := Parse([]string{"http://x.io", "-H", raw})
		var invalid *InvalidHeaderError
		assert.ErrorAs(t, err, &invalid, raw)
	}
}

func TestParse_TrailingValueFlagIgnored(t *testing.T) {
	for _, flag := range []string{"-X", "-d", "--json", "-H", "-o"} {
		t.Run(flag, func(t *testing.T) {
			cfg, err := Parse([]string{"http://x.io", flag})
			require.NoError(t, err)
			assert.Equal(t, config.MethodGet, cfg.Method)
			assert.Nil(t, cfg.FormData)
			assert.Nil(t, cfg.JSONBody)
			assert.Empty(t, cfg.Headers)
			assert.Empty(t, cfg.OutFile)
		})
	}
}

func TestParse_SecondPositionalIgnored(t *testing.T) {
	cfg, err := Parse([]string{"http://first.io", "-s", "http://second.io"})

	require.NoError(t, err)
	assert.Equal(t, "http://first.io", cfg.URL)
}

func TestParse_URLAfterFlags(t *testing.T) {
	cfg, err := Parse([]string{"-X", "HEAD", "http://x.io"})

	require.NoError(t, err)
	assert.Equal(t, "http://x.io", cfg.URL)
	assert.Equal(t, config.MethodHead, cfg.Method)
}

func TestParse_UnknownFlag(t *testing.T) {
	_, err := Parse([]string{"http://x.io", "-v"})

	var unknown *UnknownFlagError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "-v", unknown.Flag)
	assert.Equal(t, "Unknown option: -v", err.Error())
}

func TestParse_UnsupportedMethod(t *testing.T) {
	_, err := Parse([]string{"http://x.io", "-X", "delete"})

	var methodErr *config.UnsupportedMethodError
	require.ErrorAs(t, err, &methodErr)
	assert.Equal(t, config.Method("DELETE"), methodErr.Method)
}

func TestUsage_ListsEveryOption(t *testing.T) {
	usage := Usage("hitcurl")

	assert.Contains(t, usage, "Usage: hitcurl <URL>")
	for _, flag := range []string{"-X", "-d", "--json", "-H", "-I", "--head", "-o", "-L", "-s"} {
		assert.Contains(t, usage, flag)
	}
}

func TestUsage_HeadOnlyNotesSortedHeaders(t *testing.T) {
	assert.Contains(t, Usage("hitcurl"), "print only the response headers (names sorted)")
}

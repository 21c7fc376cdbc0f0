package urlbuild

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Setters_ReturnSameInstance(t *testing.T) {
	b := New()

	require.Same(t, b, b.Scheme("http"))
	require.Same(t, b, b.Userinfo("user:pass"))
	require.Same(t, b, b.Subdomain("api"))
	require.Same(t, b, b.Host("example.com"))
	require.Same(t, b, b.Port(8080))
	require.Same(t, b, b.Subdir("v1"))
	require.Same(t, b, b.Param("k", "v"))
	require.Same(t, b, b.Fragment("top"))
}

func TestBuilder_ZeroValue(t *testing.T) {
	var b Builder
	assert.Equal(t, "https://", b.Build())

	var c Builder
	got := c.Scheme("http").Host("example.com").Port(8080).Build()

	assert.Equal(t, "http://example.com:8080", got)
	assert.Equal(t, New().Scheme("http").Host("example.com").Port(8080).Build(), got,
		"zero value and New() must build identically")
}

func TestBuilder_String_MatchesBuild(t *testing.T) {
	b := New().Scheme("http").Host("example.com").Subdir("a").Param("k", "v")

	assert.Equal(t, b.Build(), b.String())
	assert.Equal(t, "http://example.com/a?k=v", fmt.Sprint(b))
}

func TestBuilder_Clone_Independent(t *testing.T) {
	base := New().Scheme("http").Subdomain("api").Host("google.com").Subdir("v2").Param("k", "v")
	snapshot := base.Build()

	derived := base.Clone()
	require.NotSame(t, base, derived)
	require.Equal(t, snapshot, derived.Build())

	derived.Subdir("users").Param("page", "2").Fragment("top")
	assert.Equal(t, "http://api.google.com/v2/users?k=v&page=2#top", derived.Build())
	assert.Equal(t, snapshot, base.Build(), "extending the clone must not change the base")

	base.Subdomain("internal").Port(8080)
	assert.Equal(t, "http://api.internal.google.com:8080/v2?k=v", base.Build())
	assert.Equal(t, "http://api.google.com/v2/users?k=v&page=2#top", derived.Build(),
		"extending the base must not change the clone")
}

package dbmysql

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPost_TagsRoundTrip(t *testing.T) {
	p := &Post{}
	p.SetTags([]string{"golang", "hiring"})

	require.NotNil(t, p.Tags)
	assert.Equal(t, `["golang","hiring"]`, *p.Tags)
	assert.Equal(t, []string{"golang", "hiring"}, p.GetTags())
}

func TestPost_SetTags_EmptyStoresNull(t *testing.T) {
	p := &Post{}
	p.SetTags(nil)
	assert.Nil(t, p.Tags)

	p.SetTags([]string{})
	assert.Nil(t, p.Tags)
}

func TestPost_GetTags_MalformedDegradesToEmpty(t *testing.T) {
	for _, blob := range []string{"not json", `{"a":1}`, `[1,2,3]`} {
		b := blob
		p := &Post{Tags: &b}
		assert.Equal(t, []string{}, p.GetTags(), "blob: %s", blob)
	}
}

func TestPost_MarshalJSON_ExposesParsedTags(t *testing.T) {
	p := Post{PostID: 7, Content: "hello"}
	p.SetTags([]string{"intro"})

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, []interface{}{"intro"}, out["tags"])
	assert.NotContains(t, out, "password_hash")
}

func TestUser_SummaryOmitsHash(t *testing.T) {
	u := &User{UserID: 1, Username: "alice", Email: "alice@x.com", PasswordHash: "secret"}

	raw, err := json.Marshal(u.Summary())
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")

	raw, err = json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
}

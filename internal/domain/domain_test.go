package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidID(t *testing.T) {
	cases := map[string]bool{
		"3f2504e0-4f89-41d3-9a0c-0305e82c3301":          true,
		"3F2504E0-4F89-41D3-9A0C-0305E82C3301":          true,
		"c232ab00-9414-11ec-b3c8-9f6bdeced846":          true,  // v1
		"3f2504e0-4f89-61d3-9a0c-0305e82c3301":          false, // version 6
		"3f2504e0-4f89-41d3-1a0c-0305e82c3301":          false, // NCS variant
		"3f2504e04f8941d39a0c0305e82c3301":              false,
		"{3f2504e0-4f89-41d3-9a0c-0305e82c3301}":        false,
		"urn:uuid:3f2504e0-4f89-41d3-9a0c-0305e82c3301": false,
		"":              false,
		"not-a-uuid":    false,
		"1; DROP TABLE": false,
	}
	for in, want := range cases {
		assert.Equal(t, want, ValidID(in), in)
	}
}

func TestStockAction(t *testing.T) {
	assert.True(t, StockIn.Valid())
	assert.True(t, StockOut.Valid())
	assert.False(t, StockAction("in").Valid())
	assert.False(t, StockAction("ADJUST").Valid())
	assert.Equal(t, 5, StockIn.Delta(5))
	assert.Equal(t, -5, StockOut.Delta(5))
}

func TestItemPatch_Decode(t *testing.T) {
	cases := []struct {
		body       string
		name, desc Optional[string]
		empty      bool
	}{
		{`{}`, Optional[string]{}, Optional[string]{}, true},
		{`{"name":"Bolt"}`, Some("Bolt"), Optional[string]{}, false},
		{`{"description":""}`, Optional[string]{}, Some(""), false},
		{`{"name":"","description":"x"}`, Some(""), Some("x"), false},
		{`{"description":null}`, Optional[string]{}, Optional[string]{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.body, func(t *testing.T) {
			var p ItemPatch
			require.NoError(t, json.Unmarshal([]byte(tc.body), &p))
			assert.Equal(t, tc.name, p.Name)
			assert.Equal(t, tc.desc, p.Description)
			assert.Equal(t, tc.empty, p.Empty())
		})
	}
}

func TestOptional_RejectsWrongType(t *testing.T) {
	var p ItemPatch
	assert.Error(t, json.Unmarshal([]byte(`{"name":42}`), &p))
}

func TestOptional_Marshal(t *testing.T) {
	b, err := json.Marshal(ItemPatch{Description: Some("")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":null,"description":""}`, string(b))
}

func TestUserPublic(t *testing.T) {
	u := User{ID: "id", Name: "Ann", Email: "ann@example.com", PasswordHash: "hash"}
	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hash")
	assert.Equal(t, PublicUser{ID: "id", Name: "Ann", Email: "ann@example.com"}, u.Public())
}

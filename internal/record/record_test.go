package record

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode_DropsSuppressedRecords(t *testing.T) {
	input := `[
		{"kind": "function", "name": "visible", "meta": {"filename": "src/a.js", "path": "src"}},
		{"kind": "function", "name": "hidden", "access": "private", "meta": {"filename": "src/a.js"}},
		{"kind": "function", "name": "ghost", "undocumented": true, "meta": {"filename": "src/a.js"}},
		{"kind": "member", "meta": {"filename": "src/a.js"}}
	]`

	recs, err := Decode(strings.NewReader(input), "test")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, "visible", recs[0].Name)
}

func TestDecode_PreservesOrder(t *testing.T) {
	input := `[
		{"kind": "typedef", "name": "B", "meta": {"path": "src"}},
		{"kind": "typedef", "name": "A", "meta": {"path": "src"}}
	]`
	recs, err := Decode(strings.NewReader(input), "test")
	require.NoError(t, err)
	require.Equal(t, []string{"B", "A"}, []string{recs[0].Name, recs[1].Name})
}

func TestParam_FalsyDefaultIsPresent(t *testing.T) {
	input := `[
		{"kind": "typedef", "name": "Opts", "meta": {"path": "src"}, "properties": [
			{"name": "retries", "type": {"names": ["number"]}, "defaultvalue": 0},
			{"name": "strict", "type": {"names": ["boolean"]}, "defaultvalue": false},
			{"name": "prefix", "type": {"names": ["string"]}, "defaultvalue": ""},
			{"name": "label", "type": {"names": ["string"]}}
		]}
	]`
	recs, err := Decode(strings.NewReader(input), "test")
	require.NoError(t, err)
	props := recs[0].Properties
	require.True(t, props[0].DefaultSet)
	require.EqualValues(t, 0, props[0].Default)
	require.True(t, props[1].DefaultSet)
	require.Equal(t, false, props[1].Default)
	require.True(t, props[2].DefaultSet)
	require.Equal(t, "", props[2].Default)
	require.False(t, props[3].DefaultSet)
}

func TestDir(t *testing.T) {
	require.Equal(t, "src/utils", Raw{Meta: Meta{Path: "src/utils"}}.Dir())
	require.Equal(t, "src", Raw{Meta: Meta{Filename: "src/index.js"}}.Dir())
	require.Equal(t, "", Raw{Meta: Meta{Filename: "index.js"}}.Dir())
}

func TestDecode_MalformedJSON(t *testing.T) {
	_, err := Decode(strings.NewReader("{not json"), "test")
	require.Error(t, err)
}

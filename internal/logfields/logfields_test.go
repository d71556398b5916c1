package logfields

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"BuildID", KeyBuildID, "b1", BuildID("b1")},
		{"Unit", KeyUnit, "utils", Unit("utils")},
		{"Entity", KeyEntity, "ProcessOptions", Entity("ProcessOptions")},
		{"Kind", KeyKind, "class", Kind("class")},
		{"Dir", KeyDir, "src/utils", Dir("src/utils")},
		{"File", KeyFile, "records.json", File("records.json")},
		{"Format", KeyFormat, "html", Format("html")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.attrKey, tc.attr.Key)
			require.Equal(t, tc.attrVal, tc.attr.Value.String())
		})
	}
}

func TestErrorAttr(t *testing.T) {
	require.Equal(t, "", Error(nil).Value.String())
	require.Equal(t, "boom", Error(errors.New("boom")).Value.String())
}

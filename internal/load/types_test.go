package load

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseText(t *testing.T) {
	for c, want := range map[Case]string{DC: "DC", DW: "DW", LLIM: "LLIM"} {
		text, err := c.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, want, string(text))

		var back Case
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, c, back)
	}

	data, err := json.Marshal(map[Case]int{LLIM: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"LLIM": 1}`, string(data))
}

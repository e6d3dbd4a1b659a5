package extract

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	res := Extract("+1 (650) 555-1212,1234", false, false)
	assert.Equal(t, "+16505551212", res.NetworkPortion)
	assert.Equal(t, "+16505551212", res.NetworkPortionAlt)
	assert.Equal(t, ",1234", res.PostDialPortion)
	assert.Equal(t, "+16505551212,1234", res.Stripped)
	assert.Equal(t, "2121555", res.CallerIDMinMatch)
	assert.Equal(t, "21215556561+", res.StrippedReversed)
	assert.True(t, res.Dialable)
	assert.False(t, res.URI)
	assert.True(t, res.WellFormedSMS)
}

func TestExtractConversions(t *testing.T) {
	assert.Equal(t, "18003569377", Extract("1-800-FLOWERS", true, false).NetworkPortion)
	assert.Equal(t, "1800", Extract("1-800-FLOWERS", false, false).NetworkPortion)
	assert.Equal(t, "18003569377", Extract("1-800-FLOWERS", true, false).Stripped)
	assert.Equal(t, "1800", Extract("1-800-FLOWERS", false, false).Stripped)
	assert.Equal(t, "77396530081", Extract("1-800-FLOWERS", true, false).StrippedReversed)

	res := Extract("6505551212p1234", false, true)
	assert.Equal(t, "6505551212", res.NetworkPortion)
	assert.Equal(t, ",1234", res.PostDialPortion)
}

func TestExtractURI(t *testing.T) {
	res := Extract("6505551212@sip.example.com", false, false)
	assert.True(t, res.URI)
	assert.Equal(t, "6505551212", res.Username)
}

func TestExtractCmd(t *testing.T) {
	var buf bytes.Buffer
	ExtractCmd.SetOut(&buf)
	ExtractCmd.SetArgs([]string{"911", "+44 20 7946 0018;123"})
	t.Cleanup(func() { ExtractCmd.SetArgs(nil) })

	require.NoError(t, ExtractCmd.Execute())

	var results []Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "911", results[0].NetworkPortion)
	assert.Equal(t, "+442079460018", results[1].NetworkPortion)
	assert.Equal(t, ";123", results[1].PostDialPortion)
}

package emergency

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endorses/telnum/internal/pkg/config"
)

func run(t *testing.T, args ...string) []Result {
	t.Helper()

	var buf bytes.Buffer
	EmergencyCmd.SetOut(&buf)
	EmergencyCmd.SetArgs(args)
	require.NoError(t, EmergencyCmd.Execute())

	var results []Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &results))
	return results
}

func TestEmergencyCmd(t *testing.T) {
	viper.Reset()
	config.SetDefaults(viper.GetViper())
	t.Cleanup(func() {
		viper.Reset()
		EmergencyCmd.SetArgs(nil)
		exact, noSIM, listFlag = false, false, ""
	})

	results := run(t, "911", "1125", "6505551212", "911@example.com")
	assert.Equal(t, []Result{
		{Number: "911", Emergency: true},
		{Number: "1125", Emergency: true},
		{Number: "6505551212", Emergency: false},
		{Number: "911@example.com", Emergency: false},
	}, results)

	results = run(t, "--exact", "1125")
	assert.False(t, results[0].Emergency)

	exact = false
	results = run(t, "--list", "999", "999")
	assert.True(t, results[0].Emergency)

	listFlag = ""
	results = run(t, "--no-sim", "110")
	assert.True(t, results[0].Emergency)

	noSIM = false
	viper.Set("country.network", "BR")
	results = run(t, "1125")
	assert.False(t, results[0].Emergency)
}

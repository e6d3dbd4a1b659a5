package plus

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endorses/telnum/internal/pkg/cmdutil"
	"github.com/endorses/telnum/internal/pkg/config"
	"github.com/endorses/telnum/internal/pkg/nanp"
	"github.com/endorses/telnum/internal/pkg/pluscode"
)

func TestRewrite(t *testing.T) {
	p := pluscode.New()
	bothNanp := Options{Current: nanp.FormatNANP, Home: nanp.FormatNANP}

	res := Rewrite(p, "+18475797000,+18475231753", bothNanp)
	assert.Equal(t, "18475797000,18475231753", res.Output)
	assert.True(t, res.Modified)
	assert.Equal(t, "nanp", res.Current)

	res = Rewrite(p, "18475797000", bothNanp)
	assert.False(t, res.Modified)

	res = Rewrite(p, "+18475797000", Options{SMS: true, NetworkCountry: "US", SIMCountry: "JP"})
	assert.Equal(t, "+18475797000", res.Output)
	assert.True(t, res.SMS)
}

func TestRewriteByCountry(t *testing.T) {
	p := pluscode.New()
	us := Options{
		Current:        nanp.FormatNANP,
		Home:           nanp.FormatNANP,
		ByCountry:      true,
		NetworkCountry: "US",
		SIMCountry:     "US",
	}

	tests := []struct {
		name string
		opts Options
		dial string
		want string
	}{
		{"nanp number", us, "+18475797000", "18475797000"},
		{"foreign number", us, "+447911123456", "011447911123456"},
		{"separators kept", us, "+1 847 579 7000", "+1 847 579 7000"},
		{"no countries", Options{ByCountry: true}, "+18475797000", "+18475797000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rewrite(p, tt.dial, tt.opts).Output)
		})
	}
}

func TestResolvePlan(t *testing.T) {
	f, err := resolvePlan("", "ca")
	require.NoError(t, err)
	assert.Equal(t, nanp.FormatNANP, f)

	f, err = resolvePlan("japan", "US")
	require.NoError(t, err)
	assert.Equal(t, nanp.FormatJapan, f)

	_, err = resolvePlan("mars", "US")
	assert.ErrorIs(t, err, cmdutil.ErrUsage)
}

func TestPlusCmd(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	config.SetDefaults(viper.GetViper())
	viper.Set("plus_code.nanp_idp", "001")

	var buf bytes.Buffer
	PlusCmd.SetOut(&buf)
	PlusCmd.SetArgs([]string{"--current", "nanp", "--home", "nanp", "+447911123456"})
	t.Cleanup(func() {
		PlusCmd.SetArgs(nil)
		currentPlan, homePlan = "", ""
	})

	require.NoError(t, PlusCmd.Execute())

	var results []Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "001447911123456", results[0].Output)
}

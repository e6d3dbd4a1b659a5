package cmdutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endorses/telnum/internal/pkg/bcd"
	"github.com/endorses/telnum/internal/pkg/config"
	"github.com/endorses/telnum/internal/pkg/intl"
)

func TestGetConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("country.sim", "US")
	viper.Set("watchlist", []string{"6505551212"})

	assert.Equal(t, "JP", GetStringConfig("country.sim", "JP"))
	assert.Equal(t, "US", GetStringConfig("country.sim", ""))
	assert.Equal(t, "", GetStringConfig("country.network", ""))

	assert.Equal(t, []string{"911"}, GetStringSliceConfig("watchlist", []string{"911"}))
	assert.Equal(t, []string{"6505551212"}, GetStringSliceConfig("watchlist", nil))
	assert.Empty(t, GetStringSliceConfig("missing", nil))
}

func TestLoadConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	config.SetDefaults(viper.GetViper())
	viper.Set("plus_code.operator_idp", "00")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "00", cfg.PlusCode.OperatorIDP)
	assert.Equal(t, "011", cfg.PlusCode.NanpIDP)
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"nil", nil, ExitSuccess},
		{"plain", errors.New("boom"), ExitGeneralError},
		{"config", fmt.Errorf("load: %w", config.ErrInvalidConfig), ExitConfigError},
		{"usage", Usagef("need %d args", 2), ExitValidationError},
		{"unparsable", fmt.Errorf("%w: x", intl.ErrUnparsable), ExitValidationError},
		{"bcd", bcd.ErrInvalidBCDChar, ExitValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, ExitCodeFor(tt.err))
		})
	}
}

func TestWriteError(t *testing.T) {
	var buf bytes.Buffer
	code := WriteError(&buf, Usagef("missing number"))
	assert.Equal(t, ExitValidationError, code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "INVALID_ARGUMENT", resp.Code)
	assert.Equal(t, "invalid arguments: missing number", resp.Error)
}

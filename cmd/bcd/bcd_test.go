package bcd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endorses/telnum/internal/pkg/bcd"
	"github.com/endorses/telnum/internal/pkg/cmdutil"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		length  bool
		network bool
		hex     string
		toa     string
	}{
		{"international", "+18005551234", false, false, "918100551532f4", "0x91"},
		{"with length", "+18005551234", true, false, "07918100551532f4", "0x91"},
		{"network portion", "+1 (800) 555-1234,,99", false, true, "918100551532f4", "0x91"},
		{"network portion with length", "911", true, true, "038119f1", "0x81"},
		{"nothing to encode", "+", false, false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Encode(tt.number, bcd.ExtendedEFADN, tt.length, tt.network)
			require.NoError(t, err)
			assert.Equal(t, tt.hex, res.Hex)
			assert.Equal(t, tt.toa, res.TOA)
		})
	}
}

func TestEncodeInvalid(t *testing.T) {
	_, err := Encode("650-555", bcd.ExtendedEFADN, false, false)
	assert.ErrorIs(t, err, bcd.ErrInvalidBCDChar)
	assert.Equal(t, cmdutil.ExitValidationError, cmdutil.ExitCodeFor(err))
}

func TestDecode(t *testing.T) {
	res, err := Decode("0x918100551532F4", bcd.ExtendedEFADN, false)
	require.NoError(t, err)
	assert.Equal(t, "+18005551234", res.Number)
	assert.Equal(t, "918100551532f4", res.Hex)

	res, err = Decode("19f1", bcd.ExtendedEFADN, true)
	require.NoError(t, err)
	assert.Equal(t, "911", res.Number)

	_, err = Decode("zz", bcd.ExtendedEFADN, false)
	assert.ErrorIs(t, err, cmdutil.ErrUsage)
}

func TestBcdCmd(t *testing.T) {
	var buf bytes.Buffer
	BcdCmd.SetOut(&buf)
	BcdCmd.SetArgs([]string{"encode", "--with-length", "911"})
	t.Cleanup(func() {
		BcdCmd.SetArgs(nil)
		withLength = false
	})

	require.NoError(t, BcdCmd.Execute())

	var res EncodeResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, "038119f1", res.Hex)
	assert.Equal(t, "0x81", res.TOA)
}

func TestBcdCmdBadExtended(t *testing.T) {
	BcdCmd.SetOut(&bytes.Buffer{})
	BcdCmd.SetErr(&bytes.Buffer{})
	BcdCmd.SetArgs([]string{"decode", "--extended", "mars", "19f1"})
	t.Cleanup(func() {
		BcdCmd.SetArgs(nil)
		extendedName = "ef_adn"
	})

	err := BcdCmd.Execute()
	assert.ErrorIs(t, err, cmdutil.ErrUsage)
}

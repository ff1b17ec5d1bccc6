package hexcmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Pavel7004/goHidCmd/pkg/domain"
)

func TestBuilderBuild(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "tokens across lines keep order",
			content: "FF 01\nA3\n",
			want:    "./hidtool write FF,01,A3",
		},
		{
			name:    "case is passed through",
			content: "ff FF fF\n",
			want:    "./hidtool write ff,FF,fF",
		},
		{
			name:    "empty file keeps the separating space",
			content: "",
			want:    "./hidtool write ",
		},
		{
			name:    "whitespace only",
			content: "\n \t\n",
			want:    "./hidtool write ",
		},
		{
			name:    "wide values",
			content: "DEADBEEF 1\n",
			want:    "./hidtool write DEADBEEF,1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(DefaultPrefix, 0, zerolog.Nop())

			got, err := b.Build(writeInput(t, tt.content))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestBuilderBuildIdempotent(t *testing.T) {
	path := writeInput(t, "01 02 03\n04\n")
	b := NewBuilder(DefaultPrefix, 0, zerolog.Nop())

	first, err := b.Build(path)
	require.NoError(t, err)
	second, err := b.Build(path)
	require.NoError(t, err)

	require.Equal(t, first, second)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "01 02 03\n04\n", string(content), "input must not be modified")
}

func TestBuilderBuildNonHex(t *testing.T) {
	b := NewBuilder(DefaultPrefix, 0, zerolog.Nop())

	got, err := b.Build(writeInput(t, "FF ZZ\n"))
	require.Empty(t, got)
	require.EqualError(t, err, "non-hex value encountered: ZZ")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, domain.Token{Text: "ZZ", Line: 1, Column: 4}, verr.Token)
}

func TestBuilderBuildLogsRejectedTokens(t *testing.T) {
	var logs bytes.Buffer
	b := NewBuilder(DefaultPrefix, 0, zerolog.New(&logs).Level(zerolog.DebugLevel))

	_, err := b.Build(writeInput(t, "GG 01\n02 HH\n"))
	require.ErrorIs(t, err, ErrNonHex)

	out := logs.String()
	require.Contains(t, out, `"token":"GG"`)
	require.Contains(t, out, `"token":"HH"`)
}

func TestBuilderBuildMissingFile(t *testing.T) {
	b := NewBuilder(DefaultPrefix, 0, zerolog.Nop())

	_, err := b.Build(filepath.Join(t.TempDir(), "nope.txt"))

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuilderBuildMaxBytes(t *testing.T) {
	path := writeInput(t, "01 02 03\n")

	_, err := NewBuilder(DefaultPrefix, 2, zerolog.Nop()).Build(path)
	require.ErrorIs(t, err, ErrTooManyBytes)

	got, err := NewBuilder(DefaultPrefix, 3, zerolog.Nop()).Build(path)
	require.NoError(t, err)
	require.Equal(t, "./hidtool write 01,02,03", got)
}

func TestBuilderBuildWarnsPastDeviceLimit(t *testing.T) {
	var logs bytes.Buffer
	b := NewBuilder(DefaultPrefix, 0, zerolog.New(&logs).Level(zerolog.WarnLevel))

	values := strings.TrimSpace(strings.Repeat("AA ", DeviceMaxBytes+1))
	got, err := b.Build(writeInput(t, values))
	require.NoError(t, err)
	require.Equal(t, DeviceMaxBytes+1, strings.Count(got, "AA"))
	require.Contains(t, logs.String(), "device_limit")
}

func TestFormatCustomPrefix(t *testing.T) {
	got := Format("hidtool write", domain.TokenList{{Text: "01"}, {Text: "02"}})
	require.Equal(t, "hidtool write 01,02", got)
}

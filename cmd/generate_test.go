package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// blake2b-512("abc") and its successor in the chain.
	abcBlock1Hex = "ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d17d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923"
	abcBlock2Hex = "66cb547665e462bbdd51d9b6ce1221116e9cfc6711c78d8798158349d12fa8ca513efb14bd84edf4e7cd3551355f14c1cf54dd203669b95675e52d72d3ec00d9"
)

// execute runs the CLI with the given stdin and args, resetting all
// flag state left behind by previous runs.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	genLength, genSeedFile, genHashName, genHex = 0, "", "", false
	digestSeedFile, digestHashName = "", ""
	cfgFile, debug = "", false
	for _, c := range []interface{ Flags() *pflag.FlagSet }{rootCmd, generateCmd, digestCmd} {
		c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}

	out := new(bytes.Buffer)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateKnownVector(t *testing.T) {
	out, err := execute(t, "abc", "generate", "-l", "100", "-x")
	require.NoError(t, err)
	assert.Equal(t, abcBlock1Hex+abcBlock2Hex[:72], out)
}

func TestGenerateZeroLength(t *testing.T) {
	out, err := execute(t, "abc", "generate", "-l", "0")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGenerateNegativeLength(t *testing.T) {
	out, err := execute(t, "abc", "generate", "--length=-5")
	assert.Error(t, err)
	assert.Empty(t, out, "no partial output on validation failure")
}

func TestGenerateFromSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.bin")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o600))

	out, err := execute(t, "ignored stdin", "generate", "-l", "64", "-x", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, abcBlock1Hex, out)
}

func TestGenerateSeedFileErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, "", "generate", "-l", "1", "-f", filepath.Join(dir, "missing.bin"))
		assert.ErrorContains(t, err, "not found")
	})

	t.Run("directory", func(t *testing.T) {
		_, err := execute(t, "", "generate", "-l", "1", "-f", dir)
		assert.ErrorContains(t, err, "directory")
	})
}

func TestGenerateUnknownHash(t *testing.T) {
	_, err := execute(t, "abc", "generate", "-l", "1", "--hash", "md5")
	assert.Error(t, err)
}

func TestGenerateHashFlagSelectsPrimitive(t *testing.T) {
	def, err := execute(t, "abc", "generate", "-l", "64", "-x")
	require.NoError(t, err)

	alt, err := execute(t, "abc", "generate", "-l", "64", "-x", "--hash", "blake3-512")
	require.NoError(t, err)

	assert.NotEqual(t, def, alt)
	assert.Len(t, alt, 128)
}

func TestGenerateConfigDefaultsApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("generator:\n  hash: blake3-512\n"), 0o600))

	fromCfg, err := execute(t, "abc", "--config", path, "generate", "-l", "64", "-x")
	require.NoError(t, err)

	fromFlag, err := execute(t, "abc", "generate", "-l", "64", "-x", "--hash", "blake3-512")
	require.NoError(t, err)

	assert.Equal(t, fromFlag, fromCfg)
	assert.NotEqual(t, abcBlock1Hex, fromCfg)
}

func TestDigestStdin(t *testing.T) {
	out, err := execute(t, "abc", "digest")
	require.NoError(t, err)
	assert.Equal(t, abcBlock1Hex+"\n", out)
}

func TestDigestMatchesFirstGeneratedBlock(t *testing.T) {
	digest, err := execute(t, "some seed", "digest")
	require.NoError(t, err)

	block, err := execute(t, "some seed", "generate", "-l", "64", "-x")
	require.NoError(t, err)

	assert.Equal(t, strings.TrimSuffix(digest, "\n"), block)
}

func TestVersionCommand(t *testing.T) {
	appVersion, appGitCommit, appBuildTime = "1.2.3", "deadbeef", "today"

	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "deadbeef")
}

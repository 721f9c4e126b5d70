package cmd

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// openSeedSource opens the seed file, or falls back to the command's
// stdin when no path is given. The returned name identifies the source
// in logs.
func openSeedSource(cmd *cobra.Command, path string) (io.ReadCloser, string, error) {
	if path == "" {
		return io.NopCloser(cmd.InOrStdin()), "stdin", nil
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, "", errors.Errorf("seed file not found: %s", path)
	}
	if err != nil {
		return nil, "", errors.Wrapf(err, "checking seed file %s", path)
	}
	if info.IsDir() {
		return nil, "", errors.Errorf("seed path is a directory, not a file: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "opening seed file %s", path)
	}
	return f, path, nil
}

// hexWriter hex-encodes everything written through it.
type hexWriter struct {
	w io.Writer
}

func (h hexWriter) Write(p []byte) (int, error) {
	enc := make([]byte, hex.EncodedLen(len(p)))
	hex.Encode(enc, p)
	if _, err := h.w.Write(enc); err != nil {
		return 0, err
	}
	return len(p), nil
}

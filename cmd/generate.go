package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rdgen-io/rdgen/pkg/chainstream"
	"github.com/rdgen-io/rdgen/pkg/hasher"
	"github.com/rdgen-io/rdgen/pkg/logtrace"
)

var (
	genLength   int64
	genSeedFile string
	genHashName string
	genHex      bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Expand a seed into exactly --length deterministic bytes",
	Long: `Generate reads a seed (stdin by default, or a file via --file), expands
it into a deterministic byte stream and writes exactly --length raw
bytes to stdout. Bytes are produced block by block, so memory use stays
constant no matter how much output is requested.

Example:
  echo -n "abc" | rdgen generate -l 100 | xxd -p -c 0`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadRuntime()
		if err != nil {
			return err
		}
		ctx := logtrace.CtxWithCorrelationID(context.Background(), "rdgen-generate")

		// Reject the length before any hashing or seed reading occurs.
		if genLength < 0 {
			return fmt.Errorf("length must be non-negative, got %d", genLength)
		}

		hashName := cfg.Generator.Hash
		if genHashName != "" {
			hashName = genHashName
		}
		primitive, err := hasher.Lookup(hashName)
		if err != nil {
			return err
		}

		seed, sourceName, err := openSeedSource(cmd, genSeedFile)
		if err != nil {
			return err
		}
		defer seed.Close()

		logtrace.Debug(ctx, "Generating stream", logtrace.Fields{
			logtrace.FieldHashName:   primitive.Name(),
			logtrace.FieldLength:     genLength,
			logtrace.FieldSeedSource: sourceName,
		})

		stream, err := chainstream.NewFromReader(primitive, seed)
		if err != nil {
			return err
		}

		out := bufio.NewWriterSize(cmd.OutOrStdout(), cfg.Generator.BufferSize)
		var sink io.Writer = out
		if genHex {
			sink = hexWriter{w: out}
		}

		buf := make([]byte, cfg.Generator.BufferSize)
		if _, err := io.CopyBuffer(sink, stream.Limit(genLength), buf); err != nil {
			return errors.Wrap(err, "writing output stream")
		}
		if err := out.Flush(); err != nil {
			return errors.Wrap(err, "flushing output stream")
		}

		return nil
	},
}

func init() {
	generateCmd.Flags().Int64VarP(&genLength, "length", "l", 0, "number of bytes to output")
	generateCmd.Flags().StringVarP(&genSeedFile, "file", "f", "", "seed file to read instead of stdin")
	generateCmd.Flags().StringVar(&genHashName, "hash", "", fmt.Sprintf("hash primitive %v (default from config)", hasher.Names()))
	generateCmd.Flags().BoolVarP(&genHex, "hex", "x", false, "hex-encode the output")
	_ = generateCmd.MarkFlagRequired("length")
}

package cmd

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rdgen-io/rdgen/pkg/hasher"
	"github.com/rdgen-io/rdgen/pkg/logtrace"
)

var (
	digestSeedFile string
	digestHashName string
)

// digestCmd represents the digest command
var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Print the hex digest of a seed source",
	Long: `Digest hashes the seed (stdin by default, or a file via --file) once
and prints the hex-encoded result. The digest is the first block of the
stream generate would produce for the same seed, so it identifies which
stream a seed anchors.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadRuntime()
		if err != nil {
			return err
		}
		ctx := logtrace.CtxWithCorrelationID(context.Background(), "rdgen-digest")

		hashName := cfg.Generator.Hash
		if digestHashName != "" {
			hashName = digestHashName
		}
		primitive, err := hasher.Lookup(hashName)
		if err != nil {
			return err
		}

		seed, sourceName, err := openSeedSource(cmd, digestSeedFile)
		if err != nil {
			return err
		}
		defer seed.Close()

		sum, err := hasher.SumReader(primitive, seed)
		if err != nil {
			return err
		}

		logtrace.Debug(ctx, "Computed seed digest", logtrace.Fields{
			logtrace.FieldHashName:   primitive.Name(),
			logtrace.FieldHashHex:    hex.EncodeToString(sum),
			logtrace.FieldSeedSource: sourceName,
		})

		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(sum))
		return nil
	},
}

func init() {
	digestCmd.Flags().StringVarP(&digestSeedFile, "file", "f", "", "seed file to read instead of stdin")
	digestCmd.Flags().StringVar(&digestHashName, "hash", "", fmt.Sprintf("hash primitive %v (default from config)", hasher.Names()))
}

package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/strrl/prefixed-api-key/pkg/pak"
)

func NewHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash <token>",
		Short: "Print the long token hash of an existing key",
		Long: `Print the long token hash of an existing key, for backfilling
stored hashes or inspecting what a service would persist.`,
		Args: cobra.ExactArgs(1),
		Run:  runHash,
	}

	cmd.Flags().String("digest", "sha256", "Hashing digest (sha224, sha256, sha384, sha512, sha512-224, sha512-256)")

	_ = viper.BindPFlag("hash.digest", cmd.Flags().Lookup("digest"))
	_ = viper.BindEnv("hash.digest", "PAK_DIGEST")

	return cmd
}

func runHash(cmd *cobra.Command, args []string) {
	key, err := pak.FromString(args[0])
	if err != nil {
		slog.Error("malformed key", "error", err)
		os.Exit(1)
	}

	digest, err := resolveDigest(viper.GetString("hash.digest"))
	if err != nil {
		slog.Error("invalid digest", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Hash:\t%s\n", key.LongTokenHash(digest))
}

package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/strrl/prefixed-api-key/pkg/pak"
)

func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <prefix>",
		Short: "Generate a new prefixed API key",
		Long: `Generate a new prefixed API key and the hash of its long token.

The key is shown once; the issuing service should persist the id, the
short token and the hash, never the key itself.`,
		Args: cobra.ExactArgs(1),
		Run:  runGenerate,
	}

	cmd.Flags().String("rng", "os", "Random source (os)")
	cmd.Flags().String("digest", "sha256", "Hashing digest (sha224, sha256, sha384, sha512, sha512-224, sha512-256)")
	cmd.Flags().Int("short-length", pak.DefaultShortTokenLength, "Length of the short token")
	cmd.Flags().String("short-prefix", "", "Literal prefix spliced into the short token")
	cmd.Flags().Int("long-length", pak.DefaultLongTokenLength, "Length of the secret long token")

	_ = viper.BindPFlag("generate.rng", cmd.Flags().Lookup("rng"))
	_ = viper.BindPFlag("generate.digest", cmd.Flags().Lookup("digest"))
	_ = viper.BindPFlag("generate.short_length", cmd.Flags().Lookup("short-length"))
	_ = viper.BindPFlag("generate.short_prefix", cmd.Flags().Lookup("short-prefix"))
	_ = viper.BindPFlag("generate.long_length", cmd.Flags().Lookup("long-length"))

	_ = viper.BindEnv("generate.rng", "PAK_RNG")
	_ = viper.BindEnv("generate.digest", "PAK_DIGEST")
	_ = viper.BindEnv("generate.short_length", "PAK_SHORT_LENGTH")
	_ = viper.BindEnv("generate.short_prefix", "PAK_SHORT_PREFIX")
	_ = viper.BindEnv("generate.long_length", "PAK_LONG_LENGTH")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) {
	rng, err := resolveRandomSource(viper.GetString("generate.rng"))
	if err != nil {
		slog.Error("invalid rng", "error", err)
		os.Exit(1)
	}

	digest, err := resolveDigest(viper.GetString("generate.digest"))
	if err != nil {
		slog.Error("invalid digest", "error", err)
		os.Exit(1)
	}

	controller, err := pak.NewControllerBuilder().
		Prefix(args[0]).
		RandomSource(rng).
		Digest(digest).
		ShortTokenLength(viper.GetInt("generate.short_length")).
		ShortTokenPrefix(viper.GetString("generate.short_prefix")).
		LongTokenLength(viper.GetInt("generate.long_length")).
		Finalize()
	if err != nil {
		slog.Error("invalid generator configuration", "error", err)
		os.Exit(1)
	}

	key, hash, err := controller.GenerateKeyAndHash()
	if err != nil {
		slog.Error("generate key", "error", err)
		os.Exit(1)
	}

	fmt.Printf("ID:\t%s\n", uuid.New().String())
	fmt.Printf("Key:\t%s\n", key.String())
	fmt.Printf("Masked:\t%s\n", key.Masked())
	fmt.Printf("Hash:\t%s\n", hash)
}

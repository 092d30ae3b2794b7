// Command geckos3 is the reference host binary for the geckos3
// framework: it wires the sigv4 verifier and server pipeline to the
// fsstore reference backend and serves them over HTTP/1.1 and h2c.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "geckos3",
		Short: "geckos3 is a server-side framework for the Amazon S3 HTTP API",
	}
	root.AddCommand(newServeCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("geckos3 %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built:  %s\n", date)
			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the geckos3 HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(v)
		},
	}

	flags := cmd.Flags()
	flags.String("data-dir", "./data", "Root directory for buckets")
	flags.String("listen", ":9000", "HTTP server address")
	flags.String("region", "us-east-1", "Region reported by GetBucketLocation/HeadBucket")
	flags.String("service-domain", "s3.amazonaws.com", "Host suffix recognized for virtual-hosted addressing")
	flags.String("access-key", "geckoadmin", "AWS access key accepted by SigV4")
	flags.String("secret-key", "geckoadmin", "AWS secret key bound to access-key")
	flags.Bool("fsync", false, "Fsync files and directories after writes (slower, stronger durability)")
	flags.Duration("multipart-gc-interval", time.Hour, "How often to sweep abandoned multipart uploads (0 disables)")
	flags.Duration("multipart-gc-max-age", 24*time.Hour, "Age after which an abandoned multipart upload is removed")
	flags.StringSlice("cors-allowed-origins", nil, "Origins allowed by CORS (default: reflect any origin)")
	flags.StringSlice("cors-allowed-methods", nil, "Methods advertised in Access-Control-Allow-Methods (default: GET, PUT, POST, DELETE, HEAD, OPTIONS)")
	flags.StringSlice("cors-allowed-headers", nil, "Headers advertised in Access-Control-Allow-Headers (default: the standard SigV4/S3 request headers)")

	v.BindPFlags(flags)
	v.SetEnvPrefix("GECKOS3")
	v.AutomaticEnv()

	return cmd
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

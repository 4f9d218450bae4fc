package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newDownloadCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download <bucket> <key> <destPath>",
		Short: "Download an object to a local path",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			bucket, key, destPath := args[0], args[1], args[2]
			if bucket == "" || key == "" || destPath == "" {
				return fmt.Errorf("bucket, key, and destination path must not be empty")
			}

			ctx := cmd.Context()
			client, err := g.newS3Client(ctx)
			if err != nil {
				return err
			}

			if _, err := client.Download(ctx, bucket, key, destPath); err != nil {
				return describeError(err, bucket, key)
			}

			abs, err := filepath.Abs(destPath)
			if err != nil {
				abs = destPath
			}
			fmt.Printf("Downloaded to: %s\n", abs)
			return nil
		},
	}

	return cmd
}

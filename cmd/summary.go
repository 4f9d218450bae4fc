package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tasnim.dev/s3kit/internal/utils"
)

func newSummaryCmd(g *globalOptions) *cobra.Command {
	var prefix string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary <bucket>",
		Short: "Show object count and total size for a bucket/prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bucket := args[0]
			if bucket == "" {
				return fmt.Errorf("bucket name must not be empty")
			}

			ctx := cmd.Context()
			client, err := g.newS3Client(ctx)
			if err != nil {
				return err
			}

			sum, err := client.Summarize(ctx, bucket, prefix)
			if err != nil {
				return describeError(err, bucket, prefix)
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				return enc.Encode(sum)
			}

			fmt.Printf("%d objects, %d bytes (%s)\n",
				sum.ObjectCount, sum.TotalBytes, utils.Size(sum.TotalBytes))
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "Only count keys starting with this prefix")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	awsclient "tasnim.dev/s3kit/internal/aws"
	awss3 "tasnim.dev/s3kit/internal/aws/s3"
	"tasnim.dev/s3kit/internal/utils"
)

func newBucketsCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buckets",
		Short: "List buckets with region and creation date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			awsCfg, err := g.loadAWSConfig(ctx)
			if err != nil {
				return err
			}

			client := awss3.NewFromConfig(awsCfg)
			buckets, err := client.ListBuckets(ctx)
			if err != nil {
				return err
			}

			if accountID := awsclient.GetAccountID(ctx, awsCfg); accountID != "" {
				fmt.Printf("Account: %s\n", accountID)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tREGION\tCREATED")
			for _, b := range buckets {
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					b.Name, b.Region, utils.TimeOrDash(b.CreatedAt, utils.DateOnly))
			}
			return w.Flush()
		},
	}

	return cmd
}

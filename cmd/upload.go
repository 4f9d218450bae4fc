package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	awss3 "tasnim.dev/s3kit/internal/aws/s3"
)

func newUploadCmd(g *globalOptions) *cobra.Command {
	var contentType string
	var sse string
	var acl string

	cmd := &cobra.Command{
		Use:   "upload <localPath> <bucket> <key>",
		Short: "Upload a local file to S3",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			localPath, bucket, key := args[0], args[1], args[2]
			if localPath == "" || bucket == "" || key == "" {
				return fmt.Errorf("local path, bucket, and key must not be empty")
			}

			ctx := cmd.Context()
			client, err := g.newS3Client(ctx)
			if err != nil {
				return err
			}

			opts := awss3.PutOptions{
				ContentType: contentType,
				SSE:         sse,
				ACL:         acl,
			}
			if err := client.Upload(ctx, localPath, bucket, key, opts); err != nil {
				return describeError(err, bucket, key)
			}

			fmt.Printf("Uploaded: s3://%s/%s\n", bucket, key)
			return nil
		},
	}

	cmd.Flags().StringVar(&contentType, "content-type", "", "Set Content-Type metadata")
	cmd.Flags().StringVar(&sse, "sse", "", "Server-side encryption (AES256 or aws:kms)")
	cmd.Flags().StringVar(&acl, "acl", "", "Object ACL (e.g., private, public-read)")

	return cmd
}

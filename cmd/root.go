package cmd

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/cobra"

	awsclient "tasnim.dev/s3kit/internal/aws"
	awss3 "tasnim.dev/s3kit/internal/aws/s3"
	"tasnim.dev/s3kit/internal/config"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	profile string
	region  string
}

// loadAWSConfig resolves profile/region (config file defaults, flags win)
// and loads the AWS config. Credential-chain resolution is the SDK's.
func (g *globalOptions) loadAWSConfig(ctx context.Context) (aws.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return aws.Config{}, fmt.Errorf("loading config: %w", err)
	}
	profile, region := cfg.Merge(g.profile, g.region)

	return awsclient.LoadConfig(ctx, profile, region)
}

func (g *globalOptions) newS3Client(ctx context.Context) (*awss3.Client, error) {
	awsCfg, err := g.loadAWSConfig(ctx)
	if err != nil {
		return nil, err
	}
	return awss3.NewFromConfig(awsCfg), nil
}

func NewRootCmd() *cobra.Command {
	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "s3kit",
		Short:         "Summarize, download, and upload S3 objects",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&g.profile, "profile", "p", "", "AWS profile to use")
	rootCmd.PersistentFlags().StringVarP(&g.region, "region", "r", "", "AWS region to use")

	rootCmd.AddCommand(newSummaryCmd(g))
	rootCmd.AddCommand(newBucketsCmd(g))
	rootCmd.AddCommand(newDownloadCmd(g))
	rootCmd.AddCommand(newUploadCmd(g))

	return rootCmd
}

// describeError maps SDK failures to messages naming the target.
func describeError(err error, bucket, key string) error {
	target := "s3://" + bucket
	if key != "" {
		target += "/" + key
	}
	switch {
	case awss3.IsNotFound(err):
		return fmt.Errorf("not found: %s: %w", target, err)
	case awss3.IsAccessDenied(err):
		return fmt.Errorf("access denied: %s: %w", target, err)
	default:
		return err
	}
}

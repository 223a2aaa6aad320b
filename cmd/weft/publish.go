package main

import (
	"fmt"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/weftml/weft/internal/config"
	"github.com/weftml/weft/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket string
		prefix string
		region string
	)

	cmd := &cobra.Command{
		Use:   "publish [dir]",
		Short: "Upload built documents to S3",
		Long: `Upload every file under dir to the configured S3 bucket, keyed by its
path relative to dir. Without a dir argument, the output directory from
weft.json is used.

Bucket, prefix, and region fall back to the publish section of
weft.json when the flags are not given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := config.Find(cwd)
			if err != nil {
				cfg = config.Default()
			}

			if bucket == "" {
				bucket = cfg.Publish.Bucket
			}
			if prefix == "" {
				prefix = cfg.Publish.Prefix
			}
			if region == "" {
				region = cfg.Publish.Region
			}

			dir := cfg.OutputDir()
			if len(args) == 1 {
				dir = args[0]
			}

			ctx := cmd.Context()
			var loadOpts []func(*awsconfig.LoadOptions) error
			if region != "" {
				loadOpts = append(loadOpts, awsconfig.WithRegion(region))
			}
			awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
			if err != nil {
				return err
			}

			publisher, err := publish.New(s3.NewFromConfig(awsCfg), bucket, prefix)
			if err != nil {
				return err
			}

			n, err := publisher.PublishDir(ctx, os.DirFS(dir))
			if err != nil {
				return err
			}
			fmt.Printf("published %d files from %s to s3://%s/%s\n", n, dir, bucket, prefix)
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Destination S3 bucket")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Object key prefix")
	cmd.Flags().StringVar(&region, "region", "", "AWS region")
	return cmd
}

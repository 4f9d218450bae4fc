package s3

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type S3API interface {
	ListBuckets(ctx context.Context, params *awss3.ListBucketsInput, optFns ...func(*awss3.Options)) (*awss3.ListBucketsOutput, error)
	GetBucketLocation(ctx context.Context, params *awss3.GetBucketLocationInput, optFns ...func(*awss3.Options)) (*awss3.GetBucketLocationOutput, error)
	ListObjectsV2(ctx context.Context, params *awss3.ListObjectsV2Input, optFns ...func(*awss3.Options)) (*awss3.ListObjectsV2Output, error)
	GetObject(ctx context.Context, params *awss3.GetObjectInput, optFns ...func(*awss3.Options)) (*awss3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
}

type Client struct {
	api S3API
}

func NewClient(api S3API) *Client {
	return &Client{api: api}
}

func NewFromConfig(cfg aws.Config) *Client {
	return NewClient(awss3.NewFromConfig(cfg))
}

func (c *Client) ListBuckets(ctx context.Context) ([]Bucket, error) {
	out, err := c.api.ListBuckets(ctx, &awss3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("ListBuckets: %w", err)
	}

	buckets := make([]Bucket, len(out.Buckets))

	// Resolve regions concurrently, bounded to 10 goroutines
	sem := make(chan struct{}, 10)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i, b := range out.Buckets {
		var createdAt time.Time
		if b.CreationDate != nil {
			createdAt = *b.CreationDate
		}
		buckets[i] = Bucket{
			Name:      aws.ToString(b.Name),
			CreatedAt: createdAt,
		}

		wg.Add(1)
		go func(idx int, name string) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return
			}
			defer func() { <-sem }()

			locOut, err := c.api.GetBucketLocation(ctx, &awss3.GetBucketLocationInput{
				Bucket: aws.String(name),
			})
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("GetBucketLocation(%s): %w", name, err)
				}
				mu.Unlock()
				return
			}

			region := string(locOut.LocationConstraint)
			if region == "" {
				region = "us-east-1"
			}

			mu.Lock()
			buckets[idx].Region = region
			mu.Unlock()
		}(i, aws.ToString(b.Name))
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return buckets, nil
}

// ListObjectPage fetches one listing page. No delimiter is set, so
// the page covers the whole key subtree under prefix. Pass the
// previous page's NextToken to continue; an empty NextToken on the
// result means the listing is exhausted.
func (c *Client) ListObjectPage(ctx context.Context, bucket, prefix, continuationToken string) (ObjectPage, error) {
	input := &awss3.ListObjectsV2Input{
		Bucket:  aws.String(bucket),
		MaxKeys: aws.Int32(1000),
	}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}
	if continuationToken != "" {
		input.ContinuationToken = aws.String(continuationToken)
	}

	out, err := c.api.ListObjectsV2(ctx, input)
	if err != nil {
		return ObjectPage{}, fmt.Errorf("ListObjectsV2: %w", err)
	}

	objects := make([]Object, 0, len(out.Contents))
	for _, obj := range out.Contents {
		var lastModified time.Time
		if obj.LastModified != nil {
			lastModified = *obj.LastModified
		}
		objects = append(objects, Object{
			Key:          aws.ToString(obj.Key),
			Size:         aws.ToInt64(obj.Size),
			LastModified: lastModified,
			StorageClass: string(obj.StorageClass),
		})
	}

	page := ObjectPage{Objects: objects}
	if out.IsTruncated != nil && *out.IsTruncated {
		page.NextToken = aws.ToString(out.NextContinuationToken)
	}

	return page, nil
}

// GetObjectStream returns the object body and its content length
// (-1 if unknown). The caller owns closing the reader.
func (c *Client) GetObjectStream(ctx context.Context, bucket, key string) (io.ReadCloser, int64, error) {
	out, err := c.api.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("GetObject(%s): %w", key, err)
	}

	size := int64(-1)
	if out.ContentLength != nil {
		size = *out.ContentLength
	}
	return out.Body, size, nil
}

func (c *Client) PutObject(ctx context.Context, bucket, key string, body io.Reader, opts PutOptions) error {
	input := &awss3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if opts.ContentType != "" {
		input.ContentType = aws.String(opts.ContentType)
	}
	if opts.SSE != "" {
		input.ServerSideEncryption = s3types.ServerSideEncryption(opts.SSE)
	}
	if opts.ACL != "" {
		input.ACL = s3types.ObjectCannedACL(opts.ACL)
	}

	if _, err := c.api.PutObject(ctx, input); err != nil {
		return fmt.Errorf("PutObject(%s): %w", key, err)
	}
	return nil
}

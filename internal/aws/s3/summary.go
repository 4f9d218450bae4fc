package s3

import "context"

// Summarize walks every listing page under bucket/prefix and totals
// object count and byte size. An empty prefix means the whole
// bucket. Pages are fetched sequentially since each continuation
// token depends on the prior page; the absent token is the sole
// termination condition. Any page error aborts the walk with no
// partial result.
func (c *Client) Summarize(ctx context.Context, bucket, prefix string) (Summary, error) {
	sum := Summary{Bucket: bucket, Prefix: prefix}

	token := ""
	for {
		page, err := c.ListObjectPage(ctx, bucket, prefix, token)
		if err != nil {
			return Summary{}, err
		}

		sum.ObjectCount += int64(len(page.Objects))
		for _, obj := range page.Objects {
			sum.TotalBytes += obj.Size
		}

		if page.NextToken == "" {
			return sum, nil
		}
		token = page.NextToken
	}
}

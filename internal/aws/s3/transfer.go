package s3

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Download fetches bucket/key and writes it to destPath, creating
// parent directories as needed. The object is fetched before the
// destination file is created, so a missing key never leaves an
// empty file behind; a failed copy removes the partial file.
// Returns the number of bytes written.
func (c *Client) Download(ctx context.Context, bucket, key, destPath string) (int64, error) {
	reader, _, err := c.GetObjectStream(ctx, bucket, key)
	if err != nil {
		return 0, err
	}
	defer reader.Close()

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return 0, fmt.Errorf("create directory: %w", err)
	}

	f, err := os.Create(destPath)
	if err != nil {
		return 0, fmt.Errorf("create file: %w", err)
	}

	var written int64
	buf := make([]byte, 32*1024)
	for {
		select {
		case <-ctx.Done():
			f.Close()
			os.Remove(destPath)
			return 0, ctx.Err()
		default:
		}

		n, readErr := reader.Read(buf)
		if n > 0 {
			if _, writeErr := f.Write(buf[:n]); writeErr != nil {
				f.Close()
				os.Remove(destPath)
				return 0, fmt.Errorf("write file: %w", writeErr)
			}
			written += int64(n)
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			f.Close()
			os.Remove(destPath)
			return 0, fmt.Errorf("read object: %w", readErr)
		}
	}

	if err := f.Close(); err != nil {
		os.Remove(destPath)
		return 0, fmt.Errorf("close file: %w", err)
	}
	return written, nil
}

// Upload puts the file at localPath to bucket/key as a single
// PutObject. Multipart handling for large objects is the SDK's
// concern, not performed here.
func (c *Client) Upload(ctx context.Context, localPath, bucket, key string, opts PutOptions) error {
	f, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return c.PutObject(ctx, bucket, key, f, opts)
}

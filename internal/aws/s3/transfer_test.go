package s3

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

func TestDownload_WritesFile(t *testing.T) {
	mock := &mockS3API{
		getObjectFunc: func(ctx context.Context, params *awss3.GetObjectInput, optFns ...func(*awss3.Options)) (*awss3.GetObjectOutput, error) {
			return &awss3.GetObjectOutput{
				Body:          io.NopCloser(strings.NewReader("hello world")),
				ContentLength: awssdk.Int64(11),
			}, nil
		},
	}

	dest := filepath.Join(t.TempDir(), "nested", "dir", "hello.txt")
	client := NewClient(mock)
	written, err := client.Download(context.Background(), "my-bucket", "hello.txt", dest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if written != 11 {
		t.Errorf("written = %d, want 11", written)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading destination: %v", err)
	}
	if string(data) != "hello world" {
		t.Errorf("content = %q, want %q", string(data), "hello world")
	}
}

func TestDownload_MissingKeyCreatesNoFile(t *testing.T) {
	mock := &mockS3API{
		getObjectFunc: func(ctx context.Context, params *awss3.GetObjectInput, optFns ...func(*awss3.Options)) (*awss3.GetObjectOutput, error) {
			return nil, &s3types.NoSuchKey{}
		},
	}

	dest := filepath.Join(t.TempDir(), "missing.txt")
	client := NewClient(mock)
	_, err := client.Download(context.Background(), "my-bucket", "missing.txt", dest)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsNotFound(err) {
		t.Errorf("expected NotFound classification, got: %v", err)
	}
	if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
		t.Errorf("destination file should not exist, stat err = %v", statErr)
	}
}

type failingReader struct {
	data string
	read bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if !r.read {
		r.read = true
		return copy(p, r.data), nil
	}
	return 0, fmt.Errorf("connection reset")
}

func (r *failingReader) Close() error { return nil }

func TestDownload_ReadErrorRemovesPartialFile(t *testing.T) {
	mock := &mockS3API{
		getObjectFunc: func(ctx context.Context, params *awss3.GetObjectInput, optFns ...func(*awss3.Options)) (*awss3.GetObjectOutput, error) {
			return &awss3.GetObjectOutput{
				Body: &failingReader{data: "partial data"},
			}, nil
		},
	}

	dest := filepath.Join(t.TempDir(), "partial.txt")
	client := NewClient(mock)
	_, err := client.Download(context.Background(), "my-bucket", "partial.txt", dest)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
		t.Errorf("partial file should have been removed, stat err = %v", statErr)
	}
}

func TestUpload_SendsFileContent(t *testing.T) {
	src := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(src, []byte(`{"ok":true}`), 0o644); err != nil {
		t.Fatalf("writing source file: %v", err)
	}

	mock := &mockS3API{
		putObjectFunc: func(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error) {
			if awssdk.ToString(params.Bucket) != "my-bucket" {
				t.Errorf("Bucket = %s, want my-bucket", awssdk.ToString(params.Bucket))
			}
			if awssdk.ToString(params.Key) != "data/input.json" {
				t.Errorf("Key = %s, want data/input.json", awssdk.ToString(params.Key))
			}
			if awssdk.ToString(params.ContentType) != "application/json" {
				t.Errorf("ContentType = %s, want application/json", awssdk.ToString(params.ContentType))
			}
			body, err := io.ReadAll(params.Body)
			if err != nil {
				t.Fatalf("unexpected body read error: %v", err)
			}
			if string(body) != `{"ok":true}` {
				t.Errorf("body = %q, want %q", string(body), `{"ok":true}`)
			}
			return &awss3.PutObjectOutput{}, nil
		},
	}

	client := NewClient(mock)
	err := client.Upload(context.Background(), src, "my-bucket", "data/input.json",
		PutOptions{ContentType: "application/json"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpload_MissingLocalFile(t *testing.T) {
	mock := &mockS3API{
		putObjectFunc: func(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error) {
			t.Fatal("PutObject should not be called when the local file is unreadable")
			return nil, nil
		},
	}

	client := NewClient(mock)
	err := client.Upload(context.Background(), filepath.Join(t.TempDir(), "nope.txt"),
		"my-bucket", "key", PutOptions{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "open file") {
		t.Errorf("error should mention the local open failure, got: %v", err)
	}
}

func TestUpload_PutRejected(t *testing.T) {
	src := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(src, []byte("data"), 0o644); err != nil {
		t.Fatalf("writing source file: %v", err)
	}

	mock := &mockS3API{
		putObjectFunc: func(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error) {
			return nil, fmt.Errorf("access denied")
		},
	}

	client := NewClient(mock)
	err := client.Upload(context.Background(), src, "my-bucket", "key", PutOptions{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "PutObject") {
		t.Errorf("error should wrap with PutObject context, got: %v", err)
	}
}

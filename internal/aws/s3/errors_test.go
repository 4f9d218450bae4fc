package s3

import (
	"fmt"
	"testing"

	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"typed NoSuchKey", &s3types.NoSuchKey{}, true},
		{"typed NoSuchBucket", &s3types.NoSuchBucket{}, true},
		{"wrapped NoSuchKey", fmt.Errorf("GetObject(k): %w", &s3types.NoSuchKey{}), true},
		{"generic NoSuchKey code", &smithy.GenericAPIError{Code: "NoSuchKey"}, true},
		{"generic NotFound code", &smithy.GenericAPIError{Code: "NotFound"}, true},
		{"access denied", &smithy.GenericAPIError{Code: "AccessDenied"}, false},
		{"plain error", fmt.Errorf("connection reset"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.want {
				t.Errorf("IsNotFound(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsAccessDenied(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"access denied", &smithy.GenericAPIError{Code: "AccessDenied"}, true},
		{"access denied exception", &smithy.GenericAPIError{Code: "AccessDeniedException"}, true},
		{"wrapped", fmt.Errorf("ListObjectsV2: %w", &smithy.GenericAPIError{Code: "AccessDenied"}), true},
		{"not found", &smithy.GenericAPIError{Code: "NoSuchKey"}, false},
		{"plain error", fmt.Errorf("connection reset"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAccessDenied(tt.err); got != tt.want {
				t.Errorf("IsAccessDenied(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

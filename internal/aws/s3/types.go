package s3

import "time"

type Bucket struct {
	Name      string
	Region    string
	CreatedAt time.Time
}

// Object is one listing record: a snapshot of the object's metadata
// at the moment the page was produced.
type Object struct {
	Key          string
	Size         int64
	LastModified time.Time
	StorageClass string
}

// ObjectPage is a single ListObjectsV2 result. NextToken is empty
// when the listing is exhausted.
type ObjectPage struct {
	Objects   []Object
	NextToken string
}

// Summary aggregates one bucket/prefix walk. TotalBytes is int64 so
// multi-petabyte buckets accumulate without overflow.
type Summary struct {
	Bucket      string `json:"-"`
	Prefix      string `json:"-"`
	ObjectCount int64  `json:"objectCount"`
	TotalBytes  int64  `json:"totalBytes"`
}

// PutOptions carries the optional PutObject metadata.
type PutOptions struct {
	ContentType string
	SSE         string
	ACL         string
}

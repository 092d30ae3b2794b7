package s3model

import (
	"encoding/xml"
	"io"
	"time"
)

// PutObjectInput's streaming body is read by the adapter, not buffered,
// per spec section 4.5 step 5: Body is a finite, non-restartable reader
// the handler consumes directly.
type PutObjectInput struct {
	CommonObjectFields
	Bucket             string
	Key                string
	ContentLength      int64
	ContentMD5         []byte
	IfMatch            string
	IfNoneMatch        string
	Body               io.Reader
}

type PutObjectOutput struct {
	ETag              string
	VersionID         *string
	ServerSideEncryption ServerSideEncryption
	SSEKMSKeyID       *string
	ChecksumSHA256    *string
	ChecksumCRC32     *string
	Expiration        *string
}

type GetObjectInput struct {
	Bucket                     string
	Key                        string
	VersionID                  string
	Range                      string
	IfMatch                    string
	IfNoneMatch                string
	IfModifiedSince            *time.Time
	IfUnmodifiedSince          *time.Time
	ResponseContentType        string
	ResponseContentDisposition string
	ResponseCacheControl       string
	SSECustomerAlgorithm       string
	SSECustomerKey             string
	SSECustomerKeyMD5          string
	PartNumber                 int
	RequestPayer               RequestPayer
	ExpectedBucketOwner        string
}

type GetObjectOutput struct {
	Body               io.ReadCloser
	ContentLength      int64
	ContentType        string
	ContentEncoding    string
	ContentDisposition string
	ContentLanguage    string
	CacheControl       string
	ETag               string
	LastModified       time.Time
	Expires            *time.Time
	VersionID          *string
	Metadata           Metadata
	StorageClass       StorageClass
	AcceptRanges       string
	ContentRange       string
	DeleteMarker       bool
	Restore            *string
}

type HeadObjectInput struct {
	Bucket               string
	Key                  string
	VersionID            string
	IfMatch              string
	IfNoneMatch          string
	IfModifiedSince      *time.Time
	IfUnmodifiedSince    *time.Time
	Range                string
	PartNumber           int
	SSECustomerAlgorithm string
	ExpectedBucketOwner  string
}

type HeadObjectOutput struct {
	ContentLength      int64
	ContentType        string
	ContentEncoding    string
	ContentDisposition string
	CacheControl       string
	ETag               string
	LastModified       time.Time
	Metadata           Metadata
	StorageClass       StorageClass
	VersionID          *string
	DeleteMarker       bool
}

type DeleteObjectInput struct {
	Bucket                    string
	Key                       string
	VersionID                 string
	MFA                       string
	RequestPayer              RequestPayer
	BypassGovernanceRetention bool
	ExpectedBucketOwner       string
}

type DeleteObjectOutput struct {
	DeleteMarker bool
	VersionID    *string
}

type ObjectIdentifier struct {
	Key       string `xml:"Key"`
	VersionID string `xml:"VersionId,omitempty"`
}

type DeleteObjectsInput struct {
	Bucket       string
	XMLName      xml.Name            `xml:"Delete"`
	Objects      []ObjectIdentifier  `xml:"Object"`
	Quiet        bool                `xml:"Quiet"`
	MFA          string
	RequestPayer RequestPayer
}

type DeletedObjectResult struct {
	Key                  string `xml:"Key"`
	VersionID            string `xml:"VersionId,omitempty"`
	DeleteMarker         bool   `xml:"DeleteMarker,omitempty"`
	DeleteMarkerVersionID string `xml:"DeleteMarkerVersionId,omitempty"`
}

type DeleteObjectsError struct {
	Key       string `xml:"Key"`
	VersionID string `xml:"VersionId,omitempty"`
	Code      string `xml:"Code"`
	Message   string `xml:"Message"`
}

type DeleteObjectsOutput struct {
	XMLName xml.Name              `xml:"DeleteResult"`
	Xmlns   string                `xml:"xmlns,attr"`
	Deleted []DeletedObjectResult `xml:"Deleted,omitempty"`
	Errors  []DeleteObjectsError  `xml:"Error,omitempty"`
}

type CopyObjectInput struct {
	CommonObjectFields
	CopySourceConditionals
	Bucket                 string
	Key                    string
	CopySourceBucket       string
	CopySourceKey          string
	CopySourceVersionID    string
	MetadataDirective      string // COPY | REPLACE
	TaggingDirective       string // COPY | REPLACE
}

type CopyObjectResult struct {
	XMLName      xml.Name `xml:"CopyObjectResult"`
	ETag         string   `xml:"ETag"`
	LastModified string   `xml:"LastModified"`
}

type CopyObjectOutput struct {
	Result            CopyObjectResult
	VersionID         *string
	CopySourceVersionID *string
}

type GetObjectAttributesInput struct {
	Bucket               string
	Key                  string
	VersionID            string
	MaxParts             int
	PartNumberMarker     string
	ObjectAttributes     []string // x-amz-object-attributes: comma list
	ExpectedBucketOwner  string
}

type ObjectPartAttribute struct {
	PartNumber int    `xml:"PartNumber"`
	Size       int64  `xml:"Size"`
	ChecksumSHA256 string `xml:"ChecksumSHA256,omitempty"`
}

type GetObjectAttributesOutput struct {
	XMLName       xml.Name              `xml:"GetObjectAttributesResult"`
	Xmlns         string                `xml:"xmlns,attr"`
	ETag          string                `xml:"ETag,omitempty"`
	Checksum      *ObjectChecksum       `xml:"Checksum,omitempty"`
	ObjectSize    int64                 `xml:"ObjectSize"`
	StorageClass  StorageClass          `xml:"StorageClass,omitempty"`
	Parts         *ObjectAttributeParts `xml:"ObjectParts,omitempty"`
	LastModified  time.Time             `xml:"-"`
	VersionID     *string               `xml:"-"`
}

type ObjectChecksum struct {
	ChecksumCRC32  string `xml:"ChecksumCRC32,omitempty"`
	ChecksumCRC32C string `xml:"ChecksumCRC32C,omitempty"`
	ChecksumSHA1   string `xml:"ChecksumSHA1,omitempty"`
	ChecksumSHA256 string `xml:"ChecksumSHA256,omitempty"`
}

type ObjectAttributeParts struct {
	TotalPartsCount      int                   `xml:"TotalPartsCount"`
	PartNumberMarker     string                `xml:"PartNumberMarker,omitempty"`
	NextPartNumberMarker string                `xml:"NextPartNumberMarker,omitempty"`
	MaxParts             int                   `xml:"MaxParts"`
	IsTruncated          bool                  `xml:"IsTruncated"`
	Parts                []ObjectPartAttribute `xml:"Part"`
}

type RestoreObjectInput struct {
	Bucket              string
	Key                 string
	VersionID           string
	Days                int
	Tier                string
	ExpectedBucketOwner string
}

type RestoreObjectOutput struct {
	RestoreOutputPath *string
}

type GetObjectTorrentInput struct {
	Bucket string
	Key    string
}

type GetObjectTorrentOutput struct {
	Body io.ReadCloser
}

// Package fsstore is a local-disk reference implementation of
// s3service.Service (SPEC_FULL section 1), adapted from the teacher's
// FilesystemStorage: good enough to run the conformance and SDK-interop
// suite, not a production storage engine. Hosts that need durability,
// replication, or versioning supply their own Service implementation.
package fsstore

import (
	"context"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/geckos3/geckos3/internal/s3errors"
	"github.com/geckos3/geckos3/internal/s3model"
	"github.com/geckos3/geckos3/internal/s3service"
)

// maxScanLimit bounds the number of objects a ListObjects walk collects,
// matching the teacher's FilesystemStorage guard against OOM on huge buckets.
const maxScanLimit = 100000

const (
	multipartStagingDir = ".geckos3-multipart"
	tmpStagingDir        = ".geckos3-tmp"
	lockStripes          = 256
)

// Store is a filesystem-backed s3service.Service. Zero value is not
// usable; build one with New. Embeds UnimplementedService so bucket
// subresources and object-lock/ACL operations this reference backend
// doesn't model return NotImplemented rather than failing to compile
// against the Service interface.
type Store struct {
	s3service.UnimplementedService

	dataDir     string
	region      string
	stripes     [lockStripes]sync.Mutex
	enableFsync bool
}

// New builds a Store rooted at dataDir. The directory must already exist.
func New(dataDir, region string) *Store {
	return &Store{dataDir: dataDir, region: region}
}

// SetFsync enables per-object fsync after writes, trading throughput for
// durability against an unclean shutdown — disabled by default, relying
// on the OS page cache and atomic rename, matching the teacher's default.
func (s *Store) SetFsync(enabled bool) { s.enableFsync = enabled }

func (s *Store) stripe(key string) *sync.Mutex {
	return &s.stripes[xxhash.Sum64String(key)%lockStripes]
}

func (s *Store) bucketPath(bucket string) string {
	return filepath.Join(s.dataDir, bucket)
}

func (s *Store) objectPath(bucket, key string) string {
	return filepath.Join(s.dataDir, bucket, filepath.FromSlash(key))
}

func (s *Store) metadataPath(bucket, key string) string {
	return s.objectPath(bucket, key) + ".metadata.json"
}

func (s *Store) multipartPath(bucket, uploadID string) string {
	return filepath.Join(s.bucketPath(bucket), multipartStagingDir, uploadID)
}

func (s *Store) validateBucket(bucket string) error {
	if bucket == "" {
		return s3errors.New(s3errors.InvalidBucketName, "bucket name must not be empty")
	}
	absData, err := filepath.Abs(s.dataDir)
	if err != nil {
		return err
	}
	absResolved, err := filepath.Abs(s.bucketPath(bucket))
	if err != nil {
		return err
	}
	if !strings.HasPrefix(absResolved, absData+string(filepath.Separator)) {
		return s3errors.New(s3errors.InvalidBucketName, "invalid bucket name")
	}
	return nil
}

func (s *Store) validateObject(bucket, key string) error {
	if err := s.validateBucket(bucket); err != nil {
		return err
	}
	if key == "" || strings.Contains(key, "\x00") {
		return s3errors.New(s3errors.InvalidArgument, "invalid key")
	}
	absBucket, err := filepath.Abs(s.bucketPath(bucket))
	if err != nil {
		return err
	}
	absResolved, err := filepath.Abs(s.objectPath(bucket, key))
	if err != nil {
		return err
	}
	if !strings.HasPrefix(absResolved, absBucket+string(filepath.Separator)) {
		return s3errors.New(s3errors.InvalidArgument, "invalid key")
	}
	return nil
}

func (s *Store) bucketExists(bucket string) bool {
	if err := s.validateBucket(bucket); err != nil {
		return false
	}
	info, err := os.Stat(s.bucketPath(bucket))
	return err == nil && info.IsDir()
}

type fileMetadata struct {
	Size               int64             `json:"size"`
	LastModified       time.Time         `json:"lastModified"`
	ETag               string            `json:"etag"`
	ContentType        string            `json:"contentType,omitempty"`
	ContentEncoding    string            `json:"contentEncoding,omitempty"`
	ContentDisposition string            `json:"contentDisposition,omitempty"`
	ContentLanguage    string            `json:"contentLanguage,omitempty"`
	CacheControl       string            `json:"cacheControl,omitempty"`
	CustomMetadata     map[string]string `json:"customMetadata,omitempty"`
	StorageClass       string            `json:"storageClass,omitempty"`
}

func (s *Store) saveMetadata(bucket, key string, m *fileMetadata) error {
	path := s.metadataPath(bucket, key)
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".metadata-tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, path)
}

func (s *Store) loadMetadata(bucket, key string) (*fileMetadata, error) {
	data, err := os.ReadFile(s.metadataPath(bucket, key))
	if err != nil {
		return nil, err
	}
	var m fileMetadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func pseudoETag(info os.FileInfo) string {
	data := fmt.Sprintf("%d-%d", info.Size(), info.ModTime().UnixNano())
	hash := md5.Sum([]byte(data))
	return fmt.Sprintf("%x", hash)
}

func syncParentDir(path string) {
	d, err := os.Open(filepath.Dir(path))
	if err != nil {
		return
	}
	d.Sync()
	d.Close()
}

// ListBuckets implements s3service.Service.
func (s *Store) ListBuckets(ctx context.Context, in *s3model.ListBucketsInput) (*s3model.ListBucketsOutput, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	out := &s3model.ListBucketsOutput{Xmlns: xmlns, Owner: s3model.Owner{ID: "geckos3", DisplayName: "geckos3"}}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out.Buckets = append(out.Buckets, s3model.BucketSummary{
			Name:         e.Name(),
			CreationDate: info.ModTime().UTC().Format(time.RFC3339),
		})
	}
	return out, nil
}

const xmlns = "http://s3.amazonaws.com/doc/2006-03-01/"

func (s *Store) CreateBucket(ctx context.Context, in *s3model.CreateBucketInput) (*s3model.CreateBucketOutput, error) {
	if err := s.validateBucket(in.Bucket); err != nil {
		return nil, err
	}
	if s.bucketExists(in.Bucket) {
		return nil, s3errors.New(s3errors.BucketAlreadyOwnedByYou, "bucket already exists")
	}
	if err := os.MkdirAll(s.bucketPath(in.Bucket), 0755); err != nil {
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	return &s3model.CreateBucketOutput{Location: "/" + in.Bucket}, nil
}

func (s *Store) DeleteBucket(ctx context.Context, in *s3model.DeleteBucketInput) (*s3model.DeleteBucketOutput, error) {
	if !s.bucketExists(in.Bucket) {
		return nil, s3errors.New(s3errors.NoSuchBucket, "The specified bucket does not exist.")
	}
	path := s.bucketPath(in.Bucket)
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	hidden := map[string]bool{multipartStagingDir: true, tmpStagingDir: true, ".DS_Store": true}
	for _, e := range entries {
		if !hidden[e.Name()] {
			return nil, s3errors.New(s3errors.BucketNotEmpty, "The bucket you tried to delete is not empty.")
		}
	}
	if err := os.RemoveAll(path); err != nil {
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	return &s3model.DeleteBucketOutput{}, nil
}

func (s *Store) HeadBucket(ctx context.Context, in *s3model.HeadBucketInput) (*s3model.HeadBucketOutput, error) {
	if !s.bucketExists(in.Bucket) {
		return nil, s3errors.New(s3errors.NoSuchBucket, "The specified bucket does not exist.")
	}
	return &s3model.HeadBucketOutput{BucketRegion: s.region}, nil
}

func (s *Store) listKeys(bucket, prefix string) ([]string, error) {
	bucketPath := s.bucketPath(bucket)
	var keys []string
	count := 0
	err := filepath.WalkDir(bucketPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && (d.Name() == multipartStagingDir || d.Name() == tmpStagingDir) {
			return filepath.SkipDir
		}
		if d.IsDir() || strings.HasSuffix(path, ".metadata.json") {
			return nil
		}
		rel, err := filepath.Rel(bucketPath, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if prefix != "" && !strings.HasPrefix(key, prefix) {
			return nil
		}
		count++
		if count > maxScanLimit {
			return s3errors.New(s3errors.InternalError, fmt.Sprintf("bucket exceeds scan limit of %d objects", maxScanLimit))
		}
		keys = append(keys, key)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Store) summarize(bucket string, keys []string) []s3model.ObjectSummary {
	out := make([]s3model.ObjectSummary, 0, len(keys))
	for _, key := range keys {
		info, err := os.Stat(s.objectPath(bucket, key))
		if err != nil {
			continue
		}
		etag := ""
		if meta, err := s.loadMetadata(bucket, key); err == nil {
			etag = meta.ETag
		}
		if etag == "" {
			etag = pseudoETag(info)
		}
		out = append(out, s3model.ObjectSummary{
			Key:          key,
			LastModified: info.ModTime().UTC().Format(time.RFC3339),
			ETag:         `"` + etag + `"`,
			Size:         info.Size(),
			StorageClass: string(s3model.StorageClassStandard),
		})
	}
	return out
}

func (s *Store) ListObjects(ctx context.Context, in *s3model.ListObjectsInput) (*s3model.ListObjectsOutput, error) {
	if !s.bucketExists(in.Bucket) {
		return nil, s3errors.New(s3errors.NoSuchBucket, "The specified bucket does not exist.")
	}
	keys, err := s.listKeys(in.Bucket, in.Prefix)
	if err != nil {
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	maxKeys := in.MaxKeys
	if maxKeys <= 0 {
		maxKeys = 1000
	}
	truncated := len(keys) > maxKeys
	if truncated {
		keys = keys[:maxKeys]
	}
	return &s3model.ListObjectsOutput{
		Xmlns:       xmlns,
		Name:        in.Bucket,
		Prefix:      in.Prefix,
		Delimiter:   in.Delimiter,
		Marker:      in.Marker,
		MaxKeys:     maxKeys,
		IsTruncated: truncated,
		Contents:    s.summarize(in.Bucket, keys),
	}, nil
}

func (s *Store) ListObjectsV2(ctx context.Context, in *s3model.ListObjectsInput) (*s3model.ListObjectsV2Output, error) {
	if !s.bucketExists(in.Bucket) {
		return nil, s3errors.New(s3errors.NoSuchBucket, "The specified bucket does not exist.")
	}
	keys, err := s.listKeys(in.Bucket, in.Prefix)
	if err != nil {
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	maxKeys := in.MaxKeys
	if maxKeys <= 0 {
		maxKeys = 1000
	}
	truncated := len(keys) > maxKeys
	if truncated {
		keys = keys[:maxKeys]
	}
	contents := s.summarize(in.Bucket, keys)
	return &s3model.ListObjectsV2Output{
		Xmlns:       xmlns,
		Name:        in.Bucket,
		Prefix:      in.Prefix,
		Delimiter:   in.Delimiter,
		MaxKeys:     maxKeys,
		IsTruncated: truncated,
		KeyCount:    len(contents),
		Contents:    contents,
		StartAfter:  in.StartAfter,
	}, nil
}

func (s *Store) GetBucketLocation(ctx context.Context, in *s3model.GetBucketLocationInput) (*s3model.GetBucketLocationOutput, error) {
	if !s.bucketExists(in.Bucket) {
		return nil, s3errors.New(s3errors.NoSuchBucket, "The specified bucket does not exist.")
	}
	return &s3model.GetBucketLocationOutput{Xmlns: xmlns, LocationConstraint: s.region}, nil
}

// PutObject streams the body to a staged temp file outside the per-key
// lock, verifies the optional SHA-256 digest, then atomically renames
// into place under the lock — ported from the teacher's PutObject.
func (s *Store) PutObject(ctx context.Context, in *s3model.PutObjectInput) (*s3model.PutObjectOutput, error) {
	if err := s.validateObject(in.Bucket, in.Key); err != nil {
		return nil, err
	}
	if !s.bucketExists(in.Bucket) {
		return nil, s3errors.New(s3errors.NoSuchBucket, "The specified bucket does not exist.")
	}
	stagingDir := filepath.Join(s.bucketPath(in.Bucket), tmpStagingDir)
	if err := os.MkdirAll(stagingDir, 0755); err != nil {
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	tempFile, err := os.CreateTemp(stagingDir, ".put-*")
	if err != nil {
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	tempPath := tempFile.Name()

	md5Hash := md5.New()
	writers := []io.Writer{tempFile, md5Hash}
	var sha256Hasher = sha256.New()
	if in.ChecksumSHA256 != "" {
		writers = append(writers, sha256Hasher)
	}
	size, err := io.Copy(io.MultiWriter(writers...), in.Body)
	if err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	if s.enableFsync {
		tempFile.Sync()
	}
	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	if in.ChecksumSHA256 != "" {
		if hex.EncodeToString(sha256Hasher.Sum(nil)) != in.ChecksumSHA256 {
			os.Remove(tempPath)
			return nil, s3errors.New(s3errors.BadDigest, "the Content-SHA256 you specified did not match what we received")
		}
	}

	objectPath := s.objectPath(in.Bucket, in.Key)
	mu := s.stripe(objectPath)
	mu.Lock()
	if err := os.MkdirAll(filepath.Dir(objectPath), 0755); err != nil {
		mu.Unlock()
		os.Remove(tempPath)
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	if err := os.Rename(tempPath, objectPath); err != nil {
		mu.Unlock()
		os.Remove(tempPath)
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	if s.enableFsync {
		syncParentDir(objectPath)
	}
	mu.Unlock()

	etag := hex.EncodeToString(md5Hash.Sum(nil))
	contentType := in.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	meta := &fileMetadata{
		Size: size, LastModified: time.Now().UTC(), ETag: etag,
		ContentType: contentType, ContentEncoding: in.ContentEncoding,
		ContentDisposition: in.ContentDisposition, CacheControl: in.CacheControl,
		CustomMetadata: map[string]string(in.Metadata),
	}
	s.saveMetadata(in.Bucket, in.Key, meta)

	return &s3model.PutObjectOutput{ETag: `"` + etag + `"`}, nil
}

func (s *Store) GetObject(ctx context.Context, in *s3model.GetObjectInput) (*s3model.GetObjectOutput, error) {
	if err := s.validateObject(in.Bucket, in.Key); err != nil {
		return nil, err
	}
	objectPath := s.objectPath(in.Bucket, in.Key)
	f, err := os.Open(objectPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, s3errors.New(s3errors.NoSuchKey, "The specified key does not exist.")
		}
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	meta, err := s.loadMetadata(in.Bucket, in.Key)
	if err != nil {
		meta = &fileMetadata{Size: info.Size(), LastModified: info.ModTime(), ETag: pseudoETag(info)}
	}
	if in.IfMatch != "" && strings.Trim(in.IfMatch, `"`) != meta.ETag {
		f.Close()
		return nil, s3errors.New(s3errors.PreconditionFailed, "At least one of the preconditions you specified did not hold.")
	}
	if in.IfNoneMatch != "" && strings.Trim(in.IfNoneMatch, `"`) == meta.ETag {
		f.Close()
		return nil, s3errors.New(s3errors.NotModified, "Not Modified")
	}
	return &s3model.GetObjectOutput{
		Body: f, ContentLength: meta.Size, ContentType: meta.ContentType,
		ContentEncoding: meta.ContentEncoding, ContentDisposition: meta.ContentDisposition,
		CacheControl: meta.CacheControl, ETag: `"` + meta.ETag + `"`,
		LastModified: meta.LastModified, Metadata: s3model.Metadata(meta.CustomMetadata),
		StorageClass: s3model.StorageClassStandard, AcceptRanges: "bytes",
	}, nil
}

func (s *Store) HeadObject(ctx context.Context, in *s3model.HeadObjectInput) (*s3model.HeadObjectOutput, error) {
	if err := s.validateObject(in.Bucket, in.Key); err != nil {
		return nil, err
	}
	info, err := os.Stat(s.objectPath(in.Bucket, in.Key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, s3errors.New(s3errors.NoSuchKey, "The specified key does not exist.")
		}
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	meta, err := s.loadMetadata(in.Bucket, in.Key)
	if err != nil {
		meta = &fileMetadata{Size: info.Size(), LastModified: info.ModTime(), ETag: pseudoETag(info)}
	}
	return &s3model.HeadObjectOutput{
		ContentLength: meta.Size, ContentType: meta.ContentType,
		ContentEncoding: meta.ContentEncoding, ContentDisposition: meta.ContentDisposition,
		CacheControl: meta.CacheControl, ETag: `"` + meta.ETag + `"`,
		LastModified: meta.LastModified, Metadata: s3model.Metadata(meta.CustomMetadata),
		StorageClass: s3model.StorageClassStandard,
	}, nil
}

func (s *Store) DeleteObject(ctx context.Context, in *s3model.DeleteObjectInput) (*s3model.DeleteObjectOutput, error) {
	if err := s.validateObject(in.Bucket, in.Key); err != nil {
		return nil, err
	}
	objectPath := s.objectPath(in.Bucket, in.Key)
	if err := os.Remove(objectPath); err != nil && !os.IsNotExist(err) {
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	os.Remove(s.metadataPath(in.Bucket, in.Key))

	bucketPath := s.bucketPath(in.Bucket)
	dir := filepath.Dir(objectPath)
	for dir != bucketPath && dir != "." {
		entries, err := os.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			break
		}
		os.Remove(dir)
		dir = filepath.Dir(dir)
	}
	return &s3model.DeleteObjectOutput{}, nil
}

// DeleteObjects implements the multi-object delete subresource; per-key
// failures are collected into the result rather than aborting the batch.
func (s *Store) DeleteObjects(ctx context.Context, in *s3model.DeleteObjectsInput) (*s3model.DeleteObjectsOutput, error) {
	out := &s3model.DeleteObjectsOutput{Xmlns: xmlns}
	for _, obj := range in.Objects {
		if _, err := s.DeleteObject(ctx, &s3model.DeleteObjectInput{Bucket: in.Bucket, Key: obj.Key}); err != nil {
			se := s3errors.Wrap(err)
			out.Errors = append(out.Errors, s3model.DeleteObjectsError{Key: obj.Key, Code: string(se.Code), Message: se.Message})
			continue
		}
		if !in.Quiet {
			out.Deleted = append(out.Deleted, s3model.DeletedObjectResult{Key: obj.Key})
		}
	}
	return out, nil
}

func (s *Store) CopyObject(ctx context.Context, in *s3model.CopyObjectInput) (*s3model.CopyObjectOutput, error) {
	if err := s.validateObject(in.CopySourceBucket, in.CopySourceKey); err != nil {
		return nil, err
	}
	if err := s.validateObject(in.Bucket, in.Key); err != nil {
		return nil, err
	}
	src, err := os.Open(s.objectPath(in.CopySourceBucket, in.CopySourceKey))
	if err != nil {
		return nil, s3errors.New(s3errors.NoSuchKey, "The specified key does not exist.")
	}
	defer src.Close()

	srcMeta, err := s.loadMetadata(in.CopySourceBucket, in.CopySourceKey)
	contentType := in.ContentType
	if in.MetadataDirective != "REPLACE" && err == nil {
		contentType = srcMeta.ContentType
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	putOut, err := s.PutObject(ctx, &s3model.PutObjectInput{
		Bucket: in.Bucket, Key: in.Key, Body: src,
		CommonObjectFields: s3model.CommonObjectFields{ContentType: contentType, Metadata: in.Metadata},
	})
	if err != nil {
		return nil, err
	}
	return &s3model.CopyObjectOutput{
		Result: s3model.CopyObjectResult{ETag: putOut.ETag, LastModified: time.Now().UTC().Format(time.RFC3339)},
	}, nil
}

func (s *Store) CreateMultipartUpload(ctx context.Context, in *s3model.CreateMultipartUploadInput) (*s3model.CreateMultipartUploadOutput, error) {
	if err := s.validateObject(in.Bucket, in.Key); err != nil {
		return nil, err
	}
	if !s.bucketExists(in.Bucket) {
		return nil, s3errors.New(s3errors.NoSuchBucket, "The specified bucket does not exist.")
	}
	uploadID := uuid.NewString()
	stagingDir := s.multipartPath(in.Bucket, uploadID)
	if err := os.MkdirAll(stagingDir, 0755); err != nil {
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	manifest := map[string]string{"key": in.Key, "contentType": in.ContentType}
	data, _ := json.Marshal(manifest)
	if err := os.WriteFile(filepath.Join(stagingDir, "manifest.json"), data, 0644); err != nil {
		os.RemoveAll(stagingDir)
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	return &s3model.CreateMultipartUploadOutput{Bucket: in.Bucket, Key: in.Key, UploadID: uploadID}, nil
}

func (s *Store) partPath(bucket, uploadID string, partNumber int) string {
	return filepath.Join(s.multipartPath(bucket, uploadID), fmt.Sprintf("part-%05d", partNumber))
}

func (s *Store) UploadPart(ctx context.Context, in *s3model.UploadPartInput) (*s3model.UploadPartOutput, error) {
	stagingDir := s.multipartPath(in.Bucket, in.UploadID)
	if _, err := os.Stat(stagingDir); os.IsNotExist(err) {
		return nil, s3errors.New(s3errors.NoSuchUpload, "The specified upload does not exist.")
	}
	tempFile, err := os.CreateTemp(stagingDir, ".part-tmp-*")
	if err != nil {
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	tempPath := tempFile.Name()

	md5Hash := md5.New()
	writers := []io.Writer{tempFile, md5Hash}
	sha256Hasher := sha256.New()
	if in.ChecksumSHA256 != "" {
		writers = append(writers, sha256Hasher)
	}
	if _, err := io.Copy(io.MultiWriter(writers...), in.Body); err != nil {
		tempFile.Close()
		os.Remove(tempPath)
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	if s.enableFsync {
		tempFile.Sync()
	}
	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	if in.ChecksumSHA256 != "" {
		if hex.EncodeToString(sha256Hasher.Sum(nil)) != in.ChecksumSHA256 {
			os.Remove(tempPath)
			return nil, s3errors.New(s3errors.BadDigest, "the Content-SHA256 you specified did not match what we received")
		}
	}
	partPath := s.partPath(in.Bucket, in.UploadID, in.PartNumber)
	if err := os.Rename(tempPath, partPath); err != nil {
		os.Remove(tempPath)
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	return &s3model.UploadPartOutput{ETag: `"` + hex.EncodeToString(md5Hash.Sum(nil)) + `"`}, nil
}

func (s *Store) UploadPartCopy(ctx context.Context, in *s3model.UploadPartCopyInput) (*s3model.UploadPartCopyOutput, error) {
	stagingDir := s.multipartPath(in.Bucket, in.UploadID)
	if _, err := os.Stat(stagingDir); os.IsNotExist(err) {
		return nil, s3errors.New(s3errors.NoSuchUpload, "The specified upload does not exist.")
	}
	src, err := os.Open(s.objectPath(in.CopySourceBucket, in.CopySourceKey))
	if err != nil {
		return nil, s3errors.New(s3errors.NoSuchKey, "The specified key does not exist.")
	}
	defer src.Close()

	out, err := s.UploadPart(ctx, &s3model.UploadPartInput{Bucket: in.Bucket, Key: in.Key, UploadID: in.UploadID, PartNumber: in.PartNumber, Body: src})
	if err != nil {
		return nil, err
	}
	return &s3model.UploadPartCopyOutput{Result: s3model.CopyPartResult{ETag: out.ETag, LastModified: time.Now().UTC().Format(time.RFC3339)}}, nil
}

func (s *Store) CompleteMultipartUpload(ctx context.Context, in *s3model.CompleteMultipartUploadInput) (*s3model.CompleteMultipartUploadOutput, error) {
	if err := s.validateObject(in.Bucket, in.Key); err != nil {
		return nil, err
	}
	stagingDir := s.multipartPath(in.Bucket, in.UploadID)
	if _, err := os.Stat(stagingDir); os.IsNotExist(err) {
		return nil, s3errors.New(s3errors.NoSuchUpload, "The specified upload does not exist.")
	}
	for i := 1; i < len(in.Parts); i++ {
		if in.Parts[i].PartNumber <= in.Parts[i-1].PartNumber {
			return nil, s3errors.New(s3errors.InvalidPartOrder, "The list of parts was not in ascending order.")
		}
	}

	objectPath := s.objectPath(in.Bucket, in.Key)
	tmpDir := filepath.Join(s.bucketPath(in.Bucket), tmpStagingDir)
	if err := os.MkdirAll(tmpDir, 0755); err != nil {
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	tempFile, err := os.CreateTemp(tmpDir, ".complete-*")
	if err != nil {
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	tempPath := tempFile.Name()

	hash := md5.New()
	mw := io.MultiWriter(tempFile, hash)
	var totalSize int64
	for _, part := range in.Parts {
		partPath := s.partPath(in.Bucket, in.UploadID, part.PartNumber)
		pf, err := os.Open(partPath)
		if err != nil {
			tempFile.Close()
			os.Remove(tempPath)
			return nil, s3errors.New(s3errors.InvalidPart, fmt.Sprintf("part %d not found", part.PartNumber))
		}
		n, err := io.Copy(mw, pf)
		pf.Close()
		if err != nil {
			tempFile.Close()
			os.Remove(tempPath)
			return nil, s3errors.New(s3errors.InternalError, err.Error())
		}
		totalSize += n
	}
	if s.enableFsync {
		tempFile.Sync()
	}
	if err := tempFile.Close(); err != nil {
		os.Remove(tempPath)
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}

	mu := s.stripe(objectPath)
	mu.Lock()
	if err := os.MkdirAll(filepath.Dir(objectPath), 0755); err != nil {
		mu.Unlock()
		os.Remove(tempPath)
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	if err := os.Rename(tempPath, objectPath); err != nil {
		mu.Unlock()
		os.Remove(tempPath)
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	if s.enableFsync {
		syncParentDir(objectPath)
	}
	mu.Unlock()

	etag := fmt.Sprintf("%s-%d", hex.EncodeToString(hash.Sum(nil)), len(in.Parts))

	contentType := "application/octet-stream"
	if manifestData, err := os.ReadFile(filepath.Join(stagingDir, "manifest.json")); err == nil {
		var manifest map[string]string
		if json.Unmarshal(manifestData, &manifest) == nil && manifest["contentType"] != "" {
			contentType = manifest["contentType"]
		}
	}
	s.saveMetadata(in.Bucket, in.Key, &fileMetadata{Size: totalSize, LastModified: time.Now().UTC(), ETag: etag, ContentType: contentType})
	os.RemoveAll(stagingDir)

	return &s3model.CompleteMultipartUploadOutput{Bucket: in.Bucket, Key: in.Key, ETag: `"` + etag + `"`}, nil
}

func (s *Store) AbortMultipartUpload(ctx context.Context, in *s3model.AbortMultipartUploadInput) (*s3model.AbortMultipartUploadOutput, error) {
	stagingDir := s.multipartPath(in.Bucket, in.UploadID)
	if _, err := os.Stat(stagingDir); os.IsNotExist(err) {
		return nil, s3errors.New(s3errors.NoSuchUpload, "The specified upload does not exist.")
	}
	if err := os.RemoveAll(stagingDir); err != nil {
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	return &s3model.AbortMultipartUploadOutput{}, nil
}

func (s *Store) ListMultipartUploads(ctx context.Context, in *s3model.ListMultipartUploadsInput) (*s3model.ListMultipartUploadsOutput, error) {
	root := filepath.Join(s.bucketPath(in.Bucket), multipartStagingDir)
	entries, err := os.ReadDir(root)
	out := &s3model.ListMultipartUploadsOutput{Xmlns: xmlns, Bucket: in.Bucket, Prefix: in.Prefix}
	if err != nil {
		return out, nil
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		manifestData, err := os.ReadFile(filepath.Join(root, e.Name(), "manifest.json"))
		if err != nil {
			continue
		}
		var manifest map[string]string
		if json.Unmarshal(manifestData, &manifest) != nil {
			continue
		}
		if in.Prefix != "" && !strings.HasPrefix(manifest["key"], in.Prefix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out.Uploads = append(out.Uploads, s3model.MultipartUploadSummary{
			Key: manifest["key"], UploadID: e.Name(),
			StorageClass: s3model.StorageClassStandard,
			Initiated:    info.ModTime().UTC().Format(time.RFC3339),
		})
	}
	return out, nil
}

func (s *Store) ListParts(ctx context.Context, in *s3model.ListPartsInput) (*s3model.ListPartsOutput, error) {
	stagingDir := s.multipartPath(in.Bucket, in.UploadID)
	if _, err := os.Stat(stagingDir); os.IsNotExist(err) {
		return nil, s3errors.New(s3errors.NoSuchUpload, "The specified upload does not exist.")
	}
	entries, err := os.ReadDir(stagingDir)
	if err != nil {
		return nil, s3errors.New(s3errors.InternalError, err.Error())
	}
	out := &s3model.ListPartsOutput{Xmlns: xmlns, Bucket: in.Bucket, Key: in.Key, UploadID: in.UploadID, StorageClass: s3model.StorageClassStandard}
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), "part-") {
			continue
		}
		var partNumber int
		fmt.Sscanf(e.Name(), "part-%05d", &partNumber)
		info, err := e.Info()
		if err != nil {
			continue
		}
		f, err := os.Open(filepath.Join(stagingDir, e.Name()))
		if err != nil {
			continue
		}
		h := md5.New()
		io.Copy(h, f)
		f.Close()
		out.Parts = append(out.Parts, s3model.PartSummary{
			PartNumber: partNumber, Size: info.Size(),
			LastModified: info.ModTime().UTC().Format(time.RFC3339),
			ETag:         `"` + hex.EncodeToString(h.Sum(nil)) + `"`,
		})
	}
	sort.Slice(out.Parts, func(i, j int) bool { return out.Parts[i].PartNumber < out.Parts[j].PartNumber })
	return out, nil
}

var _ s3service.Service = (*Store)(nil)

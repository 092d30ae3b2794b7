package s3path

import (
	"testing"

	"github.com/geckos3/geckos3/internal/s3errors"
)

func TestClassifyPathStyleRoot(t *testing.T) {
	c := New("s3.example.com")
	p, err := c.Classify("s3.example.com", "/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Kind != KindRoot {
		t.Fatalf("want KindRoot, got %v", p.Kind)
	}
}

func TestClassifyPathStyleBucket(t *testing.T) {
	c := New("s3.example.com")
	p, err := c.Classify("s3.example.com", "/mybucket")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Kind != KindBucket || p.Bucket != "mybucket" {
		t.Fatalf("got %+v", p)
	}
}

func TestClassifyPathStyleObject(t *testing.T) {
	c := New("s3.example.com")
	p, err := c.Classify("s3.example.com", "/mybucket/path/to/key.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Kind != KindObject || p.Bucket != "mybucket" || p.Key != "path/to/key.txt" {
		t.Fatalf("got %+v", p)
	}
}

func TestClassifyVirtualHostedBucket(t *testing.T) {
	c := New("s3.example.com")
	p, err := c.Classify("mybucket.s3.example.com", "/key.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Kind != KindObject || p.Bucket != "mybucket" || p.Key != "key.txt" {
		t.Fatalf("got %+v", p)
	}
}

func TestClassifyVirtualHostedBucketNoKey(t *testing.T) {
	c := New("s3.example.com")
	p, err := c.Classify("mybucket.s3.example.com", "/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Kind != KindBucket || p.Bucket != "mybucket" {
		t.Fatalf("got %+v", p)
	}
}

func TestClassifyRejectsInvalidBucketName(t *testing.T) {
	c := New("s3.example.com")
	if _, err := c.Classify("s3.example.com", "/A_Bad_Name"); err == nil {
		t.Fatal("expected an invalid bucket name to be rejected")
	}
}

func TestClassifyPreservesMultipleConsecutiveSlashesInKey(t *testing.T) {
	c := New("s3.example.com")
	p, err := c.Classify("s3.example.com", "/bucket//a//b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Key != "/a//b" {
		t.Fatalf("got key %q", p.Key)
	}
}

func TestClassifyPercentDecodesKey(t *testing.T) {
	c := New("s3.example.com")
	p, err := c.Classify("s3.example.com", "/bucket/a%20b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Key != "a b" {
		t.Fatalf("got key %q", p.Key)
	}
}

func TestClassifyRejectsInvalidPercentEncoding(t *testing.T) {
	c := New("s3.example.com")
	if _, err := c.Classify("s3.example.com", "/bucket/%zz"); err == nil {
		t.Fatal("expected invalid percent-encoding to be rejected")
	}
}

func TestClassifyRejectsInvalidUTF8AfterDecoding(t *testing.T) {
	c := New("s3.example.com")
	// %ff%fe is valid percent-encoding syntax but decodes to bytes that
	// are not valid UTF-8.
	_, err := c.Classify("s3.example.com", "/bucket/%ff%fe")
	if err == nil {
		t.Fatal("expected invalid UTF-8 in a decoded key to be rejected")
	}
	if err.(*s3errors.Error).Code != s3errors.InvalidURI {
		t.Fatalf("want InvalidURI, got %v", err)
	}
}

func TestClassifyRejectsObjectKeyTooLong(t *testing.T) {
	c := New("s3.example.com")
	longKey := make([]byte, 1025)
	for i := range longKey {
		longKey[i] = 'a'
	}
	if _, err := c.Classify("s3.example.com", "/bucket/"+string(longKey)); err == nil {
		t.Fatal("expected object key over 1024 bytes to be rejected")
	}
}

func TestIsValidBucketNameRules(t *testing.T) {
	valid := []string{"abc", "my-bucket", "my.bucket.name", "a1b2c3"}
	for _, name := range valid {
		if !IsValidBucketName(name) {
			t.Errorf("expected %q to be valid", name)
		}
	}

	invalid := []string{
		"ab",                  // too short
		"Bucket",              // uppercase
		"-bucket",             // leading hyphen
		"bucket-",             // trailing hyphen
		"bucket..name",        // adjacent dots
		".bucket",             // leading dot
		"192.168.1.1",         // IPv4 literal
		"bucket_name",         // underscore not allowed
	}
	for _, name := range invalid {
		if IsValidBucketName(name) {
			t.Errorf("expected %q to be invalid", name)
		}
	}
}

func TestVirtualHostedRequiresConfiguredServiceDomain(t *testing.T) {
	c := New("s3.example.com")
	p, err := c.Classify("mybucket.s3.other.com", "/key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Host doesn't match the configured suffix, so it falls back to
	// path-style parsing of the URL path alone, which makes "key" the
	// bucket and ignores the hostname label.
	if p.Kind == KindObject && p.Bucket == "mybucket" {
		t.Fatal("host not matching the configured service domain must not be treated as virtual-hosted")
	}
}

func TestClassifierWithNoServiceDomainNeverTreatsHostAsVirtualHosted(t *testing.T) {
	c := New("")
	p, err := c.Classify("mybucket.s3.example.com", "/key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Kind == KindObject && p.Bucket == "mybucket" {
		t.Fatal("an empty service domain must disable virtual-hosted classification")
	}
}

package sigv4

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const (
	testRegion  = "us-east-1"
	testService = "s3"
)

// signRequest builds a valid header-auth SigV4 request for accessKey,
// mirroring the derivation sigv4.Verify itself performs, so tests can
// assert Verify accepts a genuinely well-formed signature and rejects
// deviations from it.
func signRequest(accessKey, secretKey, method, path string) *http.Request {
	now := time.Now().UTC()
	dateStamp := now.Format("20060102")
	amzDate := now.Format(amzDateLayout)

	req := httptest.NewRequest(method, path, nil)
	req.Host = "localhost:9000"
	req.Header.Set("X-Amz-Date", amzDate)
	req.Header.Set("X-Amz-Content-Sha256", unsignedPayload)

	signedHeaders := "host;x-amz-content-sha256;x-amz-date"
	canonicalHeaders := fmt.Sprintf("host:%s\nx-amz-content-sha256:%s\nx-amz-date:%s\n",
		req.Host, unsignedPayload, amzDate)
	canonicalRequest := fmt.Sprintf("%s\n%s\n%s\n%s\n%s\n%s",
		method, canonicalURI(req.URL.Path), "", canonicalHeaders, signedHeaders, unsignedPayload)

	scope := credentialScope{accessKeyID: accessKey, dateStamp: dateStamp, region: testRegion, service: testService}
	stringToSign := buildStringToSign(amzDate, scope, canonicalRequest)
	signature := hex.EncodeToString(hmacSHA256(DeriveSigningKey(secretKey, dateStamp, testRegion, testService), []byte(stringToSign)))

	credential := fmt.Sprintf("%s/%s/%s/%s/aws4_request", accessKey, dateStamp, testRegion, testService)
	req.Header.Set("Authorization", fmt.Sprintf("AWS4-HMAC-SHA256 Credential=%s, SignedHeaders=%s, Signature=%s",
		credential, signedHeaders, signature))
	return req
}

func TestVerifyValidHeaderSignature(t *testing.T) {
	v := NewVerifier(SingleKey("testkey", "testsecret"))
	req := signRequest("testkey", "testsecret", "GET", "/mybucket")

	body, err := v.Verify(req)
	if err != nil {
		t.Fatalf("valid signature rejected: %v", err)
	}
	defer body.Reader.Close()
}

func TestVerifyWrongSecretKeyFails(t *testing.T) {
	v := NewVerifier(SingleKey("testkey", "realsecret"))
	req := signRequest("testkey", "wrongsecret", "GET", "/mybucket")

	if _, err := v.Verify(req); err == nil {
		t.Fatal("signature computed with the wrong secret should fail")
	}
}

func TestVerifyUnknownAccessKeyFails(t *testing.T) {
	v := NewVerifier(SingleKey("testkey", "testsecret"))
	req := signRequest("otherkey", "testsecret", "GET", "/mybucket")

	if _, err := v.Verify(req); err == nil {
		t.Fatal("unknown access key id should fail")
	}
}

func TestVerifyMissingAuthenticationFails(t *testing.T) {
	v := NewVerifier(SingleKey("testkey", "testsecret"))
	req := httptest.NewRequest("GET", "/mybucket", nil)

	_, err := v.Verify(req)
	if err == nil {
		t.Fatal("request with no Authorization header and no presigned params must fail")
	}
}

func TestVerifyTamperedPathFails(t *testing.T) {
	v := NewVerifier(SingleKey("testkey", "testsecret"))
	req := signRequest("testkey", "testsecret", "GET", "/mybucket")
	req.URL.Path = "/otherbucket"

	if _, err := v.Verify(req); err == nil {
		t.Fatal("signature should not validate against a different path")
	}
}

func TestVerifyClockSkewRejected(t *testing.T) {
	v := NewVerifier(SingleKey("testkey", "testsecret"))
	v.Now = func() time.Time { return time.Now().Add(1 * time.Hour) }
	req := signRequest("testkey", "testsecret", "GET", "/mybucket")

	if _, err := v.Verify(req); err == nil {
		t.Fatal("a request signed far outside the clock-skew window should fail")
	}
}

func TestVerifyBodyDigestMismatchDetectedOnClose(t *testing.T) {
	secretKey := "testsecret"
	now := time.Now().UTC()
	dateStamp := now.Format("20060102")
	amzDate := now.Format(amzDateLayout)
	body := "this is not what was signed for"
	wrongHash := hex.EncodeToString(sha256.New().Sum([]byte("something else entirely")))

	req := httptest.NewRequest("PUT", "/bucket/key", nil)
	req.Body = io.NopCloser(nopReaderFrom(body))
	req.Host = "localhost:9000"
	req.Header.Set("X-Amz-Date", amzDate)
	req.Header.Set("X-Amz-Content-Sha256", wrongHash)

	signedHeaders := "host;x-amz-content-sha256;x-amz-date"
	canonicalHeaders := fmt.Sprintf("host:%s\nx-amz-content-sha256:%s\nx-amz-date:%s\n", req.Host, wrongHash, amzDate)
	canonicalRequest := fmt.Sprintf("%s\n%s\n%s\n%s\n%s\n%s",
		"PUT", canonicalURI(req.URL.Path), "", canonicalHeaders, signedHeaders, wrongHash)
	scope := credentialScope{accessKeyID: "testkey", dateStamp: dateStamp, region: testRegion, service: testService}
	stringToSign := buildStringToSign(amzDate, scope, canonicalRequest)
	signature := hex.EncodeToString(hmacSHA256(DeriveSigningKey(secretKey, dateStamp, testRegion, testService), []byte(stringToSign)))
	credential := fmt.Sprintf("testkey/%s/%s/%s/aws4_request", dateStamp, testRegion, testService)
	req.Header.Set("Authorization", fmt.Sprintf("AWS4-HMAC-SHA256 Credential=%s, SignedHeaders=%s, Signature=%s", credential, signedHeaders, signature))

	v := NewVerifier(SingleKey("testkey", secretKey))
	verified, err := v.Verify(req)
	if err != nil {
		t.Fatalf("signature itself (over the claimed hash) should validate: %v", err)
	}
	if _, err := io.ReadAll(verified.Reader); err != nil {
		t.Fatalf("reading the body should not itself fail: %v", err)
	}
	if err := verified.Reader.Close(); err == nil {
		t.Fatal("Close should report the digest mismatch between x-amz-content-sha256 and the actual body")
	}
}

func nopReaderFrom(s string) io.Reader {
	return &stringReader{s: s}
}

type stringReader struct {
	s string
	i int
}

func (r *stringReader) Read(p []byte) (int, error) {
	if r.i >= len(r.s) {
		return 0, io.EOF
	}
	n := copy(p, r.s[r.i:])
	r.i += n
	return n, nil
}

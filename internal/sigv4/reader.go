package sigv4

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strconv"
	"strings"

	"github.com/geckos3/geckos3/internal/s3errors"
)

// passthroughBody is used for UNSIGNED-PAYLOAD requests: the client
// explicitly declined to commit to a body hash, so there is nothing to
// verify (spec section 4.6).
type passthroughBody struct {
	io.ReadCloser
}

// digestVerifyingReader hashes the body as it streams through and
// compares it against the digest the client claimed in
// x-amz-content-sha256, failing at Close (i.e. at EOF, the earliest
// point a mismatch can be known) rather than buffering the whole body
// up front.
type digestVerifyingReader struct {
	src          io.ReadCloser
	hash         interface{ Write([]byte) (int, error) }
	sum          func() [32]byte
	claimed      string
	mismatch     bool
	totalWritten int64
}

func newDigestVerifyingReader(src io.ReadCloser, claimedHex string) *digestVerifyingReader {
	h := sha256.New()
	return &digestVerifyingReader{
		src:     src,
		hash:    h,
		sum:     func() [32]byte { var out [32]byte; copy(out[:], h.Sum(nil)); return out },
		claimed: strings.ToLower(claimedHex),
	}
}

func (r *digestVerifyingReader) Read(p []byte) (int, error) {
	n, err := r.src.Read(p)
	if n > 0 {
		r.hash.Write(p[:n])
		r.totalWritten += int64(n)
	}
	return n, err
}

func (r *digestVerifyingReader) Close() error {
	closeErr := r.src.Close()
	sum := r.sum()
	actual := hex.EncodeToString(sum[:])
	if actual != r.claimed {
		return s3errors.New(s3errors.XAmzContentSHA256Mismatch,
			"The provided 'x-amz-content-sha256' header does not match what was computed.")
	}
	return closeErr
}

// chunkedVerifyingReader strips AWS chunked-transfer-encoded signed
// payload framing (spec section 4.6(3)) while verifying each chunk's
// signature, chained from the seed (header or presigned-URL) signature
// per the AWS streaming-signature algorithm. Unlike a strip-only
// reader, a signature mismatch on any chunk fails the read immediately
// instead of silently passing malformed data through.
type chunkedVerifyingReader struct {
	src   *bufio.Reader
	close io.Closer

	secretKey   string
	amzDate     string
	dateStamp   string
	region      string
	service     string
	priorSig    string

	pending []byte
	err     error
	done    bool
}

func newChunkedVerifyingReader(src io.ReadCloser, secretKey, amzDate, dateStamp, region, service, seedSignature string) *chunkedVerifyingReader {
	return &chunkedVerifyingReader{
		src:       bufio.NewReaderSize(src, 64*1024),
		close:     src,
		secretKey: secretKey,
		amzDate:   amzDate,
		dateStamp: dateStamp,
		region:    region,
		service:   service,
		priorSig:  seedSignature,
	}
}

func (r *chunkedVerifyingReader) Read(p []byte) (int, error) {
	for len(r.pending) == 0 {
		if r.done {
			return 0, io.EOF
		}
		if r.err != nil {
			return 0, r.err
		}
		if err := r.readChunk(); err != nil {
			r.err = err
			return 0, err
		}
	}
	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

func (r *chunkedVerifyingReader) Close() error {
	return r.close.Close()
}

// readChunk consumes one AWS chunked-signed frame:
//
//	<hex-size>;chunk-signature=<sig>\r\n
//	<raw bytes of hex-size length>\r\n
//
// terminated by a zero-size chunk.
func (r *chunkedVerifyingReader) readChunk() error {
	header, err := r.src.ReadString('\n')
	if err != nil {
		return s3errors.New(s3errors.InvalidRequest, "Malformed chunked payload: missing chunk header")
	}
	header = strings.TrimRight(header, "\r\n")
	sizeStr, sigPart, ok := strings.Cut(header, ";")
	if !ok {
		return s3errors.New(s3errors.InvalidRequest, "Malformed chunked payload: missing chunk signature")
	}
	size, err := strconv.ParseInt(sizeStr, 16, 64)
	if err != nil || size < 0 {
		return s3errors.New(s3errors.InvalidRequest, "Malformed chunked payload: invalid chunk size")
	}
	sig := strings.TrimPrefix(strings.TrimSpace(sigPart), "chunk-signature=")
	if sig == "" {
		return s3errors.New(s3errors.InvalidRequest, "Malformed chunked payload: invalid chunk signature field")
	}

	data := make([]byte, size)
	if size > 0 {
		if _, err := io.ReadFull(r.src, data); err != nil {
			return s3errors.New(s3errors.InvalidRequest, "Malformed chunked payload: truncated chunk body")
		}
	}
	trailer := make([]byte, 2)
	if _, err := io.ReadFull(r.src, trailer); err != nil || string(trailer) != "\r\n" {
		return s3errors.New(s3errors.InvalidRequest, "Malformed chunked payload: missing chunk trailer")
	}

	expected := r.chunkSignature(data)
	if sig != expected {
		return s3errors.New(s3errors.SignatureDoesNotMatch,
			"The request signature we calculated for a streaming chunk does not match the signature you provided.")
	}
	r.priorSig = sig

	if size == 0 {
		r.done = true
		return nil
	}
	r.pending = data
	return nil
}

// chunkSignature computes AWS4-HMAC-SHA256-PAYLOAD chaining: each
// chunk's string-to-sign embeds the previous chunk's signature,
// binding the whole stream into one signature chain.
func (r *chunkedVerifyingReader) chunkSignature(chunkData []byte) string {
	emptyHash := sha256Hex("")
	dataHash := sha256HexBytes(chunkData)
	stringToSign := strings.Join([]string{
		"AWS4-HMAC-SHA256-PAYLOAD",
		r.amzDate,
		r.dateStamp + "/" + r.region + "/" + r.service + "/aws4_request",
		r.priorSig,
		emptyHash,
		dataHash,
	}, "\n")
	signingKey := DeriveSigningKey(r.secretKey, r.dateStamp, r.region, r.service)
	return hex.EncodeToString(hmacSHA256(signingKey, []byte(stringToSign)))
}

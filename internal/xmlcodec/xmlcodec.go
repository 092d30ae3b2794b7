// Package xmlcodec implements the AWS XML dialect used by every S3
// request/response body: xsi:type and choice-group helpers, raw element
// capture, an encoder, and a bounded reader that buffers the body before
// decoding (spec section 4.3, component C4). Flattened and wrapped lists
// are expressed by encoding/xml struct tags on the s3model types.
package xmlcodec

import (
	"bytes"
	"encoding/xml"
	"io"

	"github.com/geckos3/geckos3/internal/s3errors"
)

// DefaultMaxBodyBytes is the default ceiling on a parsed XML request
// body, per spec section 4.3.
const DefaultMaxBodyBytes = 1 << 20 // 1 MiB

// ReadBounded reads at most maxBytes from r and unmarshals the result
// into v. A body exceeding the limit, or that fails to parse, surfaces
// as MalformedXML — the only error this framework raises for XML
// bodies, per spec section 4.5 step 4.
func ReadBounded(r io.Reader, maxBytes int64, v any) error {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	limited := io.LimitReader(r, maxBytes+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return s3errors.New(s3errors.MalformedXML, "failed to read XML body")
	}
	if int64(len(data)) > maxBytes {
		return s3errors.New(s3errors.MalformedXML, "XML body exceeds maximum size")
	}
	if len(data) == 0 {
		return s3errors.New(s3errors.MalformedXML, "empty XML body")
	}
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true
	if err := dec.Decode(v); err != nil {
		return s3errors.New(s3errors.MalformedXML, "The XML you provided was not well-formed or did not validate against our published schema")
	}
	return nil
}

// Encode marshals v and prepends the XML declaration, matching every
// S3 response body's wire shape.
func Encode(v any) ([]byte, error) {
	body, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(xml.Header)+len(body))
	out = append(out, []byte(xml.Header)...)
	out = append(out, body...)
	return out, nil
}

// RawElement captures a well-formed XML element verbatim, used for the
// generic bucket-configuration pass-through DTOs (SPEC_FULL section 4.3).
// It round-trips whatever bytes the client sent without the framework
// needing to model every field of every policy document.
type RawElement struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Inner   []byte     `xml:",innerxml"`
}

// Choice represents an XML choice group (spec section 3 and 4.3): the
// wire element name IS the discriminant, and exactly one must be
// present. Variant holds the matched element name; only one of the
// typed fields a caller defines alongside Variant should be populated.
type Choice struct {
	Variant string
}

// DecodeChoice inspects the raw inner XML of a parent element and
// returns the name of its single child element, which callers use to
// pick which variant-specific struct to unmarshal the same bytes into.
// Returns MissingField if there are no children, InvalidArgument if
// there is more than one (choice groups are exclusive).
func DecodeChoice(innerXML []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(innerXML))
	var found string
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", s3errors.New(s3errors.MalformedXML, "malformed choice element")
		}
		if se, ok := tok.(xml.StartElement); ok {
			if found != "" {
				return "", s3errors.New(s3errors.InvalidArgument, "choice element carries more than one child")
			}
			found = se.Name.Local
			if err := dec.Skip(); err != nil {
				return "", s3errors.New(s3errors.MalformedXML, "malformed choice element")
			}
		}
	}
	if found == "" {
		return "", s3errors.New(s3errors.MissingField, "choice element has no child")
	}
	return found, nil
}

// XSINamespace and the xsi:type attribute values used to discriminate
// Grantee variants (CanonicalUser, Group, AmazonCustomerByEmail), per
// spec section 4.3.
const (
	XSINamespace          = "http://www.w3.org/2001/XMLSchema-instance"
	GranteeCanonicalUser  = "CanonicalUser"
	GranteeGroup          = "Group"
	GranteeEmail          = "AmazonCustomerByEmail"
)

// XSITypeAttr returns the xsi:type attribute for a Grantee-like element.
func XSITypeAttr(kind string) xml.Attr {
	return xml.Attr{Name: xml.Name{Space: "xsi", Local: "type"}, Value: kind}
}

// ReadXSIType extracts the xsi:type attribute value from a StartElement.
func ReadXSIType(se xml.StartElement) (string, bool) {
	for _, a := range se.Attr {
		if a.Name.Local == "type" && (a.Name.Space == "xsi" || a.Name.Space == XSINamespace) {
			return a.Value, true
		}
	}
	return "", false
}

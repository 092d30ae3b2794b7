package xmlcodec

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/geckos3/geckos3/internal/s3errors"
)

func errCode(err error) s3errors.Code {
	if se, ok := err.(*s3errors.Error); ok {
		return se.Code
	}
	return ""
}

type sampleDoc struct {
	XMLName xml.Name `xml:"Sample"`
	Name    string   `xml:"Name"`
}

func TestReadBoundedDecodesValidBody(t *testing.T) {
	var v sampleDoc
	err := ReadBounded(strings.NewReader(`<Sample><Name>hi</Name></Sample>`), 0, &v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Name != "hi" {
		t.Fatalf("got Name=%q", v.Name)
	}
}

func TestReadBoundedRejectsOversizedBody(t *testing.T) {
	var v sampleDoc
	body := `<Sample><Name>` + strings.Repeat("x", 100) + `</Name></Sample>`
	err := ReadBounded(strings.NewReader(body), 10, &v)
	if errCode(err) != s3errors.MalformedXML {
		t.Fatalf("want MalformedXML for oversized body, got %v", err)
	}
}

func TestReadBoundedRejectsEmptyBody(t *testing.T) {
	var v sampleDoc
	if err := ReadBounded(strings.NewReader(""), 0, &v); errCode(err) != s3errors.MalformedXML {
		t.Fatalf("want MalformedXML for empty body, got %v", err)
	}
}

func TestReadBoundedRejectsMalformedBody(t *testing.T) {
	var v sampleDoc
	err := ReadBounded(strings.NewReader(`<Sample><Name>hi</Sample>`), 0, &v)
	if errCode(err) != s3errors.MalformedXML {
		t.Fatalf("want MalformedXML for malformed body, got %v", err)
	}
}

func TestEncodePrependsXMLHeader(t *testing.T) {
	out, err := Encode(sampleDoc{Name: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(string(out), xml.Header) {
		t.Fatalf("encoded body missing XML declaration: %q", out)
	}
	if !strings.Contains(string(out), "<Name>hi</Name>") {
		t.Fatalf("encoded body missing expected element: %q", out)
	}
}

func TestRawElementRoundTripsInnerXML(t *testing.T) {
	type wrapper struct {
		XMLName xml.Name  `xml:"Wrapper"`
		Config  RawElement `xml:"Config"`
	}
	var w wrapper
	err := ReadBounded(strings.NewReader(`<Wrapper><Config foo="bar"><Nested>v</Nested></Config></Wrapper>`), 0, &w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Config.XMLName.Local != "Config" {
		t.Fatalf("want XMLName Config, got %q", w.Config.XMLName.Local)
	}
	if !strings.Contains(string(w.Config.Inner), "<Nested>v</Nested>") {
		t.Fatalf("inner XML not preserved: %q", w.Config.Inner)
	}
}

func TestDecodeChoicePicksSingleChild(t *testing.T) {
	name, err := DecodeChoice([]byte(`<CanonicalUser><ID>abc</ID></CanonicalUser>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "CanonicalUser" {
		t.Fatalf("want CanonicalUser, got %q", name)
	}
}

func TestDecodeChoiceRejectsMultipleChildren(t *testing.T) {
	_, err := DecodeChoice([]byte(`<CanonicalUser/><Group/>`))
	if errCode(err) != s3errors.InvalidArgument {
		t.Fatalf("want InvalidArgument for multi-child choice, got %v", err)
	}
}

func TestDecodeChoiceRejectsEmpty(t *testing.T) {
	_, err := DecodeChoice([]byte(``))
	if errCode(err) != s3errors.MissingField {
		t.Fatalf("want MissingField for empty choice, got %v", err)
	}
}

func TestReadXSIType(t *testing.T) {
	se := xml.StartElement{
		Name: xml.Name{Local: "Grantee"},
		Attr: []xml.Attr{{Name: xml.Name{Space: "xsi", Local: "type"}, Value: GranteeCanonicalUser}},
	}
	kind, ok := ReadXSIType(se)
	if !ok || kind != GranteeCanonicalUser {
		t.Fatalf("want (%q, true), got (%q, %v)", GranteeCanonicalUser, kind, ok)
	}
}

package s3model

import (
	"encoding/xml"

	"github.com/geckos3/geckos3/internal/s3errors"
	"github.com/geckos3/geckos3/internal/xmlcodec"
)

// Grantee is the xsi:type discriminated choice group from spec section
// 4.3: exactly one of ID/URI is meaningful, picked by Type.
type Grantee struct {
	Type        string `xml:"-"`
	ID          string `xml:"ID,omitempty"`
	DisplayName string `xml:"DisplayName,omitempty"`
	URI         string `xml:"URI,omitempty"`
	EmailAddress string `xml:"EmailAddress,omitempty"`
}

// MarshalXML emits the xsi:type attribute alongside Grantee's fields,
// per the Grantee discrimination rule in spec section 4.3.
func (g Grantee) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = append(start.Attr, xmlcodec.XSITypeAttr(g.Type))
	type grantee Grantee // avoid recursive MarshalXML
	return e.EncodeElement(grantee(g), start)
}

// UnmarshalXML reads the xsi:type attribute to set Type, then decodes
// the remaining fields normally.
func (g *Grantee) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	if t, ok := xmlcodec.ReadXSIType(start); ok {
		g.Type = t
	}
	type grantee Grantee
	var tmp grantee
	if err := d.DecodeElement(&tmp, &start); err != nil {
		return err
	}
	typ := g.Type
	*g = Grantee(tmp)
	g.Type = typ
	return nil
}

type Grant struct {
	Grantee    Grantee `xml:"Grantee"`
	Permission string  `xml:"Permission"`
}

type AccessControlPolicy struct {
	XMLName xml.Name `xml:"AccessControlPolicy"`
	Xmlns   string   `xml:"xmlns,attr"`
	Owner   Owner    `xml:"Owner"`
	// Grants is a wrapped list: <AccessControlList><Grant/>...</AccessControlList>
	// (spec section 4.3 "wrapped list" rule) — distinct from flattened
	// lists like CORSRule, which have no wrapper element.
	Grants []Grant `xml:"AccessControlList>Grant"`
}

type GetBucketACLInput struct {
	Bucket              string
	ExpectedBucketOwner string
}

type GetBucketACLOutput = AccessControlPolicy

type PutBucketACLInput struct {
	Bucket              string
	ACL                 string
	GrantFullControl    string
	GrantRead           string
	GrantReadACP        string
	GrantWrite          string
	GrantWriteACP       string
	Policy              *AccessControlPolicy
	ExpectedBucketOwner string
}

type PutBucketACLOutput struct{}

// CORSRule is a flattened list member: <CORSRule>..</CORSRule> appears
// directly under CORSConfiguration with no wrapper (spec section 4.3).
type CORSRule struct {
	ID             string   `xml:"ID,omitempty"`
	AllowedOrigin  []string `xml:"AllowedOrigin"`
	AllowedMethod  []string `xml:"AllowedMethod"`
	AllowedHeader  []string `xml:"AllowedHeader,omitempty"`
	ExposeHeader   []string `xml:"ExposeHeader,omitempty"`
	MaxAgeSeconds  int      `xml:"MaxAgeSeconds,omitempty"`
}

type CORSConfiguration struct {
	XMLName xml.Name   `xml:"CORSConfiguration"`
	Xmlns   string     `xml:"xmlns,attr"`
	Rules   []CORSRule `xml:"CORSRule"`
}

type GetBucketCORSInput struct {
	Bucket              string
	ExpectedBucketOwner string
}

type GetBucketCORSOutput = CORSConfiguration

type PutBucketCORSInput struct {
	Bucket              string
	Configuration       CORSConfiguration
	ExpectedBucketOwner string
}

type PutBucketCORSOutput struct{}

type DeleteBucketCORSInput struct {
	Bucket              string
	ExpectedBucketOwner string
}

type DeleteBucketCORSOutput struct{}

// Tag is a flattened member of a wrapped TagSet — the wrapper is
// "TagSet", the member is "Tag", both different names (spec 4.3).
type Tag struct {
	Key   string `xml:"Key"`
	Value string `xml:"Value"`
}

type Tagging struct {
	XMLName xml.Name `xml:"Tagging"`
	Xmlns   string   `xml:"xmlns,attr"`
	TagSet  []Tag    `xml:"TagSet>Tag"`
}

type GetBucketTaggingInput struct {
	Bucket              string
	ExpectedBucketOwner string
}

type GetBucketTaggingOutput = Tagging

type PutBucketTaggingInput struct {
	Bucket              string
	Tagging             Tagging
	ExpectedBucketOwner string
}

type PutBucketTaggingOutput struct{}

type DeleteBucketTaggingInput struct {
	Bucket              string
	ExpectedBucketOwner string
}

type DeleteBucketTaggingOutput struct{}

type GetObjectTaggingInput struct {
	Bucket              string
	Key                 string
	VersionID           string
	ExpectedBucketOwner string
}

type GetObjectTaggingOutput struct {
	Tagging
	VersionID *string `xml:"-"`
}

type PutObjectTaggingInput struct {
	Bucket              string
	Key                 string
	VersionID           string
	Tagging             Tagging
	ExpectedBucketOwner string
}

type PutObjectTaggingOutput struct {
	VersionID *string
}

type DeleteObjectTaggingInput struct {
	Bucket              string
	Key                 string
	VersionID           string
	ExpectedBucketOwner string
}

type DeleteObjectTaggingOutput struct {
	VersionID *string
}

// VersioningConfiguration's Status/MfaDelete fields are each independently
// optional plain elements — not a choice group.
type VersioningConfiguration struct {
	XMLName   xml.Name `xml:"VersioningConfiguration"`
	Xmlns     string   `xml:"xmlns,attr"`
	Status    string   `xml:"Status,omitempty"`
	MFADelete string   `xml:"MfaDelete,omitempty"`
}

type GetBucketVersioningInput struct {
	Bucket              string
	ExpectedBucketOwner string
}

type GetBucketVersioningOutput = VersioningConfiguration

type PutBucketVersioningInput struct {
	Bucket              string
	Configuration       VersioningConfiguration
	MFA                 string
	ExpectedBucketOwner string
}

type PutBucketVersioningOutput struct{}

type ServerSideEncryptionByDefault struct {
	SSEAlgorithm   string `xml:"SSEAlgorithm"`
	KMSMasterKeyID string `xml:"KMSMasterKeyID,omitempty"`
}

type ServerSideEncryptionRule struct {
	ApplyServerSideEncryptionByDefault *ServerSideEncryptionByDefault `xml:"ApplyServerSideEncryptionByDefault,omitempty"`
	BucketKeyEnabled                  bool                           `xml:"BucketKeyEnabled,omitempty"`
}

type ServerSideEncryptionConfiguration struct {
	XMLName xml.Name                   `xml:"ServerSideEncryptionConfiguration"`
	Xmlns   string                     `xml:"xmlns,attr"`
	Rules   []ServerSideEncryptionRule `xml:"Rule"`
}

type GetBucketEncryptionInput struct {
	Bucket              string
	ExpectedBucketOwner string
}

type GetBucketEncryptionOutput = ServerSideEncryptionConfiguration

type PutBucketEncryptionInput struct {
	Bucket              string
	Configuration       ServerSideEncryptionConfiguration
	ExpectedBucketOwner string
}

type PutBucketEncryptionOutput struct{}

type DeleteBucketEncryptionInput struct {
	Bucket              string
	ExpectedBucketOwner string
}

type DeleteBucketEncryptionOutput struct{}

// LifecycleRuleFilter is the sum type from spec section 3/9: exactly
// one variant (And, ObjectSizeGreaterThan, ObjectSizeLessThan, Prefix,
// Tag) must be present on the wire. We model it as tagged variant
// fields rather than "optional of each" to preserve that exclusivity;
// its UnmarshalXML below asserts the invariant via xmlcodec.DecodeChoice,
// mirroring Grantee's xsi:type choice above.
type LifecycleRuleFilter struct {
	xmlcodec.Choice       `xml:"-"`
	And                   *LifecycleRuleAndOperator `xml:"And,omitempty"`
	ObjectSizeGreaterThan *int64                    `xml:"ObjectSizeGreaterThan,omitempty"`
	ObjectSizeLessThan    *int64                    `xml:"ObjectSizeLessThan,omitempty"`
	Prefix                *string                   `xml:"Prefix,omitempty"`
	Tag                   *Tag                      `xml:"Tag,omitempty"`
}

// UnmarshalXML reads the single child element present on the wire,
// via xmlcodec.DecodeChoice, then decodes the same bytes into the
// matching field; DecodeChoice itself rejects zero or multiple children.
func (f *LifecycleRuleFilter) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw xmlcodec.RawElement
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}
	variant, err := xmlcodec.DecodeChoice(raw.Inner)
	if err != nil {
		return err
	}
	type filterAlias LifecycleRuleFilter
	var tmp filterAlias
	wrapped := append(append([]byte("<"+start.Name.Local+">"), raw.Inner...), []byte("</"+start.Name.Local+">")...)
	if err := xml.Unmarshal(wrapped, &tmp); err != nil {
		return err
	}
	*f = LifecycleRuleFilter(tmp)
	f.Variant = variant
	return nil
}

// MarshalXML emits whichever single variant field is set, failing
// closed if callers populated zero or more than one (the same
// exclusivity UnmarshalXML enforces on the way in).
func (f LifecycleRuleFilter) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	set := 0
	for _, present := range []bool{f.And != nil, f.ObjectSizeGreaterThan != nil, f.ObjectSizeLessThan != nil, f.Prefix != nil, f.Tag != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return s3errors.New(s3errors.InvalidArgument, "LifecycleRuleFilter must set exactly one variant")
	}
	type filterAlias LifecycleRuleFilter
	return e.EncodeElement(filterAlias(f), start)
}

type LifecycleRuleAndOperator struct {
	Prefix                string `xml:"Prefix,omitempty"`
	Tags                  []Tag  `xml:"Tag,omitempty"`
	ObjectSizeGreaterThan *int64 `xml:"ObjectSizeGreaterThan,omitempty"`
	ObjectSizeLessThan    *int64 `xml:"ObjectSizeLessThan,omitempty"`
}

type LifecycleExpiration struct {
	Date                      string `xml:"Date,omitempty"`
	Days                      int    `xml:"Days,omitempty"`
	ExpiredObjectDeleteMarker bool   `xml:"ExpiredObjectDeleteMarker,omitempty"`
}

type LifecycleTransition struct {
	Date         string       `xml:"Date,omitempty"`
	Days         int          `xml:"Days,omitempty"`
	StorageClass StorageClass `xml:"StorageClass"`
}

type LifecycleRule struct {
	ID         string                `xml:"ID,omitempty"`
	Status     string                `xml:"Status"`
	Filter     *LifecycleRuleFilter  `xml:"Filter,omitempty"`
	Prefix     string                `xml:"Prefix,omitempty"`
	Expiration *LifecycleExpiration  `xml:"Expiration,omitempty"`
	Transitions []LifecycleTransition `xml:"Transition,omitempty"`
}

// LifecycleConfiguration's Rules are a flattened list: <Rule/>...<Rule/>
// with no wrapper (spec section 4.3), unlike Tagging's wrapped TagSet.
type LifecycleConfiguration struct {
	XMLName xml.Name        `xml:"LifecycleConfiguration"`
	Xmlns   string          `xml:"xmlns,attr"`
	Rules   []LifecycleRule `xml:"Rule"`
}

type GetBucketLifecycleInput struct {
	Bucket              string
	ExpectedBucketOwner string
}

type GetBucketLifecycleOutput = LifecycleConfiguration

type PutBucketLifecycleInput struct {
	Bucket              string
	Configuration       LifecycleConfiguration
	ExpectedBucketOwner string
}

type PutBucketLifecycleOutput struct{}

type DeleteBucketLifecycleInput struct {
	Bucket              string
	ExpectedBucketOwner string
}

type DeleteBucketLifecycleOutput struct{}

// RawBucketConfig is the generic pass-through envelope for every bucket
// subresource this framework routes but does not give bespoke policy
// semantics to (SPEC_FULL section 4.3): policy, website, replication,
// notification, accelerate, requestPayment, logging, ownershipControls,
// analytics, inventory, metrics, intelligent-tiering, object-lock,
// legal-hold, retention, publicAccessBlock. The framework validates
// well-formedness and round-trips the bytes; it does not interpret them.
type RawBucketConfig struct {
	Bucket              string
	ExpectedBucketOwner string
	Element             xmlcodec.RawElement
}

type RawBucketConfigOutput struct {
	Element xmlcodec.RawElement
}

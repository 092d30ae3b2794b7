package s3model

import (
	"encoding/xml"
	"testing"

	"github.com/geckos3/geckos3/internal/s3errors"
)

func errCode(err error) s3errors.Code {
	if se, ok := err.(*s3errors.Error); ok {
		return se.Code
	}
	return ""
}

func TestLifecycleRuleFilterDecodesSingleVariant(t *testing.T) {
	var rule LifecycleRule
	err := xml.Unmarshal([]byte(`<Rule><Status>Enabled</Status><Filter><Prefix>logs/</Prefix></Filter></Rule>`), &rule)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rule.Filter == nil || rule.Filter.Prefix == nil || *rule.Filter.Prefix != "logs/" {
		t.Fatalf("got %+v", rule.Filter)
	}
	if rule.Filter.Variant != "Prefix" {
		t.Fatalf("got Variant=%q", rule.Filter.Variant)
	}
	if rule.Filter.Tag != nil || rule.Filter.And != nil {
		t.Fatalf("other variant fields should remain nil: %+v", rule.Filter)
	}
}

func TestLifecycleRuleFilterRejectsMultipleVariants(t *testing.T) {
	var rule LifecycleRule
	err := xml.Unmarshal([]byte(`<Rule><Status>Enabled</Status><Filter><Prefix>logs/</Prefix><Tag><Key>k</Key><Value>v</Value></Tag></Filter></Rule>`), &rule)
	if err == nil {
		t.Fatal("expected a filter with two variants to be rejected")
	}
}

func TestLifecycleRuleFilterRejectsEmptyFilter(t *testing.T) {
	var rule LifecycleRule
	err := xml.Unmarshal([]byte(`<Rule><Status>Enabled</Status><Filter></Filter></Rule>`), &rule)
	if err == nil {
		t.Fatal("expected an empty filter to be rejected")
	}
}

func TestLifecycleRuleFilterMarshalRejectsZeroOrMultipleVariants(t *testing.T) {
	prefix := "logs/"
	tag := &Tag{Key: "k", Value: "v"}

	if _, err := xml.Marshal(LifecycleRuleFilter{}); errCode(err) != s3errors.InvalidArgument {
		t.Fatalf("want InvalidArgument for zero variants set, got %v", err)
	}
	if _, err := xml.Marshal(LifecycleRuleFilter{Prefix: &prefix, Tag: tag}); errCode(err) != s3errors.InvalidArgument {
		t.Fatalf("want InvalidArgument for two variants set, got %v", err)
	}
	if _, err := xml.Marshal(LifecycleRuleFilter{Prefix: &prefix}); err != nil {
		t.Fatalf("single variant should marshal cleanly: %v", err)
	}
}

package appcast

import (
	"encoding/xml"
	"testing"
)

func TestParseSignatureAttrs(t *testing.T) {
	line := `sparkle:edSignature="bG9yZW0gaXBzdW0=" length="12345"`

	attrs := ParseSignatureAttrs(line)

	if len(attrs) != 2 {
		t.Fatalf("Expected 2 attributes, got %d", len(attrs))
	}

	if attrs[0].Name.Space != SparkleNS {
		t.Errorf("Expected sparkle namespace URI, got '%s'", attrs[0].Name.Space)
	}
	if attrs[0].Name.Local != "edSignature" {
		t.Errorf("Expected local name 'edSignature', got '%s'", attrs[0].Name.Local)
	}
	if attrs[0].Value != "bG9yZW0gaXBzdW0=" {
		t.Errorf("Expected unquoted signature value, got '%s'", attrs[0].Value)
	}

	if attrs[1].Name.Space != "" {
		t.Errorf("Expected empty namespace for 'length', got '%s'", attrs[1].Name.Space)
	}
	if attrs[1].Name.Local != "length" {
		t.Errorf("Expected local name 'length', got '%s'", attrs[1].Name.Local)
	}
	if attrs[1].Value != "12345" {
		t.Errorf("Expected value '12345', got '%s'", attrs[1].Value)
	}
}

func TestParseSignatureAttrs_TokensWithoutEquals(t *testing.T) {
	attrs := ParseSignatureAttrs(`garbage sparkle:edSignature="abc" noise length="1"`)

	if len(attrs) != 2 {
		t.Fatalf("Expected tokens without '=' to be ignored, got %d attributes", len(attrs))
	}
}

func TestParseSignatureAttrs_UnquotedValues(t *testing.T) {
	attrs := ParseSignatureAttrs(`length=42`)

	if len(attrs) != 1 {
		t.Fatalf("Expected 1 attribute, got %d", len(attrs))
	}
	if attrs[0].Value != "42" {
		t.Errorf("Expected value '42', got '%s'", attrs[0].Value)
	}
}

func TestParseSignatureAttrs_UnknownPrefix(t *testing.T) {
	attrs := ParseSignatureAttrs(`custom:field="v"`)

	if len(attrs) != 1 {
		t.Fatalf("Expected 1 attribute, got %d", len(attrs))
	}
	if attrs[0].Name.Space != "" {
		t.Errorf("Unknown prefix should not resolve to a namespace, got '%s'", attrs[0].Name.Space)
	}
	if attrs[0].Name.Local != "custom:field" {
		t.Errorf("Unknown prefix should pass through verbatim, got '%s'", attrs[0].Name.Local)
	}
}

func TestParseSignatureAttrs_DuplicateKeyKeepsPositionTakesLastValue(t *testing.T) {
	attrs := ParseSignatureAttrs(`length="1" sparkle:edSignature="sig" length="2"`)

	if len(attrs) != 2 {
		t.Fatalf("Expected 2 attributes, got %d", len(attrs))
	}
	if attrs[0].Name.Local != "length" || attrs[0].Value != "2" {
		t.Errorf("Duplicate key should keep first position with last value, got %s=%s",
			attrs[0].Name.Local, attrs[0].Value)
	}
}

func TestParseSignatureAttrs_EmptyLine(t *testing.T) {
	if attrs := ParseSignatureAttrs("   \n"); len(attrs) != 0 {
		t.Errorf("Expected no attributes for blank input, got %d", len(attrs))
	}
}

func TestParseSignatureAttrs_OrderPreserved(t *testing.T) {
	attrs := ParseSignatureAttrs(`c="3" a="1" b="2"`)

	expected := []xml.Name{{Local: "c"}, {Local: "a"}, {Local: "b"}}
	for i, name := range expected {
		if attrs[i].Name != name {
			t.Errorf("Expected attribute %d to be '%s', got '%s'", i, name.Local, attrs[i].Name.Local)
		}
	}
}

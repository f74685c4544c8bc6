package doctree

import (
	"errors"
	"testing"
)

const sampleXML = `<?xml version="1.0"?>
<MRData>
  <DriverTable season="2024">
    <Driver driverId="albon" code="ALB" url="http://en.wikipedia.org/wiki/Alexander_Albon">
      <PermanentNumber>23</PermanentNumber>
      <GivenName>Alexander</GivenName>
      <FamilyName>Albon</FamilyName>
      <Nationality>Thai</Nationality>
    </Driver>
    <Driver driverId="alonso" code="ALO">
      <GivenName>Fernando</GivenName>
      <FamilyName>Alonso</FamilyName>
    </Driver>
  </DriverTable>
</MRData>`

func TestParseXMLTree(t *testing.T) {
	doc, err := Parse([]byte(sampleXML))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	drivers := doc.ElementsByTag("Driver")
	if len(drivers) != 2 {
		t.Fatalf("expected 2 Driver elements, got %d", len(drivers))
	}
	if got := drivers[0].Attr("driverId"); got != "albon" {
		t.Fatalf("expected driverId albon, got %q", got)
	}
	if got := drivers[0].ChildText("Nationality"); got != "Thai" {
		t.Fatalf("expected Nationality Thai, got %q", got)
	}
	if got := drivers[1].ChildTextOr("PermanentNumber", "N/A"); got != "N/A" {
		t.Fatalf("expected fallback for missing PermanentNumber, got %q", got)
	}
	if got := drivers[1].AttrOr("url", "N/A"); got != "N/A" {
		t.Fatalf("expected fallback for missing url attr, got %q", got)
	}
}

func TestParseJSONTree(t *testing.T) {
	payload := []byte(`{
	  "MRData": {
	    "RaceTable": {
	      "season": "2024",
	      "Races": [
	        {"raceName": "Bahrain Grand Prix", "round": "1"},
	        {"raceName": "Saudi Arabian Grand Prix", "round": "2"}
	      ]
	    }
	  }
	}`)

	doc, err := Parse(payload)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	races := doc.ElementsByTag("Race")
	if len(races) != 2 {
		t.Fatalf("expected 2 Race elements from JSON array, got %d", len(races))
	}
	if got := races[0].ChildText("raceName"); got != "Bahrain Grand Prix" {
		t.Fatalf("unexpected raceName %q", got)
	}
	// Scalars double as attributes so extractors can read either form.
	if got := races[1].Attr("round"); got != "2" {
		t.Fatalf("expected round attr 2, got %q", got)
	}
	if got := doc.FirstByTag("RaceTable").Attr("season"); got != "2024" {
		t.Fatalf("expected season attr 2024, got %q", got)
	}
}

func TestChildStopsAtDirectChildren(t *testing.T) {
	doc, err := Parse([]byte(`<Result><Inner><Time>nested</Time></Inner><Time>direct</Time></Result>`))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if got := doc.Child("Time").Text(); got != "direct" {
		t.Fatalf("expected direct child text, got %q", got)
	}
	if doc.Child("Missing") != nil {
		t.Fatal("expected nil for a missing direct child")
	}
	var n *Node
	if n.Child("Time") != nil {
		t.Fatal("expected nil from nil node")
	}
}

func TestParseEmptyDocument(t *testing.T) {
	if _, err := Parse([]byte("   ")); !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestParseMalformedInputs(t *testing.T) {
	if _, err := Parse([]byte("<open><unclosed>")); err == nil {
		t.Fatalf("expected error for truncated markup")
	}
	if _, err := Parse([]byte("{not json")); err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
}

func TestNilNodeAccessorsAreSafe(t *testing.T) {
	var n *Node
	if n.Attr("x") != "" || n.Text() != "" || n.ChildText("x") != "" {
		t.Fatalf("expected zero values from nil node accessors")
	}
	if n.FirstByTag("x") != nil || len(n.ElementsByTag("x")) != 0 {
		t.Fatalf("expected no elements from nil node")
	}
	if got := n.ChildTextOr("x", "N/A"); got != "N/A" {
		t.Fatalf("expected fallback from nil node, got %q", got)
	}
}

package icons

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestCatalogMarkdownIncludesEveryIcon(t *testing.T) {
	markdown := CatalogMarkdown()
	if strings.TrimSpace(markdown) == "" {
		t.Fatal("expected catalog markdown to be non-empty")
	}
	for _, c := range Collections() {
		for _, def := range c.Definitions() {
			row := "| " + c.ID() + " | " + def.ID + " | " + def.Name + " | "
			if !strings.Contains(markdown, row) {
				t.Errorf("catalog markdown missing row for %s/%s", c.ID(), def.ID)
			}
		}
	}
	if !strings.Contains(markdown, "| green_ember | heather | Heather Longtreader | A4 C4 E3 N3 O4 |") {
		t.Fatal("expected heather traits in catalog markdown")
	}
}

func TestDataURI(t *testing.T) {
	payload, err := Meta().Lookup("greenEmber")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	uri := DataURI(payload)
	const prefix = "data:image/svg+xml;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("unexpected data uri prefix: %q", uri[:len(prefix)])
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(decoded) != payload {
		t.Fatal("data uri does not carry the payload verbatim")
	}
}

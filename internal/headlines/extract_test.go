package headlines

import "testing"

const frontPageSample = `
<table>
  <tr><td><span class="titleline"><a href="https://example.com/1">First Story</a></span></td></tr>
  <tr><td><span class="titleline"><a href="item?id=2" rel="noreferrer">Second Story</a></span></td></tr>
  <tr><td><span class="titleline"><a href="https://example.com/3">Third Story</a></span></td></tr>
</table>`

func TestExtractPrimaryReturnsTitlesInDocumentOrder(t *testing.T) {
	titles, fellBack := Extract([]byte(frontPageSample))
	if fellBack {
		t.Fatalf("expected primary pattern to match")
	}
	want := []string{"First Story", "Second Story", "Third Story"}
	if len(titles) != len(want) {
		t.Fatalf("expected %d titles, got %d: %#v", len(want), len(titles), titles)
	}
	for i, w := range want {
		if titles[i] != w {
			t.Fatalf("title[%d] = %q, want %q", i, titles[i], w)
		}
	}
}

func TestExtractSingleAnchor(t *testing.T) {
	titles, fellBack := Extract([]byte(`<span class="titleline"><a href="x">Hello World</a></span>`))
	if fellBack {
		t.Fatalf("expected primary pattern to match")
	}
	if len(titles) != 1 || titles[0] != "Hello World" {
		t.Fatalf("unexpected titles %#v", titles)
	}
}

func TestExtractFallbackToleratesInterveningMarkup(t *testing.T) {
	body := []byte(`
<table>
  <tr><td><span class="titleline">
    <b>1.</b>
    <a href="https://example.com/a">Loose Story A</a>
  </span></td></tr>
  <tr><td><span class="titleline"><em><a href="https://example.com/b">Loose Story B</a></em></span></td></tr>
</table>`)

	titles, fellBack := Extract(body)
	if !fellBack {
		t.Fatalf("expected fallback to be used")
	}
	if len(titles) != 2 {
		t.Fatalf("expected 2 titles, got %#v", titles)
	}
	if got := titles[0]; got != "Loose Story A" {
		t.Fatalf("title[0] = %q", got)
	}
	if got := titles[1]; got != "Loose Story B" {
		t.Fatalf("title[1] = %q", got)
	}
}

func TestExtractFallbackNotUsedWhenPrimaryMatches(t *testing.T) {
	// One well-formed anchor plus one the primary pattern cannot see; the
	// loose pass must not run, so only the well-formed title comes back.
	body := []byte(`
<span class="titleline"><a href="x">Strict Story</a></span>
<span class="titleline"><b></b><a href="y">Loose Story</a></span>`)

	titles, fellBack := Extract(body)
	if fellBack {
		t.Fatalf("fallback ran despite a primary match")
	}
	if len(titles) != 1 || titles[0] != "Strict Story" {
		t.Fatalf("unexpected titles %#v", titles)
	}
}

func TestExtractNoTitlelineSpans(t *testing.T) {
	titles, fellBack := Extract([]byte(`<html><body><p>nothing here</p></body></html>`))
	if !fellBack {
		t.Fatalf("expected fallback attempt")
	}
	if len(titles) != 0 {
		t.Fatalf("expected no titles, got %#v", titles)
	}
}

func TestExtractFallbackSkipsAnchorlessNodes(t *testing.T) {
	body := []byte(`
<span class="titleline"><b>no anchor</b></span>
<span class="titleline"><i></i><a href="z">Survivor</a></span>`)

	titles, fellBack := Extract(body)
	if !fellBack {
		t.Fatalf("expected fallback to be used")
	}
	if len(titles) != 1 || titles[0] != "Survivor" {
		t.Fatalf("unexpected titles %#v", titles)
	}
}

package hive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const samplePage = `<html><body>
<div class="structItem">
  <div class="titleText">
    <div class="title"><a class="PreviewTooltip" href="threads/first.1/"> First thread </a></div>
    <div class="secondRow"><a class="forumLink">Maps</a></div>
  </div>
</div>
<div class="structItem">
  <div class="titleText">
    <div class="title"><a class="PreviewTooltip" href="threads/second.2/">Second thread</a></div>
    <div class="secondRow"><a class="forumLink"> Off-topic </a></div>
  </div>
</div>
</body></html>`

func TestExtract_ReturnsRecordsInPageOrder(t *testing.T) {
	records, err := Extract(strings.NewReader(samplePage))
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	want := []Record{
		{Title: "First thread", Forum: "Maps", Href: "threads/first.1/"},
		{Title: "Second thread", Forum: "Off-topic", Href: "threads/second.2/"},
	}
	if len(records) != len(want) {
		t.Fatalf("Extract returned %d records, want %d", len(records), len(want))
	}
	for i := range want {
		if records[i] != want[i] {
			t.Fatalf("record %d = %#v, want %#v", i, records[i], want[i])
		}
	}
}

func TestExtract_EmptyPageHasNoRecords(t *testing.T) {
	records, err := Extract(strings.NewReader(`<html><body><p>nothing new</p></body></html>`))
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("Extract returned %d records, want 0", len(records))
	}
}

func TestExtract_MissingPartsFail(t *testing.T) {
	cases := []struct {
		name string
		html string
		want string
	}{
		{
			name: "no title",
			html: `<div class="titleText"><div class="secondRow"><a class="forumLink">Maps</a></div></div>`,
			want: "missing title",
		},
		{
			name: "no href",
			html: `<div class="titleText"><div class="title"><a class="PreviewTooltip">x</a></div><div class="secondRow"><a class="forumLink">Maps</a></div></div>`,
			want: "no href",
		},
		{
			name: "no forum",
			html: `<div class="titleText"><div class="title"><a class="PreviewTooltip" href="t/1">x</a></div></div>`,
			want: "missing forum",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Extract(strings.NewReader(tc.html))
			if err == nil {
				t.Fatalf("Extract returned nil error, want %q", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Extract error = %q, want it to mention %q", err.Error(), tc.want)
			}
		})
	}
}

func TestClient_FetchSendsHeadersAndParses(t *testing.T) {
	t.Parallel()

	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/find-new/posts" {
			http.NotFound(w, r)
			return
		}
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(samplePage))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/find-new/posts")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	records, err := c.Fetch(ctx)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Fetch returned %d records, want 2", len(records))
	}
	if gotUserAgent != defaultUserAgent {
		t.Fatalf("User-Agent = %q, want %q", gotUserAgent, defaultUserAgent)
	}
	if got := JoinURL(server.URL, records[0].Href); got != server.URL+"/threads/first.1/" {
		t.Fatalf("JoinURL = %q, want %q", got, server.URL+"/threads/first.1/")
	}
}

func TestClient_FetchReturnsStatusErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/find-new/posts")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.Fetch(context.Background())
	if err == nil || !strings.Contains(err.Error(), "status 503") {
		t.Fatalf("Fetch error = %v, want status 503", err)
	}
}

func TestNewClient_RejectsEmptyURL(t *testing.T) {
	if _, err := NewClient(" "); err == nil {
		t.Fatalf("NewClient with empty source returned nil error")
	}
}

func TestJoinURL_SingleSlash(t *testing.T) {
	cases := []struct{ base, href, want string }{
		{"https://x.test", "threads/1", "https://x.test/threads/1"},
		{"https://x.test/", "/threads/1", "https://x.test/threads/1"},
		{"https://x.test//", "threads/1", "https://x.test/threads/1"},
	}
	for _, tc := range cases {
		if got := JoinURL(tc.base, tc.href); got != tc.want {
			t.Fatalf("JoinURL(%q, %q) = %q, want %q", tc.base, tc.href, got, tc.want)
		}
	}
}

func TestRecord_StructuralEquality(t *testing.T) {
	a := Record{Title: "t", Forum: "f", Href: "h"}
	b := Record{Title: "t", Forum: "f", Href: "h"}
	if a != b {
		t.Fatalf("identical records compare unequal")
	}
	if got := a.String(); got != "f :: t" {
		t.Fatalf("String() = %q, want %q", got, "f :: t")
	}
}

package components

import (
	"bytes"
	"io/fs"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	"voiceflow-dashboard/pkg/navigation"
)

var expectedEntries = []navigation.Item{
	{Label: "VoiceFlow AI", Path: "/"},
	{Label: "Dashboard", Path: "/dashboard"},
	{Label: "Agents", Path: "/agents"},
	{Label: "Phone Numbers", Path: "/phone-numbers"},
	{Label: "Call Logs", Path: "/call-logs"},
	{Label: "Menu", Path: "/menu"},
	{Label: "Orders", Path: "/orders"},
	{Label: "Reservations", Path: "/reservations"},
	{Label: "Campaigns", Path: "/campaigns"},
	{Label: "Social Media", Path: "/social-media"},
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer returned error: %v", err)
	}
	return r
}

func parseHTML(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("failed to parse rendered markup: %v", err)
	}
	return doc
}

// elements returns every element named tag in document order.
func elements(n *html.Node, tag string) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == tag {
			found = append(found, node)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return found
}

func childElements(n *html.Node) []*html.Node {
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, c)
		}
	}
	return children
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

func anchorsAsItems(anchors []*html.Node) []navigation.Item {
	items := make([]navigation.Item, 0, len(anchors))
	for _, a := range anchors {
		items = append(items, navigation.Item{Label: textContent(a), Path: attr(a, "href")})
	}
	return items
}

func TestNavigationBarModel(t *testing.T) {
	bar := NavigationBar()

	if diff := cmp.Diff(expectedEntries, bar.Entries()); diff != "" {
		t.Fatalf("unexpected navigation entries (-want +got):\n%s", diff)
	}
	if err := navigation.Validate(bar.Entries()...); err != nil {
		t.Fatalf("navigation entries are invalid: %v", err)
	}
	if bar.Brand.Class != "text-lg font-bold" {
		t.Fatalf("unexpected brand class %q", bar.Brand.Class)
	}
	for _, link := range bar.Links {
		if link.Class != "hover:underline" {
			t.Fatalf("link %q has class %q", link.Label, link.Class)
		}
	}
}

func TestPrimaryLinksReturnsCopy(t *testing.T) {
	links := PrimaryLinks()
	links[0] = navigation.Item{Label: "Changed", Path: "/changed"}

	if got := PrimaryLinks()[0]; got.Label != "Dashboard" || got.Path != "/dashboard" {
		t.Fatalf("mutating a returned slice leaked into later calls: %+v", got)
	}
	if got := NavigationBar().Links[0].Label; got != "Dashboard" {
		t.Fatalf("expected first link Dashboard, got %q", got)
	}
}

func TestRenderNavigationBar(t *testing.T) {
	r := newTestRenderer(t)

	var buf bytes.Buffer
	if err := r.RenderNavigationBar(&buf); err != nil {
		t.Fatalf("RenderNavigationBar returned error: %v", err)
	}

	doc := parseHTML(t, buf.String())

	navs := elements(doc, "nav")
	if len(navs) != 1 {
		t.Fatalf("expected one nav element, got %d", len(navs))
	}
	if got := attr(navs[0], "class"); got != "bg-primary text-primary-foreground p-4 flex justify-between items-center" {
		t.Fatalf("unexpected nav class %q", got)
	}

	children := childElements(navs[0])
	if len(children) != 2 || children[0].Data != "a" || children[1].Data != "div" {
		t.Fatalf("expected nav to contain brand anchor then link group, got %d children", len(children))
	}
	if got := attr(children[1], "class"); got != "space-x-4" {
		t.Fatalf("unexpected link group class %q", got)
	}

	anchors := elements(doc, "a")
	if len(anchors) != 10 {
		t.Fatalf("expected 10 links (brand + 9), got %d", len(anchors))
	}
	if diff := cmp.Diff(expectedEntries, anchorsAsItems(anchors)); diff != "" {
		t.Fatalf("unexpected rendered links (-want +got):\n%s", diff)
	}

	callLogs := anchors[1+3]
	if textContent(callLogs) != "Call Logs" || attr(callLogs, "href") != "/call-logs" {
		t.Fatalf("expected fourth navigation link to be Call Logs -> /call-logs, got %q -> %q",
			textContent(callLogs), attr(callLogs, "href"))
	}
}

func TestRenderNavigationBarIsIdempotent(t *testing.T) {
	r := newTestRenderer(t)

	var first, second bytes.Buffer
	if err := r.RenderNavigationBar(&first); err != nil {
		t.Fatalf("first render failed: %v", err)
	}
	if err := r.RenderNavigationBar(&second); err != nil {
		t.Fatalf("second render failed: %v", err)
	}

	if diff := cmp.Diff(first.String(), second.String()); diff != "" {
		t.Fatalf("renders differ (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(NavigationBar(), NavigationBar()); diff != "" {
		t.Fatalf("models differ (-first +second):\n%s", diff)
	}
}

func TestRenderHomePage(t *testing.T) {
	r := newTestRenderer(t)

	var buf bytes.Buffer
	if err := r.RenderHomePage(&buf); err != nil {
		t.Fatalf("RenderHomePage returned error: %v", err)
	}
	doc := parseHTML(t, buf.String())

	navs := elements(doc, "nav")
	headings := elements(doc, "h1")
	paragraphs := elements(doc, "p")
	if len(navs) != 1 || len(headings) != 1 || len(paragraphs) != 1 {
		t.Fatalf("expected one nav, h1 and p; got %d, %d, %d", len(navs), len(headings), len(paragraphs))
	}

	if got := textContent(headings[0]); got != "Welcome to VoiceFlow AI Dashboard" {
		t.Fatalf("unexpected heading %q", got)
	}
	if got := textContent(paragraphs[0]); got != "This is where you can manage your agents, phone numbers, and view call logs." {
		t.Fatalf("unexpected paragraph %q", got)
	}

	body := elements(doc, "body")[0]
	shell := childElements(body)
	if len(shell) != 1 || shell[0].Data != "div" {
		t.Fatalf("expected a single shell div in body")
	}
	if got := attr(shell[0], "class"); got != "flex min-h-screen flex-col" {
		t.Fatalf("unexpected shell class %q", got)
	}

	sections := childElements(shell[0])
	if len(sections) != 2 || sections[0].Data != "nav" || sections[1].Data != "main" {
		t.Fatalf("expected shell to contain nav then main")
	}
	if got := attr(sections[1], "class"); got != "flex-grow p-4" {
		t.Fatalf("unexpected main class %q", got)
	}

	content := childElements(sections[1])
	if len(content) != 2 || content[0].Data != "h1" || content[1].Data != "p" {
		t.Fatalf("expected main to contain h1 then p")
	}
	if got := attr(content[0], "class"); got != "text-3xl font-bold" {
		t.Fatalf("unexpected heading class %q", got)
	}
	if got := attr(content[1], "class"); got != "mt-4" {
		t.Fatalf("unexpected paragraph class %q", got)
	}
}

func TestRenderDocumentLinksVersionedStylesheet(t *testing.T) {
	r := newTestRenderer(t)

	var buf bytes.Buffer
	if err := r.RenderDocument(&buf, Document{Title: "VoiceFlow AI", Page: HomePage()}); err != nil {
		t.Fatalf("RenderDocument returned error: %v", err)
	}
	doc := parseHTML(t, buf.String())

	titles := elements(doc, "title")
	if len(titles) != 1 || textContent(titles[0]) != "VoiceFlow AI" {
		t.Fatalf("expected document title VoiceFlow AI")
	}

	links := elements(doc, "link")
	if len(links) != 1 {
		t.Fatalf("expected one stylesheet link, got %d", len(links))
	}
	href := attr(links[0], "href")
	if !strings.HasPrefix(href, "/static/css/app.css?v=") {
		t.Fatalf("expected versioned stylesheet href, got %q", href)
	}
	if len(elements(doc, "nav")) != 1 || len(elements(doc, "h1")) != 1 {
		t.Fatalf("expected document body to contain the home page shell")
	}
}

func TestNotFoundPageKeepsNavigationBar(t *testing.T) {
	page := NotFoundPage("/call-logs")

	if diff := cmp.Diff(NavigationBar(), page.Nav); diff != "" {
		t.Fatalf("not found page navigation differs (-want +got):\n%s", diff)
	}
	if page.Main.Heading.Text != NotFoundHeading {
		t.Fatalf("unexpected heading %q", page.Main.Heading.Text)
	}
	if !strings.Contains(page.Main.Paragraph.Text, "/call-logs") {
		t.Fatalf("expected paragraph to mention the requested path, got %q", page.Main.Paragraph.Text)
	}
}

func TestConcurrentRendersAreIdentical(t *testing.T) {
	r := newTestRenderer(t)

	var want bytes.Buffer
	if err := r.RenderHomePage(&want); err != nil {
		t.Fatalf("RenderHomePage returned error: %v", err)
	}

	const workers = 16
	results := make([]string, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var buf bytes.Buffer
			errs[i] = r.RenderHomePage(&buf)
			results[i] = buf.String()
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("worker %d failed: %v", i, errs[i])
		}
		if results[i] != want.String() {
			t.Fatalf("worker %d produced different output", i)
		}
	}
}

func TestStaticFSServesStylesheet(t *testing.T) {
	data, err := fs.ReadFile(StaticFS(), "css/app.css")
	if err != nil {
		t.Fatalf("expected embedded stylesheet: %v", err)
	}
	for _, class := range []string{".bg-primary", ".space-x-4", ".hover\\:underline:hover", ".min-h-screen"} {
		if !bytes.Contains(data, []byte(class)) {
			t.Errorf("stylesheet is missing %s", class)
		}
	}
}

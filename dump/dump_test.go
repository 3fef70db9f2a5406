package dump

import (
	"strings"
	"testing"

	"github.com/npillmayer/exhaust"
	"github.com/npillmayer/exhaust/textpos"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/net/html"
)

func TestConsoleListing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	var out strings.Builder
	config := &Config{LineWidth: 40, Limit: -1, Context: uax11.LatinContext}
	n, err := Output(exhaust.ArrayOf(exhaust.Bool, 2), &out, config, NewConsole(config, false))
	if err != nil || n != 4 {
		t.Fatalf("got=%d,%v want=4 values", n, err)
	}
	want := "     0  [false false]\n" +
		"     1  [false true]\n" +
		"     2  [true false]\n" +
		"     3  [true true]\n" +
		"        4 values\n"
	if out.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestConsoleLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	var out strings.Builder
	config := &Config{LineWidth: 40, Limit: 3}
	n, err := Output(exhaust.Uint16, &out, config, NewConsole(config, false))
	if err != nil || n != 3 {
		t.Fatalf("got=%d,%v want=3 values", n, err)
	}
	if !strings.HasSuffix(out.String(), "… more than 3 values\n") {
		t.Fatalf("expected truncation summary, got:\n%s", out.String())
	}
}

func TestTruncateWideCharacters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	textpos.SetupGraphemes()
	if s, cut := truncate("abc", 5, uax11.LatinContext); cut || s != "abc" {
		t.Fatalf("short text should not be cut, got=%q", s)
	}
	s, cut := truncate("abcdefgh", 5, uax11.LatinContext)
	if !cut || s != "abcd" {
		t.Fatalf("expected cut to 4 positions plus marker, got=%q", s)
	}
	s, cut = truncate("日本語の文", 5, uax11.LatinContext)
	if !cut || s != "日本" {
		t.Fatalf("wide characters take 2 positions each, got=%q", s)
	}
}

func TestHTMLTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	var out strings.Builder
	values := exhaust.ValuesOf("a<b", "c&d")
	n, err := Output(values, &out, nil, NewHTML("pairs"))
	if err != nil || n != 2 {
		t.Fatalf("got=%d,%v want=2 values", n, err)
	}
	rendered := out.String()
	if !strings.Contains(rendered, "<td>a&lt;b</td>") {
		t.Fatalf("expected escaped cell text, got:\n%s", rendered)
	}
	doc, err := html.Parse(strings.NewReader(rendered))
	if err != nil {
		t.Fatal(err)
	}
	rows := 0
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			rows++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	if rows != 4 { // head, 2 values, foot
		t.Fatalf("expected 4 table rows, got=%d in\n%s", rows, rendered)
	}
}

func TestStrings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exhaust")
	defer teardown()
	//
	got := Strings(exhaust.OptionOf(exhaust.Unit), -1)
	if len(got) != 2 {
		t.Fatalf("expected 2 strings, got=%v", got)
	}
}

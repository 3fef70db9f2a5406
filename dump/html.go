package dump

import (
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML is a format which renders values as rows of an HTML table. The table
// is built as a node tree and rendered by the Postamble.
type HTML struct {
	Caption string // optional caption of the table
	table   *html.Node
	body    *html.Node
}

// NewHTML creates an HTML table format.
func NewHTML(caption string) *HTML {
	return &HTML{Caption: caption}
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func textCell(a atom.Atom, text string, attrs ...html.Attribute) *html.Node {
	cell := element(a, attrs...)
	cell.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return cell
}

// Preamble starts a new table.
func (h *HTML) Preamble(w io.Writer) error {
	h.table = element(atom.Table, html.Attribute{Key: "class", Val: "exhaust"})
	if h.Caption != "" {
		h.table.AppendChild(textCell(atom.Caption, h.Caption))
	}
	head := element(atom.Thead)
	row := element(atom.Tr)
	row.AppendChild(textCell(atom.Th, "#"))
	row.AppendChild(textCell(atom.Th, "value"))
	head.AppendChild(row)
	h.table.AppendChild(head)
	h.body = element(atom.Tbody)
	h.table.AppendChild(h.body)
	return nil
}

// Item appends a table row for a value. Text is escaped when rendered.
func (h *HTML) Item(index int, value string, w io.Writer) error {
	row := element(atom.Tr)
	row.AppendChild(textCell(atom.Td, strconv.Itoa(index)))
	row.AppendChild(textCell(atom.Td, value))
	h.body.AppendChild(row)
	return nil
}

// Postamble appends a footer and renders the table to w.
func (h *HTML) Postamble(count int, complete bool, w io.Writer) error {
	summary := strconv.Itoa(count) + " values"
	if !complete {
		summary = "more than " + summary
	}
	foot := element(atom.Tfoot)
	row := element(atom.Tr)
	row.AppendChild(textCell(atom.Td, summary, html.Attribute{Key: "colspan", Val: "2"}))
	foot.AppendChild(row)
	h.table.AppendChild(foot)
	err := html.Render(w, h.table)
	h.table, h.body = nil, nil
	return err
}

// Package domtest provides an in-memory dom.Document for tests.
package domtest

import (
	"strings"
	"sync"

	"github.com/roland/portfolio/internal/dom"
)

// Document is a fake page holding a flat set of elements addressable by id.
type Document struct {
	mu    sync.Mutex
	byID  map[string]*Element
	nodes int
}

// New returns a document with one empty div per id.
func New(ids ...string) *Document {
	d := &Document{byID: map[string]*Element{}}
	for _, id := range ids {
		d.Add(id, "div")
	}
	return d
}

// Add registers a new element with the given id and tag.
func (d *Document) Add(id, tag string) *Element {
	e := d.newElement(tag)
	e.attrs["id"] = id
	d.mu.Lock()
	d.byID[id] = e
	d.mu.Unlock()
	return e
}

// Get returns the element registered under id, or nil.
func (d *Document) Get(id string) *Element {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.byID[id]
}

// Created reports how many elements have been created, including registered ones.
func (d *Document) Created() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.nodes
}

// ElementByID implements dom.Document.
func (d *Document) ElementByID(id string) (dom.Element, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	e, ok := d.byID[id]
	if !ok {
		return nil, false
	}
	return e, true
}

// CreateElement implements dom.Document.
func (d *Document) CreateElement(tag string) dom.Element {
	return d.newElement(tag)
}

func (d *Document) newElement(tag string) *Element {
	d.mu.Lock()
	d.nodes++
	d.mu.Unlock()
	return &Element{doc: d, tag: strings.ToLower(tag), attrs: map[string]string{}}
}

// Element is a fake element. Text and children are mutually exclusive, as
// with SetText on a real node.
type Element struct {
	doc      *Document
	tag      string
	text     string
	attrs    map[string]string
	children []*Element
}

func (e *Element) Tag() string { return e.tag }

func (e *Element) Text() string {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.textLocked()
}

func (e *Element) textLocked() string {
	var sb strings.Builder
	sb.WriteString(e.text)
	for _, c := range e.children {
		sb.WriteString(c.textLocked())
	}
	return sb.String()
}

func (e *Element) SetText(text string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.children = nil
	e.text = text
}

func (e *Element) Attr(key string) (string, bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	v, ok := e.attrs[key]
	return v, ok
}

func (e *Element) SetAttr(key, value string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.attrs[key] = value
}

func (e *Element) RemoveAttr(key string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	delete(e.attrs, key)
}

func (e *Element) AppendChild(child dom.Element) {
	c, ok := child.(*Element)
	if !ok {
		return
	}
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.children = append(e.children, c)
}

func (e *Element) ClearChildren() {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	e.children = nil
	e.text = ""
}

func (e *Element) Children() []dom.Element {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	out := make([]dom.Element, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

func (e *Element) Hidden() bool {
	_, ok := e.Attr("hidden")
	return ok
}

func (e *Element) SetHidden(hidden bool) {
	if hidden {
		e.SetAttr("hidden", "")
		return
	}
	e.RemoveAttr("hidden")
}

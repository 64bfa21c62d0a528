package polymate

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	mt "github.com/rustyoz/Mtransform"
	"golang.org/x/net/html/charset"
)

// shapeTags lists the elements recorded while parsing a document.
var shapeTags = map[string]bool{
	"polygon":  true,
	"polyline": true,
	"rect":     true,
	"circle":   true,
	"ellipse":  true,
	"line":     true,
	"path":     true,
}

// Svg represents an SVG document containing shape elements, either at the
// top level or inside groups.
type Svg struct {
	Title     string
	Name      string
	Groups    []Group
	Elements  []*Element
	Transform *mt.Transform
	scale     float64
}

// Group represents an SVG group (usually located in a 'g' XML element)
type Group struct {
	ID       string
	Groups   []Group
	Elements []*Element
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (g *Group) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		if attr.Name.Local == "id" {
			g.ID = attr.Value
		}
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			switch {
			case tok.Name.Local == "g":
				var child Group
				if err = decoder.DecodeElement(&child, &tok); err != nil {
					return fmt.Errorf("error decoding group element within group %q: %s", g.ID, err)
				}
				g.Groups = append(g.Groups, child)
				continue
			case shapeTags[tok.Name.Local]:
				g.Elements = append(g.Elements, newElement(tok))
			}
			if err = decoder.Skip(); err != nil {
				return err
			}

		case xml.EndElement:
			return nil
		}
	}
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (s *Svg) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			switch {
			case tok.Name.Local == "g":
				var g Group
				if err = decoder.DecodeElement(&g, &tok); err != nil {
					return fmt.Errorf("error decoding group element within SVG struct: %s", err)
				}
				s.Groups = append(s.Groups, g)
				continue
			case tok.Name.Local == "title":
				if err = decoder.DecodeElement(&s.Title, &tok); err != nil {
					return fmt.Errorf("error decoding title of SVG struct: %s", err)
				}
				continue
			case shapeTags[tok.Name.Local]:
				s.Elements = append(s.Elements, newElement(tok))
			}
			if err = decoder.Skip(); err != nil {
				return err
			}

		case xml.EndElement:
			return nil
		}
	}
}

func newSvg(name string, scale float64) *Svg {
	svg := &Svg{Name: name, Transform: mt.NewTransform(), scale: 1}
	if scale > 0 {
		svg.Transform.Scale(scale, scale)
		svg.scale = scale
	}
	if scale < 0 {
		svg.Transform.Scale(1.0/-scale, 1.0/-scale)
		svg.scale = 1.0 / -scale
	}
	return svg
}

// ParseSvg parses an SVG string into an SVG struct.
//
// A positive scale multiplies every coordinate read from the document and a
// negative one divides by its absolute value; zero keeps coordinates as is.
func ParseSvg(str string, name string, scale float64) (*Svg, error) {
	svg := newSvg(name, scale)
	if err := xml.Unmarshal([]byte(str), svg); err != nil {
		return nil, fmt.Errorf("ParseSvg Error: %v", err)
	}
	return svg, nil
}

// ParseSvgFromReader parses an SVG struct from an io.Reader. Documents in
// encodings other than UTF-8 are converted according to their XML
// declaration.
func ParseSvgFromReader(r io.Reader, name string, scale float64) (*Svg, error) {
	svg := newSvg(name, scale)
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	if err := decoder.Decode(svg); err != nil {
		return nil, fmt.Errorf("ParseSvg Error: %v", err)
	}
	return svg, nil
}

// Scale returns the factor applied to coordinates read from the document.
func (s *Svg) Scale() float64 {
	return s.scale
}

// AllElements returns every recorded element in document order, top level
// elements first.
func (s *Svg) AllElements() []*Element {
	all := append([]*Element(nil), s.Elements...)
	for i := range s.Groups {
		all = s.Groups[i].appendElements(all)
	}
	return all
}

func (g *Group) appendElements(all []*Element) []*Element {
	all = append(all, g.Elements...)
	for i := range g.Groups {
		all = g.Groups[i].appendElements(all)
	}
	return all
}

// ElementByID returns the element with the given id, or nil.
func (s *Svg) ElementByID(id string) *Element {
	for _, el := range s.AllElements() {
		if el.ID == id {
			return el
		}
	}
	return nil
}

// Polygons returns every polygon element of the document.
func (s *Svg) Polygons() []*Element {
	var polygons []*Element
	for _, el := range s.AllElements() {
		if strings.EqualFold(el.Tag, polygonTag) {
			polygons = append(polygons, el)
		}
	}
	return polygons
}

// Animate binds the element with the given id using the document transform.
func (s *Svg) Animate(id string) (*Polygon, error) {
	el := s.ElementByID(id)
	if el == nil {
		return nil, fmt.Errorf("%w: %q in %s", ErrNotFound, id, s.Name)
	}
	return s.AnimateElement(el)
}

// AnimateElement binds el using the document transform.
func (s *Svg) AnimateElement(el *Element) (*Polygon, error) {
	t := mt.Identity()
	if s.Transform != nil {
		t = *s.Transform
	}
	return Bind(el, t)
}

package render

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kingrea/teamalys3r/internal/analysis"
	"github.com/kingrea/teamalys3r/internal/config"
	"github.com/kingrea/teamalys3r/internal/roster"
)

const svgNamespace = "http://www.w3.org/2000/svg"

type svgLine struct {
	XMLName xml.Name `xml:"line"`
	X1      string   `xml:"x1,attr"`
	Y1      string   `xml:"y1,attr"`
	X2      string   `xml:"x2,attr"`
	Y2      string   `xml:"y2,attr"`
	Stroke  string   `xml:"stroke,attr"`
}

type svgCircle struct {
	XMLName xml.Name `xml:"circle"`
	CX      string   `xml:"cx,attr"`
	CY      string   `xml:"cy,attr"`
	R       string   `xml:"r,attr"`
	Fill    string   `xml:"fill,attr"`
}

type svgText struct {
	XMLName xml.Name `xml:"text"`
	X       string   `xml:"x,attr"`
	Y       string   `xml:"y,attr"`
	Fill    string   `xml:"fill,attr"`
	Label   string   `xml:",chardata"`
}

// WriteSVG encodes the diagram for r. Lines are written before nodes so the
// nodes are painted over them; each node's label follows its circle.
func WriteSVG(w io.Writer, r *roster.Roster, cfg config.Render) error {
	members := r.Members()
	points, err := Layout(len(members), cfg)
	if err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	root := xml.StartElement{
		Name: xml.Name{Local: "svg"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "xmlns"}, Value: svgNamespace},
			{Name: xml.Name{Local: "width"}, Value: formatLength(cfg.CanvasWidth)},
			{Name: xml.Name{Local: "height"}, Value: formatLength(cfg.CanvasHeight)},
		},
	}
	if err := enc.EncodeToken(root); err != nil {
		return fmt.Errorf("render: encode svg: %w", err)
	}

	for _, edge := range Edges(r) {
		from, to := points[edge.From], points[edge.To]
		line := svgLine{
			X1:     formatCoord(from.X),
			Y1:     formatCoord(from.Y),
			X2:     formatCoord(to.X),
			Y2:     formatCoord(to.Y),
			Stroke: cfg.EdgeStroke,
		}
		if err := enc.Encode(line); err != nil {
			return fmt.Errorf("render: encode line %s->%s: %w", members[edge.From], members[edge.To], err)
		}
	}

	radius := formatLength(cfg.NodeRadius)
	for i, member := range members {
		p := points[i]
		x, y := formatCoord(p.X), formatCoord(p.Y)
		if err := enc.Encode(svgCircle{CX: x, CY: y, R: radius, Fill: cfg.NodeFill}); err != nil {
			return fmt.Errorf("render: encode node %s: %w", member, err)
		}
		if err := enc.Encode(svgText{X: x, Y: y, Fill: cfg.LabelFill, Label: member}); err != nil {
			return fmt.Errorf("render: encode label %s: %w", member, err)
		}
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return fmt.Errorf("render: encode svg: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return fmt.Errorf("render: flush svg: %w", err)
	}
	return nil
}

// WriteFile renders r into path, replacing any existing file. Nothing is
// written when the roster is empty.
func WriteFile(path string, r *roster.Roster, cfg config.Render) (err error) {
	if r.Len() == 0 {
		return ErrEmptyRoster
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: close %s: %w", path, cerr)
		}
	}()
	buf := bufio.NewWriter(f)
	if err := WriteSVG(buf, r, cfg); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("render: write %s: %w", path, err)
	}
	return nil
}

// formatCoord prints coordinates the same way work indexes are printed:
// 900.0, 500.00000000000006, 2.4492935982947064e-14.
func formatCoord(v float64) string {
	return analysis.FormatIndex(v)
}

func formatLength(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

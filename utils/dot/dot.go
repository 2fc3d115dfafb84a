package dot

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/goccy/go-graphviz"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DotToImage renders a graph in dot syntax with Graphviz, writing the image to
// outfname.format. The path of the image is returned.
func DotToImage(outfname string, format string, dot []byte) (img string, err error) {
	g := graphviz.New()
	graph, err := graphviz.ParseBytes(dot)
	if err != nil {
		return "", errors.Wrap(err, "parsing dot graph")
	}
	defer func() {
		if cerr := graph.Close(); cerr != nil && err == nil {
			err = cerr
		}
		g.Close()
	}()

	img = fmt.Sprintf("%s.%s", outfname, format)
	if err := g.RenderFilename(graph, graphviz.Format(format), img); err != nil {
		return "", errors.Wrapf(err, "rendering %s", img)
	}
	return img, nil
}

const tmplCluster = `{{define "cluster" -}}
	{{printf "subgraph %q {" .}}
		{{printf "%s" .Attrs.Lines}}
		{{range .Nodes}}
		{{template "node" .}}
		{{- end}}
	{{println "}" }}
{{- end}}`

const tmplEdge = `{{define "edge" -}}
	{{printf "%q -> %q [ %s ]" .From .To .Attrs}}
{{- end}}`

const tmplNode = `{{define "node" -}}
	{{printf "%q [ %s ]" .ID .Attrs}}
{{- end}}`

const tmplGraph = `digraph ProgramGraph {
	label="{{.Title}}";
	labeljust="l";
	fontname="Arial";
	fontsize="14";
	rankdir="{{or .Options.rankdir "TB"}}";
	nodesep="{{or .Options.nodesep "0.35"}}";

	node [shape="circle" style="filled" fillcolor="honeydew" fontname="Verdana" penwidth="1.0"];
	edge [minlen="{{or .Options.minlen "2"}}"]

	{{- range .Clusters}}
	{{template "cluster" .}}
	{{- end}}

	{{range .Nodes}}
	{{template "node" .}}
	{{- end}}

	{{- range .Edges}}
	{{template "edge" .}}
	{{- end}}
}
`

// ==[ type def/func: DotCluster ]===============================================
type DotCluster struct {
	ID    string
	Nodes []*DotNode
	Attrs DotAttrs
}

func NewDotCluster(id string) *DotCluster {
	return &DotCluster{
		ID:    id,
		Attrs: make(DotAttrs),
	}
}

func (c *DotCluster) String() string {
	return fmt.Sprintf("cluster_%s", c.ID)
}

// ==[ type def/func: DotNode    ]===============================================
type DotNode struct {
	ID    string
	Attrs DotAttrs
}

func (n *DotNode) String() string {
	return n.ID
}

// ==[ type def/func: DotEdge    ]===============================================
type DotEdge struct {
	From  *DotNode
	To    *DotNode
	Attrs DotAttrs
}

// ==[ type def/func: DotAttrs   ]===============================================
type DotAttrs map[string]string

// List renders the attributes sorted by key, so output is deterministic.
func (p DotAttrs) List() []string {
	keys := maps.Keys(p)
	slices.Sort(keys)

	l := make([]string, 0, len(keys))
	for _, k := range keys {
		l = append(l, fmt.Sprintf("%s=%q;", k, p[k]))
	}
	return l
}

func (p DotAttrs) String() string {
	return strings.Join(p.List(), " ")
}

func (p DotAttrs) Lines() string {
	return strings.Join(p.List(), "\n")
}

// ==[ type def/func: DotGraph   ]===============================================
type DotGraph struct {
	Title    string
	Clusters []*DotCluster
	Nodes    []*DotNode
	Edges    []*DotEdge
	Options  map[string]string
}

// CountNodes returns the number of nodes, including those inside clusters.
func (g *DotGraph) CountNodes() int {
	res := len(g.Nodes)

	for _, cluster := range g.Clusters {
		res += len(cluster.Nodes)
	}

	return res
}

func (g *DotGraph) WriteDot(w io.Writer) error {
	t := template.New("dot")
	t.Option("missingkey=zero") // Make missing map keys return the zero value of appropriate type
	for _, s := range []string{tmplCluster, tmplNode, tmplEdge, tmplGraph} {
		if _, err := t.Parse(s); err != nil {
			return err
		}
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, g); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// Render writes the graph as an image to outfname.format.
func (g *DotGraph) Render(outfname, format string) (string, error) {
	var buf bytes.Buffer
	if err := g.WriteDot(&buf); err != nil {
		return "", err
	}
	return DotToImage(outfname, format, buf.Bytes())
}

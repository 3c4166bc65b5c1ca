// Package pipeline loads HCL files describing parsing graphs and builds
// them through the op package.
//
// A pipeline file holds one block per operation. The block label becomes
// the operation name, inputs refer to other blocks as "name" or
// "name:index":
//
//	scope = "input"
//
//	placeholder "lines" {
//	  dtype = "string"
//	}
//
//	decode_csv "cols" {
//	  records     = "lines"
//	  out_types   = ["int32", "string"]
//	  field_delim = ";"
//	}
//
//	string_to_number "label" {
//	  input    = "cols:1"
//	  out_type = "int64"
//	}
package pipeline

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	tf "github.com/hdu-hh/tfgraph"
	"github.com/hdu-hh/tfgraph/op"
)

// Pipeline is the content of one pipeline file.
type Pipeline struct {
	// Scope is the optional name scope of all operations.
	Scope string
	// Nodes in file order.
	Nodes []*Node
}

// Node is one operation block of a pipeline file.
type Node struct {
	Kind  string // block type, e.g. "decode_csv"
	Name  string // block label
	Range hcl.Range

	spec nodeSpec
}

// Refs returns the input references of the node as written in the file.
func (n *Node) Refs() []string { return n.spec.refs() }

func fileSchema() *hcl.BodySchema {
	schema := &hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{{Name: "scope"}},
	}
	for _, kind := range Kinds() {
		schema.Blocks = append(schema.Blocks, hcl.BlockHeaderSchema{
			Type:       kind,
			LabelNames: []string{"name"},
		})
	}
	return schema
}

// Load parses the pipeline file at path.
func Load(path string) (*Pipeline, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return decode(path, file)
}

// Parse parses a pipeline file held in memory. filename is only used in
// error messages.
func Parse(src []byte, filename string) (*Pipeline, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return decode(filename, file)
}

func decode(filename string, file *hcl.File) (*Pipeline, error) {
	content, diags := file.Body.Content(fileSchema())
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	p := &Pipeline{}
	if attr, ok := content.Attributes["scope"]; ok {
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &p.Scope)...)
	}
	seen := map[string]*Node{}
	for _, block := range content.Blocks {
		spec := newSpec(block.Type)
		diags = append(diags, gohcl.DecodeBody(block.Body, nil, spec)...)
		n := &Node{Kind: block.Type, Name: block.Labels[0], Range: block.DefRange, spec: spec}
		if prev, ok := seen[n.Name]; ok {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate node name",
				Detail:   fmt.Sprintf("A node named %q was already defined at %s.", n.Name, prev.Range),
				Subject:  block.DefRange.Ptr(),
			})
			continue
		}
		seen[n.Name] = n
		p.Nodes = append(p.Nodes, n)
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	return p, nil
}

// splitRef splits an input reference into node name and output index.
func splitRef(ref string) (name string, index int, err error) {
	name = ref
	if i := strings.LastIndexByte(ref, ':'); i >= 0 {
		name = ref[:i]
		index, err = strconv.Atoi(ref[i+1:])
		if err != nil || index < 0 {
			return "", 0, fmt.Errorf("invalid output index in reference %q", ref)
		}
	}
	if name == "" {
		return "", 0, fmt.Errorf("reference %q names no node", ref)
	}
	return name, index, nil
}

// Order returns the nodes so that every node comes after the nodes it
// refers to. Independent nodes keep their file order.
func (p *Pipeline) Order() ([]*Node, error) {
	byName := make(map[string]*Node, len(p.Nodes))
	for _, n := range p.Nodes {
		byName[n.Name] = n
	}
	var diags hcl.Diagnostics
	deps := make(map[*Node][]*Node, len(p.Nodes))
	for _, n := range p.Nodes {
		for _, ref := range n.Refs() {
			name, _, err := splitRef(ref)
			if err == nil && byName[name] == nil {
				err = fmt.Errorf("node %q refers to %q, which is not defined", n.Name, name)
			}
			if err != nil {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid reference",
					Detail:   err.Error(),
					Subject:  n.Range.Ptr(),
				})
				continue
			}
			deps[n] = append(deps[n], byName[name])
		}
	}
	if diags.HasErrors() {
		return nil, diags
	}

	ordered := make([]*Node, 0, len(p.Nodes))
	placed := make(map[*Node]bool, len(p.Nodes))
	for len(ordered) < len(p.Nodes) {
		progress := false
		for _, n := range p.Nodes {
			if placed[n] || !allPlaced(deps[n], placed) {
				continue
			}
			ordered = append(ordered, n)
			placed[n] = true
			progress = true
			break
		}
		if !progress {
			var cycle []string
			for _, n := range p.Nodes {
				if !placed[n] {
					cycle = append(cycle, n.Name)
				}
			}
			return nil, fmt.Errorf("dependency cycle between nodes %s", strings.Join(cycle, ", "))
		}
	}
	return ordered, nil
}

func allPlaced(nodes []*Node, placed map[*Node]bool) bool {
	for _, n := range nodes {
		if !placed[n] {
			return false
		}
	}
	return true
}

// Build adds the operations of p to the graph of s and returns them by
// node name. Operation names are the node names below the name scope of s
// and p.Scope.
func (p *Pipeline) Build(s *op.Scope) (map[string]*tf.Operation, error) {
	nodes, err := p.Order()
	if err != nil {
		return nil, err
	}
	if p.Scope != "" {
		s = s.SubScope(p.Scope)
	}
	ops := make(map[string]*tf.Operation, len(nodes))
	resolve := func(ref string) (tf.Output, error) {
		name, index, err := splitRef(ref)
		if err != nil {
			return tf.Output{}, err
		}
		o := ops[name]
		if index >= o.NumOutputs() {
			return tf.Output{}, fmt.Errorf("%q has %d outputs, %q refers to output %d",
				name, o.NumOutputs(), ref, index)
		}
		return o.Output(index), nil
	}
	for _, n := range nodes {
		o, err := n.spec.add(s.WithOpName(n.Name), resolve)
		if err != nil {
			return nil, fmt.Errorf("%s: %s %q: %w", n.Range, n.Kind, n.Name, err)
		}
		slog.Debug("built pipeline node", "kind", n.Kind, "name", n.Name, "op", o.Name())
		ops[n.Name] = o
	}
	return ops, nil
}

// Graph builds p into a new graph.
func (p *Pipeline) Graph(opts ...tf.GraphOption) (*tf.Graph, error) {
	s := op.NewScopeWithGraph(tf.NewGraph(opts...))
	if _, err := p.Build(s); err != nil {
		return nil, err
	}
	return s.Finalize()
}

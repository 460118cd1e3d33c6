package lib

import (
	"fmt"
	"io"
	"text/template"
)

var dotTemplateString = `digraph expr {
{{range .Nodes}}  {{.ID}} [label="{{.Label}}"];
{{end}}{{range .Edges}}  {{.From}} -> {{.To}};
{{end}}}
`

type dotViewModel struct {
	Nodes []dotNodeViewModel
	Edges []dotEdgeViewModel
}

type dotNodeViewModel struct {
	ID    string
	Label string
}

type dotEdgeViewModel struct {
	From string
	To   string
}

// WriteDot renders the expression tree in GraphViz dot format, one graph
// node per atom or operator, suitable for piping into `dot -Tpng` when
// eyeballing what the parser actually built.
func WriteDot(writer io.Writer, expr Expr) error {
	vm := &dotViewModel{
		Nodes: []dotNodeViewModel{},
		Edges: []dotEdgeViewModel{},
	}
	addDotNode(vm, expr)

	tmpl, err := template.New("dot").Parse(dotTemplateString)
	if err != nil {
		return err
	}

	return tmpl.Execute(writer, vm)
}

func addDotNode(vm *dotViewModel, expr Expr) string {
	id := fmt.Sprintf("n%d", len(vm.Nodes))

	switch e := expr.(type) {
	case Atom:
		vm.Nodes = append(vm.Nodes, dotNodeViewModel{ID: id, Label: string(e.Ch)})
	case BinaryOp:
		vm.Nodes = append(vm.Nodes, dotNodeViewModel{ID: id, Label: string(e.Op)})
		left := addDotNode(vm, e.Left)
		right := addDotNode(vm, e.Right)
		vm.Edges = append(vm.Edges,
			dotEdgeViewModel{From: id, To: left},
			dotEdgeViewModel{From: id, To: right})
	}

	return id
}

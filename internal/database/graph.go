package database

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/winegen/internal/dataset"
)

// DependencyGraph orders tables so every referenced table comes before the
// tables pointing at it.
type DependencyGraph struct {
	tables map[string]dataset.Table
	names  []string
}

func NewDependencyGraph(tables []dataset.Table) *DependencyGraph {
	g := &DependencyGraph{tables: make(map[string]dataset.Table, len(tables))}
	for _, t := range tables {
		if _, dup := g.tables[t.Name]; !dup {
			g.names = append(g.names, t.Name)
		}
		g.tables[t.Name] = t
	}
	return g
}

// CreationOrder returns the tables in dependency order. Ties keep the order
// the tables were given in.
func (g *DependencyGraph) CreationOrder() ([]dataset.Table, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []dataset.Table

	var visit func(string) error
	visit = func(name string) error {
		if temp[name] {
			return fmt.Errorf("circular dependency detected involving table: %s", name)
		}
		if visited[name] {
			return nil
		}

		table, known := g.tables[name]
		if !known {
			return fmt.Errorf("unknown referenced table: %s", name)
		}

		temp[name] = true
		for _, column := range table.Columns {
			if column.References != "" && column.References != name {
				if err := visit(column.References); err != nil {
					return err
				}
			}
		}
		temp[name] = false
		visited[name] = true
		order = append(order, table)
		return nil
	}

	for _, name := range g.names {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}

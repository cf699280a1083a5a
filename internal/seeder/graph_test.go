package seeder

import (
	"strings"
	"testing"
)

func TestBuildInsertionOrder(t *testing.T) {
	g := NewDependencyGraph()
	for _, table := range catalogTables(DefaultTableNames()) {
		g.AddTable(table)
	}

	order, err := g.BuildInsertionOrder()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(order) != 3 {
		t.Fatalf("Expected 3 tables, got %v", order)
	}
	if order[0] != "Products" {
		t.Errorf("Expected Products first, got %v", order)
	}

	truncation := g.TruncationOrder()
	if truncation[2] != "Products" {
		t.Errorf("Expected Products truncated last, got %v", truncation)
	}
}

func TestBuildInsertionOrderKeepsAddOrder(t *testing.T) {
	g := NewDependencyGraph()
	g.AddTable(&TableInfo{Name: "b", Dependencies: []string{"a"}})
	g.AddTable(&TableInfo{Name: "c", Dependencies: []string{"a"}})
	g.AddTable(&TableInfo{Name: "a"})

	order, err := g.BuildInsertionOrder()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := strings.Join(order, ","); got != "a,b,c" {
		t.Errorf("Expected a,b,c got %s", got)
	}
}

func TestBuildInsertionOrderDetectsCycles(t *testing.T) {
	g := NewDependencyGraph()
	g.AddTable(&TableInfo{Name: "a", Dependencies: []string{"b"}})
	g.AddTable(&TableInfo{Name: "b", Dependencies: []string{"a"}})

	if _, err := g.BuildInsertionOrder(); err == nil || !strings.Contains(err.Error(), "circular dependency") {
		t.Errorf("Expected circular dependency error, got %v", err)
	}
}

func TestBuildInsertionOrderUnknownDependency(t *testing.T) {
	g := NewDependencyGraph()
	g.AddTable(&TableInfo{Name: "a", Dependencies: []string{"ghost"}})

	if _, err := g.BuildInsertionOrder(); err == nil {
		t.Error("Expected error for unregistered dependency")
	}
}

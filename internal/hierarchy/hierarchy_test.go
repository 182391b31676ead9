package hierarchy

import (
	"testing"

	"app/internal/model"
)

func strPtr(s string) *string { return &s }

func topic(id, courseID string, parentID *string, order int) model.Topic {
	return model.Topic{ID: id, CourseID: courseID, ParentID: parentID, Order: order, Title: id}
}

func TestBuildNestedForest(t *testing.T) {
	// A (order 0), B (order 1) roots; C (order 0) under A.
	topics := []model.Topic{
		topic("A", "c1", nil, 0),
		topic("B", "c1", nil, 1),
		topic("C", "c1", strPtr("A"), 0),
	}

	roots := Build(topics)

	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	if roots[0].ID != "A" || roots[1].ID != "B" {
		t.Fatalf("expected roots [A B], got [%s %s]", roots[0].ID, roots[1].ID)
	}
	if len(roots[0].Children) != 1 || roots[0].Children[0].ID != "C" {
		t.Fatalf("expected A.children = [C], got %+v", roots[0].Children)
	}
	if len(roots[1].Children) != 0 {
		t.Fatalf("expected B to have no children, got %d", len(roots[1].Children))
	}
}

func TestBuildRootsSortedByOrder(t *testing.T) {
	topics := []model.Topic{
		topic("third", "c1", nil, 5),
		topic("first", "c1", nil, 0),
		topic("second", "c1", nil, 2),
	}

	roots := Build(topics)

	got := []string{roots[0].ID, roots[1].ID, roots[2].ID}
	want := []string{"first", "second", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected root order %v, got %v", want, got)
		}
	}
}

func TestBuildEqualOrderIsStable(t *testing.T) {
	// All topics share order 0; output must keep input order.
	topics := []model.Topic{
		topic("x", "c1", nil, 0),
		topic("y", "c1", nil, 0),
		topic("z", "c1", nil, 0),
	}

	roots := Build(topics)

	if roots[0].ID != "x" || roots[1].ID != "y" || roots[2].ID != "z" {
		t.Fatalf("expected stable order [x y z], got [%s %s %s]", roots[0].ID, roots[1].ID, roots[2].ID)
	}
}

func TestBuildChildrenSortedRecursively(t *testing.T) {
	topics := []model.Topic{
		topic("root", "c1", nil, 0),
		topic("child-b", "c1", strPtr("root"), 2),
		topic("child-a", "c1", strPtr("root"), 1),
		topic("grand-b", "c1", strPtr("child-a"), 1),
		topic("grand-a", "c1", strPtr("child-a"), 0),
	}

	roots := Build(topics)

	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}
	children := roots[0].Children
	if len(children) != 2 || children[0].ID != "child-a" || children[1].ID != "child-b" {
		t.Fatalf("expected children [child-a child-b], got %+v", children)
	}
	grand := children[0].Children
	if len(grand) != 2 || grand[0].ID != "grand-a" || grand[1].ID != "grand-b" {
		t.Fatalf("expected grandchildren [grand-a grand-b], got %+v", grand)
	}
}

func TestBuildUnresolvableParentBecomesRoot(t *testing.T) {
	topics := []model.Topic{
		topic("a", "c1", nil, 0),
		topic("orphan", "c1", strPtr("missing"), 1),
	}

	roots := Build(topics)

	if len(roots) != 2 {
		t.Fatalf("expected orphan to fall back to root, got %d roots", len(roots))
	}
	if roots[1].ID != "orphan" {
		t.Fatalf("expected orphan as second root, got %s", roots[1].ID)
	}
}

func TestBuildSelfParentBecomesRoot(t *testing.T) {
	topics := []model.Topic{
		topic("loop", "c1", strPtr("loop"), 0),
	}

	roots := Build(topics)

	if len(roots) != 1 || roots[0].ID != "loop" {
		t.Fatalf("expected self-referencing topic as root, got %+v", roots)
	}
}

func TestBuildEmptyInput(t *testing.T) {
	roots := Build(nil)
	if roots == nil {
		t.Fatal("expected empty non-nil forest")
	}
	if len(roots) != 0 {
		t.Fatalf("expected empty forest, got %d roots", len(roots))
	}
}

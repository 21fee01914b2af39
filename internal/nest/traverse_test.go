package nest

import (
	"errors"
	"testing"
)

// fixture builds the nested sequence
// [[[["a","b"],["c"]],[["d","e"]]], [[["f"],["g","h"]]]]
// with string leaves at depth 4.
func fixture() *Node[string] {
	return Branch(
		Branch(
			Branch(BranchOf("a", "b"), BranchOf("c")),
			Branch(BranchOf("d", "e")),
		),
		Branch(
			Branch(BranchOf("f"), BranchOf("g", "h")),
		),
	)
}

func TestEnumAtDepth_Depth1(t *testing.T) {
	tree := fixture()
	placed, err := EnumAtDepth(tree, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(placed) != 2 {
		t.Fatalf("expected 2 items at depth 1, got %d", len(placed))
	}
	for i, p := range placed {
		if len(p.Addr) != 1 || p.Addr[0] != i {
			t.Errorf("item %d: expected address (%d), got %v", i, i, p.Addr)
		}
		if p.Item != tree.Children()[i] {
			t.Errorf("item %d: expected the subtree itself, got a different node", i)
		}
	}
}

func TestEnumAtDepth_Depth3(t *testing.T) {
	tree := fixture()
	placed, err := EnumAtDepth(tree, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []struct {
		addr   Address
		leaves []string
	}{
		{Address{0, 0, 0}, []string{"a", "b"}},
		{Address{0, 0, 1}, []string{"c"}},
		{Address{0, 1, 0}, []string{"d", "e"}},
		{Address{1, 0, 0}, []string{"f"}},
		{Address{1, 0, 1}, []string{"g", "h"}},
	}
	if len(placed) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(placed))
	}
	for i, w := range want {
		got := placed[i]
		if got.Addr.String() != w.addr.String() {
			t.Errorf("item %d: expected address %v, got %v", i, w.addr, got.Addr)
		}
		if !Equal(got.Item, BranchOf(w.leaves...)) {
			t.Errorf("item %d: expected leaves %v", i, w.leaves)
		}
	}
}

func TestEnumAtDepth_Depth4LeafOrder(t *testing.T) {
	placed, err := EnumAtDepth(fixture(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantValues := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	wantAddrs := []string{
		"(0, 0, 0, 0)", "(0, 0, 0, 1)", "(0, 0, 1, 0)", "(0, 1, 0, 0)",
		"(0, 1, 0, 1)", "(1, 0, 0, 0)", "(1, 0, 1, 0)", "(1, 0, 1, 1)",
	}
	if len(placed) != len(wantValues) {
		t.Fatalf("expected %d leaves, got %d", len(wantValues), len(placed))
	}
	for i, p := range placed {
		if !p.Item.IsLeaf() || p.Item.Value() != wantValues[i] {
			t.Errorf("item %d: expected leaf %q, got %q", i, wantValues[i], p.Item.Value())
		}
		if p.Addr.String() != wantAddrs[i] {
			t.Errorf("item %d: expected address %s, got %s", i, wantAddrs[i], p.Addr)
		}
	}
}

func TestIterAtDepth_ProjectsEnumInOrder(t *testing.T) {
	tree := fixture()
	for depth := 1; depth <= 4; depth++ {
		placed, err := EnumAtDepth(tree, depth)
		if err != nil {
			t.Fatalf("depth %d: unexpected enum error: %v", depth, err)
		}
		items, err := IterAtDepth(tree, depth)
		if err != nil {
			t.Fatalf("depth %d: unexpected iter error: %v", depth, err)
		}
		if len(items) != len(placed) {
			t.Fatalf("depth %d: expected %d items, got %d", depth, len(placed), len(items))
		}
		for i := range items {
			if items[i] != placed[i].Item {
				t.Errorf("depth %d item %d: iter and enum disagree", depth, i)
			}
		}
	}
}

func TestEnumAtDepth_InvalidDepth(t *testing.T) {
	tree := fixture()
	for _, depth := range []int{-1, 0, 6, 100} {
		if _, err := EnumAtDepth(tree, depth); !errors.Is(err, ErrInvalidDepth) {
			t.Errorf("EnumAtDepth depth %d: expected ErrInvalidDepth, got %v", depth, err)
		}
		if _, err := IterAtDepth(tree, depth); !errors.Is(err, ErrInvalidDepth) {
			t.Errorf("IterAtDepth depth %d: expected ErrInvalidDepth, got %v", depth, err)
		}
	}

	_, err := EnumAtDepth(tree, 0)
	var derr *DepthError
	if !errors.As(err, &derr) {
		t.Fatalf("expected *DepthError, got %T", err)
	}
	if derr.Depth != 0 {
		t.Errorf("expected Depth 0 in error, got %d", derr.Depth)
	}
	// The message must name the valid range.
	if msg := err.Error(); msg != "depth 0 out of range: depth must be 1 through 5" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestEnumAtDepth_EmptyBranches(t *testing.T) {
	// A tree of empty branches has nothing at any depth but never errors.
	tree := Branch(Branch[string](), Branch[string]())
	for depth := 1; depth <= 5; depth++ {
		placed, err := EnumAtDepth(tree, depth)
		if err != nil {
			t.Fatalf("depth %d: unexpected error: %v", depth, err)
		}
		if depth == 1 {
			if len(placed) != 2 {
				t.Errorf("depth 1: expected the 2 empty branches, got %d items", len(placed))
			}
		} else if len(placed) != 0 {
			t.Errorf("depth %d: expected no items, got %d", depth, len(placed))
		}
	}
}

func TestEnumAtDepth_DoesNotMutate(t *testing.T) {
	tree := fixture()
	snapshot := tree.Clone()
	if _, err := EnumAtDepth(tree, 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Equal(tree, snapshot) {
		t.Error("enumeration mutated the input tree")
	}
}

func TestAddress_String(t *testing.T) {
	tests := []struct {
		addr Address
		want string
	}{
		{Address{}, "()"},
		{Address{3}, "(3)"},
		{Address{0, 0, 1, 0}, "(0, 0, 1, 0)"},
	}
	for _, tt := range tests {
		if got := tt.addr.String(); got != tt.want {
			t.Errorf("Address%v: expected %q, got %q", []int(tt.addr), tt.want, got)
		}
	}
}

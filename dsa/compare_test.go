package dsa

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want int
	}{
		{"less", 1, 2, -1},
		{"greater", 2, 1, 1},
		{"equal", 3, 3, 0},
		{"negative", -5, 5, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCompareStrings(t *testing.T) {
	if got := Compare("a", "b"); got >= 0 {
		t.Errorf("Compare(a, b) = %d, want negative", got)
	}
	if got := Compare("ba", "b"); got <= 0 {
		t.Errorf("Compare(ba, b) = %d, want positive", got)
	}
}

func TestNatural(t *testing.T) {
	cmp := Natural[float64]()
	if cmp(1.5, 2.5) >= 0 || cmp(2.5, 1.5) <= 0 || cmp(2.5, 2.5) != 0 {
		t.Error("Natural comparator does not follow the < relation")
	}
}

func TestDescending(t *testing.T) {
	cmp := Descending[int]()
	if cmp(1, 2) <= 0 {
		t.Error("Descending comparator should order 2 before 1")
	}
	if cmp(2, 1) >= 0 {
		t.Error("Descending comparator should order 2 before 1")
	}
	if cmp(7, 7) != 0 {
		t.Error("Descending comparator should treat equal values as equal")
	}
}

func TestReverse(t *testing.T) {
	cmp := Natural[int]()
	rev := Reverse(cmp)
	for _, pair := range [][2]int{{1, 2}, {2, 1}, {4, 4}} {
		a, b := pair[0], pair[1]
		if got, want := rev(a, b), cmp(b, a); got != want {
			t.Errorf("Reverse(cmp)(%d, %d) = %d, want %d", a, b, got, want)
		}
	}
	// Reversing twice restores the original order.
	twice := Reverse(rev)
	if twice(1, 2) != cmp(1, 2) {
		t.Error("Reverse(Reverse(cmp)) should match cmp")
	}
}

func TestBy(t *testing.T) {
	type person struct {
		name string
		age  int
	}
	byAge := By(func(p person) int { return p.age })
	alice := person{"alice", 30}
	bob := person{"bob", 25}
	if byAge(alice, bob) <= 0 {
		t.Error("By(age) should order bob (25) before alice (30)")
	}
	if byAge(bob, alice) >= 0 {
		t.Error("By(age) should order bob (25) before alice (30)")
	}
	if byAge(alice, person{"carol", 30}) != 0 {
		t.Error("By(age) should treat equal ages as equal")
	}

	oldestFirst := Reverse(byAge)
	if oldestFirst(alice, bob) >= 0 {
		t.Error("Reverse(By(age)) should order alice (30) before bob (25)")
	}
}

package extract

import (
	"testing"

	"github.com/sysarch/reportgen/pkg/model"
)

func comp(name string, props map[string]model.Value, children ...*model.Component) *model.Component {
	c := &model.Component{Name: name}
	// map iteration order is fine here; ordering assertions use one property
	for k, v := range props {
		c.Props.Set(k, v)
	}
	if len(children) > 0 {
		c.Sub = &model.Architecture{Components: children}
	}
	return c
}

func tree(components ...*model.Component) *model.Architecture {
	return &model.Architecture{Components: components}
}

func TestGroupsExcludesComponentsWithoutOccurrenceNumber(t *testing.T) {
	root := tree(
		comp("Frame", map[string]model.Value{"Mass": model.Number(10)}),
		comp("Wheel", map[string]model.Value{"OccurrenceNumber": model.String("W-01")}),
		comp("Blank", map[string]model.Value{"OccurrenceNumber": model.String("  ")}),
	)

	groups := Groups(root)
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	if groups[0].Key != "W-01" {
		t.Errorf("key = %q", groups[0].Key)
	}
}

func TestGroupingMatchesBothSpellingsCaseInsensitively(t *testing.T) {
	root := tree(
		comp("A", map[string]model.Value{"occurrencenumber": model.String("K-1")}),
		comp("B", map[string]model.Value{"OCCURANCENUMBER": model.String("K-1")}),
		comp("C", map[string]model.Value{"MyOccurrenceNumberTag": model.String("K-2")}),
	)

	groups := Groups(root)
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if len(groups[0].Members) != 2 {
		t.Errorf("K-1 members = %d, want 2", len(groups[0].Members))
	}
	if groups[1].Key != "K-2" {
		t.Errorf("second key = %q", groups[1].Key)
	}
}

func TestGroupingIsPositionInsensitive(t *testing.T) {
	deep := comp("Bolt", map[string]model.Value{"OccurrenceNumber": model.String("B-9")})
	mid := comp("Bracket", map[string]model.Value{"OccurrenceNumber": model.String("B-9")}, deep)
	root := tree(comp("Assembly", nil, mid))

	groups := Groups(root)
	if len(groups) != 1 || len(groups[0].Members) != 2 {
		t.Fatalf("groups = %+v", groups)
	}
	// DFS order: parent before child
	if groups[0].Members[0].Name != "Bracket" || groups[0].Members[1].Name != "Bolt" {
		t.Errorf("member order = %s, %s", groups[0].Members[0].Name, groups[0].Members[1].Name)
	}
}

func TestGroupsSortedByKey(t *testing.T) {
	root := tree(
		comp("Z", map[string]model.Value{"OccurrenceNumber": model.String("ZZ-1")}),
		comp("A", map[string]model.Value{"OccurrenceNumber": model.String("AA-1")}),
		comp("M", map[string]model.Value{"OccurrenceNumber": model.String("MM-1")}),
	)

	groups := Groups(root)
	want := []string{"AA-1", "MM-1", "ZZ-1"}
	for i, g := range groups {
		if g.Key != want[i] {
			t.Errorf("groups[%d].Key = %q, want %q", i, g.Key, want[i])
		}
	}
}

func TestFirstNonEmptyPartNumberWins(t *testing.T) {
	root := tree(
		comp("First", map[string]model.Value{"OccurrenceNumber": model.String("P-1"), "PartNumber": model.String("")}),
		comp("Second", map[string]model.Value{"OccurrenceNumber": model.String("P-1"), "PartNumber": model.String("PN-100")}),
		comp("Third", map[string]model.Value{"OccurrenceNumber": model.String("P-1"), "PartNumber": model.String("PN-200")}),
	)

	groups := Groups(root)
	if groups[0].PartNumber != "PN-100" {
		t.Errorf("PartNumber = %q, want PN-100", groups[0].PartNumber)
	}
}

func TestNumericOccurrenceKeyRendersAsText(t *testing.T) {
	root := tree(comp("N", map[string]model.Value{"OccurrenceNumber": model.Number(101)}))
	groups := Groups(root)
	if len(groups) != 1 || groups[0].Key != "101" {
		t.Fatalf("groups = %+v", groups)
	}
}

func TestRemainingPropertiesRetainedUnderSanitizedNames(t *testing.T) {
	root := tree(comp("C", map[string]model.Value{
		"OccurrenceNumber": model.String("S-1"),
		"Mass":             model.Number(3),
		"Unit Cost (EUR)":  model.Number(9),
	}))

	m := Groups(root)[0].Members[0]
	if v, ok := m.Props.Get("Mass"); !ok || v.Num != 3 {
		t.Errorf("Mass = %+v, %v", v, ok)
	}
	if v, ok := m.Props.Get("Unit_Cost__EUR_"); !ok || v.Num != 9 {
		t.Errorf("sanitized cost = %+v, %v", v, ok)
	}
	if _, ok := m.Props.Get("OccurrenceNumber"); ok {
		t.Error("grouping key should not be retained as a plain property")
	}
}

func TestSanitizeName(t *testing.T) {
	cases := map[string]string{
		"Mass":          "Mass",
		"Unit Cost":     "Unit_Cost",
		"3rdProp":       "p_3rdProp",
		"-lead":         "_lead",
		"":              "p_",
		"Über-Wert":     "_ber_Wert",
		"_already_safe": "_already_safe",
	}
	for in, want := range cases {
		if got := SanitizeName(in); got != want {
			t.Errorf("SanitizeName(%q) = %q, want %q", in, got, want)
		}
	}
}

package dfgraph

import "testing"

func TestKindHasAndAny(t *testing.T) {
	k := Result | Var
	if !k.Has(Result) || !k.Has(Var) {
		t.Errorf("Has: %v should include Result and Var", k)
	}
	if k.Has(Result | Generative) {
		t.Errorf("Has: %v should not include Generative", k)
	}
	if !k.Any(Generative | Var) {
		t.Errorf("Any: %v should match on the Var bit", k)
	}
}

func TestKindString(t *testing.T) {
	cases := []struct {
		k    Kind
		want string
	}{
		{0, "none"},
		{Const, "const"},
		{Result | Var, "var|result"},
		{Result | Generative, "generative|result"},
	}
	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Errorf("Kind(%d).String() = %q, want %q", c.k, got, c.want)
		}
	}
}

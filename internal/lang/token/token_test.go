package token

import "testing"

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{If, "IF"},
		{Ident, "VAR"},
		{Num, "NUM"},
		{Colon, "COL"},
		{Comma, "COM"},
		{Return, "RET"},
		{Newline, "NEWLINE"},
		{EOF, "EOF"},
		{Kind(99), "Kind(99)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		text string
		want Kind
	}{
		{"def", Def},
		{"return", Return},
		{"end", End},
		{"while", While},
		{"if", If},
		{"print", Print},
		{"read", Read},
		{"ifx", Ident},
		{"Print", Ident},
		{"x", Ident},
	}

	for _, tt := range tests {
		if got := Lookup(tt.text); got != tt.want {
			t.Errorf("Lookup(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestKind_Predicates(t *testing.T) {
	for _, k := range []Kind{Eq, Ne, Ge, Le, Gt, Lt} {
		if !k.IsRelational() {
			t.Errorf("%v.IsRelational() = false, want true", k)
		}
	}
	for _, k := range []Kind{Assign, Plus, Colon, Ident} {
		if k.IsRelational() {
			t.Errorf("%v.IsRelational() = true, want false", k)
		}
	}
	for _, k := range []Kind{Def, Return, End, While, If, Print, Read} {
		if !k.IsKeyword() {
			t.Errorf("%v.IsKeyword() = false, want true", k)
		}
		if Lookup(k.Symbol()) != k {
			t.Errorf("Lookup(%v.Symbol()) = %v", k, Lookup(k.Symbol()))
		}
	}
	if Ident.IsKeyword() {
		t.Error("Ident.IsKeyword() = true, want false")
	}
}

func TestToken_String(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
		desc string
	}{
		{Token{Kind: Ident, Text: "a"}, "VAR(a)", `identifier "a"`},
		{Token{Kind: Num, Value: 42}, "NUM(42)", "number 42"},
		{Token{Kind: Invalid, Text: "$"}, `INVALID("$")`, "invalid character '$'"},
		{Token{Kind: Colon}, "COL", "':'"},
		{Token{Kind: Newline}, "NEWLINE", "newline"},
		{Token{Kind: EOF}, "EOF", "end of input"},
	}

	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := tt.tok.Describe(); got != tt.desc {
			t.Errorf("Describe() = %q, want %q", got, tt.desc)
		}
	}
}

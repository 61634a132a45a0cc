package contentstream

import (
	"testing"
)

func TestParseOperators(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		operators []string
	}{
		{"single", "q", []string{"q"}},
		{"path", "10 20 m 30 40 l S", []string{"m", "l", "S"}},
		{"star operators", "f* B* b*", []string{"f*", "B*", "b*"}},
		{"digits in operator", "0 0 d0 1 0 0 0 10 10 d1", []string{"d0", "d1"}},
		{"quote operators", "(a) ' 1 2 (b) \"", []string{"'", "\""}},
		{"comments", "q % save\n1 w %width\nQ", []string{"q", "w", "Q"}},
		{"empty", "", nil},
		{"whitespace only", " \n\t\r ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops, err := NewParser([]byte(tt.input)).Parse()
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(ops) != len(tt.operators) {
				t.Fatalf("expected %d operations, got %d: %+v", len(tt.operators), len(ops), ops)
			}
			for i, want := range tt.operators {
				if ops[i].Operator != want {
					t.Errorf("op %d = %q, want %q", i, ops[i].Operator, want)
				}
			}
		})
	}
}

func TestParseNumbers(t *testing.T) {
	ops, err := NewParser([]byte("1 -2 +3 4.5 -.25 7. cm")).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ops) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(ops))
	}

	want := []Object{Int(1), Int(-2), Int(3), Real(4.5), Real(-0.25), Real(7)}
	got := ops[0].Operands
	if len(got) != len(want) {
		t.Fatalf("expected %d operands, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("operand %d = %#v, want %#v", i, got[i], want[i])
		}
	}

	vals, ok := Numbers(got)
	if !ok || vals[3] != 4.5 || vals[1] != -2 {
		t.Errorf("Numbers() = %v, %v", vals, ok)
	}
}

func TestParseStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  String
	}{
		{"literal", "(Hello) Tj", "Hello"},
		{"nested parens", "(a (b) c) Tj", "a (b) c"},
		{"escapes", `(a\nb\)\\) Tj`, "a\nb)\\"},
		{"octal", `(\101\102) Tj`, "AB"},
		{"line continuation", "(ab\\\ncd) Tj", "abcd"},
		{"hex", "<48656C6C6F> Tj", "Hello"},
		{"hex odd", "<414> Tj", "A@"},
		{"hex spaced", "<48 69> Tj", "Hi"},
		{"hex odd spaced", "<41 4 > Tj", "A@"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops, err := NewParser([]byte(tt.input)).Parse()
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			s, ok := ops[0].Operands[0].(String)
			if !ok {
				t.Fatalf("expected String, got %T", ops[0].Operands[0])
			}
			if s != tt.want {
				t.Errorf("got %q, want %q", s, tt.want)
			}
		})
	}
}

func TestParseOddHexStringThenOperators(t *testing.T) {
	ops, err := NewParser([]byte("<414> Tj 0 0 m")).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("expected 2 operations, got %d", len(ops))
	}
	if ops[1].Operator != "m" {
		t.Errorf("second operator = %q, want m", ops[1].Operator)
	}
}

func TestParseArrayAndName(t *testing.T) {
	ops, err := NewParser([]byte("/F1 12 Tf [(A) -120 (B)] TJ /Na#6De Do")).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ops) != 3 {
		t.Fatalf("expected 3 operations, got %d", len(ops))
	}

	if ops[0].Operands[0] != Name("F1") {
		t.Errorf("font name = %v", ops[0].Operands[0])
	}

	arr, ok := ops[1].Operands[0].(Array)
	if !ok || len(arr) != 3 {
		t.Fatalf("expected 3-element array, got %#v", ops[1].Operands[0])
	}
	if arr[1] != Int(-120) {
		t.Errorf("kerning = %v", arr[1])
	}

	if ops[2].Operands[0] != Name("Name") {
		t.Errorf("escaped name = %v", ops[2].Operands[0])
	}
}

func TestParseKeywordsAsOperands(t *testing.T) {
	ops, err := NewParser([]byte("true false null [true null] op")).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ops) != 1 || ops[0].Operator != "op" {
		t.Fatalf("expected single op, got %+v", ops)
	}
	got := ops[0].Operands
	if len(got) != 4 {
		t.Fatalf("expected 4 operands, got %d", len(got))
	}
	if got[0] != Bool(true) || got[1] != Bool(false) || got[2] != (Null{}) {
		t.Errorf("unexpected keyword operands %v", got)
	}
	if arr := got[3].(Array); arr[0] != Bool(true) || arr[1] != (Null{}) {
		t.Errorf("unexpected array %v", arr)
	}
}

func TestParseDict(t *testing.T) {
	ops, err := NewParser([]byte("/Span <</MCID 3 /Lang (en)>> BDC EMC")).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("expected 2 operations, got %d", len(ops))
	}
	d, ok := ops[0].Operands[1].(Dict)
	if !ok {
		t.Fatalf("expected Dict, got %T", ops[0].Operands[1])
	}
	if d["MCID"] != Int(3) {
		t.Errorf("MCID = %v", d["MCID"])
	}
	if got := d.String(); got != "<</Lang en /MCID 3>>" {
		t.Errorf("Dict.String() = %q", got)
	}
}

func TestParseInlineImage(t *testing.T) {
	input := "q 10 0 0 10 0 0 cm BI /W 2 /H 2 /BPC 8 /CS /G /IM false ID \x00EI\xff\x10 EI Q 0 0 m"
	ops, err := NewParser([]byte(input)).Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []string{"q", "cm", "BI", "Q", "m"}
	if len(ops) != len(want) {
		t.Fatalf("expected %d operations, got %d: %+v", len(want), len(ops), ops)
	}
	for i, w := range want {
		if ops[i].Operator != w {
			t.Errorf("op %d = %q, want %q", i, ops[i].Operator, w)
		}
	}

	params := ops[2].Operands[0].(Dict)
	if params["W"] != Int(2) || params["CS"] != Name("G") {
		t.Errorf("unexpected inline image params %v", params)
	}
}

func TestParseOperandsDoNotLeak(t *testing.T) {
	p := NewParser([]byte("1 2 m 3 4 l"))
	ops, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ops[0].Operands[0] = Int(99)
	if ops[1].Operands[0] != Int(3) {
		t.Errorf("operands are shared between operations: %v", ops[1].Operands)
	}

	// Independent parsers keep independent operand stacks
	a := NewParser([]byte("5 6"))
	if _, err := a.Parse(); err != nil {
		t.Fatal(err)
	}
	b, err := NewParser([]byte("h")).Parse()
	if err != nil {
		t.Fatal(err)
	}
	if len(b[0].Operands) != 0 {
		t.Errorf("trailing operands from another parser leaked: %v", b[0].Operands)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unclosed string", "(abc Tj"},
		{"unclosed array", "[1 2 TJ"},
		{"bad hex", "<4G> Tj"},
		{"stray delimiter", ") Tj"},
		{"missing EI", "BI /W 1 ID abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewParser([]byte(tt.input)).Parse(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

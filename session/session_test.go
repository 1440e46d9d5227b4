package session

import (
	"errors"
	"reflect"
	"testing"
)

const sample = `v=0
o=alice 42 3735928559 198.51.100.4
s=bulk transfer
c=198.51.100.4
a=reliable
m=control 5000 1
a=ordered
m=files 5001 8
a=unordered
a=partial
`

func TestParse_Full(t *testing.T) {
	t.Parallel()
	d, err := Parse(sample)
	if err != nil {
		t.Fatal(err)
	}
	want := &Description{
		Version: 0,
		Origin: Origin{
			Username:  "alice",
			SessionID: 42,
			TagSeed:   3735928559,
			Address:   "198.51.100.4",
		},
		Name:       "bulk transfer",
		Connection: "198.51.100.4",
		Attributes: []string{"reliable"},
		Media: []Media{
			{Label: "control", Port: 5000, Streams: 1, Attributes: []string{"ordered"}},
			{Label: "files", Port: 5001, Streams: 8, Attributes: []string{"unordered", "partial"}},
		},
	}
	if !reflect.DeepEqual(d, want) {
		t.Errorf("description mismatch:\n got %#v\nwant %#v", d, want)
	}
}

func TestParse_CRLFAndBlankLines(t *testing.T) {
	t.Parallel()
	d, err := Parse("v=0\r\n\r\no=bob 1 2 host\r\ns=x\r\n")
	if err != nil {
		t.Fatal(err)
	}
	if d.Origin.Username != "bob" || d.Name != "x" {
		t.Errorf("parsed %#v", d)
	}
}

func TestParse_UnknownKeysIgnored(t *testing.T) {
	t.Parallel()
	d, err := Parse("v=0\no=bob 1 2 host\ns=x\nz=whatever\n")
	if err != nil {
		t.Fatal(err)
	}
	if d.Name != "x" {
		t.Errorf("Name = %q", d.Name)
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		text string
		want error
		line int
	}{
		{"empty input", "", ErrMissingField, 0},
		{"missing version first", "o=bob 1 2 host\n", ErrMissingField, 1},
		{"duplicate version", "v=0\nv=0\n", ErrSyntax, 2},
		{"bad version", "v=-1\no=bob 1 2 host\ns=x\n", ErrSyntax, 1},
		{"no equals", "v=0\njunk\n", ErrSyntax, 2},
		{"origin field count", "v=0\no=bob 1 2\ns=x\n", ErrSyntax, 2},
		{"origin bad seed", "v=0\no=bob 1 notanum host\ns=x\n", ErrSyntax, 2},
		{"empty name", "v=0\no=bob 1 2 host\ns=\n", ErrSyntax, 3},
		{"media before name", "v=0\no=bob 1 2 host\nm=c 1 1\n", ErrMissingField, 3},
		{"media bad port", "v=0\no=bob 1 2 host\ns=x\nm=c 70000 1\n", ErrSyntax, 4},
		{"missing origin", "v=0\ns=x\n", ErrMissingField, 2},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tc.text)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatal("error is not a *ParseError")
			}
			if pe.Line != tc.line {
				t.Errorf("Line = %d, want %d", pe.Line, tc.line)
			}
		})
	}
}

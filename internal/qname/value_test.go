package qname

import "testing"

func lookupFrom(bindings map[string]string) func(string) (string, bool) {
	return func(prefix string) (string, bool) {
		ns, ok := bindings[prefix]
		if !ok && prefix == "" {
			return "", true
		}
		return ns, ok
	}
}

func TestResolve(t *testing.T) {
	lookup := lookupFrom(map[string]string{"p": "urn:test", "": "urn:default"})
	tests := []struct {
		in     string
		want   QName
		wantOK bool
	}{
		{in: "p:item", want: QName{Namespace: "urn:test", Local: "item"}, wantOK: true},
		{in: " item ", want: QName{Namespace: "urn:default", Local: "item"}, wantOK: true},
		{in: "q:item", want: QName{Local: "item"}, wantOK: false},
		{in: "", want: QName{}, wantOK: false},
	}
	for _, tt := range tests {
		got, ok := Resolve(tt.in, lookup)
		if got != tt.want || ok != tt.wantOK {
			t.Fatalf("Resolve(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestResolveWithoutDefaultNamespace(t *testing.T) {
	got, ok := Resolve("item", lookupFrom(nil))
	if !ok || got != (QName{Local: "item"}) {
		t.Fatalf("Resolve(item) = %v, %v, want item, true", got, ok)
	}
}

func TestQNameString(t *testing.T) {
	if got := (QName{Namespace: "urn:x", Local: "a"}).String(); got != "{urn:x}a" {
		t.Fatalf("String() = %q, want {urn:x}a", got)
	}
	if got := (QName{Local: "a"}).String(); got != "a" {
		t.Fatalf("String() = %q, want a", got)
	}
	if !(QName{}).IsZero() {
		t.Fatalf("IsZero() = false, want true")
	}
}

package qname

import "strings"

// QName is a namespace-qualified name.
type QName struct {
	Namespace string
	Local     string
}

// String returns the QName in {namespace}local format, or just local if no namespace.
func (q QName) String() string {
	if q.Namespace == "" {
		return q.Local
	}
	return "{" + q.Namespace + "}" + q.Local
}

// IsZero reports whether the QName is the zero value.
func (q QName) IsZero() bool {
	return q.Namespace == "" && q.Local == ""
}

// Split splits a lexical QName into prefix and local part after trimming.
func Split(lexical string) (prefix, local string, hasPrefix bool) {
	trimmed := strings.TrimSpace(lexical)
	prefix, local, hasPrefix = strings.Cut(trimmed, ":")
	if !hasPrefix {
		return "", trimmed, false
	}
	return prefix, local, true
}

// Resolve turns a lexical QName into a QName using lookup for prefix bindings.
// Unprefixed names take the default namespace. An unbound prefix yields a
// QName without namespace and ok == false.
func Resolve(lexical string, lookup func(prefix string) (string, bool)) (QName, bool) {
	prefix, local, _ := Split(lexical)
	if local == "" {
		return QName{}, false
	}
	ns, ok := lookup(prefix)
	if !ok {
		return QName{Local: local}, false
	}
	return QName{Namespace: ns, Local: local}, true
}

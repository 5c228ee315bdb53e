package xmlcursor

import "encoding/xml"

// Reserved namespaces.
const (
	XMLNamespace   = "http://www.w3.org/XML/1998/namespace"
	XMLNSNamespace = "http://www.w3.org/2000/xmlns/"

	xmlnsPrefix = "xmlns"
	xmlPrefix   = "xml"
)

type nsScope struct {
	prefixes   map[string]string
	defaultNS  string
	defaultSet bool
}

type nsStack struct {
	scopes []nsScope
}

func (s *nsStack) push(scope nsScope) {
	s.scopes = append(s.scopes, scope)
}

func (s *nsStack) pop() {
	if len(s.scopes) == 0 {
		return
	}
	s.scopes = s.scopes[:len(s.scopes)-1]
}

func (s *nsStack) depth() int {
	return len(s.scopes)
}

func (s *nsStack) lookup(prefix string) (string, bool) {
	if prefix == xmlPrefix {
		return XMLNamespace, true
	}
	if prefix == "" {
		for i := len(s.scopes) - 1; i >= 0; i-- {
			if s.scopes[i].defaultSet {
				return s.scopes[i].defaultNS, true
			}
		}
		// no default namespace declared; use empty namespace.
		return "", true
	}
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if ns, ok := s.scopes[i].prefixes[prefix]; ok {
			return ns, true
		}
	}
	return "", false
}

// scopeFromAttrs collects namespace declarations as left by encoding/xml:
// xmlns:p keeps Space "xmlns", the default declaration is Local "xmlns".
func scopeFromAttrs(attrs []xml.Attr) nsScope {
	scope := nsScope{}
	for _, attr := range attrs {
		switch {
		case attr.Name.Space == "" && attr.Name.Local == xmlnsPrefix:
			scope.defaultNS = attr.Value
			scope.defaultSet = true
		case attr.Name.Space == xmlnsPrefix || attr.Name.Space == XMLNSNamespace:
			if attr.Name.Local == xmlPrefix || attr.Name.Local == xmlnsPrefix {
				continue
			}
			if scope.prefixes == nil {
				scope.prefixes = make(map[string]string, 2)
			}
			scope.prefixes[attr.Name.Local] = attr.Value
		}
	}
	return scope
}

func lookupAttr(attrs []xml.Attr, namespace, local string) (string, bool) {
	for _, attr := range attrs {
		if attr.Name.Local == local && attr.Name.Space == namespace {
			return attr.Value, true
		}
	}
	return "", false
}

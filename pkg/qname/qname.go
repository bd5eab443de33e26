package qname

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jacoelho/xbrl/internal/xmlnames"
)

// QName is a resolved name: a namespace URI (possibly empty) plus a local part.
type QName struct {
	Namespace string
	Local     string
}

// New builds a QName from a namespace URI and a local part.
func New(namespace, local string) QName {
	return QName{Namespace: namespace, Local: local}
}

// String renders the QName in Clark notation: {namespace}local.
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

// Parse splits a lexical QName into prefix and local part.
func Parse(lexical string) (prefix, local string, hasPrefix bool, err error) {
	if lexical == "" {
		return "", "", false, fmt.Errorf("invalid QName: empty string")
	}
	idx := strings.IndexByte(lexical, ':')
	if idx < 0 {
		return "", lexical, false, nil
	}
	prefix, local = lexical[:idx], lexical[idx+1:]
	if prefix == "" || local == "" {
		return "", "", false, fmt.Errorf("invalid QName %q", lexical)
	}
	if strings.IndexByte(local, ':') >= 0 {
		return "", "", false, fmt.Errorf("invalid QName %q: multiple colons", lexical)
	}
	return prefix, local, true, nil
}

// Resolve parses a QName lexical value and resolves its prefix against the
// in-scope prefix bindings. The empty map key is the default namespace
// binding, which applies to unprefixed QName content.
func Resolve(lexical string, scope map[string]string) (QName, error) {
	trimmed := strings.TrimSpace(lexical)
	if trimmed == "" {
		return QName{}, fmt.Errorf("invalid QName: empty string")
	}

	prefix, local, hasPrefix, err := Parse(trimmed)
	if err != nil {
		return QName{}, err
	}

	if !hasPrefix {
		return QName{Namespace: scope[""], Local: local}, nil
	}
	if prefix == xmlnames.XMLPrefix {
		if bound, ok := scope[prefix]; ok && bound != xmlnames.XMLNamespace {
			return QName{}, fmt.Errorf("prefix %s must be bound to %s", xmlnames.XMLPrefix, xmlnames.XMLNamespace)
		}
		return QName{Namespace: xmlnames.XMLNamespace, Local: local}, nil
	}
	namespace, ok := scope[prefix]
	if !ok {
		return QName{}, fmt.Errorf("prefix %s not found in namespace context", prefix)
	}
	return QName{Namespace: namespace, Local: local}, nil
}

// Lexical renders a QName back to prefix:local form using the in-scope
// bindings. When no in-scope prefix binds the namespace, fallback supplies
// one; the caller must guarantee the generated prefix does not collide with
// a binding already in scope. A nil fallback makes an unbound namespace an
// error.
func Lexical(q QName, scope map[string]string, fallback func(namespace string) string) (string, error) {
	if q.Local == "" {
		return "", fmt.Errorf("invalid QName %v: empty local part", q)
	}
	if q.Namespace == "" {
		if def, ok := scope[""]; ok && def != "" {
			return "", fmt.Errorf("cannot render %s: default namespace %s is in scope", q.Local, def)
		}
		return q.Local, nil
	}
	if q.Namespace == xmlnames.XMLNamespace {
		return xmlnames.XMLPrefix + ":" + q.Local, nil
	}
	if scope[""] == q.Namespace {
		return q.Local, nil
	}

	prefixes := make([]string, 0, len(scope))
	for prefix, namespace := range scope {
		if prefix != "" && namespace == q.Namespace {
			prefixes = append(prefixes, prefix)
		}
	}
	if len(prefixes) > 0 {
		// Deterministic choice when several prefixes bind the namespace.
		sort.Strings(prefixes)
		return prefixes[0] + ":" + q.Local, nil
	}

	if fallback == nil {
		return "", fmt.Errorf("no prefix in scope for namespace %s", q.Namespace)
	}
	prefix := fallback(q.Namespace)
	if prefix == "" {
		return "", fmt.Errorf("fallback produced empty prefix for namespace %s", q.Namespace)
	}
	if bound, ok := scope[prefix]; ok && bound != q.Namespace {
		return "", fmt.Errorf("fallback prefix %s already bound to %s", prefix, bound)
	}
	return prefix + ":" + q.Local, nil
}

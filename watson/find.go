package watson

import "github.com/tidwall/gjson"

const textKey = "text"

// FindTextAttribute walks a JSON document depth-first and returns the first
// string stored under a "text" key. An object's own "text" key is checked
// before any of its children.
func FindTextAttribute(node gjson.Result) (string, bool) {
	switch {
	case node.IsObject():
		if text := node.Get(textKey); text.Type == gjson.String {
			return text.Str, true
		}
		return findInChildren(node)
	case node.IsArray():
		return findInChildren(node)
	default:
		return "", false
	}
}

func findInChildren(node gjson.Result) (string, bool) {
	var found string
	var ok bool
	node.ForEach(func(_, value gjson.Result) bool {
		found, ok = FindTextAttribute(value)
		return !ok
	})
	return found, ok
}

package types

import "fmt"

// OutputKind tags a unit of renderable terminal content
type OutputKind string

const (
	KindText     OutputKind = "text"     // plain text, animated line by line
	KindMarkup   OutputKind = "markup"   // rich block, rendered through glamour
	KindEcho     OutputKind = "echo"     // prompt + command echo, never animated
	KindError    OutputKind = "error"
	KindSuccess  OutputKind = "success"
	KindWarning  OutputKind = "warning"
	KindBanner   OutputKind = "banner"   // preformatted art block
	KindClear    OutputKind = "clear"
	KindGreeting OutputKind = "greeting" // scramble-reveal banner
	KindPrompt   OutputKind = "prompt"   // scramble-reveal prompt change
	KindMenu     OutputKind = "menu"
	KindRaw      OutputKind = "raw"      // legacy untyped payload, see Normalize
)

// OutputItem is a single unit of renderable terminal content. Command
// handlers return sequences of these; the view dispatches on Kind.
type OutputItem struct {
	Kind    OutputKind
	Content string
	// Class is an optional presentation hint (a theme style name)
	Class string
	// Fields carries the original payload for KindRaw items
	Fields map[string]interface{}
}

// Constructors for the common kinds

func Text(content string) OutputItem    { return OutputItem{Kind: KindText, Content: content} }
func Markup(content string) OutputItem  { return OutputItem{Kind: KindMarkup, Content: content} }
func Error(content string) OutputItem   { return OutputItem{Kind: KindError, Content: content} }
func Success(content string) OutputItem { return OutputItem{Kind: KindSuccess, Content: content} }
func Warning(content string) OutputItem { return OutputItem{Kind: KindWarning, Content: content} }
func Banner(content string) OutputItem  { return OutputItem{Kind: KindBanner, Content: content} }
func Menu(content string) OutputItem    { return OutputItem{Kind: KindMenu, Content: content} }

var knownKinds = map[OutputKind]bool{
	KindText: true, KindMarkup: true, KindEcho: true, KindError: true,
	KindSuccess: true, KindWarning: true, KindBanner: true, KindClear: true,
	KindGreeting: true, KindPrompt: true, KindMenu: true, KindRaw: true,
}

// Normalize converts a loosely-typed value into an OutputItem. Handlers are
// not strictly required to tag every output; all the duck-typed inference
// lives here and nowhere else.
//
// Recognized shapes: OutputItem (and pointer), plain string, and a legacy
// map payload with loose fields (error, html, text, message, svg, type).
// Anything else is stringified into plain text.
func Normalize(value interface{}) OutputItem {
	switch v := value.(type) {
	case OutputItem:
		if knownKinds[v.Kind] {
			return v
		}
		v.Kind = KindText
		return v
	case *OutputItem:
		return Normalize(*v)
	case string:
		return Text(v)
	case map[string]interface{}:
		return normalizeLegacy(v)
	default:
		return Text(fmt.Sprintf("%v", value))
	}
}

// NormalizeAll accepts the three shapes a handler may produce (nothing, a
// single item, or a sequence) and returns a uniform slice.
func NormalizeAll(value interface{}) []OutputItem {
	switch v := value.(type) {
	case nil:
		return nil
	case []OutputItem:
		return v
	case []interface{}:
		items := make([]OutputItem, 0, len(v))
		for _, item := range v {
			items = append(items, Normalize(item))
		}
		return items
	case []string:
		items := make([]OutputItem, 0, len(v))
		for _, s := range v {
			items = append(items, Text(s))
		}
		return items
	default:
		return []OutputItem{Normalize(value)}
	}
}

func normalizeLegacy(fields map[string]interface{}) OutputItem {
	str := func(key string) (string, bool) {
		if v, ok := fields[key]; ok {
			if s, ok := v.(string); ok {
				return s, true
			}
		}
		return "", false
	}

	if s, ok := str("error"); ok {
		return OutputItem{Kind: KindError, Content: s, Fields: fields}
	}
	if s, ok := str("svg"); ok {
		return OutputItem{Kind: KindBanner, Content: s, Fields: fields}
	}
	if s, ok := str("html"); ok {
		return OutputItem{Kind: KindMarkup, Content: s, Fields: fields}
	}

	content, hasContent := str("text")
	if !hasContent {
		content, hasContent = str("message")
	}

	if kind, ok := str("type"); ok && hasContent {
		switch OutputKind(kind) {
		case KindSuccess:
			return OutputItem{Kind: KindSuccess, Content: content, Fields: fields}
		case KindWarning:
			return OutputItem{Kind: KindWarning, Content: content, Fields: fields}
		}
	}

	if hasContent {
		return OutputItem{Kind: KindText, Content: content, Fields: fields}
	}

	// Nothing recognizable: keep the payload for debugging
	return OutputItem{Kind: KindRaw, Content: fmt.Sprintf("%v", fields), Fields: fields}
}

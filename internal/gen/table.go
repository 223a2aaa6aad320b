package gen

// TagDef is one row of the tag registry: an HTML tag name and whether
// it is a void element. The registry is configuration consumed by the
// generator; the markup engine itself has no tag knowledge.
type TagDef struct {
	Name  string
	Void  bool
	Group string
}

// Table is the registry of generated tags, in output order. Groups
// become section comments in the generated file.
var Table = []TagDef{
	// Document structure
	{Name: "html", Group: "Document structure"},
	{Name: "head", Group: "Document structure"},
	{Name: "body", Group: "Document structure"},
	{Name: "title", Group: "Document structure"},
	{Name: "meta", Void: true, Group: "Document structure"},
	{Name: "link", Void: true, Group: "Document structure"},
	{Name: "base", Void: true, Group: "Document structure"},

	// Content sectioning
	{Name: "header", Group: "Content sectioning"},
	{Name: "footer", Group: "Content sectioning"},
	{Name: "main", Group: "Content sectioning"},
	{Name: "nav", Group: "Content sectioning"},
	{Name: "section", Group: "Content sectioning"},
	{Name: "article", Group: "Content sectioning"},
	{Name: "aside", Group: "Content sectioning"},
	{Name: "address", Group: "Content sectioning"},
	{Name: "h1", Group: "Content sectioning"},
	{Name: "h2", Group: "Content sectioning"},
	{Name: "h3", Group: "Content sectioning"},
	{Name: "h4", Group: "Content sectioning"},
	{Name: "h5", Group: "Content sectioning"},
	{Name: "h6", Group: "Content sectioning"},
	{Name: "hgroup", Group: "Content sectioning"},

	// Text content
	{Name: "div", Group: "Text content"},
	{Name: "p", Group: "Text content"},
	{Name: "span", Group: "Text content"},
	{Name: "pre", Group: "Text content"},
	{Name: "blockquote", Group: "Text content"},
	{Name: "ul", Group: "Text content"},
	{Name: "ol", Group: "Text content"},
	{Name: "li", Group: "Text content"},
	{Name: "dl", Group: "Text content"},
	{Name: "dt", Group: "Text content"},
	{Name: "dd", Group: "Text content"},
	{Name: "hr", Void: true, Group: "Text content"},
	{Name: "figure", Group: "Text content"},
	{Name: "figcaption", Group: "Text content"},

	// Inline text semantics
	{Name: "a", Group: "Inline text semantics"},
	{Name: "strong", Group: "Inline text semantics"},
	{Name: "em", Group: "Inline text semantics"},
	{Name: "b", Group: "Inline text semantics"},
	{Name: "i", Group: "Inline text semantics"},
	{Name: "u", Group: "Inline text semantics"},
	{Name: "s", Group: "Inline text semantics"},
	{Name: "small", Group: "Inline text semantics"},
	{Name: "mark", Group: "Inline text semantics"},
	{Name: "sub", Group: "Inline text semantics"},
	{Name: "sup", Group: "Inline text semantics"},
	{Name: "code", Group: "Inline text semantics"},
	{Name: "kbd", Group: "Inline text semantics"},
	{Name: "samp", Group: "Inline text semantics"},
	{Name: "var", Group: "Inline text semantics"},
	{Name: "abbr", Group: "Inline text semantics"},
	{Name: "time", Group: "Inline text semantics"},
	{Name: "cite", Group: "Inline text semantics"},
	{Name: "q", Group: "Inline text semantics"},
	{Name: "dfn", Group: "Inline text semantics"},
	{Name: "ruby", Group: "Inline text semantics"},
	{Name: "rt", Group: "Inline text semantics"},
	{Name: "rp", Group: "Inline text semantics"},
	{Name: "bdi", Group: "Inline text semantics"},
	{Name: "bdo", Group: "Inline text semantics"},
	{Name: "data", Group: "Inline text semantics"},
	{Name: "br", Void: true, Group: "Inline text semantics"},
	{Name: "wbr", Void: true, Group: "Inline text semantics"},

	// Forms
	{Name: "form", Group: "Forms"},
	{Name: "input", Void: true, Group: "Forms"},
	{Name: "textarea", Group: "Forms"},
	{Name: "select", Group: "Forms"},
	{Name: "option", Group: "Forms"},
	{Name: "optgroup", Group: "Forms"},
	{Name: "button", Group: "Forms"},
	{Name: "label", Group: "Forms"},
	{Name: "fieldset", Group: "Forms"},
	{Name: "legend", Group: "Forms"},
	{Name: "datalist", Group: "Forms"},
	{Name: "output", Group: "Forms"},
	{Name: "progress", Group: "Forms"},
	{Name: "meter", Group: "Forms"},

	// Tables
	{Name: "table", Group: "Tables"},
	{Name: "thead", Group: "Tables"},
	{Name: "tbody", Group: "Tables"},
	{Name: "tfoot", Group: "Tables"},
	{Name: "tr", Group: "Tables"},
	{Name: "th", Group: "Tables"},
	{Name: "td", Group: "Tables"},
	{Name: "caption", Group: "Tables"},
	{Name: "colgroup", Group: "Tables"},
	{Name: "col", Void: true, Group: "Tables"},

	// Media
	{Name: "img", Void: true, Group: "Media"},
	{Name: "picture", Group: "Media"},
	{Name: "source", Void: true, Group: "Media"},
	{Name: "video", Group: "Media"},
	{Name: "audio", Group: "Media"},
	{Name: "track", Void: true, Group: "Media"},
	{Name: "iframe", Group: "Media"},
	{Name: "embed", Void: true, Group: "Media"},
	{Name: "object", Group: "Media"},
	{Name: "param", Void: true, Group: "Media"},
	{Name: "canvas", Group: "Media"},
	{Name: "svg", Group: "Media"},
	{Name: "map", Group: "Media"},
	{Name: "area", Void: true, Group: "Media"},

	// Interactive elements
	{Name: "details", Group: "Interactive elements"},
	{Name: "summary", Group: "Interactive elements"},
	{Name: "dialog", Group: "Interactive elements"},
	{Name: "menu", Group: "Interactive elements"},

	// Scripting
	{Name: "script", Group: "Scripting"},
	{Name: "noscript", Group: "Scripting"},
	{Name: "template", Group: "Scripting"},
	{Name: "slot", Group: "Scripting"},
	{Name: "style", Group: "Scripting"},
}

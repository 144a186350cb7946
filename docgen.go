package kernelgen

// FuncDoc describes a Doxygen comment block for a generated function.
// Params are full "@param" lines without the tag, e.g. "s_q shared input
// vector". An empty Return omits the "@return" line.
type FuncDoc struct {
	Description string
	Notes       []string
	Params      []string
	Return      string
}

// AddFuncDoc emits doc as a Doxygen comment block at the current depth.
func (b *Builder) AddFuncDoc(doc FuncDoc) {
	b.AddLine("/**")
	b.AddLine(" * " + doc.Description)
	b.AddLine(" *")
	if len(doc.Notes) > 0 {
		b.AddLine(" * Notes:")
		for _, note := range doc.Notes {
			b.AddLine(" *   " + note)
		}
		b.AddLine(" *")
	}
	for _, param := range doc.Params {
		b.AddLine(" * @param " + param)
	}
	if doc.Return != "" {
		b.AddLine(" * @return " + doc.Return)
	}
	b.AddLine(" */")
}

package style

import (
	"fmt"
	"io"
	"strings"
)

// RootSelector is the selector custom properties are declared under.
const RootSelector = ":root"

// WriteCSS renders vars as a CSS rule of custom properties.
func WriteCSS(w io.Writer, selector string, vars []Variable) error {
	if selector == "" {
		selector = RootSelector
	}
	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, v := range vars {
		fmt.Fprintf(&b, "  %s: %s;\n", v.Name, v.Value)
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

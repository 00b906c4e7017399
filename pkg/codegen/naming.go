package codegen

import "strings"

// camelCase converts a snake_case Wayland identifier (wl_surface,
// get_registry, allow_null) into an exported Go identifier
// (Surface, GetRegistry, AllowNull).
func camelCase(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// interfaceTypeName strips a leading "wl_"/"zwlr_"/"zxdg_" protocol
// prefix and camel-cases the remainder, e.g. "zwlr_data_control_manager_v1"
// -> "DataControlManager" (the "_v1" unstable suffix is also stripped).
// "xdg_" is kept rather than stripped: xdg-shell's own interfaces are
// named xdg_wm_base, xdg_surface, xdg_toplevel, and dropping the
// prefix would collide xdg_surface with a hypothetical wl_surface-like
// type, so the generated type stays XdgWmBase, XdgSurface, XdgToplevel.
func interfaceTypeName(ifaceName string) string {
	name := strings.TrimSuffix(ifaceName, "_v1")
	for _, prefix := range []string{"wl_", "zwlr_", "zxdg_"} {
		if strings.HasPrefix(name, prefix) {
			name = strings.TrimPrefix(name, prefix)
			return camelCase(name)
		}
	}
	return camelCase(name)
}

// enumEntryName prefixes an entry name that starts with a digit
// (e.g. "180" in the output_transform enum) so it forms a valid Go
// identifier.
func enumEntryName(typeName, entryName string) string {
	return typeName + camelCase(entryName)
}

// goFieldName renames args that collide with Go keywords or the
// proxy's own embedded method set (e.g. a "type" or "interface" arg).
var goReserved = map[string]string{
	"type":      "typ",
	"interface": "iface",
	"func":      "fn",
	"range":     "rng",
	"map":       "m",
	"string":    "str",
}

func goFieldName(name string) string {
	if alt, ok := goReserved[name]; ok {
		return alt
	}
	return name
}

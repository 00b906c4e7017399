package codegen

import "text/template"

// fileTemplate produces one Go source file per protocol document, in
// the shape wlproto's hand-written files already follow (see
// wlproto/wl_core.go): one struct embedding *proxy.Proxy per
// interface, a Wrap constructor, one method per request, one
// On<Event> installer per event, and a const block of explicitly
// valued entries per enum.
//
// "Code generated by wlgen; DO NOT EDIT." is the standard provenance
// header marking every generated file.
const fileTemplateSource = `// Code generated by wlgen; DO NOT EDIT.
{{if .Copyright}}
// {{.Copyright}}
{{end}}
package {{.Package}}

import (
	"github.com/wl-go/wl/internal/protocol"
	"github.com/wl-go/wl/internal/proxy"
	"github.com/wl-go/wl/internal/wire"
)
{{range .Interfaces}}{{$iface := .}}
// {{.GoName}} is the typed {{.WireName}} proxy.
type {{.GoName}} struct{ *proxy.Proxy }

// Wrap{{.GoName}} adapts an attached {{.WireName}} proxy to its typed surface.
func Wrap{{.GoName}}(p *proxy.Proxy) *{{.GoName}} { return &{{.GoName}}{p} }
{{range .Enums}}{{$enum := .}}
type {{.GoName}} uint32

const (
{{range .Entries}}	{{.GoName}} {{$enum.GoName}} = {{.Value}}
{{end}}){{end}}
{{range .Requests}}
func (v *{{$iface.GoName}}) {{.GoName}}({{.ParamList}}) {{.ReturnType}} {
{{if .NewIDArg}}	child := {{.NewIDArg.GoName}}()
{{end}}	err := v.Call("{{.WireName}}", func(b *wire.MessageBuilder, args []protocol.Arg) error {
{{range .Args}}	{{.PutExpr}}
{{end}}		return nil
	})
{{if .HasReturn}}	if err != nil {
		return nil, err
	}
{{if .NewIDArg}}	child.Attach()
	return Wrap{{.NewIDArg.ChildType}}(child), nil
{{end}}{{else}}	return err
{{end}}}
{{end}}
{{range .Events}}
func (v *{{$iface.GoName}}) On{{.GoName}}(handler func({{.HandlerParamTypes}})) error {
	_, err := v.On("{{.WireName}}", func(args []any) bool {
		handler({{.HandlerArgs}})
		return {{.Persistent}}
	})
	return err
}
{{end}}
{{end}}
`

var fileTemplate = template.Must(template.New("wlgen-file").Parse(fileTemplateSource))

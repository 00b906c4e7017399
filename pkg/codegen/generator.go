// Package codegen turns a loaded protocol.Protocol into the typed
// Go proxy source wlproto ships hand-written. It populates a small
// set of Go-shaped template structs from the XML-derived
// protocol.Protocol, executes a text/template against them, then runs
// the result through go/format (the standard library's gofmt engine —
// using the library form avoids depending on gofmt being on $PATH
// when wlgen runs from a minimal container).
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"

	"github.com/wl-go/wl/internal/protocol"
	"github.com/wl-go/wl/pkg/wlerr"
)

// Generate renders proto's interfaces into pkgName as a single
// formatted Go source file, plus a second file declaring each
// interface's protocol.Interface descriptor as a package-level,
// class-level static value.
func Generate(proto *protocol.Protocol, pkgName string) (source []byte, descriptors []byte, err error) {
	ifaces := sortedInterfaces(proto)

	data := fileData{
		Package:    pkgName,
		Copyright:  proto.Copyright,
		Interfaces: make([]ifaceData, 0, len(ifaces)),
	}
	for _, iface := range ifaces {
		data.Interfaces = append(data.Interfaces, buildIfaceData(iface))
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, nil, wlerr.GenerateError("executing template", err)
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, nil, wlerr.GenerateError("formatting generated source", err)
	}

	descSrc, err := generateDescriptors(pkgName, ifaces)
	if err != nil {
		return nil, nil, err
	}

	return formatted, descSrc, nil
}

func sortedInterfaces(proto *protocol.Protocol) []*protocol.Interface {
	names := make([]string, 0, len(proto.Interfaces))
	for name := range proto.Interfaces {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*protocol.Interface, 0, len(names))
	for _, name := range names {
		out = append(out, proto.Interfaces[name])
	}
	return out
}

type fileData struct {
	Package    string
	Copyright  string
	Interfaces []ifaceData
}

type ifaceData struct {
	GoName   string
	WireName string
	Requests []reqData
	Events   []evData
	Enums    []enumData
}

type enumData struct {
	GoName  string
	Entries []enumEntryData
}

type enumEntryData struct {
	GoName string
	Value  uint32
}

type argData struct {
	Name      string
	GoName    string
	GoType    string
	ChildType string
	PutExpr   string
}

type reqData struct {
	GoName     string
	WireName   string
	ParamList  string
	ReturnType string
	HasReturn  bool
	Args       []argData
	NewIDArg   *argData
}

type evData struct {
	GoName            string
	WireName          string
	HandlerParamTypes string
	HandlerArgs       string
	Persistent        string // "true" to keep the handler installed, "false" to auto-remove (destructor-like events)
}

func buildIfaceData(iface *protocol.Interface) ifaceData {
	goName := interfaceTypeName(iface.Name)

	d := ifaceData{GoName: goName, WireName: iface.Name}

	for _, e := range iface.Enums {
		ed := enumData{GoName: goName + camelCase(e.Name)}
		for _, entry := range e.Entries {
			ed.Entries = append(ed.Entries, enumEntryData{
				GoName: enumEntryName(ed.GoName, entry.Name),
				Value:  entry.Value,
			})
		}
		d.Enums = append(d.Enums, ed)
	}

	for _, r := range iface.Requests {
		d.Requests = append(d.Requests, buildRequestData(r, goName))
	}
	for _, e := range iface.Events {
		d.Events = append(d.Events, buildEventData(e, goName))
	}
	return d
}

func buildRequestData(r protocol.Request, ifaceGoName string) reqData {
	rd := reqData{GoName: camelCase(r.Name), WireName: r.Name}

	var params []string
	for _, a := range r.Args {
		if a.Kind == protocol.ArgNewID {
			childType := interfaceTypeName(a.Interface)
			arg := argData{
				Name:      a.Name,
				GoName:    "newID",
				GoType:    "func() *proxy.Proxy",
				ChildType: childType,
			}
			rd.NewIDArg = &arg
			params = append(params, arg.GoName+" "+arg.GoType)
			continue
		}

		arg := argData{Name: a.Name, GoName: goFieldName(a.Name), GoType: goArgType(a, ifaceGoName)}
		arg.PutExpr = putExprFor(arg, a)
		rd.Args = append(rd.Args, arg)
		params = append(params, arg.GoName+" "+arg.GoType)
	}
	rd.ParamList = strings.Join(params, ", ")

	if rd.NewIDArg != nil {
		rd.HasReturn = true
		rd.ReturnType = fmt.Sprintf("(*%s, error)", rd.NewIDArg.ChildType)
	} else {
		rd.ReturnType = "error"
	}
	return rd
}

// goArgType returns the Go type for a, typing enum-tagged uints as the
// generated enum class (ifaceGoName + CamelCase(enum name)) instead of
// a bare uint32, matching wlproto/wl_shm.go's hand-written ShmFormat.
// An enum attribute qualified with another interface ("iface.enum",
// such as wl_shm_pool.create_buffer's wl_shm.format) is left as
// uint32.
func goArgType(a protocol.Arg, ifaceGoName string) string {
	if a.Kind == protocol.ArgUint && a.Enum != "" && !strings.Contains(a.Enum, ".") {
		return ifaceGoName + camelCase(a.Enum)
	}
	switch a.Kind {
	case protocol.ArgInt:
		return "int32"
	case protocol.ArgUint:
		return "uint32"
	case protocol.ArgFixed:
		return "wire.Fixed"
	case protocol.ArgString:
		return "string"
	case protocol.ArgArray:
		return "[]byte"
	case protocol.ArgFd:
		return "int"
	case protocol.ArgObject:
		return "*proxy.Proxy"
	default:
		return "any"
	}
}

func putExprFor(arg argData, a protocol.Arg) string {
	switch a.Kind {
	case protocol.ArgInt:
		return fmt.Sprintf("b.PutInt32(%s)", arg.GoName)
	case protocol.ArgUint:
		if a.Enum != "" {
			return fmt.Sprintf("b.PutUint32(uint32(%s))", arg.GoName)
		}
		return fmt.Sprintf("b.PutUint32(%s)", arg.GoName)
	case protocol.ArgFixed:
		return fmt.Sprintf("b.PutFixed(%s)", arg.GoName)
	case protocol.ArgString:
		return fmt.Sprintf("b.PutString(%s)", arg.GoName)
	case protocol.ArgArray:
		return fmt.Sprintf("b.PutArray(%s)", arg.GoName)
	case protocol.ArgFd:
		return fmt.Sprintf("b.PutFD(%s)", arg.GoName)
	case protocol.ArgObject:
		if a.AllowNull {
			return fmt.Sprintf("if %s != nil { b.PutObject(%s.ID()) } else { b.PutObject(0) }", arg.GoName, arg.GoName)
		}
		return fmt.Sprintf("b.PutObject(%s.ID())", arg.GoName)
	default:
		return "_ = b"
	}
}

func buildEventData(e protocol.Event, ifaceGoName string) evData {
	ed := evData{GoName: camelCase(e.Name), WireName: e.Name, Persistent: "true"}

	var paramTypes []string
	var handlerArgs []string
	for i, a := range e.Args {
		t := goArgType(a, ifaceGoName)
		paramTypes = append(paramTypes, goFieldName(a.Name)+" "+t)
		handlerArgs = append(handlerArgs, fmt.Sprintf("args[%d].(%s)", i, t))
	}
	ed.HandlerParamTypes = strings.Join(paramTypes, ", ")
	ed.HandlerArgs = strings.Join(handlerArgs, ", ")
	if e.Name == "done" || e.Name == "popup_done" {
		ed.Persistent = "false"
	}
	return ed
}

// generateDescriptors renders the protocol.Interface literal for each
// interface as a registered package-level var, mirroring
// wlproto/wayland_descriptors.go's hand-written shape.
func generateDescriptors(pkgName string, ifaces []*protocol.Interface) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by wlgen; DO NOT EDIT.\n\npackage %s\n\nimport \"github.com/wl-go/wl/internal/protocol\"\n\n", pkgName)

	for _, iface := range ifaces {
		goName := interfaceTypeName(iface.Name)
		fmt.Fprintf(&buf, "var %sInterface = register(&protocol.Interface{\n", goName)
		fmt.Fprintf(&buf, "\tName:    %q,\n\tVersion: %d,\n", iface.Name, iface.Version)
		writeRequestsLiteral(&buf, iface.Requests)
		writeEventsLiteral(&buf, iface.Events)
		writeEnumsLiteral(&buf, iface.Enums)
		writeUnpackEnumLiteral(&buf, goName, iface.Enums)
		buf.WriteString("})\n\n")
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, wlerr.GenerateError("formatting descriptor source", err)
	}
	return formatted, nil
}

func writeRequestsLiteral(buf *bytes.Buffer, reqs []protocol.Request) {
	if len(reqs) == 0 {
		return
	}
	buf.WriteString("\tRequests: []protocol.Request{\n")
	for _, r := range reqs {
		fmt.Fprintf(buf, "\t\t{Name: %q, Destructor: %t, Args: []protocol.Arg{", r.Name, r.Destructor)
		writeArgsLiteral(buf, r.Args)
		buf.WriteString("}},\n")
	}
	buf.WriteString("\t},\n")
}

func writeEventsLiteral(buf *bytes.Buffer, evs []protocol.Event) {
	if len(evs) == 0 {
		return
	}
	buf.WriteString("\tEvents: []protocol.Event{\n")
	for _, e := range evs {
		fmt.Fprintf(buf, "\t\t{Name: %q, Args: []protocol.Arg{", e.Name)
		writeArgsLiteral(buf, e.Args)
		buf.WriteString("}},\n")
	}
	buf.WriteString("\t},\n")
}

var argKindConst = map[protocol.ArgKind]string{
	protocol.ArgInt:    "protocol.ArgInt",
	protocol.ArgUint:   "protocol.ArgUint",
	protocol.ArgFixed:  "protocol.ArgFixed",
	protocol.ArgString: "protocol.ArgString",
	protocol.ArgArray:  "protocol.ArgArray",
	protocol.ArgFd:     "protocol.ArgFd",
	protocol.ArgObject: "protocol.ArgObject",
	protocol.ArgNewID:  "protocol.ArgNewID",
}

func writeArgsLiteral(buf *bytes.Buffer, args []protocol.Arg) {
	for _, a := range args {
		fmt.Fprintf(buf, "{Name: %q, Kind: %s", a.Name, argKindConst[a.Kind])
		if a.Interface != "" {
			fmt.Fprintf(buf, ", Interface: %q", a.Interface)
		}
		if a.Enum != "" {
			fmt.Fprintf(buf, ", Enum: %q", a.Enum)
		}
		if a.AllowNull {
			buf.WriteString(", AllowNull: true")
		}
		buf.WriteString("}, ")
	}
}

func writeEnumsLiteral(buf *bytes.Buffer, enums []protocol.Enum) {
	if len(enums) == 0 {
		return
	}
	buf.WriteString("\tEnums: []protocol.Enum{\n")
	for _, e := range enums {
		fmt.Fprintf(buf, "\t\t{Name: %q, Bitfield: %t, Entries: []protocol.EnumEntry{", e.Name, e.Bitfield)
		for _, entry := range e.Entries {
			fmt.Fprintf(buf, "{Name: %q, Value: %d}, ", entry.Name, entry.Value)
		}
		buf.WriteString("}},\n")
	}
	buf.WriteString("\t},\n")
}

// writeUnpackEnumLiteral emits the UnpackEnum hook that materializes
// an enum-tagged uint into its typed Go value before dispatch, the
// same role wlproto/wayland_descriptors.go's hand-written ShmInterface
// UnpackEnum plays for wl_shm's format enum.
func writeUnpackEnumLiteral(buf *bytes.Buffer, goName string, enums []protocol.Enum) {
	if len(enums) == 0 {
		return
	}
	buf.WriteString("\tUnpackEnum: func(enumName string, value uint32) (any, bool) {\n")
	buf.WriteString("\t\tswitch enumName {\n")
	for _, e := range enums {
		fmt.Fprintf(buf, "\t\tcase %q:\n\t\t\treturn %s(value), true\n", e.Name, goName+camelCase(e.Name))
	}
	buf.WriteString("\t\t}\n\t\treturn nil, false\n\t},\n")
}

package protocol

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// xmlProtocol and its children mirror the subset of the Wayland XML
// protocol schema this loader recognizes. Unrecognized elements are
// ignored by encoding/xml's default decoding; unrecognized `arg`
// types are rejected explicitly below.
type xmlProtocol struct {
	XMLName    xml.Name        `xml:"protocol"`
	Name       string          `xml:"name,attr"`
	Copyright  string          `xml:"copyright"`
	Interfaces []xmlInterface  `xml:"interface"`
}

type xmlInterface struct {
	Name     string       `xml:"name,attr"`
	Version  string       `xml:"version,attr"`
	Requests []xmlRequest `xml:"request"`
	Events   []xmlEvent   `xml:"event"`
	Enums    []xmlEnum    `xml:"enum"`
}

type xmlRequest struct {
	Name string   `xml:"name,attr"`
	Type string   `xml:"type,attr"`
	Args []xmlArg `xml:"arg"`
}

type xmlEvent struct {
	Name string   `xml:"name,attr"`
	Args []xmlArg `xml:"arg"`
}

type xmlArg struct {
	Name      string `xml:"name,attr"`
	Type      string `xml:"type,attr"`
	Interface string `xml:"interface,attr"`
	Enum      string `xml:"enum,attr"`
	AllowNull string `xml:"allow-null,attr"`
	Summary   string `xml:"summary,attr"`
}

type xmlEnum struct {
	Name     string     `xml:"name,attr"`
	Bitfield string     `xml:"bitfield,attr"`
	Entries  []xmlEntry `xml:"entry"`
}

type xmlEntry struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// Load parses a single protocol XML document from r.
func Load(r io.Reader) (*Protocol, error) {
	var doc xmlProtocol
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, newError("xml", err)
	}
	if doc.Name == "" {
		return nil, newError("protocol", fmt.Errorf("missing name attribute"))
	}

	proto := newProtocol(doc.Name)
	proto.Copyright = strings.TrimSpace(doc.Copyright)

	for _, xi := range doc.Interfaces {
		iface, err := convertInterface(xi)
		if err != nil {
			return nil, err
		}
		proto.Interfaces[iface.Name] = iface
	}

	for _, iface := range proto.Interfaces {
		for _, r := range iface.Requests {
			collectExterns(proto, r.Args)
		}
		for _, e := range iface.Events {
			collectExterns(proto, e.Args)
		}
	}
	return proto, nil
}

func collectExterns(proto *Protocol, args []Arg) {
	for _, a := range args {
		if a.Interface == "" {
			continue
		}
		if _, local := proto.Interfaces[a.Interface]; !local {
			proto.Externs[a.Interface] = struct{}{}
		}
	}
}

func convertInterface(xi xmlInterface) (*Interface, error) {
	if xi.Name == "" {
		return nil, newError("interface", fmt.Errorf("missing name attribute"))
	}
	if xi.Version == "" {
		return nil, newError("interface "+xi.Name, fmt.Errorf("missing version attribute"))
	}
	version, err := strconv.ParseUint(xi.Version, 10, 32)
	if err != nil {
		return nil, newError("interface "+xi.Name, fmt.Errorf("invalid version %q: %w", xi.Version, err))
	}

	iface := &Interface{Name: xi.Name, Version: uint32(version)}

	for _, xr := range xi.Requests {
		args, err := convertArgs(xi.Name, "request "+xr.Name, xr.Args)
		if err != nil {
			return nil, err
		}
		iface.Requests = append(iface.Requests, Request{
			Name:       xr.Name,
			Args:       args,
			Destructor: xr.Type == "destructor",
		})
	}

	for _, xe := range xi.Events {
		args, err := convertArgs(xi.Name, "event "+xe.Name, xe.Args)
		if err != nil {
			return nil, err
		}
		iface.Events = append(iface.Events, Event{Name: xe.Name, Args: args})
	}

	for _, xen := range xi.Enums {
		enum := Enum{Name: xen.Name, Bitfield: xen.Bitfield == "true"}
		for _, xent := range xen.Entries {
			v, err := parseEnumValue(xent.Value)
			if err != nil {
				return nil, newError(fmt.Sprintf("interface %s enum %s entry %s", xi.Name, xen.Name, xent.Name), err)
			}
			enum.Entries = append(enum.Entries, EnumEntry{Name: xent.Name, Value: v})
		}
		iface.Enums = append(iface.Enums, enum)
	}

	return iface, nil
}

// convertArgs expands an interface-less new_id into the three-argument
// (interface-name string, version uint, id) sequence, transparently
// so later stages see a single argument list.
func convertArgs(ifaceName, context string, xargs []xmlArg) ([]Arg, error) {
	var args []Arg
	for _, xa := range xargs {
		kind, ok := parseArgKind(xa.Type)
		if !ok {
			return nil, newError(fmt.Sprintf("interface %s %s arg %s", ifaceName, context, xa.Name),
				fmt.Errorf("unknown arg type %q", xa.Type))
		}
		if kind == ArgNewID && xa.Interface == "" {
			// XML convention: a new_id with no declared interface expands
			// into (interface-name string, version uint, id) on the wire.
			args = append(args,
				Arg{Name: xa.Name + "_interface", Kind: ArgString},
				Arg{Name: xa.Name + "_version", Kind: ArgUint},
				Arg{Name: xa.Name, Kind: ArgNewID},
			)
			continue
		}
		args = append(args, Arg{
			Name:      xa.Name,
			Kind:      kind,
			Interface: xa.Interface,
			Enum:      xa.Enum,
			AllowNull: xa.AllowNull == "true",
		})
	}
	return args, nil
}

func parseArgKind(t string) (ArgKind, bool) {
	switch t {
	case "int":
		return ArgInt, true
	case "uint":
		return ArgUint, true
	case "fixed":
		return ArgFixed, true
	case "string":
		return ArgString, true
	case "array":
		return ArgArray, true
	case "fd":
		return ArgFd, true
	case "object":
		return ArgObject, true
	case "new_id":
		return ArgNewID, true
	default:
		return 0, false
	}
}

func parseEnumValue(s string) (uint32, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 32)
		return uint32(v), err
	}
	v, err := strconv.ParseUint(s, 10, 32)
	return uint32(v), err
}

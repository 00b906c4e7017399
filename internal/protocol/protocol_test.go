package protocol

import (
	"strings"
	"testing"
)

const sampleXML = `<?xml version="1.0"?>
<protocol name="sample">
  <copyright>Sample copyright</copyright>
  <interface name="wl_sample" version="3">
    <request name="destroy" type="destructor"/>
    <request name="bind">
      <arg name="id" type="new_id"/>
    </request>
    <request name="attach">
      <arg name="buffer" type="object" interface="wl_buffer" allow-null="true"/>
      <arg name="x" type="int"/>
      <arg name="y" type="int"/>
    </request>
    <event name="format">
      <arg name="format" type="uint" enum="format"/>
    </event>
    <enum name="format">
      <entry name="argb8888" value="0"/>
      <entry name="xrgb8888" value="0x1"/>
    </enum>
  </interface>
</protocol>`

func exampleLoad() (*Protocol, error) {
	return Load(strings.NewReader(sampleXML))
}

func TestLoadInterface(t *testing.T) {
	proto, err := exampleLoad()
	if err != nil {
		t.Fatal(err)
	}
	if proto.Name != "sample" || proto.Copyright != "Sample copyright" {
		t.Fatalf("unexpected protocol header: %+v", proto)
	}
	iface, ok := proto.Interfaces["wl_sample"]
	if !ok {
		t.Fatal("interface wl_sample not found")
	}
	if iface.Version != 3 {
		t.Fatalf("version = %d, want 3", iface.Version)
	}
	if op, ok := iface.DestructorOpcode(); !ok || op != 0 {
		t.Fatalf("DestructorOpcode() = %d, %v, want 0, true", op, ok)
	}
}

func TestNewIDExpansion(t *testing.T) {
	proto, err := exampleLoad()
	if err != nil {
		t.Fatal(err)
	}
	iface := proto.Interfaces["wl_sample"]
	op, ok := iface.RequestOpcode("bind")
	if !ok {
		t.Fatal("bind request not found")
	}
	args := iface.Requests[op].Args
	if len(args) != 3 {
		t.Fatalf("interface-less new_id should expand to 3 args, got %d", len(args))
	}
	if args[0].Kind != ArgString || args[1].Kind != ArgUint || args[2].Kind != ArgNewID {
		t.Fatalf("unexpected expansion kinds: %+v", args)
	}
}

func TestExternSet(t *testing.T) {
	proto, err := exampleLoad()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := proto.Externs["wl_buffer"]; !ok {
		t.Fatal("expected wl_buffer in extern set")
	}
}

func TestEnumEntries(t *testing.T) {
	proto, err := exampleLoad()
	if err != nil {
		t.Fatal(err)
	}
	iface := proto.Interfaces["wl_sample"]
	if len(iface.Enums) != 1 || len(iface.Enums[0].Entries) != 2 {
		t.Fatalf("unexpected enums: %+v", iface.Enums)
	}
	if iface.Enums[0].Entries[1].Value != 1 {
		t.Fatalf("hex entry value = %d, want 1", iface.Enums[0].Entries[1].Value)
	}
}

func TestUnknownArgTypeFails(t *testing.T) {
	const bad = `<protocol name="bad"><interface name="x" version="1">
	<request name="r"><arg name="a" type="bogus"/></request>
	</interface></protocol>`
	if _, err := Load(strings.NewReader(bad)); err == nil {
		t.Fatal("expected ProtocolError for unknown arg type")
	}
}

func TestMissingVersionFails(t *testing.T) {
	const bad = `<protocol name="bad"><interface name="x"></interface></protocol>`
	if _, err := Load(strings.NewReader(bad)); err == nil {
		t.Fatal("expected ProtocolError for missing version")
	}
}

package codegen

import (
	"strings"
	"testing"

	"github.com/wl-go/wl/internal/protocol"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<protocol name="sample">
  <copyright>Sample Corp</copyright>
  <interface name="sample_widget" version="2">
    <request name="set_size">
      <arg name="width" type="int"/>
      <arg name="height" type="int"/>
    </request>
    <request name="create_child" type="destructor">
      <arg name="id" type="new_id" interface="sample_child"/>
    </request>
    <event name="configure">
      <arg name="width" type="int"/>
      <arg name="height" type="int"/>
      <arg name="kind" type="uint" enum="kind"/>
    </event>
    <enum name="kind" bitfield="false">
      <entry name="normal" value="0"/>
      <entry name="maximized" value="1"/>
    </enum>
  </interface>
  <interface name="sample_child" version="1">
    <request name="destroy" type="destructor"/>
  </interface>
</protocol>`

func loadSample(t *testing.T) *protocol.Protocol {
	t.Helper()
	proto, err := protocol.Load(strings.NewReader(sampleXML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return proto
}

func TestGenerate_ProducesValidGo(t *testing.T) {
	proto := loadSample(t)

	src, desc, err := Generate(proto, "sampleproto")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "interface file",
			text: string(src),
			want: []string{
				"package sampleproto",
				"type SampleWidget struct{ *proxy.Proxy }",
				"func WrapSampleWidget(p *proxy.Proxy) *SampleWidget",
				"func (v *SampleWidget) SetSize(width int32, height int32) error",
				"func (v *SampleWidget) CreateChild(newID func() *proxy.Proxy) (*SampleChild, error)",
				"func (v *SampleWidget) OnConfigure(handler func(width int32, height int32, kind SampleWidgetKind)) error",
				"KindNormal",
				"KindMaximized",
			},
		},
		{
			name: "descriptor file",
			text: string(desc),
			want: []string{
				"package sampleproto",
				`var SampleWidgetInterface = register(&protocol.Interface{`,
				`Name:    "sample_widget"`,
				`Enum: "kind"`,
				"UnpackEnum: func(enumName string, value uint32) (any, bool)",
				`case "kind":`,
				"return SampleWidgetKind(value), true",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, want := range tt.want {
				if !strings.Contains(tt.text, want) {
					t.Errorf("output missing %q\n--- got ---\n%s", want, tt.text)
				}
			}
		})
	}
}

func TestInterfaceTypeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"wl_compositor", "Compositor"},
		{"xdg_wm_base", "XdgWmBase"},
		{"zwlr_data_control_manager_v1", "DataControlManager"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := interfaceTypeName(tt.in); got != tt.want {
				t.Errorf("interfaceTypeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEnumEntryName(t *testing.T) {
	if got := enumEntryName("Transform", "180"); got != "Transform180" {
		t.Errorf("enumEntryName = %q, want Transform180", got)
	}
}

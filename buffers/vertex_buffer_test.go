package buffers

import (
	"testing"
)

func TestAttribLayoutElementLen(t *testing.T) {

	tests := []struct {
		name   string
		layout AttribLayout
		bufLen int
		want   int
	}{
		{
			name:   "planar vec4 block fills buffer exactly",
			layout: AttribLayout{Elements: 4},
			bufLen: 32,
			want:   8,
		},
		{
			name:   "planar vec3 block after vec4 block",
			layout: AttribLayout{Elements: 3, Offset: 32},
			bufLen: 56,
			want:   8,
		},
		{
			name:   "division truncates",
			layout: AttribLayout{Elements: 3, Offset: 2},
			bufLen: 12,
			want:   3,
		},
		{
			name:   "stride adds to the count",
			layout: AttribLayout{Elements: 3, Stride: 1, Offset: 2},
			bufLen: 12,
			want:   4,
		},
		{
			name:   "offset past the data",
			layout: AttribLayout{Elements: 4, Offset: 40},
			bufLen: 32,
			want:   -2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.layout.elementLen(tt.bufLen); got != tt.want {
				t.Errorf("elementLen(%d) = %d, want %d", tt.bufLen, got, tt.want)
			}
		})
	}
}

func TestSetAttrib(t *testing.T) {

	vb := VertexBuffer{Len: 36}

	vb.SetAttrib("position", AttribLayout{Elements: 4})
	if got := vb.ElementLen(); got != 9 {
		t.Errorf("ElementLen() = %d, want 9", got)
	}

	vb.SetAttrib("normal", AttribLayout{Elements: 3, Offset: 24})
	if got := vb.ElementLen(); got != 4 {
		t.Errorf("ElementLen() after second attrib = %d, want 4", got)
	}

	layout, ok := vb.Attrib("position")
	if !ok {
		t.Fatal("Attrib(position) not found")
	}
	if layout.Elements != 4 {
		t.Errorf("Attrib(position).Elements = %d, want 4", layout.Elements)
	}

	if _, ok := vb.Attrib("tangent"); ok {
		t.Error("Attrib(tangent) found, want missing")
	}

	// Same name again wins.
	vb.SetAttrib("position", AttribLayout{Elements: 3})
	layout, _ = vb.Attrib("position")
	if layout.Elements != 3 {
		t.Errorf("Attrib(position).Elements after overwrite = %d, want 3", layout.Elements)
	}
	if got := vb.ElementLen(); got != 12 {
		t.Errorf("ElementLen() after overwrite = %d, want 12", got)
	}
}

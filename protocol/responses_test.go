package protocol

import (
	"testing"
)

// record builds a RecordLength-byte response with the given payload at
// offset 1, mirroring what the device sends back.
func record(payload ...byte) []byte {
	resp := make([]byte, RecordLength)
	copy(resp[1:], payload)
	return resp
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		resp    []byte
		want    byte
		wantErr bool
	}{
		{
			name: "run status",
			resp: record(byte(Run)),
			want: 0x0F,
		},
		{
			name: "sleep sentinel",
			resp: record(byte(Sleep)),
			want: 0x7F,
		},
		{
			name: "command error echo",
			resp: record(CmdError),
			want: 0xFF,
		},
		{
			name: "short response without padding",
			resp: []byte{0x00, byte(DoorOpen)},
			want: 0x02,
		},
		{
			name:    "one byte response",
			resp:    []byte{0x00},
			wantErr: true,
		},
		{
			name:    "empty response",
			resp:    []byte{},
			wantErr: true,
		},
		{
			name:    "nil response",
			resp:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.resp)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !IsMalformedResponse(err) {
					t.Errorf("error = %T, want *MalformedResponseError", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("status = 0x%02X, want 0x%02X", got, tt.want)
			}
		})
	}
}

func TestParseSerialNumber(t *testing.T) {
	tests := []struct {
		name    string
		resp    []byte
		want    uint32
		wantErr bool
	}{
		{
			name: "four digit serial",
			resp: record(0x34, 0x12, 0x00, 0x00),
			want: 1234,
		},
		{
			name: "zero serial",
			resp: record(0x00, 0x00, 0x00, 0x00),
			want: 0,
		},
		{
			name: "full eight digits",
			resp: record(0x78, 0x56, 0x34, 0x12),
			want: 12345678,
		},
		{
			name: "maximum BCD value",
			resp: record(0x99, 0x99, 0x99, 0x99),
			want: 99999999,
		},
		{
			name: "single digit",
			resp: record(0x07, 0x00, 0x00, 0x00),
			want: 7,
		},
		{
			// Nibbles are not range-checked: 0xFF decodes as digits 15
			// and 15, the same garbage-in/garbage-out contract as the
			// device's native encoding.
			name: "garbage nibbles propagate",
			resp: record(0xFF, 0x00, 0x00, 0x00),
			want: 165,
		},
		{
			name:    "response too short for serial",
			resp:    []byte{0x00, 0x34, 0x12, 0x00},
			wantErr: true,
		},
		{
			name:    "empty response",
			resp:    []byte{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSerialNumber(tt.resp)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !IsMalformedResponse(err) {
					t.Errorf("error = %T, want *MalformedResponseError", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("serial = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseVersion(t *testing.T) {
	resp := record(2, 11, 4)

	version, err := ParseVersion(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Version{Major: 2, Minor: 11, Patch: 4}
	if version != want {
		t.Errorf("version = %+v, want %+v", version, want)
	}

	if version.String() != "2.11.4" {
		t.Errorf("version string = %q, want %q", version.String(), "2.11.4")
	}
}

func TestParseVersionTooShort(t *testing.T) {
	_, err := ParseVersion([]byte{0x00, 0x01, 0x02})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsMalformedResponse(err) {
		t.Errorf("error = %T, want *MalformedResponseError", err)
	}
}

func TestParseFullStatus(t *testing.T) {
	resp := record(1, 2, 3, byte(Run), byte(DoorClosed), byte(DiskPos2), byte(FilterPos3), byte(CalOn))

	full, err := ParseFullStatus(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := FullStatus{
		Version: Version{Major: 1, Minor: 2, Patch: 3},
		OnOff:   Run,
		Door:    DoorClosed,
		Disk:    DiskPos2,
		Filter:  FilterPos3,
		Cal:     CalOn,
	}

	if *full != want {
		t.Errorf("full status = %+v, want %+v", *full, want)
	}
}

func TestParseFullStatusSentinels(t *testing.T) {
	// Sentinel bytes in the disk/filter fields decode as values, not errors.
	resp := record(1, 0, 0, byte(Sleep), byte(DoorOpen), byte(DiskError), byte(FilterMoving), byte(CalOff))

	full, err := ParseFullStatus(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if full.OnOff != Sleep {
		t.Errorf("on/off = %v, want sleep", full.OnOff)
	}
	if full.Disk != DiskError {
		t.Errorf("disk = %v, want drive error", full.Disk)
	}
	if full.Filter != FilterMoving {
		t.Errorf("filter = %v, want moving", full.Filter)
	}
}

func TestParseFullStatusTooShort(t *testing.T) {
	tests := []struct {
		name string
		resp []byte
	}{
		{name: "one byte", resp: []byte{0x00}},
		{name: "version only", resp: []byte{0x00, 1, 2, 3}},
		{name: "missing cal byte", resp: []byte{0x00, 1, 2, 3, 0x0F, 0x01, 0x02, 0x03}},
		{name: "empty", resp: []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFullStatus(tt.resp)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !IsMalformedResponse(err) {
				t.Errorf("error = %T, want *MalformedResponseError", err)
			}
		})
	}
}

package discovery

import (
	"reflect"
	"testing"
)

func TestFuse_MergesDuplicateKeys(t *testing.T) {
	cands := []Candidate{
		{
			Transport:  PrinterNode("/dev/usb/lp0"),
			Confidence: 80,
			Notes:      []string{"first sighting"},
		},
		{
			Transport:   PrinterNode("/dev/usb/lp0"),
			DisplayName: "Epson TM-T20",
			Serial:      "X7A001",
			Confidence:  90,
			Notes:       []string{"second sighting"},
		},
	}

	out := fuse(cands)
	if len(out) != 1 {
		t.Fatalf("fuse returned %d candidates, want 1", len(out))
	}

	merged := out[0]
	if merged.Confidence != 90 {
		t.Errorf("merged confidence = %d, want max of inputs (90)", merged.Confidence)
	}
	if merged.DisplayName != "Epson TM-T20" {
		t.Errorf("merged display name = %q, want first non-absent value", merged.DisplayName)
	}
	if merged.Serial != "X7A001" {
		t.Errorf("merged serial = %q, want X7A001", merged.Serial)
	}
	expected := []string{"first sighting", "second sighting"}
	if !reflect.DeepEqual(merged.Notes, expected) {
		t.Errorf("merged notes = %v, want concatenation %v", merged.Notes, expected)
	}
}

func TestFuse_FirstNonAbsentFieldWins(t *testing.T) {
	cands := []Candidate{
		{Transport: SerialNode("/dev/ttyUSB0"), DisplayName: "Star TSP100", Confidence: 40},
		{Transport: SerialNode("/dev/ttyUSB0"), DisplayName: "Other Name", VendorID: "0519", Confidence: 40},
	}

	out := fuse(cands)
	if len(out) != 1 {
		t.Fatalf("fuse returned %d candidates, want 1", len(out))
	}
	if out[0].DisplayName != "Star TSP100" {
		t.Errorf("display name = %q, want first value kept", out[0].DisplayName)
	}
	if out[0].VendorID != "0519" {
		t.Errorf("vendor id = %q, want gap filled from later member", out[0].VendorID)
	}
}

func TestFuse_SortsByConfidenceDescending(t *testing.T) {
	cands := []Candidate{
		{Transport: SerialNode("/dev/ttyUSB0"), Confidence: 40},
		{Transport: PrinterNode("/dev/usb/lp0"), Confidence: 90},
		{Transport: SerialNode("/dev/ttyUSB1"), Confidence: 60},
	}

	out := fuse(cands)
	got := []int{out[0].Confidence, out[1].Confidence, out[2].Confidence}
	want := []int{90, 60, 40}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("confidence order = %v, want %v", got, want)
	}
}

func TestFuse_StableSortPreservesInputOrder(t *testing.T) {
	cands := []Candidate{
		{Transport: SerialNode("/dev/ttyUSB0"), Confidence: 40},
		{Transport: SerialNode("/dev/ttyUSB1"), Confidence: 40},
		{Transport: SerialNode("/dev/ttyUSB2"), Confidence: 40},
	}

	out := fuse(cands)
	for i, want := range []string{"/dev/ttyUSB0", "/dev/ttyUSB1", "/dev/ttyUSB2"} {
		if got, _ := out[i].Transport.Path(); got != want {
			t.Errorf("position %d = %s, want %s (equal confidence must keep input order)", i, got, want)
		}
	}
}

// A path-keyed and a bus-keyed sighting of the same physical printer cannot
// be correlated without guessing, so both stay in the output.
func TestFuse_PathAndBusKeysDoNotMerge(t *testing.T) {
	cands := []Candidate{
		{Transport: PrinterNode("/dev/usb/lp0"), Serial: "X7A001", Confidence: 80},
		{Transport: USBDevice(0x04b8, 0x0e28, "X7A001"), Serial: "X7A001", Confidence: 80},
	}

	out := fuse(cands)
	if len(out) != 2 {
		t.Fatalf("fuse returned %d candidates, want 2 (no fuzzy cross-transport merging)", len(out))
	}
}

func TestFuse_ConfidenceStaysInRange(t *testing.T) {
	cands := []Candidate{
		{Transport: PrinterNode("/dev/usb/lp0"), Confidence: 80},
		{Transport: PrinterNode("/dev/usb/lp0"), Confidence: 100},
		{Transport: SerialNode("/dev/ttyACM0"), Confidence: 0},
	}

	for _, c := range fuse(cands) {
		if c.Confidence < 0 || c.Confidence > 100 {
			t.Errorf("confidence %d out of [0,100]", c.Confidence)
		}
	}
}

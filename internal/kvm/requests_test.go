package kvm

import "testing"

// Golden request numbers from <linux/kvm.h> on x86-64.
var goldenNumbers = map[string]uint32{
	"KVM_GET_API_VERSION":        0xae00,
	"KVM_CREATE_VM":              0xae01,
	"KVM_GET_MSR_INDEX_LIST":     0xc004ae02,
	"KVM_CHECK_EXTENSION":        0xae03,
	"KVM_GET_VCPU_MMAP_SIZE":     0xae04,
	"KVM_CREATE_VCPU":            0xae41,
	"KVM_SET_USER_MEMORY_REGION": 0x4020ae46,
	"KVM_SET_TSS_ADDR":           0xae47,
	"KVM_CREATE_IRQCHIP":         0xae60,
	"KVM_RUN":                    0xae80,
	"KVM_GET_REGS":               0x8090ae81,
	"KVM_SET_REGS":               0x4090ae82,
	"KVM_GET_SREGS":              0x8138ae83,
	"KVM_SET_SREGS":              0x4138ae84,
}

func TestGoldenNumbers(t *testing.T) {
	all := All()
	if len(all) != len(goldenNumbers) {
		t.Fatalf("All() has %d requests, want %d", len(all), len(goldenNumbers))
	}
	for _, req := range all {
		want, ok := goldenNumbers[req.Name]
		if !ok {
			t.Errorf("All() carries %s, which has no golden value", req.Name)
			continue
		}
		if uint32(req.Number) != want {
			t.Errorf("%s = %#08x, want %#08x", req.Name, uint32(req.Number), want)
		}
	}
}

func TestCanonicalOrder(t *testing.T) {
	want := []string{
		"KVM_GET_API_VERSION",
		"KVM_CREATE_VM",
		"KVM_SET_USER_MEMORY_REGION",
		"KVM_CREATE_VCPU",
		"KVM_GET_VCPU_MMAP_SIZE",
		"KVM_GET_SREGS",
		"KVM_SET_SREGS",
	}

	got := Canonical()
	if len(got) != len(want) {
		t.Fatalf("Canonical() has %d requests, want %d", len(got), len(want))
	}
	for i, req := range got {
		if req.Name != want[i] {
			t.Errorf("Canonical()[%d] = %s, want %s", i, req.Name, want[i])
		}
	}
}

func TestCanonicalDeterministic(t *testing.T) {
	first := Canonical()
	second := Canonical()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Canonical() differs between calls at index %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestLookup(t *testing.T) {
	req, err := Lookup("KVM_CREATE_VM")
	if err != nil {
		t.Fatalf("Lookup(KVM_CREATE_VM): %v", err)
	}
	if uint32(req.Number) != 0xae01 {
		t.Errorf("KVM_CREATE_VM = %#08x, want 0xae01", uint32(req.Number))
	}

	if _, err := Lookup("KVM_DESTROY_UNIVERSE"); err == nil {
		t.Error("Lookup of an unknown request did not fail")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "clobbered"
	if All()[0].Name == "clobbered" {
		t.Error("mutating the slice returned by All() changed the table")
	}
}

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSelectRequestsDefault(t *testing.T) {
	requests, err := selectRequests(false, "")
	if err != nil {
		t.Fatalf("selectRequests: %v", err)
	}
	if len(requests) != 7 {
		t.Errorf("default selection has %d requests, want 7", len(requests))
	}
	if requests[0].Name != "KVM_GET_API_VERSION" {
		t.Errorf("first request = %s, want KVM_GET_API_VERSION", requests[0].Name)
	}
}

func TestSelectRequestsAll(t *testing.T) {
	requests, err := selectRequests(true, "")
	if err != nil {
		t.Fatalf("selectRequests: %v", err)
	}
	if len(requests) <= 7 {
		t.Errorf("-all selection has %d requests, want more than the minimal seven", len(requests))
	}
}

func TestSelectRequestsManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	if err := os.WriteFile(path, []byte("requests:\n  - KVM_RUN\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	requests, err := selectRequests(false, path)
	if err != nil {
		t.Fatalf("selectRequests: %v", err)
	}
	if len(requests) != 1 || requests[0].Name != "KVM_RUN" {
		t.Errorf("manifest selection = %v, want [KVM_RUN]", requests)
	}
}

func TestSelectRequestsAllAndManifestConflict(t *testing.T) {
	if _, err := selectRequests(true, "manifest.yaml"); err == nil {
		t.Error("combining -all with -manifest did not fail")
	}
}

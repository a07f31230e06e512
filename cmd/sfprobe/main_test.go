package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun_Soft(t *testing.T) {
	var out bytes.Buffer
	if err := run(options{backend: "soft"}, &out); err != nil {
		t.Fatalf("run: %v\n%s", err, out.String())
	}
	for _, name := range []string{"clock", "image", "font+text", "soundbuffer", "shape", "rendertexture"} {
		if !strings.Contains(out.String(), "ok   "+name) {
			t.Errorf("probe %s did not pass:\n%s", name, out.String())
		}
	}
}

func TestRun_List(t *testing.T) {
	var out bytes.Buffer
	if err := run(options{backend: "soft", list: true}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "graphics") {
		t.Errorf("summary lacks graphics:\n%s", out.String())
	}
	if strings.Contains(out.String(), "Probing") {
		t.Error("-list should not probe")
	}
}

func TestRun_UnknownBackend(t *testing.T) {
	var out bytes.Buffer
	if err := run(options{backend: "opengl"}, &out); err == nil {
		t.Fatal("expected error")
	}
}

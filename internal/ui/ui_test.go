package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetThemeFallsBackToClassic(t *testing.T) {
	t.Cleanup(func() { SetTheme("classic") })

	SetTheme("mono")
	if Current().Name != "mono" || Current().Arrow != "->" {
		t.Fatalf("mono not applied: %+v", Current().Name)
	}
	SetTheme("does-not-exist")
	if Current().Name != "classic" {
		t.Fatalf("Name = %q, want classic", Current().Name)
	}
}

func TestOKAndFailWriters(t *testing.T) {
	var out, errOut bytes.Buffer
	prevOut, prevErr := Stdout, Stderr
	Stdout, Stderr = &out, &errOut
	t.Cleanup(func() { Stdout, Stderr = prevOut, prevErr })
	SetColorForcing(false, true)

	OK("saved")
	Fail("load: boom")

	if !strings.Contains(out.String(), "saved") {
		t.Errorf("stdout = %q", out.String())
	}
	if !strings.Contains(errOut.String(), "load: boom") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestPanelStringContainsContent(t *testing.T) {
	SetColorForcing(false, true)
	got := PanelString("hello\nworld")
	for _, want := range []string{"hello", "world"} {
		if !strings.Contains(got, want) {
			t.Errorf("panel missing %q:\n%s", want, got)
		}
	}
}

package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseCreate,
				Kind:     KindConstruction,
				Resource: "sfFont",
				Symbol:   "sfFont_createFromMemory",
				Detail:   "empty buffer",
			},
			contains: []string{"[create]", "construction_failed", "sfFont", "via sfFont_createFromMemory", "empty buffer"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDestroy,
				Kind:  KindOutstandingBorrow,
			},
			contains: []string{"[destroy]", "outstanding_borrow"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindInvalidData,
				Detail: "dlopen",
				Cause:  errors.New("no such file"),
			},
			contains: []string{"[load]", "invalid_data", "dlopen", "caused by", "no such file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Load("open library", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
}

func TestError_Is(t *testing.T) {
	err := ConstructionFailed("sfImage", "sfImage_create")

	if !errors.Is(err, ErrConstruction) {
		t.Error("sentinel with empty phase should match on kind")
	}
	if errors.Is(err, ErrReleased) {
		t.Error("different kind should not match")
	}
	if !errors.Is(err, &Error{Phase: PhaseCreate, Kind: KindConstruction}) {
		t.Error("same phase and kind should match")
	}
	if errors.Is(err, &Error{Phase: PhaseCopy, Kind: KindConstruction}) {
		t.Error("different phase should not match")
	}

	// copy failures share the construction kind
	if !errors.Is(CopyFailed("sfText"), ErrConstruction) {
		t.Error("copy failure should match ErrConstruction")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("boom")
	err := New(PhaseCallback, KindUnsupported).
		Resource("sfShape").
		Symbol("sfShape_create").
		Value(42).
		Cause(cause).
		Detail("callback %s", "getPoint").
		Build()

	if err.Phase != PhaseCallback || err.Kind != KindUnsupported {
		t.Errorf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if err.Resource != "sfShape" || err.Symbol != "sfShape_create" {
		t.Errorf("unexpected resource/symbol: %s/%s", err.Resource, err.Symbol)
	}
	if err.Value != 42 {
		t.Errorf("unexpected value: %v", err.Value)
	}
	if err.Detail != "callback getPoint" {
		t.Errorf("unexpected detail: %q", err.Detail)
	}
	if !errors.Is(err, cause) {
		t.Error("cause should unwrap")
	}
}

func TestOutstandingBorrow(t *testing.T) {
	err := OutstandingBorrow("sfTexture", 3)
	if err.Value != uint32(3) {
		t.Errorf("expected value 3, got %v", err.Value)
	}
	if !strings.Contains(err.Error(), "3 dependent(s)") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestMissingSymbolsError(t *testing.T) {
	err := NewMissingSymbolsError([]string{
		"graphics#sfText_create",
		"graphics#sfFont_copy",
		"audio#sfSound_create",
		"sfSleep",
	})

	if len(err.Symbols) != 4 {
		t.Fatalf("expected 4 symbols, got %d", len(err.Symbols))
	}
	if err.Symbols[0].Library != "graphics" || err.Symbols[0].Name != "sfText_create" {
		t.Errorf("unexpected first symbol: %+v", err.Symbols[0])
	}
	if err.Symbols[3].Library != "" {
		t.Errorf("symbol without library should have empty library, got %q", err.Symbols[3].Library)
	}

	msg := err.Error()
	for _, want := range []string{"missing 4 foreign symbol(s)", "graphics:", "audio:", "(unknown):", "- sfFont_copy"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q does not contain %q", msg, want)
		}
	}

	// graphics symbols are sorted within their group
	if strings.Index(msg, "sfFont_copy") > strings.Index(msg, "sfText_create") {
		t.Error("symbols should be sorted within a library")
	}

	if !errors.Is(err, &MissingSymbolsError{}) {
		t.Error("errors.Is should match MissingSymbolsError")
	}
}

func TestMissingSymbolsError_Empty(t *testing.T) {
	err := &MissingSymbolsError{}
	if !strings.Contains(err.Error(), "no symbols specified") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/fpl/pkg/asm"
	"github.com/matzehuels/fpl/pkg/errors"
	"github.com/matzehuels/fpl/pkg/fpl"
	"github.com/matzehuels/fpl/pkg/vertex"
)

var withNegative = asm.MustNew([][]int{{0, 1, 0}, {1, -1, 1}, {0, 1, 0}})

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr errors.Code
	}{
		{"matrix", `{"matrix": [[0,1,0],[1,-1,1],[0,1,0]]}`, ""},
		{"configuration", `{"configuration": [["UR","UD","LU"],["UD","LR","UD"],["RD","UD","LD"]]}`, ""},
		{"configuration with digits", `{"configuration": [["4","3","1"],["3","0","3"],["5","3","2"]]}`, ""},
		{"with orientation", `{"matrix": [[0,1,0],[1,-1,1],[0,1,0]], "orientation": "odd"}`, ""},

		{"malformed", `{"matrix": [[0,1`, errors.ErrCodeInvalidFormat},
		{"empty object", `{}`, errors.ErrCodeInvalidFormat},
		{"both", `{"matrix": [[1]], "configuration": [["UD"]]}`, errors.ErrCodeInvalidFormat},
		{"unknown field", `{"matrix": [[1]], "size": 1}`, errors.ErrCodeInvalidFormat},
		{"invalid matrix", `{"matrix": [[1,1],[0,0]]}`, errors.ErrCodeInvalidMatrix},
		{"invalid configuration", `{"configuration": [["LU"]]}`, errors.ErrCodeInvalidConfiguration},
		{"invalid orientation", `{"matrix": [[1]], "orientation": "up"}`, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ReadJSON(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				if err == nil {
					t.Fatal("ReadJSON() should fail")
				}
				if got := errors.GetCode(err); got != tt.wantErr {
					t.Errorf("error code = %v, want %v (%v)", got, tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadJSON() error: %v", err)
			}
			g, err := doc.Grid("")
			if err != nil {
				t.Fatalf("Grid() error: %v", err)
			}
			if !g.ToMatrix().Equal(withNegative) {
				t.Errorf("matrix = \n%s", g.ToMatrix())
			}
		})
	}
}

func TestDocumentGridOrientation(t *testing.T) {
	doc := &Document{Matrix: withNegative, Orientation: "odd"}

	g, err := doc.Grid("")
	if err != nil {
		t.Fatal(err)
	}
	if g.Orientation() != fpl.TopLeftOdd {
		t.Error("document orientation should apply")
	}

	g, err = doc.Grid("even")
	if err != nil {
		t.Fatal(err)
	}
	if g.Orientation() != fpl.TopLeftEven {
		t.Error("argument should override the document orientation")
	}

	if _, err := (&Document{}).Grid(""); !errors.Is(err, errors.ErrCodeInvalidGenerator) {
		t.Errorf("empty document error = %v, want INVALID_GENERATOR", err)
	}
}

func TestRead(t *testing.T) {
	for _, input := range []string{
		"0 1 0; 1 -1 1; 0 1 0",
		"0 1 0\n1 -1 1\n0 1 0\n",
		"  {\"matrix\": [[0,1,0],[1,-1,1],[0,1,0]]}",
	} {
		doc, err := Read(strings.NewReader(input))
		if err != nil {
			t.Fatalf("Read(%q) error: %v", input, err)
		}
		if !doc.Matrix.Equal(withNegative) {
			t.Errorf("Read(%q) = \n%s", input, doc.Matrix)
		}
	}

	doc, err := ReadText(strings.NewReader("[[1]]"))
	if err != nil || doc.Matrix.Size() != 1 {
		t.Errorf("ReadText() = %v, %v", doc, err)
	}
}

func TestImportFile(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "m.json")
	textPath := filepath.Join(dir, "m.txt")
	if err := os.WriteFile(jsonPath, []byte(`{"configuration": [["UD"]]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(textPath, []byte("0 1\n1 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := ImportFile(jsonPath)
	if err != nil {
		t.Fatalf("ImportFile(json) error: %v", err)
	}
	if doc.Configuration == nil || doc.Configuration.Code(0, 0) != vertex.UD {
		t.Errorf("ImportFile(json) = %+v", doc)
	}

	doc, err = ImportFile(textPath)
	if err != nil {
		t.Fatalf("ImportFile(text) error: %v", err)
	}
	if doc.Matrix.Literal() != "[[0,1],[1,0]]" {
		t.Errorf("ImportFile(text) = %s", doc.Matrix.Literal())
	}

	_, err = ImportFile(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}

	_, err = ImportFile("")
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("empty path error = %v, want INVALID_PATH", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identity")
	if err := os.WriteFile(path, []byte("1 0; 0 1"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load(file) error: %v", err)
	}
	if !doc.Matrix.Equal(asm.Identity(2)) {
		t.Errorf("Load(file) = \n%s", doc.Matrix)
	}

	doc, err = Load("[[0,1],[1,0]]")
	if err != nil {
		t.Fatalf("Load(literal) error: %v", err)
	}
	if doc.Matrix.At(0, 1) != 1 {
		t.Errorf("Load(literal) = \n%s", doc.Matrix)
	}

	if _, err := Load(""); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Load(\"\") error = %v, want INVALID_INPUT", err)
	}
	if _, err := Load("not a matrix"); !errors.Is(err, errors.ErrCodeInvalidMatrix) {
		t.Errorf("Load(garbage) error = %v, want INVALID_MATRIX", err)
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	g := fpl.FromMatrix(withNegative, fpl.WithOrientation(fpl.TopLeftOdd))

	var buf bytes.Buffer
	if err := WriteJSON(NewDocument(g), &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	if !strings.Contains(buf.String(), `"orientation": "odd"`) {
		t.Errorf("WriteJSON() output missing orientation:\n%s", buf.String())
	}

	doc, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	back, err := doc.Grid("")
	if err != nil {
		t.Fatal(err)
	}
	if back.String() != g.String() {
		t.Error("round trip changed the diagram")
	}

	path := filepath.Join(t.TempDir(), "out.json")
	if err := ExportJSON(NewDocument(g), path); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}
	if _, err := ImportFile(path); err != nil {
		t.Errorf("ImportFile(exported) error: %v", err)
	}
}

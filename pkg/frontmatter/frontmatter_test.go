package frontmatter

import (
	"strings"
	"testing"
)

type skillMeta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantMeta skillMeta
		wantBody string
		wantErr  bool
	}{
		{
			name:     "frontmatter and body",
			input:    "---\nname: table-tests\ndescription: Convert tests to tables\n---\n\nRestructure the test first.\n",
			wantMeta: skillMeta{Name: "table-tests", Description: "Convert tests to tables"},
			wantBody: "\nRestructure the test first.\n",
		},
		{
			name:     "no frontmatter",
			input:    "# Just a document\n\nNo header here.\n",
			wantBody: "# Just a document\n\nNo header here.\n",
		},
		{
			name:     "crlf line endings",
			input:    "---\r\nname: table-tests\r\n---\r\nBody\r\n",
			wantMeta: skillMeta{Name: "table-tests"},
			wantBody: "Body\r\n",
		},
		{
			name:     "closing delimiter at end of file",
			input:    "---\nname: table-tests\n---",
			wantMeta: skillMeta{Name: "table-tests"},
			wantBody: "",
		},
		{
			name:     "unclosed block passes through as body",
			input:    "---\nname: table-tests\nnever closed\n",
			wantBody: "---\nname: table-tests\nnever closed\n",
		},
		{
			name:     "delimiter must be alone on its line",
			input:    "----\nnot frontmatter\n",
			wantBody: "----\nnot frontmatter\n",
		},
		{
			name:    "invalid yaml in block",
			input:   "---\nname: [unclosed\n---\nBody\n",
			wantErr: true,
		},
		{
			name:     "empty input",
			input:    "",
			wantBody: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var meta skillMeta
			body, err := Parse(strings.NewReader(tt.input), &meta)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Parse() error = nil, want an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if meta != tt.wantMeta {
				t.Errorf("Parse() meta = %+v, want %+v", meta, tt.wantMeta)
			}
			if string(body) != tt.wantBody {
				t.Errorf("Parse() body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantMeta skillMeta
		wantErr  bool
	}{
		{
			name:     "reads only the block",
			input:    "---\nname: table-tests\ndescription: Convert tests\n---\n\nLong body\n",
			wantMeta: skillMeta{Name: "table-tests", Description: "Convert tests"},
		},
		{
			name:  "no frontmatter leaves matter untouched",
			input: "# Heading\n",
		},
		{
			name:  "unclosed block leaves matter untouched",
			input: "---\nname: table-tests\n",
		},
		{
			name:    "invalid yaml",
			input:   "---\nname: [unclosed\n---\n",
			wantErr: true,
		},
		{
			name:  "empty input",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var meta skillMeta
			err := ParseHeader(strings.NewReader(tt.input), &meta)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ParseHeader() error = nil, want an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHeader() error = %v", err)
			}
			if meta != tt.wantMeta {
				t.Errorf("ParseHeader() meta = %+v, want %+v", meta, tt.wantMeta)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	got, err := Format(skillMeta{Name: "table-tests", Description: "Convert tests"}, "Body line.\n")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := "---\nname: table-tests\ndescription: Convert tests\n---\n\nBody line.\n"
	if string(got) != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormat_EmptyBody(t *testing.T) {
	got, err := Format(skillMeta{Name: "bare"}, "")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := "---\nname: bare\n---\n"
	if string(got) != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormat_EnsuresTrailingNewline(t *testing.T) {
	got, err := Format(skillMeta{Name: "bare"}, "no newline")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasSuffix(string(got), "no newline\n") {
		t.Errorf("Format() = %q, want a final newline", got)
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	in := skillMeta{Name: "table-tests", Description: "Convert tests"}
	doc, err := Format(in, "The body.\n")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var out skillMeta
	body, err := Parse(strings.NewReader(string(doc)), &out)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if out != in {
		t.Errorf("round trip meta = %+v, want %+v", out, in)
	}
	if string(body) != "\nThe body.\n" {
		t.Errorf("round trip body = %q", body)
	}
}

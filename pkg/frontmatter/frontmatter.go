package frontmatter

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// delimiter opens and closes a frontmatter block. It must be alone on its
// line.
const delimiter = "---"

// Parse splits a document into frontmatter and body. The block between the
// opening and closing delimiter lines is unmarshaled into matter. A document
// that does not open with a delimiter, or whose block is never closed, is
// returned whole as the body with matter left untouched.
func Parse[T any](r io.Reader, matter *T) ([]byte, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading document")
	}

	block, body, ok := split(string(content))
	if !ok {
		return content, nil
	}
	if err := yaml.Unmarshal([]byte(block), matter); err != nil {
		return nil, errors.Wrap(err, "parsing frontmatter")
	}
	return []byte(body), nil
}

// split separates the frontmatter block from the body. ok is false when the
// document has no complete block. Lines may end in \n or \r\n.
func split(content string) (block, body string, ok bool) {
	first, rest, found := strings.Cut(content, "\n")
	if !found || strings.TrimSuffix(first, "\r") != delimiter {
		return "", "", false
	}

	for pos := 0; pos < len(rest); {
		next := strings.Index(rest[pos:], "\n")
		if next < 0 {
			// Closing delimiter on the last line, no trailing newline
			if strings.TrimSuffix(rest[pos:], "\r") == delimiter {
				return rest[:pos], "", true
			}
			return "", "", false
		}
		lineEnd := pos + next
		if strings.TrimSuffix(rest[pos:lineEnd], "\r") == delimiter {
			return rest[:pos], rest[lineEnd+1:], true
		}
		pos = lineEnd + 1
	}
	return "", "", false
}

// ParseHeader unmarshals only the frontmatter block into matter, reading no
// further than the closing delimiter. A document that does not open with a
// delimiter leaves matter untouched and returns nil.
func ParseHeader(r io.Reader, matter any) error {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return scanner.Err()
	}
	if strings.TrimSpace(scanner.Text()) != delimiter {
		return nil
	}

	var block bytes.Buffer
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == delimiter {
			if err := yaml.Unmarshal(block.Bytes(), matter); err != nil {
				return errors.Wrap(err, "parsing frontmatter")
			}
			return nil
		}
		block.WriteString(line)
		block.WriteByte('\n')
	}
	return scanner.Err()
}

// Format renders matter and body as a complete document: the YAML block in
// delimiters, a blank line, then the body with a final newline ensured.
func Format(matter any, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(delimiter + "\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(matter); err != nil {
		return nil, errors.Wrap(err, "encoding frontmatter")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "encoding frontmatter")
	}

	buf.WriteString(delimiter + "\n")
	if body != "" {
		buf.WriteByte('\n')
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes(), nil
}

// Package gff provides GFF/GTF file parsing functionality.
package gff

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parser reads annotation records from a GFF or GTF file.
// It is a single-pass, forward-only iterator: each call to Next consumes
// one data line from the underlying source. A Parser is not safe for
// concurrent use.
type Parser struct {
	reader     *bufio.Reader
	file       *os.File
	gzipReader *gzip.Reader
	lineNumber int
}

// NewParser creates a new GFF/GTF parser for the given file.
// Supports both plain and gzipped (.gff.gz / .gtf.gz) files.
// Use "-" to read from stdin.
func NewParser(path string) (*Parser, error) {
	if path == "-" {
		return NewParserFromReader(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gff file: %w", err)
	}

	p := &Parser{file: file}

	// Check for gzip magic bytes
	buf := make([]byte, 2)
	_, err = file.Read(buf)
	if err != nil {
		file.Close()
		if err == io.EOF {
			// Empty file is a valid, empty annotation source
			p.reader = bufio.NewReader(strings.NewReader(""))
			p.file = nil
			return p, nil
		}
		return nil, fmt.Errorf("read gff file: %w", err)
	}

	// Seek back to beginning
	_, err = file.Seek(0, 0)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("seek gff file: %w", err)
	}

	// Check for gzip magic number (0x1f, 0x8b)
	if buf[0] == 0x1f && buf[1] == 0x8b {
		p.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		p.reader = bufio.NewReader(p.gzipReader)
	} else {
		p.reader = bufio.NewReader(file)
	}

	return p, nil
}

// NewParserFromReader creates a parser from an already-open io.Reader
// (e.g., stdin). The parser does not own, close, or seek the reader;
// its lifetime remains the caller's responsibility.
func NewParserFromReader(r io.Reader) *Parser {
	return &Parser{
		reader: bufio.NewReader(r),
	}
}

// Next reads the next annotation record from the file.
// Comment lines (first non-whitespace character '#') and blank lines are
// skipped. Returns nil, nil when there are no more records. A data line
// with fewer than 9 tab-separated fields, or with a non-integer start or
// end coordinate, returns a *ParseError; read errors from the underlying
// source propagate unchanged.
func (p *Parser) Next() (*Record, error) {
	for {
		line, err := p.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read gff line: %w", err)
		}
		atEOF := err == io.EOF

		line = strings.TrimRight(line, "\r\n")
		if line != "" {
			p.lineNumber++
			if !isComment(line) {
				return p.parseLine(line)
			}
		} else if !atEOF {
			p.lineNumber++
		}

		if atEOF {
			return nil, nil
		}
	}
}

// isComment reports whether the line's first non-whitespace character is '#'.
func isComment(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return trimmed == "" || trimmed[0] == '#'
}

// parseLine parses a single GFF/GTF data line into a Record.
func (p *Parser) parseLine(line string) (*Record, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 9 {
		return nil, &ParseError{
			Line:    p.lineNumber,
			Message: fmt.Sprintf("expected 9 columns, found %d", len(fields)),
		}
	}

	start, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return nil, &ParseError{
			Line:    p.lineNumber,
			Message: fmt.Sprintf("invalid start coordinate: %s", fields[3]),
		}
	}

	end, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		return nil, &ParseError{
			Line:    p.lineNumber,
			Message: fmt.Sprintf("invalid end coordinate: %s", fields[4]),
		}
	}

	return &Record{
		SeqID:      fields[0],
		Source:     fields[1],
		Type:       fields[2],
		Start:      start,
		End:        end,
		Score:      fields[5],
		Strand:     fields[6],
		Frame:      fields[7],
		Attributes: ParseAttributes(fields[8]),
	}, nil
}

// ParseAttributes parses the GFF/GTF attribute column into a map.
// Both conventions are recognized per token: GFF3 uses key=value, GTF uses
// key "value". Empty tokens (trailing semicolons) are skipped. A token
// matching neither convention is kept as a key with an empty value.
// Duplicate keys: last value wins.
func ParseAttributes(attrStr string) map[string]string {
	attrs := make(map[string]string)

	for _, part := range strings.Split(attrStr, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		eq := strings.Index(part, "=")
		sp := strings.Index(part, " ")

		switch {
		case eq != -1 && (sp == -1 || eq < sp):
			// GFF3 convention: key=value
			attrs[part[:eq]] = part[eq+1:]
		case sp != -1:
			// GTF convention: key "value"
			value := strings.TrimSpace(part[sp+1:])
			attrs[part[:sp]] = strings.Trim(value, "\"")
		default:
			// Bare token: keep as a key so it is not silently lost
			attrs[part] = ""
		}
	}

	return attrs
}

// LineNumber returns the number of the last line consumed from the input.
func (p *Parser) LineNumber() int {
	return p.lineNumber
}

// Close closes any file the parser opened itself. Parsers created with
// NewParserFromReader hold no resources and Close is a no-op.
func (p *Parser) Close() error {
	if p.gzipReader != nil {
		p.gzipReader.Close()
	}
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}

// ParseError represents an error during GFF/GTF parsing with line context.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("gff parse error at line %d: %s", e.Line, e.Message)
}

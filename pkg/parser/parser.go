package parser

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmptyPath is returned when no log file path is given.
var ErrEmptyPath = errors.New("log file path is required")

// StdinPath is the path that selects standard input instead of a file.
const StdinPath = "-"

// Stdin is read when the log path is StdinPath.
var Stdin io.Reader = os.Stdin

// lineScanner turns raw lines into entries. Shared by FileSource and ReaderSource.
type lineScanner struct {
	name    string
	parser  *TimestampParser
	diag    io.Writer
	reader  *bufio.Reader
	lineNum int
	eof     bool
}

func newLineScanner(r io.Reader, name string, parser *TimestampParser, diag io.Writer) *lineScanner {
	if parser == nil {
		parser = NewTimestampParser(DefaultLayout, nil)
	}
	return &lineScanner{
		name:   name,
		parser: parser,
		diag:   diag,
		reader: bufio.NewReaderSize(r, 64*1024),
	}
}

// readLine returns the next line without its line ending. Lines have no length limit.
func (s *lineScanner) readLine() (string, error) {
	if s.eof {
		return "", io.EOF
	}
	line, err := s.reader.ReadString('\n')
	if err == io.EOF {
		s.eof = true
		if line == "" {
			return "", io.EOF
		}
	} else if err != nil {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (s *lineScanner) next(ctx context.Context) (*Entry, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		line, err := s.readLine()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", s.name, err)
		}
		s.lineNum++
		if line == "" {
			continue
		}

		fields, ok := SplitLine(line)
		if !ok {
			continue
		}

		// A bad timestamp is reported but the entry is still kept.
		ts, err := s.parser.Parse(fields.Timestamp)
		if err != nil && s.diag != nil {
			_, _ = fmt.Fprintf(s.diag, "Error: Failed to parse timestamp: %s (%s:%d)\n",
				fields.Timestamp, s.name, s.lineNum)
		}

		return &Entry{
			Timestamp: ts,
			Level:     fields.Level,
			Message:   fields.Message,
			Source:    s.name,
			LineNum:   s.lineNum,
		}, nil
	}
}

// ReaderSource implements LogSource over an already open reader.
// Closing it does not close the underlying reader.
type ReaderSource struct {
	lines *lineScanner
}

// NewReaderSource creates a LogSource reading r. Name is used in diagnostics.
// Timestamp failures are reported to diag when it is non-nil.
func NewReaderSource(r io.Reader, name string, parser *TimestampParser, diag io.Writer) *ReaderSource {
	return &ReaderSource{lines: newLineScanner(r, name, parser, diag)}
}

// Next returns the next parsed entry, or io.EOF.
func (s *ReaderSource) Next(ctx context.Context) (*Entry, error) {
	return s.lines.next(ctx)
}

// Close is a no-op.
func (s *ReaderSource) Close() error {
	return nil
}

// FileSource implements LogSource for reading one log file.
// Compressed files (.gz, .zst, .zstd) are decompressed transparently.
type FileSource struct {
	path   string
	parser *TimestampParser
	diag   io.Writer

	current io.ReadCloser
	lines   *lineScanner
	done    bool
}

// NewFileSource creates a LogSource that reads the file at path.
// The file is opened on the first call to Next.
func NewFileSource(path string, parser *TimestampParser, diag io.Writer) *FileSource {
	return &FileSource{
		path:   path,
		parser: parser,
		diag:   diag,
	}
}

// Next returns the next parsed entry.
// Returns io.EOF once the file has been exhausted.
func (s *FileSource) Next(ctx context.Context) (*Entry, error) {
	if s.done {
		return nil, io.EOF
	}

	if s.lines == nil {
		if err := s.open(); err != nil {
			s.done = true
			return nil, err
		}
	}

	entry, err := s.lines.next(ctx)
	if err != nil {
		s.done = true
		if closeErr := s.Close(); closeErr != nil && err == io.EOF {
			return nil, fmt.Errorf("closing %s: %w", s.path, closeErr)
		}
		return nil, err
	}
	return entry, nil
}

// Close releases the file handle. It is safe to call more than once.
func (s *FileSource) Close() error {
	if s.current == nil {
		return nil
	}
	err := s.current.Close()
	s.current = nil
	return err
}

func (s *FileSource) open() error {
	rc, err := openLog(s.path)
	if err != nil {
		return err
	}
	s.current = rc
	s.lines = newLineScanner(rc, s.path, s.parser, s.diag)
	return nil
}

// ReadAll drains src into a slice, preserving order.
func ReadAll(ctx context.Context, src LogSource) ([]Entry, error) {
	var entries []Entry
	for {
		entry, err := src.Next(ctx)
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
}

// ReadFile reads every entry of the log at path. StdinPath reads Stdin.
// On any error no entries are returned.
func ReadFile(ctx context.Context, path string, parser *TimestampParser, diag io.Writer) ([]Entry, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	var source LogSource
	if path == StdinPath {
		source = NewReaderSource(Stdin, "stdin", parser, diag)
	} else {
		source = NewFileSource(path, parser, diag)
	}
	defer source.Close()

	return ReadAll(ctx, source)
}

package cmd

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
)

// loadInputs resolves the input set: a literal value or one value per line
// of an input file. The two are mutually exclusive.
func loadInputs(literal, file string) ([]string, error) {
	if literal != "" && file != "" {
		return nil, errors.New("a literal value and --file are mutually exclusive")
	}
	if literal == "" && file == "" {
		return nil, errors.New("no value or --file provided")
	}
	if file == "" {
		return []string{literal}, nil
	}

	in, err := openInput(file)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() {
		_ = in.Close()
	}()

	var values []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			values = append(values, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("input file %s is empty", file)
	}
	return values, nil
}

type readCloser struct {
	reader io.Reader
	close  func() error
}

func (r readCloser) Read(p []byte) (int, error) {
	return r.reader.Read(p)
}

func (r readCloser) Close() error {
	return r.close()
}

func openInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		return readCloser{
			reader: gz,
			close: func() error {
				_ = gz.Close()
				return f.Close()
			},
		}, nil
	}
	return f, nil
}

// ensureNewOutput rejects an output path that already exists. Checked before
// any request goes out, so a collision never wastes network round trips.
func ensureNewOutput(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("output file %s already exists", path)
	}
	return nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

type writeCloser struct {
	writer io.Writer
	close  func() error
}

func (w writeCloser) Write(p []byte) (int, error) {
	return w.writer.Write(p)
}

func (w writeCloser) Close() error {
	return w.close()
}

// newOutputWriter opens the output destination: stdout when path is empty,
// otherwise an append-create open so a multi-input batch accumulates into
// one file. A .gz suffix switches to a pgzip-compressed writer.
func newOutputWriter(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open output %s: %w", path, err)
	}
	if strings.HasSuffix(path, ".gz") {
		gz, err := pgzip.NewWriterLevel(f, pgzip.DefaultCompression)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		return writeCloser{
			writer: gz,
			close: func() error {
				if err := gz.Close(); err != nil {
					_ = f.Close()
					return err
				}
				return f.Close()
			},
		}, nil
	}
	return f, nil
}

// writeJSON serializes v compact (raw) or pretty and terminates it with a
// newline.
func writeJSON(w io.Writer, v any, raw bool) error {
	var (
		data []byte
		err  error
	)
	if raw {
		data, err = json.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode %T to JSON: %w", v, err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

var taxonPrefixes = []string{"d__", "p__", "c__", "o__", "f__", "g__", "s__"}

// isValidTaxon accepts the seven greengenes-style rank prefixes.
func isValidTaxon(name string) bool {
	for _, prefix := range taxonPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

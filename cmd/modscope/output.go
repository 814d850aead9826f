package main

import (
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"modscope/internal/errors"
)

// writeOutput writes the encoded report to a file. A ".gz" suffix selects
// gzip compression.
func writeOutput(path, content string) error {
	if strings.HasSuffix(path, ".gz") {
		return writeGzip(path, content)
	}

	if err := os.WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
		return errors.New(errors.OutputFailed, "failed to write report file", err)
	}
	return nil
}

func writeGzip(path, content string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.New(errors.OutputFailed, "failed to create report file", err)
	}
	defer func() { _ = file.Close() }()

	zw := gzip.NewWriter(file)
	if _, err := zw.Write([]byte(content + "\n")); err != nil {
		_ = zw.Close()
		return errors.New(errors.OutputFailed, "failed to compress report", err)
	}
	if err := zw.Close(); err != nil {
		return errors.New(errors.OutputFailed, "failed to finalize compressed report", err)
	}
	return nil
}

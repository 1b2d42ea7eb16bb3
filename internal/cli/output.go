package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	cerrors "github.com/matzehuels/composite/pkg/errors"
	"github.com/matzehuels/composite/pkg/pipeline"
)

// stdoutPath selects standard output as the render destination.
const stdoutPath = "-"

// basePath strips a known format extension from output, so "figure.svg" and
// "figure" both name the base "figure".
func basePath(output string) string {
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(strings.ToLower(ext), ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath returns the file for one format: the base path with the format
// as extension, or output unchanged when it already names that format.
func outputPath(output, format string) string {
	if strings.EqualFold(filepath.Ext(output), "."+format) {
		return output
	}
	return basePath(output) + "." + format
}

// writeArtifacts writes each rendered format to its file, in the order of
// formats, and returns the paths written. Output "-" writes the single
// requested format to stdout.
func writeArtifacts(artifacts map[string][]byte, output string, formats []string) ([]string, error) {
	if output == stdoutPath {
		if len(formats) != 1 {
			return nil, cerrors.New(cerrors.ErrCodeInvalidPath, "stdout output needs exactly one format, got %d", len(formats))
		}
		if _, err := os.Stdout.Write(artifacts[formats[0]]); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if err := cerrors.ValidateOutputPath(output); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			return paths, cerrors.New(cerrors.ErrCodeInternal, "no %s artifact rendered", format)
		}
		path := outputPath(output, format)
		if err := writeFile(path, data); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// openOutput creates the file at path, creating missing parent directories.
func openOutput(path string) (io.WriteCloser, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}

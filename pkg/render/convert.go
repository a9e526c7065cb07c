package render

import (
	"bytes"
	"os/exec"
	"strings"

	perrors "github.com/matzehuels/blobposter/pkg/errors"
)

// Converter is the external tool used for SVG conversion.
var Converter = "rsvg-convert"

const installHint = "install librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux)"

// ToPDF converts an SVG document to a single-page PDF of the same size.
// It fails with UNSUPPORTED when the converter is not installed.
func ToPDF(svg []byte) ([]byte, error) {
	return convert(svg, "pdf")
}

// Available reports whether the converter is on PATH.
func Available() bool {
	_, err := exec.LookPath(Converter)
	return err == nil
}

func convert(svg []byte, format string) ([]byte, error) {
	bin, err := exec.LookPath(Converter)
	if err != nil {
		return nil, perrors.New(perrors.ErrCodeUnsupported, "%s output needs %s (%s)", format, Converter, installHint)
	}

	cmd := exec.Command(bin, "--format", format)
	cmd.Stdin = bytes.NewReader(svg)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInternal, err, "%s: %s", Converter, strings.TrimSpace(stderr.String()))
	}
	return out.Bytes(), nil
}

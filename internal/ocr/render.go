package ocr

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
)

const defaultRenderDPI = 200

// RenderPage renders one PDF page to a PNG under outDir using pdftoppm and
// returns the image path.
func RenderPage(ctx context.Context, pdfPath string, page int, outDir string, dpi int) (string, error) {
	if dpi <= 0 {
		dpi = defaultRenderDPI
	}
	prefix := filepath.Join(outDir, fmt.Sprintf("page_%d", page))

	cmd := exec.CommandContext(ctx, "pdftoppm",
		"-f", strconv.Itoa(page),
		"-l", strconv.Itoa(page),
		"-r", strconv.Itoa(dpi),
		"-png", "-singlefile",
		pdfPath, prefix,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("pdftoppm failed for page %d: %w: %s", page, err, out)
	}
	return prefix + ".png", nil
}

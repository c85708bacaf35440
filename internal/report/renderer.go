// Package report renders fixed-layout PDF documents for stored prediction
// records. The layout is literal and not configurable: given the same record,
// the visual content is always identical.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/smarthire/backend/internal/features"
	"github.com/smarthire/backend/pkg/models"
	"github.com/unidoc/unipdf/v3/creator"
	pdfmodel "github.com/unidoc/unipdf/v3/model"
)

const (
	fontSize  = 12
	leftX     = 100.0
	topY      = 42.0
	lineStep  = 20.0
	titleText = "Smart Hire: Prediction Report"
)

// Line is one positioned text line of the report.
type Line struct {
	Text string
	Y    float64
}

// Renderer writes prediction reports into a shared directory. Concurrent
// renders of the same record race benignly: content is deterministic per id,
// so last write wins with equivalent bytes.
type Renderer struct {
	dir string
}

// NewRenderer creates the reports directory if needed and returns a Renderer.
func NewRenderer(dir string) (*Renderer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create reports directory: %w", err)
	}
	return &Renderer{dir: dir}, nil
}

// Dir returns the directory reports are written into.
func (r *Renderer) Dir() string {
	return r.dir
}

// Filename returns the deterministic report file name for a record id.
func Filename(id uuid.UUID) string {
	return fmt.Sprintf("prediction_%s.pdf", id)
}

// Render writes the PDF for rec and returns the path of the written file.
func (r *Renderer) Render(rec *models.PredictionRecord) (string, error) {
	font, err := pdfmodel.NewStandard14Font(pdfmodel.HelveticaName)
	if err != nil {
		return "", fmt.Errorf("load font: %w", err)
	}

	c := creator.New()
	c.SetPageSize(creator.PageSizeLetter)
	c.NewPage()

	for _, line := range Layout(rec) {
		p := c.NewParagraph(line.Text)
		p.SetFont(font)
		p.SetFontSize(fontSize)
		p.SetPos(leftX, line.Y)
		if err := c.Draw(p); err != nil {
			return "", fmt.Errorf("draw line: %w", err)
		}
	}

	path := filepath.Join(r.dir, Filename(rec.ID))
	if err := c.WriteToFile(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// Layout computes the full positioned text content for a record: title,
// formatted timestamp, human label, probability percentage, then one line per
// input field. Pure; shared with tests.
func Layout(rec *models.PredictionRecord) []Line {
	lines := []Line{
		{Text: titleText, Y: topY},
		{Text: "Date: " + rec.CreatedAt.UTC().Format("2006-01-02 15:04:05"), Y: topY + lineStep},
		{Text: "Prediction: " + LabelText(rec.Prediction), Y: topY + 2*lineStep},
		{Text: fmt.Sprintf("Probability of Hire: %.2f%%", rec.Probability*100), Y: topY + 3*lineStep},
		{Text: "Input Data:", Y: topY + 4*lineStep},
	}

	y := topY + 5*lineStep
	for _, name := range inputOrder(rec.Input) {
		lines = append(lines, Line{
			Text: fmt.Sprintf("%s: %s", name, formatValue(rec.Input[name])),
			Y:    y,
		})
		y += lineStep
	}
	return lines
}

// LabelText maps the integer label to its human form.
func LabelText(prediction int) string {
	if prediction == models.LabelHired {
		return "Hired"
	}
	return "Not Hired"
}

// inputOrder lists the record's input keys: recognized features in trained
// vector order first, any extra keys sorted after them.
func inputOrder(input map[string]any) []string {
	var names []string
	seen := make(map[string]bool)
	for _, name := range features.FeatureNames() {
		if _, ok := input[name]; ok {
			names = append(names, name)
			seen[name] = true
		}
	}

	var extras []string
	for name := range input {
		if !seen[name] {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	return append(names, extras...)
}

func formatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	default:
		return fmt.Sprintf("%v", v)
	}
}

package ui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ytget/image-scaler/internal/model"
)

// Selection holds what the user picked on the main screen
type Selection struct {
	Mode      model.InputMode
	Inputs    []string
	InputPath string // the picked file or folder
	OutputDir string
	Operation model.Operation
	Scale     model.ScaleFactor
}

// DefaultSelection returns the state shown at startup and after every run
func DefaultSelection() Selection {
	return Selection{
		Mode:      model.InputModeFile,
		Operation: model.OperationUpscale,
		Scale:     model.DefaultScale,
	}
}

// Reset restores the defaults
func (s *Selection) Reset() {
	*s = DefaultSelection()
}

// SetMode switches the input mode, dropping inputs picked in the other mode
func (s *Selection) SetMode(mode model.InputMode) {
	if s.Mode == mode {
		return
	}
	s.Mode = mode
	s.Inputs = nil
	s.InputPath = ""
}

// SetInputs records the resolved inputs for path
func (s *Selection) SetInputs(path string, inputs []string) {
	s.InputPath = path
	s.Inputs = append([]string(nil), inputs...)
}

// Job snapshots the selection into a job
func (s Selection) Job() model.Job {
	return model.NewJob(s.Inputs, s.Operation, s.Scale, s.OutputDir)
}

// InputSummary describes the picked input for the input label
func (s Selection) InputSummary(l *Localization) string {
	if len(s.Inputs) == 0 {
		return l.GetText(KeyNoInputSelected)
	}
	if s.Mode == model.InputModeFolder {
		return fmt.Sprintf(l.GetText(KeyFilesInFolder), len(s.Inputs), filepath.Base(s.InputPath))
	}
	return filepath.Base(s.Inputs[0])
}

// OutputSummary describes the output folder for the output label
func (s Selection) OutputSummary(l *Localization) string {
	if s.OutputDir == "" {
		return l.GetText(KeyNoOutputSelected)
	}
	return filepath.Base(s.OutputDir)
}

// errorMessage maps an error to the text shown in an error dialog
func errorMessage(err error, l *Localization) string {
	switch {
	case errors.Is(err, model.ErrMissingInput):
		return l.GetText(KeyMissingInput)
	case errors.Is(err, model.ErrMissingOutputDir):
		return l.GetText(KeyMissingOutput)
	case errors.Is(err, model.ErrNoMatchingFiles):
		return l.GetText(KeyNoPNGInFolder)
	case errors.Is(err, model.ErrBusy):
		return l.GetText(KeyBusy)
	case errors.Is(err, model.ErrInvalidJob):
		return l.GetText(KeyInvalidJob)
	case errors.Is(err, model.ErrModelNotFound):
		return l.GetText(KeyModelNotFound) + ":\n" + err.Error()
	case errors.Is(err, model.ErrInference):
		return l.GetText(KeyInferenceError) + ":\n" + err.Error()
	}
	return err.Error()
}

// summaryMessage builds the text of the completion dialog
func summaryMessage(report *model.Report, l *Localization) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf(l.GetText(KeyCompleted), operationLabel(report.Operation, l)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf(l.GetText(KeyResultsIn), report.OutputDir))

	if report.HasFailures() {
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf(l.GetText(KeyFailedItems), len(report.Failures), report.Total))
		for _, failure := range report.Failures {
			b.WriteString("\n")
			b.WriteString(filepath.Base(failure.Input))
			b.WriteString(": ")
			b.WriteString(firstLine(failure.Err.Error()))
		}
	}
	return b.String()
}

func operationLabel(op model.Operation, l *Localization) string {
	if op == model.OperationDownscale {
		return l.GetText(KeyDownscale)
	}
	return l.GetText(KeyUpscale)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

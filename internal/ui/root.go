package ui

import (
	"context"
	"errors"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-scaler/internal/batch"
	"github.com/ytget/image-scaler/internal/config"
	"github.com/ytget/image-scaler/internal/downscale"
	"github.com/ytget/image-scaler/internal/model"
	"github.com/ytget/image-scaler/internal/platform"
	"github.com/ytget/image-scaler/internal/upscale"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization

	selection Selection
	processor *batch.Processor

	// Form widgets
	inputTypeLabel *widget.Label
	modeSelect     *widget.Select
	selectInputBtn *widget.Button
	inputLabel     *widget.Label
	chooseOutBtn   *widget.Button
	outputLabel    *widget.Label
	operationLabel *widget.Label
	operationRadio *widget.RadioGroup
	scaleLabel     *widget.Label
	scaleSelect    *widget.Select
	progressBar    *widget.ProgressBar
	statusLabel    *widget.Label
	runBtn         *widget.Button
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		selection:    DefaultSelection(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	l := ui.localization

	// Step 1: input type
	ui.inputTypeLabel = widget.NewLabel(l.GetText(KeyInputType))
	ui.modeSelect = widget.NewSelect(ui.modeOptions(), ui.onModeChanged)
	modeRow := container.NewHBox(ui.inputTypeLabel, ui.modeSelect)

	// Step 2: input selection
	ui.selectInputBtn = widget.NewButton(IconFile+" "+l.GetText(KeySelectInput), ui.onSelectInput)
	ui.inputLabel = widget.NewLabel("")
	ui.inputLabel.Wrapping = fyne.TextWrapWord
	ui.inputLabel.Alignment = fyne.TextAlignCenter

	// Step 3: output folder
	ui.chooseOutBtn = widget.NewButton(IconFolder+" "+l.GetText(KeyChooseOutput), ui.onSelectOutput)
	ui.outputLabel = widget.NewLabel("")
	ui.outputLabel.Wrapping = fyne.TextWrapWord
	ui.outputLabel.Alignment = fyne.TextAlignCenter

	// Step 4: operation
	ui.operationLabel = widget.NewLabel(l.GetText(KeyOperation))
	ui.operationRadio = widget.NewRadioGroup(ui.operationOptions(), ui.onOperationChanged)
	ui.operationRadio.Horizontal = true
	ui.operationRadio.Required = true
	operationRow := container.NewHBox(ui.operationLabel, ui.operationRadio)

	// Step 5: scale factor
	ui.scaleLabel = widget.NewLabel(l.GetText(KeyScale))
	ui.scaleSelect = widget.NewSelect(scaleOptions(), ui.onScaleChanged)
	scaleRow := container.NewHBox(ui.scaleLabel, ui.scaleSelect)

	// Progress
	ui.progressBar = widget.NewProgressBar()
	ui.statusLabel = widget.NewLabel(l.GetText(KeyReady))
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	// Step 6: run
	ui.runBtn = widget.NewButton(IconRun+" "+l.GetText(KeyRun), ui.onRunClick)
	ui.runBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	form := container.NewVBox(
		container.NewBorder(nil, nil, nil, settingsBtn, modeRow),
		ui.selectInputBtn,
		ui.inputLabel,
		ui.chooseOutBtn,
		ui.outputLabel,
		operationRow,
		scaleRow,
		ui.progressBar,
		ui.statusLabel,
		ui.runBtn,
	)

	ui.applySelection()
	ui.window.SetContent(container.NewPadded(form))

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization

	ui.window.SetTitle(l.GetText(KeyAppTitle))
	ui.inputTypeLabel.SetText(l.GetText(KeyInputType))
	ui.selectInputBtn.SetText(IconFile + " " + l.GetText(KeySelectInput))
	ui.chooseOutBtn.SetText(IconFolder + " " + l.GetText(KeyChooseOutput))
	ui.operationLabel.SetText(l.GetText(KeyOperation))
	ui.scaleLabel.SetText(l.GetText(KeyScale))
	ui.runBtn.SetText(IconRun + " " + l.GetText(KeyRun))

	ui.modeSelect.Options = ui.modeOptions()
	ui.operationRadio.Options = ui.operationOptions()
	ui.applySelection()

	if ui.processor == nil || !ui.processor.IsRunning() {
		ui.statusLabel.SetText(l.GetText(KeyReady))
	}
}

// applySelection pushes the current selection into the form widgets
func (ui *RootUI) applySelection() {
	s := ui.selection

	if s.Mode == model.InputModeFolder {
		ui.modeSelect.SetSelectedIndex(1)
	} else {
		ui.modeSelect.SetSelectedIndex(0)
	}
	ui.operationRadio.SetSelected(operationLabel(s.Operation, ui.localization))
	ui.scaleSelect.SetSelected(s.Scale.String())

	ui.inputLabel.SetText(s.InputSummary(ui.localization))
	ui.outputLabel.SetText(s.OutputSummary(ui.localization))
}

func (ui *RootUI) modeOptions() []string {
	return []string{ui.localization.GetText(KeyModeFile), ui.localization.GetText(KeyModeFolder)}
}

func (ui *RootUI) operationOptions() []string {
	return []string{ui.localization.GetText(KeyUpscale), ui.localization.GetText(KeyDownscale)}
}

func scaleOptions() []string {
	options := make([]string, 0, len(model.SupportedScales))
	for _, scale := range model.SupportedScales {
		options = append(options, scale.String())
	}
	return options
}

// onModeChanged handles the File/Folder select
func (ui *RootUI) onModeChanged(string) {
	mode := model.InputModeFile
	if ui.modeSelect.SelectedIndex() == 1 {
		mode = model.InputModeFolder
	}
	if mode == ui.selection.Mode {
		return
	}
	ui.selection.SetMode(mode)
	ui.inputLabel.SetText(ui.selection.InputSummary(ui.localization))
}

// onOperationChanged handles the Upscale/Downscale radio group
func (ui *RootUI) onOperationChanged(selected string) {
	if selected == ui.localization.GetText(KeyDownscale) {
		ui.selection.Operation = model.OperationDownscale
	} else if selected == ui.localization.GetText(KeyUpscale) {
		ui.selection.Operation = model.OperationUpscale
	}
}

// onScaleChanged handles the scale select
func (ui *RootUI) onScaleChanged(selected string) {
	if scale, err := model.ParseScaleFactor(selected); err == nil {
		ui.selection.Scale = scale
	}
}

// onSelectInput opens a file or folder dialog depending on the input mode
func (ui *RootUI) onSelectInput() {
	if ui.selection.Mode == model.InputModeFolder {
		ui.selectInputFolder()
		return
	}

	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.showError(err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		inputs, err := platform.ResolveInputs(model.InputModeFile, path)
		if err != nil {
			ui.showError(err)
			return
		}
		ui.selection.SetInputs(path, inputs)
		ui.inputLabel.SetText(ui.selection.InputSummary(ui.localization))
		log.Printf("Selected input file: %s", path)
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{platform.PNGExtension}))
	ui.setDialogLocation(fd)
	fd.Show()
}

func (ui *RootUI) selectInputFolder() {
	fd := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.showError(err)
			return
		}
		if uri == nil {
			return
		}
		folder := uri.Path()

		inputs, err := platform.ListPNGFiles(folder)
		if errors.Is(err, model.ErrNoMatchingFiles) {
			dialog.ShowInformation(ui.localization.GetText(KeyNoPNG), ui.localization.GetText(KeyNoPNGInFolder), ui.window)
			return
		}
		if err != nil {
			ui.showError(err)
			return
		}
		ui.selection.SetInputs(folder, inputs)
		ui.inputLabel.SetText(ui.selection.InputSummary(ui.localization))
		log.Printf("Selected input folder: %s (%d PNG files)", folder, len(inputs))
	}, ui.window)
	ui.setDialogLocation(fd)
	fd.Show()
}

// onSelectOutput opens a folder dialog for the output directory
func (ui *RootUI) onSelectOutput() {
	fd := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.showError(err)
			return
		}
		if uri == nil {
			return
		}
		ui.selection.OutputDir = uri.Path()
		ui.outputLabel.SetText(ui.selection.OutputSummary(ui.localization))
		log.Printf("Selected output folder: %s", ui.selection.OutputDir)
	}, ui.window)
	ui.setDialogLocation(fd)
	fd.Show()
}

// setDialogLocation starts file dialogs in the user's Pictures folder when it exists
func (ui *RootUI) setDialogLocation(fd *dialog.FileDialog) {
	dir, err := platform.GetHomePicturesDir()
	if err != nil {
		return
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return
	}
	if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
		fd.SetLocation(lister)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	})
}

// newProcessor builds a processor from the current settings
func (ui *RootUI) newProcessor() (*batch.Processor, error) {
	downscaler, err := downscale.NewService(ui.settings.GetResizeFilter())
	if err != nil {
		return nil, err
	}
	upscaler := upscale.NewService(ui.settings.UpscaleConfig(), nil)

	processor := batch.NewProcessor(upscaler, downscaler)
	processor.SetUpdateCallback(ui.onItemUpdate)
	return processor, nil
}

// onRunClick validates the selection and starts the batch on a worker goroutine
func (ui *RootUI) onRunClick() {
	if ui.processor != nil && ui.processor.IsRunning() {
		ui.showError(model.ErrBusy)
		return
	}

	job := ui.selection.Job()
	if err := job.Validate(); err != nil {
		ui.showError(err)
		return
	}

	processor, err := ui.newProcessor()
	if err != nil {
		ui.showError(err)
		return
	}
	ui.processor = processor

	ui.setRunning(true)
	ui.progressBar.SetValue(0)

	go func() {
		report, err := processor.Run(context.Background(), job)
		fyne.Do(func() {
			ui.onRunFinished(report, err)
		})
	}()
}

// onItemUpdate receives progress from the worker goroutine
func (ui *RootUI) onItemUpdate(update model.ItemUpdate) {
	if update.Status == model.ItemStatusError {
		log.Printf("Item %d failed: %v", update.Index, update.Err)
	}
	fyne.Do(func() {
		ui.statusLabel.SetText(update.Label)
		ui.progressBar.SetValue(update.Progress.Fraction())
	})
}

// onRunFinished shows the outcome and resets the form. Runs on the UI thread.
func (ui *RootUI) onRunFinished(report *model.Report, err error) {
	ui.setRunning(false)

	if err != nil {
		log.Printf("Batch aborted: %v", err)
		ui.showError(err)
	} else if report != nil {
		ui.progressBar.SetValue(1)
		ui.sendCompletionNotification(report)
		dialog.ShowInformation(ui.localization.GetText(KeyDone), summaryMessage(report, ui.localization), ui.window)

		if ui.settings.GetAutoRevealOnComplete() && report.Succeeded > 0 {
			ui.onRevealFolder(report.OutputDir)
		}
	}

	ui.resetForm()
}

// resetForm restores default selections after a run
func (ui *RootUI) resetForm() {
	ui.selection.Reset()
	ui.applySelection()
	ui.progressBar.SetValue(0)
	ui.statusLabel.SetText(ui.localization.GetText(KeyReady))
}

// setRunning toggles the controls that must not change during a run
func (ui *RootUI) setRunning(running bool) {
	controls := []fyne.Disableable{
		ui.runBtn, ui.selectInputBtn, ui.chooseOutBtn,
		ui.modeSelect, ui.operationRadio, ui.scaleSelect,
	}
	for _, c := range controls {
		if running {
			c.Disable()
		} else {
			c.Enable()
		}
	}
}

// sendCompletionNotification sends a system notification for a finished batch
func (ui *RootUI) sendCompletionNotification(report *model.Report) {
	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyDone),
		Content: firstLine(summaryMessage(report, ui.localization)),
	})
}

// onRevealFolder opens dir in the system file manager
func (ui *RootUI) onRevealFolder(dir string) {
	if err := platform.OpenFolder(dir); err != nil {
		log.Printf("Error revealing folder %s: %v", dir, err)
		dialog.ShowError(errors.New(ui.localization.GetText(KeyErrorOpeningDir)+": "+err.Error()), ui.window)
	}
}

// showError shows err in a localized error dialog
func (ui *RootUI) showError(err error) {
	dialog.ShowError(errors.New(errorMessage(err, ui.localization)), ui.window)
}

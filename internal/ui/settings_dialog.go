package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-scaler/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	appDirEntry    *widget.Entry
	pythonEntry    *widget.Entry
	scriptEntry    *widget.Entry
	familyEntry    *widget.Entry
	timeoutEntry   *widget.Entry
	filterSelect   *widget.Select
	languageSelect *widget.Select
	autoRevealChk  *widget.Check

	// language display name -> code
	languageCodes map[string]string
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved runs after
// the values were stored.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	// Real-ESRGAN folder selection
	sd.appDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	appDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.appDirEntry)

	sd.pythonEntry = widget.NewEntry()
	sd.scriptEntry = widget.NewEntry()
	sd.familyEntry = widget.NewEntry()

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(TimeoutPlaceholder)
	sd.timeoutEntry.Validator = validateTimeout

	sd.filterSelect = widget.NewSelect(sd.settings.GetResizeFilterOptions(), nil)

	// Language selection, shown by display name
	sd.languageCodes = make(map[string]string)
	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.autoRevealChk = widget.NewCheck(l.GetText(KeyAutoReveal), nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyExecutorSection)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyAppDirectory)+":"),
		appDirRow,

		widget.NewLabel(l.GetText(KeyPythonExecutable)+":"),
		sd.pythonEntry,

		widget.NewLabel(l.GetText(KeyInferenceScript)+":"),
		sd.scriptEntry,

		widget.NewLabel(l.GetText(KeyModelFamily)+":"),
		sd.familyEntry,

		widget.NewLabel(l.GetText(KeyTimeoutMinutes)+":"),
		sd.timeoutEntry,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyDownscaleSection)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyResizeFilter)+":"),
		sd.filterSelect,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyInterfaceSection)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
		sd.autoRevealChk,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.appDirEntry.SetText(sd.settings.GetAppDirectory())
	sd.pythonEntry.SetText(sd.settings.GetPythonExecutable())
	sd.scriptEntry.SetText(sd.settings.GetInferenceScript())
	sd.familyEntry.SetText(sd.settings.GetModelFamily())
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetTimeoutMinutes()))
	sd.filterSelect.SetSelected(sd.settings.GetResizeFilter())
	if name, ok := sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()]; ok {
		sd.languageSelect.SetSelected(name)
	}
	sd.autoRevealChk.SetChecked(sd.settings.GetAutoRevealOnComplete())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.appDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetAppDirectory(sd.appDirEntry.Text)
	sd.settings.SetPythonExecutable(sd.pythonEntry.Text)
	sd.settings.SetInferenceScript(sd.scriptEntry.Text)
	sd.settings.SetModelFamily(sd.familyEntry.Text)

	// Invalid timeouts keep the stored value
	if minutes, err := strconv.Atoi(strings.TrimSpace(sd.timeoutEntry.Text)); err == nil {
		sd.settings.SetTimeoutMinutes(minutes)
	}

	if sd.filterSelect.Selected != "" {
		sd.settings.SetResizeFilter(sd.filterSelect.Selected)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	sd.settings.SetAutoRevealOnComplete(sd.autoRevealChk.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	// Show confirmation
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// validateTimeout accepts a whole number of minutes within the settings range
func validateTimeout(text string) error {
	minutes, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return err
	}
	if minutes < 0 || minutes > config.MaxTimeoutMinutes {
		return strconv.ErrRange
	}
	return nil
}

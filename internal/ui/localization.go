package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyFile             = "file"
	KeySettings         = "settings"
	KeyLanguage         = "language"
	KeyInputType        = "input_type"
	KeyModeFile         = "mode_file"
	KeyModeFolder       = "mode_folder"
	KeySelectInput      = "select_input"
	KeyNoInputSelected  = "no_input_selected"
	KeyFilesInFolder    = "files_in_folder"
	KeyChooseOutput     = "choose_output"
	KeyNoOutputSelected = "no_output_selected"
	KeyOperation        = "operation"
	KeyUpscale          = "upscale"
	KeyDownscale        = "downscale"
	KeyScale            = "scale"
	KeyRun              = "run"
	KeyReady            = "ready"
	KeyDone             = "done"
	KeyCompleted        = "completed"
	KeyResultsIn        = "results_in"
	KeyFailedItems      = "failed_items"
	KeyError            = "error"
	KeyNoPNG            = "no_png"
	KeyNoPNGInFolder    = "no_png_in_folder"
	KeyMissingInput     = "missing_input"
	KeyMissingOutput    = "missing_output"
	KeyModelNotFound    = "model_not_found"
	KeyBusy             = "busy"
	KeyInferenceError   = "inference_error"
	KeyInvalidJob       = "invalid_job"
	KeyErrorOpeningDir  = "error_opening_dir"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyBrowse           = "browse"
	KeyExecutorSection  = "executor_section"
	KeyAppDirectory     = "app_directory"
	KeyPythonExecutable = "python_executable"
	KeyInferenceScript  = "inference_script"
	KeyModelFamily      = "model_family"
	KeyTimeoutMinutes   = "timeout_minutes"
	KeyDownscaleSection = "downscale_section"
	KeyResizeFilter     = "resize_filter"
	KeyInterfaceSection = "interface_section"
	KeyAutoReveal       = "auto_reveal"
	KeySettingsSaved    = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"fr": "Français",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Real-ESRGAN Batch Upscaler/Downscaler",
		KeyFile:             "File",
		KeySettings:         "Settings",
		KeyLanguage:         "Language",
		KeyInputType:        "Input Type:",
		KeyModeFile:         "File",
		KeyModeFolder:       "Folder",
		KeySelectInput:      "Select...",
		KeyNoInputSelected:  "No input selected",
		KeyFilesInFolder:    "%d file(s) in %s",
		KeyChooseOutput:     "Choose Output Folder",
		KeyNoOutputSelected: "No output folder selected",
		KeyOperation:        "Operation:",
		KeyUpscale:          "Upscale",
		KeyDownscale:        "Downscale",
		KeyScale:            "Scale:",
		KeyRun:              "Run",
		KeyReady:            "Ready",
		KeyDone:             "Done",
		KeyCompleted:        "%s completed!",
		KeyResultsIn:        "Results in: %s",
		KeyFailedItems:      "%d of %d file(s) failed:",
		KeyError:            "Error",
		KeyNoPNG:            "No PNG",
		KeyNoPNGInFolder:    "No PNG files found in folder.",
		KeyMissingInput:     "No input selected.",
		KeyMissingOutput:    "No output folder selected.",
		KeyModelNotFound:    "Model not found",
		KeyBusy:             "A batch is already running.",
		KeyInferenceError:   "Error during inference",
		KeyInvalidJob:       "Invalid operation or scale.",
		KeyErrorOpeningDir:  "Error opening folder",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyBrowse:           "Browse",
		KeyExecutorSection:  "Upscaler",
		KeyAppDirectory:     "Real-ESRGAN Folder",
		KeyPythonExecutable: "Python Executable",
		KeyInferenceScript:  "Inference Script",
		KeyModelFamily:      "Model Family",
		KeyTimeoutMinutes:   "Timeout per Image (minutes, 0 = none)",
		KeyDownscaleSection: "Downscaler",
		KeyResizeFilter:     "Resize Filter",
		KeyInterfaceSection: "Interface",
		KeyAutoReveal:       "Open output folder when done",
		KeySettingsSaved:    "Settings saved successfully!",
	}

	// French texts
	l.texts["fr"] = map[string]string{
		KeyAppTitle:         "Real-ESRGAN Agrandissement/Réduction par lot",
		KeyFile:             "Fichier",
		KeySettings:         "Paramètres",
		KeyLanguage:         "Langue",
		KeyInputType:        "Type d'entrée :",
		KeyModeFile:         "Fichier",
		KeyModeFolder:       "Dossier",
		KeySelectInput:      "Sélectionner...",
		KeyNoInputSelected:  "Aucune entrée sélectionnée",
		KeyFilesInFolder:    "%d fichier(s) dans %s",
		KeyChooseOutput:     "Choisir le dossier de sortie",
		KeyNoOutputSelected: "Aucun dossier de sortie sélectionné",
		KeyOperation:        "Opération :",
		KeyUpscale:          "Agrandir",
		KeyDownscale:        "Réduire",
		KeyScale:            "Échelle :",
		KeyRun:              "Lancer",
		KeyReady:            "Prêt",
		KeyDone:             "Terminé",
		KeyCompleted:        "%s terminé !",
		KeyResultsIn:        "Résultats dans : %s",
		KeyFailedItems:      "%d fichier(s) sur %d en échec :",
		KeyError:            "Erreur",
		KeyNoPNG:            "Aucun PNG",
		KeyNoPNGInFolder:    "Aucun fichier PNG trouvé dans le dossier.",
		KeyMissingInput:     "Aucune entrée sélectionnée.",
		KeyMissingOutput:    "Aucun dossier de sortie sélectionné.",
		KeyModelNotFound:    "Modèle introuvable",
		KeyBusy:             "Un traitement est déjà en cours.",
		KeyInferenceError:   "Erreur pendant l'inférence",
		KeyInvalidJob:       "Opération ou échelle invalide.",
		KeyErrorOpeningDir:  "Erreur d'ouverture du dossier",
		KeySave:             "Enregistrer",
		KeyCancel:           "Annuler",
		KeyBrowse:           "Parcourir",
		KeyExecutorSection:  "Agrandissement",
		KeyAppDirectory:     "Dossier Real-ESRGAN",
		KeyPythonExecutable: "Exécutable Python",
		KeyInferenceScript:  "Script d'inférence",
		KeyModelFamily:      "Famille de modèles",
		KeyTimeoutMinutes:   "Délai par image (minutes, 0 = aucun)",
		KeyDownscaleSection: "Réduction",
		KeyResizeFilter:     "Filtre de redimensionnement",
		KeyInterfaceSection: "Interface",
		KeyAutoReveal:       "Ouvrir le dossier de sortie à la fin",
		KeySettingsSaved:    "Paramètres enregistrés !",
	}
}

package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyPlay            = "play"
	KeyPause           = "pause"
	KeyNext            = "next"
	KeyPrevious        = "previous"
	KeyPlayback        = "playback"
	KeyTracks          = "tracks"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeyAssetsDirectory = "assets_directory"
	KeyTickInterval    = "tick_interval"
	KeyVolume          = "volume"
	KeyLogLevel        = "log_level"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyBrowse          = "browse"
	KeySettingsSaved   = "settings_saved"
	KeyRestartRequired = "restart_required"
	KeyPlaybackGroup   = "playback_group"
	KeyInterfaceGroup  = "interface_group"
)

// DefaultLanguage is used when neither the selection nor the system locale is supported
const DefaultLanguage = "en"

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: DefaultLanguage,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" follows the OS locale.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
		return
	}
	l.currentLanguage = DefaultLanguage
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[DefaultLanguage]; exists {
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
		"ru": "Русский",
		"pt": "Português",
	}
}

// systemLanguage returns the two-letter language of the OS locale, e.g. "pt" for "pt-BR"
func systemLanguage() string {
	code := strings.ToLower(lang.SystemLocale().LanguageString())
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	return code
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Track Player",
		KeyPlay:            "Play",
		KeyPause:           "Pause",
		KeyNext:            "Next",
		KeyPrevious:        "Previous",
		KeyPlayback:        "Playback",
		KeyTracks:          "Tracks",
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeyAssetsDirectory: "Assets Directory",
		KeyTickInterval:    "Progress Update Interval (ms)",
		KeyVolume:          "Volume",
		KeyLogLevel:        "Log Level",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyBrowse:          "Browse",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyRestartRequired: "A new assets directory is used after restart.",
		KeyPlaybackGroup:   "Playback Settings",
		KeyInterfaceGroup:  "Interface Settings",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Плеер",
		KeyPlay:            "Воспроизвести",
		KeyPause:           "Пауза",
		KeyNext:            "Следующий",
		KeyPrevious:        "Предыдущий",
		KeyPlayback:        "Воспроизведение",
		KeyTracks:          "Треки",
		KeySettings:        "Настройки",
		KeyFile:            "Файл",
		KeyLanguage:        "Язык",
		KeyAssetsDirectory: "Папка с файлами",
		KeyTickInterval:    "Интервал обновления (мс)",
		KeyVolume:          "Громкость",
		KeyLogLevel:        "Уровень логирования",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeyBrowse:          "Обзор",
		KeySettingsSaved:   "Настройки сохранены!",
		KeyRestartRequired: "Новая папка с файлами будет использована после перезапуска.",
		KeyPlaybackGroup:   "Настройки воспроизведения",
		KeyInterfaceGroup:  "Настройки интерфейса",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Reprodutor",
		KeyPlay:            "Reproduzir",
		KeyPause:           "Pausar",
		KeyNext:            "Próxima",
		KeyPrevious:        "Anterior",
		KeyPlayback:        "Reprodução",
		KeyTracks:          "Faixas",
		KeySettings:        "Configurações",
		KeyFile:            "Arquivo",
		KeyLanguage:        "Idioma",
		KeyAssetsDirectory: "Pasta de Arquivos",
		KeyTickInterval:    "Intervalo de Atualização (ms)",
		KeyVolume:          "Volume",
		KeyLogLevel:        "Nível de Log",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeyBrowse:          "Procurar",
		KeySettingsSaved:   "Configurações salvas com sucesso!",
		KeyRestartRequired: "A nova pasta de arquivos será usada após reiniciar.",
		KeyPlaybackGroup:   "Configurações de Reprodução",
		KeyInterfaceGroup:  "Configurações de Interface",
	}
}

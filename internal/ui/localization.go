package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyLoad            = "load"
	KeyClear           = "clear"
	KeyLoadAll         = "load_all"
	KeyClearAll        = "clear_all"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeyBaseURL         = "base_url"
	KeyRequestTimeout  = "request_timeout"
	KeyConfirmLoadAll  = "confirm_load_all"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeySettingsSaved   = "settings_saved"
	KeyRestartRequired = "restart_required"
	KeyStatusEmpty     = "status_empty"
	KeyStatusLoading   = "status_loading"
	KeyStatusLoaded    = "status_loaded"
	KeyLoadedCount     = "loaded_count"
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
		"ko": "한국어",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Photo Loader",
		KeyLoad:            "Load",
		KeyClear:           "Clear",
		KeyLoadAll:         "Load All Images",
		KeyClearAll:        "Clear All Images",
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeyBaseURL:         "Image Service URL",
		KeyRequestTimeout:  "Request Timeout (seconds)",
		KeyConfirmLoadAll:  "Mark loaded only after download",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyRestartRequired: "Timeout changes apply after restart",
		KeyStatusEmpty:     "Empty",
		KeyStatusLoading:   "Loading",
		KeyStatusLoaded:    "Loaded",
		KeyLoadedCount:     "Loaded %d/%d",
	}

	// Korean texts
	l.texts["ko"] = map[string]string{
		KeyAppTitle:        "사진 불러오기",
		KeyLoad:            "불러오기",
		KeyClear:           "지우기",
		KeyLoadAll:         "모든 이미지 불러오기",
		KeyClearAll:        "모든 이미지 지우기",
		KeySettings:        "설정",
		KeyFile:            "파일",
		KeyLanguage:        "언어",
		KeyBaseURL:         "이미지 서비스 URL",
		KeyRequestTimeout:  "요청 제한 시간(초)",
		KeyConfirmLoadAll:  "다운로드 후에만 불러옴으로 표시",
		KeySave:            "저장",
		KeyCancel:          "취소",
		KeySettingsSaved:   "설정이 저장되었습니다!",
		KeyRestartRequired: "제한 시간 변경은 재시작 후 적용됩니다",
		KeyStatusEmpty:     "비어 있음",
		KeyStatusLoading:   "불러오는 중",
		KeyStatusLoaded:    "완료",
		KeyLoadedCount:     "불러옴 %d/%d",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Загрузчик фото",
		KeyLoad:            "Загрузить",
		KeyClear:           "Очистить",
		KeyLoadAll:         "Загрузить все",
		KeyClearAll:        "Очистить все",
		KeySettings:        "Настройки",
		KeyFile:            "Файл",
		KeyLanguage:        "Язык",
		KeyBaseURL:         "URL сервиса изображений",
		KeyRequestTimeout:  "Таймаут запроса (сек)",
		KeyConfirmLoadAll:  "Отмечать загруженным только после скачивания",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeySettingsSaved:   "Настройки успешно сохранены!",
		KeyRestartRequired: "Таймаут применится после перезапуска",
		KeyStatusEmpty:     "Пусто",
		KeyStatusLoading:   "Загрузка",
		KeyStatusLoaded:    "Загружено",
		KeyLoadedCount:     "Загружено %d/%d",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Carregador de Fotos",
		KeyLoad:            "Carregar",
		KeyClear:           "Limpar",
		KeyLoadAll:         "Carregar Todas",
		KeyClearAll:        "Limpar Todas",
		KeySettings:        "Configurações",
		KeyFile:            "Arquivo",
		KeyLanguage:        "Idioma",
		KeyBaseURL:         "URL do Serviço de Imagens",
		KeyRequestTimeout:  "Tempo Limite (segundos)",
		KeyConfirmLoadAll:  "Marcar como carregada só após o download",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeySettingsSaved:   "Configurações salvas com sucesso!",
		KeyRestartRequired: "O tempo limite vale após reiniciar",
		KeyStatusEmpty:     "Vazia",
		KeyStatusLoading:   "Carregando",
		KeyStatusLoaded:    "Carregada",
		KeyLoadedCount:     "Carregadas %d/%d",
	}
}

package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeySelectPath         = "select_path"
	KeyMusic              = "music"
	KeyInstall            = "install"
	KeyRunFEAR            = "run_fear"
	KeyRunExtraction      = "run_extraction_point"
	KeyRunPerseus         = "run_perseus_mandate"
	KeyOpenFolder         = "open_folder"
	KeySettings           = "settings"
	KeyLanguage           = "language"
	KeyMusicVolume        = "music_volume"
	KeyEffectsVolume      = "effects_volume"
	KeyMusicOnStartup     = "music_on_startup"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
	KeyGamePathHint       = "game_path_hint"
	KeyPathSelected       = "path_selected"
	KeyPathSelectedMsg    = "path_selected_message"
	KeyInvalidPath        = "invalid_path"
	KeySelectPathFirst    = "select_path_first"
	KeyPleaseWait         = "please_wait"
	KeyPleaseWaitMsg      = "please_wait_message"
	KeyInstalling         = "installing"
	KeyInstallProgress    = "install_progress"
	KeyInstallCompleted   = "install_completed"
	KeyInstallCompleteMsg = "install_completed_message"
	KeyInstallPartial     = "install_partial"
	KeyMultiplayerSetup   = "multiplayer_setup"
	KeyMultiplayerMsg     = "multiplayer_setup_message"
	KeyMusicLoadFailed    = "music_load_failed"
	KeySoundLoadFailed    = "sound_load_failed"
	KeyBackgroundFailed   = "background_load_failed"
	KeyLaunchFailed       = "launch_failed"
	KeyError              = "error"
	KeyWarning            = "warning"
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
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "FEAR Steam Multiplayer Fix",
		KeySelectPath:         "Select Path",
		KeyMusic:              "Music",
		KeyInstall:            "Install",
		KeyRunFEAR:            "Run FEAR",
		KeyRunExtraction:      "Run Extraction Point",
		KeyRunPerseus:         "Run Perseus Mandate",
		KeyOpenFolder:         "Open Folder",
		KeySettings:           "Settings",
		KeyLanguage:           "Language",
		KeyMusicVolume:        "Music Volume",
		KeyEffectsVolume:      "Button Volume",
		KeyMusicOnStartup:     "Play music on startup",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyGamePathHint:       "F.E.A.R. install folder",
		KeyPathSelected:       "Path Selected",
		KeyPathSelectedMsg:    "Game path set to: %s",
		KeyInvalidPath:        "Folder does not exist: %s",
		KeySelectPathFirst:    "Please select a game path first.",
		KeyPleaseWait:         "Please Wait",
		KeyPleaseWaitMsg:      "Installation runs in the background, please wait until it is fully installed.\n\nPress OK to continue.",
		KeyInstalling:         "Installing...",
		KeyInstallProgress:    "Step %d/%d: %s",
		KeyInstallCompleted:   "Installation Completed",
		KeyInstallCompleteMsg: "Installation completed successfully (%s downloaded).",
		KeyInstallPartial:     "Installation finished with errors (%d of %d steps failed).",
		KeyMultiplayerSetup:   "Multiplayer Setup",
		KeyMultiplayerMsg:     "After installation, go to the Multiplayer tab in the game.\n\nThen, go to Client Settings, and edit the CD key to a random character garbled mess.\n\nMake sure your CD key is unique and does not match other clients in the server.",
		KeyMusicLoadFailed:    "Failed to load music: %v",
		KeySoundLoadFailed:    "Failed to load button sound: %v",
		KeyBackgroundFailed:   "Failed to load background: %v",
		KeyLaunchFailed:       "Failed to launch %s: %v",
		KeyError:              "Error",
		KeyWarning:            "Warning",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "FEAR: исправление мультиплеера Steam",
		KeySelectPath:         "Выбрать путь",
		KeyMusic:              "Музыка",
		KeyInstall:            "Установить",
		KeyRunFEAR:            "Запустить FEAR",
		KeyRunExtraction:      "Запустить Extraction Point",
		KeyRunPerseus:         "Запустить Perseus Mandate",
		KeyOpenFolder:         "Открыть папку",
		KeySettings:           "Настройки",
		KeyLanguage:           "Язык",
		KeyMusicVolume:        "Громкость музыки",
		KeyEffectsVolume:      "Громкость кнопок",
		KeyMusicOnStartup:     "Включать музыку при запуске",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyGamePathHint:       "Папка установки F.E.A.R.",
		KeyPathSelected:       "Путь выбран",
		KeyPathSelectedMsg:    "Путь к игре: %s",
		KeyInvalidPath:        "Папка не существует: %s",
		KeySelectPathFirst:    "Сначала выберите путь к игре.",
		KeyPleaseWait:         "Подождите",
		KeyPleaseWaitMsg:      "Установка выполняется в фоне, дождитесь её завершения.\n\nНажмите OK, чтобы продолжить.",
		KeyInstalling:         "Установка...",
		KeyInstallProgress:    "Шаг %d/%d: %s",
		KeyInstallCompleted:   "Установка завершена",
		KeyInstallCompleteMsg: "Установка успешно завершена (загружено %s).",
		KeyInstallPartial:     "Установка завершена с ошибками (не выполнено шагов: %d из %d).",
		KeyMultiplayerSetup:   "Настройка мультиплеера",
		KeyMultiplayerMsg:     "После установки откройте в игре вкладку Multiplayer.\n\nЗатем перейдите в Client Settings и замените CD-ключ на случайный набор символов.\n\nКлюч должен быть уникальным и не совпадать с ключами других игроков на сервере.",
		KeyMusicLoadFailed:    "Не удалось загрузить музыку: %v",
		KeySoundLoadFailed:    "Не удалось загрузить звук кнопки: %v",
		KeyBackgroundFailed:   "Не удалось загрузить фон: %v",
		KeyLaunchFailed:       "Не удалось запустить %s: %v",
		KeyError:              "Ошибка",
		KeyWarning:            "Предупреждение",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Correção Multiplayer Steam do FEAR",
		KeySelectPath:         "Selecionar Pasta",
		KeyMusic:              "Música",
		KeyInstall:            "Instalar",
		KeyRunFEAR:            "Executar FEAR",
		KeyRunExtraction:      "Executar Extraction Point",
		KeyRunPerseus:         "Executar Perseus Mandate",
		KeyOpenFolder:         "Abrir Pasta",
		KeySettings:           "Configurações",
		KeyLanguage:           "Idioma",
		KeyMusicVolume:        "Volume da Música",
		KeyEffectsVolume:      "Volume dos Botões",
		KeyMusicOnStartup:     "Tocar música ao iniciar",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyGamePathHint:       "Pasta de instalação do F.E.A.R.",
		KeyPathSelected:       "Pasta Selecionada",
		KeyPathSelectedMsg:    "Caminho do jogo: %s",
		KeyInvalidPath:        "A pasta não existe: %s",
		KeySelectPathFirst:    "Selecione primeiro a pasta do jogo.",
		KeyPleaseWait:         "Aguarde",
		KeyPleaseWaitMsg:      "A instalação roda em segundo plano, aguarde até terminar.\n\nPressione OK para continuar.",
		KeyInstalling:         "Instalando...",
		KeyInstallProgress:    "Etapa %d/%d: %s",
		KeyInstallCompleted:   "Instalação Concluída",
		KeyInstallCompleteMsg: "Instalação concluída com sucesso (%s baixados).",
		KeyInstallPartial:     "Instalação terminou com erros (%d de %d etapas falharam).",
		KeyMultiplayerSetup:   "Configuração Multiplayer",
		KeyMultiplayerMsg:     "Após a instalação, abra a aba Multiplayer no jogo.\n\nDepois vá em Client Settings e troque a CD key por uma sequência aleatória de caracteres.\n\nA CD key precisa ser única e diferente das de outros jogadores no servidor.",
		KeyMusicLoadFailed:    "Falha ao carregar a música: %v",
		KeySoundLoadFailed:    "Falha ao carregar o som do botão: %v",
		KeyBackgroundFailed:   "Falha ao carregar o fundo: %v",
		KeyLaunchFailed:       "Falha ao executar %s: %v",
		KeyError:              "Erro",
		KeyWarning:            "Aviso",
	}
}

package config

import (
	"fyne.io/fyne/v2"

	"github.com/easydlp/easydlp/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir      = "download_directory"
	KeyQuality          = "quality"
	KeyAudioOnly        = "audio_only"
	KeySubtitleLanguage = "subtitle_language"
	KeySponsorBlock     = "sponsorblock_remove"
	KeyRateLimit        = "rate_limit"
	KeyProxyURL         = "proxy_url"
	KeyFilenameTemplate = "filename_template"
	KeyPostHook         = "post_hook"
	KeyClipboardWatch   = "clipboard_watch"
	KeySelectedPreset   = "selected_preset"
)

// Quality choices offered by the UI. Anything except QualityBest bounds
// the video height to the numeric part of the choice.
const (
	QualityBest  = "Best"
	Quality1080p = "1080p"
	Quality720p  = "720p"
	Quality480p  = "480p"
)

// Default values
const (
	DefaultQuality        = QualityBest
	DefaultClipboardWatch = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured save folder
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "."
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the save folder
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetQuality returns the configured quality choice
func (s *Settings) GetQuality() string {
	quality := s.app.Preferences().String(KeyQuality)
	if quality == "" {
		s.SetQuality(DefaultQuality)
		return DefaultQuality
	}
	return quality
}

// SetQuality sets the quality choice
func (s *Settings) SetQuality(quality string) {
	s.app.Preferences().SetString(KeyQuality, quality)
}

// GetQualityOptions returns the quality choices offered by the UI
func (s *Settings) GetQualityOptions() []string {
	return []string{QualityBest, Quality1080p, Quality720p, Quality480p}
}

// GetAudioOnly returns whether downloads extract audio only
func (s *Settings) GetAudioOnly() bool {
	return s.app.Preferences().Bool(KeyAudioOnly)
}

// SetAudioOnly sets the audio-only flag
func (s *Settings) SetAudioOnly(audioOnly bool) {
	s.app.Preferences().SetBool(KeyAudioOnly, audioOnly)
}

// GetSubtitleLanguage returns the subtitle language, empty for none
func (s *Settings) GetSubtitleLanguage() string {
	return s.app.Preferences().String(KeySubtitleLanguage)
}

// SetSubtitleLanguage sets the subtitle language
func (s *Settings) SetSubtitleLanguage(lang string) {
	s.app.Preferences().SetString(KeySubtitleLanguage, lang)
}

// GetSubtitleLanguageOptions returns the subtitle choices offered by the UI
func (s *Settings) GetSubtitleLanguageOptions() []string {
	return []string{"", "en", "es", "fr"}
}

// GetSponsorBlock returns whether sponsored segments are removed
func (s *Settings) GetSponsorBlock() bool {
	return s.app.Preferences().Bool(KeySponsorBlock)
}

// SetSponsorBlock sets the sponsor-segment-removal flag
func (s *Settings) SetSponsorBlock(remove bool) {
	s.app.Preferences().SetBool(KeySponsorBlock, remove)
}

// GetRateLimit returns the download rate limit (e.g. "500K"), empty for none
func (s *Settings) GetRateLimit() string {
	return s.app.Preferences().String(KeyRateLimit)
}

// SetRateLimit sets the download rate limit
func (s *Settings) SetRateLimit(rate string) {
	s.app.Preferences().SetString(KeyRateLimit, rate)
}

// GetProxyURL returns the proxy URL, empty for none
func (s *Settings) GetProxyURL() string {
	return s.app.Preferences().String(KeyProxyURL)
}

// SetProxyURL sets the proxy URL
func (s *Settings) SetProxyURL(proxy string) {
	s.app.Preferences().SetString(KeyProxyURL, proxy)
}

// GetFilenameTemplate returns the output filename template, empty for the
// yt-dlp default
func (s *Settings) GetFilenameTemplate() string {
	return s.app.Preferences().String(KeyFilenameTemplate)
}

// SetFilenameTemplate sets the output filename template
func (s *Settings) SetFilenameTemplate(template string) {
	s.app.Preferences().SetString(KeyFilenameTemplate, template)
}

// GetPostHook returns the post-download shell command, empty for none
func (s *Settings) GetPostHook() string {
	return s.app.Preferences().String(KeyPostHook)
}

// SetPostHook sets the post-download shell command
func (s *Settings) SetPostHook(hook string) {
	s.app.Preferences().SetString(KeyPostHook, hook)
}

// GetClipboardWatch returns whether the clipboard watcher is enabled
func (s *Settings) GetClipboardWatch() bool {
	return s.app.Preferences().BoolWithFallback(KeyClipboardWatch, DefaultClipboardWatch)
}

// SetClipboardWatch enables or disables the clipboard watcher
func (s *Settings) SetClipboardWatch(watch bool) {
	s.app.Preferences().SetBool(KeyClipboardWatch, watch)
}

// GetSelectedPreset returns the name of the active preset, empty for none
func (s *Settings) GetSelectedPreset() string {
	return s.app.Preferences().String(KeySelectedPreset)
}

// SetSelectedPreset sets the active preset name
func (s *Settings) SetSelectedPreset(name string) {
	s.app.Preferences().SetString(KeySelectedPreset, name)
}

package config

import (
	"os"
	"runtime"
	"strings"
)

// Config is the full captool configuration. Every field has a workable
// default, so the tool runs without a config file; the file and the
// environment override the defaults in that order.
type Config struct {
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Fetch       FetchConfig       `yaml:"fetch"`
	OCR         OCRConfig         `yaml:"ocr"`
	Bridge      BridgeConfig      `yaml:"bridge"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Gemini      GeminiConfig      `yaml:"gemini"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type FetchConfig struct {
	BinaryPath string `yaml:"binary_path"`
	Format     string `yaml:"format"`
}

type OCRConfig struct {
	TesseractPath string `yaml:"tesseract_path"`
	PDFUnitePath  string `yaml:"pdfunite_path"`
	TiffSplitPath string `yaml:"tiffsplit_path"`
	Workers       int    `yaml:"workers"`
}

type BridgeConfig struct {
	OllamaDir   string `yaml:"ollama_dir"`
	LMStudioDir string `yaml:"lmstudio_dir"`
	LinkKind    string `yaml:"link_kind"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

// Validate applies environment overrides, then defaults. It never
// rejects a config outright: settings required by a single command
// (such as the whisper model path) are checked at that command's
// boundary, where a missing value is a fatal precondition failure.
func (c *Config) Validate() error {
	if v := os.Getenv("WHISPER_MODEL"); v != "" {
		c.Whisper.ModelPath = v
	}
	if v := os.Getenv("OLLAMA_MODELS"); v != "" {
		c.Bridge.OllamaDir = v
	}
	if v := os.Getenv("LMSTUDIO_MODELS"); v != "" {
		c.Bridge.LMStudioDir = v
	}
	if v := os.Getenv("GEMINI_API_KEYS"); v != "" {
		c.Gemini.APIKeys = splitKeys(v)
	}

	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = runtime.NumCPU()
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.Fetch.BinaryPath == "" {
		c.Fetch.BinaryPath = "yt-dlp"
	}
	if c.Fetch.Format == "" {
		c.Fetch.Format = "bestaudio/best"
	}
	if c.OCR.TesseractPath == "" {
		c.OCR.TesseractPath = "tesseract"
	}
	if c.OCR.PDFUnitePath == "" {
		c.OCR.PDFUnitePath = "pdfunite"
	}
	if c.OCR.TiffSplitPath == "" {
		c.OCR.TiffSplitPath = "tiffsplit"
	}
	if c.OCR.Workers <= 0 {
		c.OCR.Workers = runtime.NumCPU()
	}
	if c.Bridge.LinkKind == "" {
		c.Bridge.LinkKind = "soft"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = os.TempDir()
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	return nil
}

func splitKeys(v string) []string {
	var keys []string
	for _, k := range strings.Split(v, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

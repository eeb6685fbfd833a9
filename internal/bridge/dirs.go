package bridge

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// OllamaDir resolves the Ollama model store. An explicit value (config
// or OLLAMA_MODELS) wins; otherwise the platform default is used.
func OllamaDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".ollama", "models"), nil
}

// LMStudioDir resolves the LM Studio model directory. An explicit value
// (config or LMSTUDIO_MODELS) wins; otherwise ~/.lmstudio/models, with
// the legacy ~/.cache/lm-studio/models used when it already exists.
func LMStudioDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	if runtime.GOOS != "windows" {
		legacy := filepath.Join(home, ".cache", "lm-studio", "models")
		if info, err := os.Stat(legacy); err == nil && info.IsDir() {
			return legacy, nil
		}
	}
	return filepath.Join(home, ".lmstudio", "models"), nil
}

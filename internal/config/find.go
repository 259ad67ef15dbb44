package config

import (
	"os"
	"path/filepath"
)

// search order: project file upward from startDir, then XDG, then home dotfiles.
var projectNames = []string{
	".codetint.yaml",
	".codetint.yml",
	".codetint.toml",
	".codetint.json",
}

var xdgNames = []string{
	"config.yaml",
	"config.yml",
	"config.toml",
	"config.json",
}

// Find は設定ファイルを探索します。explicitPath が指定されていればそれを
// そのまま返します（存在しなければ空文字）。見つからなければ空文字を返し、
// 呼び出し側は既定値で動作します。
func Find(startDir, explicitPath, xdgHome, home string) string {
	if explicitPath != "" {
		if fileExists(explicitPath) {
			return explicitPath
		}
		return ""
	}

	dir := startDir
	for dir != "" {
		for _, name := range projectNames {
			candidate := filepath.Join(dir, name)
			if fileExists(candidate) {
				return candidate
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if xdgHome == "" && home != "" {
		xdgHome = filepath.Join(home, ".config")
	}
	if xdgHome != "" {
		for _, name := range xdgNames {
			candidate := filepath.Join(xdgHome, "codetint", name)
			if fileExists(candidate) {
				return candidate
			}
		}
	}

	if home != "" {
		for _, name := range projectNames {
			candidate := filepath.Join(home, name)
			if fileExists(candidate) {
				return candidate
			}
		}
	}
	return ""
}

// DefaultWritePath はグローバル設定の書き戻し先を返します。
func DefaultWritePath(xdgHome, home string) string {
	if xdgHome == "" && home != "" {
		xdgHome = filepath.Join(home, ".config")
	}
	if xdgHome == "" {
		return ""
	}
	return filepath.Join(xdgHome, "codetint", "config.yaml")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

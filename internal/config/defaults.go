package config

const (
	defaultLogLevel         = "info"
	defaultLogDir           = "~/.local/share/glint/logs"
	defaultLogRetentionDays = 30
	defaultColor            = "auto"
	defaultAnimation        = "auto"
)

// Default returns a Config populated with repository defaults. The log
// directory is left unexpanded; Load normalizes it.
func Default() Config {
	return Config{
		LogLevel:         defaultLogLevel,
		LogDir:           defaultLogDir,
		LogRetentionDays: defaultLogRetentionDays,
		Color:            defaultColor,
		Animation:        defaultAnimation,
	}
}

package config

type Config struct {
	ContentDir   string `mapstructure:"contentDir"`
	StorePath    string `mapstructure:"storePath"`
	Origin       string `mapstructure:"origin"`
	StorageQuota int64  `mapstructure:"storageQuota"`
	LogLevel     string `mapstructure:"logLevel"`
}

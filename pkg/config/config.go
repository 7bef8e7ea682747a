package config

// Values resolved from flags, environment and the config file.
var (
	LogLevel  string
	LogFile   string
	DevMode   bool
	Seed      int64
	Width     int
	Height    int
	AssetsDir string
	SaveFile  string
	Mute      bool
)

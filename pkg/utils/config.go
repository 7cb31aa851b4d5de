package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Catalog  CatalogConfig
	Schedule ScheduleConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// CatalogConfig points at the directory holding the flat-file catalog
// sources (movie.csv, theater.csv, user.csv) and the mirror projections
// (screening.csv, booking.csv).
type CatalogConfig struct {
	Dir string
}

type ScheduleConfig struct {
	// WindowDays is the length of the rolling window of screenings the
	// boot top-up keeps populated, starting from today.
	WindowDays int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DATA_DIR", "data/")
	viper.SetDefault("SCHEDULE_WINDOW_DAYS", 7)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Catalog: CatalogConfig{
			Dir: viper.GetString("DATA_DIR"),
		},
		Schedule: ScheduleConfig{
			WindowDays: viper.GetInt("SCHEDULE_WINDOW_DAYS"),
		},
	}

	return config, nil
}

package config

import (
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	ServerPort     string
	LogLevel       string
	MetricsEnabled bool

	// Settings общий источник настроек ключ-значение
	Settings *Settings
}

// LoadConfig читает .env (если есть) и переменные окружения.
// Ошибка godotenv не фатальна: конфиг заполняется значениями по умолчанию.
func LoadConfig() (Config, error) {
	err := godotenv.Load()

	settings := NewSettings(viper.New())

	return Config{
		DBHost:         settings.GetString("db.host"),
		DBPort:         settings.GetString("db.port"),
		DBUser:         settings.GetString("db.user"),
		DBPassword:     settings.GetString("db.password"),
		DBName:         settings.GetString("db.name"),
		ServerPort:     settings.GetString("server.port"),
		LogLevel:       settings.GetString("log.level"),
		MetricsEnabled: settings.v.GetBool("metrics.enabled"),
		Settings:       settings,
	}, err
}

// Settings реализует domain.Configuration поверх viper.
// Ключ "a.b.c" читается из переменной окружения A_B_C.
type Settings struct {
	v *viper.Viper
}

// NewSettings настраивает viper на чтение переменных окружения.
func NewSettings(v *viper.Viper) *Settings {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	return &Settings{v: v}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "password")
	v.SetDefault("db.name", "sonar_pr_decoration")
	v.SetDefault("server.port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("metrics.enabled", true)
}

// Set переопределяет значение ключа.
func (s *Settings) Set(key string, value any) {
	s.v.Set(key, value)
}

// GetString возвращает строковое значение ключа.
func (s *Settings) GetString(key string) string {
	return s.v.GetString(key)
}

// GetInt возвращает целое значение ключа. false, если ключ не задан или не является числом.
func (s *Settings) GetInt(key string) (int, bool) {
	if !s.v.IsSet(key) {
		return 0, false
	}

	value, err := strconv.Atoi(strings.TrimSpace(s.v.GetString(key)))
	if err != nil {
		return 0, false
	}
	return value, true
}

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App    App    `mapstructure:",squash"`
	Server Server `mapstructure:",squash"`
	Ollama Ollama `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Ollama agrupa a configuração do serviço de narrativa.
// APIKey vazio desativa o enriquecimento.
type Ollama struct {
	APIKey      string        `mapstructure:"ollama_api_key"`
	APIURL      string        `mapstructure:"ollama_api_url"`
	Model       string        `mapstructure:"ollama_model"`
	Timeout     time.Duration `mapstructure:"ollama_timeout"`
	Temperature float64       `mapstructure:"ollama_temperature"`
}

// Configured informa se existe uma credencial para o serviço remoto
func (o Ollama) Configured() bool {
	return o.APIKey != ""
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", "8000")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	v.SetDefault("OLLAMA_API_KEY", "")
	v.SetDefault("OLLAMA_API_URL", "https://ollama.com/api")
	v.SetDefault("OLLAMA_MODEL", "glm-4.6")
	v.SetDefault("OLLAMA_TIMEOUT", "60s")
	v.SetDefault("OLLAMA_TEMPERATURE", 0.4)

	v.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	return Load(viper.New())
}

// Load lê a configuração a partir das variáveis de ambiente vistas pelo viper
func Load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	SetDefaults(v)
	v.AutomaticEnv()

	err := v.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Ollama.Timeout <= 0 {
		config.Ollama.Timeout = 60 * time.Second
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Debug("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	DB     DBConfig
	LLM    LLMConfig
	Wiki   WikiConfig
	Quiz   QuizConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// LLMConfig selects and configures the generation backend.
// Provider is "openai" or "ollama".
type LLMConfig struct {
	Provider  string
	Model     string
	APIKey    string
	ServerURL string
	Timeout   time.Duration
}

type WikiConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	UserAgent      string
}

type QuizConfig struct {
	NumQuestions      int
	RelatedTopicLimit int
}

type LoggerConfig struct {
	Level string
	Env   string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../")
		viper.AddConfigPath("../../config")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("db.sslmode", "disable")
	viper.SetDefault("llm.provider", "openai")
	viper.SetDefault("llm.timeout", 60)
	viper.SetDefault("wiki.base_url", "https://en.wikipedia.org")
	viper.SetDefault("wiki.request_timeout", 30)
	viper.SetDefault("wiki.user_agent", "Mozilla/5.0 (compatible; wikiquiz/1.0)")
	viper.SetDefault("quiz.num_questions", 8)
	viper.SetDefault("quiz.related_topic_limit", 5)
	viper.SetDefault("logger.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			DBName:   viper.GetString("db.name"),
			SSLMode:  viper.GetString("db.sslmode"),
		},
		LLM: LLMConfig{
			Provider:  viper.GetString("llm.provider"),
			Model:     viper.GetString("llm.model"),
			APIKey:    viper.GetString("llm.api_key"),
			ServerURL: viper.GetString("llm.server_url"),
			Timeout:   viper.GetDuration("llm.timeout") * time.Second,
		},
		Wiki: WikiConfig{
			BaseURL:        viper.GetString("wiki.base_url"),
			RequestTimeout: viper.GetDuration("wiki.request_timeout") * time.Second,
			UserAgent:      viper.GetString("wiki.user_agent"),
		},
		Quiz: QuizConfig{
			NumQuestions:      viper.GetInt("quiz.num_questions"),
			RelatedTopicLimit: viper.GetInt("quiz.related_topic_limit"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
	}

	// Environment variables take precedence over file values
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		config.DB.Port = viper.GetInt("DB_PORT")
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		config.DB.DBName = dbname
	}
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		config.LLM.APIKey = apiKey
	}
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		config.LLM.Provider = provider
	}
	if serverURL := os.Getenv("LLM_SERVER_URL"); serverURL != "" {
		config.LLM.ServerURL = serverURL
	}
	if model := os.Getenv("LLM_MODEL"); model != "" {
		config.LLM.Model = model
	}

	return config, nil
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host,
		c.DB.Port,
		c.DB.User,
		c.DB.Password,
		c.DB.DBName,
		c.DB.SSLMode,
	)
}

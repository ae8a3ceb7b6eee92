package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Exam         Exam
	GeminiApiKey string
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Exam holds the exam policy knobs. Defaults match the published SOFA
// written-test rules: 15 minutes, 80% to pass, two attempts per day.
type Exam struct {
	QuestionsFile      string
	TimeLimitSeconds   int
	PassingScorePct    int
	MaxDailyAttempts   int
	AttemptWindowHours int
	ResultRecipient    string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("EXAM_TIME_LIMIT_SECONDS", 900)
	viper.SetDefault("EXAM_PASSING_SCORE_PCT", 80)
	viper.SetDefault("EXAM_MAX_DAILY_ATTEMPTS", 2)
	viper.SetDefault("EXAM_ATTEMPT_WINDOW_HOURS", 24)
	viper.SetDefault("EXAM_QUESTIONS_FILE", "questions.json")
	viper.SetDefault("EXAM_RESULT_RECIPIENT", "18sfs.s5b.pass-registration@us.af.mil")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Exam.QuestionsFile = viper.GetString("EXAM_QUESTIONS_FILE")
	config.Exam.TimeLimitSeconds = viper.GetInt("EXAM_TIME_LIMIT_SECONDS")
	config.Exam.PassingScorePct = viper.GetInt("EXAM_PASSING_SCORE_PCT")
	config.Exam.MaxDailyAttempts = viper.GetInt("EXAM_MAX_DAILY_ATTEMPTS")
	config.Exam.AttemptWindowHours = viper.GetInt("EXAM_ATTEMPT_WINDOW_HOURS")
	config.Exam.ResultRecipient = viper.GetString("EXAM_RESULT_RECIPIENT")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}

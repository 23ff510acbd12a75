package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Booking   BookingConfig   `yaml:"booking"   validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	RabbitMQ  RabbitMQConfig  `yaml:"rabbitmq"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"    validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"         validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"     validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"     validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"salonbooker"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"      validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"           validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"            validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"           validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// BookingConfig управляет блокировками, ретраями и расчётом предоплаты.
type BookingConfig struct {
	LockTimeout       time.Duration `yaml:"lock_timeout"        env:"BOOKING_LOCK_TIMEOUT"        env-default:"3s"     validate:"gt=0"`
	MaxAttempts       int           `yaml:"max_attempts"        env:"BOOKING_MAX_ATTEMPTS"        env-default:"3"      validate:"min=1,max=10"`
	RetryBaseDelay    time.Duration `yaml:"retry_base_delay"    env:"BOOKING_RETRY_BASE_DELAY"    env-default:"100ms"  validate:"gt=0"`
	RetryBackoff      float64       `yaml:"retry_backoff"       env:"BOOKING_RETRY_BACKOFF"       env-default:"2"      validate:"gte=1"`
	BufferTime        time.Duration `yaml:"buffer_time"         env:"BOOKING_BUFFER_TIME"         env-default:"15m"    validate:"gte=0"`
	MinDeposit        int64         `yaml:"min_deposit"         env:"BOOKING_MIN_DEPOSIT"         env-default:"10000"  validate:"gte=0"`
	MaxDeposit        int64         `yaml:"max_deposit"         env:"BOOKING_MAX_DEPOSIT"         env-default:"100000" validate:"gtefield=MinDeposit"`
	DefaultDepositPct float64       `yaml:"default_deposit_pct" env:"BOOKING_DEFAULT_DEPOSIT_PCT" env-default:"25"     validate:"gte=0,lte=100"`
}

// RetryStrategy задаёт расписание повторов транзакции при дедлоке.
func (b BookingConfig) RetryStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: b.MaxAttempts,
		Delay:    b.RetryBaseDelay,
		Backoff:  b.RetryBackoff,
	}
}

type SchedulerConfig struct {
	Interval     time.Duration `yaml:"interval"      env:"SCHEDULER_INTERVAL"      env-default:"5m" validate:"required,gt=0"`
	LookbackDays int           `yaml:"lookback_days" env:"SCHEDULER_LOOKBACK_DAYS" env-default:"1"  validate:"gte=0"`
}

func (s SchedulerConfig) Lookback() time.Duration {
	return time.Duration(s.LookbackDays) * 24 * time.Hour
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

// RabbitMQConfig: пустой URL отключает публикацию событий.
type RabbitMQConfig struct {
	URL   string `yaml:"url"   env:"RABBITMQ_URL"   env-default:""`
	Queue string `yaml:"queue" env:"RABBITMQ_QUEUE" env-default:"reservation.events"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}

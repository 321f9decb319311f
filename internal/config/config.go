// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config 集中所有執行期設定，啟動時載入一次後以值傳遞，
// 不使用套件層級的可變常數。
type Config struct {
	DatabaseURL   string `validate:"required"`
	RedisAddr     string `validate:"required"`
	RedisPassword string
	RedisDB       int    `validate:"gte=0"`
	ListenAddr    string `validate:"required"`
	WorkerCount   int    `validate:"gte=1"`

	// 安全性參數
	PasswordMinLength int `validate:"gte=1"`
	TokenBytes        int `validate:"gte=16"`
	BcryptCost        int `validate:"gte=4,lte=31"`
}

// 預設值沿用原系統設定：密碼至少 6 碼、32 byte 令牌、bcrypt cost 12
const (
	DefaultListenAddr        = ":8080"
	DefaultWorkerCount       = 1
	DefaultPasswordMinLength = 6
	DefaultTokenBytes        = 32
	DefaultBcryptCost        = 12
)

// Load 由環境變數組出 Config，缺漏欄位採預設值，
// 最後以 validator 檢查整體有效性。
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		ListenAddr:        DefaultListenAddr,
		WorkerCount:       DefaultWorkerCount,
		PasswordMinLength: DefaultPasswordMinLength,
		TokenBytes:        DefaultTokenBytes,
		BcryptCost:        DefaultBcryptCost,
	}

	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}

	var err error
	if cfg.RedisDB, err = intEnv("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.WorkerCount, err = intEnv("WORKER_COUNT", DefaultWorkerCount); err != nil {
		return Config{}, err
	}
	if cfg.PasswordMinLength, err = intEnv("PASSWORD_MIN_LENGTH", DefaultPasswordMinLength); err != nil {
		return Config{}, err
	}
	if cfg.TokenBytes, err = intEnv("TOKEN_BYTES", DefaultTokenBytes); err != nil {
		return Config{}, err
	}
	if cfg.BcryptCost, err = intEnv("BCRYPT_COST", DefaultBcryptCost); err != nil {
		return Config{}, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config 驗證失敗: %w", err)
	}
	return cfg, nil
}

func intEnv(name string, def int) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("無效的 %s: %v", name, err)
	}
	return n, nil
}

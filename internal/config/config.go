// Package config конфигурация бинарников. Значения берутся из переменных окружения (и .env файла),
// незаданные переменные заполняются из флагов командной строки.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

// loadDotEnv подгружает .env из рабочей директории, если он есть. Уже заданные переменные не перезаписываются.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %s", err.Error())
	}
	return nil
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func defaultIfZero[T comparable](value T, defaultValue T) T {
	var zero T
	if value == zero {
		return defaultValue
	}
	return value
}

// splitList разбирает список через запятую, пустые элементы отбрасываются.
func splitList(value string) []string {
	var res []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			res = append(res, item)
		}
	}
	return res
}

func mustLoad[T any](load func([]string) (*T, error), args []string) *T {
	conf, err := load(args)
	if err != nil {
		panic(err)
	}
	return conf
}

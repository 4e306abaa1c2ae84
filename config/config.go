package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	zxerrors "github.com/wwqdrh/minheap/internal/errors"
)

const (
	KeyCapacity = "capacity"
	KeyAddr     = "addr"
	KeyLogDir   = "log.dir"
	KeyLogLevel = "log.level"

	EnvPrefix = "MINHEAP"
)

type Config struct {
	Capacity int
	Addr     string
	LogDir   string
	LogLevel string
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyCapacity, 16)
	v.SetDefault(KeyAddr, ":8080")
	v.SetDefault(KeyLogDir, "")
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// ReadFile 读取可选的配置文件，file 为空时跳过
func ReadFile(v *viper.Viper, file string) error {
	if file == "" {
		return nil
	}
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read config %s", file)
	}
	return nil
}

func Load(v *viper.Viper) (Config, error) {
	c := Config{
		Capacity: v.GetInt(KeyCapacity),
		Addr:     v.GetString(KeyAddr),
		LogDir:   v.GetString(KeyLogDir),
		LogLevel: v.GetString(KeyLogLevel),
	}
	if c.Capacity <= 0 {
		return c, zxerrors.NewCode(zxerrors.ErrInvalidArgument, "capacity must be positive")
	}
	return c, nil
}

// Package config decodes the settings gathered by viper from the config
// file, the environment and the command line.
package config

import (
	"fmt"
	"strings"

	"contenttype/header"
	"contenttype/sniff"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const EnvPrefix = "CONTENTTYPE"

type Config struct {
	Sniffer Sniffer `mapstructure:"sniffer"`
	Log     Log     `mapstructure:"log"`
	Scan    Scan    `mapstructure:"scan"`
	HDFS    HDFS    `mapstructure:"hdfs"`
}

type Sniffer struct {
	Backend   string `mapstructure:"backend" validate:"required"`
	ReadLimit uint32 `mapstructure:"read_limit" validate:"min=64,max=1048576"`
}

type Log struct {
	Level      string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format     string `mapstructure:"format" validate:"oneof=text json"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size" validate:"min=0"`
	MaxBackups int    `mapstructure:"max_backups" validate:"min=0"`
	MaxAge     int    `mapstructure:"max_age" validate:"min=0"`
	Compress   bool   `mapstructure:"compress"`
}

type Scan struct {
	Workers int `mapstructure:"workers" validate:"min=1,max=256"`
}

// HDFS falls back to the hadoop configuration found through HADOOP_HOME or
// HADOOP_CONF_DIR for anything left empty.
type HDFS struct {
	Namenode   string `mapstructure:"namenode"`
	User       string `mapstructure:"user"`
	Kerberos   bool   `mapstructure:"kerberos"`
	KrbConfig  string `mapstructure:"krb_config"`
	KrbCCache  string `mapstructure:"krb_ccache"`
	HadoopHome string `mapstructure:"hadoop_home"`
}

var validate = validator.New()

// SetDefaults registers every key. AutomaticEnv only reaches Unmarshal for
// keys viper already knows about.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("sniffer.backend", sniff.Mimetype)
	v.SetDefault("sniffer.read_limit", header.DefaultLimit)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.file", "")
	v.SetDefault("log.compress", false)
	v.SetDefault("scan.workers", 4)
	v.SetDefault("hdfs.namenode", "")
	v.SetDefault("hdfs.user", "")
	v.SetDefault("hdfs.kerberos", false)
	v.SetDefault("hdfs.krb_config", "/etc/krb5.conf")
	v.SetDefault("hdfs.krb_ccache", "")
	v.SetDefault("hdfs.hadoop_home", "/etc/hadoop")
}

// BindEnv maps sniffer.read_limit to CONTENTTYPE_SNIFFER_READ_LIMIT and so on.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("error parsing configuration: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	for _, b := range sniff.Backends() {
		if b == c.Sniffer.Backend {
			return nil
		}
	}
	return fmt.Errorf("invalid configuration: unknown sniffer backend %q (available: %s)",
		c.Sniffer.Backend, strings.Join(sniff.Backends(), ", "))
}

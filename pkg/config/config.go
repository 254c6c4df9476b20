package config

import "time"

// APIServer definition api_server YAML structure
type APIServer struct {
	Port       string `mapstructure:"port"`
	APIPrefix  string `mapstructure:"api_prefix"`
	CorsOrigin string `mapstructure:"cors_origin"`

	Token   TokenConfig    `mapstructure:"token"`
	MongoDB DatabaseConfig `mapstructure:"mongo"`
	MinIO   MinIOConfig    `mapstructure:"minio"`
	Redis   RedisConfig    `mapstructure:"redis"`
	Upload  UploadConfig   `mapstructure:"upload"`
}

// TokenConfig definition jwt secrets & expiry
type TokenConfig struct {
	AccessSecret  string        `mapstructure:"access_secret"`
	RefreshSecret string        `mapstructure:"refresh_secret"`
	AccessExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshExpiry time.Duration `mapstructure:"refresh_expiry"`
}

// RedisConfig definition redis setting
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	RedisDB  int    `mapstructure:"redis_db"`
}

// DatabaseConfig definition db setting
type DatabaseConfig struct {
	URI           string `mapstructure:"uri"`
	Database      string `mapstructure:"database"`
	RetryInterval int    `mapstructure:"retry_interval"`
	RetryCount    int    `mapstructure:"retry_count"`
}

// MinIOConfig definition object storage setting
type MinIOConfig struct {
	Endpoint      string `mapstructure:"endpoint"`
	User          string `mapstructure:"user"`
	Password      string `mapstructure:"password"`
	Bucket        string `mapstructure:"bucket"`
	UseSSL        bool   `mapstructure:"use_ssl"`
	PublicURL     string `mapstructure:"public_url"`
	RetryInterval int    `mapstructure:"retry_interval"`
	RetryCount    int    `mapstructure:"retry_count"`
}

// UploadConfig definition multipart upload setting
type UploadConfig struct {
	TmpDir    string `mapstructure:"tmp_dir"`
	MaxSizeMB int    `mapstructure:"max_size_mb"`
}

// SetDefaults fill zero values with the service defaults
func (c *APIServer) SetDefaults() {
	if c.Port == "" {
		c.Port = "8000"
	}
	if c.APIPrefix == "" {
		c.APIPrefix = "/api/v1"
	}
	if c.Token.AccessExpiry <= 0 {
		c.Token.AccessExpiry = 15 * time.Minute
	}
	if c.Token.RefreshExpiry <= 0 {
		c.Token.RefreshExpiry = 7 * 24 * time.Hour
	}
	if c.MongoDB.Database == "" {
		c.MongoDB.Database = "video_platform"
	}
	if c.MongoDB.RetryCount <= 0 {
		c.MongoDB.RetryCount = 3
	}
	if c.MinIO.RetryCount <= 0 {
		c.MinIO.RetryCount = 3
	}
	if c.Upload.TmpDir == "" {
		c.Upload.TmpDir = "./tmp"
	}
	if c.Upload.MaxSizeMB <= 0 {
		c.Upload.MaxSizeMB = 100
	}
}

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const envPrefix = "VIDEOHUB"

var ConfigInfo config

// Init 按约定的几个目录查找 config.yml, 找不到时只使用默认值和环境变量
func Init() {
	wd, _ := os.Getwd()
	logrus.Infof("Current working directory: %s", wd)

	v := newViper()
	v.SetConfigType("yaml")
	v.SetConfigName("config.yml")

	configPaths := []string{
		"./config",
		"../config",
		"../../config",
		".",
	}
	for _, path := range configPaths {
		v.AddConfigPath(path)
		absPath, _ := filepath.Abs(path)
		logrus.Debugf("Added config path: %s (absolute: %s)", path, absPath)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Warnf("config file not found, using defaults and environment: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
		}
	} else {
		logrus.Infof("Successfully read config file: %s", v.ConfigFileUsed())
	}
	load(v)
}

// InitFromFile loads an explicit config file, used by the -config flag and tests.
func InitFromFile(path string) error {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return err
	}
	load(v)
	return nil
}

func newViper() *viper.Viper {
	// .env 是可选的
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.Warnf("load .env: %v", err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:8888")
	v.SetDefault("server.allow_origins", []string{"http://localhost:3000", "http://localhost:8888"})
	v.SetDefault("server.max_request_body", 512*1024*1024)
	v.SetDefault("mysql.charset", "utf8mb4")
	v.SetDefault("storage.local_dir", "./public")
	v.SetDefault("storage.url_prefix", "/uploads")
	v.SetDefault("minio.bucket", "videohub")
	v.SetDefault("elastic.index", "videos")
	v.SetDefault("jwt.key", "videohub-secret-key")
	v.SetDefault("jwt.timeout", "720h")
	v.SetDefault("admin.email", "admin@example.com")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("sentinel.search_qps", 50)
	v.SetDefault("sentinel.upload_qps", 5)
	v.SetDefault("sentinel.login_qps", 10)
	v.SetDefault("tracer.service_name", "videohub")
	return v
}

// 手动从viper获取配置值
func load(v *viper.Viper) {
	ConfigInfo.Server.Addr = v.GetString("server.addr")
	ConfigInfo.Server.AllowOrigins = v.GetStringSlice("server.allow_origins")
	ConfigInfo.Server.MaxRequestBody = v.GetInt("server.max_request_body")

	ConfigInfo.Mysql.Addr = v.GetString("mysql.addr")
	ConfigInfo.Mysql.Database = v.GetString("mysql.database")
	ConfigInfo.Mysql.Username = v.GetString("mysql.username")
	ConfigInfo.Mysql.Password = v.GetString("mysql.password")
	ConfigInfo.Mysql.Charset = v.GetString("mysql.charset")
	ConfigInfo.Mysql.Params = v.GetString("mysql.params")

	ConfigInfo.Redis.Addr = v.GetString("redis.addr")
	ConfigInfo.Redis.Password = v.GetString("redis.password")
	ConfigInfo.Redis.DB = v.GetInt("redis.db")

	ConfigInfo.RabbitMq.Addr = v.GetString("rabbitmq.addr")
	ConfigInfo.RabbitMq.Username = v.GetString("rabbitmq.username")
	ConfigInfo.RabbitMq.Password = v.GetString("rabbitmq.password")

	ConfigInfo.Minio.Endpoint = v.GetString("minio.endpoint")
	ConfigInfo.Minio.AccessKey = v.GetString("minio.access_key")
	ConfigInfo.Minio.SecretKey = v.GetString("minio.secret_key")
	ConfigInfo.Minio.Bucket = v.GetString("minio.bucket")
	ConfigInfo.Minio.UseSSL = v.GetBool("minio.use_ssl")

	ConfigInfo.Elastic.Addr = v.GetString("elastic.addr")
	ConfigInfo.Elastic.Index = v.GetString("elastic.index")

	ConfigInfo.Storage.LocalDir = v.GetString("storage.local_dir")
	ConfigInfo.Storage.URLPrefix = v.GetString("storage.url_prefix")

	ConfigInfo.Jwt.Key = v.GetString("jwt.key")
	ConfigInfo.Jwt.Timeout = v.GetString("jwt.timeout")
	ConfigInfo.Jwt.SecureCookie = v.GetBool("jwt.secure_cookie")

	ConfigInfo.Admin.Email = v.GetString("admin.email")
	ConfigInfo.Admin.Password = v.GetString("admin.password")

	ConfigInfo.Log.Level = v.GetString("log.level")
	ConfigInfo.Log.Format = v.GetString("log.format")
	ConfigInfo.Log.File = v.GetString("log.file")
	ConfigInfo.Log.MaxSizeMB = v.GetInt("log.max_size_mb")
	ConfigInfo.Log.MaxBackups = v.GetInt("log.max_backups")
	ConfigInfo.Log.MaxAgeDays = v.GetInt("log.max_age_days")

	ConfigInfo.Sentinel.Enabled = v.GetBool("sentinel.enabled")
	ConfigInfo.Sentinel.LogDir = v.GetString("sentinel.log_dir")
	ConfigInfo.Sentinel.SearchQPS = v.GetFloat64("sentinel.search_qps")
	ConfigInfo.Sentinel.UploadQPS = v.GetFloat64("sentinel.upload_qps")
	ConfigInfo.Sentinel.LoginQPS = v.GetFloat64("sentinel.login_qps")

	ConfigInfo.Tracer.Addr = v.GetString("tracer.addr")
	ConfigInfo.Tracer.ServiceName = v.GetString("tracer.service_name")

	ConfigInfo.Pprof.Addr = v.GetString("pprof.addr")

	logrus.Infof("Config loaded - MySQL: %s:%s@%s/%s",
		ConfigInfo.Mysql.Username, "***", ConfigInfo.Mysql.Addr, ConfigInfo.Mysql.Database)
	if ConfigInfo.Mysql.Addr == "" {
		logrus.Warn("No MySQL address configured!")
	}
}

package config

type config struct {
	Server   server   `yaml:"server" mapstructure:"server"`
	Mysql    mysql    `yaml:"mysql" mapstructure:"mysql"`
	Redis    redis    `yaml:"redis" mapstructure:"redis"`
	RabbitMq rabbitmq `yaml:"rabbitmq" mapstructure:"rabbitmq"`
	Minio    minio    `yaml:"minio" mapstructure:"minio"`
	Elastic  elastic  `yaml:"elastic" mapstructure:"elastic"`
	Storage  storage  `yaml:"storage" mapstructure:"storage"`
	Jwt      jwt      `yaml:"jwt" mapstructure:"jwt"`
	Admin    admin    `yaml:"admin" mapstructure:"admin"`
	Log      log      `yaml:"log" mapstructure:"log"`
	Sentinel sentinel `yaml:"sentinel" mapstructure:"sentinel"`
	Tracer   tracer   `yaml:"tracer" mapstructure:"tracer"`
	Pprof    pprof    `yaml:"pprof" mapstructure:"pprof"`
}

type server struct {
	Addr           string   `yaml:"addr"`
	AllowOrigins   []string `yaml:"allow_origins" mapstructure:"allow_origins"`
	MaxRequestBody int      `yaml:"max_request_body" mapstructure:"max_request_body"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
	Params   string `yaml:"params"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type rabbitmq struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type minio struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key" mapstructure:"access_key"`
	SecretKey string `yaml:"secret_key" mapstructure:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl" mapstructure:"use_ssl"`
}

type elastic struct {
	Addr  string `yaml:"addr"`
	Index string `yaml:"index"`
}

type storage struct {
	LocalDir  string `yaml:"local_dir" mapstructure:"local_dir"`
	URLPrefix string `yaml:"url_prefix" mapstructure:"url_prefix"`
}

type jwt struct {
	Key          string `yaml:"key"`
	Timeout      string `yaml:"timeout"`
	SecureCookie bool   `yaml:"secure_cookie" mapstructure:"secure_cookie"`
}

type admin struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type log struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" mapstructure:"max_age_days"`
}

type sentinel struct {
	Enabled   bool    `yaml:"enabled"`
	LogDir    string  `yaml:"log_dir" mapstructure:"log_dir"`
	SearchQPS float64 `yaml:"search_qps" mapstructure:"search_qps"`
	UploadQPS float64 `yaml:"upload_qps" mapstructure:"upload_qps"`
	LoginQPS  float64 `yaml:"login_qps" mapstructure:"login_qps"`
}

type tracer struct {
	Addr        string `yaml:"addr"`
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
}

type pprof struct {
	Addr string `yaml:"addr"`
}

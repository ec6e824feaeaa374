package config

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/yeti-switch/cdr-media/pkg/configs"
)

// Application config structure
type AppConfig struct {
	Name        string   `mapstructure:"service_name" validate:"required"`
	Version     string   `mapstructure:"version" validate:"required"`
	Env         string   `mapstructure:"env" validate:"required"`
	Host        string   `mapstructure:"host" validate:"required"`
	Port        int      `mapstructure:"port" validate:"required"`
	LogLevel    string   `mapstructure:"log_level" validate:"required"`
	LogPath     string   `mapstructure:"log_path"`
	CorsOrigins []string `mapstructure:"cors_origins"`

	PostgresConfig configs.PostgresConfig `mapstructure:"postgres" validate:"required"`
	// optional read replica for the cdr database
	CdrReplicaConfig configs.PostgresConfig `mapstructure:"cdr_replica" validate:"-"`
	RedisConfig      configs.RedisConfig    `mapstructure:"redis" validate:"required"`

	StorageConfig     configs.StorageConfig     `mapstructure:",squash"`
	PolicyRolesConfig configs.PolicyRolesConfig `mapstructure:"policy_roles" validate:"required"`
	AuthConfig        configs.AuthConfig        `mapstructure:"auth" validate:"required"`
}

// reading config and intializing configs for application
func InitConfig() (*viper.Viper, error) {
	vConfig := viper.NewWithOptions(viper.KeyDelimiter("__"))

	vConfig.AddConfigPath(".")
	vConfig.SetConfigName(".env")
	path := os.Getenv("ENV_PATH")
	if path != "" {
		log.Printf("env path %v", path)
		vConfig.SetConfigFile(path)
	}
	vConfig.SetConfigType("env")
	vConfig.AutomaticEnv()

	setDefault(vConfig)
	if err := vConfig.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, err
		}
		log.Printf("Reading from env varaibles.")
	}
	return vConfig, nil
}

func setDefault(v *viper.Viper) {
	// every key needs a default, AutomaticEnv only resolves keys viper knows about
	// keeping watch on https://github.com/spf13/viper/issues/188

	v.SetDefault("SERVICE_NAME", "cdr-media-api")
	v.SetDefault("VERSION", "0.0.1")
	v.SetDefault("ENV", "development")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 9090)
	v.SetDefault("LOG_LEVEL", "debug")
	v.SetDefault("LOG_PATH", "")
	v.SetDefault("CORS_ORIGINS", "")

	v.SetDefault("POSTGRES__HOST", "localhost")
	v.SetDefault("POSTGRES__PORT", 5432)
	v.SetDefault("POSTGRES__DB_NAME", "<>")
	v.SetDefault("POSTGRES__AUTH__USER", "<>")
	v.SetDefault("POSTGRES__AUTH__PASSWORD", "<>")
	v.SetDefault("POSTGRES__MAX_OPEN_CONNECTION", 10)
	v.SetDefault("POSTGRES__MAX_IDEAL_CONNECTION", 10)
	v.SetDefault("POSTGRES__SSL_MODE", "disable")

	v.SetDefault("CDR_REPLICA__HOST", "")
	v.SetDefault("CDR_REPLICA__PORT", 5432)
	v.SetDefault("CDR_REPLICA__DB_NAME", "")
	v.SetDefault("CDR_REPLICA__AUTH__USER", "")
	v.SetDefault("CDR_REPLICA__AUTH__PASSWORD", "")
	v.SetDefault("CDR_REPLICA__MAX_OPEN_CONNECTION", 10)
	v.SetDefault("CDR_REPLICA__MAX_IDEAL_CONNECTION", 10)
	v.SetDefault("CDR_REPLICA__SSL_MODE", "disable")

	v.SetDefault("REDIS__HOST", "localhost")
	v.SetDefault("REDIS__PORT", 6379)
	v.SetDefault("REDIS__PASSWORD", "")
	v.SetDefault("REDIS__DB", 0)
	v.SetDefault("REDIS__MAX_CONNECTION", 10)
	v.SetDefault("REDIS__INSECURE_SKIP_TLS", false)

	v.SetDefault("S3_STORAGE__ENDPOINT", "")
	v.SetDefault("S3_STORAGE__REGION", "us-east-1")
	v.SetDefault("S3_STORAGE__ACCESS_KEY_ID", "")
	v.SetDefault("S3_STORAGE__SECRET_ACCESS_KEY", "")
	v.SetDefault("S3_STORAGE__FORCE_PATH_STYLE", false)
	v.SetDefault("S3_STORAGE__CHUNK_SIZE", 64*1024)
	v.SetDefault("S3_STORAGE__PCAP__BUCKET", "")
	v.SetDefault("S3_STORAGE__PCAP__ENDPOINT", "")
	v.SetDefault("S3_STORAGE__CALL_RECORD__BUCKET", "")
	v.SetDefault("S3_STORAGE__CALL_RECORD__ENDPOINT", "")

	v.SetDefault("LOCAL_STORAGE__RECORD_PREFIX", "/record")
	v.SetDefault("LOCAL_STORAGE__DUMP_PREFIX", "/dump")

	v.SetDefault("POLICY_ROLES__PATH", "config/policy_roles.yml")
	v.SetDefault("POLICY_ROLES__WHEN_NO_CONFIG", "disallow")

	// no usable default, startup fails until a secret is configured
	v.SetDefault("AUTH__CUSTOMER_JWT_SECRET", "")
	v.SetDefault("AUTH__CUSTOMER_JWT_ISSUER", "")
	v.SetDefault("AUTH__ADMIN_SESSION_HEADER", "X-Admin-Session")
	v.SetDefault("AUTH__ADMIN_SESSION_COOKIE", "_yeti_admin_session")
	v.SetDefault("AUTH__ADMIN_SESSION_PREFIX", "admin_session:")
}

// Getting application config from viper
func GetApplicationConfig(v *viper.Viper) (*AppConfig, error) {
	var config AppConfig
	err := v.Unmarshal(&config, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		log.Printf("%+v\n", err)
		return nil, err
	}
	config.CorsOrigins = compact(config.CorsOrigins)

	// valdating the app config
	validate := validator.New()
	err = validate.Struct(&config)
	if err != nil {
		log.Printf("%+v\n", err)
		return nil, err
	}
	return &config, nil
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

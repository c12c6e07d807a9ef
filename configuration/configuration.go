package configuration

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	yaml "gopkg.in/yaml.v2"
)

// Constants for viper variable names. Will be used to set
// default values as well as to get each value.
const (
	varPostgresHost     = "postgres.host"
	varPostgresPort     = "postgres.port"
	varPostgresUser     = "postgres.user"
	varPostgresPassword = "postgres.password"
	varPostgresDatabase = "postgres.database"
	varPostgresSSLMode  = "postgres.sslmode"

	varDeveloperModeEnabled = "developer.mode.enabled"
	varLogLevel             = "log.level"
)

// String returns the current configuration as a string
func String() string {
	allSettings := viper.AllSettings()
	y, err := yaml.Marshal(&allSettings)
	if err != nil {
		panic(fmt.Errorf("failed to marshal config to string: %s", err.Error()))
	}
	return fmt.Sprintf("%s\n", y)
}

// Setup sets up defaults for viper configuration options and
// overrides these values with the values from the given configuration file
// if it is not empty. Those values again are overwritten by environment
// variables.
func Setup(configFilePath string) error {
	viper.Reset()

	// Expect environment variables to be prefixed with "FIELDSIGNALS_".
	viper.SetEnvPrefix("FIELDSIGNALS")

	// Automatically map environment variables to viper values
	viper.AutomaticEnv()

	// To override nested variables through environment variables, we
	// need to make sure that we don't have to use dots (".") inside the
	// environment variable names.
	// To override postgres.host you need to set FIELDSIGNALS_POSTGRES_HOST
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetTypeByDefaultValue(true)
	setConfigDefaults()

	// Read the config
	// Explicitly specify which file to load config from
	if configFilePath != "" {
		viper.SetConfigFile(configFilePath)
		viper.SetConfigType("yaml")
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to load config file %s: %s", configFilePath, err.Error())
		}
	}
	return nil
}

func setConfigDefaults() {
	viper.SetDefault(varPostgresHost, "localhost")
	viper.SetDefault(varPostgresPort, 5432)
	viper.SetDefault(varPostgresUser, "postgres")
	viper.SetDefault(varPostgresPassword, "mysecretpassword")
	viper.SetDefault(varPostgresDatabase, "postgres")
	viper.SetDefault(varPostgresSSLMode, "disable")
	viper.SetDefault(varDeveloperModeEnabled, false)
	viper.SetDefault(varLogLevel, "info")
}

// GetPostgresHost returns the postgres host as set via config file or environment variable
func GetPostgresHost() string {
	return viper.GetString(varPostgresHost)
}

// GetPostgresPort returns the postgres port as set via config file or environment variable
func GetPostgresPort() int64 {
	return viper.GetInt64(varPostgresPort)
}

// GetPostgresUser returns the postgres user as set via config file or environment variable
func GetPostgresUser() string {
	return viper.GetString(varPostgresUser)
}

// GetPostgresPassword returns the postgres password as set via config file or environment variable
func GetPostgresPassword() string {
	return viper.GetString(varPostgresPassword)
}

// GetPostgresDatabase returns the postgres database as set via config file or environment variable
func GetPostgresDatabase() string {
	return viper.GetString(varPostgresDatabase)
}

// GetPostgresSSLMode returns the postgres sslmode as set via config file or environment variable
func GetPostgresSSLMode() string {
	return viper.GetString(varPostgresSSLMode)
}

// GetPostgresConfigString returns a ready to use string for usage in sql.Open()
func GetPostgresConfigString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		GetPostgresHost(),
		GetPostgresPort(),
		GetPostgresUser(),
		GetPostgresPassword(),
		GetPostgresDatabase(),
		GetPostgresSSLMode(),
	)
}

// IsDeveloperModeEnabled returns if development related features (e.g. human
// readable and more verbose logging) are enabled.
func IsDeveloperModeEnabled() bool {
	return viper.GetBool(varDeveloperModeEnabled)
}

// GetLogLevel returns the log level as set via config file or environment variable
func GetLogLevel() string {
	return viper.GetString(varLogLevel)
}

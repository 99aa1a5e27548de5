package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/denisbrodbeck/machineid"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	prefix       = "FPINTRO"
	appID        = "fpintro"
	logLevel     = "log_level"
	baseURL      = "base_url"
	httpTimeout  = "timeout"
	outputFormat = "output"
	userAgent    = "user_agent"
	instanceID   = "instance_id"
	subreddit    = "subreddit"
	trace        = "trace"

	defaultBaseURL      = "https://www.reddit.com"
	defaultHttpTimeout  = 5 * time.Second
	defaultOutputFormat = "json"
	defaultLogLevel     = "info"
	defaultSubreddit    = "subreddit"
	version             = "0.1.0"
)

var v = viper.New()

func InitConfiguration(cmd *cobra.Command, configFile string) error {
	v = viper.New()

	v.SetEnvPrefix(prefix)
	v.AutomaticEnv() // read in environment variables that match

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)

		err := v.ReadInConfig()
		if err != nil {
			zap.S().Errorw("cannot read config file", "config file", configFile, "error", err)
			return fmt.Errorf("fail to read config file '%w'", err)
		}
		zap.S().Infof("using config file: %v", v.ConfigFileUsed())
	}

	// Bind the current command's flags to viper
	bindFlags(cmd, v)

	return nil
}

// Bind each cobra flag to its associated viper configuration (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// replace - with _ to match yaml format
		flagName := f.Name
		if strings.Contains(f.Name, "-") {
			flagName = strings.ReplaceAll(f.Name, "-", "_")
		}

		// Environment variables can't have dashes in them, so bind them to their equivalent
		// keys with underscores.
		envVarSuffix := strings.ToUpper(flagName)
		_ = v.BindEnv(flagName, fmt.Sprintf("%s_%s", prefix, envVarSuffix))

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		// and the other way around.
		if !f.Changed && v.IsSet(flagName) {
			val := v.Get(flagName)
			_ = cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
		} else if f.Changed {
			v.Set(flagName, f.Value.String())
		}
	})
}

func GetLogLevel() string {
	if !v.IsSet(logLevel) {
		return defaultLogLevel
	}

	return v.GetString(logLevel)
}

func GetBaseURL() string {
	if !v.IsSet(baseURL) {
		return defaultBaseURL
	}

	return v.GetString(baseURL)
}

func GetHttpRequestTimeout() time.Duration {
	if !v.IsSet(httpTimeout) {
		return defaultHttpTimeout
	}

	d := v.GetDuration(httpTimeout)
	if d <= 0 {
		return defaultHttpTimeout
	}

	return d
}

func GetOutputFormat() string {
	if !v.IsSet(outputFormat) {
		return defaultOutputFormat
	}

	return v.GetString(outputFormat)
}

func GetSubreddit() string {
	if !v.IsSet(subreddit) {
		return defaultSubreddit
	}

	return v.GetString(subreddit)
}

func GetTraceEnabled() bool {
	return v.GetBool(trace)
}

// GetInstanceID returns an id of this machine which does not leak the raw machine id.
func GetInstanceID() string {
	if !v.IsSet(instanceID) {
		id, err := machineid.ProtectedID(appID)
		if err != nil {
			id = uuid.New().String()
		}

		// save id for the next call
		v.Set(instanceID, id)

		return id
	}

	return v.GetString(instanceID)
}

// GetUserAgent returns the configured agent or one built from the version and the instance id.
func GetUserAgent() string {
	if v.IsSet(userAgent) {
		return v.GetString(userAgent)
	}

	id := GetInstanceID()
	if len(id) > 8 {
		id = id[:8]
	}

	return fmt.Sprintf("%s/%s (instance %s)", appID, version, id)
}

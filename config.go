package cms

import "github.com/amalfoundation/foundation-cms/internal/runtimeconfig"

var (
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
	ErrSessionTTLInvalid       = runtimeconfig.ErrSessionTTLInvalid
	ErrBaseURLRequired         = runtimeconfig.ErrBaseURLRequired
)

type (
	Config        = runtimeconfig.Config
	LoggingConfig = runtimeconfig.LoggingConfig
	HTTPConfig    = runtimeconfig.HTTPConfig
	SessionConfig = runtimeconfig.SessionConfig
	ImportConfig  = runtimeconfig.ImportConfig
	SitemapConfig = runtimeconfig.SitemapConfig
	Features      = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

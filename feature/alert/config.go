package alert

// Config holds configuration for the SMS gateway.
type Config struct {
	// URL is the gateway template. {login}, {password}, {destination} and
	// {text} are replaced with query-escaped values.
	URL string `mapstructure:"url" default:""`
	// Login is the gateway account login.
	Login string `mapstructure:"login" default:""`
	// Password is the gateway account password.
	Password string `mapstructure:"password" default:""`
	// Destination is the MSISDN receiving alerts.
	Destination string `mapstructure:"destination" default:""`
	// TimeoutSeconds bounds the delivery call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}
